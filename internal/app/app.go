//go:build ebiten

package app

import (
	"mad-sand/internal/core"
	"mad-sand/internal/render"
	"mad-sand/internal/sand"
	"mad-sand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	paused   bool
	tickOnce bool
	showHUD  bool
	seed     int64

	cursor   sand.Input
	hasMouse bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64, showHUD bool) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, scale),
		hud:     ui.NewHUD(sim, HUDWidth),
		scale:   scale,
		seed:    seed,
		showHUD: showHUD,
	}
}

// Reset empties the simulation.
func (g *Game) Reset() {
	g.sim.Reset(g.seed)
	g.tickOnce = false
}

// Update handles per-frame logic: read the brush, pour, then advance.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	g.readCursor()
	g.overlay.Update(g.cursor, g.hasMouse)
	if g.showHUD {
		g.hud.Update()
	}

	if g.cursor.Active {
		if p, ok := g.sim.(core.Painter); ok {
			p.Paint(g.cursor.X, g.cursor.Y)
		}
	}
	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) readCursor() {
	mx, my := ebiten.CursorPosition()
	size := g.sim.Size()
	g.hasMouse = mx >= 0 && my >= 0 && mx < size.W*g.scale && my < size.H*g.scale
	g.cursor = sand.Input{
		X:      mx / g.scale,
		Y:      my / g.scale,
		Active: g.hasMouse && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	var brush *sand.Input
	diameter := 0
	if p, ok := g.sim.(core.Painter); ok && g.hasMouse {
		brush = &g.cursor
		diameter = p.BrushDiameter()
	}
	g.painter.Blit(screen, g.sim.Grid(), brush, diameter, g.scale)
	g.overlay.Draw(screen)
	if g.showHUD {
		g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
	}
}

// Layout returns the logical screen size. The HUD column is always
// reserved so toggling it does not rescale the grid.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenSize(g.sim.Size(), g.scale)
}
