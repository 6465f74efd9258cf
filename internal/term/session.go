package term

import (
	"fmt"
	"time"

	"mad-sand/internal/core"
	"mad-sand/internal/sand"

	"github.com/gdamore/tcell/v2"
)

// Options tunes a terminal session.
type Options struct {
	TPS int
	// OnPour is called after every frame that created grains.
	OnPour func(n int)
}

// session holds the frontend state owned by the loop goroutine.
type session struct {
	screen  tcell.Screen
	world   *sand.World
	painter Painter
	opts    Options

	input    sand.Input
	hasMouse bool
	paused   bool
	tickOnce bool
}

func newSession(s tcell.Screen, w *sand.World, opts Options) *session {
	return &session{screen: s, world: w, opts: opts}
}

// handle applies one terminal event and reports whether to keep running.
func (ss *session) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				ss.paused = !ss.paused
			case 'n', 'N':
				ss.tickOnce = true
			case 'c', 'C', 'r', 'R':
				ss.world.Reset(0)
			}
		}
	case *tcell.EventMouse:
		mx, my := ev.Position()
		gx, gy := ScreenToGrid(mx, my)
		size := ss.world.Size()
		ss.hasMouse = gx >= 0 && gx < size.W && gy >= 0 && gy < size.H
		ss.input = sand.Input{
			X:      gx,
			Y:      gy,
			Active: ss.hasMouse && ev.Buttons()&tcell.Button1 != 0,
		}
	case *tcell.EventResize:
		ss.screen.Sync()
	}
	return true
}

// tick runs one frame: pour, step unless paused, then redraw.
func (ss *session) tick() {
	poured := 0
	if ss.input.Active {
		poured = ss.world.Paint(ss.input.X, ss.input.Y)
	}
	if !ss.paused || ss.tickOnce {
		ss.world.Step()
		ss.tickOnce = false
	}
	if poured > 0 && ss.opts.OnPour != nil {
		ss.opts.OnPour(poured)
	}
	ss.draw()
}

func (ss *session) draw() {
	var brush *sand.Input
	if ss.hasMouse {
		brush = &ss.input
	}
	ss.painter.Draw(ss.screen, ss.world.Grid(), brush, ss.world.BrushDiameter())
	DrawStatus(ss.screen, ss.status())
	ss.screen.Show()
}

func (ss *session) status() string {
	state := "running"
	if ss.paused {
		state = "paused"
	}
	return fmt.Sprintf(" %s  grains %d  tick %d  %s  [drag] pour [space] pause [n] step [c] clear [q] quit",
		state, ss.world.Grid().Occupied(), ss.world.Ticks(), ss.world.Config().Edge)
}

// Run drives w on s until the user quits. The caller owns s and must have
// initialized it; Run enables mouse reporting but does not call Fini.
func Run(s tcell.Screen, w *sand.World, opts Options) error {
	if w.Size().W < 1 || w.Size().H < 1 {
		return fmt.Errorf("world %+v: %w", w.Size(), core.ErrInvalidConfig)
	}
	s.EnableMouse()
	s.HideCursor()
	ss := newSession(s, w, opts)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	pacer := core.NewFixedStep(opts.TPS)
	ticker := time.NewTicker(pacer.Interval())
	defer ticker.Stop()

	ss.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !ss.handle(ev) {
				return nil
			}
		case <-ticker.C:
			if pacer.ShouldStep() {
				ss.tick()
			}
		}
	}
}
