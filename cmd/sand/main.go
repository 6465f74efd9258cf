//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"mad-sand/internal/app"
	"mad-sand/internal/core"
	_ "mad-sand/internal/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := core.New(cfg.Sim, cfg.SimConfig())
	if err != nil {
		log.Fatalf("build %s: %v", cfg.Sim, err)
	}
	if cfg.Scale <= 0 {
		log.Fatalf("scale %d: %v", cfg.Scale, core.ErrInvalidConfig)
	}

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.HUD)

	ebiten.SetWindowTitle("Sand Cellular Automaton")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(app.ScreenSize(sim.Size(), cfg.Scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
