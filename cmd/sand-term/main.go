package main

import (
	"flag"
	"log"

	"mad-sand/internal/audio"
	"mad-sand/internal/sand"
	"mad-sand/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := sand.DefaultConfig()
	width := flag.Int("w", 0, "grid width in cells (0 fits the terminal)")
	height := flag.Int("h", 0, "grid height in cells (0 fits the terminal)")
	brush := flag.Int("brush", cfg.Brush, "brush diameter in cells")
	seed := flag.Int64("seed", cfg.Seed, "seed for the color jitter")
	edge := flag.String("edge", cfg.Edge.String(), "left edge policy: parity, legacy or symmetric")
	tps := flag.Int("tps", 100, "simulation ticks per second")
	sound := flag.Bool("sound", false, "play a tone while pouring (needs the audio build tag)")
	flag.Parse()

	policy, err := sand.ParseEdgePolicy(*edge)
	if err != nil {
		log.Fatalf("failed to parse edge policy: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to init screen: %v", err)
	}

	fit := term.GridSize(screen.Size())
	cfg.Width, cfg.Height = fit.W, fit.H
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	cfg.Brush = *brush
	cfg.Seed = *seed
	cfg.Edge = policy

	world, err := sand.NewWithConfig(cfg)
	if err != nil {
		screen.Fini()
		log.Fatalf("failed to create world: %v", err)
	}

	opts := term.Options{TPS: *tps}
	if *sound {
		pourer, err := audio.NewPourer()
		if err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			defer pourer.Close()
			opts.OnPour = pourer.Pour
		}
	}

	err = term.Run(screen, world, opts)
	screen.Fini()
	if err != nil {
		log.Fatalf("terminal session failed: %v", err)
	}
}
