package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"mad-sand/internal/sand"
)

func main() {
	base := sand.DefaultConfig()
	width := flag.Int("w", 120, "grid width in cells")
	height := flag.Int("h", 80, "grid height in cells")
	brush := flag.Int("brush", base.Brush, "emitter brush diameter")
	steps := flag.Int("steps", 0, "tick budget per run (0 derives it from the height)")
	pour := flag.Int("pour", 0, "ticks spent pouring (0 derives it from the height)")
	seeds := flag.Int("seeds", 3, "number of seeds per edge policy")
	corner := flag.Bool("corner", false, "pour against the left wall instead of the center")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	base.Width = *width
	base.Height = *height
	base.Brush = *brush
	if err := base.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	plan := sand.DefaultPourPlan(base)
	if *corner {
		plan.Emitters = []sand.Input{{X: 0, Y: base.Brush / 2, Active: true}}
	}
	if *pour > 0 {
		plan.PourTicks = *pour
	}
	if *steps > 0 {
		plan.MaxTicks = *steps
	}

	seedList := make([]int64, 0, *seeds)
	for i := 1; i <= *seeds; i++ {
		seedList = append(seedList, int64(i))
	}
	policies := sand.Policies()

	fmt.Printf("Pouring %d runs (%d policies x %d seeds, %d workers, %d ticks)\n",
		len(policies)*len(seedList), len(policies), len(seedList), *workers, plan.MaxTicks)

	start := time.Now()
	results, err := sand.SweepPolicies(base, plan, policies, seedList, *workers)
	if err != nil {
		log.Fatalf("sweep failed: %v", err)
	}
	for _, res := range results {
		fmt.Println(res)
	}
	fmt.Printf("\nElapsed %s\n", time.Since(start).Round(time.Millisecond))
}
