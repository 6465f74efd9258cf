package sand

import (
	"fmt"
	"sort"
	"sync"

	"mad-sand/internal/core"
)

// PourPlan describes a headless pouring run.
type PourPlan struct {
	Emitters  []Input
	PourTicks int
	MaxTicks  int
}

// DefaultPourPlan pours from the center of the top row for a third of the
// run and then lets the pile settle.
func DefaultPourPlan(cfg Config) PourPlan {
	return PourPlan{
		Emitters:  []Input{{X: cfg.Width / 2, Y: cfg.Brush / 2, Active: true}},
		PourTicks: cfg.Height * 2,
		MaxTicks:  cfg.Height * 8,
	}
}

// PourResult summarizes the final state of a pouring run.
type PourResult struct {
	Policy EdgePolicy
	Seed   int64

	Grains     int
	Poured     int
	SettledAt  int
	PileHeight int
	Footprint  int
	Ticks      int
}

// Settled reports whether the pile stopped moving before the tick budget ran out.
func (r PourResult) Settled() bool { return r.SettledAt >= 0 }

func (r PourResult) String() string {
	settled := "never"
	if r.Settled() {
		settled = fmt.Sprintf("tick %d", r.SettledAt)
	}
	return fmt.Sprintf("edge=%-9s seed=%-6d grains=%-6d poured=%-6d height=%-4d footprint=%-4d settled=%s",
		r.Policy, r.Seed, r.Grains, r.Poured, r.PileHeight, r.Footprint, settled)
}

// Pour runs plan on a fresh world built from cfg.
func Pour(cfg Config, plan PourPlan) (PourResult, error) {
	world, err := NewWithConfig(cfg)
	if err != nil {
		return PourResult{}, err
	}
	res := PourResult{Policy: cfg.Edge, Seed: cfg.Seed, SettledAt: -1}
	// One quiet tick is not enough: under EdgeLegacy a grain in column 0 can
	// be stuck on a left-first tick and still slide on the next one.
	quiet := 0
	for tick := 0; tick < plan.MaxTicks; tick++ {
		if tick < plan.PourTicks {
			for _, e := range plan.Emitters {
				if e.Active {
					world.Paint(e.X, e.Y)
				}
			}
		}
		world.Step()
		if tick < plan.PourTicks || world.Moves() > 0 {
			quiet = 0
			continue
		}
		quiet++
		if quiet == 2 {
			res.SettledAt = tick
			break
		}
	}
	res.Ticks = world.Ticks()
	res.Poured = world.Poured()
	res.Grains = world.Grid().Occupied()
	res.PileHeight, res.Footprint = pileShape(world.Grid())
	return res, nil
}

// Surface returns, for every column, the y of its topmost grain, or g.H when
// the column is empty.
func Surface(g *core.Grid) []int {
	cells := g.Cells()
	top := make([]int, g.W)
	for x := 0; x < g.W; x++ {
		top[x] = g.H
		for y := 0; y < g.H; y++ {
			if cells[g.Index(x, y)].Occupied {
				top[x] = y
				break
			}
		}
	}
	return top
}

// pileShape returns the tallest column height and the number of columns
// holding at least one grain.
func pileShape(g *core.Grid) (int, int) {
	tallest, footprint := 0, 0
	for _, y := range Surface(g) {
		if y == g.H {
			continue
		}
		footprint++
		if height := g.H - y; height > tallest {
			tallest = height
		}
	}
	return tallest, footprint
}

// SweepPolicies pours plan once per policy and seed on a pool of workers.
// Every world is owned by exactly one worker. Results are ordered by policy
// then seed.
func SweepPolicies(base Config, plan PourPlan, policies []EdgePolicy, seeds []int64, workers int) ([]PourResult, error) {
	if workers <= 0 {
		workers = 1
	}
	var cfgs []Config
	for _, policy := range policies {
		for _, seed := range seeds {
			cfg := base
			cfg.Edge = policy
			cfg.Seed = seed
			if err := cfg.Validate(); err != nil {
				return nil, err
			}
			cfgs = append(cfgs, cfg)
		}
	}

	jobs := make(chan Config)
	results := make(chan PourResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cfg := range jobs {
				res, err := Pour(cfg, plan)
				if err != nil {
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, cfg := range cfgs {
			jobs <- cfg
		}
		close(jobs)
	}()

	all := make([]PourResult, 0, len(cfgs))
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Policy != all[j].Policy {
			return all[i].Policy < all[j].Policy
		}
		return all[i].Seed < all[j].Seed
	})
	return all, nil
}
