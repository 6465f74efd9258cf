package sand

import (
	"errors"
	"math/rand/v2"
	"testing"

	"mad-sand/internal/core"
)

func newGrid(t *testing.T, w, h int) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func put(t *testing.T, g *core.Grid, x, y int) core.Cell {
	t.Helper()
	c := core.Cell{Color: core.RGB{R: uint8(x*16 + 1), G: uint8(y*16 + 1), B: 7}, Occupied: true}
	if err := g.Set(x, y, c); err != nil {
		t.Fatal(err)
	}
	return c
}

func occupiedAt(t *testing.T, g *core.Grid, x, y int) bool {
	t.Helper()
	c, err := g.Get(x, y)
	if err != nil {
		t.Fatal(err)
	}
	return c.Occupied
}

// counter hands out distinct colors so tests can track which grain went where.
type counter struct{ n int }

func (c *counter) Next() core.RGB {
	c.n++
	return core.RGB{R: uint8(c.n), G: uint8(c.n >> 8), B: 1}
}

func TestThreeByThreeScenario(t *testing.T) {
	g := newGrid(t, 3, 3)
	grain := put(t, g, 1, 0)

	polarity := Step(g, true)
	if polarity {
		t.Fatal("expected polarity false after first step")
	}
	if occupiedAt(t, g, 1, 0) || !occupiedAt(t, g, 1, 1) {
		t.Fatal("grain should fall from (1,0) to (1,1)")
	}

	polarity = Step(g, polarity)
	if !polarity {
		t.Fatal("expected polarity true after second step")
	}
	got, _ := g.Get(1, 2)
	if got != grain {
		t.Fatalf("bottom cell = %+v, want original grain %+v", got, grain)
	}
	if g.Occupied() != 1 {
		t.Fatalf("expected a single grain, found %d", g.Occupied())
	}
}

func TestGravityTakesPriorityOverDiagonal(t *testing.T) {
	g := newGrid(t, 5, 4)
	put(t, g, 2, 1)
	for _, left := range []bool{true, false} {
		g.Clear()
		put(t, g, 2, 1)
		Step(g, left)
		if !occupiedAt(t, g, 2, 2) {
			t.Fatalf("polarityLeft=%v: grain did not fall straight down", left)
		}
		if occupiedAt(t, g, 1, 2) || occupiedAt(t, g, 3, 2) {
			t.Fatalf("polarityLeft=%v: grain moved diagonally despite free cell below", left)
		}
	}
}

func TestDiagonalTieBreak(t *testing.T) {
	cases := []struct {
		left  bool
		wantX int
	}{
		{left: true, wantX: 1},
		{left: false, wantX: 3},
	}
	for _, tc := range cases {
		g := newGrid(t, 5, 3)
		grain := put(t, g, 2, 1)
		put(t, g, 2, 2)

		Step(g, tc.left)

		got, _ := g.Get(tc.wantX, 2)
		if got != grain {
			t.Fatalf("polarityLeft=%v: expected grain at (%d,2), got %+v", tc.left, tc.wantX, got)
		}
		if occupiedAt(t, g, 2, 1) {
			t.Fatalf("polarityLeft=%v: source cell not cleared", tc.left)
		}
	}
}

func TestDiagonalFallsBackToOtherSide(t *testing.T) {
	g := newGrid(t, 5, 3)
	put(t, g, 2, 1)
	put(t, g, 2, 2)
	put(t, g, 1, 2)

	Step(g, true)
	if !occupiedAt(t, g, 3, 2) {
		t.Fatal("left-first grain should slide right when left is taken")
	}

	g.Clear()
	put(t, g, 2, 1)
	put(t, g, 2, 2)
	put(t, g, 3, 2)
	Step(g, false)
	if !occupiedAt(t, g, 1, 2) {
		t.Fatal("right-first grain should slide left when right is taken")
	}
}

func TestBlockedGrainStays(t *testing.T) {
	g := newGrid(t, 3, 2)
	for x := 0; x < 3; x++ {
		put(t, g, x, 1)
	}
	grain := put(t, g, 1, 0)
	for _, left := range []bool{true, false} {
		_, moves := StepWithPolicy(g, left, EdgeParity)
		if moves != 0 {
			t.Fatalf("polarityLeft=%v: %d grains moved on a full floor", left, moves)
		}
		if got, _ := g.Get(1, 0); got != grain {
			t.Fatal("blocked grain moved")
		}
	}
}

func TestLeftColumnNeverSlidesUnderParity(t *testing.T) {
	for _, left := range []bool{true, false} {
		g := newGrid(t, 3, 2)
		put(t, g, 0, 0)
		put(t, g, 0, 1)

		Step(g, left)

		if !occupiedAt(t, g, 0, 0) {
			t.Fatalf("polarityLeft=%v: grain left column 0", left)
		}
		if occupiedAt(t, g, 1, 1) {
			t.Fatalf("polarityLeft=%v: grain slid to (1,1)", left)
		}
	}
}

func TestRightColumnSlidesLeft(t *testing.T) {
	for _, left := range []bool{true, false} {
		g := newGrid(t, 3, 2)
		put(t, g, 2, 0)
		put(t, g, 2, 1)

		Step(g, left)

		if !occupiedAt(t, g, 1, 1) || occupiedAt(t, g, 2, 0) {
			t.Fatalf("polarityLeft=%v: grain in last column should slide left", left)
		}
	}
}

func TestEdgePolicies(t *testing.T) {
	cases := []struct {
		policy EdgePolicy
		left   bool
		slides bool
	}{
		{EdgeParity, true, false},
		{EdgeParity, false, false},
		{EdgeLegacy, true, false},
		{EdgeLegacy, false, true},
		{EdgeSymmetric, true, true},
		{EdgeSymmetric, false, true},
	}
	for _, tc := range cases {
		g := newGrid(t, 3, 2)
		put(t, g, 0, 0)
		put(t, g, 0, 1)

		StepWithPolicy(g, tc.left, tc.policy)

		if got := occupiedAt(t, g, 1, 1); got != tc.slides {
			t.Fatalf("%v polarityLeft=%v: slid=%v, want %v", tc.policy, tc.left, got, tc.slides)
		}
	}
}

func TestSingleColumnGridOnlyFalls(t *testing.T) {
	g := newGrid(t, 1, 4)
	put(t, g, 0, 0)
	put(t, g, 0, 3)
	for _, policy := range Policies() {
		StepWithPolicy(g, true, policy)
		StepWithPolicy(g, false, policy)
	}
	if !occupiedAt(t, g, 0, 2) || !occupiedAt(t, g, 0, 3) {
		t.Fatal("grains in a single column should stack at the bottom")
	}
}

func TestStepConservesGrains(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for _, policy := range Policies() {
		for trial := 0; trial < 20; trial++ {
			w := 1 + rng.IntN(12)
			h := 1 + rng.IntN(12)
			g := newGrid(t, w, h)
			cells := g.Cells()
			for i := range cells {
				if rng.IntN(3) == 0 {
					cells[i] = core.Cell{Color: core.RGB{R: uint8(i)}, Occupied: true}
				}
			}
			want := g.Occupied()
			left := rng.IntN(2) == 0
			for step := 0; step < 30; step++ {
				left, _ = StepWithPolicy(g, left, policy)
				if got := g.Occupied(); got != want {
					t.Fatalf("%v %dx%d step %d: %d grains, want %d", policy, w, h, step, got, want)
				}
			}
		}
	}
}

func TestPolarityAlternates(t *testing.T) {
	g := newGrid(t, 4, 4)
	polarity := true
	for i := 0; i < 6; i++ {
		next := Step(g, polarity)
		if next == polarity {
			t.Fatalf("step %d returned unchanged polarity", i)
		}
		polarity = next
	}

	a := newGrid(t, 6, 5)
	b := newGrid(t, 6, 5)
	for _, xy := range [][2]int{{2, 0}, {2, 1}, {3, 1}, {2, 3}, {2, 4}, {4, 4}} {
		put(t, a, xy[0], xy[1])
		put(t, b, xy[0], xy[1])
	}
	p := Step(a, true)
	Step(a, p)
	Step(b, true)
	Step(b, false)
	for i := range a.Cells() {
		if a.Cells()[i] != b.Cells()[i] {
			t.Fatalf("cell %d differs between chained and explicit polarity", i)
		}
	}
}

func TestGrainSlidingIntoUnscannedColumnKeepsFalling(t *testing.T) {
	g := newGrid(t, 3, 4)
	for _, xy := range [][2]int{{1, 2}, {1, 3}, {2, 1}, {2, 2}, {2, 3}} {
		put(t, g, xy[0], xy[1])
	}
	grain := put(t, g, 2, 0)

	Step(g, true)

	// (2,0) slides to (1,1); column 1 is scanned afterwards, by which time
	// (1,2) has slid to (0,3), so the grain drops once more in the same tick.
	if got, _ := g.Get(1, 2); got != grain {
		t.Fatalf("expected the sliding grain at (1,2), got %+v", got)
	}
	if occupiedAt(t, g, 1, 1) || occupiedAt(t, g, 2, 0) {
		t.Fatal("sliding grain left a copy behind")
	}
	if !occupiedAt(t, g, 0, 3) {
		t.Fatal("expected (1,2) to slide into (0,3)")
	}
	if g.Occupied() != 6 {
		t.Fatalf("grain count changed to %d", g.Occupied())
	}
}

func TestPaintFillsBrushSquare(t *testing.T) {
	g := newGrid(t, 10, 10)
	colors := &counter{}
	n := Paint(g, 5, 5, 5, colors)
	if n != 25 || g.Occupied() != 25 {
		t.Fatalf("expected 25 grains, stamped %d, grid has %d", n, g.Occupied())
	}
	for y := 3; y <= 7; y++ {
		for x := 3; x <= 7; x++ {
			if !occupiedAt(t, g, x, y) {
				t.Fatalf("(%d,%d) not painted", x, y)
			}
		}
	}
}

func TestPaintEvenDiameterSpan(t *testing.T) {
	g := newGrid(t, 10, 10)
	if n := Paint(g, 5, 5, 4, &counter{}); n != 25 {
		t.Fatalf("diameter 4 covers [-2,2], expected 25 cells, got %d", n)
	}
	g.Clear()
	if n := Paint(g, 5, 5, 1, &counter{}); n != 1 {
		t.Fatalf("diameter 1 should cover one cell, got %d", n)
	}
}

func TestPaintClipsAtEdges(t *testing.T) {
	g := newGrid(t, 4, 3)
	n := Paint(g, 0, 0, 5, &counter{})
	if n != 9 {
		t.Fatalf("corner brush should cover 3x3 in-bounds cells, got %d", n)
	}
	n = Paint(g, 10, 10, 5, &counter{})
	if n != 0 {
		t.Fatalf("brush entirely outside the grid painted %d cells", n)
	}
}

func TestPaintIsIdempotentOnFilledCells(t *testing.T) {
	g := newGrid(t, 6, 6)
	colors := &counter{}
	Paint(g, 2, 2, 3, colors)
	before := append([]core.Cell(nil), g.Cells()...)

	if n := Paint(g, 2, 2, 3, colors); n != 0 {
		t.Fatalf("second paint stamped %d grains", n)
	}
	for i := range before {
		if before[i] != g.Cells()[i] {
			t.Fatalf("cell %d changed on repaint", i)
		}
	}
}

func TestPaintKeepsExistingGrainColor(t *testing.T) {
	g := newGrid(t, 5, 5)
	grain := put(t, g, 2, 2)
	if n := Paint(g, 2, 2, 3, &counter{}); n != 8 {
		t.Fatalf("expected 8 new grains around an existing one, got %d", n)
	}
	if got, _ := g.Get(2, 2); got != grain {
		t.Fatal("brush overwrote an existing grain")
	}
}

func TestWorldAdvancePaintsThenSteps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Brush = 8, 8, 1
	w, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if n := w.Advance(Input{X: 3, Y: 0, Active: true}); n != 1 {
		t.Fatalf("expected one poured grain, got %d", n)
	}
	if !occupiedAt(t, w.Grid(), 3, 1) {
		t.Fatal("grain poured this frame should already have fallen one row")
	}
	if w.PolarityLeft() {
		t.Fatal("polarity should flip after a frame")
	}
	w.Advance(Input{X: 3, Y: 0})
	if w.Grid().Occupied() != 1 || w.Ticks() != 2 || w.Poured() != 1 {
		t.Fatalf("inactive brush must not pour: grains=%d ticks=%d poured=%d",
			w.Grid().Occupied(), w.Ticks(), w.Poured())
	}
	if w.Moves() != 1 {
		t.Fatalf("expected 1 move on the last tick, got %d", w.Moves())
	}
}

func TestWorldResetIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 20, 20
	cfg.Seed = 99
	w, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	run := func() []core.Cell {
		for i := 0; i < 10; i++ {
			w.Advance(Input{X: 10, Y: 2, Active: true})
		}
		return append([]core.Cell(nil), w.Grid().Cells()...)
	}
	first := run()
	w.Reset(0)
	if w.Grid().Occupied() != 0 || !w.PolarityLeft() || w.Hue() != 0 || w.Ticks() != 0 {
		t.Fatal("Reset did not restore initial state")
	}
	second := run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("cell %d differs between runs with the same seed", i)
		}
	}
}

func TestNewWithConfigValidates(t *testing.T) {
	bad := []func(*Config){
		func(c *Config) { c.Width = 0 },
		func(c *Config) { c.Height = -1 },
		func(c *Config) { c.Brush = 0 },
		func(c *Config) { c.Edge = EdgePolicy(9) },
		func(c *Config) { c.Palette.Saturation = 2 },
	}
	for i, mutate := range bad {
		cfg := DefaultConfig()
		mutate(&cfg)
		if _, err := NewWithConfig(cfg); !errors.Is(err, core.ErrInvalidConfig) {
			t.Fatalf("case %d: error = %v, want ErrInvalidConfig", i, err)
		}
	}
}

func TestFromMapAndRegistry(t *testing.T) {
	cfg := FromMap(map[string]string{"w": "12", "h": "9", "brush": "3", "edge": "symmetric", "seed": "5"})
	if cfg.Width != 12 || cfg.Height != 9 || cfg.Brush != 3 || cfg.Edge != EdgeSymmetric || cfg.Seed != 5 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if _, err := core.New("sand", map[string]string{"edge": "sideways"}); !errors.Is(err, core.ErrInvalidConfig) {
		t.Fatalf("unknown edge policy should fail construction, got %v", err)
	}
	sim, err := core.New("sand", map[string]string{"w": "12", "h": "9"})
	if err != nil {
		t.Fatal(err)
	}
	if sim.Size() != (core.Size{W: 12, H: 9}) || sim.Name() != "sand" {
		t.Fatalf("registry built %s %+v", sim.Name(), sim.Size())
	}
}

func TestParseEdgePolicy(t *testing.T) {
	for _, p := range Policies() {
		got, err := ParseEdgePolicy(p.String())
		if err != nil || got != p {
			t.Fatalf("round trip of %v gave %v, %v", p, got, err)
		}
	}
	if _, err := ParseEdgePolicy("nope"); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}

func TestParametersSnapshot(t *testing.T) {
	w, err := New(6, 4)
	if err != nil {
		t.Fatal(err)
	}
	w.Paint(3, 1)
	snap := w.Parameters()
	if p, ok := snap.Lookup("grains"); !ok || p.Value != "20" {
		t.Fatalf("grains parameter = %+v", p)
	}
	if p, ok := snap.Lookup("edge"); !ok || p.Value != "parity" {
		t.Fatalf("edge parameter = %+v", p)
	}
}
