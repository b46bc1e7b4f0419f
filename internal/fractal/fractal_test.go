package fractal

import (
	"errors"
	"testing"

	"fractalart/internal/core"
	"fractalart/internal/rules"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	s, err := New(DemoRules, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestEnhanceZeroReturnsSeed(t *testing.T) {
	s := newSession(t)
	g, err := s.Enhance(0)
	if err != nil {
		t.Fatal(err)
	}
	if !g.Equal(s.Seed()) {
		t.Fatalf("Enhance(0) = %s, want the seed %s", g, s.Seed())
	}
	if g.String() != DefaultSeed {
		t.Fatalf("default seed = %s, want %s", g, DefaultSeed)
	}
}

func TestWorkedExample(t *testing.T) {
	s := newSession(t)

	g1, err := s.Enhance(1)
	if err != nil {
		t.Fatal(err)
	}
	if g1.Size() != 4 || g1.PopCount() != 4 {
		t.Fatalf("round 1: size %d with %d on, want size 4 with 4 on", g1.Size(), g1.PopCount())
	}
	if got := g1.String(); got != "#..#/..../..../#..#" {
		t.Fatalf("round 1 grid = %s", got)
	}

	g2, err := s.Enhance(2)
	if err != nil {
		t.Fatal(err)
	}
	if g2.Size() != 6 || g2.PopCount() != 12 {
		t.Fatalf("round 2: size %d with %d on, want size 6 with 12 on", g2.Size(), g2.PopCount())
	}
	if got := g2.String(); got != "##.##./#..#../....../##.##./#..#../......" {
		t.Fatalf("round 2 grid = %s", got)
	}
}

func TestEnhanceRewindsForSmallerRound(t *testing.T) {
	s := newSession(t)
	if _, err := s.Enhance(2); err != nil {
		t.Fatal(err)
	}
	g, err := s.Enhance(1)
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 4 {
		t.Fatalf("Enhance(1) after Enhance(2) has size %d, want 4", g.Size())
	}
}

func TestGrowthLaw(t *testing.T) {
	table, err := rules.Build(DemoRules)
	if err != nil {
		t.Fatal(err)
	}
	// Odd seed partitions in 3x3 steps, its result in 2x2 steps.
	g, err := core.ParseGrid(DefaultSeed)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []int{4, 6} {
		step := 3
		if g.Size()%2 == 0 {
			step = 2
		}
		next, err := Enhance(g, table)
		if err != nil {
			t.Fatalf("enhancing size %d: %v", g.Size(), err)
		}
		if next.Size() != want || next.Size() != g.Size()/step*(step+1) {
			t.Fatalf("size %d grew to %d, want %d", g.Size(), next.Size(), want)
		}
		g = next
	}
}

func TestEnhanceRejectsIndivisibleSize(t *testing.T) {
	table, err := rules.Build(DemoRules)
	if err != nil {
		t.Fatal(err)
	}
	pixels := make([]core.Pixel, 25)
	g, err := core.NewGrid(5, pixels)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Enhance(g, table); !errors.Is(err, core.ErrShape) {
		t.Fatalf("expected ErrShape for size 5, got %v", err)
	}
}

func TestRuleMissIsFatal(t *testing.T) {
	s, err := New([]string{"../.# => ##./#../..."}, "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Enhance(1); !errors.Is(err, rules.ErrNoRule) {
		t.Fatalf("expected ErrNoRule for uncovered 3x3 seed, got %v", err)
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New([]string{"garbage"}, ""); err == nil {
		t.Fatal("expected error for malformed rule line")
	}
	if _, err := New(DemoRules, ".#./..#"); !errors.Is(err, core.ErrParse) {
		t.Fatalf("expected ErrParse for malformed seed, got %v", err)
	}
	if _, err := New(DemoRules, "...../...../...../...../....."); !errors.Is(err, core.ErrShape) {
		t.Fatalf("expected ErrShape for a size-5 seed, got %v", err)
	}
}

func TestSessionSimContract(t *testing.T) {
	s := newSession(t)
	if s.Name() != "fractal" {
		t.Fatalf("Name = %q", s.Name())
	}
	if size := s.Size(); size.W != 3 || size.H != 3 {
		t.Fatalf("seed Size = %+v, want 3x3", size)
	}

	if err := s.Step(); err != nil {
		t.Fatal(err)
	}
	if err := s.Step(); err != nil {
		t.Fatal(err)
	}
	if s.Round() != 2 {
		t.Fatalf("Round = %d after two steps, want 2", s.Round())
	}
	if size := s.Size(); size.W != 6 || size.H != 6 {
		t.Fatalf("Size after two steps = %+v, want 6x6", size)
	}

	cells := s.Cells()
	if len(cells) != 36 {
		t.Fatalf("Cells length = %d, want 36", len(cells))
	}
	on := 0
	for _, c := range cells {
		on += int(c)
	}
	if on != 12 {
		t.Fatalf("%d cells on after two steps, want 12", on)
	}

	s.Reset(0)
	if s.Round() != 0 || s.Size().W != 3 {
		t.Fatalf("Reset left round %d size %d", s.Round(), s.Size().W)
	}
	if !s.Grid().Equal(s.Seed()) {
		t.Fatal("Reset did not restore the seed grid")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(nil)
	if c.Seed != DefaultSeed || len(c.Rules) != len(DemoRules) {
		t.Fatalf("nil map config = %+v", c)
	}

	c = FromMap(map[string]string{
		"rules": "../.# => ##./#../...\n\n.#./..#/### => #..#/..../..../#..#\n",
		"seed":  "#..#/..../..../#..#",
	})
	if len(c.Rules) != 2 {
		t.Fatalf("parsed %d rule lines, want 2", len(c.Rules))
	}
	if c.Seed != "#..#/..../..../#..#" {
		t.Fatalf("seed = %q", c.Seed)
	}

	s, err := New(c.Rules, c.Seed)
	if err != nil {
		t.Fatal(err)
	}
	g, err := s.Enhance(1)
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 6 {
		t.Fatalf("even seed grew to %d, want 6", g.Size())
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["fractal"]
	if !ok {
		t.Fatal("fractal sim not registered")
	}
	sim, err := factory(nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := sim.Step(); err != nil {
		t.Fatal(err)
	}
	if sim.Size().W != 4 {
		t.Fatalf("registered sim grew to %d, want 4", sim.Size().W)
	}
}
