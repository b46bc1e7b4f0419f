package fractal

import (
	"fmt"
	"strings"

	"fractalart/internal/core"
	"fractalart/internal/rules"
)

// DefaultSeed is the 3×3 starting pattern every session begins from unless
// another is supplied.
const DefaultSeed = ".#./..#/###"

// DemoRules is a minimal rule set that enhances DefaultSeed for two rounds.
// Real rule sets cover every 2×2 and 3×3 pattern and run indefinitely.
var DemoRules = []string{
	"../.# => ##./#../...",
	".#./..#/### => #..#/..../..../#..#",
}

// Config holds session parameters.
type Config struct {
	// Rules is one rule per line, "PATTERN => REPLACEMENT".
	Rules []string
	// Seed is a textual grid encoding.
	Seed string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Rules: DemoRules, Seed: DefaultSeed}
}

// FromMap populates a Config from a string map. "rules" carries the full
// newline-separated rule text, "seed" a grid encoding.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rules"]; ok && strings.TrimSpace(v) != "" {
		c.Rules = SplitRules(v)
	}
	if v, ok := cfg["seed"]; ok && v != "" {
		c.Seed = v
	}
	return c
}

// SplitRules breaks rule text into one line per rule, dropping blank lines.
func SplitRules(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Enhance performs one enhancement round: partition the grid into 2×2 pieces
// if its size is even, 3×3 pieces otherwise, replace each piece via the rule
// table, and reassemble. The result is (size/step)*(step+1) cells per side.
func Enhance(g core.Grid, t *rules.Table) (core.Grid, error) {
	size := g.Size()
	step := 3
	if size%2 == 0 {
		step = 2
	} else if size%3 != 0 {
		return core.Grid{}, fmt.Errorf("%w: size %d divisible by neither 2 nor 3", core.ErrShape, size)
	}
	n := size / step
	pieces := make([]core.Grid, 0, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			x, y := col*step, row*step
			piece, err := g.SubGrid(x, y, x+step-1, y+step-1)
			if err != nil {
				return core.Grid{}, err
			}
			replacement, err := t.Lookup(piece)
			if err != nil {
				return core.Grid{}, err
			}
			pieces = append(pieces, replacement)
		}
	}
	return core.Compose(n, pieces)
}

// Session pairs a seed grid with an immutable rule table and answers "what
// does the grid look like after K rounds". It keeps the most recent round as
// a cursor so increasing queries extend previous work instead of starting
// over; correctness never depends on that cache.
type Session struct {
	seed  core.Grid
	table *rules.Table

	cur   core.Grid
	round int
	cells []uint8
}

// New builds a session from rule lines and a textual seed pattern. An empty
// seed selects DefaultSeed. Any unparsable rule or seed fails construction.
func New(ruleLines []string, seed string) (*Session, error) {
	if seed == "" {
		seed = DefaultSeed
	}
	g, err := core.ParseGrid(seed)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	if g.Size()%2 != 0 && g.Size()%3 != 0 {
		return nil, fmt.Errorf("%w: seed size %d divisible by neither 2 nor 3", core.ErrShape, g.Size())
	}
	table, err := rules.Build(ruleLines)
	if err != nil {
		return nil, err
	}
	return &Session{seed: g, table: table, cur: g}, nil
}

// Seed returns the starting grid.
func (s *Session) Seed() core.Grid { return s.seed }

// Round returns the number of rounds applied to the current grid.
func (s *Session) Round() int { return s.round }

// Grid returns the current grid.
func (s *Session) Grid() core.Grid { return s.cur }

// Enhance returns the grid after n rounds from the seed. n = 0 returns the
// seed unchanged.
func (s *Session) Enhance(n int) (core.Grid, error) {
	if n < s.round {
		s.cur, s.round = s.seed, 0
		s.cells = nil
	}
	for s.round < n {
		if err := s.Step(); err != nil {
			return core.Grid{}, err
		}
	}
	return s.cur, nil
}

// Name returns the simulation identifier.
func (s *Session) Name() string { return "fractal" }

// Size returns the current grid dimensions. It changes after every Step.
func (s *Session) Size() core.Size {
	return core.Size{W: s.cur.Size(), H: s.cur.Size()}
}

// Reset rewinds to the seed grid. The progression is deterministic, so the
// seed argument of the Sim contract is ignored.
func (s *Session) Reset(seed int64) {
	s.cur = s.seed
	s.round = 0
	s.cells = nil
}

// Step applies one enhancement round in place.
func (s *Session) Step() error {
	next, err := Enhance(s.cur, s.table)
	if err != nil {
		return fmt.Errorf("round %d: %w", s.round+1, err)
	}
	s.cur = next
	s.round++
	s.cells = nil
	return nil
}

// Cells exposes the current grid as a flat 0/1 buffer for rendering.
func (s *Session) Cells() []uint8 {
	if s.cells == nil {
		pixels := s.cur.Pixels()
		s.cells = make([]uint8, len(pixels))
		for i, p := range pixels {
			s.cells[i] = uint8(p)
		}
	}
	return s.cells
}

func init() {
	core.Register("fractal", func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		return New(c.Rules, c.Seed)
	})
}
