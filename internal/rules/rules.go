package rules

import (
	"errors"
	"fmt"
	"strings"

	"fractalart/internal/core"
)

// ErrNoRule is returned by Lookup when the table has no entry for a pattern.
// During enhancement this is fatal: the rule set does not cover a reachable
// sub-grid, so no valid result exists.
var ErrNoRule = errors.New("no matching rule")

// Table maps small source patterns to their larger replacements. Every
// symmetric variant of a source pattern maps to the same replacement, so
// lookups never need to canonicalize their argument. The table is built once
// and read-only afterwards.
//
// Entries are bucketed by the grids' cheap hash; Lookup confirms candidates
// with full structural equality, since distinct patterns may share a hash.
type Table struct {
	buckets map[uint64][]entry
	len     int
}

type entry struct {
	pattern     core.Grid
	replacement core.Grid
}

// Build parses rule lines of the form "PATTERN => REPLACEMENT" and expands
// each pattern over its symmetry orbit. Any malformed line fails the whole
// build. When the variants of two rules coincide, the later rule wins.
func Build(lines []string) (*Table, error) {
	t := &Table{buckets: make(map[uint64][]entry, len(lines)*8)}
	for _, line := range lines {
		pattern, replacement, err := parseRule(line)
		if err != nil {
			return nil, err
		}
		for _, variant := range pattern.Transformations() {
			t.insert(variant, replacement)
		}
	}
	return t, nil
}

func parseRule(line string) (core.Grid, core.Grid, error) {
	lhs, rhs, found := strings.Cut(line, " => ")
	if !found {
		return core.Grid{}, core.Grid{}, fmt.Errorf("%w: rule %q has no \" => \" separator", core.ErrParse, line)
	}
	pattern, err := core.ParseGrid(lhs)
	if err != nil {
		return core.Grid{}, core.Grid{}, fmt.Errorf("rule %q pattern: %w", line, err)
	}
	replacement, err := core.ParseGrid(rhs)
	if err != nil {
		return core.Grid{}, core.Grid{}, fmt.Errorf("rule %q replacement: %w", line, err)
	}
	return pattern, replacement, nil
}

func (t *Table) insert(pattern, replacement core.Grid) {
	h := pattern.Hash()
	bucket := t.buckets[h]
	for i := range bucket {
		if bucket[i].pattern.Equal(pattern) {
			bucket[i].replacement = replacement
			return
		}
	}
	t.buckets[h] = append(bucket, entry{pattern: pattern, replacement: replacement})
	t.len++
}

// Lookup returns the replacement for the exact pattern g. A miss wraps
// ErrNoRule.
func (t *Table) Lookup(g core.Grid) (core.Grid, error) {
	for _, e := range t.buckets[g.Hash()] {
		if e.pattern.Equal(g) {
			return e.replacement, nil
		}
	}
	return core.Grid{}, fmt.Errorf("%w: %s", ErrNoRule, g)
}

// Len returns the number of distinct pattern keys in the table.
func (t *Table) Len() int { return t.len }
