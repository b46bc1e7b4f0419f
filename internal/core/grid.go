package core

import (
	"fmt"
	"strings"
)

// Pixel is a single binary cell of a Grid.
type Pixel uint8

const (
	// Off is an unlit cell, encoded as '.'.
	Off Pixel = 0
	// On is a lit cell, encoded as '#'.
	On Pixel = 1
)

// Grid is an immutable square matrix of pixels stored in row-major order.
// All transformations return new Grid values; the zero Grid is not valid.
type Grid struct {
	size   int
	pixels []Pixel
}

// NewGrid builds a grid from a flat row-major pixel slice. The slice is
// copied, so the caller keeps ownership of its buffer.
func NewGrid(size int, pixels []Pixel) (Grid, error) {
	if size < 1 {
		return Grid{}, fmt.Errorf("%w: size %d, want >= 1", ErrShape, size)
	}
	if len(pixels) != size*size {
		return Grid{}, fmt.Errorf("%w: %d pixels for size %d, want %d", ErrShape, len(pixels), size, size*size)
	}
	data := make([]Pixel, len(pixels))
	copy(data, pixels)
	return Grid{size: size, pixels: data}, nil
}

// ParseGrid decodes a textual grid. Rows are separated by '/' or '\n' and
// cells are '#' (on) or '.' (off). The side length is inferred from the row
// count; the total pixel count must then be size*size. Rows of uneven length
// are not rejected individually, only through that final count check.
func ParseGrid(s string) (Grid, error) {
	rows := strings.Split(strings.ReplaceAll(s, "\n", "/"), "/")
	pixels := make([]Pixel, 0, len(s))
	for _, row := range rows {
		for _, c := range row {
			switch c {
			case '#':
				pixels = append(pixels, On)
			case '.':
				pixels = append(pixels, Off)
			default:
				return Grid{}, fmt.Errorf("%w: unexpected character %q in %q", ErrParse, c, s)
			}
		}
	}
	size := len(rows)
	if len(pixels) != size*size {
		return Grid{}, fmt.Errorf("%w: %d pixels in %d rows of %q", ErrParse, len(pixels), size, s)
	}
	return Grid{size: size, pixels: pixels}, nil
}

// Compose assembles an n×n arrangement of equal-sized sub-grids into one
// grid, preserving spatial layout. subs is row-major at the macro level.
func Compose(n int, subs []Grid) (Grid, error) {
	if n < 1 {
		return Grid{}, fmt.Errorf("%w: macro size %d, want >= 1", ErrShape, n)
	}
	if len(subs) != n*n {
		return Grid{}, fmt.Errorf("%w: %d sub-grids for macro size %d, want %d", ErrShape, len(subs), n, n*n)
	}
	s := subs[0].size
	for i, sub := range subs {
		if sub.size != s {
			return Grid{}, fmt.Errorf("%w: sub-grid %d has size %d, want %d", ErrShape, i, sub.size, s)
		}
	}
	size := n * s
	pixels := make([]Pixel, 0, size*size)
	for row := 0; row < n; row++ {
		for y := 0; y < s; y++ {
			for col := 0; col < n; col++ {
				sub := subs[row*n+col]
				pixels = append(pixels, sub.pixels[y*s:(y+1)*s]...)
			}
		}
	}
	return Grid{size: size, pixels: pixels}, nil
}

// Size returns the side length in cells.
func (g Grid) Size() int { return g.size }

// At returns the pixel at column x, row y. Coordinates must be in [0, size).
func (g Grid) At(x, y int) Pixel { return g.pixels[y*g.size+x] }

// Pixels returns a copy of the row-major pixel sequence.
func (g Grid) Pixels() []Pixel {
	out := make([]Pixel, len(g.pixels))
	copy(out, g.pixels)
	return out
}

// PopCount returns the number of lit pixels.
func (g Grid) PopCount() int {
	n := 0
	for _, p := range g.pixels {
		n += int(p)
	}
	return n
}

// String encodes the grid in the '/'-separated textual form accepted by
// ParseGrid.
func (g Grid) String() string {
	var b strings.Builder
	b.Grow(g.size*g.size + g.size)
	for y := 0; y < g.size; y++ {
		if y > 0 {
			b.WriteByte('/')
		}
		for x := 0; x < g.size; x++ {
			if g.At(x, y) == On {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Equal reports exact structural equality: same size, same pixels. Symmetric
// variants of the same pattern are not equal.
func (g Grid) Equal(o Grid) bool {
	if g.size != o.size {
		return false
	}
	for i, p := range g.pixels {
		if o.pixels[i] != p {
			return false
		}
	}
	return true
}

// Hash returns a cheap lookup accelerator derived from the size, the four
// corners and the center. Equal grids hash equally; the converse does not
// hold, so table lookups must confirm candidates with Equal.
func (g Grid) Hash() uint64 {
	n := g.size - 1
	h := uint64(g.size)
	for _, p := range [5]Pixel{g.At(0, 0), g.At(n, 0), g.At(0, n), g.At(n, n), g.At(n/2, n/2)} {
		h = h*31 + uint64(p) + 1
	}
	return h
}

// SubGrid extracts the square region with inclusive top-left (tlx, tly) and
// bottom-right (brx, bry) corners. All four coordinates must lie in
// [0, size).
func (g Grid) SubGrid(tlx, tly, brx, bry int) (Grid, error) {
	for _, c := range [4]int{tlx, tly, brx, bry} {
		if c < 0 || c >= g.size {
			return Grid{}, fmt.Errorf("%w: coordinate %d outside [0, %d)", ErrShape, c, g.size)
		}
	}
	w := brx - tlx + 1
	pixels := make([]Pixel, 0, w*w)
	for y := tly; y <= bry; y++ {
		pixels = append(pixels, g.pixels[y*g.size+tlx:y*g.size+brx+1]...)
	}
	return NewGrid(w, pixels)
}

// Rotated returns the grid rotated 90 degrees clockwise.
func (g Grid) Rotated() Grid {
	pixels := make([]Pixel, len(g.pixels))
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			pixels[y*g.size+x] = g.At(y, g.size-1-x)
		}
	}
	return Grid{size: g.size, pixels: pixels}
}

// Flipped returns the horizontal mirror of the grid.
func (g Grid) Flipped() Grid {
	pixels := make([]Pixel, len(g.pixels))
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			pixels[y*g.size+x] = g.At(g.size-1-x, y)
		}
	}
	return Grid{size: g.size, pixels: pixels}
}

// Transformations returns the grid's orbit under the dihedral group of the
// square: the four rotations and their mirrors, with duplicates collapsed.
// The result has between 1 and 8 members and always includes the grid
// itself.
func (g Grid) Transformations() []Grid {
	variants := make([]Grid, 0, 8)
	add := func(v Grid) {
		for _, seen := range variants {
			if seen.Equal(v) {
				return
			}
		}
		variants = append(variants, v)
	}
	cur := g
	for i := 0; i < 4; i++ {
		add(cur)
		add(cur.Flipped())
		cur = cur.Rotated()
	}
	return variants
}
