// Package bitmap turns arbitrary-size monochrome bitmaps into the
// fixed-length feature vectors the classifier consumes.
//
// Normalization crops to the bounding box of the set cells and rescales to
// the canonical 5x7 grid with nearest-neighbor sampling, so a glyph drawn
// small in the corner of a large canvas produces the same features as the
// same glyph drawn full size.
package bitmap

import (
	"errors"
	"fmt"
	"strings"
)

// Canonical grid the classifier was designed around.
const (
	Width    = 5
	Height   = 7
	Features = Width * Height
)

// ErrMalformed reports bitmap text that cannot be parsed.
var ErrMalformed = errors.New("malformed bitmap")

// Bitmap is a row-major monochrome grid. The zero value is empty.
type Bitmap struct {
	W, H int
	Bits []bool
}

// New returns a cleared w by h bitmap. Non-positive dimensions yield an
// empty bitmap.
func New(w, h int) Bitmap {
	if w <= 0 || h <= 0 {
		return Bitmap{}
	}
	return Bitmap{W: w, H: h, Bits: make([]bool, w*h)}
}

// At reports the cell at column x, row y. Coordinates must lie within
// bounds.
func (b Bitmap) At(x, y int) bool {
	return b.Bits[y*b.W+x]
}

// Set writes the cell at column x, row y. Coordinates must lie within
// bounds.
func (b Bitmap) Set(x, y int, v bool) {
	b.Bits[y*b.W+x] = v
}

// Clone returns a deep copy sharing no storage with b.
func (b Bitmap) Clone() Bitmap {
	return Bitmap{W: b.W, H: b.H, Bits: append([]bool(nil), b.Bits...)}
}

// Parse builds a bitmap from text rows. Set cells are '#' or '1', clear
// cells are '.' or '0'. Rows must be non-empty and of equal length.
func Parse(rows ...string) (Bitmap, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Bitmap{}, fmt.Errorf("%w: no rows", ErrMalformed)
	}
	b := New(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != b.W {
			return Bitmap{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformed, y, len(row), b.W)
		}
		for x := 0; x < b.W; x++ {
			switch row[x] {
			case '#', '1':
				b.Set(x, y, true)
			case '.', '0':
			default:
				return Bitmap{}, fmt.Errorf("%w: row %d has invalid cell %q", ErrMalformed, y, row[x])
			}
		}
	}
	return b, nil
}

// MustParse is Parse for statically known bitmaps. It panics on malformed
// input.
func MustParse(rows ...string) Bitmap {
	b, err := Parse(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

// String renders the bitmap in Parse's '#'/'.' syntax.
func (b Bitmap) String() string {
	var sb strings.Builder
	for y := 0; y < b.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.W; x++ {
			if b.At(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Normalize maps b onto the canonical grid and flattens it row-major into
// a Features-length vector of 0s and 1s. A bitmap with no set cells yields
// the all-zero vector.
func Normalize(b Bitmap) []float64 {
	out := make([]float64, Features)
	minX, minY, maxX, maxY, ok := bounds(b)
	if !ok {
		return out
	}
	cw := maxX - minX + 1
	ch := maxY - minY + 1
	for y := 0; y < Height; y++ {
		sy := minY + y*ch/Height
		for x := 0; x < Width; x++ {
			sx := minX + x*cw/Width
			if b.At(sx, sy) {
				out[y*Width+x] = 1
			}
		}
	}
	return out
}

// bounds returns the bounding box of the set cells, ok=false when none are
// set.
func bounds(b Bitmap) (minX, minY, maxX, maxY int, ok bool) {
	minX, minY = b.W, b.H
	maxX, maxY = -1, -1
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if !b.At(x, y) {
				continue
			}
			minX = min(minX, x)
			minY = min(minY, y)
			maxX = max(maxX, x)
			maxY = max(maxY, y)
		}
	}
	return minX, minY, maxX, maxY, maxX >= 0
}
