package bitmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/glyph/internal/bitmap"
)

// vec flattens canonical-size bitmap text into the float vector Normalize
// should produce for it.
func vec(t *testing.T, rows ...string) []float64 {
	t.Helper()
	b, err := bitmap.Parse(rows...)
	require.NoError(t, err)
	require.Equal(t, bitmap.Width, b.W)
	require.Equal(t, bitmap.Height, b.H)
	out := make([]float64, 0, bitmap.Features)
	for _, cell := range b.Bits {
		if cell {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	}
	return out
}

func TestParseAndString(t *testing.T) {
	b, err := bitmap.Parse(
		"..#..",
		".##..",
		"..#..",
	)
	require.NoError(t, err)
	assert.Equal(t, 5, b.W)
	assert.Equal(t, 3, b.H)
	assert.True(t, b.At(2, 0))
	assert.True(t, b.At(1, 1))
	assert.False(t, b.At(0, 0))
	assert.Equal(t, "..#..\n.##..\n..#..", b.String())
}

func TestParseBinaryDigits(t *testing.T) {
	b, err := bitmap.Parse("01", "10")
	require.NoError(t, err)
	assert.False(t, b.At(0, 0))
	assert.True(t, b.At(1, 0))
	assert.True(t, b.At(0, 1))
	assert.False(t, b.At(1, 1))
}

func TestParseMalformed(t *testing.T) {
	_, err := bitmap.Parse()
	assert.ErrorIs(t, err, bitmap.ErrMalformed)

	_, err = bitmap.Parse("")
	assert.ErrorIs(t, err, bitmap.ErrMalformed)

	_, err = bitmap.Parse("##", "#")
	assert.ErrorIs(t, err, bitmap.ErrMalformed)

	_, err = bitmap.Parse("#x")
	assert.ErrorIs(t, err, bitmap.ErrMalformed)

	assert.Panics(t, func() { bitmap.MustParse("#x") })
}

func TestCloneIsIndependent(t *testing.T) {
	b := bitmap.MustParse("#.", ".#")
	c := b.Clone()
	c.Set(0, 1, true)
	assert.False(t, b.At(0, 1))
	assert.True(t, c.At(0, 1))
}

func TestNormalizeIdentityOnCanonicalGrid(t *testing.T) {
	rows := []string{
		".###.",
		"#...#",
		"#..##",
		"#.#.#",
		"##..#",
		"#...#",
		".###.",
	}
	got := bitmap.Normalize(bitmap.MustParse(rows...))
	assert.Equal(t, vec(t, rows...), got)
}

func TestNormalizeCropsToContent(t *testing.T) {
	rows := []string{
		".###.",
		"#...#",
		"#..##",
		"#.#.#",
		"##..#",
		"#...#",
		".###.",
	}
	glyph := bitmap.MustParse(rows...)

	// The same glyph drawn at an offset inside a larger canvas must
	// normalize identically.
	canvas := bitmap.New(12, 16)
	for y := 0; y < glyph.H; y++ {
		for x := 0; x < glyph.W; x++ {
			canvas.Set(3+x, 4+y, glyph.At(x, y))
		}
	}
	assert.Equal(t, bitmap.Normalize(glyph), bitmap.Normalize(canvas))
}

func TestNormalizeSinglePixelFillsGrid(t *testing.T) {
	b := bitmap.New(9, 9)
	b.Set(4, 4, true)
	want := make([]float64, bitmap.Features)
	for i := range want {
		want[i] = 1
	}
	assert.Equal(t, want, bitmap.Normalize(b))
}

func TestNormalizeSolidBlockFillsGrid(t *testing.T) {
	b := bitmap.New(4, 9)
	for i := range b.Bits {
		b.Bits[i] = true
	}
	want := make([]float64, bitmap.Features)
	for i := range want {
		want[i] = 1
	}
	assert.Equal(t, want, bitmap.Normalize(b))
}

func TestNormalizeEmptyIsZeroVector(t *testing.T) {
	assert.Equal(t, make([]float64, bitmap.Features), bitmap.Normalize(bitmap.Bitmap{}))
	assert.Equal(t, make([]float64, bitmap.Features), bitmap.Normalize(bitmap.New(8, 8)))
}

// TestNormalizeNearestNeighbor pins the sampling arithmetic on a 2x2
// checkerboard: source columns map to [0,0,0,1,1] and source rows to
// [0,0,0,0,1,1,1].
func TestNormalizeNearestNeighbor(t *testing.T) {
	b := bitmap.MustParse(
		"#.",
		".#",
	)
	want := vec(t,
		"###..",
		"###..",
		"###..",
		"###..",
		"...##",
		"...##",
		"...##",
	)
	assert.Equal(t, want, bitmap.Normalize(b))
}
