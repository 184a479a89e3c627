package dataset_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/glyph/internal/bitmap"
	"github.com/born-ml/glyph/internal/dataset"
	"github.com/born-ml/glyph/internal/mlp"
)

func flatten(b bitmap.Bitmap) []float64 {
	out := make([]float64, 0, len(b.Bits))
	for _, cell := range b.Bits {
		if cell {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	}
	return out
}

func TestTemplates(t *testing.T) {
	seen := make(map[string]int, dataset.NumClasses)
	for d := 0; d < dataset.NumClasses; d++ {
		g := dataset.Template(d)
		require.Equal(t, bitmap.Width, g.W, "digit %d", d)
		require.Equal(t, bitmap.Height, g.H, "digit %d", d)

		// Every template touches all four grid edges, so normalization
		// must be the identity on it.
		assert.Equal(t, flatten(g), bitmap.Normalize(g), "digit %d", d)

		if prev, dup := seen[g.String()]; dup {
			t.Fatalf("digits %d and %d share a glyph", prev, d)
		}
		seen[g.String()] = d
	}
}

func TestTemplateReturnsCopy(t *testing.T) {
	g := dataset.Template(3)
	g.Set(0, 0, !g.At(0, 0))
	assert.NotEqual(t, g.Bits, dataset.Template(3).Bits)
}

func TestTemplateRange(t *testing.T) {
	assert.Panics(t, func() { dataset.Template(-1) })
	assert.Panics(t, func() { dataset.Template(dataset.NumClasses) })
}

func TestGlyphsLabelsCycle(t *testing.T) {
	samples := dataset.Glyphs(25, 0, 1)
	require.Len(t, samples, 25)
	for i, s := range samples {
		assert.Equal(t, i%dataset.NumClasses, s.Label)
		assert.Len(t, s.X, bitmap.Features)
	}
}

func TestGlyphsZeroNoiseMatchesTemplates(t *testing.T) {
	for _, s := range dataset.Glyphs(20, 0, 99) {
		assert.Equal(t, flatten(dataset.Template(s.Label)), s.X)
	}
}

func TestGlyphsDeterministicPerSeed(t *testing.T) {
	a := dataset.Glyphs(30, 0.1, 7)
	b := dataset.Glyphs(30, 0.1, 7)
	assert.Equal(t, a, b)

	c := dataset.Glyphs(30, 0.1, 8)
	assert.NotEqual(t, a, c)
}

func TestGlyphsNoiseFlipsCells(t *testing.T) {
	noisy := dataset.Glyphs(10, 0.5, 7)
	differs := false
	for _, s := range noisy {
		if !assert.ObjectsAreEqual(flatten(dataset.Template(s.Label)), s.X) {
			differs = true
		}
		for _, v := range s.X {
			require.True(t, v == 0 || v == 1)
		}
	}
	assert.True(t, differs, "noise 0.5 should corrupt at least one sample")
}

func TestGlyphsFullNoiseInverts(t *testing.T) {
	// noise 1 flips every cell; the inverted zero-glyph still touches all
	// four edges, so its normalization is the plain inversion.
	want := flatten(dataset.Template(0))
	for i, v := range want {
		want[i] = 1 - v
	}
	samples := dataset.Glyphs(1, 1, 3)
	require.Len(t, samples, 1)
	assert.Equal(t, want, samples[0].X)
}

func TestGlyphsEmpty(t *testing.T) {
	assert.Nil(t, dataset.Glyphs(0, 0.1, 1))
	assert.Nil(t, dataset.Glyphs(-5, 0.1, 1))
}

func TestTwoClustersShape(t *testing.T) {
	samples := dataset.TwoClusters(4, 0.3, 5)
	require.Len(t, samples, 8)
	for i, s := range samples {
		assert.Equal(t, i%2, s.Label)
		assert.Len(t, s.X, 2)
	}
}

func TestTwoClustersSeparated(t *testing.T) {
	for _, s := range dataset.TwoClusters(50, 0.3, 9) {
		sum := s.X[0] + s.X[1]
		if s.Label == 0 {
			assert.Negative(t, sum)
		} else {
			assert.Positive(t, sum)
		}
	}
}

func TestTwoClustersDeterministicPerSeed(t *testing.T) {
	assert.Equal(t, dataset.TwoClusters(10, 0.3, 4), dataset.TwoClusters(10, 0.3, 4))
	assert.NotEqual(t, dataset.TwoClusters(10, 0.3, 4), dataset.TwoClusters(10, 0.3, 5))
}

func TestSplit(t *testing.T) {
	samples := dataset.TwoClusters(4, 0.3, 11)
	before := make([]mlp.Sample, len(samples))
	copy(before, samples)

	train, test := dataset.Split(samples, 0.25, rand.New(rand.NewSource(2)))
	assert.Len(t, test, 2)
	assert.Len(t, train, 6)

	assert.Equal(t, before, samples, "input order must be preserved")
	assert.ElementsMatch(t, samples, append(append([]mlp.Sample{}, train...), test...))
}

func TestSplitHoldoutClamped(t *testing.T) {
	samples := dataset.TwoClusters(3, 0.3, 11)
	rng := rand.New(rand.NewSource(2))

	train, test := dataset.Split(samples, -0.5, rng)
	assert.Len(t, train, 6)
	assert.Empty(t, test)

	train, test = dataset.Split(samples, 1.5, rng)
	assert.Empty(t, train)
	assert.Len(t, test, 6)
}
