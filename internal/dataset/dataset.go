// Package dataset synthesizes labeled training data: noisy renderings of
// the ten digit glyphs and a linearly separable two-cluster fixture.
//
// Generators are deterministic per seed so experiments reproduce exactly.
package dataset

import (
	"math/rand"

	"github.com/born-ml/glyph/internal/bitmap"
	"github.com/born-ml/glyph/internal/mathx"
	"github.com/born-ml/glyph/internal/mlp"
)

// Glyphs generates n samples by cycling through the digit classes,
// flipping each cell of the class glyph with probability noise, and
// normalizing the result the same way inference-time input is normalized,
// so training and prediction see one feature distribution. noise is
// clamped to [0,1]; non-positive n yields nil.
func Glyphs(n int, noise float64, seed int64) []mlp.Sample {
	if n <= 0 {
		return nil
	}
	noise = min(max(noise, 0), 1)
	rng := rand.New(rand.NewSource(seed))
	samples := make([]mlp.Sample, 0, n)
	for i := 0; i < n; i++ {
		label := i % NumClasses
		g := templates[label].Clone()
		for j := range g.Bits {
			if rng.Float64() < noise {
				g.Bits[j] = !g.Bits[j]
			}
		}
		samples = append(samples, mlp.Sample{X: bitmap.Normalize(g), Label: label})
	}
	return samples
}

// TwoClusters generates two Gaussian point clouds in the plane, label 0
// around (-2,-2) and label 1 around (+2,+2), interleaved. spread is the
// per-coordinate standard deviation, clamped at 0.
func TwoClusters(perClass int, spread float64, seed int64) []mlp.Sample {
	if perClass <= 0 {
		return nil
	}
	spread = max(spread, 0)
	rng := rand.New(rand.NewSource(seed))
	samples := make([]mlp.Sample, 0, 2*perClass)
	for i := 0; i < perClass; i++ {
		samples = append(samples, mlp.Sample{
			X:     []float64{-2 + spread*mathx.Gaussian(rng), -2 + spread*mathx.Gaussian(rng)},
			Label: 0,
		})
		samples = append(samples, mlp.Sample{
			X:     []float64{2 + spread*mathx.Gaussian(rng), 2 + spread*mathx.Gaussian(rng)},
			Label: 1,
		})
	}
	return samples
}

// Split shuffles a copy of samples with rng and cuts it into train and
// test parts, holdout (clamped to [0,1]) being the test fraction. The
// input slice keeps its order; rng must be non-nil.
func Split(samples []mlp.Sample, holdout float64, rng *rand.Rand) (train, test []mlp.Sample) {
	holdout = min(max(holdout, 0), 1)
	shuffled := make([]mlp.Sample, len(samples))
	copy(shuffled, samples)
	mathx.Shuffle(shuffled, rng)
	cut := int(float64(len(shuffled)) * holdout)
	return shuffled[cut:], shuffled[:cut]
}
