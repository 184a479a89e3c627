// Copyright 2026 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset synthesizes labeled training data for the glyph engine:
// noisy renderings of the ten digit glyphs and a linearly separable
// two-cluster fixture. Generators are deterministic per seed.
package dataset

import (
	"math/rand"

	"github.com/born-ml/glyph/internal/bitmap"
	"github.com/born-ml/glyph/internal/dataset"
	"github.com/born-ml/glyph/internal/mlp"
)

// NumClasses is the number of digit classes the generators emit.
const NumClasses = dataset.NumClasses

// Template returns a copy of the 5x7 dot-matrix glyph for digit d.
func Template(d int) bitmap.Bitmap {
	return dataset.Template(d)
}

// Glyphs generates n samples by cycling through the digit classes,
// flipping glyph cells with probability noise and normalizing the result
// the same way inference-time input is normalized.
func Glyphs(n int, noise float64, seed int64) []mlp.Sample {
	return dataset.Glyphs(n, noise, seed)
}

// TwoClusters generates two Gaussian point clouds in the plane, one per
// class, interleaved.
func TwoClusters(perClass int, spread float64, seed int64) []mlp.Sample {
	return dataset.TwoClusters(perClass, spread, seed)
}

// Split shuffles a copy of samples and cuts it into train and test parts,
// holdout being the test fraction.
func Split(samples []mlp.Sample, holdout float64, rng *rand.Rand) (train, test []mlp.Sample) {
	return dataset.Split(samples, holdout, rng)
}
