// Copyright 2026 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mlp

import "github.com/born-ml/glyph/internal/mlp"

// Network is the single-hidden-layer classifier engine.
type Network = mlp.Network

// Sample is one labeled feature vector. The engine never mutates X.
type Sample = mlp.Sample

// Snapshot is a deep copy of a network's parameters, the seam used by
// persistence.
type Snapshot = mlp.Snapshot

// Engine errors, matchable with errors.Is.
var (
	ErrInvalidDimension    = mlp.ErrInvalidDimension
	ErrShapeMismatch       = mlp.ErrShapeMismatch
	ErrLabelOutOfRange     = mlp.ErrLabelOutOfRange
	ErrEmptyInput          = mlp.ErrEmptyInput
	ErrInvalidLearningRate = mlp.ErrInvalidLearningRate
)

// New constructs a network with He-initialized weights and zero biases.
// Construction is deterministic per seed.
//
// Example:
//
//	net, err := mlp.New(35, 32, 10, 42)
//	if err != nil {
//	    log.Fatal(err)
//	}
func New(inputSize, hiddenSize, outputSize int, seed int64) (*Network, error) {
	return mlp.New(inputSize, hiddenSize, outputSize, seed)
}
