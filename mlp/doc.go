// Copyright 2026 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mlp provides the glyph classifier engine: a single-hidden-layer
// feed-forward network trained with mini-batch SGD and hand-written
// backpropagation.
//
// # Overview
//
// The engine is deliberately transparent: flat float64 buffers, explicit
// loops, no autodiff and no external numeric backend. It classifies
// fixed-length feature vectors into one of several classes through an
// input -> ReLU hidden -> softmax output pipeline.
//
// This package contains:
//   - Network: the classifier with Predict, PredictProbs, TrainBatch,
//     TrainEpoch and EvaluateAccuracy
//   - Sample: one labeled feature vector
//   - Snapshot: a deep copy of the parameters for persistence
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/glyph/dataset"
//	    "github.com/born-ml/glyph/mlp"
//	)
//
//	func main() {
//	    net, err := mlp.New(35, 32, 10, 42)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    samples := dataset.Glyphs(500, 0.05, 1)
//	    rng := rand.New(rand.NewSource(1))
//	    for epoch := 0; epoch < 200; epoch++ {
//	        loss, err := net.TrainEpoch(samples, 16, 0.1, rng)
//	        if err != nil {
//	            log.Fatal(err)
//	        }
//	        _ = loss
//	    }
//
//	    label, _ := net.Predict(samples[0].X)
//	    fmt.Println("predicted", label)
//	}
//
// # Concurrency
//
// A Network is not synchronized. One caller drives it at a time; train in
// one goroutine, hand the instance over, then predict. Concurrent readers
// are safe only while no training is running.
package mlp
