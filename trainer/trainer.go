// Copyright 2026 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package trainer drives the glyph training loop: epochs of shuffled
// mini-batch SGD with periodic evaluation, early stopping and cooperative
// cancellation between epochs.
package trainer

import (
	"context"

	"github.com/born-ml/glyph/internal/mlp"
	"github.com/born-ml/glyph/internal/trainer"
)

// Config captures the knobs required by the training loop.
type Config = trainer.Config

// Progress reports one completed epoch.
type Progress = trainer.Progress

// Result summarizes a finished run.
type Result = trainer.Result

// Run drives net through cfg.Epochs training epochs over train, measuring
// accuracy on eval. The network belongs to the loop until Run returns.
// Cancellation is honored between epochs and keeps completed work.
//
// Example:
//
//	res, err := trainer.Run(ctx, net, train, test, trainer.Config{
//	    Epochs:       200,
//	    BatchSize:    16,
//	    LearningRate: 0.1,
//	    Seed:         1,
//	}, func(p trainer.Progress) {
//	    log.Printf("epoch=%d loss=%.4f", p.Epoch, p.Loss)
//	})
func Run(ctx context.Context, net *mlp.Network, train, eval []mlp.Sample, cfg Config, onProgress func(Progress)) (Result, error) {
	return trainer.Run(ctx, net, train, eval, cfg, onProgress)
}
