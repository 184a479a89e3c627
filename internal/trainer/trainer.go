// Package trainer drives the epoch loop: shuffle, train, evaluate, report,
// with cooperative cancellation between epochs.
package trainer

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/born-ml/glyph/internal/mlp"
)

// Config captures the knobs required by the training loop.
type Config struct {
	Epochs         int
	BatchSize      int
	LearningRate   float64
	Seed           int64   // shuffle stream for the whole run
	TargetAccuracy float64 // stop early once eval accuracy reaches this; 0 disables
	EvalEvery      int     // evaluate every n epochs; 0 means every epoch
}

// Validate rejects configurations the loop cannot run with.
func (c Config) Validate() error {
	if c.Epochs <= 0 {
		return errors.New("trainer: epochs must be > 0")
	}
	if c.BatchSize <= 0 {
		return errors.New("trainer: batch size must be > 0")
	}
	if c.LearningRate <= 0 {
		return errors.New("trainer: learning rate must be > 0")
	}
	if c.TargetAccuracy < 0 || c.TargetAccuracy > 1 {
		return errors.New("trainer: target accuracy must be in [0,1]")
	}
	if c.EvalEvery < 0 {
		return errors.New("trainer: eval interval must be >= 0")
	}
	return nil
}

// Progress reports one completed epoch.
type Progress struct {
	Epoch     int     // 1-based
	Loss      float64 // mean loss over the epoch's batches
	Accuracy  float64 // eval-set accuracy, meaningful only when Evaluated
	Evaluated bool
	Elapsed   time.Duration
}

// Result summarizes a finished run.
type Result struct {
	RunID         string
	EpochsRun     int
	FinalLoss     float64
	FinalAccuracy float64 // from the last evaluated epoch
	Stopped       bool    // true when TargetAccuracy ended the run early
}

// Run drives net through cfg.Epochs training epochs over train, measuring
// accuracy on eval. The network belongs to the loop until Run returns;
// nobody else may call into it meanwhile.
//
// Cancellation is honored between epochs, never mid-batch: Run returns
// ctx.Err() with the completed epochs intact in both the network and the
// Result. onProgress, if non-nil, is called after every completed epoch.
func Run(ctx context.Context, net *mlp.Network, train, eval []mlp.Sample, cfg Config, onProgress func(Progress)) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	evalEvery := cfg.EvalEvery
	if evalEvery == 0 {
		evalEvery = 1
	}

	res := Result{RunID: uuid.NewString()}
	rng := rand.New(rand.NewSource(cfg.Seed))

	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		start := time.Now()
		loss, err := net.TrainEpoch(train, cfg.BatchSize, cfg.LearningRate, rng)
		if err != nil {
			return res, err
		}
		res.EpochsRun = epoch
		res.FinalLoss = loss

		p := Progress{Epoch: epoch, Loss: loss, Elapsed: time.Since(start)}
		if epoch%evalEvery == 0 || epoch == cfg.Epochs {
			acc, err := net.EvaluateAccuracy(eval)
			if err != nil {
				return res, err
			}
			p.Accuracy = acc
			p.Evaluated = true
			res.FinalAccuracy = acc
		}
		if onProgress != nil {
			onProgress(p)
		}
		if p.Evaluated && cfg.TargetAccuracy > 0 && p.Accuracy >= cfg.TargetAccuracy {
			res.Stopped = true
			return res, nil
		}
	}
	return res, nil
}
