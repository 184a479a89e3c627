// Package main provides the glyph classifier CLI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/born-ml/glyph/bitmap"
	"github.com/born-ml/glyph/dataset"
	"github.com/born-ml/glyph/internal/config"
	"github.com/born-ml/glyph/mlp"
	"github.com/born-ml/glyph/persist"
	"github.com/born-ml/glyph/trainer"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	switch os.Args[1] {
	case "train":
		runTrain(os.Args[2:])
	case "eval":
		runEval(os.Args[2:])
	case "predict":
		runPredict(os.Args[2:])
	case "version":
		fmt.Printf("glyph %s\n", version)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("glyph - a transparent digit classifier")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  train      Train a model on synthetic glyphs")
	fmt.Println("  eval       Evaluate a saved model on fresh glyphs")
	fmt.Println("  predict    Classify a bitmap or image file")
	fmt.Println("  version    Show version")
}

func runTrain(args []string) {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (defaults apply when empty)")
	hiddenSize := fs.Int("hidden-size", 0, "Hidden layer width")
	epochs := fs.Int("epochs", 0, "Number of training epochs")
	batchSize := fs.Int("batch-size", 0, "Batch size")
	learningRate := fs.Float64("learning-rate", 0, "SGD learning rate")
	seed := fs.Int64("seed", 0, "PRNG seed")
	perClass := fs.Int("samples-per-class", 0, "Synthetic samples per digit class")
	noise := fs.Float64("noise", -1, "Cell flip probability in [0,1]")
	holdout := fs.Float64("holdout", -1, "Held-out evaluation fraction")
	target := fs.Float64("target-accuracy", -1, "Stop early at this eval accuracy")
	evalEvery := fs.Int("eval-every", 0, "Evaluate every N epochs")
	modelPath := fs.String("model", "", "Where to write the trained model")
	fs.Parse(args)

	cfg := config.Defaults()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}
	cfg.ApplyOverrides(config.Overrides{
		HiddenSize:      *hiddenSize,
		Epochs:          *epochs,
		BatchSize:       *batchSize,
		LearningRate:    *learningRate,
		Seed:            *seed,
		SamplesPerClass: *perClass,
		Noise:           *noise,
		Holdout:         *holdout,
		TargetAccuracy:  *target,
		EvalEvery:       *evalEvery,
		ModelPath:       *modelPath,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	total := cfg.SamplesPerClass * dataset.NumClasses
	samples := dataset.Glyphs(total, cfg.Noise, cfg.Seed)
	train, test := dataset.Split(samples, cfg.Holdout, rand.New(rand.NewSource(cfg.Seed)))
	log.Printf("dataset=glyphs total=%d train=%d test=%d noise=%.2f", total, len(train), len(test), cfg.Noise)

	net, err := mlp.New(bitmap.Features, cfg.HiddenSize, dataset.NumClasses, cfg.Seed)
	if err != nil {
		log.Fatalf("build network: %v", err)
	}
	log.Printf("network=%dx%dx%d parameters=%d",
		bitmap.Features, cfg.HiddenSize, dataset.NumClasses, net.ParameterCount())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := trainer.Run(ctx, net, train, test, trainer.Config{
		Epochs:         cfg.Epochs,
		BatchSize:      cfg.BatchSize,
		LearningRate:   cfg.LearningRate,
		Seed:           cfg.Seed,
		TargetAccuracy: cfg.TargetAccuracy,
		EvalEvery:      cfg.EvalEvery,
	}, func(p trainer.Progress) {
		if p.Evaluated {
			log.Printf("epoch=%d loss=%.4f accuracy=%.4f elapsed_ms=%.2f",
				p.Epoch, p.Loss, p.Accuracy, p.Elapsed.Seconds()*1000)
			return
		}
		log.Printf("epoch=%d loss=%.4f elapsed_ms=%.2f", p.Epoch, p.Loss, p.Elapsed.Seconds()*1000)
	})
	switch {
	case errors.Is(err, context.Canceled):
		log.Printf("interrupted after epoch=%d, saving what we have", res.EpochsRun)
	case err != nil:
		log.Fatalf("training failed: %v", err)
	}

	meta := map[string]string{
		"run_id":  res.RunID,
		"dataset": "glyphs",
		"seed":    strconv.FormatInt(cfg.Seed, 10),
		"epochs":  strconv.Itoa(res.EpochsRun),
	}
	if err := persist.Save(cfg.ModelPath, net.Parameters(), meta); err != nil {
		log.Fatalf("save model: %v", err)
	}
	log.Printf("run=%s epochs=%d loss=%.4f accuracy=%.4f stopped=%v model=%s",
		res.RunID, res.EpochsRun, res.FinalLoss, res.FinalAccuracy, res.Stopped, cfg.ModelPath)
}

func runEval(args []string) {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)
	modelPath := fs.String("model", "glyph-model.json", "Model file to evaluate")
	perClass := fs.Int("samples-per-class", 100, "Synthetic samples per digit class")
	noise := fs.Float64("noise", 0.05, "Cell flip probability in [0,1]")
	seed := fs.Int64("seed", 99, "Dataset seed")
	fs.Parse(args)

	net, err := persist.Restore(*modelPath)
	if err != nil {
		log.Fatalf("restore model: %v", err)
	}
	log.Printf("model=%s network=%dx%dx%d",
		*modelPath, net.InputSize(), net.HiddenSize(), net.OutputSize())

	samples := dataset.Glyphs(*perClass*dataset.NumClasses, *noise, *seed)
	acc, err := net.EvaluateAccuracy(samples)
	if err != nil {
		log.Fatalf("evaluate: %v", err)
	}
	log.Printf("samples=%d noise=%.2f accuracy=%.4f", len(samples), *noise, acc)
}

func runPredict(args []string) {
	fs := flag.NewFlagSet("predict", flag.ExitOnError)
	modelPath := fs.String("model", "glyph-model.json", "Model file to use")
	imagePath := fs.String("image", "", "PNG, JPEG or BMP file to classify")
	bitmapStr := fs.String("bitmap", "", "Inline bitmap, rows of '#'/'.' separated by '/'")
	fs.Parse(args)

	if *imagePath == "" && *bitmapStr == "" {
		log.Fatalf("predict needs -image or -bitmap")
	}

	var b bitmap.Bitmap
	var err error
	if *imagePath != "" {
		b, err = bitmap.DecodeFile(*imagePath)
	} else {
		b, err = bitmap.Parse(strings.Split(*bitmapStr, "/")...)
	}
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	net, err := persist.Restore(*modelPath)
	if err != nil {
		log.Fatalf("restore model: %v", err)
	}

	features := bitmap.Normalize(b)
	probs, err := net.PredictProbs(features)
	if err != nil {
		log.Fatalf("predict: %v", err)
	}
	label, err := net.Predict(features)
	if err != nil {
		log.Fatalf("predict: %v", err)
	}

	fmt.Println(b)
	fmt.Printf("\nprediction: %d\n\n", label)
	for digit, p := range probs {
		fmt.Printf("  %d  %6.2f%%  %s\n", digit, p*100, strings.Repeat("#", int(p*40)))
	}
}
