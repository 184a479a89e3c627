// Package config loads run configuration for the glyph CLI: a YAML file,
// flag overrides on top, then validation.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	HiddenSize      int     `yaml:"hidden_size"`
	Epochs          int     `yaml:"epochs"`
	BatchSize       int     `yaml:"batch_size"`
	LearningRate    float64 `yaml:"learning_rate"`
	Seed            int64   `yaml:"seed"`
	SamplesPerClass int     `yaml:"samples_per_class"`
	Noise           float64 `yaml:"noise"`
	Holdout         float64 `yaml:"holdout"`
	TargetAccuracy  float64 `yaml:"target_accuracy"`
	EvalEvery       int     `yaml:"eval_every"`
	ModelPath       string  `yaml:"model_path"`
}

// Defaults returns the configuration used when no file is given.
func Defaults() Config {
	return Config{
		HiddenSize:      32,
		Epochs:          200,
		BatchSize:       16,
		LearningRate:    0.1,
		Seed:            42,
		SamplesPerClass: 50,
		Noise:           0.05,
		Holdout:         0.2,
		EvalEvery:       10,
		ModelPath:       "glyph-model.json",
	}
}

// Load reads a Config from YAML, starting from Defaults. Unknown keys are
// rejected so typos fail loudly; an empty file yields the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg := Defaults()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Overrides captures CLI supplied values. Zero-valued fields are ignored;
// the float fields treat negatives as unset so an explicit 0 can still be
// applied.
type Overrides struct {
	HiddenSize      int
	Epochs          int
	BatchSize       int
	LearningRate    float64 // > 0 applies
	Seed            int64   // != 0 applies
	SamplesPerClass int
	Noise           float64 // >= 0 applies
	Holdout         float64 // >= 0 applies
	TargetAccuracy  float64 // >= 0 applies
	EvalEvery       int
	ModelPath       string
}

// ApplyOverrides updates cfg using any supplied override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.HiddenSize > 0 {
		c.HiddenSize = o.HiddenSize
	}
	if o.Epochs > 0 {
		c.Epochs = o.Epochs
	}
	if o.BatchSize > 0 {
		c.BatchSize = o.BatchSize
	}
	if o.LearningRate > 0 {
		c.LearningRate = o.LearningRate
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.SamplesPerClass > 0 {
		c.SamplesPerClass = o.SamplesPerClass
	}
	if o.Noise >= 0 {
		c.Noise = o.Noise
	}
	if o.Holdout >= 0 {
		c.Holdout = o.Holdout
	}
	if o.TargetAccuracy >= 0 {
		c.TargetAccuracy = o.TargetAccuracy
	}
	if o.EvalEvery > 0 {
		c.EvalEvery = o.EvalEvery
	}
	if o.ModelPath != "" {
		c.ModelPath = o.ModelPath
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.HiddenSize <= 0 {
		return fmt.Errorf("hidden_size must be > 0 (got %d)", c.HiddenSize)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be > 0 (got %d)", c.Epochs)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", c.BatchSize)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("learning_rate must be > 0 (got %g)", c.LearningRate)
	}
	if c.SamplesPerClass <= 0 {
		return fmt.Errorf("samples_per_class must be > 0 (got %d)", c.SamplesPerClass)
	}
	if c.Noise < 0 || c.Noise > 1 {
		return fmt.Errorf("noise must be in [0,1] (got %g)", c.Noise)
	}
	if c.Holdout < 0 || c.Holdout >= 1 {
		return fmt.Errorf("holdout must be in [0,1) (got %g)", c.Holdout)
	}
	if c.TargetAccuracy < 0 || c.TargetAccuracy > 1 {
		return fmt.Errorf("target_accuracy must be in [0,1] (got %g)", c.TargetAccuracy)
	}
	if c.ModelPath == "" {
		return errors.New("model_path must be set")
	}
	if c.EvalEvery <= 0 {
		c.EvalEvery = 1
	}
	return nil
}
