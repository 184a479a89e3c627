package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/glyph/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := config.Defaults()
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
hidden_size: 24
epochs: 80
batch_size: 8
learning_rate: 0.25
seed: 7
samples_per_class: 30
noise: 0.1
holdout: 0.25
target_accuracy: 0.98
eval_every: 5
model_path: out/model.json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 24, cfg.HiddenSize)
	assert.Equal(t, 80, cfg.Epochs)
	assert.Equal(t, 8, cfg.BatchSize)
	assert.Equal(t, 0.25, cfg.LearningRate)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 30, cfg.SamplesPerClass)
	assert.Equal(t, 0.1, cfg.Noise)
	assert.Equal(t, 0.25, cfg.Holdout)
	assert.Equal(t, 0.98, cfg.TargetAccuracy)
	assert.Equal(t, 5, cfg.EvalEvery)
	assert.Equal(t, "out/model.json", cfg.ModelPath)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "epochs: 5\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)

	want := config.Defaults()
	want.Epochs = 5
	assert.Equal(t, want, cfg)
}

func TestLoadEmptyGivesDefaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	_, err := config.Load(writeConfig(t, "epoches: 5\n"))
	assert.Error(t, err)
}

func TestLoadRejectsBadValue(t *testing.T) {
	_, err := config.Load(writeConfig(t, "epochs: many\n"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	_, err := config.Load(writeConfig(t, "epochs: -3\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.Defaults()
	cfg.ApplyOverrides(config.Overrides{
		Epochs:         12,
		Seed:           -5,
		Noise:          0,
		Holdout:        -1, // unset
		TargetAccuracy: 0.9,
		ModelPath:      "elsewhere.json",
	})

	assert.Equal(t, 12, cfg.Epochs)
	assert.Equal(t, int64(-5), cfg.Seed)
	assert.Zero(t, cfg.Noise, "an explicit zero noise applies")
	assert.Equal(t, config.Defaults().Holdout, cfg.Holdout, "negative float overrides are unset")
	assert.Equal(t, 0.9, cfg.TargetAccuracy)
	assert.Equal(t, "elsewhere.json", cfg.ModelPath)

	assert.Equal(t, config.Defaults().HiddenSize, cfg.HiddenSize, "zero int overrides are unset")
	assert.Equal(t, config.Defaults().BatchSize, cfg.BatchSize)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero hidden", func(c *config.Config) { c.HiddenSize = 0 }},
		{"zero epochs", func(c *config.Config) { c.Epochs = 0 }},
		{"zero batch", func(c *config.Config) { c.BatchSize = 0 }},
		{"zero learning rate", func(c *config.Config) { c.LearningRate = 0 }},
		{"zero samples", func(c *config.Config) { c.SamplesPerClass = 0 }},
		{"noise above one", func(c *config.Config) { c.Noise = 1.1 }},
		{"negative noise", func(c *config.Config) { c.Noise = -0.1 }},
		{"holdout of one", func(c *config.Config) { c.Holdout = 1 }},
		{"target above one", func(c *config.Config) { c.TargetAccuracy = 2 }},
		{"empty model path", func(c *config.Config) { c.ModelPath = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Defaults()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateDefaultsEvalInterval(t *testing.T) {
	cfg := config.Defaults()
	cfg.EvalEvery = 0
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.EvalEvery)
}
