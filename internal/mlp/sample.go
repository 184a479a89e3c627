package mlp

// Sample pairs one feature vector with its class label.
//
// Samples are produced by external data sources (the dataset generators,
// the bitmap preprocessor) and consumed read-only by the engine: training
// and evaluation never mutate X. X must have the consuming network's input
// size and Label must lie in [0, outputSize).
type Sample struct {
	X     []float64
	Label int
}
