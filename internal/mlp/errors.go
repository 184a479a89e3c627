package mlp

import "errors"

// Precondition failures reported by the engine. All of them are detected
// before any numeric work or parameter mutation begins, so a failed call
// leaves the network exactly as it was. Numerical edge cases (a vanishing
// softmax denominator, a probability underflowing to zero under the loss
// logarithm) are clamped, never reported as errors.
var (
	// ErrInvalidDimension reports a non-positive or mismatched size at
	// construction or parameter transfer.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrShapeMismatch reports an input vector or batch whose length
	// disagrees with the network's configured sizes.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrLabelOutOfRange reports a class label outside [0, outputSize).
	ErrLabelOutOfRange = errors.New("label out of range")

	// ErrEmptyInput reports an empty dataset or batch where a non-empty
	// one is required.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidLearningRate reports a non-positive learning rate.
	ErrInvalidLearningRate = errors.New("invalid learning rate")
)
