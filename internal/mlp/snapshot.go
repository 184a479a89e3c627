package mlp

import "fmt"

// Snapshot is a plain deep copy of the four parameter tensors together
// with the dimensions that shape them. It has no behavior and no
// back-reference to the network it came from: mutating a snapshot never
// affects a live network and vice versa.
//
// Snapshots are how parameters cross the engine boundary: the persist
// package serializes them without the engine knowing about files or
// encodings.
type Snapshot struct {
	InputSize  int
	HiddenSize int
	OutputSize int

	W1 []float64 // [HiddenSize x InputSize], row-major
	B1 []float64 // [HiddenSize]
	W2 []float64 // [OutputSize x HiddenSize], row-major
	B2 []float64 // [OutputSize]
}

// Parameters returns a deep-copied snapshot of the current parameters.
func (n *Network) Parameters() Snapshot {
	return Snapshot{
		InputSize:  n.inputSize,
		HiddenSize: n.hiddenSize,
		OutputSize: n.outputSize,
		W1:         append([]float64(nil), n.w1...),
		B1:         append([]float64(nil), n.b1...),
		W2:         append([]float64(nil), n.w2...),
		B2:         append([]float64(nil), n.b2...),
	}
}

// SetParameters copies the snapshot's values into the network's existing
// parameter buffers.
//
// Every shape is validated against the network's fixed dimensions before
// anything is written; on any mismatch the call fails with
// ErrInvalidDimension and the network is left untouched. Buffer identities
// never change, only contents, so scratch state sized at construction
// remains valid afterwards.
func (n *Network) SetParameters(snap Snapshot) error {
	if snap.InputSize != n.inputSize || snap.HiddenSize != n.hiddenSize || snap.OutputSize != n.outputSize {
		return fmt.Errorf("%w: snapshot dimensions %dx%dx%d, network is %dx%dx%d",
			ErrInvalidDimension,
			snap.InputSize, snap.HiddenSize, snap.OutputSize,
			n.inputSize, n.hiddenSize, n.outputSize)
	}
	if len(snap.W1) != len(n.w1) {
		return fmt.Errorf("%w: W1 has %d values, want %d", ErrInvalidDimension, len(snap.W1), len(n.w1))
	}
	if len(snap.B1) != len(n.b1) {
		return fmt.Errorf("%w: B1 has %d values, want %d", ErrInvalidDimension, len(snap.B1), len(n.b1))
	}
	if len(snap.W2) != len(n.w2) {
		return fmt.Errorf("%w: W2 has %d values, want %d", ErrInvalidDimension, len(snap.W2), len(n.w2))
	}
	if len(snap.B2) != len(n.b2) {
		return fmt.Errorf("%w: B2 has %d values, want %d", ErrInvalidDimension, len(snap.B2), len(n.b2))
	}

	copy(n.w1, snap.W1)
	copy(n.b1, snap.B1)
	copy(n.w2, snap.W2)
	copy(n.b2, snap.B2)
	return nil
}
