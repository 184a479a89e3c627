// Package mlp implements the glyph network engine: a single-hidden-layer
// feed-forward classifier (input -> ReLU hidden -> softmax output) trained
// by mini-batch stochastic gradient descent with hand-written
// backpropagation, evaluated by classification accuracy.
//
// The design is intentionally from scratch. Parameters and scratch state
// are flat float64 slices owned by the Network; there is no tensor
// abstraction and no compute backend, and every formula is written out
// where it runs. The value of this engine is transparency of the math, not
// throughput.
//
// A Network is not internally synchronized. Every method reads and writes
// the same owned scratch buffers, so a single instance must have at most
// one active caller at a time; see the trainer package for the intended
// ownership pattern.
package mlp

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/born-ml/glyph/internal/mathx"
)

// lossFloor clamps the probability fed to the cross-entropy logarithm so a
// probability that underflows to zero cannot produce an infinite loss.
const lossFloor = 1e-12

// Network is a single-hidden-layer classifier.
//
// The architecture is fixed at construction: inputSize features feed a
// hidden layer of hiddenSize ReLU units, which feeds outputSize softmax
// logits. Weight matrices are stored flat in row-major order. Buffer
// identities never change after construction; training and SetParameters
// mutate contents only.
type Network struct {
	inputSize  int
	hiddenSize int
	outputSize int

	// Learnable parameters.
	w1 []float64 // [hiddenSize x inputSize]
	b1 []float64 // [hiddenSize]
	w2 []float64 // [outputSize x hiddenSize]
	b2 []float64 // [outputSize]

	// Scratch state. Overwritten by every forward and backward pass, never
	// reallocated, and never exposed to callers except as copies.
	z1    []float64 // hidden pre-activation
	a1    []float64 // hidden activation
	z2    []float64 // output logits
	probs []float64 // softmax probabilities
	dz2   []float64 // gradient w.r.t. z2
	da1   []float64 // gradient w.r.t. a1
	dz1   []float64 // gradient w.r.t. z1

	// Batch gradient accumulators, zeroed at the start of every TrainBatch
	// call. No state carries across batches: no momentum, no decay.
	gw1 []float64
	gb1 []float64
	gw2 []float64
	gb2 []float64
}

// New constructs a network with the given dimensions and deterministic
// initialization.
//
// inputSize and hiddenSize must be positive and outputSize must be at
// least 2, otherwise New fails with ErrInvalidDimension. Weights use He
// initialization, each entry drawn as gaussian * sqrt(2/fanIn); W1 draws
// from a stream seeded with seed and W2 from an independent stream seeded
// with seed+1, so the two layers are uncorrelated but the whole network is
// reproducible from (dimensions, seed). Biases start at zero.
func New(inputSize, hiddenSize, outputSize int, seed int64) (*Network, error) {
	if inputSize <= 0 {
		return nil, fmt.Errorf("%w: input size must be positive, got %d", ErrInvalidDimension, inputSize)
	}
	if hiddenSize <= 0 {
		return nil, fmt.Errorf("%w: hidden size must be positive, got %d", ErrInvalidDimension, hiddenSize)
	}
	if outputSize <= 1 {
		return nil, fmt.Errorf("%w: output size must be at least 2, got %d", ErrInvalidDimension, outputSize)
	}

	n := &Network{
		inputSize:  inputSize,
		hiddenSize: hiddenSize,
		outputSize: outputSize,

		w1: make([]float64, hiddenSize*inputSize),
		b1: make([]float64, hiddenSize),
		w2: make([]float64, outputSize*hiddenSize),
		b2: make([]float64, outputSize),

		z1:    make([]float64, hiddenSize),
		a1:    make([]float64, hiddenSize),
		z2:    make([]float64, outputSize),
		probs: make([]float64, outputSize),
		dz2:   make([]float64, outputSize),
		da1:   make([]float64, hiddenSize),
		dz1:   make([]float64, hiddenSize),

		gw1: make([]float64, hiddenSize*inputSize),
		gb1: make([]float64, hiddenSize),
		gw2: make([]float64, outputSize*hiddenSize),
		gb2: make([]float64, outputSize),
	}

	heInit(n.w1, inputSize, rand.New(rand.NewSource(seed)))
	heInit(n.w2, hiddenSize, rand.New(rand.NewSource(seed+1)))
	return n, nil
}

// heInit fills w with gaussian * sqrt(2/fanIn) draws from rng.
func heInit(w []float64, fanIn int, rng *rand.Rand) {
	scale := math.Sqrt(2.0 / float64(fanIn))
	for i := range w {
		w[i] = mathx.Gaussian(rng) * scale
	}
}

// InputSize returns the number of input features.
func (n *Network) InputSize() int { return n.inputSize }

// HiddenSize returns the number of hidden units.
func (n *Network) HiddenSize() int { return n.hiddenSize }

// OutputSize returns the number of classes.
func (n *Network) OutputSize() int { return n.outputSize }

// ParameterCount returns the number of trainable values.
func (n *Network) ParameterCount() int {
	return len(n.w1) + len(n.b1) + len(n.w2) + len(n.b2)
}

// forward runs one pass for x, writing z1, a1, z2 and probs into the
// engine-owned scratch buffers. The previous call's contents are
// overwritten and nothing is allocated; a subsequent backward pass reads
// these buffers directly. This is the throughput-critical path:
// O(hiddenSize*inputSize + outputSize*hiddenSize) per call.
func (n *Network) forward(x []float64) error {
	if len(x) != n.inputSize {
		return fmt.Errorf("%w: input length %d, network expects %d", ErrShapeMismatch, len(x), n.inputSize)
	}

	for j := 0; j < n.hiddenSize; j++ {
		sum := n.b1[j]
		row := n.w1[j*n.inputSize : (j+1)*n.inputSize]
		for k, v := range x {
			sum += row[k] * v
		}
		n.z1[j] = sum
		n.a1[j] = mathx.ReLU(sum)
	}

	for i := 0; i < n.outputSize; i++ {
		sum := n.b2[i]
		row := n.w2[i*n.hiddenSize : (i+1)*n.hiddenSize]
		for j, a := range n.a1 {
			sum += row[j] * a
		}
		n.z2[i] = sum
	}

	mathx.Softmax(n.probs, n.z2)
	return nil
}

// Predict returns the class index with the highest probability for x,
// ties resolving to the lowest index. Fails with ErrShapeMismatch when
// len(x) differs from the network's input size.
func (n *Network) Predict(x []float64) (int, error) {
	if err := n.forward(x); err != nil {
		return 0, err
	}
	return mathx.ArgMax(n.probs), nil
}

// PredictProbs returns the softmax probability vector for x. The returned
// slice is an independent copy: callers cannot corrupt the engine's
// scratch state through it, and it stays valid across later calls.
func (n *Network) PredictProbs(x []float64) ([]float64, error) {
	if err := n.forward(x); err != nil {
		return nil, err
	}
	out := make([]float64, n.outputSize)
	copy(out, n.probs)
	return out, nil
}

// TrainBatch runs one mini-batch gradient descent step and returns the
// mean cross-entropy loss over the batch, measured before the update.
//
// The whole batch is validated up front: sample lengths against the input
// size, labels against [0, outputSize), and the learning rate for
// positivity. Any violation (ErrShapeMismatch, ErrLabelOutOfRange,
// ErrEmptyInput, ErrInvalidLearningRate) aborts before any parameter
// changes. Gradients are accumulated per sample, averaged over the batch,
// and applied as vanilla gradient descent: param -= learningRate *
// meanGradient. The accumulators are zeroed on every call; nothing
// persists across batches.
func (n *Network) TrainBatch(inputs [][]float64, labels []int, learningRate float64) (float64, error) {
	if len(inputs) != len(labels) {
		return 0, fmt.Errorf("%w: %d inputs but %d labels", ErrShapeMismatch, len(inputs), len(labels))
	}
	if len(inputs) == 0 {
		return 0, fmt.Errorf("%w: batch must contain at least one sample", ErrEmptyInput)
	}
	if learningRate <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidLearningRate, learningRate)
	}
	for i, x := range inputs {
		if len(x) != n.inputSize {
			return 0, fmt.Errorf("%w: sample %d has length %d, network expects %d", ErrShapeMismatch, i, len(x), n.inputSize)
		}
		if labels[i] < 0 || labels[i] >= n.outputSize {
			return 0, fmt.Errorf("%w: sample %d has label %d, want [0,%d)", ErrLabelOutOfRange, i, labels[i], n.outputSize)
		}
	}

	zeroSlice(n.gw1)
	zeroSlice(n.gb1)
	zeroSlice(n.gw2)
	zeroSlice(n.gb2)

	totalLoss := 0.0
	for s, x := range inputs {
		label := labels[s]
		if err := n.forward(x); err != nil {
			return 0, err
		}

		// Categorical cross-entropy on the clamped probability.
		p := n.probs[label]
		if p < lossFloor {
			p = lossFloor
		}
		totalLoss += -math.Log(p)

		// Closed-form gradient of softmax + cross-entropy:
		// dz2 = probs - onehot(label).
		copy(n.dz2, n.probs)
		n.dz2[label] -= 1

		for i := 0; i < n.outputSize; i++ {
			g := n.dz2[i]
			row := n.gw2[i*n.hiddenSize : (i+1)*n.hiddenSize]
			for j, a := range n.a1 {
				row[j] += g * a
			}
			n.gb2[i] += g
		}

		// Backpropagate through W2, then through the ReLU. The derivative
		// at a pre-activation of exactly zero is 0 (see mathx).
		for j := 0; j < n.hiddenSize; j++ {
			sum := 0.0
			for i := 0; i < n.outputSize; i++ {
				sum += n.w2[i*n.hiddenSize+j] * n.dz2[i]
			}
			n.da1[j] = sum
			n.dz1[j] = sum * mathx.ReLUDerivative(n.z1[j])
		}

		for j := 0; j < n.hiddenSize; j++ {
			g := n.dz1[j]
			row := n.gw1[j*n.inputSize : (j+1)*n.inputSize]
			for k, v := range x {
				row[k] += g * v
			}
			n.gb1[j] += g
		}
	}

	inv := 1.0 / float64(len(inputs))
	step := learningRate * inv
	addScaled(n.w1, n.gw1, -step)
	addScaled(n.b1, n.gb1, -step)
	addScaled(n.w2, n.gw2, -step)
	addScaled(n.b2, n.gb2, -step)

	return totalLoss * inv, nil
}

// TrainEpoch shuffles samples in place, partitions them into consecutive
// batches of batchSize (the final batch may be smaller), trains on each
// batch in order, and returns the mean of the per-batch losses.
//
// The shuffle uses the caller's rng, so a fixed generator state makes the
// whole epoch reproducible. The dataset ordering is permuted as a side
// effect; callers that need the original order must copy beforehand. The
// entire dataset is validated before the shuffle, so a malformed dataset
// cannot leave the epoch half-applied.
func (n *Network) TrainEpoch(samples []Sample, batchSize int, learningRate float64, rng *rand.Rand) (float64, error) {
	if len(samples) == 0 {
		return 0, fmt.Errorf("%w: dataset is empty", ErrEmptyInput)
	}
	if batchSize <= 0 {
		return 0, fmt.Errorf("%w: batch size must be positive, got %d", ErrInvalidDimension, batchSize)
	}
	if learningRate <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidLearningRate, learningRate)
	}
	for i, s := range samples {
		if len(s.X) != n.inputSize {
			return 0, fmt.Errorf("%w: sample %d has length %d, network expects %d", ErrShapeMismatch, i, len(s.X), n.inputSize)
		}
		if s.Label < 0 || s.Label >= n.outputSize {
			return 0, fmt.Errorf("%w: sample %d has label %d, want [0,%d)", ErrLabelOutOfRange, i, s.Label, n.outputSize)
		}
	}

	mathx.Shuffle(samples, rng)

	batchX := make([][]float64, 0, batchSize)
	batchY := make([]int, 0, batchSize)

	totalLoss := 0.0
	batches := 0
	for start := 0; start < len(samples); start += batchSize {
		end := min(start+batchSize, len(samples))

		batchX = batchX[:0]
		batchY = batchY[:0]
		for _, s := range samples[start:end] {
			batchX = append(batchX, s.X)
			batchY = append(batchY, s.Label)
		}

		loss, err := n.TrainBatch(batchX, batchY, learningRate)
		if err != nil {
			return 0, err
		}
		totalLoss += loss
		batches++
	}

	return totalLoss / float64(batches), nil
}

// EvaluateAccuracy returns the fraction of samples whose predicted class
// matches the label. An empty dataset evaluates to 0 without error; that
// is a defined edge case, not a failure. A sample whose feature length
// disagrees with the network propagates ErrShapeMismatch.
func (n *Network) EvaluateAccuracy(samples []Sample) (float64, error) {
	if len(samples) == 0 {
		return 0, nil
	}

	correct := 0
	for i, s := range samples {
		pred, err := n.Predict(s.X)
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
		if pred == s.Label {
			correct++
		}
	}
	return float64(correct) / float64(len(samples)), nil
}

func zeroSlice(s []float64) {
	for i := range s {
		s[i] = 0
	}
}

// addScaled adds scale*src into dst element-wise.
func addScaled(dst, src []float64, scale float64) {
	for i, v := range src {
		dst[i] += scale * v
	}
}
