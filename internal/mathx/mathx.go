// Package mathx implements the numeric primitives behind the glyph network
// engine: the ReLU activation pair, a numerically stable softmax, a
// first-maximum argmax, an explicit Fisher-Yates shuffle, and Box-Muller
// Gaussian sampling.
//
// Everything here is stateless and side-effect free apart from documented
// output buffers. Randomness always comes from an explicit *rand.Rand so
// that every caller owns its deterministic stream; nothing in this package
// touches the global math/rand state.
package mathx

import (
	"math"
	"math/rand"
)

const (
	// softmaxDenomFloor guards the softmax denominator against degenerate
	// input where every exponential underflows to zero.
	softmaxDenomFloor = 1e-12

	// uniformFloor keeps the Box-Muller log argument away from zero.
	uniformFloor = 1e-12
)

// ReLU returns x for positive x and 0 otherwise.
func ReLU(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// ReLUDerivative returns 1 for positive x and 0 otherwise.
//
// The derivative at exactly zero is defined as 0. This is a policy choice,
// not an approximation: trained parameters are only reproducible across
// implementations when every one of them resolves the kink the same way.
func ReLUDerivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

// Softmax writes the softmax of logits into dst, which must have the same
// length as logits and may alias it. The maximum logit is subtracted before
// exponentiating, so arbitrarily large logits stay in range, and the
// denominator is floored at 1e-12 so degenerate input cannot divide by
// zero. logits must be non-empty.
//
// The result is a probability vector: entries are non-negative and sum to 1
// within floating-point tolerance.
func Softmax(dst, logits []float64) {
	if len(dst) != len(logits) {
		panic("mathx: Softmax dst and logits must have the same length")
	}

	maxLogit := logits[0]
	for _, v := range logits[1:] {
		if v > maxLogit {
			maxLogit = v
		}
	}

	sum := 0.0
	for i, v := range logits {
		e := math.Exp(v - maxLogit)
		dst[i] = e
		sum += e
	}
	if sum < softmaxDenomFloor {
		sum = softmaxDenomFloor
	}

	inv := 1.0 / sum
	for i := range dst {
		dst[i] *= inv
	}
}

// ArgMax returns the index of the first maximum in values. The scan runs
// left to right and replaces the candidate only on a strictly greater
// value, so ties resolve to the lowest index. values must be non-empty.
func ArgMax(values []float64) int {
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return best
}

// Shuffle permutes s in place with the Fisher-Yates algorithm, walking from
// the last index down to 1 and swapping each position with a uniformly
// chosen index at or below it. A fixed rng state yields a fixed
// permutation.
func Shuffle[T any](s []T, rng *rand.Rand) {
	for i := len(s) - 1; i >= 1; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Gaussian draws a single standard normal value using the Box-Muller
// transform. The first uniform draw is floored at 1e-12 so the logarithm
// stays finite.
func Gaussian(rng *rand.Rand) float64 {
	u1 := rng.Float64()
	if u1 < uniformFloor {
		u1 = uniformFloor
	}
	u2 := rng.Float64()
	return math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
}
