package method

import (
	"errors"
	"fmt"
)

const (
	// computationSpeed is the fixed rate of computation steps per second
	// available to the general method.
	computationSpeed = 1000.0

	// specializedQuality is the solution quality baked into the specialized
	// method's human knowledge.
	specializedQuality = 0.7

	// maxQuality is the highest achievable solution quality.
	maxQuality = 1.0
)

var (
	ErrNonPositiveProblemSize  = errors.New("problem size must be positive")
	ErrNegativeComputationTime = errors.New("computation time must be non-negative")
)

// Specialized scores the specialized method on a problem of the given size.
// Built-in human knowledge yields the same solution quality regardless of
// problem size or any computation budget.
func Specialized(problemSize int) float64 {
	return specializedQuality
}

// General scores the general method: computationTime seconds of search and
// learning at the fixed step rate, each step improving the solution by
// 1/problemSize, clamped at maxQuality. The result is always in [0, 1].
func General(problemSize int, computationTime float64) (float64, error) {
	if problemSize <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrNonPositiveProblemSize, problemSize)
	}
	if computationTime < 0 {
		return 0, fmt.Errorf("%w: %g", ErrNegativeComputationTime, computationTime)
	}

	steps := computationTime * computationSpeed
	quality := steps / float64(problemSize)
	if quality > maxQuality {
		quality = maxQuality
	}
	return quality, nil
}
