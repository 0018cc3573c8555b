package fit

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultSamples is the number of points used when evaluating a fit over a
// plotting domain.
const DefaultSamples = 100

var (
	ErrInsufficientData = errors.New("need at least 2 points for a linear fit")
	ErrDegenerateFit    = errors.New("zero variance in the independent variable")
)

// Fit is an ordinary least-squares line. Immutable once computed.
type Fit struct {
	Slope     float64
	Intercept float64
}

// Linear fits y = Slope*x + Intercept minimizing the sum of squared vertical
// residuals.
func Linear(x, y []float64) (Fit, error) {
	if len(x) != len(y) {
		return Fit{}, fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrInsufficientData, len(x), len(y))
	}
	if len(x) < 2 {
		return Fit{}, fmt.Errorf("%w: got %d", ErrInsufficientData, len(x))
	}
	if floats.Min(x) == floats.Max(x) {
		return Fit{}, fmt.Errorf("%w: all x equal %g", ErrDegenerateFit, x[0])
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	return Fit{Slope: slope, Intercept: intercept}, nil
}

// Evaluate applies the fitted line elementwise over domain.
func (f Fit) Evaluate(domain []float64) []float64 {
	out := make([]float64, len(domain))
	for i, xi := range domain {
		out[i] = f.Slope*xi + f.Intercept
	}
	return out
}

// Domain returns samples linearly spaced values from 0 to max(x) inclusive,
// independent of the original sample spacing.
func Domain(x []float64, samples int) []float64 {
	if samples < 2 {
		samples = DefaultSamples
	}
	return floats.Span(make([]float64, samples), 0, floats.Max(x))
}
