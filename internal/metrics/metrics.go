package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// MSE returns the mean squared error between true and predicted values.
func MSE(yTrue, yPred []float64) float64 {
	n := float64(len(yTrue))
	s := 0.0
	for i := range yTrue {
		d := yPred[i] - yTrue[i]
		s += d * d
	}
	return s / n
}

// SEM is the standard error of the mean: the n-1 sample standard deviation
// divided by sqrt(n). It is NaN for fewer than two values.
func SEM(x []float64) float64 {
	if len(x) < 2 {
		return math.NaN()
	}
	return stat.StdDev(x, nil) / math.Sqrt(float64(len(x)))
}

// BandRow is one prediction with a ±2·SE band around it.
type BandRow struct {
	X     float64
	YHat  float64
	Lower float64
	Upper float64
}

// Band pairs each predictor value with its prediction and a symmetric band
// of two standard errors.
func Band(x, yHat []float64, se float64) []BandRow {
	out := make([]BandRow, len(x))
	for i := range x {
		out[i] = BandRow{X: x[i], YHat: yHat[i], Lower: yHat[i] - 2*se, Upper: yHat[i] + 2*se}
	}
	return out
}
