// Package ols fits a simple linear regression with intercept by ordinary
// least squares and reports the usual inference statistics.
package ols

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrLengthMismatch     = errors.New("predictor and outcome lengths differ")
	ErrTooFewObservations = errors.New("need at least 3 observations")
	ErrSingularDesign     = errors.New("design matrix is singular")
)

// Coefficient positions in the parameter vector.
const (
	Const = iota
	Slope
)

// Names labels the regression variables in the summary.
type Names struct {
	Outcome   string
	Predictor string
}

// Diagnostics holds residual normality and autocorrelation statistics.
type Diagnostics struct {
	DurbinWatson  float64
	JarqueBera    float64
	JBPValue      float64
	Omnibus       float64 // D'Agostino K², NaN below 8 observations
	OmnibusPValue float64
	Skew          float64
	Kurtosis      float64 // Pearson (normal = 3)
}

// Model is a fitted simple linear regression.
type Model struct {
	Names Names
	N     int
	// Params holds {intercept, slope}.
	Params [2]float64

	Fitted []float64
	Resid  []float64

	DFModel float64
	DFResid float64
	SSR     float64 // residual sum of squares
	SST     float64 // centered total sum of squares
	ESS     float64 // explained sum of squares
	Scale   float64 // residual variance SSR/DFResid

	RSquared    float64
	AdjRSquared float64

	StdErr  [2]float64
	TValues [2]float64
	PValues [2]float64
	ConfInt [2][2]float64 // 95% bounds per coefficient

	FValue  float64
	FPValue float64

	LogLik float64
	AIC    float64
	BIC    float64
	CondNo float64

	Diag     Diagnostics
	FittedAt time.Time
}

// Intercept returns the fitted constant term.
func (m *Model) Intercept() float64 { return m.Params[Const] }

// Slope returns the fitted predictor coefficient.
func (m *Model) Slope() float64 { return m.Params[Slope] }

// Fit regresses y on x with an added constant column.
func Fit(x, y []float64, names Names) (*Model, error) {
	n := len(x)
	if n != len(y) {
		return nil, ErrLengthMismatch
	}
	if n < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewObservations, n)
	}
	if stat.Variance(x, nil) == 0 {
		return nil, fmt.Errorf("%w: predictor %q is constant", ErrSingularDesign, names.Predictor)
	}

	design := mat.NewDense(n, 2, nil)
	for i, v := range x {
		design.Set(i, 0, 1)
		design.Set(i, 1, v)
	}
	yv := mat.NewVecDense(n, append([]float64(nil), y...))

	var beta mat.VecDense
	if err := beta.SolveVec(design, yv); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularDesign, err)
	}
	var xtx, cov mat.Dense
	xtx.Mul(design.T(), design)
	if err := cov.Inverse(&xtx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularDesign, err)
	}

	m := &Model{
		Names:    names,
		N:        n,
		DFModel:  1,
		DFResid:  float64(n - 2),
		Fitted:   make([]float64, n),
		Resid:    make([]float64, n),
		FittedAt: time.Now(),
	}
	m.Params[Const] = beta.AtVec(0)
	m.Params[Slope] = beta.AtVec(1)
	if math.IsNaN(m.Params[Const]) || math.IsNaN(m.Params[Slope]) {
		return nil, ErrSingularDesign
	}

	ybar := stat.Mean(y, nil)
	for i := range x {
		m.Fitted[i] = m.Params[Const] + m.Params[Slope]*x[i]
		m.Resid[i] = y[i] - m.Fitted[i]
		m.SSR += m.Resid[i] * m.Resid[i]
		d := y[i] - ybar
		m.SST += d * d
	}
	m.ESS = m.SST - m.SSR
	m.Scale = m.SSR / m.DFResid
	if m.SST > 0 {
		m.RSquared = 1 - m.SSR/m.SST
	} else {
		m.RSquared = math.NaN()
	}
	m.AdjRSquared = 1 - float64(n-1)/m.DFResid*(1-m.RSquared)

	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: m.DFResid}
	crit := tdist.Quantile(0.975)
	for j := 0; j < 2; j++ {
		m.StdErr[j] = math.Sqrt(m.Scale * cov.At(j, j))
		m.TValues[j] = m.Params[j] / m.StdErr[j]
		m.PValues[j] = 2 * survival(tdist, math.Abs(m.TValues[j]))
		m.ConfInt[j] = [2]float64{m.Params[j] - crit*m.StdErr[j], m.Params[j] + crit*m.StdErr[j]}
	}

	m.FValue = (m.ESS / m.DFModel) / m.Scale
	m.FPValue = survival(distuv.F{D1: m.DFModel, D2: m.DFResid}, m.FValue)

	nf := float64(n)
	m.LogLik = -nf/2*math.Log(2*math.Pi) - nf/2*math.Log(m.SSR/nf) - nf/2
	k := m.DFModel + 1
	m.AIC = -2*m.LogLik + 2*k
	m.BIC = -2*m.LogLik + k*math.Log(nf)
	m.CondNo = mat.Cond(design, 2)
	m.Diag = diagnose(m.Resid)
	return m, nil
}

// Predict applies the fitted line to each predictor value.
func (m *Model) Predict(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = m.Params[Const] + m.Params[Slope]*v
	}
	return out
}

type survivor interface {
	Survival(x float64) float64
}

// survival evaluates an upper tail probability, keeping non-finite
// or negative statistics away from the incomplete beta/gamma routines.
func survival(d survivor, x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case math.IsInf(x, 1):
		return 0
	case x < 0:
		// rounding can leave a zero statistic slightly negative
		x = 0
	}
	return d.Survival(x)
}
