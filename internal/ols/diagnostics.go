package ols

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

func diagnose(resid []float64) Diagnostics {
	var d Diagnostics
	n := float64(len(resid))

	var ssr, sdiff float64
	for i, r := range resid {
		ssr += r * r
		if i > 0 {
			e := r - resid[i-1]
			sdiff += e * e
		}
	}
	d.DurbinWatson = sdiff / ssr

	// Biased central moments, matching the usual regression summary tables.
	m2 := stat.Moment(2, resid, nil)
	d.Skew = stat.Moment(3, resid, nil) / math.Pow(m2, 1.5)
	d.Kurtosis = stat.Moment(4, resid, nil) / (m2 * m2)

	chi2 := distuv.ChiSquared{K: 2}
	d.JarqueBera = n / 6 * (d.Skew*d.Skew + (d.Kurtosis-3)*(d.Kurtosis-3)/4)
	d.JBPValue = survival(chi2, d.JarqueBera)

	d.Omnibus, d.OmnibusPValue = math.NaN(), math.NaN()
	if len(resid) >= 8 {
		zs := skewZ(d.Skew, n)
		zk := kurtosisZ(d.Kurtosis, n)
		d.Omnibus = zs*zs + zk*zk
		d.OmnibusPValue = survival(chi2, d.Omnibus)
	}
	return d
}

// skewZ is D'Agostino's normal approximation for the sample skewness b1.
func skewZ(b1, n float64) float64 {
	y := b1 * math.Sqrt((n+1)*(n+3)/(6*(n-2)))
	beta2 := 3 * (n*n + 27*n - 70) * (n + 1) * (n + 3) / ((n - 2) * (n + 5) * (n + 7) * (n + 9))
	w2 := -1 + math.Sqrt(2*(beta2-1))
	delta := 1 / math.Sqrt(0.5*math.Log(w2))
	alpha := math.Sqrt(2 / (w2 - 1))
	return delta * math.Asinh(y/alpha)
}

// kurtosisZ is the Anscombe-Glynn normal approximation for the Pearson
// kurtosis b2.
func kurtosisZ(b2, n float64) float64 {
	e := 3 * (n - 1) / (n + 1)
	varb2 := 24 * n * (n - 2) * (n - 3) / ((n + 1) * (n + 1) * (n + 3) * (n + 5))
	x := (b2 - e) / math.Sqrt(varb2)
	sqrtbeta1 := 6 * (n*n - 5*n + 2) / ((n + 7) * (n + 9)) * math.Sqrt(6*(n+3)*(n+5)/(n*(n-2)*(n-3)))
	a := 6 + 8/sqrtbeta1*(2/sqrtbeta1+math.Sqrt(1+4/(sqrtbeta1*sqrtbeta1)))
	term1 := 1 - 2/(9*a)
	denom := 1 + x*math.Sqrt(2/(a-4))
	if denom == 0 {
		return math.NaN()
	}
	term2 := math.Copysign(math.Cbrt((1-2/a)/math.Abs(denom)), denom)
	return (term1 - term2) / math.Sqrt(2/(9*a))
}
