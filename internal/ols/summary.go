package ols

import (
	"fmt"
	"math"
	"strings"
)

const summaryWidth = 78

// Summary renders the fitted model as a plain-text regression results table.
func (m *Model) Summary() string {
	var b strings.Builder
	rule := strings.Repeat("=", summaryWidth) + "\n"
	thin := strings.Repeat("-", summaryWidth) + "\n"

	title := "OLS Regression Results"
	pad := (summaryWidth - len(title)) / 2
	b.WriteString(strings.Repeat(" ", pad) + title + "\n")
	b.WriteString(rule)

	outcome := orDefault(m.Names.Outcome, "y")
	predictor := orDefault(m.Names.Predictor, "x1")
	pairs := [][4]string{
		{"Dep. Variable:", outcome, "R-squared:", fmt.Sprintf("%.3f", m.RSquared)},
		{"Model:", "OLS", "Adj. R-squared:", fmt.Sprintf("%.3f", m.AdjRSquared)},
		{"Method:", "Least Squares", "F-statistic:", forg(m.FValue, 4)},
		{"Date:", m.FittedAt.Format("Mon, 02 Jan 2006"), "Prob (F-statistic):", fmt.Sprintf("%.3g", m.FPValue)},
		{"Time:", m.FittedAt.Format("15:04:05"), "Log-Likelihood:", fmt.Sprintf("%.5g", m.LogLik)},
		{"No. Observations:", fmt.Sprintf("%d", m.N), "AIC:", fmt.Sprintf("%.4g", m.AIC)},
		{"Df Residuals:", fmt.Sprintf("%.0f", m.DFResid), "BIC:", fmt.Sprintf("%.4g", m.BIC)},
		{"Df Model:", fmt.Sprintf("%.0f", m.DFModel), "", ""},
		{"Covariance Type:", "nonrobust", "", ""},
	}
	for _, p := range pairs {
		b.WriteString(strings.TrimRight(halves(p), " ") + "\n")
	}
	b.WriteString(rule)

	b.WriteString(fmt.Sprintf("%-16s%10s%11s%11s%10s%10s%10s\n", "", "coef", "std err", "t", "P>|t|", "[0.025", "0.975]"))
	b.WriteString(thin)
	names := [2]string{"const", predictor}
	for j := 0; j < 2; j++ {
		b.WriteString(fmt.Sprintf("%-16s%10s%11s%11.3f%10.3f%10s%10s\n",
			truncate(names[j], 16),
			forg(m.Params[j], 4),
			forg(m.StdErr[j], 3),
			m.TValues[j],
			m.PValues[j],
			forg(m.ConfInt[j][0], 3),
			forg(m.ConfInt[j][1], 3),
		))
	}
	b.WriteString(rule)

	d := m.Diag
	diag := [][4]string{
		{"Omnibus:", fmt.Sprintf("%.3f", d.Omnibus), "Durbin-Watson:", fmt.Sprintf("%.3f", d.DurbinWatson)},
		{"Prob(Omnibus):", fmt.Sprintf("%.3f", d.OmnibusPValue), "Jarque-Bera (JB):", fmt.Sprintf("%.3f", d.JarqueBera)},
		{"Skew:", fmt.Sprintf("%.3f", d.Skew), "Prob(JB):", fmt.Sprintf("%.3g", d.JBPValue)},
		{"Kurtosis:", fmt.Sprintf("%.3f", d.Kurtosis), "Cond. No.", fmt.Sprintf("%.3g", m.CondNo)},
	}
	for _, p := range diag {
		b.WriteString(halves(p) + "\n")
	}
	b.WriteString(rule)
	if m.CondNo > 1e3 {
		b.WriteString(fmt.Sprintf("Note: the condition number is large, %.3g. This may indicate\nstrong multicollinearity or other numerical problems.\n", m.CondNo))
	}
	return b.String()
}

// halves lays out two label/value pairs side by side.
func halves(p [4]string) string {
	return fmt.Sprintf("%-20s%18s   %-20s%17s", p[0], truncate(p[1], 18), p[2], p[3])
}

// forg switches to exponent notation for very large or very small values.
func forg(x float64, prec int) string {
	ax := math.Abs(x)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fmt.Sprintf("%v", x)
	}
	if ax >= 1e4 || (ax < 1e-4 && x != 0) {
		return fmt.Sprintf("%.*g", prec, x)
	}
	return fmt.Sprintf("%.*f", prec, x)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
