package chart

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/plot"
)

var currencyPrinter = message.NewPrinter(language.English)

// CurrencyTicks labels major ticks as whole dollars with thousands
// separators, e.g. "$40,000".
type CurrencyTicks struct{}

// Ticks implements plot.Ticker.
func (CurrencyTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label == "" {
			continue
		}
		ticks[i].Label = FormatCurrency(ticks[i].Value)
	}
	return ticks
}

// FormatCurrency renders v as "$" followed by the rounded whole amount.
func FormatCurrency(v float64) string {
	return "$" + currencyPrinter.Sprintf("%d", int64(math.RoundToEven(v)))
}
