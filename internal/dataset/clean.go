package dataset

import "strings"

// naTokens mirrors the strings pandas treats as missing when reading CSV.
var naTokens = map[string]struct{}{
	"":         {},
	"NA":       {},
	"N/A":      {},
	"n/a":      {},
	"NaN":      {},
	"nan":      {},
	"-NaN":     {},
	"-nan":     {},
	"NULL":     {},
	"null":     {},
	"None":     {},
	"<NA>":     {},
	"#N/A":     {},
	"#NA":      {},
	"#N/A N/A": {},
	"1.#IND":   {},
	"-1.#IND":  {},
	"1.#QNAN":  {},
	"-1.#QNAN": {},
}

// IsMissing reports whether a raw cell counts as a missing value.
func IsMissing(v string) bool {
	_, ok := naTokens[strings.TrimSpace(v)]
	return ok
}

// DropNA returns a copy of t without any row that has a missing cell in any
// column, along with the number of rows removed.
func (t *Table) DropNA() (*Table, int) {
	out := &Table{Name: t.Name, Header: t.Header, opt: t.opt}
	out.Rows = make([][]string, 0, len(t.Rows))
	dropped := 0
	for _, row := range t.Rows {
		keep := true
		for _, v := range row {
			if IsMissing(v) {
				keep = false
				break
			}
		}
		if !keep {
			dropped++
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	return out, dropped
}
