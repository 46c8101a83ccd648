package dataset

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Report is a markdown-friendly profile of a Table.
type Report struct {
	Name     string
	Rows     int
	Dropped  int
	Cols     []ColumnSummary
	Samples  [][]string
	Warnings []string
}

// ColumnSummary captures inferred type and statistics per column.
type ColumnSummary struct {
	Name    string
	Kind    string // numeric|categorical|text|unknown
	NonNull int
	Missing int
	Unique  int
	// Numeric stats
	Min  float64
	Max  float64
	Mean float64
	Std  float64
	// Categorical top values
	TopValues []CategoryCount
}

type CategoryCount struct {
	Value string
	Count int
}

// Describe profiles every column of t. dropped is reported as-is so callers
// can describe a cleaned table together with what cleaning removed.
func Describe(t *Table, dropped int) *Report {
	rep := &Report{Name: t.Name, Rows: t.Len(), Dropped: dropped}
	sampleRows := t.opt.SampleRows
	if sampleRows <= 0 {
		sampleRows = 5
	}
	type colAcc struct {
		nonNil, miss int
		// numeric stats via Welford
		n        int
		mean, m2 float64
		min, max float64
		txtCnt   int
		cats     map[string]int
	}
	cols := make([]*colAcc, len(t.Header))
	for i := range cols {
		cols[i] = &colAcc{min: math.Inf(1), max: math.Inf(-1), cats: make(map[string]int)}
	}
	for _, row := range t.Rows {
		if len(rep.Samples) < sampleRows {
			rep.Samples = append(rep.Samples, row)
		}
		for j, raw := range row {
			c := cols[j]
			if IsMissing(raw) {
				c.miss++
				continue
			}
			c.nonNil++
			if x, ok := parseNumeric(raw, t.opt); ok {
				c.n++
				if x < c.min {
					c.min = x
				}
				if x > c.max {
					c.max = x
				}
				delta := x - c.mean
				c.mean += delta / float64(c.n)
				c.m2 += delta * (x - c.mean)
				continue
			}
			c.txtCnt++
			v := strings.TrimSpace(raw)
			if len(c.cats) <= 10000 && len(v) <= 64 {
				c.cats[v]++
			}
		}
	}

	for j, c := range cols {
		s := ColumnSummary{Name: t.Header[j], NonNull: c.nonNil, Missing: c.miss}
		switch {
		case c.n > 0 && c.n >= c.txtCnt:
			s.Kind = "numeric"
			s.Min, s.Max, s.Mean = c.min, c.max, c.mean
			if c.n > 1 {
				s.Std = math.Sqrt(c.m2 / float64(c.n-1))
			}
			if c.txtCnt > 0 {
				rep.Warnings = append(rep.Warnings, fmt.Sprintf("%s: %d non-numeric values in a numeric column", safeName(s.Name), c.txtCnt))
			}
		case len(c.cats) > 0:
			s.Kind = "categorical"
			tops := make([]CategoryCount, 0, len(c.cats))
			for k, v := range c.cats {
				tops = append(tops, CategoryCount{Value: k, Count: v})
			}
			sort.Slice(tops, func(i, j int) bool {
				if tops[i].Count == tops[j].Count {
					return tops[i].Value < tops[j].Value
				}
				return tops[i].Count > tops[j].Count
			})
			if len(tops) > 8 {
				tops = tops[:8]
			}
			s.TopValues = tops
			s.Unique = len(c.cats)
		case c.txtCnt > 0:
			s.Kind = "text"
		default:
			s.Kind = "unknown"
		}
		rep.Cols = append(rep.Cols, s)
	}
	return rep
}

// Markdown renders a compact report for the terminal or a standalone doc.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if r.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.Name))
	}
	b.WriteString(fmt.Sprintf("Rows: %d", r.Rows))
	if r.Dropped > 0 {
		b.WriteString(fmt.Sprintf(" (dropped %d with missing values)", r.Dropped))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Columns: %d\n\n", len(r.Cols)))

	b.WriteString("[SCHEMA]\n")
	for _, c := range r.Cols {
		total := c.NonNull + c.Missing
		missPct := 0.0
		if total > 0 {
			missPct = float64(c.Missing) * 100.0 / float64(total)
		}
		b.WriteString(fmt.Sprintf("- %s: %s (non-null %d, missing %.1f%%)", safeName(c.Name), c.Kind, c.NonNull, missPct))
		switch c.Kind {
		case "numeric":
			b.WriteString(fmt.Sprintf(" — min %.4g, max %.4g, mean %.4g, std %.4g", c.Min, c.Max, c.Mean, c.Std))
		case "categorical":
			b.WriteString(" — top: ")
			for i, kv := range c.TopValues {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(fmt.Sprintf("%s(%d)", safeVal(kv.Value), kv.Count))
			}
			if c.Unique > len(c.TopValues) {
				b.WriteString(fmt.Sprintf("; unique=%d", c.Unique))
			}
		}
		b.WriteString("\n")
	}
	if len(r.Samples) > 0 {
		b.WriteString("\n[HEAD]\n| ")
		for i, c := range r.Cols {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(safeName(c.Name))
		}
		b.WriteString(" |\n|")
		for range r.Cols {
			b.WriteString(" --- |")
		}
		b.WriteString("\n")
		for _, row := range r.Samples {
			b.WriteString("| ")
			for i := range r.Cols {
				if i > 0 {
					b.WriteString(" | ")
				}
				val := ""
				if i < len(row) {
					val = row[i]
				}
				if len(val) > 80 {
					val = val[:77] + "..."
				}
				b.WriteString(safeVal(val))
			}
			b.WriteString(" |\n")
		}
	}
	if len(r.Warnings) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range r.Warnings {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return s
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
