package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrColumnNotFound is returned when a requested column is absent from the header.
	ErrColumnNotFound = errors.New("column not found")
	// ErrNoHeader is returned for an empty input file.
	ErrNoHeader = errors.New("missing header row")
	// ErrTooManyFields is returned for a record wider than the header.
	ErrTooManyFields = errors.New("more fields than header columns")
)

// ParseError reports a cell that could not be read as a number.
type ParseError struct {
	Column string
	Row    int // 1-based data row, header excluded
	Value  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("column %q row %d: cannot parse %q as number", e.Column, e.Row, e.Value)
}

// Options controls how a delimited file is read and how numbers are parsed.
type Options struct {
	// Delimiter for CSV. If 0, picks '\t' for .tsv files and ',' otherwise.
	Delimiter rune
	// Numeric parsing locale. If DecimalSeparator is 0, auto-detect per value.
	DecimalSeparator   rune
	ThousandsSeparator rune // optional; if 0, auto-detect common separators (',' '.' space)
	// SampleRows determines how many example rows Describe keeps.
	SampleRows int
}

// DefaultOptions returns the settings used by the modelling run.
func DefaultOptions() Options {
	return Options{SampleRows: 5}
}

// Table is an in-memory delimited dataset with a header row.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string

	opt Options
}

// Load reads a delimited file with a header row into a Table.
func Load(path string, opt Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	t, err := Read(f, delim, opt)
	if err != nil {
		return nil, err
	}
	t.Name = filepath.Base(path)
	return t, nil
}

// Read parses delimited records from r. The first record is the header.
func Read(r io.Reader, delim rune, opt Options) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comma = delim

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	ncol := len(header)
	t := &Table{Header: make([]string, ncol), opt: opt}
	for i, h := range header {
		t.Header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(t.Rows)+1, err)
		}
		if len(rec) > ncol {
			return nil, fmt.Errorf("read row %d: %w: expected %d, saw %d", len(t.Rows)+1, ErrTooManyFields, ncol, len(rec))
		}
		row := make([]string, ncol)
		copy(row, rec)
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// Index returns the position of column name. Names match exactly.
func (t *Table) Index(name string) (int, error) {
	for i, h := range t.Header {
		if h == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrColumnNotFound, name)
}

// Float64s extracts a numeric column by name.
func (t *Table) Float64s(column string) ([]float64, error) {
	idx, err := t.Index(column)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		v, ok := parseNumeric(row[idx], t.opt)
		if !ok {
			return nil, &ParseError{Column: t.Header[idx], Row: i + 1, Value: row[idx]}
		}
		out[i] = v
	}
	return out, nil
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}
