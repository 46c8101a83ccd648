package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mortgageRows = []string{
	"sa2_name,educ_occ_score,median_mortgage_repayment,state",
	"Alpha,950.5,2100,NSW",
	"Bravo,1020,\"2,450\",VIC",
	"Charlie,,1800,QLD",
	"Delta,880.2,NA,NSW",
	"Echo,1100,2900,NaN",
	"Foxtrot,990,2300,VIC",
}

func writeCSV(t *testing.T, name string, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestLoadAndDropNA(t *testing.T) {
	path := writeCSV(t, "educ-occ-mortgage.csv", mortgageRows)

	tbl, err := Load(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "educ-occ-mortgage.csv", tbl.Name)
	assert.Equal(t, []string{"sa2_name", "educ_occ_score", "median_mortgage_repayment", "state"}, tbl.Header)
	require.Equal(t, 6, tbl.Len())

	clean, dropped := tbl.DropNA()
	assert.Equal(t, 3, dropped)
	require.Equal(t, 3, clean.Len())
	assert.Equal(t, "Alpha", clean.Rows[0][0])
	assert.Equal(t, "Bravo", clean.Rows[1][0])
	assert.Equal(t, "Foxtrot", clean.Rows[2][0])

	x, err := clean.Float64s("educ_occ_score")
	require.NoError(t, err)
	assert.Equal(t, []float64{950.5, 1020, 990}, x)

	y, err := clean.Float64s("median_mortgage_repayment")
	require.NoError(t, err)
	assert.Equal(t, []float64{2100, 2450, 2300}, y)
}

func TestDropNAIsIdentityOnCleanData(t *testing.T) {
	path := writeCSV(t, "clean.csv", []string{
		"educ_occ_score,median_mortgage_repayment",
		"900,1700",
		"1000,2000",
		"1100,2300",
	})
	tbl, err := Load(path, DefaultOptions())
	require.NoError(t, err)

	clean, dropped := tbl.DropNA()
	assert.Zero(t, dropped)
	assert.Equal(t, tbl.Header, clean.Header)
	assert.Equal(t, tbl.Rows, clean.Rows)

	again, dropped := clean.DropNA()
	assert.Zero(t, dropped)
	assert.Equal(t, clean.Rows, again.Rows)
}

func TestShortRecordsArePaddedAndDropped(t *testing.T) {
	tbl, err := Read(strings.NewReader("a,b,c\n1,2,3\n4,5\n"), ',', DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"4", "5", ""}, tbl.Rows[1])

	clean, dropped := tbl.DropNA()
	assert.Equal(t, 1, dropped)
	assert.Equal(t, 1, clean.Len())
}

func TestIsMissing(t *testing.T) {
	for _, v := range []string{"", "  ", "NA", "N/A", "nan", "NaN", "NULL", "null", "None", "<NA>", "#N/A", " NA "} {
		assert.True(t, IsMissing(v), "expected %q to be missing", v)
	}
	for _, v := range []string{"0", "na1", "Nanaimo", "-", "none of them"} {
		assert.False(t, IsMissing(v), "expected %q to be present", v)
	}
}

func TestFloat64sErrors(t *testing.T) {
	tbl, err := Read(strings.NewReader("x,y\n1,abc\n"), ',', DefaultOptions())
	require.NoError(t, err)

	_, err = tbl.Float64s("missing_col")
	assert.True(t, errors.Is(err, ErrColumnNotFound))

	_, err = tbl.Float64s("y")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "y", pe.Column)
	assert.Equal(t, 1, pe.Row)
	assert.Equal(t, "abc", pe.Value)
}

func TestColumnLookupIsExact(t *testing.T) {
	tbl, err := Read(strings.NewReader("educ_occ_score\n900\n950\n"), ',', DefaultOptions())
	require.NoError(t, err)
	idx, err := tbl.Index("educ_occ_score")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = tbl.Float64s("EDUC_OCC_SCORE")
	assert.ErrorIs(t, err, ErrColumnNotFound)
	_, err = tbl.Float64s(" educ_occ_score")
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestWideRecordIsRejected(t *testing.T) {
	_, err := Read(strings.NewReader("educ_occ_score,median_mortgage_repayment\n900,1800\n950,1900,EXTRA\n"), ',', DefaultOptions())
	require.ErrorIs(t, err, ErrTooManyFields)
	assert.Contains(t, err.Error(), "row 2")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"), DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	empty := writeCSV(t, "empty.csv", nil)
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = Load(empty, DefaultOptions())
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestTSVDelimiterIsSniffed(t *testing.T) {
	path := writeCSV(t, "data.tsv", []string{"x\ty", "1\t2"})
	tbl, err := Load(path, DefaultOptions())
	require.NoError(t, err)
	y, err := tbl.Float64s("y")
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, y)
}

func TestParseNumeric(t *testing.T) {
	cases := []struct {
		in   string
		opt  Options
		want float64
		ok   bool
	}{
		{"1200", Options{}, 1200, true},
		{"1,250", Options{}, 1250, true},
		{"12,500,000", Options{}, 12500000, true},
		{"0,5", Options{}, 0.5, true},
		{"1.000,5", Options{}, 1000.5, true},
		{"$2,100", Options{}, 2100, true},
		{"3.5e2", Options{}, 350, true},
		{"1.250", Options{DecimalSeparator: ',', ThousandsSeparator: '.'}, 1250, true},
		{"abc", Options{}, 0, false},
		{"", Options{}, 0, false},
	}
	for _, tc := range cases {
		got, ok := parseNumeric(tc.in, tc.opt)
		assert.Equal(t, tc.ok, ok, tc.in)
		if tc.ok {
			assert.InDelta(t, tc.want, got, 1e-9, tc.in)
		}
	}
}

func TestDescribeMarkdown(t *testing.T) {
	path := writeCSV(t, "educ-occ-mortgage.csv", mortgageRows)
	tbl, err := Load(path, DefaultOptions())
	require.NoError(t, err)
	clean, dropped := tbl.DropNA()

	rep := Describe(clean, dropped)
	require.Len(t, rep.Cols, 4)
	assert.Equal(t, "categorical", rep.Cols[0].Kind)
	assert.Equal(t, "numeric", rep.Cols[1].Kind)
	assert.InDelta(t, (950.5+1020+990)/3, rep.Cols[1].Mean, 1e-9)
	assert.Equal(t, 950.5, rep.Cols[1].Min)
	assert.Equal(t, 1020.0, rep.Cols[1].Max)
	assert.Equal(t, 2450.0, rep.Cols[2].Max)

	md := rep.Markdown()
	assert.Contains(t, md, "[DATASET SUMMARY]")
	assert.Contains(t, md, "File: educ-occ-mortgage.csv")
	assert.Contains(t, md, "Rows: 3 (dropped 3 with missing values)")
	assert.Contains(t, md, "- educ_occ_score: numeric (non-null 3, missing 0.0%)")
	assert.Contains(t, md, "- state: categorical")
	assert.Contains(t, md, "VIC(2)")
	assert.Contains(t, md, "[HEAD]")
}
