package chart

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/mortgage-econ/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func sampleInput() Input {
	x := []float64{1010, 880, 950, 1120, 990}
	y := []float64{2400, 1750, 2050, 2900, 2200}
	yhat := make([]float64, len(x))
	for i, v := range x {
		yhat[i] = -2500 + 4.8*v
	}
	return Input{X: x, Y: y, Preds: metrics.Band(x, yhat, metrics.SEM(yhat)), RSquared: 0.4567}
}

func smallOptions() Options {
	opt := DefaultOptions()
	opt.Width = 4 * vg.Inch
	opt.Height = 3 * vg.Inch
	opt.DPI = 40
	opt.AnnotateX = 900
	opt.AnnotateY = 2800
	return opt
}

func TestRenderAndSavePNG(t *testing.T) {
	p, err := Render(sampleInput(), smallOptions())
	require.NoError(t, err)
	assert.Equal(t, "OLS Model Out-of-Sample Test", p.Title.Text)
	assert.Equal(t, "SEIFA Index of Education and Occupation", p.X.Label.Text)
	assert.Equal(t, "Median Mortgage Repayment", p.Y.Label.Text)
	assert.True(t, p.Legend.Top)
	assert.True(t, p.Legend.Left)
	assert.LessOrEqual(t, p.X.Min, 880.0)
	assert.GreaterOrEqual(t, p.X.Max, 1120.0)

	path := filepath.Join(t.TempDir(), "ols.png")
	require.NoError(t, Save(p, path, smallOptions()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 160, cfg.Width)
	assert.Equal(t, 120, cfg.Height)
}

func TestAnnotationDoesNotStretchAxes(t *testing.T) {
	opt := smallOptions()
	opt.AnnotateX = DefaultOptions().AnnotateX
	opt.AnnotateY = DefaultOptions().AnnotateY
	p, err := Render(sampleInput(), opt)
	require.NoError(t, err)
	assert.Equal(t, 880.0, p.X.Min)
	assert.Equal(t, 1120.0, p.X.Max)
	// lowest prediction -2500+4.8*880, highest observation 2900
	assert.InDelta(t, 1724.0, p.Y.Min, 1e-6)
	assert.InDelta(t, 2900.0, p.Y.Max, 1e-6)

	// the label falls outside the data window and is skipped when drawing
	require.NoError(t, Save(p, filepath.Join(t.TempDir(), "off.png"), opt))
}

func TestRenderWithBand(t *testing.T) {
	opt := smallOptions()
	opt.ShowBand = true
	p, err := Render(sampleInput(), opt)
	require.NoError(t, err)
	require.NoError(t, Save(p, filepath.Join(t.TempDir(), "band.png"), opt))
}

func TestRenderErrors(t *testing.T) {
	_, err := Render(Input{}, smallOptions())
	assert.ErrorIs(t, err, ErrNoPoints)
	_, err = Render(Input{X: []float64{1}, Y: nil}, smallOptions())
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestSaveUnwritablePath(t *testing.T) {
	p, err := Render(sampleInput(), smallOptions())
	require.NoError(t, err)
	err = Save(p, filepath.Join(t.TempDir(), "missing", "ols.png"), smallOptions())
	assert.Error(t, err)
}

func TestSortedPredsOrdersByPredictor(t *testing.T) {
	in := sampleInput()
	got := sortedPreds(in.Preds)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].X, got[i].X)
	}
	assert.Equal(t, 1010.0, in.Preds[0].X, "input must not be reordered")
}

func TestAnnotationText(t *testing.T) {
	assert.Equal(t, "R2 = 45.67%", AnnotationText(0.456712))
	assert.Equal(t, "R2 = 50.0%", AnnotationText(0.5))
	assert.Equal(t, "R2 = 12.3%", AnnotationText(0.123))
	assert.Equal(t, "R2 = 100.0%", AnnotationText(1))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$40,000", FormatCurrency(40000))
	assert.Equal(t, "$1,250", FormatCurrency(1249.6))
	assert.Equal(t, "$500", FormatCurrency(500))
	assert.Equal(t, "$0", FormatCurrency(0))
}

func TestCurrencyTicksLabelsMajorTicks(t *testing.T) {
	ticks := CurrencyTicks{}.Ticks(1000, 3000)
	require.NotEmpty(t, ticks)
	var labelled int
	for _, tk := range ticks {
		if tk.Label == "" {
			continue
		}
		labelled++
		assert.Equal(t, FormatCurrency(tk.Value), tk.Label)
		assert.Equal(t, byte('$'), tk.Label[0])
	}
	assert.Greater(t, labelled, 1)
}

func TestMustHex(t *testing.T) {
	c := mustHex("#05445E", 0.8)
	assert.Equal(t, uint8(0x05), c.R)
	assert.Equal(t, uint8(0x44), c.G)
	assert.Equal(t, uint8(0x5E), c.B)
	assert.Equal(t, uint8(math.Round(0.8*255)), c.A)
}
