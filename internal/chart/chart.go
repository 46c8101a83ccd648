// Package chart renders the out-of-sample regression figure.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/KaramelBytes/mortgage-econ/internal/metrics"
	"github.com/KaramelBytes/mortgage-econ/internal/utils"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var (
	ErrNoPoints       = errors.New("chart: no test points to draw")
	ErrLengthMismatch = errors.New("chart: x and y lengths differ")
)

var (
	pointColor = mustHex("#05445E", 0.8)
	lineColor  = mustHex("#FEB06A", 1)
	bandColor  = mustHex("#FEB06A", 0.4)
	gridColor  = color.Gray{Y: 0xDD}
)

// Options controls the figure layout and output resolution.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
	DPI    int
	// AnnotateX/AnnotateY place the R² label in data coordinates.
	AnnotateX float64
	AnnotateY float64
	// ShowBand shades the ±2·SE band around the prediction line.
	ShowBand bool
}

// DefaultOptions returns the 10×7 inch, 800 DPI layout.
func DefaultOptions() Options {
	return Options{
		Title:     "OLS Model Out-of-Sample Test",
		XLabel:    "SEIFA Index of Education and Occupation",
		YLabel:    "Median Mortgage Repayment",
		Width:     10 * vg.Inch,
		Height:    7 * vg.Inch,
		DPI:       800,
		AnnotateX: 770,
		AnnotateY: 40000,
	}
}

// Input is what the figure shows: true test points, predictions with their
// band, and the training R².
type Input struct {
	X        []float64
	Y        []float64
	Preds    []metrics.BandRow
	RSquared float64
}

// Render builds the scatter of true test outcomes overlaid with the
// prediction line.
func Render(in Input, opt Options) (*plot.Plot, error) {
	if len(in.X) != len(in.Y) {
		return nil, ErrLengthMismatch
	}
	if len(in.X) == 0 {
		return nil, ErrNoPoints
	}
	p := plot.New()
	p.Title.Text = opt.Title
	p.X.Label.Text = opt.XLabel
	p.Y.Label.Text = opt.YLabel
	p.Y.Tick.Marker = CurrencyTicks{}
	p.Legend.Top = true
	p.Legend.Left = true

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	pts := make(plotter.XYs, len(in.X))
	for i := range in.X {
		pts[i].X = in.X[i]
		pts[i].Y = in.Y[i]
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("scatter: %w", err)
	}
	s.GlyphStyle.Color = pointColor
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(3)

	preds := sortedPreds(in.Preds)
	if opt.ShowBand && len(preds) > 1 {
		band, err := bandPolygon(preds)
		if err != nil {
			return nil, err
		}
		p.Add(band)
	}
	p.Add(s)
	p.Legend.Add("True Data", s)

	if len(preds) > 0 {
		linePts := make(plotter.XYs, len(preds))
		for i, r := range preds {
			linePts[i].X = r.X
			linePts[i].Y = r.YHat
		}
		l, err := plotter.NewLine(linePts)
		if err != nil {
			return nil, fmt.Errorf("prediction line: %w", err)
		}
		l.LineStyle.Color = lineColor
		l.LineStyle.Width = vg.Points(2)
		p.Add(l)
		p.Legend.Add("OLS Prediction", l)
	}

	if !math.IsNaN(in.RSquared) {
		sty := p.X.Tick.Label
		sty.Color = color.Black
		sty.Font.Size = vg.Points(10)
		sty.XAlign = draw.XLeft
		sty.YAlign = draw.YBottom
		p.Add(annotation{X: opt.AnnotateX, Y: opt.AnnotateY, Text: AnnotationText(in.RSquared), Style: sty})
	}
	return p, nil
}

// annotation draws text at a data coordinate. It has no DataRange, so the
// axes are fitted to the data alone and an out-of-range label is not drawn.
type annotation struct {
	X, Y  float64
	Text  string
	Style draw.TextStyle
}

func (a annotation) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	pt := vg.Point{X: trX(a.X), Y: trY(a.Y)}
	if !c.Contains(pt) {
		return
	}
	c.FillText(a.Style, pt, a.Text)
}

// Save rasterises p at the configured size and DPI and writes a PNG to path.
func Save(p *plot.Plot, path string, opt Options) error {
	c := vgimg.NewWith(vgimg.UseWH(opt.Width, opt.Height), vgimg.UseDPI(opt.DPI))
	p.Draw(draw.New(c))
	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(&buf); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write figure: %w", err)
	}
	return nil
}

// AnnotationText formats R² as a percentage rounded to two decimals,
// e.g. "R2 = 45.67%" or "R2 = 50.0%".
func AnnotationText(r2 float64) string {
	pct := math.Round(r2*100*100) / 100
	s := strconv.FormatFloat(pct, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return "R2 = " + s + "%"
}

func sortedPreds(rows []metrics.BandRow) []metrics.BandRow {
	out := append([]metrics.BandRow(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].X < out[j].X })
	return out
}

func bandPolygon(preds []metrics.BandRow) (*plotter.Polygon, error) {
	ring := make(plotter.XYs, 0, 2*len(preds))
	for _, r := range preds {
		ring = append(ring, plotter.XY{X: r.X, Y: r.Upper})
	}
	for i := len(preds) - 1; i >= 0; i-- {
		ring = append(ring, plotter.XY{X: preds[i].X, Y: preds[i].Lower})
	}
	poly, err := plotter.NewPolygon(ring)
	if err != nil {
		return nil, fmt.Errorf("band: %w", err)
	}
	poly.Color = bandColor
	poly.LineStyle.Width = 0
	return poly, nil
}

func mustHex(hex string, alpha float64) color.NRGBA {
	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		panic(err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: uint8(math.Round(alpha * 255))}
}
