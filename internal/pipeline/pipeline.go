// Package pipeline runs the load → clean → split → fit → predict → visualize
// sequence once.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/KaramelBytes/mortgage-econ/internal/chart"
	"github.com/KaramelBytes/mortgage-econ/internal/dataset"
	"github.com/KaramelBytes/mortgage-econ/internal/metrics"
	"github.com/KaramelBytes/mortgage-econ/internal/ols"
	"github.com/KaramelBytes/mortgage-econ/internal/split"
	"github.com/KaramelBytes/mortgage-econ/internal/telemetry"
)

// Options describes one run.
type Options struct {
	InputPath  string
	OutputPath string
	Predictor  string
	Outcome    string
	Dataset    dataset.Options
	Chart      chart.Options
	// Rand drives the train/test shuffle. Nil means a clock-seeded generator.
	Rand *rand.Rand
}

// Result keeps every intermediate artifact of a run.
type Result struct {
	Rows        int // rows after dropping missing values
	Dropped     int
	Split       *split.Split
	Model       *ols.Model
	Predictions []float64
	MSE         float64
	SE          float64
	Band        []metrics.BandRow
	OutputPath  string
}

// Run executes the pipeline. The regression summary and the test MSE are
// written to out; the figure is saved to opt.OutputPath.
func Run(ctx context.Context, opt Options, out io.Writer) (*Result, error) {
	log := telemetry.FromContext(ctx)

	raw, err := dataset.Load(opt.InputPath, opt.Dataset)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	tbl, dropped := raw.DropNA()
	log.Info("dataset loaded", "file", raw.Name, "rows", raw.Len(), "dropped", dropped)

	x, err := tbl.Float64s(opt.Predictor)
	if err != nil {
		return nil, fmt.Errorf("predictor: %w", err)
	}
	y, err := tbl.Float64s(opt.Outcome)
	if err != nil {
		return nil, fmt.Errorf("outcome: %w", err)
	}

	sp, err := split.TrainTest(x, y, split.TestSize, opt.Rand)
	if err != nil {
		return nil, fmt.Errorf("split: %w", err)
	}
	log.Debug("split", "train", len(sp.TrainIdx), "test", len(sp.TestIdx))

	model, err := ols.Fit(sp.XTrain, sp.YTrain, ols.Names{Outcome: opt.Outcome, Predictor: opt.Predictor})
	if err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}
	log.Info("model fitted", "intercept", model.Intercept(), "slope", model.Slope(), "r_squared", model.RSquared)
	fmt.Fprintln(out, model.Summary())

	preds := model.Predict(sp.XTest)
	mse := metrics.MSE(sp.YTest, preds)
	fmt.Fprintln(out, mse)

	se := metrics.SEM(preds)
	band := metrics.Band(sp.XTest, preds, se)

	p, err := chart.Render(chart.Input{X: sp.XTest, Y: sp.YTest, Preds: band, RSquared: model.RSquared}, opt.Chart)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if err := chart.Save(p, opt.OutputPath, opt.Chart); err != nil {
		return nil, fmt.Errorf("save: %w", err)
	}
	log.Info("figure saved", "path", opt.OutputPath, "dpi", opt.Chart.DPI)

	return &Result{
		Rows:        tbl.Len(),
		Dropped:     dropped,
		Split:       sp,
		Model:       model,
		Predictions: preds,
		MSE:         mse,
		SE:          se,
		Band:        band,
		OutputPath:  opt.OutputPath,
	}, nil
}
