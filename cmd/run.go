package cmd

import (
	"context"
	"io"

	cfgpkg "github.com/KaramelBytes/mortgage-econ/internal/config"
	"github.com/KaramelBytes/mortgage-econ/internal/chart"
	"github.com/KaramelBytes/mortgage-econ/internal/dataset"
	"github.com/KaramelBytes/mortgage-econ/internal/pipeline"
	"github.com/KaramelBytes/mortgage-econ/internal/split"
	"gonum.org/v1/plot/vg"
)

// pipelineOptions maps the effective config onto a pipeline run.
func pipelineOptions(c *cfgpkg.Global) pipeline.Options {
	ch := chart.DefaultOptions()
	if c.DPI > 0 {
		ch.DPI = c.DPI
	}
	if c.WidthIn > 0 {
		ch.Width = vg.Length(c.WidthIn) * vg.Inch
	}
	if c.HeightIn > 0 {
		ch.Height = vg.Length(c.HeightIn) * vg.Inch
	}
	ch.AnnotateX = c.AnnotateX
	ch.AnnotateY = c.AnnotateY
	ch.ShowBand = c.ShowBand
	return pipeline.Options{
		InputPath:  c.InputPath,
		OutputPath: c.OutputPath,
		Predictor:  c.PredictorColumn,
		Outcome:    c.OutcomeColumn,
		Dataset:    dataset.DefaultOptions(),
		Chart:      ch,
		Rand:       split.NewRand(c.Seed),
	}
}

func runPipeline(ctx context.Context, c *cfgpkg.Global, out io.Writer) (*pipeline.Result, error) {
	return pipeline.Run(ctx, pipelineOptions(c), out)
}
