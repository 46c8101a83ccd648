package cmd

import (
	"context"
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/mortgage-econ/internal/config"
	"github.com/KaramelBytes/mortgage-econ/internal/telemetry"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "mortgage-econ",
	Short: "Fit an OLS model of mortgage repayments on education/occupation scores",
	Long: `mortgage-econ loads the SEIFA education/occupation dataset, drops rows with
missing values, holds out 20% of rows, fits an ordinary least squares model of
median mortgage repayment on the education/occupation score, reports test-set
MSE and saves a diagnostic plot.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireConfig(); err != nil {
			return err
		}
		ctx := runContext(cmd.Context())
		_, err := runPipeline(ctx, cfg, cmd.OutOrStdout())
		return err
	},
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.mortgage-econ/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

var cfgErr error

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		cfg, cfgErr = nil, err
		return
	}
	cfg, cfgErr = c, nil
	if debug {
		cfg.LogLevel = "debug"
	}
	telemetry.SetupLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
}

func requireConfig() error {
	if cfg == nil {
		if cfgErr != nil {
			return fmt.Errorf("load config: %w", cfgErr)
		}
		loadConfig()
		if cfgErr != nil {
			return fmt.Errorf("load config: %w", cfgErr)
		}
	}
	return nil
}

// runContext attaches a run-scoped logger to ctx.
func runContext(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := telemetry.WithRunID(telemetry.FromContext(ctx), telemetry.NewRunID())
	return telemetry.WithLogger(ctx, logger)
}
