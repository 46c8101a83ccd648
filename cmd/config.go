package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/KaramelBytes/mortgage-econ/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set mortgage-econ configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireConfig(); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "input_path: %s\n", cfg.InputPath)
		fmt.Fprintf(out, "output_path: %s\n", cfg.OutputPath)
		fmt.Fprintf(out, "predictor_column: %s\n", cfg.PredictorColumn)
		fmt.Fprintf(out, "outcome_column: %s\n", cfg.OutcomeColumn)
		if cfg.Seed != 0 {
			fmt.Fprintf(out, "seed: %d\n", cfg.Seed)
		} else {
			fmt.Fprintln(out, "seed: 0 (random split each run)")
		}
		fmt.Fprintf(out, "dpi: %d\n", cfg.DPI)
		fmt.Fprintf(out, "size: %gx%g in\n", cfg.WidthIn, cfg.HeightIn)
		fmt.Fprintf(out, "annotate_at: (%g, %g)\n", cfg.AnnotateX, cfg.AnnotateY)
		fmt.Fprintf(out, "show_band: %t\n", cfg.ShowBand)
		fmt.Fprintf(out, "log_level: %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "log_format: %s\n", cfg.LogFormat)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireConfig(); err != nil {
			return err
		}
		if err := setKey(cfg, args[0], args[1]); err != nil {
			return err
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Saved config")
		return nil
	},
}

func setKey(c *cfgpkg.Global, key, val string) error {
	switch key {
	case "input_path":
		c.InputPath = val
	case "output_path":
		c.OutputPath = val
	case "predictor_column":
		c.PredictorColumn = val
	case "outcome_column":
		c.OutcomeColumn = val
	case "seed":
		i, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid int for seed: %w", err)
		}
		c.Seed = i
	case "dpi":
		i, err := strconv.Atoi(val)
		if err != nil || i <= 0 {
			return fmt.Errorf("invalid positive int for dpi: %v", val)
		}
		c.DPI = i
	case "width_in", "height_in", "annotate_x", "annotate_y":
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("invalid float for %s: %w", key, err)
		}
		switch key {
		case "width_in":
			c.WidthIn = f
		case "height_in":
			c.HeightIn = f
		case "annotate_x":
			c.AnnotateX = f
		case "annotate_y":
			c.AnnotateY = f
		}
	case "show_band":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid bool for show_band: %w", err)
		}
		c.ShowBand = b
	case "log_level":
		switch strings.ToLower(val) {
		case "debug", "info", "warn", "error":
			c.LogLevel = strings.ToLower(val)
		default:
			return fmt.Errorf("invalid log_level: %s (use debug|info|warn|error)", val)
		}
	case "log_format":
		switch strings.ToLower(val) {
		case "text", "json":
			c.LogFormat = strings.ToLower(val)
		default:
			return fmt.Errorf("invalid log_format: %s (use text|json)", val)
		}
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
