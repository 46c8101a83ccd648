package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/KaramelBytes/mortgage-econ/internal/utils"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultInputPath  = "/Users/trenthenderson/Documents/Git/mortgage-econ/data/educ-occ-mortgage.csv"
	DefaultOutputPath = "/Users/trenthenderson/Documents/Git/mortgage-econ/output/ols.png"
)

// Global configuration structure.
type Global struct {
	InputPath       string `mapstructure:"input_path" yaml:"input_path"`
	OutputPath      string `mapstructure:"output_path" yaml:"output_path"`
	PredictorColumn string `mapstructure:"predictor_column" yaml:"predictor_column"`
	OutcomeColumn   string `mapstructure:"outcome_column" yaml:"outcome_column"`
	// Seed fixes the train/test shuffle; 0 draws a fresh split every run.
	Seed int64 `mapstructure:"seed" yaml:"seed"`

	// Figure
	DPI       int     `mapstructure:"dpi" yaml:"dpi"`
	WidthIn   float64 `mapstructure:"width_in" yaml:"width_in"`
	HeightIn  float64 `mapstructure:"height_in" yaml:"height_in"`
	AnnotateX float64 `mapstructure:"annotate_x" yaml:"annotate_x"`
	AnnotateY float64 `mapstructure:"annotate_y" yaml:"annotate_y"`
	ShowBand  bool    `mapstructure:"show_band" yaml:"show_band"`

	// Logging
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

func defaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".mortgage-econ"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.mortgage-econ/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := defaultDir()
		if err != nil {
			return err
		}
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("MORTGAGE_ECON")
	v.AutomaticEnv()

	v.SetDefault("input_path", DefaultInputPath)
	v.SetDefault("output_path", DefaultOutputPath)
	v.SetDefault("predictor_column", "educ_occ_score")
	v.SetDefault("outcome_column", "median_mortgage_repayment")
	v.SetDefault("seed", 0)
	// Figure defaults
	v.SetDefault("dpi", 800)
	v.SetDefault("width_in", 10.0)
	v.SetDefault("height_in", 7.0)
	v.SetDefault("annotate_x", 770.0)
	v.SetDefault("annotate_y", 40000.0)
	v.SetDefault("show_band", false)
	// Logging defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		dir, err := defaultDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
