package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Colors holds the three percentile series colors as #rrggbb strings.
type Colors struct {
	P10 string `mapstructure:"p10" yaml:"p10"`
	P50 string `mapstructure:"p50" yaml:"p50"`
	P90 string `mapstructure:"p90" yaml:"p90"`
}

// Global configuration structure.
type Global struct {
	InputPath string  `mapstructure:"input_path" yaml:"input_path"`
	OutputDir string  `mapstructure:"output_dir" yaml:"output_dir"`
	MinYear   int     `mapstructure:"min_year" yaml:"min_year"`
	WidthIn   float64 `mapstructure:"width_in" yaml:"width_in"`
	HeightIn  float64 `mapstructure:"height_in" yaml:"height_in"`
	DPI       int     `mapstructure:"dpi" yaml:"dpi"`
	Colors    Colors  `mapstructure:"colors" yaml:"colors"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.micplot/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".micplot")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("MICPLOT")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("input_path", filepath.Join("trend_tables", "mic_percentiles.csv"))
	v.SetDefault("output_dir", "plots")
	v.SetDefault("min_year", 0)
	v.SetDefault("width_in", 7.0)
	v.SetDefault("height_in", 4.0)
	v.SetDefault("dpi", 150)
	v.SetDefault("colors.p10", "#1f77b4")
	v.SetDefault("colors.p50", "#2ca02c")
	v.SetDefault("colors.p90", "#d62728")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".micplot")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
