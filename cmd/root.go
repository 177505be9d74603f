package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	cfgpkg "github.com/openamr/micplot/internal/config"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "micplot",
	Short: "micplot: render MIC percentile trend charts from a precomputed table",
	Long: `micplot reads a table of antimicrobial MIC susceptibility percentiles
(organism, drug, year, p10, median, p90) and renders log-scale line charts
of the three percentile series to PNG files, one per organism-drug pair.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.micplot/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable per-job progress output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// effectiveConfig returns the loaded configuration, or built-in defaults
// when loading failed.
func effectiveConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	return &cfgpkg.Global{
		InputPath: filepath.Join("trend_tables", "mic_percentiles.csv"),
		OutputDir: "plots",
		WidthIn:   7,
		HeightIn:  4,
		DPI:       150,
		Colors:    cfgpkg.Colors{P10: "#1f77b4", P50: "#2ca02c", P90: "#d62728"},
	}
}
