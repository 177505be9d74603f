package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/openamr/micplot/internal/chart"
	cfgpkg "github.com/openamr/micplot/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set micplot configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		fmt.Printf("input_path: %s\n", c.InputPath)
		fmt.Printf("output_dir: %s\n", c.OutputDir)
		fmt.Printf("min_year: %d\n", c.MinYear)
		fmt.Printf("width_in: %g\n", c.WidthIn)
		fmt.Printf("height_in: %g\n", c.HeightIn)
		fmt.Printf("dpi: %d\n", c.DPI)
		fmt.Printf("colors.p10: %s\n", c.Colors.P10)
		fmt.Printf("colors.p50: %s\n", c.Colors.P50)
		fmt.Printf("colors.p90: %s\n", c.Colors.P90)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "input_path":
			cfg.InputPath = val
		case "output_dir":
			cfg.OutputDir = val
		case "min_year":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for min_year: %v", val)
			}
			cfg.MinYear = i
		case "width_in":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("invalid float for width_in: %v", val)
			}
			cfg.WidthIn = f
		case "height_in":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("invalid float for height_in: %v", val)
			}
			cfg.HeightIn = f
		case "dpi":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for dpi: %v", val)
			}
			cfg.DPI = i
		case "colors.p10", "colors.p50", "colors.p90":
			if _, err := chart.ParseHexColor(val); err != nil {
				return err
			}
			switch key {
			case "colors.p10":
				cfg.Colors.P10 = val
			case "colors.p50":
				cfg.Colors.P50 = val
			case "colors.p90":
				cfg.Colors.P90 = val
			}
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
