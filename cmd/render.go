package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openamr/micplot/internal/chart"
	"github.com/openamr/micplot/internal/manifest"
	"github.com/openamr/micplot/internal/table"
)

var (
	renderOrganism string
	renderDrug     string
	renderManifest bool
	renderOut      outputFlags
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one chart for an exact (organism, drug) pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, outDir, opt, err := renderOut.resolve(cmd, effectiveConfig())
		if err != nil {
			return err
		}
		recs, err := table.Load(input)
		if err != nil {
			return err
		}
		rows, err := table.Exact(recs, renderOrganism, renderDrug)
		if err != nil {
			return err
		}
		p, err := chart.Render(renderOrganism, renderDrug, rows, opt)
		if err != nil {
			return err
		}
		path, err := chart.Save(p, outDir, renderOrganism, renderDrug, renderOut.suffix, opt)
		if err != nil {
			return fmt.Errorf("%s – %s: %w", renderOrganism, renderDrug, err)
		}
		fmt.Printf("✓ wrote %s\n", path)

		if renderManifest {
			m := manifest.New(input)
			m.Add(renderOrganism, renderDrug, chart.Title(renderOrganism, renderDrug), filepath.Base(path))
			if err := m.Save(outDir); err != nil {
				return err
			}
			fmt.Printf("✓ wrote %s\n", filepath.Join(outDir, manifest.FileName))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVar(&renderOrganism, "organism", "", "organism name (exact, case-sensitive)")
	renderCmd.Flags().StringVar(&renderDrug, "drug", "", "drug name (exact, case-sensitive)")
	renderCmd.Flags().BoolVar(&renderManifest, "manifest", false, "also write manifest.yaml to the output directory")
	addOutputFlags(renderCmd, &renderOut)
	_ = renderCmd.MarkFlagRequired("organism")
	_ = renderCmd.MarkFlagRequired("drug")
}
