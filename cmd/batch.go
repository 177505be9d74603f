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
	batchDrug string
	batchOut  outputFlags
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Render one chart per organism matching a drug name",
	Long: `batch matches the drug column case-insensitively and renders one chart
per distinct (organism, drug) pair found. Jobs run sequentially; the first
failing job aborts the run. A manifest.yaml naming every written file is
placed in the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, outDir, opt, err := batchOut.resolve(cmd, effectiveConfig())
		if err != nil {
			return err
		}
		recs, err := table.Load(input)
		if err != nil {
			return err
		}
		jobs := table.MatchDrug(recs, batchDrug)
		if len(jobs) == 0 {
			fmt.Printf("no rows matched drug %q in %s\n", batchDrug, input)
			return nil
		}

		m := manifest.New(input)
		for i, job := range jobs {
			if verbose {
				fmt.Printf("[%d/%d] %s – %s (%d rows)\n", i+1, len(jobs), job.Organism, job.Drug, len(job.Rows))
			}
			p, err := chart.Render(job.Organism, job.Drug, job.Rows, opt)
			if err != nil {
				return err
			}
			path, err := chart.Save(p, outDir, job.Organism, job.Drug, batchOut.suffix, opt)
			if err != nil {
				return fmt.Errorf("%s – %s: %w", job.Organism, job.Drug, err)
			}
			fmt.Printf("✓ wrote %s\n", path)
			m.Add(job.Organism, job.Drug, chart.Title(job.Organism, job.Drug), filepath.Base(path))
		}
		if err := m.Save(outDir); err != nil {
			return err
		}
		fmt.Printf("✓ wrote %s\n", filepath.Join(outDir, manifest.FileName))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVar(&batchDrug, "drug", "", "drug name to match (case-insensitive)")
	addOutputFlags(batchCmd, &batchOut)
	_ = batchCmd.MarkFlagRequired("drug")
}
