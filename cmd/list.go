package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openamr/micplot/internal/table"
)

var (
	listInput string
	listDrug  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the (organism, drug) pairs present in the table",
	RunE: func(cmd *cobra.Command, args []string) error {
		input := effectiveConfig().InputPath
		if listInput != "" {
			input = listInput
		}
		recs, err := table.Load(input)
		if err != nil {
			return err
		}
		pairs := table.Pairs(recs)
		found := false
		for _, p := range pairs {
			if listDrug != "" && !strings.EqualFold(p.Drug, listDrug) {
				continue
			}
			fmt.Printf("- %s – %s: %d–%d (%d rows)\n", p.Organism, p.Drug, p.FirstYear, p.LastYear, p.Rows)
			found = true
		}
		if !found {
			fmt.Println("(no pairs)")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listInput, "input", "i", "", "path to the percentile CSV (overrides config)")
	listCmd.Flags().StringVar(&listDrug, "drug", "", "only list pairs for this drug (case-insensitive)")
}
