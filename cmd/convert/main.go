package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pharmdata/ndc-api/pkg/batch"
	"github.com/pharmdata/ndc-api/pkg/ndc"
)

var (
	column    string
	direction string
	output    string
	workers   int
)

var rootCmd = &cobra.Command{
	Use:   "ndc-convert [input file]",
	Short: "Convert the NDC column of a CSV or XLSX file between 10- and 11-digit formats",
	Long: `ndc-convert reads a CSV or XLSX file, converts the codes in the selected
column between the legacy 10-digit NDC segmentations and the standardized
11-digit 5-4-2 layout, and writes the table back out with the converted
values in an appended column.

Rows that cannot be converted are kept as-is and reported as warnings;
they never abort the run.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&column, "column", "c", "", "header name of the column holding the codes (required)")
	rootCmd.Flags().StringVarP(&direction, "direction", "d", string(ndc.To11Digit), "conversion direction: 10to11 or 11to10")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "output file path (default: <input>_converted.<ext>)")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", 0, "row conversion parallelism (default: number of CPUs)")
	rootCmd.MarkFlagRequired("column")
}

func run(cmd *cobra.Command, args []string) error {
	dir, err := ndc.ParseDirection(direction)
	if err != nil {
		return err
	}

	report, err := batch.Process(cmd.Context(), batch.Options{
		Input:     args[0],
		Output:    output,
		Column:    column,
		Direction: dir,
		Workers:   workers,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Successfully converted NDCs and saved to: %s\n", report.Output)
	fmt.Printf("\nConversion Summary:\n")
	fmt.Printf("Total rows processed: %d\n", report.Total)
	fmt.Printf("Conversion type: %s\n", dir)
	fmt.Printf("Certain: %d  Heuristic: %d  Ambiguous: %d  Failed: %d\n",
		report.Certain, report.Heuristic, report.Ambiguous, report.Failed)
	fmt.Printf("Original NDC column: %s\n", column)
	fmt.Printf("Converted NDC column: %s\n", column+batch.ColumnSuffix(dir))

	if len(report.Samples) > 0 {
		fmt.Printf("\nSample conversions (first %d):\n", len(report.Samples))
		for _, s := range report.Samples {
			fmt.Printf("  %s -> %s\n", s.Before, s.After)
		}
	}

	for _, w := range report.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: row %d (%s): %s\n", w.Row, w.Code, w.Message)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
