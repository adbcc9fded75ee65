package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/runger/hwcli/internal/bom"
	"github.com/runger/hwcli/internal/shop"
	"github.com/runger/hwcli/internal/ui"
)

var (
	lookupFormat  string
	lookupOutput  string
	lookupNoCache bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <bom.csv>",
	Short: "Resolve part numbers and write them back into the BOM",
	Long: `Resolve a part for every BOM line that has no part number yet and
write the updated CSV. Lines with an existing part number are left
untouched.

Examples:
  hw lookup bom.csv
  hw lookup --format jlcpcb -o bom.filled.csv bom.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVarP(&lookupFormat, "format", "f", "kicad", "BOM format (kicad or jlcpcb)")
	lookupCmd.Flags().StringVarP(&lookupOutput, "output", "o", "", "output path (default: overwrite input)")
	lookupCmd.Flags().BoolVar(&lookupNoCache, "no-cache", false, "bypass the search response cache")
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	format, err := bom.ParseFormat(lookupFormat)
	if err != nil {
		return err
	}
	b, err := bom.ReadFile(args[0], format)
	if err != nil {
		return err
	}

	// Only the unfilled lines need sourcing.
	pending := &bom.BOM{Format: b.Format, Filename: b.Filename}
	indexes := make([]int, 0, len(b.Lines))
	for i, line := range b.Lines {
		if line.PartNumber == "" {
			pending.Lines = append(pending.Lines, line)
			indexes = append(indexes, i)
		}
	}
	if len(pending.Lines) == 0 {
		fmt.Println("All BOM lines already have part numbers.")
		return nil
	}

	searcher, closer, err := newSearcher(cfg, logger, lookupNoCache)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer()
	}

	reporter := ui.NewProgressReporter(len(pending.Lines), os.Stdout)
	workflow := shop.NewWorkflow(searcher, newResolver(cfg, logger), logger)
	plan := workflow.Generate(cmd.Context(), pending, shop.Options{
		Concurrency:   cfg.Search.Concurrency,
		MaxCandidates: cfg.Search.MaxCandidates,
		Vendors:       cfg.Search.Vendors,
		Progress:      reporter.Report,
	})
	if err := reporter.Finish(); err != nil {
		logger.Warn("progress display failed", "error", err)
	}

	filled := 0
	for n, item := range plan.Items {
		if item.Selected == nil {
			continue
		}
		b.Lines[indexes[n]].PartNumber = item.Selected.MPN
		filled++
	}

	output := lookupOutput
	if output == "" {
		output = args[0]
	}
	if err := b.WriteFile(output, format); err != nil {
		return err
	}

	fmt.Printf("Filled %d of %d missing part numbers, wrote %s\n",
		filled, len(pending.Lines), output)
	if filled < len(pending.Lines) {
		return fmt.Errorf("%d lines could not be resolved", len(pending.Lines)-filled)
	}
	return nil
}
