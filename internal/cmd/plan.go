package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runger/hwcli/internal/bom"
	"github.com/runger/hwcli/internal/shop"
	"github.com/runger/hwcli/internal/ui"
)

var (
	planFormat      string
	planOutput      string
	planVendors     []string
	planConcurrency int
	planMaxCand     int
	planNoCache     bool
	planJSON        bool
)

var planCmd = &cobra.Command{
	Use:   "plan <bom.csv>",
	Short: "Source every BOM line and write a sourcing plan",
	Long: `Search distributors for every line of the BOM, pick the best in-stock
part per line, and write the result as a JSON plan.

The plan records the selected part plus ranked alternatives for each
line, and is the input to 'hw cart'.

Examples:
  hw plan bom.csv
  hw plan --format jlcpcb --vendors mouser,digikey bom.csv
  hw plan -o myboard.plan.json bom.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planFormat, "format", "f", "kicad", "BOM format (kicad or jlcpcb)")
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "", "plan output path (default <bom>.plan.json)")
	planCmd.Flags().StringSliceVar(&planVendors, "vendors", nil, "restrict to these distributors (overrides config)")
	planCmd.Flags().IntVar(&planConcurrency, "concurrency", 0, "concurrent searches (overrides config)")
	planCmd.Flags().IntVar(&planMaxCand, "max-candidates", 0, "ranked alternatives kept per line (overrides config)")
	planCmd.Flags().BoolVar(&planNoCache, "no-cache", false, "bypass the search response cache")
	planCmd.Flags().BoolVar(&planJSON, "json", false, "print the plan as JSON instead of a table")
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	format, err := bom.ParseFormat(planFormat)
	if err != nil {
		return err
	}
	b, err := bom.ReadFile(args[0], format)
	if err != nil {
		return err
	}
	if len(b.Lines) == 0 {
		return fmt.Errorf("%s: no BOM lines found", args[0])
	}

	searcher, closer, err := newSearcher(cfg, logger, planNoCache)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer()
	}

	vendors := cfg.Search.Vendors
	if len(planVendors) > 0 {
		vendors = planVendors
	}
	concurrency := cfg.Search.Concurrency
	if planConcurrency > 0 {
		concurrency = planConcurrency
	}
	maxCandidates := cfg.Search.MaxCandidates
	if planMaxCand > 0 {
		maxCandidates = planMaxCand
	}

	var progressOut io.Writer = os.Stdout
	if planJSON {
		progressOut = io.Discard
	}
	reporter := ui.NewProgressReporter(len(b.Lines), progressOut)
	workflow := shop.NewWorkflow(searcher, newResolver(cfg, logger), logger)
	plan := workflow.Generate(cmd.Context(), b, shop.Options{
		Concurrency:   concurrency,
		MaxCandidates: maxCandidates,
		Vendors:       vendors,
		Progress:      reporter.Report,
	})
	if err := reporter.Finish(); err != nil {
		logger.Warn("progress display failed", "error", err)
	}

	output := planOutput
	if output == "" {
		output = strings.TrimSuffix(args[0], ".csv") + ".plan.json"
	}
	if err := plan.Save(output); err != nil {
		return err
	}

	if planJSON {
		// Keep stdout machine-readable for pipes.
		data, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	} else {
		fmt.Print(ui.RenderPlan(plan))
		fmt.Printf("Plan written to %s\n", output)
	}
	if plan.SourcedCount() < len(plan.Items) {
		return fmt.Errorf("%d of %d lines could not be sourced",
			len(plan.Items)-plan.SourcedCount(), len(plan.Items))
	}
	return nil
}
