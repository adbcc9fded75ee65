package shop

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/runger/hwcli/internal/bom"
	"github.com/runger/hwcli/internal/part"
	"github.com/runger/hwcli/internal/query"
	"github.com/runger/hwcli/internal/resolve"
	"github.com/runger/hwcli/internal/search"
)

const (
	// DefaultConcurrency bounds simultaneous distributor searches.
	DefaultConcurrency = 5
	// DefaultMaxCandidates is how many ranked alternatives a plan keeps
	// per line beyond the selected part.
	DefaultMaxCandidates = 3
)

// Options tunes a plan run. Zero values fall back to defaults.
type Options struct {
	// Concurrency is the number of BOM lines processed at once.
	Concurrency int
	// MaxCandidates is the ranked shortlist size kept per line.
	MaxCandidates int
	// Vendors restricts candidates to matching distributors. The
	// restriction is advisory: when it would eliminate every candidate for
	// a line, the unrestricted list is used instead.
	Vendors []string
	// Progress, when set, is called once per finished line.
	Progress func(done, total int, item *Item)
}

// Workflow generates sourcing plans from BOMs.
type Workflow struct {
	searcher search.Searcher
	resolver *resolve.Resolver
	log      *slog.Logger
}

// NewWorkflow builds a Workflow. A nil resolver uses the defaults.
func NewWorkflow(searcher search.Searcher, resolver *resolve.Resolver, log *slog.Logger) *Workflow {
	if resolver == nil {
		resolver = resolve.NewResolver(nil, nil, log)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Workflow{searcher: searcher, resolver: resolver, log: log}
}

// Generate sources every line of b concurrently and returns the plan in
// the BOM's original line order. A failed line never fails the run: its
// item carries the error and the remaining lines proceed.
func (w *Workflow) Generate(ctx context.Context, b *bom.BOM, opts Options) *Plan {
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	maxCandidates := opts.MaxCandidates
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxCandidates
	}

	plan := NewPlan(b, opts.Vendors)
	total := len(b.Lines)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		done int
	)
	sem := make(chan struct{}, concurrency)

	for i := range b.Lines {
		wg.Add(1)
		go func(idx int, line bom.Line) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			item := w.sourceLine(ctx, line, opts.Vendors, maxCandidates)

			mu.Lock()
			plan.Items[idx] = item
			done++
			if opts.Progress != nil {
				opts.Progress(done, total, &plan.Items[idx])
			}
			mu.Unlock()
		}(i, b.Lines[i])
	}
	wg.Wait()

	w.log.Info("plan generated",
		"plan", plan.ID, "bom", b.Filename,
		"lines", total, "sourced", plan.SourcedCount())
	return plan
}

// sourceLine runs the full search → filter → resolve pipeline for one
// line. It recovers from panics so one bad line cannot take down the run.
func (w *Workflow) sourceLine(ctx context.Context, line bom.Line, vendors []string, maxCandidates int) (item Item) {
	item = Item{
		References: line.References,
		Value:      line.Value,
		Footprint:  line.Footprint,
		Quantity:   line.Quantity(),
	}
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("line sourcing panicked", "value", line.Value, "panic", r)
			item.Selected = nil
			item.Candidates = nil
			item.Err = fmt.Sprintf("internal error: %v", r)
		}
	}()

	candidates, q, err := w.searchLine(ctx, line)
	item.Query = q
	if err != nil {
		w.log.Warn("search failed", "value", line.Value, "query", q, "error", err)
		item.Err = err.Error()
		return item
	}

	// A per-line supplier preference from the BOM trumps the global list.
	if line.Vendor != "" {
		vendors = []string{line.Vendor}
	}

	candidates = part.Dedupe(candidates)
	candidates = filterVendors(candidates, vendors)

	ranked, err := w.resolver.Rank(line.Value, line.Footprint, candidates)
	if err != nil {
		w.log.Warn("resolution failed", "value", line.Value, "query", q, "error", err)
		item.Err = err.Error()
		return item
	}

	selected := ranked[0].Candidate
	tagLine(&selected, line)
	item.Selected = &selected

	if len(ranked) > maxCandidates {
		ranked = ranked[:maxCandidates]
	}
	item.Candidates = make([]part.Candidate, len(ranked))
	for i := range ranked {
		c := ranked[i].Candidate
		tagLine(&c, line)
		item.Candidates[i] = c
	}
	return item
}

// searchLine picks the search term for a line. An explicit part number is
// tried first; if it yields nothing, the constructed value query is the
// fallback. Lines without a part number go straight to the value query.
func (w *Workflow) searchLine(ctx context.Context, line bom.Line) ([]part.Candidate, string, error) {
	valueQuery := query.Build(line.Value, line.Footprint)

	if line.PartNumber != "" {
		candidates, err := w.searcher.Search(ctx, line.PartNumber)
		if err == nil && len(candidates) > 0 {
			return candidates, line.PartNumber, nil
		}
		if err != nil {
			w.log.Warn("part number search failed, falling back to value query",
				"part_number", line.PartNumber, "error", err)
		}
	}

	candidates, err := w.searcher.Search(ctx, valueQuery)
	if err != nil {
		return nil, valueQuery, err
	}
	return candidates, valueQuery, nil
}

// filterVendors applies the distributor allow-list. When the list would
// wipe out every candidate the unfiltered list survives, so a narrow
// vendor preference degrades to "any vendor" instead of a failed line.
func filterVendors(candidates []part.Candidate, vendors []string) []part.Candidate {
	if len(vendors) == 0 {
		return candidates
	}
	kept := make([]part.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if MatchVendor(c.Distributor, vendors) {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return candidates
	}
	return kept
}

// tagLine attaches BOM linkage to a candidate headed into the plan.
func tagLine(c *part.Candidate, line bom.Line) {
	c.References = line.References
	c.Value = line.Value
	c.Footprint = line.Footprint
}
