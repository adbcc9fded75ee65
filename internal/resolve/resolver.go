package resolve

import (
	"log/slog"
	"sort"

	"github.com/runger/hwcli/internal/part"
)

// Resolver orchestrates filter → score → select-max for one BOM line. It
// accepts a pre-fetched candidate list and performs no I/O, so for fixed
// inputs the outcome is always the same.
type Resolver struct {
	filter *Filter
	scorer *Scorer
	log    *slog.Logger
}

// NewResolver builds a Resolver. Passing nil for filter or scorer uses the
// defaults.
func NewResolver(filter *Filter, scorer *Scorer, log *slog.Logger) *Resolver {
	if filter == nil {
		filter = NewFilter()
	}
	if scorer == nil {
		scorer = NewScorer()
	}
	if log == nil {
		log = slog.Default()
	}
	filter.Log = log
	return &Resolver{filter: filter, scorer: scorer, log: log}
}

// Scored pairs a surviving candidate with its score for preview output.
type Scored struct {
	part.Candidate
	Score float64
}

// Resolve selects the best part for a BOM line from candidates. Exactly one
// of the return values is set: a selected candidate, or an error from the
// resolution taxonomy (ErrNoResults, *OutOfStockError,
// *PackageMismatchError). Business-logic failures are data — nothing here
// panics for a wrong package or an empty shelf.
func (r *Resolver) Resolve(value, fp string, candidates []part.Candidate) (*part.Candidate, error) {
	ranked, err := r.Rank(value, fp, candidates)
	if err != nil {
		return nil, err
	}
	selected := ranked[0].Candidate
	r.log.Info("resolved part",
		"value", value, "footprint", fp, "id", selected.ID,
		"stock", selected.Stock, "package", selected.Package, "source", selected.Source)
	return &selected, nil
}

// Rank filters candidates and returns the survivors ordered best-first.
// The sort is stable: candidates with equal scores keep their input order,
// so resolution is deterministic. Rank never returns an empty, error-free
// result.
func (r *Resolver) Rank(value, fp string, candidates []part.Candidate) ([]Scored, error) {
	survivors, err := r.filter.Apply(candidates, fp, value)
	if err != nil {
		return nil, err
	}

	scored := make([]Scored, 0, len(survivors))
	for _, c := range survivors {
		scored = append(scored, Scored{Candidate: c, Score: r.scorer.Score(c, fp, value)})
	}
	// Stable: equal-score candidates keep their input order.
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	return scored, nil
}
