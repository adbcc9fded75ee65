// Package resolve selects the single best part for a BOM line from a noisy
// candidate list. Filtering removes physically or categorically
// incompatible candidates, scoring breaks ties among survivors, and the
// resolver glues the two together into a resolved-or-failed outcome.
//
// Everything in this package is a pure function of its inputs: no network
// I/O, no clocks, no shared mutable state. Input slices are never modified.
package resolve

import (
	"log/slog"
	"sort"

	"github.com/runger/hwcli/internal/footprint"
	"github.com/runger/hwcli/internal/part"
)

// DefaultMinStock is the stock floor applied before any other filter. A
// part below it is never an acceptable substitute, however well it matches.
const DefaultMinStock = 10

// Filter holds the tunables for candidate filtering.
type Filter struct {
	MinStock int
	Log      *slog.Logger
}

// NewFilter returns a Filter with the default stock floor.
func NewFilter() *Filter {
	return &Filter{MinStock: DefaultMinStock, Log: slog.Default()}
}

// Apply runs the ordered filter stages and returns the surviving
// candidates. The input slice is never mutated; each stage produces a new
// list.
//
// Stage order:
//
//  1. stock floor (hard — empties mean OutOfStockError)
//  2. category keyword rejection (soft)
//  3. ferrite-bead disambiguation (soft)
//  4. EIA package match, with MPN inference fallback (hard)
//  5. pin-header pin count, then orientation (both soft)
//
// Soft stages follow a fallback-on-total-elimination policy: a stage that
// would remove every remaining candidate is skipped with a warning, trading
// precision for availability — a wrong-but-flagged suggestion beats no
// suggestion. Stock and package are the genuine hard constraints: a part
// that is out of stock or the wrong physical size is never substituted.
func (f *Filter) Apply(candidates []part.Candidate, fp, value string) ([]part.Candidate, error) {
	if len(candidates) == 0 {
		return nil, ErrNoResults
	}

	inStock, err := f.stockStage(candidates)
	if err != nil {
		return nil, err
	}

	survivors := f.categoryStage(inStock, fp, value)
	survivors = f.ferriteStage(survivors, fp, value)

	survivors, err = f.packageStage(survivors, fp, value)
	if err != nil {
		return nil, err
	}

	survivors = f.pinHeaderStage(survivors, fp, value)
	return survivors, nil
}

// stockStage drops candidates below the stock floor. This is the one stage
// with no fallback: resolution fails outright when nothing is in stock.
func (f *Filter) stockStage(candidates []part.Candidate) ([]part.Candidate, error) {
	minStock := f.MinStock
	if minStock <= 0 {
		minStock = DefaultMinStock
	}
	inStock := make([]part.Candidate, 0, len(candidates))
	maxSeen := 0
	for _, c := range candidates {
		if c.Stock > maxSeen {
			maxSeen = c.Stock
		}
		if c.Stock >= minStock {
			inStock = append(inStock, c)
		}
	}
	if len(inStock) == 0 {
		return nil, &OutOfStockError{MaxStock: maxSeen, MinStock: minStock}
	}
	return inStock, nil
}

// categoryStage keeps candidates whose category or description mentions at
// least one keyword expected for the footprint's component family. Prevents
// cross-category substitutions like a ferrite bead landing on a fuse pad.
func (f *Filter) categoryStage(candidates []part.Candidate, fp, value string) []part.Candidate {
	keywords := footprint.ExpectedCategoryKeywords(fp)
	if keywords == nil {
		return candidates
	}
	matched := make([]part.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if footprint.MatchesAnyKeyword(c.Category+" "+c.Description, keywords) {
			matched = append(matched, c)
		}
	}
	if len(matched) == 0 {
		f.log().Warn("category filter matched nothing, keeping unfiltered set; verify selection manually",
			"value", value, "footprint", fp, "keywords", keywords)
		return candidates
	}
	return matched
}

// ferriteStage narrows a ferrite-bead line to inductor-family candidates.
func (f *Filter) ferriteStage(candidates []part.Candidate, fp, value string) []part.Candidate {
	if !footprint.IsFerriteBead(value, fp) {
		return candidates
	}
	matched := make([]part.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if footprint.MatchesAnyKeyword(c.Category+" "+c.Description, footprint.FerriteKeywords()) {
			matched = append(matched, c)
		}
	}
	if len(matched) == 0 {
		f.log().Warn("ferrite-bead filter matched nothing, keeping unfiltered set",
			"value", value, "footprint", fp)
		return candidates
	}
	return matched
}

// packageStage enforces the EIA package code when the footprint carries
// one. A candidate without a structured package field falls back to MPN
// naming-convention inference. No fallback on elimination: the pads
// literally will not line up for a different size.
func (f *Filter) packageStage(candidates []part.Candidate, fp, value string) ([]part.Candidate, error) {
	code := footprint.CodeFromFootprint(fp)
	if code == "" {
		// Non-passive (IC, connector, module) — nothing to enforce.
		f.log().Debug("no EIA code in footprint, skipping package filter",
			"value", value, "footprint", fp)
		return candidates, nil
	}

	matched := make([]part.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if footprint.PackageMatches(effectivePackage(c), code) {
			matched = append(matched, c)
		}
	}
	if len(matched) > 0 {
		return matched, nil
	}

	seen := distinctPackages(candidates, 5)
	if len(seen) == 0 {
		return nil, &PackageMismatchError{Code: code, NoPackageInfo: true, Candidates: len(candidates)}
	}
	return nil, &PackageMismatchError{Code: code, Seen: seen}
}

// pinHeaderStage applies the pin-count and orientation sub-filters for
// pin-header footprints. The two sub-filters fall back independently.
func (f *Filter) pinHeaderStage(candidates []part.Candidate, fp, value string) []part.Candidate {
	header, ok := footprint.ParsePinHeader(fp)
	if !ok {
		return candidates
	}

	byCount := make([]part.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if footprint.DescriptionHasPinCount(c.Description, header.Pins()) {
			byCount = append(byCount, c)
		}
	}
	if len(byCount) == 0 {
		f.log().Warn("pin-count filter matched nothing, keeping unfiltered set",
			"value", value, "footprint", fp, "pins", header.Pins())
		byCount = candidates
	}

	if header.Orientation == footprint.OrientationUnknown {
		return byCount
	}
	byOrient := make([]part.Candidate, 0, len(byCount))
	for _, c := range byCount {
		if footprint.DescriptionMatchesOrientation(c.Description, header.Orientation) {
			byOrient = append(byOrient, c)
		}
	}
	if len(byOrient) == 0 {
		f.log().Warn("orientation filter matched nothing, keeping unfiltered set",
			"value", value, "footprint", fp)
		return byCount
	}
	return byOrient
}

// effectivePackage is the candidate's package field, or the package
// inferred from its MPN when the field is empty.
func effectivePackage(c part.Candidate) string {
	if c.Package != "" {
		return c.Package
	}
	return footprint.InferPackage(c.MPN)
}

// distinctPackages returns up to limit distinct non-empty effective
// packages, sorted for stable error messages.
func distinctPackages(candidates []part.Candidate, limit int) []string {
	set := make(map[string]struct{})
	for _, c := range candidates {
		if p := effectivePackage(c); p != "" {
			set[p] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Strings(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (f *Filter) log() *slog.Logger {
	if f.Log != nil {
		return f.Log
	}
	return slog.Default()
}
