package resolve

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/runger/hwcli/internal/footprint"
	"github.com/runger/hwcli/internal/part"
)

// Score term caps. Each term is capped independently so no single factor
// can drown out the others.
const (
	stockScoreCap   = 100.0
	priceScoreCap   = 30.0
	currentScoreCap = 30.0

	goodDielectricBonus   = 20.0
	poorDielectricPenalty = 50.0
)

var (
	// Stable MLCC dielectrics vs the ones whose capacitance collapses
	// under bias/temperature. The penalty is sized to always lose to a
	// stable-dielectric candidate regardless of stock or price.
	goodDielectrics = []string{"c0g", "np0", "x7r", "x5r"}
	poorDielectrics = []string{"y5v", "z5u", "y5u"}

	currentAmpsRe      = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*A\b`)
	currentMilliampsRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*mA\b`)
)

// Scorer assigns a desirability score to a candidate that already passed
// filtering. Higher is better. Scores only break ties between compatible
// candidates — they never override a hard filter.
//
// The dielectric and current-rating terms parse free-text descriptions and
// are tuned against one vendor's conventions; both are replaceable via
// options.
type Scorer struct {
	dielectric func(c part.Candidate, fp string) float64
	current    func(c part.Candidate, fp, value string) float64
}

// ScorerOption customizes a Scorer's heuristic terms.
type ScorerOption func(*Scorer)

// WithDielectricTerm replaces the capacitor dielectric-quality term.
func WithDielectricTerm(fn func(c part.Candidate, fp string) float64) ScorerOption {
	return func(s *Scorer) { s.dielectric = fn }
}

// WithCurrentTerm replaces the inductor current-rating term.
func WithCurrentTerm(fn func(c part.Candidate, fp, value string) float64) ScorerOption {
	return func(s *Scorer) { s.current = fn }
}

// NewScorer returns a Scorer with the default heuristic terms.
func NewScorer(opts ...ScorerOption) *Scorer {
	s := &Scorer{
		dielectric: dielectricTerm,
		current:    currentRatingTerm,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score computes the candidate's desirability:
//
//   - stock: min(100, 20·log10(stock)) — logarithmic, so a 35M-stock part
//     doesn't crush a 50k-stock part on availability alone
//   - price: min(30, 30/(1+price)) — lower is better, bounded
//   - capacitor dielectric: +20 stable / −50 poor (C_ footprints only)
//   - inductor current rating: min(30, mA/100) (L_ footprints, except
//     ferrite-bead lines)
func (s *Scorer) Score(c part.Candidate, fp, value string) float64 {
	score := 0.0

	if c.Stock > 0 {
		score += math.Min(stockScoreCap, math.Log10(float64(c.Stock))*20)
	}

	if price, ok := c.UnitPrice(); ok && price > 0 {
		score += math.Min(priceScoreCap, priceScoreCap/(1.0+price))
	}

	score += s.dielectric(c, fp)
	score += s.current(c, fp, value)

	return score
}

// dielectricTerm rewards stable MLCC dielectric codes and punishes the
// poor ones, for capacitor footprints only.
func dielectricTerm(c part.Candidate, fp string) float64 {
	if !strings.HasPrefix(fp, "C_") {
		return 0
	}
	desc := strings.ToLower(c.Description)
	for _, d := range poorDielectrics {
		if strings.Contains(desc, d) {
			return -poorDielectricPenalty
		}
	}
	for _, d := range goodDielectrics {
		if strings.Contains(desc, d) {
			return goodDielectricBonus
		}
	}
	return 0
}

// currentRatingTerm extracts a current rating from the description of an
// inductor candidate and rewards higher ratings. Ferrite-bead lines share
// L_ footprints but are not power inductors, so they get no bonus.
func currentRatingTerm(c part.Candidate, fp, value string) float64 {
	if !strings.HasPrefix(fp, "L_") || footprint.IsFerriteBead(value, fp) {
		return 0
	}
	ma, ok := currentFromDescription(c.Description)
	if !ok {
		return 0
	}
	return math.Min(currentScoreCap, ma/100.0)
}

// currentFromDescription returns the current rating in milliamps parsed
// from a description like "2.2uH 1.5A 1210" or "4.7uH 320mA".
func currentFromDescription(description string) (float64, bool) {
	if m := currentMilliampsRe.FindStringSubmatch(description); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return v, true
		}
	}
	if m := currentAmpsRe.FindStringSubmatch(description); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return v * 1000, true
		}
	}
	return 0, false
}
