package footprint

import "strings"

// categoryKeywords maps a footprint prefix to the lowercase substrings at
// least one of which must appear in a trustworthy candidate's category or
// description. No entry means no category constraint (ICs, modules,
// connectors). L_ footprints are deliberately absent: ferrite beads and
// inductors share them, and the ferrite-bead filter handles that split.
var categoryKeywords = map[string][]string{
	"R_":    {"resistor"},
	"C_":    {"capacitor"},
	"Fuse_": {"fuse", "pptc", "circuit protection"},
	"D_":    {"diode"},
	"LED_":  {"led", "light emitting"},
}

// ExpectedCategoryKeywords returns the category keywords required for the
// given footprint, or nil when the footprint carries no category
// constraint.
func ExpectedCategoryKeywords(footprint string) []string {
	for prefix, kws := range categoryKeywords {
		if strings.HasPrefix(footprint, prefix) {
			return kws
		}
	}
	return nil
}

// ferriteKeywords identify ferrite beads and their inductor-family cousins
// in category/description text.
var ferriteKeywords = []string{"ferrite", "bead", "choke", "coil", "inductor"}

// FerriteKeywords returns the category/description terms accepted for a
// ferrite-bead BOM line.
func FerriteKeywords() []string { return ferriteKeywords }

// IsFerriteBead reports whether a BOM line describes a ferrite bead:
// an inductor footprint (L_ prefix) whose value follows the
// impedance-at-frequency notation, e.g. "120R@100MHz".
func IsFerriteBead(value, footprint string) bool {
	return strings.HasPrefix(footprint, "L_") && strings.Contains(value, "@")
}

// MatchesAnyKeyword reports whether text (case-insensitive) contains at
// least one of the given keywords.
func MatchesAnyKeyword(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
