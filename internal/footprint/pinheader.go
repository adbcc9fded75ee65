package footprint

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Orientation is the mounting orientation encoded in a pin-header
// footprint, when present.
type Orientation int

const (
	OrientationUnknown Orientation = iota
	OrientationVertical
	OrientationHorizontal
)

// PinHeader is the mechanical description parsed from a KiCad pin-header
// footprint name such as "PinHeader_1x04_P2.54mm_Vertical".
type PinHeader struct {
	Rows        int
	Cols        int
	Pitch       string // e.g. "2.54mm"
	Orientation Orientation
}

// Pins is the total pin count (rows × columns).
func (h PinHeader) Pins() int { return h.Rows * h.Cols }

var pinHeaderRe = regexp.MustCompile(`^PinHeader_(\d+)x(\d+)_P([\d.]+mm)(?:_(Vertical|Horizontal))?`)

// ParsePinHeader parses a pin-header footprint name. ok is false when the
// footprint is not a pin header.
func ParsePinHeader(footprint string) (PinHeader, bool) {
	m := pinHeaderRe.FindStringSubmatch(footprint)
	if m == nil {
		return PinHeader{}, false
	}
	rows, _ := strconv.Atoi(m[1])
	cols, _ := strconv.Atoi(m[2])
	h := PinHeader{Rows: rows, Cols: cols, Pitch: m[3]}
	switch m[4] {
	case "Vertical":
		h.Orientation = OrientationVertical
	case "Horizontal":
		h.Orientation = OrientationHorizontal
	}
	return h, true
}

// DescriptionHasPinCount reports whether a candidate description textually
// encodes the given pin count. Distributor descriptions are wildly
// inconsistent, so several notations are accepted: "1x4P", "4P", "4-pin",
// "4 pin", "4x1", "4 positions".
func DescriptionHasPinCount(description string, pins int) bool {
	if description == "" || pins <= 0 {
		return false
	}
	n := strconv.Itoa(pins)
	lower := strings.ToLower(description)
	patterns := []string{
		fmt.Sprintf(`\b1x%s\b`, n),
		fmt.Sprintf(`\b%sx1\b`, n),
		fmt.Sprintf(`\b%sp\b`, n),
		fmt.Sprintf(`1x%sp`, n),
		fmt.Sprintf(`%sx1p`, n),
		fmt.Sprintf(`\b%s[- ]?pin\b`, n),
		fmt.Sprintf(`\b%s ?positions?\b`, n),
		fmt.Sprintf(`\b%s ?pos\b`, n),
	}
	for _, p := range patterns {
		if regexp.MustCompile(p).MatchString(lower) {
			return true
		}
	}
	return false
}

// Orientation keyword sets for matching free-text descriptions. Vertical
// headers are usually sold as "straight"; horizontal ones as "right angle".
var (
	verticalWords   = []string{"vertical", "straight"}
	horizontalWords = []string{"horizontal", "right angle", "right-angle", "90 degree"}
)

// DescriptionMatchesOrientation reports whether a description is consistent
// with the wanted orientation. A description that names neither orientation
// is treated as inconsistent — the caller's fallback policy decides whether
// that eliminates it.
func DescriptionMatchesOrientation(description string, want Orientation) bool {
	lower := strings.ToLower(description)
	switch want {
	case OrientationVertical:
		return MatchesAnyKeyword(lower, verticalWords) && !MatchesAnyKeyword(lower, horizontalWords)
	case OrientationHorizontal:
		return MatchesAnyKeyword(lower, horizontalWords)
	default:
		return true
	}
}
