// Package query turns a raw BOM value + footprint pair into an effective
// distributor search string. Vendor search engines are strongest on exact
// tokens, so the builder injects the minimum extra tokens that pin down
// package size and component family while leaving free-text part numbers
// untouched.
package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/runger/hwcli/internal/footprint"
)

var (
	separatorRe  = regexp.MustCompile(`[@/\\]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	bareNumberRe = regexp.MustCompile(`^\d+\.?\d*$`)

	// Connector model extraction, first match wins.
	jstRe        = regexp.MustCompile(`^JST_[A-Z]+_([\w-]+?)_\d+x\d+`)
	usbCRe       = regexp.MustCompile(`^USB_C_Receptacle_\w+_([\w-]+)`)
	usbGenericRe = regexp.MustCompile(`^USB_[A-Z]+_\w+_\w+_([\w-]+)`)

	connectorPrefixes = []string{"JST_", "USB_", "PinHeader_", "Conn_", "Molex_"}
)

// Sanitize cleans a BOM value for use as a search query. KiCad values often
// contain notation like "120R@100MHz" or "10uF/10V" that confuses full-text
// search; separators become spaces so terms match independently.
func Sanitize(value string) string {
	q := strings.TrimSpace(value)
	q = separatorRe.ReplaceAllString(q, " ")
	q = whitespaceRe.ReplaceAllString(q, " ")
	return strings.TrimSpace(q)
}

// Build chooses the best search query for a BOM line. Routing rules,
// applied in priority order:
//
//   - ferrite beads (L_ footprint + "@" in value) → sanitized value +
//     "ferrite bead"
//   - connectors (JST_, USB_, PinHeader_, Conn_, Molex_ prefixes) → model
//     number extracted from the footprint
//   - fuses (Fuse_ prefix) → sanitized value + "fuse" + EIA code
//   - bare-number resistor values → value + "ohm" (keeps a "27" from
//     matching 27k/2.7M parts)
//   - anything with an EIA code in the footprint → sanitized value + code
//   - everything else (ICs, modules) → sanitized value as-is
//
// Build is pure and total; it never fails and never duplicates an EIA code
// already present in the value.
func Build(value, fp string) string {
	if footprint.IsFerriteBead(value, fp) {
		// "120R@100MHz" → "120R 100MHz ferrite bead"
		return Sanitize(value) + " ferrite bead"
	}

	for _, p := range connectorPrefixes {
		if strings.HasPrefix(fp, p) {
			return buildConnectorQuery(value, fp)
		}
	}

	if strings.HasPrefix(fp, "Fuse_") {
		base := Sanitize(value)
		q := base + " fuse"
		if eia := footprint.CodeFromFootprint(fp); eia != "" && !strings.Contains(base, eia) {
			q += " " + eia
		}
		return q
	}

	base := Sanitize(value)

	if strings.HasPrefix(fp, "R_") && bareNumberRe.MatchString(base) {
		base += "ohm"
	}

	if eia := footprint.CodeFromFootprint(fp); eia != "" && !strings.Contains(base, eia) {
		return base + " " + eia
	}
	return base
}

// buildConnectorQuery extracts the vendor model number embedded in a
// connector footprint. Connector part numbers are model-specific
// (e.g. "SM08B-GHS-TB"); searching the model beats searching the value.
// Falls back to the sanitized value when no pattern matches.
func buildConnectorQuery(value, fp string) string {
	// JST_GH_SM08B-GHS-TB_1x08-1MP_P1.25mm → "SM08B-GHS-TB"
	if m := jstRe.FindStringSubmatch(fp); m != nil {
		return m[1]
	}
	// USB_C_Receptacle_HRO_TYPE-C-31-M-12 → "TYPE-C-31-M-12"
	if m := usbCRe.FindStringSubmatch(fp); m != nil {
		return m[1]
	}
	// USB_A_Receptacle_Amphenol_10118194 → "10118194"
	if m := usbGenericRe.FindStringSubmatch(fp); m != nil {
		return m[1]
	}
	// PinHeader_1x04_P2.54mm_Vertical → "2.54mm 4 pin header vertical"
	if h, ok := footprint.ParsePinHeader(fp); ok {
		q := h.Pitch + " " + strconv.Itoa(h.Pins()) + " pin header"
		switch h.Orientation {
		case footprint.OrientationVertical:
			q += " vertical"
		case footprint.OrientationHorizontal:
			q += " horizontal"
		}
		return q
	}
	return Sanitize(value)
}
