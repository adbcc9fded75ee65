// Package footprint holds the static package/category vocabulary used to
// decide physical and categorical compatibility between a KiCad footprint
// and a distributor search result: the EIA size-code set, MPN naming-
// convention tables, footprint-prefix category keywords, and the pin-header
// footprint grammar. Everything here is immutable data plus pure lookups,
// safe for concurrent use.
package footprint

import "regexp"

// eiaCodes are the standard EIA/IPC SMD package codes that appear in KiCad
// footprint names. When a BOM footprint contains one of these, the selected
// part's package must contain the same code — a different physical size
// will not fit the pads.
var eiaCodes = map[string]struct{}{
	"0201": {},
	"0402": {},
	"0603": {},
	"0805": {},
	"1206": {},
	"1210": {},
	"1812": {},
	"2010": {},
	"2512": {},
	"1008": {},
	"1806": {},
	"2816": {},
	"0504": {},
}

var fourDigitRun = regexp.MustCompile(`\d{4}`)

// CodeFromFootprint returns the EIA package code embedded in a KiCad
// footprint name, or "" when none is present.
//
//	"C_0402_1005Metric"  -> "0402"
//	"R_0805_2012Metric"  -> "0805"
//	"ESP32-S3-WROOM-1"   -> ""
func CodeFromFootprint(footprint string) string {
	for _, code := range fourDigitRun.FindAllString(footprint, -1) {
		if _, ok := eiaCodes[code]; ok {
			return code
		}
	}
	return ""
}

// IsEIACode reports whether code is a member of the standard EIA size set.
func IsEIACode(code string) bool {
	_, ok := eiaCodes[code]
	return ok
}

// PackageMatches reports whether pkg contains code as a standalone digit
// run. The digit boundary check prevents "0402" matching inside "40201".
//
//	PackageMatches("0402", "0402")          -> true
//	PackageMatches("C0402 Resistor", "0402") -> true
//	PackageMatches("1206", "0402")          -> false
//	PackageMatches("", "0402")              -> false
func PackageMatches(pkg, code string) bool {
	if pkg == "" || code == "" {
		return false
	}
	for i := 0; ; i++ {
		j := indexFrom(pkg, code, i)
		if j < 0 {
			return false
		}
		before := j == 0 || !isDigit(pkg[j-1])
		after := j+len(code) == len(pkg) || !isDigit(pkg[j+len(code)])
		if before && after {
			return true
		}
		i = j
	}
}

func indexFrom(s, sub string, from int) int {
	if from >= len(s) {
		return -1
	}
	for i := from; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
