package footprint

import "regexp"

// mpnRule maps a manufacturer part-numbering prefix to the EIA package size
// it implies. Rules are checked in order; the first match wins.
type mpnRule struct {
	pattern *regexp.Regexp
	code    string
}

// mpnRules covers the naming conventions of the major passive-component
// manufacturers. The table is data on purpose: adding a new convention
// means adding a row, not touching InferPackage. IC parts, connectors and
// modules match nothing and infer "".
var mpnRules = []mpnRule{
	// Samsung MLCC (CL + 2-digit case code).
	{regexp.MustCompile(`(?i)^CL03`), "0201"},
	{regexp.MustCompile(`(?i)^CL05`), "0402"},
	{regexp.MustCompile(`(?i)^CL10`), "0603"},
	{regexp.MustCompile(`(?i)^CL21`), "0805"},
	{regexp.MustCompile(`(?i)^CL31`), "1206"},
	{regexp.MustCompile(`(?i)^CL32`), "1210"},
	{regexp.MustCompile(`(?i)^CL43`), "1812"},
	// Murata MLCC (GRM + metric size code).
	{regexp.MustCompile(`(?i)^GRM03`), "0201"},
	{regexp.MustCompile(`(?i)^GRM15`), "0402"},
	{regexp.MustCompile(`(?i)^GRM18`), "0603"},
	{regexp.MustCompile(`(?i)^GRM21`), "0805"},
	{regexp.MustCompile(`(?i)^GRM31`), "1206"},
	{regexp.MustCompile(`(?i)^GRM32`), "1210"},
	{regexp.MustCompile(`(?i)^GRM43`), "1806"},
	// Murata GCM (AEC-Q200 MLCC, same metric encoding).
	{regexp.MustCompile(`(?i)^GCM03`), "0201"},
	{regexp.MustCompile(`(?i)^GCM15`), "0402"},
	{regexp.MustCompile(`(?i)^GCM18`), "0603"},
	{regexp.MustCompile(`(?i)^GCM21`), "0805"},
	{regexp.MustCompile(`(?i)^GCM31`), "1206"},
	{regexp.MustCompile(`(?i)^GCM32`), "1210"},
	// Taiyo Yuden MLCC (JMK + 3-digit metric code).
	{regexp.MustCompile(`(?i)^JMK105`), "0402"},
	{regexp.MustCompile(`(?i)^JMK107`), "0603"},
	{regexp.MustCompile(`(?i)^JMK212`), "0805"},
	{regexp.MustCompile(`(?i)^JMK316`), "1206"},
	{regexp.MustCompile(`(?i)^JMK325`), "1210"},
	// TDK MLCC (C/CGA/CKG + 4-char metric dimension prefix).
	{regexp.MustCompile(`(?i)^C(?:GA|KG)?1005`), "0402"},
	{regexp.MustCompile(`(?i)^C(?:GA|KG)?1608`), "0603"},
	{regexp.MustCompile(`(?i)^C(?:GA|KG)?2012`), "0805"},
	{regexp.MustCompile(`(?i)^C(?:GA|KG)?3216`), "1206"},
	{regexp.MustCompile(`(?i)^C(?:GA|KG)?3225`), "1210"},
	// Yageo MLCC / thick-film resistors (CC / RC + EIA code directly).
	{regexp.MustCompile(`(?i)^(?:CC|RC)0201`), "0201"},
	{regexp.MustCompile(`(?i)^(?:CC|RC)0402`), "0402"},
	{regexp.MustCompile(`(?i)^(?:CC|RC)0603`), "0603"},
	{regexp.MustCompile(`(?i)^(?:CC|RC)0805`), "0805"},
	{regexp.MustCompile(`(?i)^(?:CC|RC)1206`), "1206"},
	{regexp.MustCompile(`(?i)^(?:CC|RC)1210`), "1210"},
	// Vishay / Dale resistors (CRCW + EIA code directly).
	{regexp.MustCompile(`(?i)^CRCW0201`), "0201"},
	{regexp.MustCompile(`(?i)^CRCW0402`), "0402"},
	{regexp.MustCompile(`(?i)^CRCW0603`), "0603"},
	{regexp.MustCompile(`(?i)^CRCW0805`), "0805"},
	{regexp.MustCompile(`(?i)^CRCW1206`), "1206"},
	{regexp.MustCompile(`(?i)^CRCW1210`), "1210"},
	// Panasonic resistors (ERJ + size digit).
	{regexp.MustCompile(`(?i)^ERJ.?2`), "0402"},
	{regexp.MustCompile(`(?i)^ERJ.?3`), "0603"},
	{regexp.MustCompile(`(?i)^ERJ.?6`), "0805"},
	{regexp.MustCompile(`(?i)^ERJ.?8`), "1206"},
	{regexp.MustCompile(`(?i)^ERJ.?R`), "0201"},
	// Murata ferrite beads (BLM + metric size).
	{regexp.MustCompile(`(?i)^BLM15`), "0402"},
	{regexp.MustCompile(`(?i)^BLM18`), "0603"},
	{regexp.MustCompile(`(?i)^BLM21`), "0805"},
	{regexp.MustCompile(`(?i)^BLM31`), "1206"},
	// Murata inductors (LQM + size code).
	{regexp.MustCompile(`(?i)^LQM21`), "0805"},
	{regexp.MustCompile(`(?i)^LQM31`), "1206"},
	{regexp.MustCompile(`(?i)^LQM32`), "1210"},
	{regexp.MustCompile(`(?i)^LQM43`), "1812"},
}

// InferPackage infers an EIA package code from a manufacturer part number
// using the naming-convention table. Returns "" when no rule matches.
func InferPackage(mpn string) string {
	if mpn == "" {
		return ""
	}
	for _, r := range mpnRules {
		if r.pattern.MatchString(mpn) {
			return r.code
		}
	}
	return ""
}
