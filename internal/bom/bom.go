// Package bom models a Bill of Materials and its CSV interchange formats
// (KiCad exports and JLCPCB assembly uploads).
package bom

import "fmt"

// Format identifies a supported BOM CSV dialect.
type Format string

const (
	FormatKiCad  Format = "kicad"
	FormatJLCPCB Format = "jlcpcb"
)

// ParseFormat converts a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatKiCad, FormatJLCPCB:
		return Format(s), nil
	}
	return "", fmt.Errorf("unsupported BOM format %q (want %q or %q)", s, FormatKiCad, FormatJLCPCB)
}

// Line is one logical component placement in a BOM: a unique component
// type covering one or more board reference designators.
type Line struct {
	// References are all designators for this component (e.g. R1, R2).
	References []string
	// Value is the free-text value/comment (e.g. "100nF", "120R@100MHz").
	Value string
	// Footprint is the package/outline identifier
	// (e.g. "C_0402_1005Metric").
	Footprint string
	// PartNumber is an explicit part number, when the designer pinned one.
	PartNumber string
	// Vendor is the preferred distributor for this line, when any.
	Vendor string
}

// Quantity is the number of placements, derived from the reference list.
func (l *Line) Quantity() int { return len(l.References) }

// BOM is a parsed Bill of Materials.
type BOM struct {
	Lines    []Line
	Format   Format
	Filename string
}
