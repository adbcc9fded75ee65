package bom

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// KiCad BOM exports are semicolon-delimited:
//
//	Id;Designator;Footprint;Quantity;Designation;Supplier and ref
//
// JLCPCB BOM uploads are comma-delimited:
//
//	Comment,Designator,Footprint,JLCPCB Part #（optional）
const kicadDelimiter = ';'

var jlcpcbHeader = []string{"Comment", "Designator", "Footprint", "JLCPCB Part ＃（optional）"}

// ReadFile parses a BOM file in the given format.
func ReadFile(filename string, format Format) (*BOM, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var b *BOM
	switch format {
	case FormatKiCad:
		b, err = readKiCad(f)
	case FormatJLCPCB:
		b, err = readJLCPCB(f)
	default:
		return nil, fmt.Errorf("unsupported BOM format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	b.Filename = filename
	return b, nil
}

func readKiCad(r io.Reader) (*BOM, error) {
	cr := csv.NewReader(r)
	cr.Comma = kicadDelimiter
	cr.FieldsPerRecord = -1
	rows, err := readAll(cr)
	if err != nil {
		return nil, err
	}
	lines := make([]Line, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, Line{
			References: splitReferences(row["Designator"]),
			Value:      strings.TrimSpace(row["Designation"]),
			Footprint:  strings.TrimSpace(row["Footprint"]),
			PartNumber: strings.TrimSpace(row["Supplier and ref"]),
		})
	}
	return &BOM{Lines: lines, Format: FormatKiCad}, nil
}

func readJLCPCB(r io.Reader) (*BOM, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := readAll(cr)
	if err != nil {
		return nil, err
	}
	lines := make([]Line, 0, len(rows))
	for _, row := range rows {
		pn := row["JLCPCB Part #"]
		if pn == "" {
			pn = row[jlcpcbHeader[3]]
		}
		lines = append(lines, Line{
			References: splitReferences(row["Designator"]),
			Value:      strings.TrimSpace(row["Comment"]),
			Footprint:  strings.TrimSpace(row["Footprint"]),
			PartNumber: strings.TrimSpace(pn),
		})
	}
	return &BOM{Lines: lines, Format: FormatJLCPCB}, nil
}

// readAll reads header + records into header-keyed maps.
func readAll(cr *csv.Reader) ([]map[string]string, error) {
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	var rows []map[string]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(rec) {
				row[h] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func splitReferences(s string) []string {
	parts := strings.Split(s, ",")
	refs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			refs = append(refs, p)
		}
	}
	return refs
}

// WriteFile writes the BOM in the given format. An empty format keeps the
// BOM's own.
func (b *BOM) WriteFile(filename string, format Format) error {
	if format == "" {
		format = b.Format
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return b.write(f, format)
}

func (b *BOM) write(w io.Writer, format Format) error {
	cw := csv.NewWriter(w)
	switch format {
	case FormatJLCPCB:
		if err := cw.Write(jlcpcbHeader); err != nil {
			return err
		}
		for _, l := range b.Lines {
			rec := []string{l.Value, strings.Join(l.References, ", "), l.Footprint, l.PartNumber}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	case FormatKiCad:
		cw.Comma = kicadDelimiter
		header := []string{"Id", "Designator", "Footprint", "Quantity", "Designation", "Supplier and ref"}
		if err := cw.Write(header); err != nil {
			return err
		}
		for i, l := range b.Lines {
			rec := []string{
				strconv.Itoa(i + 1),
				strings.Join(l.References, ", "),
				l.Footprint,
				strconv.Itoa(l.Quantity()),
				l.Value,
				l.PartNumber,
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unsupported BOM format %q", format)
	}
	cw.Flush()
	return cw.Error()
}
