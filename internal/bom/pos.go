package bom

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// KiCad POS exports are comma-delimited:
//
//	Ref,Val,Package,PosX,PosY,Rot,Side
//
// JLCPCB CPL uploads want:
//
//	Designator,Mid X,Mid Y,Layer,Rotation
var cplHeader = []string{"Designator", "Mid X", "Mid Y", "Layer", "Rotation"}

var sideToLayer = map[string]string{
	"top":    "Top",
	"bottom": "Bottom",
}

// ConvertPosToCPL converts a KiCad placement (POS) CSV into a JLCPCB CPL
// CSV. Coordinates gain a "mm" suffix and the Side column maps to
// Top/Bottom.
func ConvertPosToCPL(inFile, outFile string) error {
	in, err := os.Open(inFile)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := convertPos(in, out); err != nil {
		return fmt.Errorf("converting %s: %w", inFile, err)
	}
	return nil
}

func convertPos(r io.Reader, w io.Writer) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := readAll(cr)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(cplHeader); err != nil {
		return err
	}
	for _, row := range rows {
		layer, ok := sideToLayer[strings.ToLower(strings.TrimSpace(row["Side"]))]
		if !ok {
			return fmt.Errorf("unknown board side %q for %q", row["Side"], row["Ref"])
		}
		rec := []string{
			strings.TrimSpace(row["Ref"]),
			strings.TrimSpace(row["PosX"]) + "mm",
			strings.TrimSpace(row["PosY"]) + "mm",
			layer,
			strings.TrimSpace(row["Rot"]),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
