package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runger/hwcli/internal/bom"
)

var (
	convertBomFrom string
	convertBomTo   string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert BOM and placement files between CAD and fab formats",
}

var convertBomCmd = &cobra.Command{
	Use:   "bom <in.csv> <out.csv>",
	Short: "Convert a BOM between KiCad and JLCPCB CSV dialects",
	Long: `Convert a BOM CSV between the KiCad export dialect (semicolon
separated) and the JLCPCB assembly upload dialect (comma separated).

Examples:
  hw convert bom --from kicad --to jlcpcb bom.csv jlcpcb-bom.csv`,
	Args: cobra.ExactArgs(2),
	RunE: runConvertBom,
}

var convertPosCmd = &cobra.Command{
	Use:   "pos <in.pos.csv> <out.cpl.csv>",
	Short: "Convert a KiCad position file to a JLCPCB CPL file",
	Long: `Convert a KiCad component position (.pos) CSV into the pick-and-place
CPL format JLCPCB expects: millimeter coordinates and Top/Bottom layer
names.

Examples:
  hw convert pos board-top-pos.csv board.cpl.csv`,
	Args: cobra.ExactArgs(2),
	RunE: runConvertPos,
}

func init() {
	convertBomCmd.Flags().StringVar(&convertBomFrom, "from", "kicad", "input format (kicad or jlcpcb)")
	convertBomCmd.Flags().StringVar(&convertBomTo, "to", "jlcpcb", "output format (kicad or jlcpcb)")
	convertCmd.AddCommand(convertBomCmd)
	convertCmd.AddCommand(convertPosCmd)
}

func runConvertBom(cmd *cobra.Command, args []string) error {
	from, err := bom.ParseFormat(convertBomFrom)
	if err != nil {
		return err
	}
	to, err := bom.ParseFormat(convertBomTo)
	if err != nil {
		return err
	}

	b, err := bom.ReadFile(args[0], from)
	if err != nil {
		return err
	}
	if err := b.WriteFile(args[1], to); err != nil {
		return err
	}
	fmt.Printf("Converted %d lines from %s to %s: %s\n", len(b.Lines), from, to, args[1])
	return nil
}

func runConvertPos(cmd *cobra.Command, args []string) error {
	if err := bom.ConvertPosToCPL(args[0], args[1]); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", args[1])
	return nil
}
