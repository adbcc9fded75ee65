package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runger/hwcli/internal/bom"
)

func TestMask(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(not set)", mask(""))
	assert.Equal(t, "****", mask("abc"))
	assert.Equal(t, "********3456", mask("123456783456"))
}

func TestVendorList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(all)", vendorList(nil))
	assert.Equal(t, "mouser, digikey", vendorList([]string{"mouser", "digikey"}))
}

func TestConvertBomCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")
	kicad := "Id;Designator;Footprint;Quantity;Designation;Supplier and ref\n" +
		"1;C1, C2;C_0402_1005Metric;2;100nF;\n"
	require.NoError(t, os.WriteFile(in, []byte(kicad), 0o644))

	rootCmd.SetArgs([]string{"convert", "bom", "--from", "kicad", "--to", "jlcpcb", in, out})
	require.NoError(t, rootCmd.Execute())

	b, err := bom.ReadFile(out, bom.FormatJLCPCB)
	require.NoError(t, err)
	require.Len(t, b.Lines, 1)
	assert.Equal(t, "100nF", b.Lines[0].Value)
}

func TestConvertPosCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "board.pos.csv")
	out := filepath.Join(dir, "board.cpl.csv")
	pos := "Ref,Val,Package,PosX,PosY,Rot,Side\nC1,100nF,C_0402_1005Metric,1.0,2.0,90,top\n"
	require.NoError(t, os.WriteFile(in, []byte(pos), 0o644))

	rootCmd.SetArgs([]string{"convert", "pos", in, out})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "1.0mm,2.0mm,Top"))
}
