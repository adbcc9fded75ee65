package bom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kicadSample = `Id;Designator;Footprint;Quantity;Designation;Supplier and ref
1;C1, C2;C_0402_1005Metric;2;100nF;
2;R1;R_0402_1005Metric;1;10k;
3;FB1;L_0603_1608Metric;1;120R@100MHz;C1015
`

const jlcpcbSample = `Comment,Designator,Footprint,JLCPCB Part ＃（optional）
100nF,"C1, C2",C_0402_1005Metric,C1525
10k,R1,R_0402_1005Metric,
`

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestReadFile_KiCad(t *testing.T) {
	t.Parallel()

	b, err := ReadFile(writeTemp(t, "bom.csv", kicadSample), FormatKiCad)
	require.NoError(t, err)
	require.Len(t, b.Lines, 3)

	assert.Equal(t, []string{"C1", "C2"}, b.Lines[0].References)
	assert.Equal(t, "100nF", b.Lines[0].Value)
	assert.Equal(t, "C_0402_1005Metric", b.Lines[0].Footprint)
	assert.Equal(t, 2, b.Lines[0].Quantity())
	assert.Empty(t, b.Lines[0].PartNumber)

	assert.Equal(t, "C1015", b.Lines[2].PartNumber)
	assert.Equal(t, FormatKiCad, b.Format)
}

func TestReadFile_JLCPCB(t *testing.T) {
	t.Parallel()

	b, err := ReadFile(writeTemp(t, "bom.csv", jlcpcbSample), FormatJLCPCB)
	require.NoError(t, err)
	require.Len(t, b.Lines, 2)

	assert.Equal(t, []string{"C1", "C2"}, b.Lines[0].References)
	assert.Equal(t, "100nF", b.Lines[0].Value)
	assert.Equal(t, "C1525", b.Lines[0].PartNumber)
	assert.Empty(t, b.Lines[1].PartNumber)
}

func TestReadFile_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"), FormatKiCad)
	assert.Error(t, err)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	t.Parallel()

	b, err := ReadFile(writeTemp(t, "in.csv", kicadSample), FormatKiCad)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, b.WriteFile(out, FormatKiCad))

	again, err := ReadFile(out, FormatKiCad)
	require.NoError(t, err)
	assert.Equal(t, b.Lines, again.Lines)
}

func TestWriteFile_ConvertToJLCPCB(t *testing.T) {
	t.Parallel()

	b, err := ReadFile(writeTemp(t, "in.csv", kicadSample), FormatKiCad)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, b.WriteFile(out, FormatJLCPCB))

	converted, err := ReadFile(out, FormatJLCPCB)
	require.NoError(t, err)
	require.Len(t, converted.Lines, 3)
	assert.Equal(t, "100nF", converted.Lines[0].Value)
	assert.Equal(t, []string{"C1", "C2"}, converted.Lines[0].References)
	assert.Equal(t, "C1015", converted.Lines[2].PartNumber)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := ParseFormat("kicad")
	require.NoError(t, err)
	assert.Equal(t, FormatKiCad, f)

	_, err = ParseFormat("altium")
	assert.Error(t, err)
}
