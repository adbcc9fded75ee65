package bom

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const posSample = `Ref,Val,Package,PosX,PosY,Rot,Side
C1,100nF,C_0402_1005Metric,12.7000,-5.0800,90.000000,top
R1,10k,R_0402_1005Metric,3.8100,-2.5400,180.000000,bottom
`

func TestConvertPosToCPL(t *testing.T) {
	t.Parallel()

	in := writeTemp(t, "board.pos.csv", posSample)
	out := filepath.Join(t.TempDir(), "board.cpl.csv")
	require.NoError(t, ConvertPosToCPL(in, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Designator,Mid X,Mid Y,Layer,Rotation", lines[0])
	assert.Equal(t, "C1,12.7000mm,-5.0800mm,Top,90.000000", lines[1])
	assert.Equal(t, "R1,3.8100mm,-2.5400mm,Bottom,180.000000", lines[2])
}

func TestConvertPos_UnknownSide(t *testing.T) {
	t.Parallel()

	bad := strings.Replace(posSample, "top", "middle", 1)
	in := writeTemp(t, "bad.pos.csv", bad)
	out := filepath.Join(t.TempDir(), "bad.cpl.csv")

	err := ConvertPosToCPL(in, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "middle")
}
