package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeFromFootprint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		footprint string
		want      string
	}{
		{"C_0402_1005Metric", "0402"},
		{"R_0805_2012Metric", "0805"},
		{"L_1210_3225Metric", "1210"},
		{"Fuse_1206_3216Metric", "1206"},
		{"LED_0603_1608Metric", "0603"},
		// The metric run (1005) is not an EIA code; the first run that is
		// a member of the EIA set wins.
		{"C_1005_0402Metric", "0402"},
		{"ESP32-S3-WROOM-1", ""},
		{"PinHeader_1x04_P2.54mm_Vertical", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CodeFromFootprint(tt.footprint), "footprint %q", tt.footprint)
	}
}

func TestIsEIACode(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEIACode("0402"))
	assert.True(t, IsEIACode("2512"))
	assert.False(t, IsEIACode("1005"))
	assert.False(t, IsEIACode(""))
}

func TestPackageMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pkg  string
		code string
		want bool
	}{
		{"0402", "0402", true},
		{"C0402 Resistor", "0402", true},
		{"SMD,0402", "0402", true},
		{"1206", "0402", false},
		{"", "0402", false},
		{"0402", "", false},
		// Digit boundaries: the code must not be a slice of a longer number.
		{"40201", "0402", false},
		{"10402", "0402", false},
		{"0402-X", "0402", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PackageMatches(tt.pkg, tt.code), "pkg=%q code=%q", tt.pkg, tt.code)
	}
}

func TestInferPackage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mpn  string
		want string
	}{
		{"CL05B104KO5NNNC", "0402"}, // Samsung
		{"CL10A106KP8NNNC", "0603"},
		{"GRM155R71C104KA88D", "0402"}, // Murata
		{"GRM188R61A106KE69D", "0603"},
		{"BLM18AG601SN1D", "0603"}, // Murata ferrite
		{"CC0402KRX5R5BB106", "0402"}, // Yageo
		{"RC0603FR-0710KL", "0603"},
		{"CRCW040210K0FKED", "0402"}, // Vishay
		{"ERJ-2RKF1002X", "0402"},    // Panasonic
		{"unknown-part", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InferPackage(tt.mpn), "mpn %q", tt.mpn)
	}
}

func TestExpectedCategoryKeywords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"resistor"}, ExpectedCategoryKeywords("R_0402_1005Metric"))
	assert.Equal(t, []string{"capacitor"}, ExpectedCategoryKeywords("C_0805_2012Metric"))
	assert.Contains(t, ExpectedCategoryKeywords("Fuse_1206_3216Metric"), "fuse")
	assert.Contains(t, ExpectedCategoryKeywords("Fuse_1206_3216Metric"), "pptc")

	// Inductor footprints carry no category constraint; the ferrite-bead
	// filter owns that family.
	assert.Nil(t, ExpectedCategoryKeywords("L_0603_1608Metric"))
	assert.Nil(t, ExpectedCategoryKeywords("ESP32-S3-WROOM-1"))
}

func TestIsFerriteBead(t *testing.T) {
	t.Parallel()

	assert.True(t, IsFerriteBead("120R@100MHz", "L_0603_1608Metric"))
	assert.False(t, IsFerriteBead("10uH", "L_0603_1608Metric"))
	assert.False(t, IsFerriteBead("120R@100MHz", "R_0603_1608Metric"))
}

func TestMatchesAnyKeyword(t *testing.T) {
	t.Parallel()

	assert.True(t, MatchesAnyKeyword("Multilayer Ceramic Capacitor", []string{"capacitor"}))
	assert.True(t, MatchesAnyKeyword("CHIP RESISTOR 10K", []string{"resistor"}))
	assert.False(t, MatchesAnyKeyword("Ferrite Bead", []string{"capacitor"}))
	assert.False(t, MatchesAnyKeyword("", []string{"capacitor"}))
}

func TestParsePinHeader(t *testing.T) {
	t.Parallel()

	h, ok := ParsePinHeader("PinHeader_1x04_P2.54mm_Vertical")
	require.True(t, ok)
	assert.Equal(t, 1, h.Rows)
	assert.Equal(t, 4, h.Cols)
	assert.Equal(t, "2.54mm", h.Pitch)
	assert.Equal(t, OrientationVertical, h.Orientation)
	assert.Equal(t, 4, h.Pins())

	h, ok = ParsePinHeader("PinHeader_2x05_P1.27mm_Horizontal")
	require.True(t, ok)
	assert.Equal(t, 10, h.Pins())
	assert.Equal(t, OrientationHorizontal, h.Orientation)

	h, ok = ParsePinHeader("PinHeader_1x06_P2.54mm")
	require.True(t, ok)
	assert.Equal(t, OrientationUnknown, h.Orientation)

	_, ok = ParsePinHeader("C_0402_1005Metric")
	assert.False(t, ok)
}

func TestDescriptionHasPinCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		description string
		pins        int
		want        bool
	}{
		{"Pin header 1x4P 2.54mm straight", 4, true},
		{"Header 4P vertical", 4, true},
		{"4-pin male header", 4, true},
		{"4 pin header", 4, true},
		{"Connector header 4 positions", 4, true},
		{"Header 4 pos through hole", 4, true},
		{"4x1 gold plated header", 4, true},
		{"Pin header 1x40P breakaway", 4, false},
		{"Header 6P", 4, false},
		{"", 4, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DescriptionHasPinCount(tt.description, tt.pins),
			"description %q pins %d", tt.description, tt.pins)
	}
}

func TestDescriptionMatchesOrientation(t *testing.T) {
	t.Parallel()

	assert.True(t, DescriptionMatchesOrientation("straight male header", OrientationVertical))
	assert.True(t, DescriptionMatchesOrientation("Vertical SMT header", OrientationVertical))
	assert.False(t, DescriptionMatchesOrientation("right angle header", OrientationVertical))
	// "vertical" and "right angle" in one description is a listing for a
	// family of parts; too ambiguous to accept for vertical.
	assert.False(t, DescriptionMatchesOrientation("vertical or right angle", OrientationVertical))

	assert.True(t, DescriptionMatchesOrientation("right-angle header", OrientationHorizontal))
	assert.True(t, DescriptionMatchesOrientation("90 degree bent header", OrientationHorizontal))
	assert.False(t, DescriptionMatchesOrientation("straight header", OrientationHorizontal))

	// No orientation wanted: anything goes.
	assert.True(t, DescriptionMatchesOrientation("whatever", OrientationUnknown))
}
