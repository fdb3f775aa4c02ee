package color

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHex_ParsesChannels_When_HashIsOptional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{name: "with hash", input: "#7aa2f7", want: Color{R: 0x7a, G: 0xa2, B: 0xf7}},
		{name: "without hash", input: "1a1b26", want: Color{R: 0x1a, G: 0x1b, B: 0x26}},
		{name: "uppercase digits", input: "#FF9E64", want: Color{R: 0xff, G: 0x9e, B: 0x64}},
		{name: "black", input: "000000", want: Color{}},
		{name: "white", input: "#ffffff", want: Color{R: 255, G: 255, B: 255}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := FromHex(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFromHex_ReturnsErrInvalidHex_When_InputIsMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "bare hash", input: "#"},
		{name: "three digits", input: "#fff"},
		{name: "five digits", input: "12345"},
		{name: "seven digits", input: "#1234567"},
		{name: "non-hex characters", input: "#zzzzzz"},
		{name: "embedded space", input: "#12 456"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := FromHex(tc.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidHex)
			assert.Contains(t, err.Error(), tc.input)
		})
	}
}

func TestHex_RoundTripsLowercase_When_InputIsValid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"1a1b26", "C0CAF5", "f7768e", "9ECE6A", "000000", "FFFFFF"} {
		c, err := FromHex(input)
		require.NoError(t, err)
		assert.Equal(t, "#"+strings.ToLower(input), c.Hex())
	}
}

func TestANSISequences_Emit24BitSGR(t *testing.T) {
	t.Parallel()

	c := New(122, 162, 247)

	assert.Equal(t, "\x1b[38;2;122;162;247m", c.ANSIFg())
	assert.Equal(t, "\x1b[48;2;122;162;247m", c.ANSIBg())
	assert.Equal(t, "%{\x1b[38;2;122;162;247m%}", c.ZshFg())
	assert.Equal(t, "%{\x1b[48;2;122;162;247m%}", c.ZshBg())
}

func TestLighten_ReachesWhiteAtOne_And_IsIdentityAtZero(t *testing.T) {
	t.Parallel()

	c := New(26, 27, 38)

	assert.Equal(t, New(255, 255, 255), c.Lighten(1.0))
	assert.Equal(t, c, c.Lighten(0.0))
	assert.Equal(t, New(255, 255, 255), c.Lighten(3.5), "amount clamps to 1")
	assert.Equal(t, c, c.Lighten(-2), "amount clamps to 0")
}

func TestDarken_ReachesBlackAtOne_And_IsIdentityAtZero(t *testing.T) {
	t.Parallel()

	c := New(192, 202, 245)

	assert.Equal(t, Color{}, c.Darken(1.0))
	assert.Equal(t, c, c.Darken(0.0))
	assert.Equal(t, Color{}, c.Darken(9), "amount clamps to 1")
	assert.Equal(t, c, c.Darken(-0.5), "amount clamps to 0")
}

func TestChannelMath_Truncates_When_InterpolationIsFractional(t *testing.T) {
	t.Parallel()

	// 10 + (255-10)*0.5 = 132.5 truncates to 132.
	assert.Equal(t, New(132, 132, 132), New(10, 10, 10).Lighten(0.5))
	// 255 * 0.5 = 127.5 truncates to 127.
	assert.Equal(t, New(127, 127, 127), New(255, 255, 255).Darken(0.5))
	// Midpoint mix of black and white truncates to 127, not 128.
	assert.Equal(t, New(127, 127, 127), Color{}.Mix(New(255, 255, 255), 0.5))
}

func TestMix_HonorsRatioEndpoints(t *testing.T) {
	t.Parallel()

	a := New(247, 118, 142)
	b := New(158, 206, 106)

	assert.Equal(t, a, a.Mix(b, 0.0))
	assert.Equal(t, b, a.Mix(b, 1.0))
	assert.Equal(t, b, a.Mix(b, 42), "ratio clamps to 1")
}
