// Package color implements the 24-bit RGB model the prompt pipeline is
// built on: hex parsing and formatting, SGR sequence generation for plain
// and zsh-escaped output, and the lighten/darken/mix arithmetic themes use
// to derive accents from a base palette.
package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidHex reports a color literal that is not exactly six hex digits.
var ErrInvalidHex = errors.New("invalid hex color")

// Color is an immutable RGB24 value. The zero value is black.
type Color struct {
	R, G, B uint8
}

// New returns the color with the given channels.
func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromHex parses "rrggbb" or "#rrggbb". Any other shape fails with an
// error matching ErrInvalidHex that names the offending literal.
func FromHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex renders the color as "#rrggbb", lowercase.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ANSIFg returns the 24-bit SGR foreground sequence for this color.
func (c Color) ANSIFg() string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// ANSIBg returns the 24-bit SGR background sequence for this color.
func (c Color) ANSIBg() string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// ZshFg wraps ANSIFg in %{...%} so zsh excludes the escape from its
// line-width accounting.
func (c Color) ZshFg() string {
	return "%{" + c.ANSIFg() + "%}"
}

// ZshBg wraps ANSIBg in %{...%}.
func (c Color) ZshBg() string {
	return "%{" + c.ANSIBg() + "%}"
}

// Lighten interpolates each channel toward white. amount is clamped to
// [0, 1]. Channel results truncate rather than round; output parity with
// existing themes depends on that.
func (c Color) Lighten(amount float64) Color {
	amount = clamp01(amount)
	return Color{
		R: uint8(float64(c.R) + (255-float64(c.R))*amount),
		G: uint8(float64(c.G) + (255-float64(c.G))*amount),
		B: uint8(float64(c.B) + (255-float64(c.B))*amount),
	}
}

// Darken interpolates each channel toward black. amount is clamped to
// [0, 1] and results truncate.
func (c Color) Darken(amount float64) Color {
	amount = clamp01(amount)
	return Color{
		R: uint8(float64(c.R) * (1 - amount)),
		G: uint8(float64(c.G) * (1 - amount)),
		B: uint8(float64(c.B) * (1 - amount)),
	}
}

// Mix blends c toward other. ratio 0 returns c, ratio 1 returns other,
// values between truncate per channel.
func (c Color) Mix(other Color, ratio float64) Color {
	ratio = clamp01(ratio)
	return Color{
		R: uint8(float64(c.R)*(1-ratio) + float64(other.R)*ratio),
		G: uint8(float64(c.G)*(1-ratio) + float64(other.G)*ratio),
		B: uint8(float64(c.B)*(1-ratio) + float64(other.B)*ratio),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
