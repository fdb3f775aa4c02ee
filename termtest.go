package main

import (
	"fmt"
	"strings"

	"github.com/mikemackintosh/zush/pkg/buffer"
	"github.com/mikemackintosh/zush/pkg/color"
)

// Terminal capability check for zush. Run with `go run termtest.go`.
// The prompts this project renders assume 24-bit color and wide-glyph
// aware fonts; this prints what your terminal actually does with both.
func main() {
	fmt.Println("--- zush terminal capability check ---")
	fmt.Println("If you see raw escape codes (like '[1m'), the terminal is not interpreting ANSI.")
	fmt.Println()

	fmt.Println("--- Text styles used by templates ---")
	fmt.Println("\x1b[1mbold\x1b[0m  \x1b[2mdim\x1b[0m  \x1b[3mitalic\x1b[0m  \x1b[4munderline\x1b[0m")
	fmt.Println()

	fmt.Println("--- True color (24-bit RGB) ---")
	fmt.Println("Each bar should be a smooth gradient; visible banding means the")
	fmt.Println("terminal is quantizing to 256 colors and themes will look wrong.")
	printGradient(color.New(247, 118, 142), color.New(122, 162, 247))
	printGradient(color.New(158, 206, 106), color.New(187, 154, 247))

	base, _ := color.FromHex("#7aa2f7")
	fmt.Println("Lighten/darken ramp around #7aa2f7:")
	for i := -4; i <= 4; i++ {
		c := base
		switch {
		case i < 0:
			c = base.Darken(float64(-i) * 0.12)
		case i > 0:
			c = base.Lighten(float64(i) * 0.12)
		}
		fmt.Printf("%s██\x1b[0m", c.ANSIFg())
	}
	fmt.Println()
	fmt.Println()

	fmt.Println("--- Glyph widths ---")
	fmt.Println("The right edges below should align. A ragged edge means the font")
	fmt.Println("or terminal disagrees with the width table and padded prompts will drift.")
	glyphs := []string{"❯", "✓", "✗", "", "", "…", "█", "🐍"}
	for _, g := range glyphs {
		label := fmt.Sprintf("%q", g)
		pad := 10 - buffer.VisibleWidth(g)
		if pad < 0 {
			pad = 0
		}
		fmt.Printf("  %-10s cells=%d  |%s%s|\n", label, buffer.VisibleWidth(g), g, strings.Repeat(" ", pad))
	}
	fmt.Println()

	fmt.Println("--- Right alignment ---")
	fmt.Println("The timestamp should sit flush against the column 60 marker:")
	b := buffer.New(60, 1)
	b.WriteAligned(0, "~/projects/app", buffer.AlignLeft, "\x1b[1m")
	b.WriteAligned(0, "12:34:56", buffer.AlignRight, "\x1b[2m")
	fmt.Println(b.Render() + "<")
}

func printGradient(from, to color.Color) {
	var sb strings.Builder
	steps := 48
	for i := range steps {
		c := from.Mix(to, float64(i)/float64(steps-1))
		sb.WriteString(c.ANSIFg())
		sb.WriteString("█")
	}
	sb.WriteString("\x1b[0m")
	fmt.Println(sb.String())
}
