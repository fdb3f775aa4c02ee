package template

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/template"
	"time"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/mikemackintosh/zush/pkg/buffer"
	"github.com/mikemackintosh/zush/pkg/color"
)

const ansiReset = "\x1b[0m"

// helpers is the evaluator's function vocabulary. Arity is checked per
// helper the way the original prompt language did it: a helper handed
// arguments it cannot use emits nothing (or its documented default)
// rather than failing the whole render.
var helpers = template.FuncMap{
	"color":       colorHelper,
	"bg":          bgHelper,
	"fg":          fgHelper,
	"segment":     segmentHelper,
	"bold":        wrapStyle("\x1b[1m"),
	"dim":         wrapStyle("\x1b[2m"),
	"italic":      wrapStyle("\x1b[3m"),
	"underline":   wrapStyle("\x1b[4m"),
	"reset":       resetHelper,
	"truncate":    truncateHelper,
	"pad_left":    padLeftHelper,
	"pad_right":   padRightHelper,
	"center":      centerHelper,
	"line":        lineHelper,
	"format_path": formatPathHelper,
	"format_time": formatTimeHelper,
	"fill_space":  fillSpaceHelper,
}

// colorHelper renders {{color "#hex" text}} or {{color r g b text}}:
// foreground code, text, full reset.
func colorHelper(args ...any) string {
	switch len(args) {
	case 2:
		c, err := color.FromHex(strOr(args[0], "#ffffff"))
		if err != nil {
			return ""
		}
		return c.ANSIFg() + str(args[1]) + ansiReset
	case 4:
		c := color.New(
			uint8(num(args[0], 255)),
			uint8(num(args[1], 255)),
			uint8(num(args[2], 255)))
		return c.ANSIFg() + str(args[3]) + ansiReset
	}
	return ""
}

// bgHelper with one argument emits an unterminated background code; the
// caller owns the matching reset. With two it wraps the text.
func bgHelper(args ...any) string {
	switch len(args) {
	case 1:
		c, err := color.FromHex(strOr(args[0], "#000000"))
		if err != nil {
			return ""
		}
		return c.ANSIBg()
	case 2:
		c, err := color.FromHex(strOr(args[0], "#000000"))
		if err != nil {
			return ""
		}
		return c.ANSIBg() + str(args[1]) + ansiReset
	}
	return ""
}

// fgHelper emits an unterminated foreground code.
func fgHelper(args ...any) string {
	hex := "#ffffff"
	if len(args) > 0 {
		hex = strOr(args[0], "#ffffff")
	}
	c, err := color.FromHex(hex)
	if err != nil {
		return ""
	}
	return c.ANSIFg()
}

// segmentHelper opens both background and foreground around text with
// no reset, so adjacent powerline pieces can share the open codes.
func segmentHelper(args ...any) string {
	if len(args) != 3 {
		return ""
	}
	bg, err := color.FromHex(strOr(args[0], "#000000"))
	if err != nil {
		return ""
	}
	fg, err := color.FromHex(strOr(args[1], "#ffffff"))
	if err != nil {
		return ""
	}
	return bg.ANSIBg() + fg.ANSIFg() + str(args[2])
}

func wrapStyle(code string) func(...any) string {
	return func(args ...any) string {
		text := ""
		if len(args) > 0 {
			text = str(args[0])
		}
		return code + text + ansiReset
	}
}

func resetHelper(...any) string {
	return ansiReset
}

// truncateHelper cuts byte-wise at max (default 30) with a trailing
// ellipsis marker.
func truncateHelper(args ...any) string {
	text := ""
	if len(args) > 0 {
		text = str(args[0])
	}
	max := 30
	if len(args) > 1 {
		max = int(num(args[1], 30))
	}
	if len(text) > max {
		cut := max - 3
		if cut < 0 {
			cut = 0
		}
		return text[:cut] + "..."
	}
	return text
}

func padLeftHelper(args ...any) string {
	text, width := textAndWidth(args)
	if pad := width - utf8.RuneCountInString(text); pad > 0 {
		return strings.Repeat(" ", pad) + text
	}
	return text
}

func padRightHelper(args ...any) string {
	text, width := textAndWidth(args)
	if pad := width - utf8.RuneCountInString(text); pad > 0 {
		return text + strings.Repeat(" ", pad)
	}
	return text
}

// centerHelper left-pads by half the slack, measured in display width
// so double-width glyphs center correctly.
func centerHelper(args ...any) string {
	text, width := textAndWidth(args)
	if w := runewidth.StringWidth(text); w < width {
		return strings.Repeat(" ", (width-w)/2) + text
	}
	return text
}

// lineHelper joins left and right with enough spaces to span width,
// or concatenates them plainly when they already overflow it.
func lineHelper(args ...any) string {
	if len(args) < 3 {
		return ""
	}
	width := int(num(args[0], 80))
	left, right := str(args[1]), str(args[2])

	total := buffer.VisibleWidth(left) + buffer.VisibleWidth(right)
	if total >= width {
		return left + right
	}
	return left + strings.Repeat(" ", width-total) + right
}

// formatPathHelper shortens a path for display. Modes: "last" keeps the
// final segment behind an ellipsis (a root plus one segment stays
// unchanged, there is no parent to elide), "first:N" abbreviates every
// middle segment to its first N runes, "depth:N" keeps the deepest N
// segments, "ellipsis" keeps the outermost and deepest, anything else
// passes through.
func formatPathHelper(args ...any) string {
	path := ""
	if len(args) > 0 {
		path = str(args[0])
	}
	mode := "full"
	if len(args) > 1 {
		mode = strOr(args[1], "full")
	}

	switch {
	case mode == "last":
		parts := strings.Split(path, "/")
		if len(parts) <= 2 {
			return path
		}
		return "…/" + parts[len(parts)-1]

	case strings.HasPrefix(mode, "first:"):
		n := modeCount(mode, "first:", 1)
		parts := strings.Split(path, "/")
		for i, seg := range parts {
			if i == 0 || i == len(parts)-1 {
				continue
			}
			if r := []rune(seg); len(r) > n {
				parts[i] = string(r[:n])
			}
		}
		return strings.Join(parts, "/")

	case strings.HasPrefix(mode, "depth:"):
		n := modeCount(mode, "depth:", 2)
		segs := splitNonEmpty(path)
		if len(segs) <= n {
			return path
		}
		return "…/" + strings.Join(segs[len(segs)-n:], "/")

	case mode == "ellipsis":
		segs := splitNonEmpty(path)
		if len(segs) <= 2 {
			return path
		}
		return segs[0] + "/…/" + segs[len(segs)-1]
	}
	return path
}

// timeMarkers resolves the inline style vocabulary format_time accepts
// inside its format string.
var timeMarkers = strings.NewReplacer(
	"(bold)", "\x1b[1m", "(/bold)", "\x1b[22m",
	"(b)", "\x1b[1m", "(/b)", "\x1b[22m",
	"(dim)", "\x1b[2m", "(/dim)", "\x1b[22m",
	"(d)", "\x1b[2m", "(/d)", "\x1b[22m",
	"(italic)", "\x1b[3m", "(/italic)", "\x1b[23m",
	"(i)", "\x1b[3m", "(/i)", "\x1b[23m",
	"(underline)", "\x1b[4m", "(/underline)", "\x1b[24m",
	"(u)", "\x1b[4m", "(/u)", "\x1b[24m",
)

// formatTimeHelper fills %H/%M/%S/%I/%p in the format string with
// zero-padded clock fields, then resolves inline style markers. A
// well-formed "HH:MM:SS" first argument supplies the clock; anything
// else falls back to the wall clock.
func formatTimeHelper(args ...any) string {
	clock := ""
	if len(args) > 0 {
		clock = str(args[0])
	}
	format := "%H:%M:%S"
	if len(args) > 1 {
		format = strOr(args[1], "%H:%M:%S")
	}

	now := time.Now()
	if t, err := time.Parse("15:04:05", clock); err == nil {
		now = t
	}

	hour12 := now.Hour() % 12
	if hour12 == 0 {
		hour12 = 12
	}
	meridiem := "PM"
	if now.Hour() < 12 {
		meridiem = "AM"
	}

	out := format
	out = strings.ReplaceAll(out, "%H", fmt.Sprintf("%02d", now.Hour()))
	out = strings.ReplaceAll(out, "%M", fmt.Sprintf("%02d", now.Minute()))
	out = strings.ReplaceAll(out, "%S", fmt.Sprintf("%02d", now.Second()))
	out = strings.ReplaceAll(out, "%I", fmt.Sprintf("%02d", hour12))
	out = strings.ReplaceAll(out, "%p", meridiem)
	return timeMarkers.Replace(out)
}

// fillSpaceHelper emits exactly the spaces needed to right-align right
// against width, ANSI-aware, minus offset columns of out-of-band
// content. Nothing when the line is already full.
func fillSpaceHelper(args ...any) string {
	width := 80
	if len(args) > 0 {
		width = int(num(args[0], 80))
	}
	var left, right string
	if len(args) > 1 {
		left = str(args[1])
	}
	if len(args) > 2 {
		right = str(args[2])
	}
	offset := 0
	if len(args) > 3 {
		offset = int(num(args[3], 0))
	}

	total := buffer.VisibleWidth(left) + buffer.VisibleWidth(right) + offset
	if total < width {
		return strings.Repeat(" ", width-total)
	}
	return ""
}

func textAndWidth(args []any) (string, int) {
	text := ""
	if len(args) > 0 {
		text = str(args[0])
	}
	width := 0
	if len(args) > 1 {
		width = int(num(args[1], 0))
	}
	return text, width
}

func modeCount(mode, prefix string, def int) int {
	n, err := strconv.Atoi(strings.TrimPrefix(mode, prefix))
	if err != nil || n < 0 {
		return def
	}
	return n
}

func splitNonEmpty(path string) []string {
	var segs []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// str coerces a template argument to text; non-strings render empty,
// matching the tolerant argument handling of the rest of the helpers.
func str(v any) string {
	s, _ := v.(string)
	return s
}

func strOr(v any, def string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return def
}

// num coerces a template argument to a non-negative count. Integral
// floats are accepted because JSON-merged context values arrive as
// float64.
func num(v any, def uint64) uint64 {
	switch n := v.(type) {
	case int:
		if n >= 0 {
			return uint64(n)
		}
	case int64:
		if n >= 0 {
			return uint64(n)
		}
	case uint64:
		return n
	case uint:
		return uint64(n)
	case float64:
		if n >= 0 && n == math.Trunc(n) {
			return uint64(n)
		}
	}
	return def
}
