package preprocess

import "strings"

// Segment is a named, reusable styled prompt fragment. Content is
// required; Bg and Fg may be hex literals or theme color names. Sep and
// LeftCap name powerline shapes (sharp, pill, slant, flame, none); an
// empty Sep means sharp, an empty LeftCap means no cap.
type Segment struct {
	Bg        string
	Fg        string
	Content   string
	Sep       string
	SepFg     string
	LeftCap   string
	LeftCapFg string
}

// Right-pointing separator glyphs and their left-pointing cap
// counterparts, by shape name.
var (
	sepGlyphs = map[string]string{
		"sharp": "",
		"pill":  "",
		"slant": "",
		"flame": "",
		"none":  "",
	}
	capGlyphs = map[string]string{
		"sharp": "",
		"pill":  "",
		"slant": "",
		"flame": "",
		"none":  "",
	}
)

func sepGlyph(shape string) string {
	if shape == "" {
		shape = "sharp"
	}
	return sepGlyphs[shape]
}

func capGlyph(shape string) string {
	return capGlyphs[shape]
}

// markup renders the segment as style-tag markup for the style phase to
// resolve: optional left cap colored with the segment background, the
// content padded with one space each side inside bg/fg wraps, then an
// optional right separator colored the same way.
func (s Segment) markup() string {
	var sb strings.Builder

	if leftCap := capGlyph(s.LeftCap); leftCap != "" {
		sb.WriteString(coloredGlyph(leftCap, firstNonEmpty(s.LeftCapFg, s.Bg)))
	}

	body := " " + s.Content + " "
	if s.Fg != "" {
		body = "(fg " + s.Fg + ")" + body + "(/fg)"
	}
	if s.Bg != "" {
		body = "(bg " + s.Bg + ")" + body + "(/bg)"
	}
	sb.WriteString(body)

	if sep := sepGlyph(s.Sep); sep != "" {
		sb.WriteString(coloredGlyph(sep, firstNonEmpty(s.SepFg, s.Bg)))
	}

	return sb.String()
}

func coloredGlyph(glyph, color string) string {
	if color == "" {
		return glyph
	}
	return "(fg " + color + ")" + glyph + "(/fg)"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// NormalizeContent collapses multi-line segment content into one line:
// each line is trimmed, empties drop, and the remainder joins without a
// separator. Single-line content is kept verbatim, trailing spaces
// included, so padding deliberately written in a theme survives.
func NormalizeContent(content string) string {
	if !strings.Contains(content, "\n") {
		return content
	}
	var parts []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, "")
}
