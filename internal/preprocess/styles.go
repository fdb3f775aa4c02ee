package preprocess

import (
	"fmt"
	"strings"

	"github.com/mikemackintosh/zush/pkg/color"
)

// tagKind enumerates the closed style-tag vocabulary.
type tagKind int

const (
	tagBold tagKind = iota
	tagDim
	tagItalic
	tagUnderline
	tagFg
	tagBg
)

// styleTag is one parsed tag occurrence, alive only during the scan.
type styleTag struct {
	kind    tagKind
	name    string // as the author wrote it, for error reporting
	args    string
	closing bool
}

const (
	codeBold      = "\x1b[1m"
	codeDim       = "\x1b[2m"
	codeItalic    = "\x1b[3m"
	codeUnderline = "\x1b[4m"

	resetBoldDim   = "\x1b[22m" // bold and dim share one reset
	resetItalic    = "\x1b[23m"
	resetUnderline = "\x1b[24m"
	resetFg        = "\x1b[39m"
	resetBg        = "\x1b[49m"
)

// maxColorHops bounds recursive color-name resolution so a theme with a
// name cycle cannot loop the scanner forever.
const maxColorHops = 8

func kindOf(name string) (tagKind, bool) {
	switch name {
	case "bold", "b":
		return tagBold, true
	case "dim", "d":
		return tagDim, true
	case "italic", "i":
		return tagItalic, true
	case "underline", "u":
		return tagUnderline, true
	case "fg":
		return tagFg, true
	case "bg":
		return tagBg, true
	}
	return 0, false
}

// resolveStyles is the final phase: balanced (name)/(name args)/(/name)
// tags become SGR codes. An unmatched closing tag still emits its reset
// code, because a tag may legitimately close inside only one branch of a
// template conditional. Tags left open at end of template are a hard
// error naming every unclosed tag.
func (p *Preprocessor) resolveStyles(template string) (string, error) {
	var sb strings.Builder
	runes := []rune(template)
	var stack []styleTag

	for i := 0; i < len(runes); {
		if hasPrefixAt(runes, i, "{{") {
			end := spanEnd(runes, i)
			sb.WriteString(string(runes[i:end]))
			i = end
			continue
		}
		if runes[i] != '(' {
			sb.WriteRune(runes[i])
			i++
			continue
		}

		tag, end, ok := parseStyleTag(runes, i)
		if !ok {
			// Not a style tag; it may still be a symbol-by-name tag
			// like (rocket).
			if name, glyphEnd, isGlyph := parseGlyphTag(runes, i); isGlyph {
				if glyph, found := p.lookupSymbol(name); found {
					sb.WriteString(glyph)
					i = glyphEnd
					continue
				}
			}
			sb.WriteRune(runes[i])
			i++
			continue
		}

		switch {
		case tag.closing:
			if idx := lastIndexOfKind(stack, tag.kind); idx >= 0 {
				stack = append(stack[:idx], stack[idx+1:]...)
			}
			sb.WriteString(closingCode(tag.kind))
		default:
			code, err := p.openingCode(tag)
			if err != nil {
				return "", err
			}
			sb.WriteString(code)
			stack = append(stack, tag)
		}
		i = end
	}

	if len(stack) > 0 {
		names := make([]string, len(stack))
		for i, tag := range stack {
			names[i] = tag.name
		}
		return "", fmt.Errorf("%w: %s", ErrUnclosedTags, strings.Join(names, ", "))
	}
	return sb.String(), nil
}

// parseStyleTag parses a tag at runes[i], which must be '('. It reports
// the tag and the offset just past the closing paren, or ok=false when
// the parenthesized text is not a recognized tag and must pass through
// as literal text.
func parseStyleTag(runes []rune, i int) (styleTag, int, bool) {
	j := i + 1

	closing := false
	if j < len(runes) && runes[j] == '/' {
		closing = true
		j++
	}

	start := j
	for j < len(runes) && isLetter(runes[j]) {
		j++
	}
	name := string(runes[start:j])
	kind, known := kindOf(name)
	if !known {
		return styleTag{}, 0, false
	}

	for j < len(runes) && (runes[j] == ' ' || runes[j] == '\t') {
		j++
	}

	var args strings.Builder
	if !closing {
		for j < len(runes) && runes[j] != ')' {
			args.WriteRune(runes[j])
			j++
		}
	}
	if j >= len(runes) || runes[j] != ')' {
		return styleTag{}, 0, false
	}

	return styleTag{
		kind:    kind,
		name:    name,
		args:    strings.TrimSpace(args.String()),
		closing: closing,
	}, j + 1, true
}

// parseGlyphTag parses a bare (name) form with no arguments. The caller
// decides whether name resolves to a symbol; an unresolvable name stays
// literal text.
func parseGlyphTag(runes []rune, i int) (string, int, bool) {
	j := i + 1
	start := j
	for j < len(runes) && isNameRune(runes[j]) {
		j++
	}
	if j == start || j >= len(runes) || runes[j] != ')' {
		return "", 0, false
	}
	return string(runes[start:j]), j + 1, true
}

func (p *Preprocessor) openingCode(tag styleTag) (string, error) {
	switch tag.kind {
	case tagBold:
		return codeBold, nil
	case tagDim:
		return codeDim, nil
	case tagItalic:
		return codeItalic, nil
	case tagUnderline:
		return codeUnderline, nil
	case tagFg:
		c, err := p.resolveColor(tag.args, tag.name)
		if err != nil {
			return "", err
		}
		return c.ANSIFg(), nil
	case tagBg:
		c, err := p.resolveColor(tag.args, tag.name)
		if err != nil {
			return "", err
		}
		return c.ANSIBg(), nil
	}
	return "", fmt.Errorf("unknown style tag %q", tag.name)
}

func closingCode(kind tagKind) string {
	switch kind {
	case tagBold, tagDim:
		return resetBoldDim
	case tagItalic:
		return resetItalic
	case tagUnderline:
		return resetUnderline
	case tagFg:
		return resetFg
	case tagBg:
		return resetBg
	}
	return ""
}

// resolveColor resolves a tag's color argument: a hex literal, or a
// theme color name followed through at most maxColorHops levels of
// name-to-name indirection.
func (p *Preprocessor) resolveColor(arg, tagName string) (color.Color, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return color.Color{}, fmt.Errorf("(%s) requires a color argument", tagName)
	}
	if strings.HasPrefix(arg, "#") {
		c, err := color.FromHex(arg)
		if err != nil {
			return color.Color{}, fmt.Errorf("in (%s %s): %w", tagName, arg, err)
		}
		return c, nil
	}

	name := arg
	for hop := 0; hop < maxColorHops; hop++ {
		value, ok := p.colors[name]
		if !ok {
			// A bare hex literal without '#' still counts.
			if c, err := color.FromHex(name); err == nil {
				return c, nil
			}
			return color.Color{}, fmt.Errorf(
				"%w %q in (%s %s): add it to the theme's [colors] table",
				ErrUndefinedColor, name, tagName, arg)
		}
		if c, err := color.FromHex(value); err == nil {
			return c, nil
		}
		name = value
	}
	return color.Color{}, fmt.Errorf(
		"%w: color name %q recurses more than %d hops", ErrUndefinedColor, arg, maxColorHops)
}

func lastIndexOfKind(stack []styleTag, kind tagKind) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].kind == kind {
			return i
		}
	}
	return -1
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
