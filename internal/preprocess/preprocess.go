// Package preprocess converts the author-facing prompt markup into the
// expression-template syntax the evaluator consumes. It runs four ordered
// phases per template: segment block extraction, segment reference
// expansion, @symbol resolution, and balanced style-tag resolution to SGR
// escape codes. The ordering lets earlier phases emit raw style-tag
// syntax that the final phase resolves, which is how a segment defined
// once renders with consistent styling across templates.
package preprocess

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mikemackintosh/zush/internal/symbols"
)

var (
	// ErrUnterminatedSegment reports a {{#segment}} block with no
	// matching {{/segment}}.
	ErrUnterminatedSegment = errors.New("unterminated segment block")
	// ErrUndefinedSegment reports a reference to a segment that is
	// neither defined inline nor supplied by the theme.
	ErrUndefinedSegment = errors.New("undefined segment")
	// ErrUndefinedSymbol reports an @name with no theme or built-in
	// glyph.
	ErrUndefinedSymbol = errors.New("unknown symbol")
	// ErrUndefinedColor reports a color name missing from the theme
	// color table.
	ErrUndefinedColor = errors.New("unknown color")
	// ErrUnclosedTags reports style tags still open at end of template.
	ErrUnclosedTags = errors.New("unclosed style tags")
)

const (
	segmentOpenToken  = "{{#segment"
	segmentCloseToken = "{{/segment}}"
)

// Preprocessor holds the lookup tables the phases resolve against.
// Symbol lookup is layered: the theme table shadows the built-in glyph
// registry. Segment lookup is layered the same way: inline definitions
// shadow theme-supplied ones.
type Preprocessor struct {
	colors        map[string]string
	symbols       map[string]string
	themeSegments map[string]Segment
	inlineSegs    map[string]Segment
}

// New returns a preprocessor resolving against the given theme color and
// symbol tables. Nil maps are treated as empty.
func New(colors, symbolTable map[string]string) *Preprocessor {
	if colors == nil {
		colors = map[string]string{}
	}
	if symbolTable == nil {
		symbolTable = map[string]string{}
	}
	return &Preprocessor{
		colors:        colors,
		symbols:       symbolTable,
		themeSegments: map[string]Segment{},
		inlineSegs:    map[string]Segment{},
	}
}

// AddSegments merges theme-supplied segment definitions into the live
// table. Inline definitions extracted later still win on name collision.
func (p *Preprocessor) AddSegments(defs map[string]Segment) {
	for name, def := range defs {
		p.themeSegments[name] = def
	}
}

// Process runs the four phases over one template.
func (p *Preprocessor) Process(template string) (string, error) {
	out, err := p.extractSegments(template)
	if err != nil {
		return "", err
	}
	out, err = p.expandSegments(out)
	if err != nil {
		return "", err
	}
	out, err = p.resolveSymbols(out)
	if err != nil {
		return "", err
	}
	return p.resolveStyles(out)
}

// extractSegments removes {{#segment name attr=val ...}}...{{/segment}}
// blocks from the text and merges their definitions into the inline
// table. A depth counter keeps a definition containing another
// definition token sequence from closing early.
func (p *Preprocessor) extractSegments(template string) (string, error) {
	var sb strings.Builder
	rest := template
	for {
		start := strings.Index(rest, segmentOpenToken)
		if start < 0 {
			sb.WriteString(rest)
			return sb.String(), nil
		}
		if !whitespaceFollows(rest, start+len(segmentOpenToken)) {
			// Not a block opener, e.g. {{#segmentfoo}}. Pass through.
			sb.WriteString(rest[:start+2])
			rest = rest[start+2:]
			continue
		}
		sb.WriteString(rest[:start])

		block := rest[start:]
		name, def, bodyStart, err := parseSegmentHeader(block)
		if err != nil {
			return "", err
		}

		bodyEnd, blockEnd, ok := findSegmentClose(block, bodyStart)
		if !ok {
			return "", fmt.Errorf("%w %q: missing %s", ErrUnterminatedSegment, name, segmentCloseToken)
		}

		def.Content = NormalizeContent(block[bodyStart:bodyEnd])
		p.inlineSegs[name] = def
		rest = block[blockEnd:]
	}
}

// parseSegmentHeader parses "{{#segment name key=value ...}}" at the
// start of block, returning the name, the definition so far, and the
// offset just past the header.
func parseSegmentHeader(block string) (string, Segment, int, error) {
	i := len(segmentOpenToken)
	end := strings.Index(block, "}}")
	if end < 0 {
		return "", Segment{}, 0, fmt.Errorf("%w: missing }} after %s", ErrUnterminatedSegment, segmentOpenToken)
	}
	header := block[i:end]

	fields := splitHeaderFields(header)
	if len(fields) == 0 {
		return "", Segment{}, 0, fmt.Errorf("%w: %s block is missing a name", ErrUnterminatedSegment, segmentOpenToken)
	}

	name := fields[0]
	var def Segment
	for _, field := range fields[1:] {
		key, value, found := strings.Cut(field, "=")
		if !found {
			continue
		}
		value = strings.Trim(value, `"`)
		switch key {
		case "bg":
			def.Bg = value
		case "fg":
			def.Fg = value
		case "sep":
			def.Sep = value
		case "sep_fg":
			def.SepFg = value
		case "left_cap":
			def.LeftCap = value
		case "left_cap_fg":
			def.LeftCapFg = value
		}
	}
	return name, def, end + 2, nil
}

// splitHeaderFields splits on whitespace but keeps quoted values, so
// attributes like content colors with spaces survive.
func splitHeaderFields(header string) []string {
	var fields []string
	var cur strings.Builder
	inQuote := false
	for _, r := range header {
		switch {
		case r == '"':
			inQuote = !inQuote
			cur.WriteRune(r)
		case !inQuote && (r == ' ' || r == '\t' || r == '\n'):
			if cur.Len() > 0 {
				fields = append(fields, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		fields = append(fields, cur.String())
	}
	return fields
}

// findSegmentClose locates the {{/segment}} matching the block opened at
// offset zero, counting nested openers. It returns the body end offset
// and the offset just past the closer.
func findSegmentClose(block string, bodyStart int) (bodyEnd, blockEnd int, ok bool) {
	depth := 1
	i := bodyStart
	for i < len(block) {
		next := strings.Index(block[i:], "{{")
		if next < 0 {
			return 0, 0, false
		}
		i += next
		switch {
		case strings.HasPrefix(block[i:], segmentCloseToken):
			depth--
			if depth == 0 {
				return i, i + len(segmentCloseToken), true
			}
			i += len(segmentCloseToken)
		case strings.HasPrefix(block[i:], segmentOpenToken) && whitespaceFollows(block, i+len(segmentOpenToken)):
			depth++
			i += len(segmentOpenToken)
		default:
			i += 2
		}
	}
	return 0, 0, false
}

func whitespaceFollows(s string, i int) bool {
	return i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n')
}

// expandSegments replaces {{segment:name}} references with the named
// definition's markup. Inline definitions win over theme-supplied ones.
func (p *Preprocessor) expandSegments(template string) (string, error) {
	var sb strings.Builder
	runes := []rune(template)
	for i := 0; i < len(runes); {
		if !hasPrefixAt(runes, i, "{{") {
			sb.WriteRune(runes[i])
			i++
			continue
		}
		if name, end, ok := parseSegmentRef(runes, i); ok {
			def, found := p.lookupSegment(name)
			if !found {
				return "", fmt.Errorf(
					"%w %q: define it inline with {{#segment %s ...}}...{{/segment}} or in the theme's [segments] table",
					ErrUndefinedSegment, name, name)
			}
			sb.WriteString(def.markup())
			i = end
			continue
		}
		// Some other expression span: copy it verbatim.
		end := spanEnd(runes, i)
		sb.WriteString(string(runes[i:end]))
		i = end
	}
	return sb.String(), nil
}

func (p *Preprocessor) lookupSegment(name string) (Segment, bool) {
	if def, ok := p.inlineSegs[name]; ok {
		return def, true
	}
	def, ok := p.themeSegments[name]
	return def, ok
}

// parseSegmentRef parses "{{segment:name}}" (spaces around the inner
// token allowed) starting at i. It reports the name and the offset just
// past the closing braces.
func parseSegmentRef(runes []rune, i int) (string, int, bool) {
	j := i + 2
	for j < len(runes) && runes[j] == ' ' {
		j++
	}
	if !hasPrefixAt(runes, j, "segment:") {
		return "", 0, false
	}
	j += len("segment:")
	start := j
	for j < len(runes) && isNameRune(runes[j]) {
		j++
	}
	if j == start {
		return "", 0, false
	}
	name := string(runes[start:j])
	for j < len(runes) && runes[j] == ' ' {
		j++
	}
	if !hasPrefixAt(runes, j, "}}") {
		return "", 0, false
	}
	return name, j + 2, true
}

// resolveSymbols replaces @name tokens with glyphs, consulting the theme
// table before the built-in registry. Expression spans between {{ and }}
// pass through untouched.
func (p *Preprocessor) resolveSymbols(template string) (string, error) {
	var sb strings.Builder
	runes := []rune(template)
	for i := 0; i < len(runes); {
		if hasPrefixAt(runes, i, "{{") {
			end := spanEnd(runes, i)
			sb.WriteString(string(runes[i:end]))
			i = end
			continue
		}
		if runes[i] == '@' && i+1 < len(runes) && isNameStart(runes[i+1]) {
			j := i + 1
			for j < len(runes) && isNameRune(runes[j]) {
				j++
			}
			name := string(runes[i+1 : j])
			glyph, ok := p.lookupSymbol(name)
			if !ok {
				return "", fmt.Errorf("%w: @%s", ErrUndefinedSymbol, name)
			}
			sb.WriteString(glyph)
			i = j
			continue
		}
		sb.WriteRune(runes[i])
		i++
	}
	return sb.String(), nil
}

func (p *Preprocessor) lookupSymbol(name string) (string, bool) {
	if glyph, ok := p.symbols[name]; ok {
		return glyph, true
	}
	return symbols.Builtin(name)
}

// spanEnd returns the offset just past the }} closing the span opened at
// i. An unterminated span extends to the end of the text.
func spanEnd(runes []rune, i int) int {
	for j := i + 2; j+1 < len(runes); j++ {
		if runes[j] == '}' && runes[j+1] == '}' {
			return j + 2
		}
	}
	return len(runes)
}

func hasPrefixAt(runes []rune, i int, prefix string) bool {
	for _, r := range prefix {
		if i >= len(runes) || runes[i] != r {
			return false
		}
		i++
	}
	return true
}

func isNameStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isNameRune(r rune) bool {
	return isNameStart(r) || (r >= '0' && r <= '9')
}
