package render

import "strings"

// Zsh wraps every SGR escape run in %{...%} so the line editor does not
// count the escape bytes when sizing the edit region. Miscounted widths
// show up as cursor drift and garbled history recall.
type Zsh struct{}

// Format rewrites output with each ESC...m sequence wrapped. An escape
// still open at the end of the text is dropped: emitting a bare,
// unbalanced %{ would corrupt the edit region worse than losing a
// truncated escape does.
func (Zsh) Format(output string) string {
	var result strings.Builder
	var escape strings.Builder
	inEscape := false

	for _, r := range output {
		switch {
		case r == '\x1b':
			inEscape = true
			escape.Reset()
			escape.WriteRune(r)
		case inEscape:
			escape.WriteRune(r)
			if r == 'm' {
				result.WriteString("%{")
				result.WriteString(escape.String())
				result.WriteString("%}")
				inEscape = false
			}
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}
