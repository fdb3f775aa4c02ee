package config

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

// DecodeEscapes replaces \uXXXX sequences in s with the characters they
// name. A high surrogate escape immediately followed by a low surrogate
// escape combines into one supplementary-plane glyph, so themes can spell
// emoji as "🐍". Escapes that do not decode cleanly (truncated,
// non-hex digits, unpaired surrogates) stay in the output verbatim.
//
// TOML basic strings decode \uXXXX at parse time already; this handles
// values written as literal strings, where the backslash survives parsing.
func DecodeEscapes(s string) string {
	if !strings.Contains(s, `\u`) {
		return s
	}

	runes := []rune(s)
	var sb strings.Builder
	sb.Grow(len(s))

	i := 0
	for i < len(runes) {
		if runes[i] != '\\' || i+1 >= len(runes) || runes[i+1] != 'u' {
			sb.WriteRune(runes[i])
			i++
			continue
		}

		code, next, ok := hexQuad(runes, i+2)
		if !ok {
			sb.WriteString(string(runes[i:next]))
			i = next
			continue
		}

		switch {
		case code >= 0xD800 && code <= 0xDBFF:
			// High surrogate: it only means something when the low half
			// follows directly.
			if next+1 < len(runes) && runes[next] == '\\' && runes[next+1] == 'u' {
				low, after, lowOK := hexQuad(runes, next+2)
				if lowOK && low >= 0xDC00 && low <= 0xDFFF {
					sb.WriteRune(utf16.DecodeRune(rune(code), rune(low)))
					i = after
					continue
				}
			}
			sb.WriteString(string(runes[i:next]))
			i = next
		case code >= 0xDC00 && code <= 0xDFFF:
			// Low surrogate with no preceding high half.
			sb.WriteString(string(runes[i:next]))
			i = next
		default:
			sb.WriteRune(rune(code))
			i = next
		}
	}

	return sb.String()
}

// hexQuad reads four hex digits starting at start and reports the decoded
// value plus the index just past the consumed input. When the sequence is
// cut short, the consumed span includes the character that broke it, and
// ok is false.
func hexQuad(runes []rune, start int) (value uint32, next int, ok bool) {
	j := start
	for j < len(runes) && j < start+4 && isHexDigit(runes[j]) {
		j++
	}
	if j-start == 4 {
		v, _ := strconv.ParseUint(string(runes[start:j]), 16, 32)
		return uint32(v), j, true
	}
	if j < len(runes) {
		j++
	}
	return 0, j, false
}

func isHexDigit(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
}
