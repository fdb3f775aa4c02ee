package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEscapes_DecodesSequences_When_InputIsWellFormed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text untouched", input: "no escapes here", want: "no escapes here"},
		{name: "bmp glyph", input: ``, want: ""},
		{name: "uppercase hex", input: ``, want: ""},
		{name: "embedded in text", input: `arrow ❯ end`, want: "arrow ❯ end"},
		{name: "surrogate pair", input: `🐍`, want: "🐍"},
		{name: "pair between text", input: `a🐳b`, want: "a🐳b"},
		{name: "back to back", input: ``, want: ""},
		{name: "already decoded glyph untouched", input: "❯", want: "❯"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, DecodeEscapes(tc.input))
		})
	}
}

func TestDecodeEscapes_KeepsInputVerbatim_When_EscapeIsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "truncated at end", input: `\ue0`, want: `\ue0`},
		{name: "bare marker", input: `\u`, want: `\u`},
		{name: "non-hex digit", input: `\uzzzz`, want: `\uzzzz`},
		{name: "non-hex mid sequence", input: `\ue0g0`, want: `\ue0g0`},
		{name: "unpaired high surrogate", input: `\ud83d next`, want: `\ud83d next`},
		{name: "unpaired low surrogate", input: `\udc0d`, want: `\udc0d`},
		{name: "high then non-surrogate escape", input: `\ud83dA`, want: `\ud83dA`},
		{name: "high at end of input", input: `tail \ud83d`, want: `tail \ud83d`},
		{name: "lone backslash", input: `a\b`, want: `a\b`},
		{name: "backslash at end", input: `a\`, want: `a\`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, DecodeEscapes(tc.input))
		})
	}
}
