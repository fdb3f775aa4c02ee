// Package render formats rendered prompt text for its destination.
// The prompt pipeline produces raw ANSI; what a shell needs depends on
// who is reading it, so the final hop is a Formatter chosen by the
// --format flag.
package render

// Formatter converts raw ANSI prompt text into its output form.
type Formatter interface {
	Format(output string) string
}

// ForFormat selects the formatter for a format name. Unknown names get
// the raw passthrough, so a typo degrades to visible output instead of
// no prompt.
func ForFormat(format, templateName string) Formatter {
	switch format {
	case "zsh":
		return Zsh{}
	case "debug":
		return Debug{Template: templateName}
	default:
		return Raw{}
	}
}

// Raw passes ANSI text through untouched.
type Raw struct{}

// Format returns output as-is.
func (Raw) Format(output string) string { return output }
