package config

import "github.com/mikemackintosh/zush/pkg/color"

// DefaultColors returns the built-in tokyo-night palette, used whenever no
// theme or config supplies a [colors] table.
func DefaultColors() map[string]string {
	p := color.TokyoNight
	return map[string]string{
		"bg":      p.BG.Hex(),
		"fg":      p.FG.Hex(),
		"fg_dark": p.FGDark.Hex(),
		"fg_dim":  p.FGDim.Hex(),
		"black":   p.Black.Hex(),
		"red":     p.Red.Hex(),
		"green":   p.Green.Hex(),
		"yellow":  p.Yellow.Hex(),
		"blue":    p.Blue.Hex(),
		"magenta": p.Magenta.Hex(),
		"cyan":    p.Cyan.Hex(),
		"white":   p.White.Hex(),
		"orange":  p.Orange.Hex(),
		"purple":  p.Purple.Hex(),
		"teal":    p.Teal.Hex(),
	}
}

// DefaultSymbols returns the built-in glyph set. Powerline and nerd-font
// glyphs sit in the private use area; the rest are plain Unicode.
func DefaultSymbols() map[string]string {
	return map[string]string{
		"prompt_arrow":           "❯",
		"segment_separator":      "",
		"segment_separator_thin": "",
		"git_branch":             "",
		"git_dirty":              "✗",
		"git_clean":              "✓",
		"ssh":                    "",
		"root":                   "",
		"jobs":                   "",
		"error":                  "✖",
		"success":                "✓",
		"folder":                 "",
		"home":                   "",
		"python":                 "🐍",
		"node":                   "",
		"rust":                   "🦀",
		"docker":                 "🐳",
		"k8s":                    "☸",
		"aws":                    "☁",
	}
}

// DefaultTemplates returns the built-in prompt templates registered when a
// theme fails to load or none is configured.
func DefaultTemplates() map[string]string {
	return map[string]string{
		"main":      "(fg #9ece6a)✓(/fg) (bold)(fg #7aa2f7){{.user}}(/fg)(/bold) (fg #c0caf5)in(/fg) (fg #bb9af7){{.pwd_short}}(/fg)\n(fg #7aa2f7)❯(/fg) ",
		"left":      "",
		"right":     "",
		"transient": "(dim){{.time}}(/dim)\n(fg #7aa2f7)❯(/fg) ",
	}
}

// DefaultConfigTOML is the starter configuration printed by `zush config`.
// It must always parse back through this package and register cleanly.
const DefaultConfigTOML = `# zush configuration
#
# Copy to ~/.config/zush/config.toml and edit. A theme file in
# ~/.config/zush/themes/<name>.toml takes over these tables entirely when
# one is selected; use [overrides] to patch individual values on top of a
# theme.

# theme = "tokyonight"

[colors]
bg = "#1a1b26"
fg = "#c0caf5"
fg_dark = "#a9b1d6"
fg_dim = "#565f89"
black = "#15161e"
red = "#f7768e"
green = "#9ece6a"
yellow = "#e0af68"
blue = "#7aa2f7"
magenta = "#bb9af7"
cyan = "#7dcfff"
white = "#c0caf5"
orange = "#ff9e64"
purple = "#9d7cd8"
teal = "#1abc9c"

[symbols]
# Single-quoted values keep \uXXXX escapes for zush to decode; powerline
# and nerd-font glyphs need a patched terminal font.
prompt_arrow = "❯"
segment_separator = ''
segment_separator_thin = ''
git_branch = ''
git_dirty = "✗"
git_clean = "✓"
ssh = ''
root = ''
jobs = ''
error = "✖"
success = "✓"
folder = ''
home = ''
python = "🐍"
node = ''
rust = "🦀"
docker = "🐳"
k8s = "☸"
aws = "☁"

# Reusable styled fragments, referenced from templates as {{segment:dir}}.
[segments.dir]
bg = "blue"
fg = "bg"
content = "@folder {{.pwd_short}}"
sep = "sharp"

[templates]
main = """
(fg green)✓(/fg) (bold)(fg blue){{.user}}(/fg)(/bold) (fg fg)in(/fg) (fg magenta){{.pwd_short}}(/fg)
(fg blue)@prompt_arrow(/fg) """
left = ""
right = "(dim){{.time}}(/dim)"
transient = """
(dim){{.time}}(/dim)
(fg blue)@prompt_arrow(/fg) """

# [overrides]
# "colors.blue" = "#89b4fa"
# "symbols.prompt_arrow" = "➜"
`
