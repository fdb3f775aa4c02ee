// Package config loads zush themes and configuration from TOML.
//
// # Source Files
//
// Two files feed the prompt: the main config at ~/.config/zush/config.toml
// (platform config dir honored as a fallback) and an optional theme file at
// ~/.config/zush/themes/<name>.toml. When a theme is active its tables are
// used instead of the config's; the config's [overrides] table is then
// applied on top for one-off tweaks.
//
// # Theme Selection Precedence
//
// The theme name is resolved in the following order (highest to lowest):
//
//  1. The --theme command-line flag
//  2. The ZUSH_THEME environment variable
//  3. The theme key in config.toml
//
// # Schema
//
//   - [colors]: name to "#rrggbb" hex string
//   - [symbols]: name to glyph; \uXXXX escapes are decoded, and surrogate
//     pairs combine into supplementary-plane characters
//   - [segments.<name>]: content (required), bg, fg, sep, left_cap
//   - [templates]: name to raw template text
//   - [overrides]: dotted "colors.X" / "symbols.Y" keys, config file only
//
// Extraction is deliberately tolerant: mistyped values are skipped rather
// than failing the prompt. Templates are the exception; see
// Source.Templates.
package config
