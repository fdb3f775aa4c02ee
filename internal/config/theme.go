package config

import "os"

// Themes are resolved from three sources with explicit priority, highest
// first:
//
//  1. The --theme command-line flag.
//  2. The ZUSH_THEME environment variable.
//  3. The theme key in the main config file.
//
// The first source that names a theme wins outright. If the named theme
// then fails to load, resolution does not fall through to a lower-priority
// source; the prompt renders with defaults instead.

// ThemeSource identifies which source supplied the resolved theme.
type ThemeSource string

const (
	ThemeFromFlag   ThemeSource = "flag"
	ThemeFromEnv    ThemeSource = "env"
	ThemeFromConfig ThemeSource = "config"
	ThemeFromNone   ThemeSource = "none"
)

// ResolveTheme picks the theme name per the priority order and loads its
// file. ok is false when no source names a theme or the named file cannot
// be read.
func ResolveTheme(flagTheme string, cfg *Source) (text string, origin ThemeSource, ok bool) {
	name, origin := themeName(flagTheme, cfg)
	if origin == ThemeFromNone {
		return "", ThemeFromNone, false
	}
	text, err := LoadTheme(name)
	if err != nil {
		return "", ThemeFromNone, false
	}
	return text, origin, true
}

// themeName returns the highest-priority theme name on offer. A set but
// empty ZUSH_THEME still claims the env slot, matching how the shell treats
// exported empty variables as present.
func themeName(flagTheme string, cfg *Source) (string, ThemeSource) {
	if flagTheme != "" {
		return flagTheme, ThemeFromFlag
	}
	if env, set := os.LookupEnv("ZUSH_THEME"); set {
		return env, ThemeFromEnv
	}
	if name := cfg.ThemeName(); name != "" {
		return name, ThemeFromConfig
	}
	return "", ThemeFromNone
}
