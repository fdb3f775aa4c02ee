// Package symbols is the built-in glyph registry: powerline separators,
// nerd-font icons, and their short aliases. Themes may shadow any of
// these names; the registry is the lookup of last resort.
package symbols

import (
	"sort"
	"strings"
)

var builtin = map[string]string{
	// Powerline triangles (solid arrows)
	"triangle_right": "",
	"tri_right":      "",
	"arrow_right":    "",
	"triangle_left":  "",
	"tri_left":       "",
	"arrow_left":     "",

	// Inverted triangles
	"inverted_triangle_left":  "",
	"inv_tri_right":           "",
	"inv_arrow_right":         "",
	"inverted_triangle_right": "",
	"inv_tri_left":            "",
	"inv_arrow_left":          "",

	// Powerline pills/rounded
	"pill_left":   "",
	"round_left":  "",
	"pill_right":  "",
	"round_right": "",

	// Flame
	"flame_left":  "",
	"flame_right": "",

	// Trapezoid shapes
	"trapezoid_right": "",
	"trapezoid_left":  "",

	// Powerline angles (thin arrows)
	"angle_right": "",
	"thin_right":  "",
	"angle_left":  "",
	"thin_left":   "",

	// Powerline thin pills/rounded
	"pill_right_thin":  "",
	"round_right_thin": "",
	"pill_left_thin":   "",
	"round_left_thin":  "",

	// Powerline circles (semi-circles)
	"circle_right":     "",
	"semicircle_right": "",
	"circle_left":      "",
	"semicircle_left":  "",

	// Powerline slants/diagonal
	"slant_right":    "",
	"diagonal_right": "",
	"slant_left":     "",
	"diagonal_left":  "",

	// Misc shapes
	"ice_cream":         "\U000f0efd",
	"ice_cream_thick":   "\U000ef888",
	"ice_cream_outline": "\U000f082a",

	// Slash
	"backslash": "",

	// Additional powerline shapes
	"lower_triangle_right": "",
	"lower_triangle_left":  "",
	"upper_triangle_right": "",
	"upper_triangle_left":  "",

	// Git
	"git_branch": "",
	"branch":     "",
	"lock":       "",

	// UI
	"cog":         "",
	"gear":        "",
	"home":        "",
	"folder":      "",
	"folder_open": "",

	// Time & status
	"timer":    "\U000f0109",
	"clock":    "",
	"calendar": "",
	"check":    "",
	"cross":    "",
	"x":        "",
	"info":     "",
	"warning":  "",
	"question": "",

	// Communication
	"mail":     "",
	"envelope": "",
	"phone":    "",

	// Media
	"music":  "",
	"camera": "",

	// Actions
	"search":           "",
	"magnifying_glass": "",
	"trash":            "",
	"trash_can":        "",

	// Power & connectivity
	"battery_full": "",
	"battery_half": "",
	"battery_low":  "",
	"wifi":         "",
	"plug":         "",

	// Weather & nature
	"cloud": "",
	"sun":   "",
	"moon":  "",
	"fire":  "",
	"leaf":  "",
	"paw":   "",

	// Development
	"bug":      "",
	"insect":   "",
	"code":     "",
	"terminal": "",
	"keyboard": "",

	// Hardware
	"laptop":   "",
	"desktop":  "",
	"server":   "",
	"computer": "",

	// Misc
	"heart":     "",
	"star":      "",
	"rocket":    "",
	"shield":    "",
	"lightning": "",
	"zap":       "",

	// Terminal variants (all map to the same glyph)
	"terminal_power": "",
	"terminal_fire":  "",
	"terminal_bolt":  "",
	"terminal_flame": "",
}

// Builtin resolves name against the built-in table. Surrounding
// whitespace is ignored.
func Builtin(name string) (string, bool) {
	glyph, ok := builtin[strings.TrimSpace(name)]
	return glyph, ok
}

// Names returns every built-in symbol name, sorted, for help output.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
