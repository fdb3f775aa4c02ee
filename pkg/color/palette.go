package color

// Palette groups the named colors of a terminal color scheme.
type Palette struct {
	BG, FG, FGDark, FGDim Color

	Black, Red, Green, Yellow  Color
	Blue, Magenta, Cyan, White Color
	Orange, Purple, Teal       Color
	BrightBlack, BrightRed     Color
	BrightGreen, BrightYellow  Color
	BrightBlue, BrightMagenta  Color
	BrightCyan, BrightWhite    Color
}

// TokyoNight is the default color scheme.
var TokyoNight = Palette{
	BG:     Color{R: 0x1a, G: 0x1b, B: 0x26},
	FG:     Color{R: 0xc0, G: 0xca, B: 0xf5},
	FGDark: Color{R: 0xa9, G: 0xb1, B: 0xd6},
	FGDim:  Color{R: 0x56, G: 0x5f, B: 0x89},

	Black:   Color{R: 0x15, G: 0x16, B: 0x1e},
	Red:     Color{R: 0xf7, G: 0x76, B: 0x8e},
	Green:   Color{R: 0x9e, G: 0xce, B: 0x6a},
	Yellow:  Color{R: 0xe0, G: 0xaf, B: 0x68},
	Blue:    Color{R: 0x7a, G: 0xa2, B: 0xf7},
	Magenta: Color{R: 0xbb, G: 0x9a, B: 0xf7},
	Cyan:    Color{R: 0x7d, G: 0xcf, B: 0xff},
	White:   Color{R: 0xc0, G: 0xca, B: 0xf5},

	Orange: Color{R: 0xff, G: 0x9e, B: 0x64},
	Purple: Color{R: 0x9d, G: 0x7c, B: 0xd8},
	Teal:   Color{R: 0x1a, G: 0xbc, B: 0x9c},

	BrightBlack:   Color{R: 0x41, G: 0x4a, B: 0x68},
	BrightRed:     Color{R: 0xf7, G: 0x76, B: 0x8e},
	BrightGreen:   Color{R: 0x9e, G: 0xce, B: 0x6a},
	BrightYellow:  Color{R: 0xe0, G: 0xaf, B: 0x68},
	BrightBlue:    Color{R: 0x7a, G: 0xa2, B: 0xf7},
	BrightMagenta: Color{R: 0xbb, G: 0x9a, B: 0xf7},
	BrightCyan:    Color{R: 0x7d, G: 0xcf, B: 0xff},
	BrightWhite:   Color{R: 0xd5, G: 0xd6, B: 0xdb},
}
