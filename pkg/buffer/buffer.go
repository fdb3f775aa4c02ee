// Package buffer implements a fixed-size grid of terminal cells with
// Unicode-width-aware writes. Text is written by grapheme cluster so
// combining sequences and emoji are never split; double-width glyphs
// occupy two cells with a continuation sentinel in the trailing one.
// Buffer operations never fail: out-of-range writes are ignored and
// overlong text truncates at the right edge, because a broken prompt
// must never crash the shell.
package buffer

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/term"
)

// continuation marks the trailing cell of a double-width glyph. Rendering
// skips it so the glyph is emitted once but accounts for two columns.
const continuation = '\x00'

const ansiReset = "\x1b[0m"

// Position addresses a cell, zero-based.
type Position struct {
	Row, Col int
}

// Alignment selects the column placement for WriteAligned.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Buffer is a width × height grid of (rune, style) cells.
type Buffer struct {
	width   int
	height  int
	content [][]rune
	styles  [][]string
}

// New returns a blank buffer with the given dimensions.
func New(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{width: width, height: height}
	b.content = make([][]rune, height)
	b.styles = make([][]string, height)
	for row := range b.content {
		b.content[row] = blankRow(width)
		b.styles[row] = make([]string, width)
	}
	return b
}

// FromTerminal sizes a buffer from the controlling terminal, falling back
// to 80x24 when the size cannot be read.
func FromTerminal() *Buffer {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width, height = 80, 24
	}
	if height <= 0 {
		height = 24
	}
	return New(width, height)
}

func blankRow(width int) []rune {
	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	return row
}

// Width reports the buffer width in columns.
func (b *Buffer) Width() int { return b.width }

// Height reports the buffer height in rows.
func (b *Buffer) Height() int { return b.height }

// WriteAt writes text starting at pos. Writing stops at the right edge
// and a starting position outside the grid is silently ignored. Every
// written cell, including continuation cells, carries style.
func (b *Buffer) WriteAt(pos Position, text, style string) {
	if pos.Row < 0 || pos.Row >= b.height || pos.Col < 0 || pos.Col >= b.width {
		return
	}
	col := pos.Col
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if w == 0 {
			continue
		}
		if col+w > b.width {
			break
		}
		b.content[pos.Row][col] = g.Runes()[0]
		b.styles[pos.Row][col] = style
		col++
		for i := 1; i < w; i++ {
			b.content[pos.Row][col] = continuation
			b.styles[pos.Row][col] = style
			col++
		}
	}
}

// WriteAligned writes text on row with the given alignment. The column
// offset comes from display width, never byte or rune count.
func (b *Buffer) WriteAligned(row int, text string, align Alignment, style string) {
	tw := runewidth.StringWidth(text)
	col := 0
	switch align {
	case AlignCenter:
		if tw < b.width {
			col = (b.width - tw) / 2
		}
	case AlignRight:
		if tw < b.width {
			col = b.width - tw
		}
	}
	b.WriteAt(Position{Row: row, Col: col}, text, style)
}

// WriteThreeSections lays out three texts on one row: left pinned to
// column 0, center near the middle but starting at least one column past
// the end of left, right at the right edge but starting at least one
// column past the end of center (or of left when there is no center).
// Sections pushed past the right edge truncate rather than wrap, so the
// three column ranges never overlap.
func (b *Buffer) WriteThreeSections(row int, left, center, right, leftStyle, centerStyle, rightStyle string) {
	lw := runewidth.StringWidth(left)
	cw := runewidth.StringWidth(center)
	rw := runewidth.StringWidth(right)

	if left != "" {
		b.WriteAt(Position{Row: row, Col: 0}, left, leftStyle)
	}

	centerPos := 0
	if center != "" {
		centerPos = (b.width - cw) / 2
		if centerPos < lw+1 {
			centerPos = lw + 1
		}
		b.WriteAt(Position{Row: row, Col: centerPos}, center, centerStyle)
	}

	if right != "" {
		rightPos := b.width - rw
		if center != "" {
			if after := centerPos + cw + 1; rightPos < after {
				rightPos = after
			}
		}
		if rightPos < lw+1 {
			rightPos = lw + 1
		}
		b.WriteAt(Position{Row: row, Col: rightPos}, right, rightStyle)
	}
}

// ClearLine blanks one row.
func (b *Buffer) ClearLine(row int) {
	if row < 0 || row >= b.height {
		return
	}
	b.content[row] = blankRow(b.width)
	b.styles[row] = make([]string, b.width)
}

// Clear blanks the whole grid.
func (b *Buffer) Clear() {
	for row := 0; row < b.height; row++ {
		b.ClearLine(row)
	}
}

// Render emits the full grid. An SGR sequence is reopened only when the
// active style differs from the previous cell's, and every non-empty
// style run is closed with a reset.
func (b *Buffer) Render() string {
	var sb strings.Builder
	for row := 0; row < b.height; row++ {
		b.renderRow(&sb, row, b.width-1)
		if row < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// RenderLine emits one row with trailing blank columns trimmed.
func (b *Buffer) RenderLine(row int) string {
	if row < 0 || row >= b.height {
		return ""
	}
	last := 0
	for col := b.width - 1; col >= 0; col-- {
		if b.content[row][col] != ' ' {
			last = col
			break
		}
	}
	var sb strings.Builder
	b.renderRow(&sb, row, last)
	return sb.String()
}

func (b *Buffer) renderRow(sb *strings.Builder, row, lastCol int) {
	lastStyle := ""
	for col := 0; col <= lastCol && col < b.width; col++ {
		ch := b.content[row][col]
		if ch == continuation {
			continue
		}
		if b.styles[row][col] != lastStyle {
			if lastStyle != "" {
				sb.WriteString(ansiReset)
			}
			sb.WriteString(b.styles[row][col])
			lastStyle = b.styles[row][col]
		}
		sb.WriteRune(ch)
	}
	if lastStyle != "" {
		sb.WriteString(ansiReset)
	}
}

// Flush writes the rendered buffer to w, skipping blank rows other than
// the first.
func (b *Buffer) Flush(w io.Writer) error {
	for row := 0; row < b.height; row++ {
		line := b.RenderLine(row)
		if line == "" && row != 0 {
			continue
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
		if row < b.height-1 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// VisibleWidth counts display columns, skipping SGR escapes: any ESC
// starts a skip that ends at the next 'm'. It must agree with the widths
// the write operations use so layout computed from rendered output stays
// consistent with the grid's own accounting.
func VisibleWidth(text string) int {
	width := 0
	inEscape := false
	for _, r := range text {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			width += runewidth.RuneWidth(r)
		}
	}
	return width
}

// StripANSI removes SGR escapes using the same skip logic as
// VisibleWidth.
func StripANSI(text string) string {
	var sb strings.Builder
	inEscape := false
	for _, r := range text {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
