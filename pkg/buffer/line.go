package buffer

// Line builds a single prompt row from left/center/right sections.
type Line struct {
	left        string
	center      string
	right       string
	leftStyle   string
	centerStyle string
	rightStyle  string
}

// NewLine returns an empty line builder.
func NewLine() *Line {
	return &Line{}
}

// Left sets the left section.
func (l *Line) Left(text, style string) *Line {
	l.left = text
	l.leftStyle = style
	return l
}

// Center sets the center section.
func (l *Line) Center(text, style string) *Line {
	l.center = text
	l.centerStyle = style
	return l
}

// Right sets the right section.
func (l *Line) Right(text, style string) *Line {
	l.right = text
	l.rightStyle = style
	return l
}

// RenderTo writes the sections onto one row of buf.
func (l *Line) RenderTo(buf *Buffer, row int) {
	buf.WriteThreeSections(row, l.left, l.center, l.right, l.leftStyle, l.centerStyle, l.rightStyle)
}

// Render composes the line in a fresh single-row buffer of the given
// width and returns it with trailing blanks trimmed.
func (l *Line) Render(width int) string {
	buf := New(width, 1)
	l.RenderTo(buf, 0)
	return buf.RenderLine(0)
}
