package render

import (
	"fmt"

	"github.com/mikemackintosh/zush/pkg/buffer"
)

// Debug dumps the template name, the output with escapes made visible,
// and the measured visible width. Width here comes from the same
// counter the layout code uses, so a composition bug shows up as a
// number that disagrees with the terminal.
type Debug struct {
	Template string
}

// Format returns the three-line diagnostic dump.
func (d Debug) Format(output string) string {
	return fmt.Sprintf("Template: %s\nOutput: %q\nVisible width: %d\n",
		d.Template, output, buffer.VisibleWidth(output))
}
