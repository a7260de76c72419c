// Package headerbar renders the title line at the top of the screen.
package headerbar

import (
	"github.com/llehouerou/onestop/internal/ui/render"
	"github.com/llehouerou/onestop/internal/ui/styles"
)

// Height is the title line plus the separator below it.
const Height = 2

// Render returns the header for the given width: the gradient title on the
// left and status text on the right.
func Render(title, status string, width int) string {
	if width <= 0 {
		return ""
	}
	t := styles.T()
	st := t.S()

	left := " " + t.Title(title)
	right := ""
	if status != "" {
		right = st.Muted.Render(status) + " "
	}
	line := render.TruncateStyled(render.Row(left, right, width), width)
	return line + "\n" + st.Subtle.Render(render.Separator(width))
}
