// Package layout provides pure functions for UI dimension calculations.
package layout

// ContentOpts lists the heights of the fixed rows around the catalog grid.
type ContentOpts struct {
	HeaderHeight    int
	PlayerBarHeight int // 0 when no track is current
	StatusHeight    int
	HelpHeight      int
}

// ContentHeight calculates the available height for the catalog grid.
// It never goes below zero.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.PlayerBarHeight
	height -= opts.StatusHeight
	height -= opts.HelpHeight
	return max(height, 0)
}
