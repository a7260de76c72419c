// Package cursor provides a cursor for scrollable grids of items laid out
// row by row.
package cursor

// Grid manages the cursor position and row scroll offset of a grid.
// Item count, column count and viewport height are passed to methods rather
// than stored, since they change with the catalog and the terminal size.
type Grid struct {
	pos    int // Current item index (0-indexed)
	offset int // First visible row
	margin int // Rows to keep visible above/below the cursor row
}

// New creates a new Grid with the specified scroll margin in rows.
func New(margin int) Grid {
	return Grid{margin: margin}
}

// Pos returns the current cursor position.
func (g Grid) Pos() int {
	return g.pos
}

// Offset returns the first visible row.
func (g Grid) Offset() int {
	return g.offset
}

// Row returns the row of the cursor.
func (g Grid) Row(cols int) int {
	if cols <= 0 {
		return 0
	}
	return g.pos / cols
}

// Col returns the column of the cursor.
func (g Grid) Col(cols int) int {
	if cols <= 0 {
		return 0
	}
	return g.pos % cols
}

// MoveRow moves the cursor up or down by delta rows, keeping the column.
// Moving down past the last full row lands on the last item.
func (g *Grid) MoveRow(delta, n, cols, height int) {
	if n == 0 || cols <= 0 {
		return
	}
	pos := g.pos + delta*cols
	switch {
	case pos < 0:
		pos = g.Col(cols)
	case pos >= n:
		if Rows(n, cols)-1 == g.Row(cols) {
			pos = g.pos
		} else {
			pos = n - 1
		}
	}
	g.pos = pos
	g.ensureVisible(n, cols, height)
}

// MoveCol moves the cursor left or right by delta items, within bounds.
func (g *Grid) MoveCol(delta, n, cols, height int) {
	if n == 0 {
		return
	}
	g.pos = clamp(g.pos+delta, n-1)
	g.ensureVisible(n, cols, height)
}

// Jump sets the cursor to an absolute item index.
func (g *Grid) Jump(pos, n, cols, height int) {
	if n == 0 {
		return
	}
	g.pos = clamp(pos, n-1)
	g.ensureVisible(n, cols, height)
}

// JumpStart moves the cursor to the first item.
func (g *Grid) JumpStart() {
	g.pos = 0
	g.offset = 0
}

// JumpEnd moves the cursor to the last item.
func (g *Grid) JumpEnd(n, cols, height int) {
	g.Jump(n-1, n, cols, height)
}

// EnsureVisible adjusts the scroll offset to keep the cursor row visible.
// Call it after the column count or viewport height changes.
func (g *Grid) EnsureVisible(n, cols, height int) {
	g.ensureVisible(n, cols, height)
}

func (g *Grid) ensureVisible(n, cols, height int) {
	if height <= 0 || n == 0 || cols <= 0 {
		return
	}
	row := g.Row(cols)
	margin := min(g.margin, (height-1)/2)

	if row < g.offset+margin {
		g.offset = max(row-margin, 0)
	}
	if row >= g.offset+height-margin {
		g.offset = row - height + margin + 1
	}
	g.offset = clamp(g.offset, max(Rows(n, cols)-height, 0))
}

// ClampToBounds keeps the cursor inside a list of n items.
// Returns true if the cursor was adjusted.
func (g *Grid) ClampToBounds(n int) bool {
	if n == 0 {
		changed := g.pos != 0 || g.offset != 0
		g.pos, g.offset = 0, 0
		return changed
	}
	old := g.pos
	g.pos = clamp(g.pos, n-1)
	return g.pos != old
}

// VisibleRows returns the visible row range [start, end).
func (g Grid) VisibleRows(n, cols, height int) (start, end int) {
	if n == 0 || cols <= 0 || height <= 0 {
		return 0, 0
	}
	return g.offset, min(g.offset+height, Rows(n, cols))
}

// Reset moves the cursor back to the first item.
func (g *Grid) Reset() {
	g.pos, g.offset = 0, 0
}

// Rows returns the number of rows needed for n items.
func Rows(n, cols int) int {
	if n <= 0 || cols <= 0 {
		return 0
	}
	return (n + cols - 1) / cols
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
