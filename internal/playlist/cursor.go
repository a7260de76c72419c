// Package playlist tracks the current position in the catalog.
package playlist

// Cursor is a wrap-around index over a fixed number of tracks.
// The zero value is an empty cursor.
type Cursor struct {
	length       int
	currentIndex int // -1 if empty
}

// NewCursor creates a cursor over n tracks, positioned on the first one.
func NewCursor(n int) *Cursor {
	c := &Cursor{}
	c.Reset(n)
	return c
}

// Reset sets the track count and moves to the first track.
// An empty cursor has index -1.
func (c *Cursor) Reset(n int) {
	c.length = max(n, 0)
	if c.length == 0 {
		c.currentIndex = -1
		return
	}
	c.currentIndex = 0
}

// Len returns the number of tracks.
func (c *Cursor) Len() int {
	return c.length
}

// IsEmpty returns true if there are no tracks.
func (c *Cursor) IsEmpty() bool {
	return c.length == 0
}

// Index returns the current index, or -1 if empty.
func (c *Cursor) Index() int {
	if c.length == 0 {
		return -1
	}
	return c.currentIndex
}

// Valid reports whether i is a track index.
func (c *Cursor) Valid(i int) bool {
	return i >= 0 && i < c.length
}

// JumpTo moves to index i. Returns false and leaves the cursor unchanged if
// i is out of range.
func (c *Cursor) JumpTo(i int) bool {
	if !c.Valid(i) {
		return false
	}
	c.currentIndex = i
	return true
}

// Next moves forward one track, wrapping from last to first.
// Returns the new index, or -1 if empty.
func (c *Cursor) Next() int {
	return c.step(1)
}

// Prev moves back one track, wrapping from first to last.
// Returns the new index, or -1 if empty.
func (c *Cursor) Prev() int {
	return c.step(-1)
}

// PeekNext returns the index Next would move to, without moving.
func (c *Cursor) PeekNext() int {
	if c.length == 0 {
		return -1
	}
	return (c.currentIndex + 1) % c.length
}

func (c *Cursor) step(delta int) int {
	if c.length == 0 {
		return -1
	}
	c.currentIndex = (c.currentIndex + delta + c.length) % c.length
	return c.currentIndex
}
