// internal/playlist/cursor_test.go
package playlist

import "testing"

func TestNewCursor(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		wantIndex int
		wantEmpty bool
	}{
		{"empty", 0, -1, true},
		{"negative", -3, -1, true},
		{"single", 1, 0, false},
		{"several", 5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.n)
			if c.Index() != tt.wantIndex {
				t.Errorf("Index() = %d, want %d", c.Index(), tt.wantIndex)
			}
			if c.IsEmpty() != tt.wantEmpty {
				t.Errorf("IsEmpty() = %v, want %v", c.IsEmpty(), tt.wantEmpty)
			}
		})
	}
}

func TestCursor_ZeroValue(t *testing.T) {
	var c Cursor

	if c.Index() != -1 {
		t.Errorf("Index() = %d, want -1", c.Index())
	}
	if c.Next() != -1 || c.Prev() != -1 {
		t.Error("Next/Prev on empty cursor should return -1")
	}
}

func TestCursor_NextWraps(t *testing.T) {
	c := NewCursor(3)

	want := []int{1, 2, 0, 1}
	for i, w := range want {
		if got := c.Next(); got != w {
			t.Errorf("Next() #%d = %d, want %d", i+1, got, w)
		}
	}
}

func TestCursor_PrevWraps(t *testing.T) {
	c := NewCursor(3)

	want := []int{2, 1, 0, 2}
	for i, w := range want {
		if got := c.Prev(); got != w {
			t.Errorf("Prev() #%d = %d, want %d", i+1, got, w)
		}
	}
}

func TestCursor_FullCycleReturnsToStart(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for start := range n {
			c := NewCursor(n)
			c.JumpTo(start)
			for range n {
				c.Next()
			}
			if c.Index() != start {
				t.Errorf("n=%d start=%d: after %d Next() index = %d", n, start, n, c.Index())
			}
		}
	}
}

func TestCursor_PrevInvertsNext(t *testing.T) {
	c := NewCursor(4)
	for start := range 4 {
		c.JumpTo(start)
		c.Next()
		c.Prev()
		if c.Index() != start {
			t.Errorf("Prev(Next(%d)) = %d", start, c.Index())
		}
	}
}

func TestCursor_SingleTrack(t *testing.T) {
	c := NewCursor(1)

	if c.Next() != 0 {
		t.Error("Next() on single track should stay at 0")
	}
	if c.Prev() != 0 {
		t.Error("Prev() on single track should stay at 0")
	}
}

func TestCursor_JumpTo(t *testing.T) {
	c := NewCursor(3)

	if !c.JumpTo(2) {
		t.Fatal("JumpTo(2) = false, want true")
	}
	if c.Index() != 2 {
		t.Errorf("Index() = %d, want 2", c.Index())
	}

	for _, bad := range []int{-1, 3, 100} {
		if c.JumpTo(bad) {
			t.Errorf("JumpTo(%d) = true, want false", bad)
		}
		if c.Index() != 2 {
			t.Errorf("Index() = %d after JumpTo(%d), want unchanged 2", c.Index(), bad)
		}
	}
}

func TestCursor_PeekNext(t *testing.T) {
	c := NewCursor(2)
	c.JumpTo(1)

	if c.PeekNext() != 0 {
		t.Errorf("PeekNext() = %d, want 0", c.PeekNext())
	}
	if c.Index() != 1 {
		t.Error("PeekNext() should not move the cursor")
	}
	if NewCursor(0).PeekNext() != -1 {
		t.Error("PeekNext() on empty cursor should be -1")
	}
}

func TestCursor_Reset(t *testing.T) {
	c := NewCursor(5)
	c.JumpTo(4)

	c.Reset(2)
	if c.Index() != 0 || c.Len() != 2 {
		t.Errorf("after Reset(2): Index() = %d, Len() = %d", c.Index(), c.Len())
	}

	c.Reset(0)
	if c.Index() != -1 {
		t.Errorf("after Reset(0): Index() = %d, want -1", c.Index())
	}
}
