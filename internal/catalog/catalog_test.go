package catalog

import (
	"strings"
	"testing"
)

func TestNew_PreservesOrder(t *testing.T) {
	c := New([]Track{
		{ID: "a", Title: "First", AudioURL: "https://cdn/a.mp3"},
		{ID: "b", Title: "Second", AudioURL: "https://cdn/b.mp3"},
		{ID: "c", Title: "Third", AudioURL: "https://cdn/c.mp3"},
	})

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	for i, want := range []string{"a", "b", "c"} {
		if got := c.At(i).ID; got != want {
			t.Errorf("At(%d).ID = %q, want %q", i, got, want)
		}
	}
}

func TestNew_DropsTracksWithoutAudio(t *testing.T) {
	c := New([]Track{
		{ID: "a", AudioURL: "https://cdn/a.mp3"},
		{ID: "b", AudioURL: ""},
		{ID: "c", AudioURL: "   "},
	})

	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	if c.IndexOf("b") != -1 {
		t.Error("track without audio URL should be dropped")
	}
}

func TestNew_DuplicateIDKeepsFirst(t *testing.T) {
	c := New([]Track{
		{ID: "a", Title: "Original", AudioURL: "https://cdn/a.mp3"},
		{ID: "a", Title: "Copy", AudioURL: "https://cdn/a2.mp3"},
	})

	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	if c.At(0).Title != "Original" {
		t.Errorf("Title = %q, want Original", c.At(0).Title)
	}
}

func TestNew_DerivesMissingID(t *testing.T) {
	c := New([]Track{
		{AudioURL: "https://cdn/a.mp3"},
		{AudioURL: "https://cdn/b.mp3"},
	})

	a, b := c.At(0).ID, c.At(1).ID
	if a == "" || b == "" {
		t.Fatalf("derived IDs should not be empty: %q, %q", a, b)
	}
	if a == b {
		t.Errorf("different URLs produced the same ID %q", a)
	}
	if !strings.HasPrefix(a, "url-") {
		t.Errorf("derived ID = %q, want url- prefix", a)
	}

	again := New([]Track{{AudioURL: "https://cdn/a.mp3"}})
	if again.At(0).ID != a {
		t.Errorf("derived ID not stable: %q vs %q", again.At(0).ID, a)
	}
}

func TestCatalog_At_OutOfBounds(t *testing.T) {
	c := New([]Track{{ID: "a", AudioURL: "https://cdn/a.mp3"}})

	tests := []int{-1, 1, 100}
	for _, i := range tests {
		if c.At(i) != nil {
			t.Errorf("At(%d) should be nil", i)
		}
	}
}

func TestCatalog_At_ReturnsCopy(t *testing.T) {
	c := New([]Track{{ID: "a", Title: "Song", AudioURL: "https://cdn/a.mp3"}})

	tr := c.At(0)
	tr.Title = "Modified"

	if c.At(0).Title != "Song" {
		t.Error("At() should return a copy")
	}
}

func TestCatalog_Tracks_ReturnsCopy(t *testing.T) {
	c := New([]Track{{ID: "a", Title: "Song", AudioURL: "https://cdn/a.mp3"}})

	tracks := c.Tracks()
	tracks[0].Title = "Modified"

	if c.At(0).Title != "Song" {
		t.Error("Tracks() should return a copy")
	}
}

func TestCatalog_ZeroValue(t *testing.T) {
	var c Catalog

	if !c.IsEmpty() {
		t.Error("zero Catalog should be empty")
	}
	if c.IndexOf("x") != -1 {
		t.Error("IndexOf on zero Catalog should be -1")
	}
	if len(c.Tracks()) != 0 {
		t.Error("Tracks() on zero Catalog should be empty")
	}
}

func TestTrack_DisplayTitle(t *testing.T) {
	tests := []struct {
		name  string
		track Track
		want  string
	}{
		{"title set", Track{Title: "Song", AudioURL: "https://cdn/a.mp3"}, "Song"},
		{"fallback to file name", Track{AudioURL: "https://cdn/music/a.mp3"}, "a.mp3"},
		{"trailing slash", Track{AudioURL: "https://cdn/"}, "https://cdn/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.track.DisplayTitle(); got != tt.want {
				t.Errorf("DisplayTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}
