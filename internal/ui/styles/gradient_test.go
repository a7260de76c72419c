package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBlendHex(t *testing.T) {
	got := blendHex(3, lipgloss.Color("#000000"), lipgloss.Color("#ffffff"))
	assert.Len(t, got, 3)
	assert.Equal(t, "#000000", got[0])
	assert.Equal(t, "#ffffff", got[2])

	assert.Equal(t, []string{"#ff0000"}, blendHex(1, lipgloss.Color("#ff0000"), lipgloss.Color("#00ff00")))
}

func TestLipglossToColor_ANSIFallsBackToGray(t *testing.T) {
	r, g, b, _ := lipglossToColor(lipgloss.Color("240")).RGBA()
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
}

func TestGradient_KeepsText(t *testing.T) {
	assert.Empty(t, Gradient("", false, "#000000", "#ffffff"))

	out := Gradient("onestop", true, "#a78bfa", "#f1a208")
	assert.Equal(t, "onestop", stripStyle(out))
	assert.Equal(t, 7, lipgloss.Width(out))
}

func stripStyle(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && r == 'm':
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
