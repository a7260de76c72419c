package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient renders text with a horizontal color gradient, blended in HCL
// space one grapheme cluster at a time.
func Gradient(text string, bold bool, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	if len(clusters) == 0 {
		return ""
	}

	if len(clusters) == 1 {
		style := lipgloss.NewStyle().Foreground(from)
		if bold {
			style = style.Bold(true)
		}
		return style.Render(text)
	}

	colors := blendHex(len(clusters), from, to)

	var b strings.Builder
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i]))
		if bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(cluster))
	}

	return b.String()
}

// blendHex returns size hex colors evenly spaced between from and to.
func blendHex(size int, from, to lipgloss.Color) []string {
	c1, _ := colorful.MakeColor(lipglossToColor(from))
	c2, _ := colorful.MakeColor(lipglossToColor(to))
	if size < 2 {
		return []string{c1.Hex()}
	}

	out := make([]string, size)
	for i := range size {
		out[i] = c1.BlendHcl(c2, float64(i)/float64(size-1)).Clamped().Hex()
	}
	return out
}

// lipglossToColor converts a hex lipgloss.Color. ANSI color numbers have no
// fixed RGB value and map to neutral gray.
func lipglossToColor(c lipgloss.Color) color.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

// Title renders the application title with the theme gradient.
func (t *Theme) Title(text string) string {
	return Gradient(text, true, t.Primary, t.Secondary)
}
