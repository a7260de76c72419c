// Package kittyimg provides Kitty terminal graphics protocol support.
package kittyimg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/llehouerou/onestop/internal/icons"
)

const (
	chunkSize = 4096 // Max bytes per escape sequence chunk
)

// Encode converts an image to a Kitty graphics escape sequence that
// transmits and displays it at cols x rows cells.
// Returns empty string if img is nil or cannot be encoded.
func Encode(img image.Image, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return ""
	}
	b64Data := base64.StdEncoding.EncodeToString(buf.Bytes())

	// ESC _ G <params> ; <payload> ESC \
	// a=T transmit+display, f=100 PNG, c/r size in cells, m=1 more chunks follow
	var sb strings.Builder
	for i := 0; i < len(b64Data); i += chunkSize {
		end := min(i+chunkSize, len(b64Data))
		chunk := b64Data[i:end]

		more := 0
		if end < len(b64Data) {
			more = 1
		}

		if i == 0 {
			fmt.Fprintf(&sb, "\x1b_Ga=T,f=100,q=2,c=%d,r=%d,m=%d;%s\x1b\\", cols, rows, more, chunk)
		} else {
			fmt.Fprintf(&sb, "\x1b_Gm=%d;%s\x1b\\", more, chunk)
		}
	}

	return sb.String()
}

// DeleteAll returns the sequence that removes every placed image.
func DeleteAll() string {
	return "\x1b_Ga=d,d=A,q=2\x1b\\"
}

// Placeholder returns a boxed placeholder for missing cover art.
func Placeholder(cols, rows int) string {
	if cols < 4 || rows < 2 {
		return ""
	}

	mark := icons.NoCover()
	markWidth := max(len([]rune(mark)), 1)

	lines := make([]string, 0, rows)
	lines = append(lines, "┌"+strings.Repeat("─", cols-2)+"┐")
	for i := 1; i < rows-1; i++ {
		if i == rows/2 && cols-2 >= markWidth {
			left := (cols - 2 - markWidth) / 2
			right := cols - 2 - markWidth - left
			lines = append(lines, "│"+strings.Repeat(" ", left)+mark+strings.Repeat(" ", right)+"│")
			continue
		}
		lines = append(lines, "│"+strings.Repeat(" ", cols-2)+"│")
	}
	lines = append(lines, "└"+strings.Repeat("─", cols-2)+"┘")

	return strings.Join(lines, "\n")
}
