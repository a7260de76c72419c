package render

import (
	"fmt"
	"strings"
	"time"
)

// Duration formats d as m:ss. Longer tracks keep counting minutes.
func Duration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// SliderFill returns how many of width cells a 0..100 value fills.
func SliderFill(value float64, width int) int {
	if width <= 0 {
		return 0
	}
	value = min(max(value, 0), 100)
	return min(int(float64(width)*value/100+0.5), width)
}

// Slider draws a 0..100 value as a bar of width cells.
func Slider(value float64, width int, filled, empty string) string {
	n := SliderFill(value, width)
	return strings.Repeat(filled, n) + strings.Repeat(empty, max(width-n, 0))
}
