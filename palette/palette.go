// Package palette generates visually distinct color sets for labeling
// regions in debug visualizations.
//
// Colors are picked from evenly spaced hues at fixed saturation and
// lightness, which maximizes hue separation for up to n labels. The
// result is not colorimetrically optimized: adjacent hues are merely
// distinct, not perceptually equidistant, which is acceptable for
// debug output.
package palette

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Fixed saturation and lightness keep every generated color vivid and
// mid-brightness; only the hue varies.
const (
	saturation = 0.9
	lightness  = 0.5
)

// Contrasting returns n visually distinct RGBA colors.
//
// Color i has hue i*360/n degrees, saturation 0.9 and lightness 0.5,
// converted from HSL to 8-bit sRGB. Every color carries the supplied
// alpha. n <= 0 yields an empty result.
func Contrasting(n int, alpha uint8) []color.RGBA {
	if n <= 0 {
		return nil
	}

	colors := make([]color.RGBA, 0, n)
	for i := 0; i < n; i++ {
		hue := float64(i) * 360.0 / float64(n)
		r, g, b := colorful.Hsl(hue, saturation, lightness).RGB255()
		colors = append(colors, color.RGBA{R: r, G: g, B: b, A: alpha})
	}
	return colors
}
