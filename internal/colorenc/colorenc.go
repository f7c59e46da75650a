// Package colorenc encodes colors as the AARRGGBB hex strings XLSX styles
// require (spec.md §6). No pack repo carries a color type (adnsv-go-xl's
// Font/Alignment have no color field at all), so this is new code built
// directly from spec.md's one-paragraph description, using the stdlib
// image/color.RGBA carrier since nothing in the pack offers a color
// library to ground an alternative on.
package colorenc

import (
	"fmt"
	"image/color"
)

// Encode renders c as an uppercase 8-nibble AARRGGBB hex string, alpha
// preserved.
func Encode(c color.RGBA) string {
	return fmt.Sprintf("%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

// Opaque is a convenience for the common case of a fully-opaque color
// specified as 24-bit RGB.
func Opaque(r, g, b uint8) string {
	return Encode(color.RGBA{R: r, G: g, B: b, A: 0xFF})
}
