package xlsxgen

import (
	"image/color"

	"github.com/objects2xlsx/go-xlsxgen/internal/colorenc"
	"github.com/objects2xlsx/go-xlsxgen/internal/style"
)

// CellStyle, Font, Fill, Border, BorderSide, and Alignment are re-exported
// from internal/style so callers never need to import an internal package
// to build one: spec.md §3's CellStyle{font?, fill?, alignment?, border?}
// is internal/style.CellStyle verbatim, since the style registry's interning
// keys are exactly what callers construct.
type (
	CellStyle     = style.CellStyle
	Font          = style.Font
	Fill          = style.Fill
	Border        = style.Border
	BorderSide    = style.BorderSide
	Alignment     = style.Alignment
	FillPattern   = style.FillPattern
	UnderlineType = style.UnderlineType
	HAlign        = style.HAlign
	VAlign        = style.VAlign
)

const (
	FillPatternNone    = style.FillPatternNone
	FillPatternSolid   = style.FillPatternSolid
	FillPatternGray125 = style.FillPatternGray125

	UnderlineNone             = style.UnderlineNone
	UnderlineSingle           = style.UnderlineSingle
	UnderlineDouble           = style.UnderlineDouble
	UnderlineSingleAccounting = style.UnderlineSingleAccounting
	UnderlineDoubleAccounting = style.UnderlineDoubleAccounting

	HAlignGeneral          = style.HAlignGeneral
	HAlignLeft             = style.HAlignLeft
	HAlignCenter           = style.HAlignCenter
	HAlignRight            = style.HAlignRight
	HAlignFill             = style.HAlignFill
	HAlignJustify          = style.HAlignJustify
	HAlignCenterContinuous = style.HAlignCenterContinuous
	HAlignDistributed      = style.HAlignDistributed

	VAlignTop         = style.VAlignTop
	VAlignCenter      = style.VAlignCenter
	VAlignBottom      = style.VAlignBottom
	VAlignJustify     = style.VAlignJustify
	VAlignDistributed = style.VAlignDistributed
)

// RGBColor renders an opaque 24-bit color as the AARRGGBB hex string
// Font.Color, Fill.FgColor/BgColor, BorderSide.Color, and SheetStyle.TabColor
// expect (spec.md §6), via internal/colorenc.
func RGBColor(r, g, b uint8) string {
	return colorenc.Opaque(r, g, b)
}

// ARGBColor renders a color with an explicit alpha channel as the AARRGGBB
// hex string spec.md §6 specifies, via internal/colorenc.
func ARGBColor(a, r, g, b uint8) string {
	return colorenc.Encode(color.RGBA{R: r, G: g, B: b, A: a})
}

// MergeCellStyle merges base and additional field-wise, additional winning
// on every non-nil field, without mutating either argument. See
// DESIGN.md's Open Question #3 for the nil-vs-zero-value decision.
func MergeCellStyle(base, additional *CellStyle) *CellStyle {
	return style.MergeCellStyle(base, additional)
}
