// Package style implements the composite cell-style registry: fonts,
// fills, borders, alignments, and number formats, interned into an
// ordered, deduplicated cellXfs table the way xl/styles.xml requires.
package style

import "github.com/tiendc/go-deepcopy"

// Font mirrors adnsv-go-xl's xl.Font, extended with a color (the teacher's
// fonts are always the theme default black).
type Font struct {
	Size          float64
	Bold          bool
	Italic        bool
	Underline     UnderlineType
	Strikethrough bool
	Color         string // AARRGGBB, empty = theme default
}

// UnderlineType mirrors adnsv-go-xl's xl.UnderlineType.
type UnderlineType string

const (
	UnderlineNone             UnderlineType = ""
	UnderlineSingle           UnderlineType = "single"
	UnderlineDouble           UnderlineType = "double"
	UnderlineSingleAccounting UnderlineType = "singleAccounting"
	UnderlineDoubleAccounting UnderlineType = "doubleAccounting"
)

// IsDefault reports whether f uses every default property.
func (f Font) IsDefault() bool {
	return f.Size == 0 && !f.Bold && !f.Italic &&
		f.Underline == UnderlineNone && !f.Strikethrough && f.Color == ""
}

// FillPattern is the patternFill's patternType attribute.
type FillPattern string

const (
	FillPatternNone    FillPattern = "none"
	FillPatternSolid   FillPattern = "solid"
	FillPatternGray125 FillPattern = "gray125"
)

// Fill is a cell background fill.
type Fill struct {
	Pattern FillPattern
	FgColor string // AARRGGBB
	BgColor string // AARRGGBB
}

// IsDefault reports whether f is the Excel-mandated "none" fill.
func (f Fill) IsDefault() bool {
	return (f.Pattern == "" || f.Pattern == FillPatternNone) && f.FgColor == "" && f.BgColor == ""
}

// BorderSide is one edge of a Border.
type BorderSide struct {
	Style string // thin, medium, thick, dashed, dotted, double, ...
	Color string // AARRGGBB
}

func (s BorderSide) IsDefault() bool { return s.Style == "" && s.Color == "" }

// Border carries the four edges a CellStyle can set (spec.md §4.2's
// data-region overlay merges into these fields one side at a time).
type Border struct {
	Left, Right, Top, Bottom BorderSide
}

func (b Border) IsDefault() bool {
	return b.Left.IsDefault() && b.Right.IsDefault() && b.Top.IsDefault() && b.Bottom.IsDefault()
}

// HAlign and VAlign mirror adnsv-go-xl's xl.HorizontalAlignment/VerticalAlignment.
type HAlign string
type VAlign string

const (
	HAlignGeneral          HAlign = "general"
	HAlignLeft             HAlign = "left"
	HAlignCenter           HAlign = "center"
	HAlignRight            HAlign = "right"
	HAlignFill             HAlign = "fill"
	HAlignJustify          HAlign = "justify"
	HAlignCenterContinuous HAlign = "centerContinuous"
	HAlignDistributed      HAlign = "distributed"
)

const (
	VAlignTop         VAlign = "top"
	VAlignCenter      VAlign = "center"
	VAlignBottom      VAlign = "bottom"
	VAlignJustify     VAlign = "justify"
	VAlignDistributed VAlign = "distributed"
)

// Alignment mirrors adnsv-go-xl's xl.Alignment, extended with wrap/indent
// since spec.md's CellStyle.alignment carries more than horizontal/vertical.
type Alignment struct {
	Horizontal HAlign
	Vertical   VAlign
	WrapText   bool
	Indent     int
}

func (a Alignment) IsDefault() bool {
	return a.Horizontal == "" && a.Vertical == "" && !a.WrapText && a.Indent == 0
}

// CellStyle is spec.md §3's CellStyle: every sub-field nullable, merged
// field-wise with "additional overrides base when non-nil".
type CellStyle struct {
	Font      *Font
	Fill      *Fill
	Alignment *Alignment
	Border    *Border
	NumFmt    string // explicit custom numFmt; "" lets the registry derive one from the cell value
}

// MergeCellStyle returns base overridden field-wise by additional, without
// mutating either argument. A nil additional field leaves base's value in
// place; a nil base with a non-nil additional takes additional's value.
//
// Deep-copying base before overriding mirrors CynicDog-xlmd's use of
// go-deepcopy to avoid aliasing nested pointers across merges — a merged
// CellStyle must never share a *Font/*Fill/*Border/*Alignment with either
// input, since callers (sheet engine) merge the same book/sheet-level
// defaults into many distinct per-cell styles.
func MergeCellStyle(base, additional *CellStyle) *CellStyle {
	var out CellStyle
	if base != nil {
		_ = deepcopy.Copy(&out, base)
	}
	if additional == nil {
		return &out
	}
	if additional.Font != nil {
		var f Font
		_ = deepcopy.Copy(&f, additional.Font)
		out.Font = &f
	}
	if additional.Fill != nil {
		var f Fill
		_ = deepcopy.Copy(&f, additional.Fill)
		out.Fill = &f
	}
	if additional.Alignment != nil {
		var a Alignment
		_ = deepcopy.Copy(&a, additional.Alignment)
		out.Alignment = &a
	}
	if additional.Border != nil {
		out.Border = mergeBorder(out.Border, additional.Border)
	}
	if additional.NumFmt != "" {
		out.NumFmt = additional.NumFmt
	}
	return &out
}

// mergeBorder overlays additional's non-default sides onto base, side by
// side, so a data-region overlay that only sets Top doesn't clobber a
// pre-existing Left set by a column/sheet/cell style.
func mergeBorder(base, additional *Border) *Border {
	var out Border
	if base != nil {
		out = *base
	}
	if additional == nil {
		return &out
	}
	if !additional.Left.IsDefault() {
		out.Left = additional.Left
	}
	if !additional.Right.IsDefault() {
		out.Right = additional.Right
	}
	if !additional.Top.IsDefault() {
		out.Top = additional.Top
	}
	if !additional.Bottom.IsDefault() {
		out.Bottom = additional.Bottom
	}
	return &out
}

// XF is the composite resolved style a cell embeds: indices into the five
// sub-tables, kept exactly as adnsv-go-xl's xl.XF does for Font+Alignment,
// extended with Fill/Border/NumFmt per spec.md §3's full CellStyle.
type XF struct {
	FontID      int
	FillID      int
	BorderID    int
	AlignmentID int
	NumFmtID    int
	ApplyFont   bool
	ApplyFill   bool
	ApplyAlign  bool
	ApplyBorder bool
}
