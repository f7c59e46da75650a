package xlsxgen

import "github.com/tiendc/go-deepcopy"

// ColumnWidth is one entry of SheetStyle's 1-based column-width map
// (spec.md §3: "{width, unit, isCustom}").
type ColumnWidth struct {
	Width    float64
	Unit     string // reserved for future unit kinds; "" means character units
	IsCustom bool
}

// FreezePanes is the freeze-panes descriptor spec.md §3 names: the 1-based
// column/row the freeze boundary sits after.
type FreezePanes struct {
	Column int
	Row    int
}

// DataBorder is spec.md §3/§4.2's data-region border settings.
type DataBorder struct {
	Enabled       bool
	IncludeHeader bool
	Style         BorderSide
}

// DataRange is the resolved data-region spec.md §3 calls "resolved
// dataRange (filled during emission)": computed once per sheet in
// generate() and consumed by the border-overlay step.
type DataRange struct {
	StartRow, EndRow, StartColumn, EndColumn int
}

// DisplayFlags are SheetStyle's display toggles (spec.md §3).
type DisplayFlags struct {
	Gridlines      bool
	Headings       bool
	ZeroValues     bool
	Formulas       bool
	OutlineSymbols bool
	PageBreaks     bool
}

// SheetStyle carries every per-sheet default spec.md §3 names: column
// widths, row heights, display flags, tab color, freeze panes, zoom, the
// data-region border settings, and the header/body default style
// carriers. Generalizes adnsv-go-xl's bare Sheet.Columns width map /
// Row.Height fields (sheet.go, row.go) into the richer structure spec.md
// demands.
type SheetStyle struct {
	ColumnWidths map[int]ColumnWidth
	RowHeights   map[int]float64

	DefaultColumnWidth float64
	DefaultRowHeight   float64

	Display DisplayFlags

	TabColor string
	Freeze   *FreezePanes
	Zoom     int

	DataBorder DataBorder

	HeaderStyle *CellStyle
	BodyStyle   *CellStyle
}

// NewSheetStyle returns spec.md §3's documented defaults: 8.43 character
// default column width, 15.0 point default row height, zoom 100, and
// gridlines/headings/zero-values/outline-symbols/page-breaks all visible.
func NewSheetStyle() SheetStyle {
	return SheetStyle{
		ColumnWidths:       map[int]ColumnWidth{},
		RowHeights:         map[int]float64{},
		DefaultColumnWidth: 8.43,
		DefaultRowHeight:   15.0,
		Display: DisplayFlags{
			Gridlines:      true,
			Headings:       true,
			ZeroValues:     true,
			OutlineSymbols: true,
			PageBreaks:     true,
		},
		Zoom: 100,
	}
}

func clampZoom(z int) int {
	if z < 10 {
		return 10
	}
	if z > 400 {
		return 400
	}
	return z
}

// MergeSheetStyle merges base and additional field-wise, additional
// overriding base per spec.md §4.2 step 1 ("additional overrides base;
// dict-valued fields union with right-side winning key collisions"). Maps
// are deep-copied so the merged result never aliases either input's map —
// mirroring CellStyle's same deep-copy discipline (MergeCellStyle).
func MergeSheetStyle(base, additional SheetStyle) SheetStyle {
	var out SheetStyle
	_ = deepcopy.Copy(&out, &base)
	if out.ColumnWidths == nil {
		out.ColumnWidths = map[int]ColumnWidth{}
	}
	if out.RowHeights == nil {
		out.RowHeights = map[int]float64{}
	}

	for k, v := range additional.ColumnWidths {
		out.ColumnWidths[k] = v
	}
	for k, v := range additional.RowHeights {
		out.RowHeights[k] = v
	}
	if additional.DefaultColumnWidth != 0 {
		out.DefaultColumnWidth = additional.DefaultColumnWidth
	}
	if additional.DefaultRowHeight != 0 {
		out.DefaultRowHeight = additional.DefaultRowHeight
	}
	out.Display = additional.Display
	if additional.TabColor != "" {
		out.TabColor = additional.TabColor
	}
	if additional.Freeze != nil {
		fp := *additional.Freeze
		out.Freeze = &fp
	}
	if additional.Zoom != 0 {
		out.Zoom = clampZoom(additional.Zoom)
	} else if out.Zoom != 0 {
		out.Zoom = clampZoom(out.Zoom)
	}
	if additional.DataBorder.Enabled {
		out.DataBorder = additional.DataBorder
	}
	out.HeaderStyle = MergeCellStyle(out.HeaderStyle, additional.HeaderStyle)
	out.BodyStyle = MergeCellStyle(out.BodyStyle, additional.BodyStyle)
	return out
}

// BookStyle is spec.md §3's workbook-level defaults: title/creator/app-name
// metadata for docProps, plus the default sheet style and default header/
// body cell styles every sheet merges under.
type BookStyle struct {
	Title   string
	Creator string
	AppName string

	DefaultSheetStyle  SheetStyle
	DefaultHeaderStyle *CellStyle
	DefaultBodyStyle   *CellStyle
}

// NewBookStyle returns a BookStyle with NewSheetStyle's defaults as the
// workbook's default sheet style.
func NewBookStyle() BookStyle {
	return BookStyle{DefaultSheetStyle: NewSheetStyle()}
}
