package xlsxgen

import (
	"bytes"
	"fmt"

	"github.com/adnsv/srw/xml"

	"github.com/objects2xlsx/go-xlsxgen/internal/names"
	"github.com/objects2xlsx/go-xlsxgen/internal/sharedstrings"
	"github.com/objects2xlsx/go-xlsxgen/internal/style"
	"github.com/objects2xlsx/go-xlsxgen/internal/xltime"
)

// DataProvider supplies one sheet's records. There is no separate sync/async
// provider variant: Go's idiom for "maybe blocking" is already a plain
// function the caller can make slow, so there is exactly one provider shape
// here and the orchestrator always calls it synchronously on its own
// goroutine — a caller wanting async behavior runs the work on another
// goroutine and blocks on a channel inside the closure.
type DataProvider[R any] func() ([]R, error)

// sheetNode type-erases Sheet[R] over R so a Book can hold heterogeneous
// sheets — spec.md §9's "type-erased column wrapper" note applied one
// level up, at the sheet rather than the column.
type sheetNode interface {
	sheetName() string
	setSheetID(id int)
	getSheetID() int
	load() error
	generate(book BookStyle, reg *style.Registry, ss *sharedstrings.Registry) ([]byte, int, error)
}

// Sheet is spec.md §3's Sheet<R>: a name, header flag, style, homogeneous
// column list, and a data provider with a lazily-cached load() result.
type Sheet[R any] struct {
	Name      string
	HasHeader bool
	Style     SheetStyle
	Columns   []*Column[R]
	Provider  DataProvider[R]

	id     int
	data   []R
	loaded bool
}

// NewSheet constructs a Sheet with headers on and spec.md's default
// SheetStyle — a plain constructor is sufficient per spec.md §9 ("the DSL
// is sugar").
func NewSheet[R any](name string, provider DataProvider[R], columns ...*Column[R]) *Sheet[R] {
	return &Sheet[R]{
		Name:      name,
		HasHeader: true,
		Style:     NewSheetStyle(),
		Columns:   columns,
		Provider:  provider,
	}
}

func (s *Sheet[R]) sheetName() string { return s.Name }
func (s *Sheet[R]) setSheetID(id int) { s.id = id }
func (s *Sheet[R]) getSheetID() int   { return s.id }

// load invokes the data provider exactly once (spec.md §3's lifecycle
// invariant: "Sheet data is filled once per write() call").
func (s *Sheet[R]) load() error {
	if s.loaded {
		return nil
	}
	data, err := s.Provider()
	if err != nil {
		return newError(ErrorKindDataProvider, fmt.Sprintf("sheet %q data provider failed", s.Name), err)
	}
	s.data = data
	s.loaded = true
	return nil
}

// activeColumns determines spec.md §4.2 step 2: filter by when(records[0])
// if records is non-empty, else keep all columns so headers still appear.
func (s *Sheet[R]) activeColumns() []*Column[R] {
	if len(s.data) == 0 {
		return s.Columns
	}
	first := s.data[0]
	out := make([]*Column[R], 0, len(s.Columns))
	for _, c := range s.Columns {
		if c.ShouldGenerate(first) {
			out = append(out, c)
		}
	}
	return out
}

// overlayBorder applies spec.md §4.2's data-region border overlay: a side
// is present iff the cell sits on that edge of dataRange, corners receive
// two sides, interior cells are untouched. Merged field-wise onto base so
// a pre-existing column/sheet/cell border survives underneath.
func overlayBorder(base *CellStyle, dr *DataRange, side BorderSide, col, row int) *CellStyle {
	if dr == nil {
		return base
	}
	if row < dr.StartRow || row > dr.EndRow || col < dr.StartColumn || col > dr.EndColumn {
		return base
	}
	var overlay Border
	touched := false
	if row == dr.StartRow {
		overlay.Top = side
		touched = true
	}
	if row == dr.EndRow {
		overlay.Bottom = side
		touched = true
	}
	if col == dr.StartColumn {
		overlay.Left = side
		touched = true
	}
	if col == dr.EndColumn {
		overlay.Right = side
		touched = true
	}
	if !touched {
		return base
	}
	return MergeCellStyle(base, &CellStyle{Border: &overlay})
}

// generate produces one worksheet's XML per spec.md §4.2's algorithm,
// grounded on adnsv-go-xl's Sheet/Row/Column row-and-cell sequencing
// (xl/sheet.go, xl/row.go) but driven by batch per-record emission from
// the column engine instead of imperative AddCell calls. Returns the
// rendered XML bytes and the number of data rows written.
func (s *Sheet[R]) generate(book BookStyle, reg *style.Registry, ss *sharedstrings.Registry) ([]byte, int, error) {
	effective := MergeSheetStyle(book.DefaultSheetStyle, s.Style)
	cols := s.activeColumns()

	for i, c := range cols {
		if w, ok := c.Width(); ok {
			effective.ColumnWidths[i+1] = ColumnWidth{Width: w, IsCustom: true}
		}
	}

	hasHeader := s.HasHeader
	dataRowCount := len(s.data)

	var dataRange *DataRange
	if effective.DataBorder.Enabled && dataRowCount > 0 && len(cols) > 0 {
		startRow := 1
		if hasHeader && !effective.DataBorder.IncludeHeader {
			startRow = 2
		}
		endRow := dataRowCount
		if hasHeader {
			endRow++
		}
		dataRange = &DataRange{StartRow: startRow, EndRow: endRow, StartColumn: 1, EndColumn: len(cols)}
	}

	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("worksheet")
	x.Attr("xmlns", "http://schemas.openxmlformats.org/spreadsheetml/2006/main")
	x.Attr("xmlns:r", "http://schemas.openxmlformats.org/officeDocument/2006/relationships")

	writeSheetPr(x, effective)
	writeSheetViews(x, effective)

	if len(effective.ColumnWidths) > 0 {
		x.OTag("+cols")
		for i := 1; i <= len(cols); i++ {
			cw, ok := effective.ColumnWidths[i]
			if !ok {
				continue
			}
			x.OTag("+col").Attr("min", i).Attr("max", i).Attr("width", cw.Width)
			if cw.IsCustom {
				x.Attr("customWidth", 1)
			}
			x.CTag()
		}
		x.CTag()
	}

	x.OTag("+sheetData")

	rowNum := 1
	if hasHeader {
		x.OTag("+row").Attr("r", rowNum)
		for colIdx, c := range cols {
			colNum := colIdx + 1
			hs := MergeCellStyle(book.DefaultHeaderStyle, effective.HeaderStyle)
			hs = MergeCellStyle(hs, c.HeaderStyle())
			hs = overlayBorder(hs, dataRange, effective.DataBorder.Style, colNum, rowNum)
			styleID := reg.Intern(hs, style.ValueKindOther, 0)
			writeCellValue(x, ss, colNum, rowNum, styleID, StringValue(c.Name()))
		}
		x.CTag() // row
		rowNum++
	}

	for _, record := range s.data {
		x.OTag("+row").Attr("r", rowNum)
		if ht, ok := effective.RowHeights[rowNum]; ok {
			x.Attr("ht", ht).Attr("customHeight", 1)
		}
		for colIdx, c := range cols {
			colNum := colIdx + 1
			cv := c.GenerateCellValue(record)

			bs := MergeCellStyle(book.DefaultBodyStyle, effective.BodyStyle)
			bs = MergeCellStyle(bs, c.BodyStyle())
			bs = overlayBorder(bs, dataRange, effective.DataBorder.Style, colNum, rowNum)

			styleID := reg.Intern(bs, cv.styleKind(), cv.percentPrecision)
			writeCellValue(x, ss, colNum, rowNum, styleID, cv)
		}
		x.CTag() // row
		rowNum++
	}

	x.CTag() // sheetData
	x.CTag() // worksheet

	return bb.Bytes(), dataRowCount, nil
}

// writeSheetPr emits <sheetPr> for the sheet-level settings spec.md §3
// attaches no other home to: tab color and the outline-symbols/page-breaks
// display flags. Omitted entirely when every flag is at its OOXML default,
// since an empty <sheetPr/> is legal but pointless.
func writeSheetPr(x *xml.Writer, effective SheetStyle) {
	if effective.TabColor == "" && effective.Display.OutlineSymbols && effective.Display.PageBreaks {
		return
	}
	x.OTag("+sheetPr")
	if !effective.Display.OutlineSymbols {
		x.OTag("+outlinePr").Attr("showOutlineSymbols", 0).CTag()
	}
	if !effective.Display.PageBreaks {
		x.OTag("+pageSetUpPr").Attr("autoPageBreaks", 0).CTag()
	}
	if effective.TabColor != "" {
		x.OTag("+tabColor").Attr("rgb", effective.TabColor).CTag()
	}
	x.CTag()
}

// writeSheetViews emits <sheetViews><sheetView .../></sheetViews>: gridline/
// heading/zero/formula display flags as sheetView attributes, zoom (already
// clamped to 10-400 by MergeSheetStyle/clampZoom), and a <pane> child when
// Freeze is set — spec.md §3's freeze-panes descriptor and zoom fields.
func writeSheetViews(x *xml.Writer, effective SheetStyle) {
	x.OTag("+sheetViews")
	x.OTag("+sheetView")
	if !effective.Display.Gridlines {
		x.Attr("showGridLines", 0)
	}
	if !effective.Display.Headings {
		x.Attr("showRowColHeaders", 0)
	}
	if !effective.Display.ZeroValues {
		x.Attr("showZeros", 0)
	}
	if effective.Display.Formulas {
		x.Attr("showFormulas", 1)
	}
	if effective.Zoom != 0 && effective.Zoom != 100 {
		x.Attr("zoomScale", clampZoom(effective.Zoom))
	}
	x.Attr("workbookViewId", 0)

	if effective.Freeze != nil {
		topLeft := CellCoordAsString(effective.Freeze.Column+1, effective.Freeze.Row+1)
		x.OTag("+pane").
			Attr("xSplit", effective.Freeze.Column).
			Attr("ySplit", effective.Freeze.Row).
			Attr("topLeftCell", topLeft).
			Attr("activePane", "bottomRight").
			Attr("state", "frozen").
			CTag()
	}

	x.CTag() // sheetView
	x.CTag() // sheetViews
}

// writeCellValue dispatches on cv's kind to emit one <c> element, handling
// the empty-variant "no <v> element" case and the shared-string/native-
// boolean split spec.md §4.4/§6 require.
func writeCellValue(x *xml.Writer, ss *sharedstrings.Registry, col, row, styleID int, cv CellValue) {
	x.OTag("+c").Attr("r", CellCoordAsString(col, row))
	if styleID != 0 {
		x.Attr("s", styleID)
	}

	switch cv.kind {
	case CellKindEmpty:
		x.CTag()
		return
	case CellKindString:
		x.Attr("t", "s")
		x.OTag("v").Write(ss.Intern(cv.s)).CTag()
	case CellKindOptionalString:
		if !cv.os.Valid {
			x.CTag()
			return
		}
		x.Attr("t", "s")
		x.OTag("v").Write(ss.Intern(cv.os.Value)).CTag()
	case CellKindInt:
		x.Attr("t", "n")
		x.OTag("v").Write(fmt.Sprintf("%d", cv.i)).CTag()
	case CellKindOptionalInt:
		if !cv.oi.Valid {
			x.CTag()
			return
		}
		x.Attr("t", "n")
		x.OTag("v").Write(fmt.Sprintf("%d", cv.oi.Value)).CTag()
	case CellKindDouble:
		x.Attr("t", "n")
		x.OTag("v").Write(fmt.Sprintf("%g", cv.d)).CTag()
	case CellKindOptionalDouble:
		if !cv.od.Valid {
			x.CTag()
			return
		}
		x.Attr("t", "n")
		x.OTag("v").Write(fmt.Sprintf("%g", cv.od.Value)).CTag()
	case CellKindDate:
		x.Attr("t", "n")
		x.OTag("v").Write(fmt.Sprintf("%.8f", xltime.ToSerial(cv.dt))).CTag()
	case CellKindOptionalDate:
		if !cv.odt.Valid {
			x.CTag()
			return
		}
		x.Attr("t", "n")
		x.OTag("v").Write(fmt.Sprintf("%.8f", xltime.ToSerial(cv.odt.Value))).CTag()
	case CellKindBool:
		writeBool(x, ss, cv.b, cv.expr)
	case CellKindOptionalBool:
		if !cv.ob.Valid {
			x.CTag()
			return
		}
		writeBool(x, ss, cv.ob.Value, cv.expr)
	case CellKindURL:
		x.Attr("t", "s")
		x.OTag("v").Write(ss.Intern(cv.u)).CTag()
	case CellKindOptionalURL:
		if !cv.ou.Valid {
			x.CTag()
			return
		}
		x.Attr("t", "s")
		x.OTag("v").Write(ss.Intern(cv.ou.Value)).CTag()
	case CellKindPercentage:
		if !cv.od.Valid {
			x.CTag()
			return
		}
		x.Attr("t", "n")
		x.OTag("v").Write(fmt.Sprintf("%g", cv.od.Value)).CTag()
	}
	x.CTag() // c
}

func writeBool(x *xml.Writer, ss *sharedstrings.Registry, v bool, expr BoolExpr) {
	if expr.IsNative() {
		x.Attr("t", "b")
		val := "0"
		if v {
			val = "1"
		}
		x.OTag("v").Write(val).CTag()
		return
	}
	x.Attr("t", "s")
	x.OTag("v").Write(ss.Intern(expr.Text(v))).CTag()
}

// SanitizeSheetName applies spec.md §6's silently-repairing sheet-name
// sanitizer. Exposed at the package level since Book assigns a sanitized,
// deduplicated name to every sheet as part of write().
func SanitizeSheetName(name string) string {
	return names.Sanitize(name, names.Options{})
}
