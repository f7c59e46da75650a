package xlsxgen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/objects2xlsx/go-xlsxgen/internal/sharedstrings"
	"github.com/objects2xlsx/go-xlsxgen/internal/style"
)

func TestOverlayBorderCorner(t *testing.T) {
	dr := &DataRange{StartRow: 2, EndRow: 5, StartColumn: 1, EndColumn: 3}
	side := BorderSide{Style: "thin"}

	out := overlayBorder(nil, dr, side, 1, 2)
	require.NotNil(t, out.Border)
	require.Equal(t, side, out.Border.Top)
	require.Equal(t, side, out.Border.Left)
	require.True(t, out.Border.Right.IsDefault())
	require.True(t, out.Border.Bottom.IsDefault())
}

func TestOverlayBorderEdge(t *testing.T) {
	dr := &DataRange{StartRow: 2, EndRow: 5, StartColumn: 1, EndColumn: 3}
	side := BorderSide{Style: "thin"}

	out := overlayBorder(nil, dr, side, 2, 5)
	require.Equal(t, side, out.Border.Bottom)
	require.True(t, out.Border.Left.IsDefault())
	require.True(t, out.Border.Right.IsDefault())
	require.True(t, out.Border.Top.IsDefault())
}

func TestOverlayBorderInteriorUntouched(t *testing.T) {
	dr := &DataRange{StartRow: 2, EndRow: 5, StartColumn: 1, EndColumn: 3}
	side := BorderSide{Style: "thin"}
	base := &CellStyle{Font: &Font{Bold: true}}

	out := overlayBorder(base, dr, side, 2, 3)
	require.Same(t, base, out, "an interior cell must return base unchanged")
}

func TestOverlayBorderOutsideRangeUntouched(t *testing.T) {
	dr := &DataRange{StartRow: 2, EndRow: 5, StartColumn: 1, EndColumn: 3}
	base := &CellStyle{}
	out := overlayBorder(base, dr, BorderSide{Style: "thin"}, 10, 10)
	require.Same(t, base, out)
}

func TestOverlayBorderNilRangeIsNoop(t *testing.T) {
	base := &CellStyle{}
	out := overlayBorder(base, nil, BorderSide{Style: "thin"}, 1, 1)
	require.Same(t, base, out)
}

type record struct {
	Name string
}

func TestSheetGenerateDataRangeExcludesHeaderByDefault(t *testing.T) {
	sh := NewSheet("Items", func() ([]record, error) {
		return []record{{Name: "a"}, {Name: "b"}}, nil
	}, StringColumn[record]("Name", func(r record) string { return r.Name }))
	sh.Style.DataBorder = DataBorder{Enabled: true, Style: BorderSide{Style: "thin"}}

	reg := style.NewRegistry()
	ss := sharedstrings.NewRegistry()

	data, rows, err := sh.generate(NewBookStyle(), reg, ss)
	require.NoError(t, err)
	require.Equal(t, 2, rows)
	require.NotEmpty(t, data)

	// The header cell gets no border overlay, so it keeps the default xf
	// (no s attribute); the first data row starts the bordered region.
	out := string(data)
	require.NotContains(t, out, `<c r="A1" s=`)
	require.Contains(t, out, `<c r="A2" s=`)
}

func TestSheetActiveColumnsFiltersOnFirstRecord(t *testing.T) {
	sh := NewSheet("Items", func() ([]record, error) {
		return []record{{Name: ""}, {Name: "b"}}, nil
	},
		StringColumn[record]("Always", func(r record) string { return r.Name }),
		StringColumn[record]("Conditional", func(r record) string { return r.Name },
			When[record](func(r record) bool { return r.Name != "" })),
	)
	require.NoError(t, sh.load())
	cols := sh.activeColumns()
	require.Len(t, cols, 1, "the conditional column must be dropped since the first record's Name is empty")
}

func TestSheetGenerateEmitsSheetViewsAndSheetPr(t *testing.T) {
	sh := NewSheet("Items", func() ([]record, error) {
		return []record{{Name: "a"}}, nil
	}, StringColumn[record]("Name", func(r record) string { return r.Name }))
	sh.Style.TabColor = RGBColor(0xFF, 0x00, 0x00)
	sh.Style.Zoom = 150
	sh.Style.Freeze = &FreezePanes{Column: 1, Row: 1}
	sh.Style.Display.Gridlines = false

	reg := style.NewRegistry()
	ss := sharedstrings.NewRegistry()

	data, _, err := sh.generate(NewBookStyle(), reg, ss)
	require.NoError(t, err)

	out := string(data)
	require.Contains(t, out, `<tabColor rgb="FFFF0000"`)
	require.Contains(t, out, `zoomScale="150"`)
	require.Contains(t, out, `showGridLines="0"`)
	require.Contains(t, out, `<pane xSplit="1" ySplit="1" topLeftCell="B2"`)
}

func TestSheetActiveColumnsKeepsAllWhenNoData(t *testing.T) {
	sh := NewSheet("Items", func() ([]record, error) { return nil, nil },
		StringColumn[record]("A", func(r record) string { return r.Name },
			When[record](func(r record) bool { return false })),
	)
	require.NoError(t, sh.load())
	cols := sh.activeColumns()
	require.Len(t, cols, 1, "an empty sheet must still emit header columns")
}
