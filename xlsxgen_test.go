package xlsxgen_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	xlsxgen "github.com/objects2xlsx/go-xlsxgen"
)

type invoiceLine struct {
	SKU      string
	Quantity int64
	Price    float64
	Shipped  bool
	Note     xlsxgen.Option[string]
	Due      time.Time
}

func sampleLines() ([]invoiceLine, error) {
	return []invoiceLine{
		{SKU: "A100", Quantity: 3, Price: 19.99, Shipped: true, Note: xlsxgen.Some("fragile"), Due: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
		{SKU: "B200", Quantity: 1, Price: 249.00, Shipped: false, Note: xlsxgen.None[string](), Due: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)},
	}, nil
}

// TestEndToEndWorkbookOpensInExcelize covers spec.md §8's basic generation
// scenario: a single sheet with a header row and a mix of column kinds,
// verified by reading the produced file back with xuri/excelize/v2.
func TestEndToEndWorkbookOpensInExcelize(t *testing.T) {
	b := xlsxgen.NewBook()
	b.Style.Title = "Invoices"

	sh := xlsxgen.NewSheet("Lines", sampleLines,
		xlsxgen.StringColumn[invoiceLine]("SKU", func(l invoiceLine) string { return l.SKU }),
		xlsxgen.IntColumn[invoiceLine]("Quantity", func(l invoiceLine) int64 { return l.Quantity }),
		xlsxgen.DoubleColumn[invoiceLine]("Price", func(l invoiceLine) float64 { return l.Price }),
		xlsxgen.BoolColumn[invoiceLine]("Shipped", func(l invoiceLine) bool { return l.Shipped }, xlsxgen.YesNoExpr()),
		xlsxgen.OptionalStringColumn[invoiceLine]("Note", func(l invoiceLine) xlsxgen.Option[string] { return l.Note }, xlsxgen.KeepEmpty[string]()),
		xlsxgen.DateColumn[invoiceLine]("Due", func(l invoiceLine) time.Time { return l.Due }, time.UTC),
	)
	xlsxgen.AddSheet(b, sh)

	path := filepath.Join(t.TempDir(), "invoices.xlsx")
	require.NoError(t, b.Write(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	require.Contains(t, f.GetSheetList(), "Lines")

	rows, err := f.GetRows("Lines")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 data rows

	require.Equal(t, []string{"SKU", "Quantity", "Price", "Shipped", "Note", "Due"}, rows[0])
	require.Equal(t, "A100", rows[1][0])
	require.Equal(t, "YES", rows[1][3])
	require.Equal(t, "NO", rows[2][3])
}

// TestEndToEndEmptySheetStillEmitsHeader covers spec.md §8's empty-data
// scenario: a sheet with zero records must still render its header row.
func TestEndToEndEmptySheetStillEmitsHeader(t *testing.T) {
	b := xlsxgen.NewBook()
	sh := xlsxgen.NewSheet("Empty", func() ([]invoiceLine, error) { return nil, nil },
		xlsxgen.StringColumn[invoiceLine]("SKU", func(l invoiceLine) string { return l.SKU }),
	)
	xlsxgen.AddSheet(b, sh)

	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, b.Write(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Empty")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, []string{"SKU"}, rows[0])
}

// TestEndToEndMultipleSheetsGetDistinctNames covers spec.md §8's
// sheet-name-collision scenario.
func TestEndToEndMultipleSheetsGetDistinctNames(t *testing.T) {
	b := xlsxgen.NewBook()
	for i := 0; i < 2; i++ {
		xlsxgen.AddSheet(b, xlsxgen.NewSheet("Report", sampleLines,
			xlsxgen.StringColumn[invoiceLine]("SKU", func(l invoiceLine) string { return l.SKU })))
	}

	path := filepath.Join(t.TempDir(), "dup.xlsx")
	require.NoError(t, b.Write(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	list := f.GetSheetList()
	require.Len(t, list, 2)
	require.NotEqual(t, list[0], list[1])
}
