package style_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	"github.com/xuri/nfp"

	"github.com/objects2xlsx/go-xlsxgen/internal/style"
)

func TestRegistryInternDeduplicates(t *testing.T) {
	r := style.NewRegistry()
	cs := &style.CellStyle{Font: &style.Font{Bold: true, Size: 12}}

	id1 := r.Intern(cs, style.ValueKindOther, 0)
	id2 := r.Intern(cs, style.ValueKindOther, 0)
	require.Equal(t, id1, id2, "interning an identical style twice must yield the same xf id")
	require.NotEqual(t, 0, id1, "a non-default style must not collapse into the default xf")
}

func TestRegistryDefaultStyleIsIndexZero(t *testing.T) {
	r := style.NewRegistry()
	id := r.Intern(nil, style.ValueKindOther, 0)
	require.Equal(t, 0, id, "an all-default style must resolve to xf index 0")
}

func TestRegistryDistinctStylesGetDistinctIDs(t *testing.T) {
	r := style.NewRegistry()
	a := r.Intern(&style.CellStyle{Font: &style.Font{Bold: true}}, style.ValueKindOther, 0)
	b := r.Intern(&style.CellStyle{Font: &style.Font{Italic: true}}, style.ValueKindOther, 0)
	require.NotEqual(t, a, b)
}

func TestMergeCellStyleOverridesFieldWise(t *testing.T) {
	base := &style.CellStyle{Font: &style.Font{Bold: true}, NumFmt: "0.00"}
	additional := &style.CellStyle{Fill: &style.Fill{Pattern: style.FillPatternSolid, FgColor: "FFFF0000"}}

	merged := style.MergeCellStyle(base, additional)
	require.True(t, merged.Font.Bold, "base font must survive when additional doesn't set one")
	require.Equal(t, "0.00", merged.NumFmt)
	require.Equal(t, style.FillPatternSolid, merged.Fill.Pattern)

	// base must not be mutated by the merge.
	require.Nil(t, base.Fill)
}

func TestMergeCellStyleDoesNotAliasPointers(t *testing.T) {
	base := &style.CellStyle{Font: &style.Font{Bold: true}}
	merged := style.MergeCellStyle(base, &style.CellStyle{})
	merged.Font.Bold = false
	require.True(t, base.Font.Bold, "merge must deep-copy, never alias, base's sub-structs")
}

func TestMergeBorderOverlaysSideBySide(t *testing.T) {
	base := &style.CellStyle{Border: &style.Border{Left: style.BorderSide{Style: "thin"}}}
	additional := &style.CellStyle{Border: &style.Border{Top: style.BorderSide{Style: "thick"}}}

	merged := style.MergeCellStyle(base, additional)
	require.Equal(t, "thin", merged.Border.Left.Style, "an overlay setting only Top must not clobber Left")
	require.Equal(t, "thick", merged.Border.Top.Style)
}

// TestPercentageNumFmtParsesAsValidExcelFormat uses a precision (1) that
// has no built-in numFmtId match, so it is guaranteed to land in the
// registry's custom numFmt table rather than resolving to a built-in id
// and short-circuiting internCustomNumFmt before it ever appends (precision
// 0/2 map onto the built-in "0%"/"0.00%" ids 9/10 — see
// TestPercentageNumFmtZeroPrecision for that path). The lookup resolves the
// numFmt id through the interned XF (Intern returns a cellXfs index, a
// different id space than numFmtId) before matching it against
// CustomNumFmts.
func TestPercentageNumFmtParsesAsValidExcelFormat(t *testing.T) {
	r := style.NewRegistry()
	xfID := r.Intern(nil, style.ValueKindPercentage, 1)
	require.NotEqual(t, 0, xfID)

	numFmtID := r.XFs()[xfID].NumFmtID
	require.GreaterOrEqual(t, numFmtID, 164, "a non-built-in precision must mint a custom numFmt id")

	var formatStr string
	for _, e := range r.CustomNumFmts() {
		if e.ID == numFmtID {
			formatStr = e.FormatStr
		}
	}
	require.Equal(t, "0.0%", formatStr)

	ps := nfp.NumberFormatParser()
	sections := ps.Parse(formatStr)
	require.NotEmpty(t, sections, "percentage numFmt must parse as a valid Excel number format")
}

// TestMergeCellStyleIsAssociative checks that merging three layers two-at-a-
// time gives the same result regardless of grouping — ((base+mid)+top) must
// equal (base+(mid+top)) once both are folded onto the same base — since
// spec.md §4.2 applies book/sheet/column/cell overrides as a left fold and
// callers must be able to reason about it that way. On mismatch, spew.Sdump
// renders both trees field-by-field since CellStyle's nested pointers make
// require.Equal's default diff hard to read.
func TestMergeCellStyleIsAssociative(t *testing.T) {
	base := &style.CellStyle{Font: &style.Font{Bold: true}, NumFmt: "0.00"}
	mid := &style.CellStyle{Fill: &style.Fill{Pattern: style.FillPatternSolid, FgColor: "FFFF0000"}}
	top := &style.CellStyle{Border: &style.Border{Top: style.BorderSide{Style: "thick"}}}

	left := style.MergeCellStyle(style.MergeCellStyle(base, mid), top)
	right := style.MergeCellStyle(base, style.MergeCellStyle(mid, top))

	require.Equal(t, left, right, "merge grouping must not change the result:\nleft=%s\nright=%s",
		spew.Sdump(left), spew.Sdump(right))
}

// TestPercentageNumFmtZeroPrecision covers the built-in-id path: precision
// 0 renders "0%", which equals BuiltInNumFmt[9], so internCustomNumFmt
// resolves it to the built-in id instead of minting a custom entry.
func TestPercentageNumFmtZeroPrecision(t *testing.T) {
	r := style.NewRegistry()
	xfID := r.Intern(nil, style.ValueKindPercentage, 0)
	require.Equal(t, 9, r.XFs()[xfID].NumFmtID, `"0%" must resolve to the built-in numFmtId 9`)
}
