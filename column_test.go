package xlsxgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type widget struct {
	Name  string
	Price float64
	Tag   Option[string]
	Kind  string
}

func TestStringColumnBasic(t *testing.T) {
	c := StringColumn[widget]("Name", func(w widget) string { return w.Name })
	v := c.GenerateCellValue(widget{Name: "bolt"})
	require.Equal(t, CellKindString, v.Kind())
	require.Equal(t, "bolt", v.s)
}

func TestOptionalStringColumnKeepEmpty(t *testing.T) {
	c := OptionalStringColumn[widget]("Tag", func(w widget) Option[string] { return w.Tag }, KeepEmpty[string]())

	empty := c.GenerateCellValue(widget{Tag: None[string]()})
	require.Equal(t, CellKindEmpty, empty.Kind())

	present := c.GenerateCellValue(widget{Tag: Some("red")})
	require.Equal(t, CellKindOptionalString, present.Kind())
	require.True(t, present.os.Valid)
	require.Equal(t, "red", present.os.Value)
}

func TestOptionalStringColumnDefaultValue(t *testing.T) {
	c := OptionalStringColumn[widget]("Tag", func(w widget) Option[string] { return w.Tag }, DefaultValue("n/a"))

	v := c.GenerateCellValue(widget{Tag: None[string]()})
	require.Equal(t, CellKindString, v.Kind(), "a DefaultValue policy must always resolve to the non-optional variant")
	require.Equal(t, "n/a", v.s)

	v2 := c.GenerateCellValue(widget{Tag: Some("blue")})
	require.Equal(t, CellKindString, v2.Kind())
	require.Equal(t, "blue", v2.s)
}

func TestWithConditionalDispatch(t *testing.T) {
	c := StringColumn[widget]("Kind", func(w widget) string { return w.Kind },
		WithConditional[widget](
			func(w widget) bool { return w.Kind == "special" },
			func(w widget) CellValue { return StringValue("SPECIAL!") },
			nil,
		),
	)

	normal := c.GenerateCellValue(widget{Kind: "regular"})
	require.Equal(t, "regular", normal.s)

	special := c.GenerateCellValue(widget{Kind: "special"})
	require.Equal(t, "SPECIAL!", special.s)
}

func TestWhenControlsVisibility(t *testing.T) {
	c := DoubleColumn[widget]("Price", func(w widget) float64 { return w.Price },
		When[widget](func(w widget) bool { return w.Price > 0 }),
	)
	require.True(t, c.ShouldGenerate(widget{Price: 1}))
	require.False(t, c.ShouldGenerate(widget{Price: 0}))
}

func TestMapAccessorComposesAccessorAndTransform(t *testing.T) {
	upper := MapAccessor(func(w widget) string { return w.Name }, func(s string) string {
		out := []byte(s)
		for i, b := range out {
			if b >= 'a' && b <= 'z' {
				out[i] = b - 32
			}
		}
		return string(out)
	})
	require.Equal(t, "BOLT", upper(widget{Name: "bolt"}))
}

func TestWithWidthSetsColumnWidth(t *testing.T) {
	c := StringColumn[widget]("Name", func(w widget) string { return w.Name }, WithWidth[widget](20))
	w, ok := c.Width()
	require.True(t, ok)
	require.Equal(t, 20.0, w)
}

func TestColumnWithoutWidthReportsUnset(t *testing.T) {
	c := StringColumn[widget]("Name", func(w widget) string { return w.Name })
	_, ok := c.Width()
	require.False(t, ok)
}

func TestNilHandlingResolve(t *testing.T) {
	keep := KeepEmpty[int]()
	resolved, useDefault := keep.resolve(5, true)
	require.Equal(t, 5, resolved)
	require.False(t, useDefault)

	def := DefaultValue(99)
	resolved2, useDefault2 := def.resolve(0, false)
	require.Equal(t, 99, resolved2)
	require.True(t, useDefault2)

	resolved3, useDefault3 := def.resolve(7, true)
	require.Equal(t, 7, resolved3)
	require.True(t, useDefault3)
}
