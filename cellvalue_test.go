package xlsxgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoolExprNativeVsText(t *testing.T) {
	require.True(t, OneZero().IsNative())
	require.False(t, TrueFalseExpr().IsNative())

	require.Equal(t, "TRUE", TrueFalseExpr().Text(true))
	require.Equal(t, "FALSE", TrueFalseExpr().Text(false))
	require.Equal(t, "YES", YesNoExpr().Text(true))
	require.Equal(t, "NO", YesNoExpr().Text(false))
	require.Equal(t, "T", TFExpr().Text(true))
	require.Equal(t, "F", TFExpr().Text(false))
	require.Equal(t, "si", CustomExpr("si", "no").Text(true))
}

func TestEmptyValueKind(t *testing.T) {
	require.Equal(t, CellKindEmpty, EmptyValue().Kind())
}

func TestPercentageValueHasNoEmptyVariant(t *testing.T) {
	v := PercentageValue(None[float64](), 2)
	require.Equal(t, CellKindPercentage, v.Kind())
	require.False(t, v.od.Valid)
}

func TestOptionSomeNone(t *testing.T) {
	s := Some(42)
	require.True(t, s.Valid)
	require.Equal(t, 42, s.Value)

	n := None[int]()
	require.False(t, n.Valid)
}
