package xlsxgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRGBColorIsOpaque(t *testing.T) {
	require.Equal(t, "FFFF0000", RGBColor(0xFF, 0x00, 0x00))
}

func TestARGBColorPreservesAlpha(t *testing.T) {
	require.Equal(t, "80112233", ARGBColor(0x80, 0x11, 0x22, 0x33))
}
