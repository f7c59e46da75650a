package xltime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/objects2xlsx/go-xlsxgen/internal/xltime"
)

func TestRoundTripAcrossSupportedRange(t *testing.T) {
	cases := []time.Time{
		time.Date(1900, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 30, 12, 30, 0, 0, time.UTC),
		time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC),
	}
	for _, want := range cases {
		serial := xltime.ToSerial(want)
		got := xltime.FromSerial(serial)
		require.WithinDuration(t, want, got, time.Second,
			"round trip for %v drifted beyond 8-decimal-place precision", want)
	}
}

func TestToSerialIsDeterministic(t *testing.T) {
	d := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, xltime.ToSerial(d), xltime.ToSerial(d))
}

func TestToSerialOrdersChronologically(t *testing.T) {
	earlier := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	require.Less(t, xltime.ToSerial(earlier), xltime.ToSerial(later))
}
