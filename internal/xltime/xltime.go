// Package xltime converts between time.Time and Excel's 1900-based serial
// date numbers per spec.md §6. The epoch (1899-12-30) is chosen, as spec.md
// notes, to absorb Excel's 1900-leap-year bug so no special-casing of day
// 60 is needed the way TsubasaBE-go-xlsb's read-side convertSerial does for
// the 1899-12-31 epoch (numfmt.go's `intPart >= 61` branch).
package xltime

import (
	"math"
	"time"
)

// excelEpoch is the day Excel serial 0 represents.
var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// empiricalOffsetDays is the unexplained correction spec.md §6 names
// ("-0.00396991 days"). Open Question #2 in DESIGN.md: adopted as
// specified rather than re-derived, since spec.md is explicit about it and
// reading (where a from-scratch derivation would matter) is a Non-goal.
const empiricalOffsetDays = -0.00396991

// serialPrecision is the number of decimal places spec.md §6 mandates.
const serialPrecision = 8

// ToSerial converts t to an Excel serial date number: days since
// 1899-12-30, fractional part encoding time-of-day, rounded to 8 decimal
// places, with the empirical offset applied.
func ToSerial(t time.Time) float64 {
	t = t.UTC()
	// Whole seconds and nanoseconds are taken separately: time.Duration
	// (and so t.Sub) saturates at about 292 years, well short of 9999-12-31.
	days := float64(t.Unix()-excelEpoch.Unix())/86400 + float64(t.Nanosecond())/(86400*1e9)
	days += empiricalOffsetDays
	return roundTo(days, serialPrecision)
}

// FromSerial converts an Excel serial date number back to a UTC time.Time,
// inverting the empirical offset ToSerial applies. Used only by this
// library's own round-trip tests — reading .xlsx files is a Non-goal, so
// this is not part of any public parsing surface.
func FromSerial(serial float64) time.Time {
	days := serial - empiricalOffsetDays
	whole := math.Floor(days)
	frac := time.Duration((days - whole) * float64(24*time.Hour))
	return excelEpoch.AddDate(0, 0, int(whole)).Add(frac)
}

func roundTo(v float64, decimals int) float64 {
	scale := 1.0
	for i := 0; i < decimals; i++ {
		scale *= 10
	}
	if v >= 0 {
		return float64(int64(v*scale+0.5)) / scale
	}
	return float64(int64(v*scale-0.5)) / scale
}
