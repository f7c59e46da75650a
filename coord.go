package xlsxgen

import "strconv"

// ColumnNumberAsLetters converts a 1-based column number to Excel column
// letters (1 -> "A", 26 -> "Z", 27 -> "AA"), kept verbatim from
// adnsv-go-xl's xl.ColumnNumberAsLetters (row.go) since every sheet-engine
// and global-parts emitter needs it unchanged.
func ColumnNumberAsLetters(n int) string {
	if n < 1 {
		panic("xlsxgen: invalid column number")
	}
	var s string
	for n > 0 {
		s = string(rune((n-1)%26+65)) + s
		n = (n - 1) / 26
	}
	return s
}

// CellCoordAsString converts 1-based column/row numbers to an Excel cell
// reference ("A1", "AA10"), kept verbatim from adnsv-go-xl's
// xl.CellCoordAsString (row.go).
func CellCoordAsString(col, row int) string {
	if row < 0 {
		panic("xlsxgen: invalid row number")
	}
	return ColumnNumberAsLetters(col) + strconv.Itoa(row)
}
