package style

import "strconv"

// BuiltInNumFmt mirrors TsubasaBE-go-xlsb's styles.BuiltInNumFmt table
// (ECMA-376 §18.8.30): built-in numFmtId -> canonical format string. Used
// here in reverse of its read-side role: before minting a custom numFmt we
// check whether a built-in id already renders the value the way spec.md
// §4.3 wants.
var BuiltInNumFmt = map[int]string{
	0:  "General",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	9:  "0%",
	10: "0.00%",
	14: "mm-dd-yy",
	22: "m/d/yy h:mm",
}

const (
	// firstCustomNumFmtID is the first id ECMA-376 reserves for
	// workbook-defined (non-built-in) number formats.
	firstCustomNumFmtID = 164

	// builtInDateTimeFmtID is the built-in id every date cell resolves to:
	// spec.md's CellValue has no date-only variant distinct from datetime,
	// so there is no fallback branch to a date-only or custom format.
	builtInDateTimeFmtID = 22
)

// NumFmtEntry is one row of the registry's numFmt sub-table: either a
// built-in id (FormatStr empty, BuiltIn true) or a custom id/string pair.
type NumFmtEntry struct {
	ID        int
	FormatStr string
	BuiltIn   bool
}

// numFmtForDate returns the numFmtId to use for a date/datetime cell, and
// the custom-format registration to add to the table (FormatStr=="" if a
// built-in id suffices).
func numFmtForDate() (id int, customFmt string) {
	return builtInDateTimeFmtID, ""
}

// numFmtForPercentage builds spec.md §4.3's percentage numFmt string:
// "0." + "0"*p + "%", or "0%" when p==0.
func numFmtForPercentage(precision int) string {
	if precision <= 0 {
		return "0%"
	}
	return "0." + zeros(precision) + "%"
}

func zeros(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}

// numFmtIDString renders a numFmtId as its XML attribute value.
func numFmtIDString(id int) string { return strconv.Itoa(id) }
