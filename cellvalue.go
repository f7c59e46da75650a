package xlsxgen

import (
	"time"

	"github.com/objects2xlsx/go-xlsxgen/internal/style"
)

// CellValueKind enumerates spec.md §3's closed CellValue sum type. Grounded
// on adnsv-go-xl's CellType (xl/cell.go) for the shape of a closed
// cell-type enumeration with a lower-case unexported `kind` field and
// exported constructor functions, but keeping typed Go values per variant
// instead of the teacher's single pre-rendered string field, since spec.md
// requires Option<T>-per-variant fidelity the teacher's design doesn't need.
type CellValueKind int

const (
	CellKindEmpty CellValueKind = iota
	CellKindString
	CellKindOptionalString
	CellKindInt
	CellKindOptionalInt
	CellKindDouble
	CellKindOptionalDouble
	CellKindDate
	CellKindOptionalDate
	CellKindBool
	CellKindOptionalBool
	CellKindURL
	CellKindOptionalURL
	CellKindPercentage
)

// boolExprKind is BoolExpr's closed set (spec.md §3).
type boolExprKind int

const (
	boolOneZero boolExprKind = iota
	boolTrueFalse
	boolYesNo
	boolTF
	boolCustom
)

// BoolExpr selects how a boolean CellValue renders. OneZero uses Excel's
// native boolean cell type; every other form renders as text and is
// interned as a shared string (spec.md §3/§6's boolean encoding table).
type BoolExpr struct {
	kind      boolExprKind
	trueText  string
	falseText string
}

// OneZero renders natively as Excel boolean (t="b", "1"/"0").
func OneZero() BoolExpr { return BoolExpr{kind: boolOneZero} }

// TrueFalseExpr renders as the shared strings "TRUE"/"FALSE".
func TrueFalseExpr() BoolExpr {
	return BoolExpr{kind: boolTrueFalse, trueText: "TRUE", falseText: "FALSE"}
}

// YesNoExpr renders as the shared strings "YES"/"NO".
func YesNoExpr() BoolExpr {
	return BoolExpr{kind: boolYesNo, trueText: "YES", falseText: "NO"}
}

// TFExpr renders as the shared strings "T"/"F".
func TFExpr() BoolExpr {
	return BoolExpr{kind: boolTF, trueText: "T", falseText: "F"}
}

// CustomExpr renders as caller-supplied true/false text.
func CustomExpr(trueText, falseText string) BoolExpr {
	return BoolExpr{kind: boolCustom, trueText: trueText, falseText: falseText}
}

// IsNative reports whether this expression uses Excel's native boolean
// encoding (t="b") rather than a shared-string text fallback.
func (e BoolExpr) IsNative() bool { return e.kind == boolOneZero }

// Text returns the shared-string text for v under this expression. Only
// meaningful when !IsNative().
func (e BoolExpr) Text(v bool) string {
	if v {
		return e.trueText
	}
	return e.falseText
}

// CellValue is spec.md §3's closed cell-value sum type. Only one group of
// fields is meaningful for a given kind; constructors below are the only
// supported way to build one.
type CellValue struct {
	kind CellValueKind

	s  string
	os Option[string]

	i  int64
	oi Option[int64]

	d  float64
	od Option[float64] // also backs Percentage's Option<d>

	dt  time.Time
	tz  *time.Location
	odt Option[time.Time]

	b    bool
	ob   Option[bool]
	expr BoolExpr

	u  string
	ou Option[string]

	percentPrecision int
}

// Kind reports which variant this value holds.
func (v CellValue) Kind() CellValueKind { return v.kind }

// EmptyValue is the Empty variant: no value element, may still carry style.
func EmptyValue() CellValue { return CellValue{kind: CellKindEmpty} }

func StringValue(s string) CellValue { return CellValue{kind: CellKindString, s: s} }

func OptionalStringValue(o Option[string]) CellValue {
	return CellValue{kind: CellKindOptionalString, os: o}
}

func IntValue(i int64) CellValue { return CellValue{kind: CellKindInt, i: i} }

func OptionalIntValue(o Option[int64]) CellValue {
	return CellValue{kind: CellKindOptionalInt, oi: o}
}

func DoubleValue(d float64) CellValue { return CellValue{kind: CellKindDouble, d: d} }

func OptionalDoubleValue(o Option[float64]) CellValue {
	return CellValue{kind: CellKindOptionalDouble, od: o}
}

// DateValue records dt and its timezone; tz may be nil. The emitted serial
// is always computed from dt's UTC instant; tz does not shift it.
func DateValue(dt time.Time, tz *time.Location) CellValue {
	return CellValue{kind: CellKindDate, dt: dt, tz: tz}
}

func OptionalDateValue(o Option[time.Time], tz *time.Location) CellValue {
	return CellValue{kind: CellKindOptionalDate, odt: o, tz: tz}
}

func BoolValue(b bool, expr BoolExpr) CellValue {
	return CellValue{kind: CellKindBool, b: b, expr: expr}
}

func OptionalBoolValue(o Option[bool], expr BoolExpr) CellValue {
	return CellValue{kind: CellKindOptionalBool, ob: o, expr: expr}
}

func URLValue(u string) CellValue { return CellValue{kind: CellKindURL, u: u} }

func OptionalURLValue(o Option[string]) CellValue {
	return CellValue{kind: CellKindOptionalURL, ou: o}
}

// PercentageValue is spec.md §3's Percentage(Option<d>, precision) variant;
// there is no optional/non-optional split for percentages since the spec
// only names one variant.
func PercentageValue(o Option[float64], precision int) CellValue {
	return CellValue{kind: CellKindPercentage, od: o, percentPrecision: precision}
}

// styleKind reports which numFmt-derivation rule (spec.md §4.3) applies
// when this value is interned into the style registry. It returns the
// small style.ValueKind enum rather than the full CellValue so
// internal/style stays free of an import cycle (it is imported here, not
// the reverse).
func (v CellValue) styleKind() style.ValueKind {
	switch v.kind {
	case CellKindDate, CellKindOptionalDate:
		return style.ValueKindDate
	case CellKindPercentage:
		return style.ValueKindPercentage
	default:
		return style.ValueKindOther
	}
}
