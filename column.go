package xlsxgen

import "time"

// NilHandling is a per-column policy for what happens when an extraction
// accessor produces no value (spec.md §3 GLOSSARY, §4.1). KeepEmpty and
// DefaultValue are the only two constructors; the zero value behaves as
// KeepEmpty.
type NilHandling[T any] struct {
	hasDefault bool
	def        T
}

// KeepEmpty renders an absent value as CellKindEmpty (no value element) and
// a present value as the optional variant carrying Some.
func KeepEmpty[T any]() NilHandling[T] { return NilHandling[T]{} }

// DefaultValue substitutes v for an absent value; the engine always sees a
// resolved non-optional value downstream (spec.md §4.1's invariant).
func DefaultValue[T any](v T) NilHandling[T] { return NilHandling[T]{hasDefault: true, def: v} }

func (n NilHandling[T]) resolve(v T, present bool) (resolved T, useDefault bool) {
	if n.hasDefault {
		if !present {
			return n.def, true
		}
		return v, true
	}
	return v, false
}

// Column binds a display name, width, header/body style carriers, a
// visibility predicate, and a generator that produces a CellValue from a
// record — spec.md §9's re-architecture note for "type-erased column
// wrapper": an interface with generate_cell_value/should_generate plus
// accessors, expressed here as a concrete generic struct with those exact
// methods rather than an interface, since Column[R] is already the
// homogeneous-in-R unit a Sheet[R] holds (no heterogeneous-column
// collection is needed within one sheet).
type Column[R any] struct {
	name        string
	width       *float64
	headerStyle *CellStyle
	bodyStyle   *CellStyle
	when        func(R) bool
	generate    func(R) CellValue
}

// ColumnOption configures optional Column fields: width, header/body style,
// visibility predicate, conditional mapping.
type ColumnOption[R any] func(*Column[R])

// WithWidth sets the column's width in character units (spec.md §3).
func WithWidth[R any](w float64) ColumnOption[R] {
	return func(c *Column[R]) { c.width = &w }
}

// WithHeaderStyle sets the column's header-cell style carrier.
func WithHeaderStyle[R any](s *CellStyle) ColumnOption[R] {
	return func(c *Column[R]) { c.headerStyle = s }
}

// WithBodyStyle sets the column's body-cell style carrier.
func WithBodyStyle[R any](s *CellStyle) ColumnOption[R] {
	return func(c *Column[R]) { c.bodyStyle = s }
}

// When sets the column's visibility predicate (spec.md §4.1). The active-
// column set is determined by evaluating this against the sheet's first
// record; an empty sheet keeps all columns active.
func When[R any](pred func(R) bool) ColumnOption[R] {
	return func(c *Column[R]) { c.when = pred }
}

// WithConditional installs spec.md §4.1's conditional mapping: filter
// selects whenTrue or whenFalse per record, evaluated before nil handling
// (nil handling is already baked into each producer's own construction).
func WithConditional[R any](filter func(R) bool, whenTrue, whenFalse func(R) CellValue) ColumnOption[R] {
	return func(c *Column[R]) {
		base := c.generate
		c.generate = func(r R) CellValue {
			if filter(r) {
				return whenTrue(r)
			}
			if whenFalse != nil {
				return whenFalse(r)
			}
			return base(r)
		}
	}
}

func newColumn[R any](name string, generate func(R) CellValue, opts []ColumnOption[R]) *Column[R] {
	c := &Column[R]{name: name, generate: generate}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the column's display name.
func (c *Column[R]) Name() string { return c.name }

// Width returns the column's configured width and whether one was set;
// an unset width omits the column from the sheet's <cols> element.
func (c *Column[R]) Width() (float64, bool) {
	if c.width == nil {
		return 0, false
	}
	return *c.width, true
}

// HeaderStyle returns the column's header-cell style carrier, or nil.
func (c *Column[R]) HeaderStyle() *CellStyle { return c.headerStyle }

// BodyStyle returns the column's body-cell style carrier, or nil.
func (c *Column[R]) BodyStyle() *CellStyle { return c.bodyStyle }

// ShouldGenerate reports whether this column is active for r.
func (c *Column[R]) ShouldGenerate(r R) bool {
	if c.when == nil {
		return true
	}
	return c.when(r)
}

// GenerateCellValue extracts and transforms r into this column's CellValue.
func (c *Column[R]) GenerateCellValue(r R) CellValue { return c.generate(r) }

// MapAccessor composes an accessor R->A with a pure transform A->B,
// re-expressing spec.md §4.1's transformation chain ("each call ... consumes
// the current accessor ... wraps the result into the new terminal output
// config") as ordinary function composition, since Go has no
// closure-arity-based overload resolution to dispatch on.
func MapAccessor[R, A, B any](get func(R) A, fn func(A) B) func(R) B {
	return func(r R) B { return fn(get(r)) }
}

// --- String ---

// StringColumn binds a required (non-optional) string field.
func StringColumn[R any](name string, get func(R) string, opts ...ColumnOption[R]) *Column[R] {
	return newColumn(name, func(r R) CellValue { return StringValue(get(r)) }, opts)
}

// OptionalStringColumn binds an optional string field with the given
// nil-handling policy.
func OptionalStringColumn[R any](name string, get func(R) Option[string], nh NilHandling[string], opts ...ColumnOption[R]) *Column[R] {
	generate := func(r R) CellValue {
		o := get(r)
		if resolved, useDefault := nh.resolve(o.Value, o.Valid); useDefault {
			return StringValue(resolved)
		}
		if !o.Valid {
			return EmptyValue()
		}
		return OptionalStringValue(Some(o.Value))
	}
	return newColumn(name, generate, opts)
}

// --- Int ---

func IntColumn[R any](name string, get func(R) int64, opts ...ColumnOption[R]) *Column[R] {
	return newColumn(name, func(r R) CellValue { return IntValue(get(r)) }, opts)
}

func OptionalIntColumn[R any](name string, get func(R) Option[int64], nh NilHandling[int64], opts ...ColumnOption[R]) *Column[R] {
	generate := func(r R) CellValue {
		o := get(r)
		if resolved, useDefault := nh.resolve(o.Value, o.Valid); useDefault {
			return IntValue(resolved)
		}
		if !o.Valid {
			return EmptyValue()
		}
		return OptionalIntValue(Some(o.Value))
	}
	return newColumn(name, generate, opts)
}

// --- Double ---

func DoubleColumn[R any](name string, get func(R) float64, opts ...ColumnOption[R]) *Column[R] {
	return newColumn(name, func(r R) CellValue { return DoubleValue(get(r)) }, opts)
}

func OptionalDoubleColumn[R any](name string, get func(R) Option[float64], nh NilHandling[float64], opts ...ColumnOption[R]) *Column[R] {
	generate := func(r R) CellValue {
		o := get(r)
		if resolved, useDefault := nh.resolve(o.Value, o.Valid); useDefault {
			return DoubleValue(resolved)
		}
		if !o.Valid {
			return EmptyValue()
		}
		return OptionalDoubleValue(Some(o.Value))
	}
	return newColumn(name, generate, opts)
}

// --- Bool ---

func BoolColumn[R any](name string, get func(R) bool, expr BoolExpr, opts ...ColumnOption[R]) *Column[R] {
	return newColumn(name, func(r R) CellValue { return BoolValue(get(r), expr) }, opts)
}

func OptionalBoolColumn[R any](name string, get func(R) Option[bool], expr BoolExpr, nh NilHandling[bool], opts ...ColumnOption[R]) *Column[R] {
	generate := func(r R) CellValue {
		o := get(r)
		if resolved, useDefault := nh.resolve(o.Value, o.Valid); useDefault {
			return BoolValue(resolved, expr)
		}
		if !o.Valid {
			return EmptyValue()
		}
		return OptionalBoolValue(Some(o.Value), expr)
	}
	return newColumn(name, generate, opts)
}

// --- Date ---

func DateColumn[R any](name string, get func(R) time.Time, tz *time.Location, opts ...ColumnOption[R]) *Column[R] {
	return newColumn(name, func(r R) CellValue { return DateValue(get(r), tz) }, opts)
}

func OptionalDateColumn[R any](name string, get func(R) Option[time.Time], tz *time.Location, nh NilHandling[time.Time], opts ...ColumnOption[R]) *Column[R] {
	generate := func(r R) CellValue {
		o := get(r)
		if resolved, useDefault := nh.resolve(o.Value, o.Valid); useDefault {
			return DateValue(resolved, tz)
		}
		if !o.Valid {
			return EmptyValue()
		}
		return OptionalDateValue(Some(o.Value), tz)
	}
	return newColumn(name, generate, opts)
}

// --- URL ---

func URLColumn[R any](name string, get func(R) string, opts ...ColumnOption[R]) *Column[R] {
	return newColumn(name, func(r R) CellValue { return URLValue(get(r)) }, opts)
}

func OptionalURLColumn[R any](name string, get func(R) Option[string], nh NilHandling[string], opts ...ColumnOption[R]) *Column[R] {
	generate := func(r R) CellValue {
		o := get(r)
		if resolved, useDefault := nh.resolve(o.Value, o.Valid); useDefault {
			return URLValue(resolved)
		}
		if !o.Valid {
			return EmptyValue()
		}
		return OptionalURLValue(Some(o.Value))
	}
	return newColumn(name, generate, opts)
}

// --- Percentage ---

// PercentageColumn binds a required percentage field, rendered at the
// given decimal precision (spec.md §4.3's "0." + "0"*p + "%" numFmt).
func PercentageColumn[R any](name string, get func(R) float64, precision int, opts ...ColumnOption[R]) *Column[R] {
	return newColumn(name, func(r R) CellValue {
		return PercentageValue(Some(get(r)), precision)
	}, opts)
}

func OptionalPercentageColumn[R any](name string, get func(R) Option[float64], precision int, nh NilHandling[float64], opts ...ColumnOption[R]) *Column[R] {
	generate := func(r R) CellValue {
		o := get(r)
		if resolved, useDefault := nh.resolve(o.Value, o.Valid); useDefault {
			return PercentageValue(Some(resolved), precision)
		}
		return PercentageValue(o, precision)
	}
	return newColumn(name, generate, opts)
}
