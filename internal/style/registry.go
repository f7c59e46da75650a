package style

// ValueKind tells the registry which numFmt-derivation rule (spec.md §4.3)
// applies to the cell being interned. It is a small closed enum rather than
// the root package's full CellValue type so this package stays free of an
// import cycle (cellvalue.go depends on style, not the reverse).
type ValueKind int

const (
	ValueKindOther ValueKind = iota
	ValueKindDate
	ValueKindPercentage
)

// Registry interns fonts, fills, borders, alignments, number formats, and
// composite XFs. Each sub-table is an insertion-ordered, structurally-deduped
// map from value to zero-based index, mirroring adnsv-go-xl's
// Writer.FindFont/FindXF linear-scan-then-append pattern (writer.go),
// generalized from two sub-tables to all five spec.md §4.3 names.
//
// Index 0 of every sub-table is the Excel-mandated default; Registry seeds
// each sub-table with its default entry at construction (the zero value,
// except the fill, which is the explicit "none" pattern) so an
// intern of an all-default CellStyle yields XF 0, consistent with spec.md's
// invariant "index 0 in every sub-table is reserved for the Excel default".
type Registry struct {
	fonts      []Font
	fills      []Fill
	borders    []Border
	alignments []Alignment
	numFmts    []NumFmtEntry
	numFmtSeen map[string]int // FormatStr -> id, for custom format dedup

	xfs    []XF
	xfSeen map[XF]int
}

// NewRegistry returns a Registry pre-seeded with the five Excel-mandated
// default sub-table entries at index 0.
func NewRegistry() *Registry {
	r := &Registry{
		fonts:      []Font{{}},
		fills:      []Fill{{Pattern: FillPatternNone}},
		borders:    []Border{{}},
		alignments: []Alignment{{}},
		numFmts:    []NumFmtEntry{{ID: 0, BuiltIn: true}},
		numFmtSeen: map[string]int{},
		xfs:        []XF{{}},
		xfSeen:     map[XF]int{},
	}
	r.xfSeen[XF{}] = 0
	return r
}

func (r *Registry) internFont(f *Font) int {
	if f == nil || f.IsDefault() {
		return 0
	}
	for i, existing := range r.fonts {
		if existing == *f {
			return i
		}
	}
	r.fonts = append(r.fonts, *f)
	return len(r.fonts) - 1
}

func (r *Registry) internFill(f *Fill) int {
	if f == nil || f.IsDefault() {
		return 0
	}
	for i, existing := range r.fills {
		if existing == *f {
			return i
		}
	}
	r.fills = append(r.fills, *f)
	return len(r.fills) - 1
}

func (r *Registry) internBorder(b *Border) int {
	if b == nil || b.IsDefault() {
		return 0
	}
	for i, existing := range r.borders {
		if existing == *b {
			return i
		}
	}
	r.borders = append(r.borders, *b)
	return len(r.borders) - 1
}

func (r *Registry) internAlignment(a *Alignment) int {
	if a == nil || a.IsDefault() {
		return 0
	}
	for i, existing := range r.alignments {
		if existing == *a {
			return i
		}
	}
	r.alignments = append(r.alignments, *a)
	return len(r.alignments) - 1
}

// internNumFmt resolves the numFmtId for style+kind per spec.md §4.3:
// an explicit style.NumFmt wins; otherwise dates/percentages derive one;
// otherwise General (id 0).
func (r *Registry) internNumFmt(explicit string, kind ValueKind, percentPrecision int) int {
	switch {
	case explicit != "":
		return r.internCustomNumFmt(explicit)
	case kind == ValueKindDate:
		id, custom := numFmtForDate()
		if custom == "" {
			return id
		}
		return r.internCustomNumFmt(custom)
	case kind == ValueKindPercentage:
		return r.internCustomNumFmt(numFmtForPercentage(percentPrecision))
	default:
		return 0
	}
}

func (r *Registry) internCustomNumFmt(formatStr string) int {
	if formatStr == "" || formatStr == "General" {
		return 0
	}
	for builtinID, builtinStr := range BuiltInNumFmt {
		if builtinStr == formatStr {
			return builtinID
		}
	}
	if id, ok := r.numFmtSeen[formatStr]; ok {
		return id
	}
	id := firstCustomNumFmtID + (len(r.numFmts) - 1)
	r.numFmts = append(r.numFmts, NumFmtEntry{ID: id, FormatStr: formatStr})
	r.numFmtSeen[formatStr] = id
	return id
}

// Intern resolves a CellStyle (plus the value-kind/percentage-precision
// hint the cell carries) into a cellXfs index, the composite XF's own
// dedup key. Matches spec.md §4.3's contract: intern(CellStyle, CellValue)
// -> styleId.
func (r *Registry) Intern(cs *CellStyle, kind ValueKind, percentPrecision int) int {
	var xf XF
	if cs != nil {
		xf.FontID = r.internFont(cs.Font)
		xf.FillID = r.internFill(cs.Fill)
		xf.BorderID = r.internBorder(cs.Border)
		xf.AlignmentID = r.internAlignment(cs.Alignment)
		xf.NumFmtID = r.internNumFmt(cs.NumFmt, kind, percentPrecision)
	} else {
		xf.NumFmtID = r.internNumFmt("", kind, percentPrecision)
	}
	xf.ApplyFont = xf.FontID != 0
	xf.ApplyFill = xf.FillID != 0
	xf.ApplyAlign = xf.AlignmentID != 0
	xf.ApplyBorder = xf.BorderID != 0

	if id, ok := r.xfSeen[xf]; ok {
		return id
	}
	r.xfs = append(r.xfs, xf)
	id := len(r.xfs) - 1
	r.xfSeen[xf] = id
	return id
}

// Fonts, Fills, Borders, Alignments, XFs expose the interned sub-tables in
// insertion order; custom number formats are exposed by CustomNumFmts.
// WriteStylesXML (xml.go) reads the same tables directly.
func (r *Registry) Fonts() []Font           { return r.fonts }
func (r *Registry) Fills() []Fill           { return r.fills }
func (r *Registry) Borders() []Border       { return r.borders }
func (r *Registry) Alignments() []Alignment { return r.alignments }
func (r *Registry) XFs() []XF               { return r.xfs }

// CustomNumFmts returns the registered custom (id >= 164) number formats in
// insertion order, for the <numFmts> element.
func (r *Registry) CustomNumFmts() []NumFmtEntry {
	out := make([]NumFmtEntry, 0, len(r.numFmts))
	for _, e := range r.numFmts {
		if !e.BuiltIn {
			out = append(out, e)
		}
	}
	return out
}
