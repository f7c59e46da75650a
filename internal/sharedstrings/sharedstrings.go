// Package sharedstrings implements the insertion-ordered, deduplicated
// shared-string table spec.md §4.4 describes, grounded on adnsv-go-xl's
// Writer.SharedString (writer.go): a map[string]int plus append-on-miss.
package sharedstrings

import (
	"bytes"

	"github.com/adnsv/srw/xml"
	"golang.org/x/text/unicode/norm"
)

// Registry interns strings and returns their zero-based index. Intern is
// idempotent: the same string (after NFC normalization) always yields the
// same index, and distinct strings get distinct indices — spec.md §8's
// universal invariant.
type Registry struct {
	strings []string
	index   map[string]int
	refs    int // total cell references, for the <sst count=...> attribute
}

// NewRegistry returns an empty shared-string registry.
func NewRegistry() *Registry {
	return &Registry{index: map[string]int{}}
}

// Intern normalizes s to NFC (so visually-identical composed/decomposed
// Unicode sequences dedupe to one entry — CynicDog-xlmd depends on
// golang.org/x/text for the same class of correctness) and returns its
// index, inserting it if not already present.
func (r *Registry) Intern(s string) int {
	s = norm.NFC.String(s)
	r.refs++
	if i, ok := r.index[s]; ok {
		return i
	}
	i := len(r.strings)
	r.strings = append(r.strings, s)
	r.index[s] = i
	return i
}

// Len returns the number of unique interned strings.
func (r *Registry) Len() int { return len(r.strings) }

// WriteSharedStringsXML renders xl/sharedStrings.xml. count is the total
// number of Intern calls (one per cell reference) and uniqueCount is the
// number of distinct interned strings.
func (r *Registry) WriteSharedStringsXML() []byte {
	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("sst")
	x.Attr("xmlns", "http://schemas.openxmlformats.org/spreadsheetml/2006/main")
	x.Attr("count", r.refs)
	x.Attr("uniqueCount", len(r.strings))

	for _, s := range r.strings {
		x.OTag("+si")
		x.OTag("t").Write(s).CTag()
		x.CTag()
	}

	x.CTag() // sst
	return bb.Bytes()
}
