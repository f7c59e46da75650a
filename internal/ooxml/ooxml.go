// Package ooxml assembles the eight mandatory SpreadsheetML package parts
// spec.md §4.7 names, grounded on adnsv-go-xl's Writer (xl/writer.go):
// the rId-counter bookkeeping, the golang.org/x/exp deterministic-map-
// iteration helper, and the per-part XML shapes are all carried from
// there, generalized from "workbook owns everything" to "caller supplies
// already-rendered sheet/styles/sharedStrings XML, this package only
// wires the relationships and global parts around them."
package ooxml

import (
	"bytes"
	"fmt"

	"github.com/adnsv/srw/xml"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// RelInfo is one relationship entry, identical in shape to adnsv-go-xl's
// Writer.RelInfo (xl/writer.go).
type RelInfo struct {
	Type   string
	Target string
}

// SheetMeta is the minimal per-sheet metadata Assemble needs: its 1-based
// id (used for both the workbook sheet rId and the part filename) and its
// already-sanitized display name.
type SheetMeta struct {
	SheetID int
	Name    string
}

// BookMeta carries the workbook-level metadata Assemble needs to render
// docProps/core.xml, docProps/app.xml and workbook.xml.
type BookMeta struct {
	Title   string
	Creator string
	AppName string
	Created string // W3CDTF UTC timestamp, e.g. "2026-07-30T12:00:00Z"
	Sheets  []SheetMeta
}

// Part is one rendered package part awaiting placement in the zip archive.
type Part struct {
	Path string
	Data []byte
}

// Assembler mirrors adnsv-go-xl's Writer bookkeeping fields (GlobalRels,
// WorkbookRels, content-type tables, rId counters) without owning any
// sheet-generation logic itself.
type Assembler struct {
	lastGlobalID   int
	lastWorkbookID int

	GlobalRels   map[string]RelInfo
	WorkbookRels map[string]RelInfo

	DefaultContentTypes map[string]string // extension -> content type
	PartContentTypes    map[string]string // part path -> content type override
}

// NewAssembler returns an Assembler with empty relationship/content-type
// tables, ready for Assemble to populate.
func NewAssembler() *Assembler {
	return &Assembler{
		GlobalRels:          map[string]RelInfo{},
		WorkbookRels:        map[string]RelInfo{},
		DefaultContentTypes: map[string]string{},
		PartContentTypes:    map[string]string{},
	}
}

func (a *Assembler) nextGlobalID() string {
	a.lastGlobalID++
	return fmt.Sprintf("rId%d", a.lastGlobalID)
}

func (a *Assembler) nextWorkbookID() string {
	a.lastWorkbookID++
	return fmt.Sprintf("rId%d", a.lastWorkbookID)
}

// Assemble renders every SpreadsheetML package part and returns them in
// write order: [Content_Types].xml first, then sheets, workbook.xml,
// styles.xml (if present), sharedStrings.xml (if present),
// docProps/core.xml, docProps/app.xml, xl/_rels/workbook.xml.rels and
// _rels/.rels — following adnsv-go-xl's Writer.Write orchestration order
// (xl/writer.go) except that the content-types part is moved to the front.
func Assemble(meta BookMeta, sheetXML map[int][]byte, stylesXML, sharedStringsXML []byte) []Part {
	a := NewAssembler()
	a.DefaultContentTypes["rels"] = "application/vnd.openxmlformats-package.relationships+xml"
	a.DefaultContentTypes["xml"] = "application/xml"

	var parts []Part

	for _, sm := range meta.Sheets {
		path := fmt.Sprintf("xl/worksheets/sheet%d.xml", sm.SheetID)
		parts = append(parts, Part{Path: path, Data: sheetXML[sm.SheetID]})
		a.PartContentTypes["/"+path] = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"
	}

	wbXML := buildWorkbookXML(meta, a)
	parts = append(parts, Part{Path: "xl/workbook.xml", Data: wbXML})
	a.PartContentTypes["/xl/workbook.xml"] = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"
	a.GlobalRels[a.nextGlobalID()] = RelInfo{
		Type:   "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument",
		Target: "xl/workbook.xml",
	}

	if len(stylesXML) > 0 {
		parts = append(parts, Part{Path: "xl/styles.xml", Data: stylesXML})
		a.PartContentTypes["/xl/styles.xml"] = "application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"
		a.WorkbookRels[a.nextWorkbookID()] = RelInfo{
			Type:   "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles",
			Target: "styles.xml",
		}
	}

	if len(sharedStringsXML) > 0 {
		parts = append(parts, Part{Path: "xl/sharedStrings.xml", Data: sharedStringsXML})
		a.PartContentTypes["/xl/sharedStrings.xml"] = "application/vnd.openxmlformats-officedocument.spreadsheetml.sharedStrings+xml"
		a.WorkbookRels[a.nextWorkbookID()] = RelInfo{
			Type:   "http://schemas.openxmlformats.org/officeDocument/2006/relationships/sharedStrings",
			Target: "sharedStrings.xml",
		}
	}

	coreXML := buildCoreXML(meta)
	parts = append(parts, Part{Path: "docProps/core.xml", Data: coreXML})
	a.PartContentTypes["/docProps/core.xml"] = "application/vnd.openxmlformats-package.core-properties+xml"
	a.GlobalRels[a.nextGlobalID()] = RelInfo{
		Type:   "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties",
		Target: "docProps/core.xml",
	}

	appXML := buildAppXML(meta)
	parts = append(parts, Part{Path: "docProps/app.xml", Data: appXML})
	a.PartContentTypes["/docProps/app.xml"] = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	a.GlobalRels[a.nextGlobalID()] = RelInfo{
		Type:   "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties",
		Target: "docProps/app.xml",
	}

	parts = append(parts, Part{Path: "xl/_rels/workbook.xml.rels", Data: buildRelsXML(a.WorkbookRels)})
	parts = append(parts, Part{Path: "_rels/.rels", Data: buildRelsXML(a.GlobalRels)})

	contentTypes := Part{Path: "[Content_Types].xml", Data: buildContentTypesXML(a.DefaultContentTypes, a.PartContentTypes)}
	return append([]Part{contentTypes}, parts...)
}

// buildWorkbookXML renders workbook.xml and, for each sheet, registers its
// worksheet relationship into a.WorkbookRels under the same rId it writes
// as that <sheet>'s r:id — the two must stay in lockstep or Excel can't
// resolve a sheet to its part.
func buildWorkbookXML(meta BookMeta, a *Assembler) []byte {
	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()
	x.OTag("workbook")
	x.Attr("xmlns", "http://schemas.openxmlformats.org/spreadsheetml/2006/main")
	x.Attr("xmlns:r", "http://schemas.openxmlformats.org/officeDocument/2006/relationships")

	x.OTag("+sheets")
	for _, sm := range meta.Sheets {
		rid := a.nextWorkbookID()
		a.WorkbookRels[rid] = RelInfo{
			Type:   "http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet",
			Target: fmt.Sprintf("worksheets/sheet%d.xml", sm.SheetID),
		}
		x.OTag("+sheet").Attr("name", sm.Name).Attr("sheetId", sm.SheetID).Attr("r:id", rid).CTag()
	}
	x.CTag() // sheets

	x.CTag() // workbook
	return bb.Bytes()
}

func buildCoreXML(meta BookMeta) []byte {
	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()
	x.OTag("cp:coreProperties")
	x.Attr("xmlns:cp", "http://schemas.openxmlformats.org/package/2006/metadata/core-properties")
	x.Attr("xmlns:dc", "http://purl.org/dc/elements/1.1/")
	x.Attr("xmlns:dcterms", "http://purl.org/dc/terms/")
	x.Attr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance")

	if meta.Title != "" {
		x.OTag("+dc:title").Write(meta.Title).CTag()
	}
	if meta.Creator != "" {
		x.OTag("+dc:creator").Write(meta.Creator).CTag()
	}
	if meta.Created != "" {
		x.OTag("+dcterms:created").Attr("xsi:type", "dcterms:W3CDTF").Write(meta.Created).CTag()
		x.OTag("+dcterms:modified").Attr("xsi:type", "dcterms:W3CDTF").Write(meta.Created).CTag()
	}

	x.CTag()
	return bb.Bytes()
}

func buildAppXML(meta BookMeta) []byte {
	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()
	x.OTag("Properties")
	x.Attr("xmlns", "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties")
	x.Attr("xmlns:vt", "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes")

	appName := meta.AppName
	if appName == "" {
		appName = "go-xlsxgen"
	}
	x.OTag("+Application").Write(appName).CTag()

	x.OTag("+HeadingPairs")
	x.OTag("+vt:vector").Attr("size", 2).Attr("baseType", "variant")
	x.OTag("+vt:variant")
	x.OTag("+vt:lpstr").Write("Worksheets").CTag()
	x.CTag()
	x.OTag("+vt:variant")
	x.OTag("+vt:i4").Write(fmt.Sprintf("%d", len(meta.Sheets))).CTag()
	x.CTag()
	x.CTag() // vector
	x.CTag() // HeadingPairs

	x.OTag("+TitlesOfParts")
	x.OTag("+vt:vector").Attr("size", len(meta.Sheets)).Attr("baseType", "lpstr")
	for _, sm := range meta.Sheets {
		x.OTag("+vt:lpstr").Write(sm.Name).CTag()
	}
	x.CTag() // vector
	x.CTag() // TitlesOfParts

	x.CTag() // Properties
	return bb.Bytes()
}

func buildRelsXML(rels map[string]RelInfo) []byte {
	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()
	x.OTag("Relationships")
	x.Attr("xmlns", "http://schemas.openxmlformats.org/package/2006/relationships")

	enumerate(rels, func(id string, ri RelInfo) {
		x.OTag("+Relationship").Attr("Id", id).Attr("Type", ri.Type).Attr("Target", ri.Target).CTag()
	})

	x.CTag()
	return bb.Bytes()
}

func buildContentTypesXML(defaults, overrides map[string]string) []byte {
	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()
	x.OTag("Types")
	x.Attr("xmlns", "http://schemas.openxmlformats.org/package/2006/content-types")

	enumerate(defaults, func(ext, ct string) {
		x.OTag("+Default").Attr("Extension", ext).Attr("ContentType", ct).CTag()
	})
	enumerate(overrides, func(part, ct string) {
		x.OTag("+Override").Attr("PartName", part).Attr("ContentType", ct).CTag()
	})

	x.CTag()
	return bb.Bytes()
}

// enumerate iterates m in deterministic key order, replicating
// adnsv-go-xl's golang.org/x/exp-based helper of the same shape
// (xl/writer.go) so repeated Assemble calls over the same inputs produce
// byte-identical XML.
func enumerate[M ~map[K]V, K constraints.Ordered, V any](m M, callback func(k K, v V)) {
	keys := maps.Keys(m)
	slices.Sort(keys)
	for _, k := range keys {
		callback(k, m[k])
	}
}
