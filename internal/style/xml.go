package style

import (
	"bytes"

	"github.com/adnsv/srw/xml"
)

// WriteStylesXML renders xl/styles.xml from the registry's five sub-tables,
// in the same element order and the same "count attribute == child count"
// discipline as adnsv-go-xl's writeStyles (writer.go), extended with
// <fills>/<borders>/<numFmts> built from real sub-tables instead of the
// teacher's single-default-only versions.
func (r *Registry) WriteStylesXML() []byte {
	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("styleSheet")
	x.Attr("xmlns", "http://schemas.openxmlformats.org/spreadsheetml/2006/main")

	customFmts := r.CustomNumFmts()
	if len(customFmts) > 0 {
		x.OTag("+numFmts").Attr("count", len(customFmts))
		for _, f := range customFmts {
			x.OTag("+numFmt").Attr("numFmtId", f.ID).Attr("formatCode", f.FormatStr).CTag()
		}
		x.CTag() // numFmts
	}

	x.OTag("+fonts").Attr("count", len(r.fonts))
	for i, f := range r.fonts {
		x.OTag("+font")
		if i == 0 {
			x.OTag("sz").Attr("val", 11).CTag()
			x.OTag("name").Attr("val", "Calibri").CTag()
			x.OTag("family").Attr("val", 2).CTag()
			x.CTag()
			continue
		}
		if f.Bold {
			x.OTag("b").CTag()
		}
		if f.Italic {
			x.OTag("i").CTag()
		}
		if f.Strikethrough {
			x.OTag("strike").CTag()
		}
		if f.Underline != UnderlineNone {
			if f.Underline == UnderlineSingle {
				x.OTag("u").CTag()
			} else {
				x.OTag("u").Attr("val", string(f.Underline)).CTag()
			}
		}
		size := f.Size
		if size == 0 {
			size = 11
		}
		x.OTag("sz").Attr("val", size).CTag()
		if f.Color != "" {
			x.OTag("color").Attr("rgb", f.Color).CTag()
		}
		x.OTag("name").Attr("val", "Calibri").CTag()
		x.OTag("family").Attr("val", 2).CTag()
		x.CTag() // font
	}
	x.CTag() // fonts

	x.OTag("+fills").Attr("count", len(r.fills))
	for i, f := range r.fills {
		x.OTag("+fill")
		if i == 0 {
			x.OTag("patternFill").Attr("patternType", "none").CTag()
		} else {
			x.OTag("patternFill").Attr("patternType", string(f.Pattern))
			if f.FgColor != "" {
				x.OTag("fgColor").Attr("rgb", f.FgColor).CTag()
			}
			if f.BgColor != "" {
				x.OTag("bgColor").Attr("rgb", f.BgColor).CTag()
			}
			x.CTag() // patternFill
		}
		x.CTag() // fill
	}
	x.CTag() // fills

	x.OTag("+borders").Attr("count", len(r.borders))
	for _, b := range r.borders {
		x.OTag("+border")
		writeBorderSide(x, "left", b.Left)
		writeBorderSide(x, "right", b.Right)
		writeBorderSide(x, "top", b.Top)
		writeBorderSide(x, "bottom", b.Bottom)
		x.OTag("+diagonal").CTag()
		x.CTag() // border
	}
	x.CTag() // borders

	x.OTag("+cellStyleXfs").Attr("count", 1)
	x.OTag("+xf")
	x.Attr("numFmtId", "0").Attr("fontId", "0").Attr("fillId", "0").Attr("borderId", "0")
	x.CTag()
	x.CTag() // cellStyleXfs

	x.OTag("+cellXfs").Attr("count", len(r.xfs))
	for _, xf := range r.xfs {
		x.OTag("+xf")
		x.Attr("numFmtId", numFmtIDString(xf.NumFmtID))
		x.Attr("fontId", xf.FontID)
		x.Attr("fillId", xf.FillID)
		x.Attr("borderId", xf.BorderID)
		x.Attr("xfId", "0")
		if xf.ApplyFont {
			x.Attr("applyFont", "1")
		}
		if xf.ApplyFill {
			x.Attr("applyFill", "1")
		}
		if xf.ApplyBorder {
			x.Attr("applyBorder", "1")
		}
		if xf.NumFmtID != 0 {
			x.Attr("applyNumberFormat", "1")
		}
		align := r.alignments[xf.AlignmentID]
		if xf.ApplyAlign {
			x.Attr("applyAlignment", "1")
			x.OTag("alignment")
			if align.Horizontal != "" {
				x.Attr("horizontal", string(align.Horizontal))
			}
			if align.Vertical != "" {
				x.Attr("vertical", string(align.Vertical))
			}
			if align.WrapText {
				x.Attr("wrapText", "1")
			}
			if align.Indent != 0 {
				x.Attr("indent", align.Indent)
			}
			x.CTag() // alignment
		}
		x.CTag() // xf
	}
	x.CTag() // cellXfs

	x.CTag() // styleSheet
	return bb.Bytes()
}

func writeBorderSide(x *xml.Writer, name string, s BorderSide) {
	x.OTag("+" + name)
	if !s.IsDefault() {
		x.Attr("style", s.Style)
		if s.Color != "" {
			x.OTag("color").Attr("rgb", s.Color).CTag()
		}
	}
	x.CTag()
}
