package xlsxgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fontDoc is the YAML shape of a font override, grounded on Chartly's
// codex-runner profile.go tagged-struct-over-yaml.v3 idiom: plain structs
// with yaml tags, no schema-validation layer on top.
type fontDoc struct {
	Bold   bool    `yaml:"bold"`
	Italic bool    `yaml:"italic"`
	Size   float64 `yaml:"size"`
	Color  string  `yaml:"color"`
}

func (f *fontDoc) toFont() *Font {
	if f == nil {
		return nil
	}
	return &Font{Bold: f.Bold, Italic: f.Italic, Size: f.Size, Color: f.Color}
}

// bookStyleDoc is the YAML document shape LoadBookStyleFromYAML reads:
// workbook metadata plus the handful of sheet-level defaults and header/
// body font overrides spec.md's configuration surface names.
type bookStyleDoc struct {
	Title   string `yaml:"title"`
	Creator string `yaml:"creator"`
	AppName string `yaml:"app_name"`

	DefaultColumnWidth float64 `yaml:"default_column_width"`
	DefaultRowHeight   float64 `yaml:"default_row_height"`
	Zoom               int     `yaml:"zoom"`

	HeaderFont *fontDoc `yaml:"header_font"`
	BodyFont   *fontDoc `yaml:"body_font"`
}

// LoadBookStyleFromYAML reads path and unmarshals it into a BookStyle via
// LoadBookStyleFromBytes.
func LoadBookStyleFromYAML(path string) (BookStyle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BookStyle{}, fmt.Errorf("xlsxgen: reading config %q: %w", path, err)
	}
	return LoadBookStyleFromBytes(data)
}

// LoadBookStyleFromBytes parses a YAML document per bookStyleDoc and
// overlays it onto NewBookStyle's defaults. Errors here are plain wrapped
// errors rather than *GenerationError: config loading happens before
// write() begins and isn't part of spec.md §7's write()-specific taxonomy.
func LoadBookStyleFromBytes(data []byte) (BookStyle, error) {
	var doc bookStyleDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return BookStyle{}, fmt.Errorf("xlsxgen: parsing config: %w", err)
	}

	bs := NewBookStyle()
	bs.Title = doc.Title
	bs.Creator = doc.Creator
	bs.AppName = doc.AppName

	if doc.DefaultColumnWidth > 0 {
		bs.DefaultSheetStyle.DefaultColumnWidth = doc.DefaultColumnWidth
	}
	if doc.DefaultRowHeight > 0 {
		bs.DefaultSheetStyle.DefaultRowHeight = doc.DefaultRowHeight
	}
	if doc.Zoom > 0 {
		bs.DefaultSheetStyle.Zoom = clampZoom(doc.Zoom)
	}

	if doc.HeaderFont != nil {
		bs.DefaultHeaderStyle = &CellStyle{Font: doc.HeaderFont.toFont()}
	}
	if doc.BodyFont != nil {
		bs.DefaultBodyStyle = &CellStyle{Font: doc.BodyFont.toFont()}
	}

	return bs, nil
}
