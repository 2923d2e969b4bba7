package carta

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Document represents the parsed word/document.xml of a template.
// Root element attributes are preserved so the serialized output keeps
// the namespace declarations of the source file.
type Document struct {
	XMLName xml.Name   `xml:"document"`
	Attrs   []xml.Attr `xml:",any,attr"`
	Body    *Body      `xml:"body"`
}

// BodyElement is any element that can appear at the top level of a body:
// a paragraph or a table.
type BodyElement interface {
	isBodyElement()
}

// Body holds the top-level document content in source order.
type Body struct {
	Elements []BodyElement `xml:"-"`

	// SectionProperties is carried verbatim so page geometry survives
	// the round trip.
	SectionProperties *SectionProperties `xml:"-"`
}

// SectionProperties preserves the raw w:sectPr element.
type SectionProperties struct {
	Attrs   []xml.Attr `xml:",any,attr"`
	Content []byte     `xml:",innerxml"`
}

// Paragraph is an ordered sequence of runs plus paragraph-level properties.
type Paragraph struct {
	Properties *ParagraphProperties `xml:"pPr"`
	Runs       []Run                `xml:"r"`
}

func (p *Paragraph) isBodyElement() {}

// ParagraphProperties holds the paragraph formatting we track.
type ParagraphProperties struct {
	Style     *StyleRef    `xml:"pStyle"`
	Alignment *Alignment   `xml:"jc"`
	Indent    *Indentation `xml:"ind"`
	Spacing   *Spacing     `xml:"spacing"`
}

// Run is a contiguous span of text sharing one set of character properties.
type Run struct {
	Properties *RunProperties `xml:"rPr"`
	Text       *Text          `xml:"t"`
	Break      *Break         `xml:"br"`
}

// RunProperties holds character formatting.
type RunProperties struct {
	Bold      *Toggle    `xml:"b"`
	Italic    *Toggle    `xml:"i"`
	Underline *Underline `xml:"u"`
	Color     *Color     `xml:"color"`
	Size      *Size      `xml:"sz"`
	Fonts     *Fonts     `xml:"rFonts"`
}

// Text is the character content of a run.
type Text struct {
	XMLName xml.Name `xml:"t"`
	Space   string   `xml:"space,attr,omitempty"`
	Content string   `xml:",chardata"`
}

// Break is a line or page break inside a run.
type Break struct {
	Type string `xml:"type,attr,omitempty"`
}

// MarshalXML emits the break as a self-closing w:br element.
func (b *Break) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:br"}
	start.Attr = nil
	if b.Type != "" {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: "w:type"},
			Value: b.Type,
		})
	}
	return e.EncodeElement(struct{}{}, start)
}

// Toggle models on/off run properties (w:b, w:i). An absent element means
// "inherit"; a present element without w:val means "on".
type Toggle struct {
	Val string `xml:"val,attr,omitempty"`
}

// On reports whether the toggle enables the property.
func (t *Toggle) On() bool {
	if t == nil {
		return false
	}
	switch t.Val {
	case "", "1", "true", "on":
		return true
	}
	return false
}

// Underline models w:u. The val attribute carries the underline style
// ("single", "none", ...).
type Underline struct {
	Val string `xml:"val,attr"`
}

// On reports whether the underline is visible.
func (u *Underline) On() bool {
	if u == nil {
		return false
	}
	return u.Val != "none" && u.Val != ""
}

// StyleRef references a named paragraph style.
type StyleRef struct {
	Val string `xml:"val,attr"`
}

// Alignment is the paragraph justification (w:jc).
type Alignment struct {
	Val string `xml:"val,attr"`
}

// Indentation is the paragraph indentation in twips.
type Indentation struct {
	Left  int `xml:"left,attr,omitempty"`
	Right int `xml:"right,attr,omitempty"`
}

// Spacing is the paragraph spacing in twips.
type Spacing struct {
	Before int `xml:"before,attr,omitempty"`
	After  int `xml:"after,attr,omitempty"`
}

// Color is a run color as hex RGB.
type Color struct {
	Val string `xml:"val,attr"`
}

// Size is a font size in half-points.
type Size struct {
	Val int `xml:"val,attr"`
}

// Fonts names the fonts of a run.
type Fonts struct {
	ASCII string `xml:"ascii,attr,omitempty"`
	HAnsi string `xml:"hAnsi,attr,omitempty"`
}

// Table is an ordered sequence of rows.
type Table struct {
	Properties *TableProperties `xml:"tblPr"`
	Grid       *TableGrid       `xml:"tblGrid"`
	Rows       []TableRow       `xml:"tr"`
}

func (t *Table) isBodyElement() {}

// TableProperties holds the table style reference.
type TableProperties struct {
	Style *StyleRef `xml:"tblStyle"`
}

// TableGrid defines the table columns.
type TableGrid struct {
	Columns []GridColumn `xml:"gridCol"`
}

// GridColumn is a single table column definition.
type GridColumn struct {
	Width int `xml:"w,attr"`
}

// TableRow is an ordered sequence of cells.
type TableRow struct {
	Properties *TableRowProperties `xml:"trPr"`
	Cells      []TableCell         `xml:"tc"`
}

// TableRowProperties holds row-level formatting.
type TableRowProperties struct {
	Height *RowHeight `xml:"trHeight"`
}

// RowHeight is a row height in twips.
type RowHeight struct {
	Val int `xml:"val,attr"`
}

// TableCell is an ordered sequence of paragraphs.
type TableCell struct {
	Properties *TableCellProperties `xml:"tcPr"`
	Paragraphs []Paragraph          `xml:"p"`
}

// TableCellProperties holds cell-level formatting.
type TableCellProperties struct {
	Width *CellWidth `xml:"tcW"`
	Span  *GridSpan  `xml:"gridSpan"`
}

// CellWidth is a cell width setting.
type CellWidth struct {
	Type string `xml:"type,attr,omitempty"`
	Val  int    `xml:"w,attr"`
}

// GridSpan is a horizontal cell merge count.
type GridSpan struct {
	Val int `xml:"val,attr"`
}

// UnmarshalXML decodes body children in order, so paragraphs and tables
// keep their relative positions.
func (b *Body) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		token, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				var para Paragraph
				if err := d.DecodeElement(&para, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, &para)
			case "tbl":
				var table Table
				if err := d.DecodeElement(&table, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, &table)
			case "sectPr":
				var sect SectionProperties
				if err := d.DecodeElement(&sect, &t); err != nil {
					return err
				}
				b.SectionProperties = &sect
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name.Local == "body" {
				return nil
			}
		}
	}

	return nil
}

// ParseDocument parses document XML into the object model.
func ParseDocument(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)

	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if doc.Body == nil {
		doc.Body = &Body{}
	}

	return &doc, nil
}

// GetText returns the text content of a run.
func (r *Run) GetText() string {
	if r.Text == nil {
		return ""
	}
	return r.Text.Content
}

// Text returns the effective text of a paragraph: the concatenation of all
// run texts in order. Pattern matching always happens against this string,
// never against individual run fragments.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for i := range p.Runs {
		sb.WriteString(p.Runs[i].GetText())
	}
	return sb.String()
}

// SetText replaces the paragraph content with a single run carrying the
// given text. Run-level formatting is dropped; callers that need it use a
// FormatSnapshot around the call.
func (p *Paragraph) SetText(text string) {
	p.Runs = []Run{{
		Text: &Text{Content: text, Space: "preserve"},
	}}
}

// GetText returns the text of a cell: its paragraph texts joined with
// newlines.
func (c *TableCell) GetText() string {
	texts := make([]string, 0, len(c.Paragraphs))
	for i := range c.Paragraphs {
		texts = append(texts, c.Paragraphs[i].Text())
	}
	return strings.Join(texts, "\n")
}

// Paragraphs returns the top-level paragraphs of the body in order,
// skipping tables.
func (b *Body) Paragraphs() []*Paragraph {
	var paras []*Paragraph
	for _, el := range b.Elements {
		if p, ok := el.(*Paragraph); ok {
			paras = append(paras, p)
		}
	}
	return paras
}

// Tables returns the top-level tables of the body in order.
func (b *Body) Tables() []*Table {
	var tables []*Table
	for _, el := range b.Elements {
		if t, ok := el.(*Table); ok {
			tables = append(tables, t)
		}
	}
	return tables
}
