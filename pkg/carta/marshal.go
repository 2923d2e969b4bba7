package carta

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// namespacePrefixes maps the namespace URIs seen in real-world templates to
// their conventional prefixes. Root attributes are decoded with the full URI
// as the name space; serialization converts them back.
var namespacePrefixes = map[string]string{
	"http://schemas.openxmlformats.org/wordprocessingml/2006/main":           "w",
	"http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing": "wp",
	"http://schemas.openxmlformats.org/drawingml/2006/main":                  "a",
	"http://schemas.openxmlformats.org/drawingml/2006/picture":               "pic",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing":    "wp14",
	"http://schemas.microsoft.com/office/drawing/2010/main":                  "a14",
	"http://schemas.openxmlformats.org/officeDocument/2006/relationships":    "r",
	"http://www.w3.org/XML/1998/namespace":                                   "xml",
	"http://schemas.openxmlformats.org/markup-compatibility/2006":            "mc",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingCanvas":     "wpc",
	"urn:schemas-microsoft-com:office:office":                                "o",
	"http://schemas.openxmlformats.org/officeDocument/2006/math":             "m",
	"urn:schemas-microsoft-com:vml":                                          "v",
	"urn:schemas-microsoft-com:office:word":                                  "w10",
	"http://schemas.microsoft.com/office/word/2010/wordml":                   "w14",
	"http://schemas.microsoft.com/office/word/2012/wordml":                   "w15",
	"http://schemas.microsoft.com/office/word/2015/wordml/symex":             "w16se",
	"http://schemas.microsoft.com/office/word/2016/wordml/cid":               "w16cid",
	"http://schemas.microsoft.com/office/word/2018/wordml":                   "w16",
	"http://schemas.microsoft.com/office/word/2018/wordml/cex":               "w16cex",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingGroup":      "wpg",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingInk":        "wpi",
	"http://schemas.microsoft.com/office/word/2006/wordml":                   "wne",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingShape":      "wps",
}

func namespaceURIToPrefix(uri string) string {
	if prefix, ok := namespacePrefixes[uri]; ok {
		return prefix
	}
	return uri
}

// elementPrefixFixes rewrites the element names emitted by encoding/xml to
// their w:-prefixed wire form. encoding/xml cannot emit prefixed names from
// struct tags directly, so the marshaled string is patched afterwards.
var elementPrefixFixes = [][2]string{
	{"<p>", "<w:p>"},
	{"</p>", "</w:p>"},
	{"<p/>", "<w:p/>"},
	{"<r>", "<w:r>"},
	{"</r>", "</w:r>"},
	{"<t ", "<w:t "},
	{"<t>", "<w:t>"},
	{"</t>", "</w:t>"},
	{"<br>", "<w:br/>"},
	{"</br>", ""},
	{"<br/>", "<w:br/>"},
	{"<br ", "<w:br "},
	{"<tbl>", "<w:tbl>"},
	{"</tbl>", "</w:tbl>"},
	{"<tr>", "<w:tr>"},
	{"</tr>", "</w:tr>"},
	{"<tc>", "<w:tc>"},
	{"</tc>", "</w:tc>"},
	{"<tblPr>", "<w:tblPr>"},
	{"</tblPr>", "</w:tblPr>"},
	{"<tblGrid>", "<w:tblGrid>"},
	{"</tblGrid>", "</w:tblGrid>"},
	{"<gridCol ", "<w:gridCol "},
	{"</gridCol>", "</w:gridCol>"},
	{"<trPr>", "<w:trPr>"},
	{"</trPr>", "</w:trPr>"},
	{"<trHeight ", "<w:trHeight "},
	{"</trHeight>", "</w:trHeight>"},
	{"<tcPr>", "<w:tcPr>"},
	{"</tcPr>", "</w:tcPr>"},
	{"<tcW ", "<w:tcW "},
	{"</tcW>", "</w:tcW>"},
	{"<gridSpan ", "<w:gridSpan "},
	{"</gridSpan>", "</w:gridSpan>"},
	{"<pPr>", "<w:pPr>"},
	{"</pPr>", "</w:pPr>"},
	{"<rPr>", "<w:rPr>"},
	{"</rPr>", "</w:rPr>"},
	{"<b></b>", "<w:b/>"},
	{"<b/>", "<w:b/>"},
	{"<b ", "<w:b "},
	{"</b>", "</w:b>"},
	{"<i></i>", "<w:i/>"},
	{"<i/>", "<w:i/>"},
	{"<i ", "<w:i "},
	{"</i>", "</w:i>"},
	{"<u ", "<w:u "},
	{"</u>", "</w:u>"},
	{"<color ", "<w:color "},
	{"</color>", "</w:color>"},
	{"<sz ", "<w:sz "},
	{"</sz>", "</w:sz>"},
	{"<rFonts ", "<w:rFonts "},
	{"</rFonts>", "</w:rFonts>"},
	{"<pStyle ", "<w:pStyle "},
	{"</pStyle>", "</w:pStyle>"},
	{"<tblStyle ", "<w:tblStyle "},
	{"</tblStyle>", "</w:tblStyle>"},
	{"<jc ", "<w:jc "},
	{"</jc>", "</w:jc>"},
	{"<ind ", "<w:ind "},
	{"</ind>", "</w:ind>"},
	{"<spacing ", "<w:spacing "},
	{"</spacing>", "</w:spacing>"},
}

var attrPrefixFixes = [][2]string{
	{` val="`, ` w:val="`},
	{` type="`, ` w:type="`},
	{` w="`, ` w:w="`},
	{` ascii="`, ` w:ascii="`},
	{` hAnsi="`, ` w:hAnsi="`},
	{` left="`, ` w:left="`},
	{` right="`, ` w:right="`},
	{` before="`, ` w:before="`},
	{` after="`, ` w:after="`},
	{` space="`, ` xml:space="`},
}

// marshalBodyElement marshals one top-level element and patches the names
// into prefixed form.
func marshalBodyElement(elem BodyElement) ([]byte, error) {
	var raw []byte
	var err error

	switch el := elem.(type) {
	case *Paragraph:
		raw, err = xml.Marshal(struct {
			*Paragraph
			XMLName xml.Name `xml:"p"`
		}{Paragraph: el})
	case *Table:
		raw, err = xml.Marshal(struct {
			*Table
			XMLName xml.Name `xml:"tbl"`
		}{Table: el})
	}
	if err != nil {
		return nil, err
	}

	out := string(raw)
	for _, fix := range elementPrefixFixes {
		out = strings.ReplaceAll(out, fix[0], fix[1])
	}
	for _, fix := range attrPrefixFixes {
		out = strings.ReplaceAll(out, fix[0], fix[1])
	}

	// Empty property containers confuse Word; drop them.
	out = strings.ReplaceAll(out, "<w:pPr></w:pPr>", "")
	out = strings.ReplaceAll(out, "<w:rPr></w:rPr>", "")

	return []byte(out), nil
}

// MarshalDocument serializes the document back to wordprocessing XML,
// rebuilding the root element from the preserved namespace attributes.
func MarshalDocument(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	buf.WriteString("<w:document")

	if len(doc.Attrs) > 0 {
		for _, attr := range doc.Attrs {
			if attr.Name.Space == "" && attr.Name.Local == "xmlns" {
				continue
			}
			buf.WriteString(" ")
			if attr.Name.Space != "" {
				buf.WriteString(namespaceURIToPrefix(attr.Name.Space))
				buf.WriteString(":")
			}
			buf.WriteString(attr.Name.Local)
			buf.WriteString(`="`)
			buf.WriteString(attr.Value)
			buf.WriteString(`"`)
		}
	} else {
		buf.WriteString(` xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`)
		buf.WriteString(` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`)
	}
	buf.WriteString("><w:body>")

	if doc.Body != nil {
		for _, elem := range doc.Body.Elements {
			raw, err := marshalBodyElement(elem)
			if err != nil {
				return nil, NewDocumentError("marshal", "body element", err)
			}
			buf.Write(raw)
		}

		if sect := doc.Body.SectionProperties; sect != nil {
			buf.WriteString("<w:sectPr")
			for _, attr := range sect.Attrs {
				buf.WriteString(" ")
				if attr.Name.Space != "" {
					buf.WriteString(namespaceURIToPrefix(attr.Name.Space))
					buf.WriteString(":")
				}
				buf.WriteString(attr.Name.Local)
				buf.WriteString(`="`)
				buf.WriteString(attr.Value)
				buf.WriteString(`"`)
			}
			buf.WriteString(">")
			// innerxml is verbatim from the source, prefixes included.
			buf.Write(sect.Content)
			buf.WriteString("</w:sectPr>")
		}
	}

	buf.WriteString("</w:body></w:document>")
	return buf.Bytes(), nil
}
