package carta

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var xmlTextEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// buildDocxBytes creates a minimal DOCX package whose body holds one
// paragraph per entry, in order.
func buildDocxBytes(paragraphs ...string) []byte {
	var body strings.Builder
	for _, text := range paragraphs {
		body.WriteString("<w:p><w:r><w:t xml:space=\"preserve\">")
		body.WriteString(xmlTextEscaper.Replace(text))
		body.WriteString("</w:t></w:r></w:p>")
	}
	return buildDocxBytesRaw(body.String())
}

// buildDocxBytesRaw creates a minimal DOCX package with the given raw
// body XML (w:p and w:tbl elements).
func buildDocxBytesRaw(bodyXML string) []byte {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	rels, _ := w.Create("_rels/.rels")
	io.WriteString(rels, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`)

	ct, _ := w.Create("[Content_Types].xml")
	io.WriteString(ct, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`)

	doc, _ := w.Create("word/document.xml")
	io.WriteString(doc, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`+bodyXML+`</w:body></w:document>`)

	w.Close()
	return buf.Bytes()
}

// openTestTemplate builds an in-memory template from body paragraphs.
func openTestTemplate(t *testing.T, paragraphs ...string) *Template {
	t.Helper()
	tmpl, err := OpenTemplate(bytes.NewReader(buildDocxBytes(paragraphs...)))
	require.NoError(t, err)
	t.Cleanup(func() { tmpl.Close() })
	return tmpl
}

// makeParagraph builds a single-run paragraph with the given text.
func makeParagraph(text string) *Paragraph {
	return &Paragraph{
		Runs: []Run{{Text: &Text{Content: text, Space: "preserve"}}},
	}
}

// makeBody builds a body holding one paragraph per entry.
func makeBody(texts ...string) *Body {
	body := &Body{}
	for _, text := range texts {
		body.Elements = append(body.Elements, makeParagraph(text))
	}
	return body
}

// bodyTexts returns the effective text of every top-level paragraph.
func bodyTexts(body *Body) []string {
	paras := body.Paragraphs()
	texts := make([]string, 0, len(paras))
	for _, p := range paras {
		texts = append(texts, p.Text())
	}
	return texts
}

// documentFromGenerated parses the word/document.xml of a generated
// artifact back into the object model.
func documentFromGenerated(t *testing.T, artifact []byte) *Document {
	t.Helper()
	reader, err := NewDocxReader(bytes.NewReader(artifact), int64(len(artifact)))
	require.NoError(t, err)
	docXML, err := reader.GetDocumentXML()
	require.NoError(t, err)
	doc, err := ParseDocument(bytes.NewReader(docXML))
	require.NoError(t, err)
	return doc
}
