package carta

import (
	"bytes"
	"io"
	"os"
	"sync"
)

// Template is a loaded letter template. The parsed source is immutable:
// every extraction and every generation works on a fresh document built
// from the stored template bytes, so concurrent calls need no
// coordination.
type Template struct {
	source []byte
	docXML []byte

	mu     sync.Mutex
	closed bool
}

// OpenTemplate loads a template from a reader holding a DOCX package.
func OpenTemplate(r io.Reader) (*Template, error) {
	buf := new(bytes.Buffer)
	size, err := buf.ReadFrom(r)
	if err != nil {
		return nil, NewDocumentError("read", "", err)
	}

	source := buf.Bytes()
	reader, err := NewDocxReader(bytes.NewReader(source), size)
	if err != nil {
		return nil, NewDocumentError("parse", "DOCX", err)
	}

	docXML, err := reader.GetDocumentXML()
	if err != nil {
		return nil, NewDocumentError("extract", documentPartName, err)
	}

	// Parse once up front so a malformed template fails at open time, not
	// in the middle of a generation.
	if _, err := ParseDocument(bytes.NewReader(docXML)); err != nil {
		return nil, NewDocumentError("parse", documentPartName, err)
	}

	return &Template{source: source, docXML: docXML}, nil
}

// OpenTemplateFile loads a template from a file path.
func OpenTemplateFile(path string) (*Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewDocumentError("open", path, err)
	}
	defer f.Close()

	return OpenTemplate(f)
}

// freshDocument parses a new private document from the stored template
// source. Callers own the result and may mutate it freely.
func (t *Template) freshDocument() (*Document, error) {
	return ParseDocument(bytes.NewReader(t.docXML))
}

// Extract returns the sorted, deduplicated variable and conditional names
// referenced by the template.
func (t *Template) Extract() (variables, conditionals []string, err error) {
	doc, err := t.freshDocument()
	if err != nil {
		return nil, nil, NewDocumentError("parse", documentPartName, err)
	}
	variables, conditionals = ExtractPlaceholders(doc)
	return variables, conditionals, nil
}

// Close releases the template. After Close the template must not be used.
func (t *Template) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true
	t.source = nil
	t.docXML = nil
	return nil
}
