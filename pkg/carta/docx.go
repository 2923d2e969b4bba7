package carta

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
)

const documentPartName = "word/document.xml"

// DocxReader gives access to the parts of a DOCX package.
type DocxReader struct {
	reader *zip.Reader
	Parts  map[string]*zip.File
}

// NewDocxReader opens a DOCX package from a seekable source.
func NewDocxReader(r io.ReaderAt, size int64) (*DocxReader, error) {
	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read zip file: %w", err)
	}

	dr := &DocxReader{
		reader: zipReader,
		Parts:  make(map[string]*zip.File),
	}
	for _, file := range zipReader.File {
		dr.Parts[file.Name] = file
	}

	if _, ok := dr.Parts[documentPartName]; !ok {
		return nil, fmt.Errorf("not a valid DOCX file: missing %s", documentPartName)
	}

	return dr, nil
}

// DocxReaderFromFile opens a DOCX package from a file path.
func DocxReaderFromFile(path string) (*DocxReader, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return NewDocxReader(bytes.NewReader(content), int64(len(content)))
}

// GetPart returns the content of a named package part.
func (dr *DocxReader) GetPart(partName string) ([]byte, error) {
	file, ok := dr.Parts[partName]
	if !ok {
		return nil, fmt.Errorf("part %s not found", partName)
	}

	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open part %s: %w", partName, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read part %s: %w", partName, err)
	}
	return content, nil
}

// GetDocumentXML returns the content of word/document.xml.
func (dr *DocxReader) GetDocumentXML() ([]byte, error) {
	return dr.GetPart(documentPartName)
}

// ListParts returns the names of all parts in the package.
func (dr *DocxReader) ListParts() []string {
	parts := make([]string, 0, len(dr.Parts))
	for name := range dr.Parts {
		parts = append(parts, name)
	}
	return parts
}

// rewritePackage writes a new DOCX package: every part of the source is
// copied byte for byte except word/document.xml, which is replaced with the
// rendered XML. The output is therefore structurally identical to the input.
func rewritePackage(source []byte, documentXML []byte) ([]byte, error) {
	zipReader, err := zip.NewReader(bytes.NewReader(source), int64(len(source)))
	if err != nil {
		return nil, fmt.Errorf("failed to read source zip: %w", err)
	}

	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	for _, file := range zipReader.File {
		fw, err := w.Create(file.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", file.Name, err)
		}

		if file.Name == documentPartName {
			if _, err := fw.Write(documentXML); err != nil {
				return nil, fmt.Errorf("failed to write %s: %w", file.Name, err)
			}
			continue
		}

		fr, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", file.Name, err)
		}
		_, err = io.Copy(fw, fr)
		fr.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to copy %s: %w", file.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zip writer: %w", err)
	}
	return buf.Bytes(), nil
}
