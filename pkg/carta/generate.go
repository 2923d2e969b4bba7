package carta

import (
	"bytes"
	"io"
	"strings"
)

// Generate fills the template with the given bindings and returns a reader
// over the finished DOCX artifact. The pipeline runs in a fixed order:
// block conditional elimination, per-paragraph text rewriting (with
// formatting preserved in the body), table cell rewriting, list numbering
// normalization, and an unconditional underline strip.
//
// Every call works on its own fresh copy of the template, so concurrent
// generations are safe without locking. Any internal failure, including a
// panic in the pipeline, surfaces as a single GenerationError and no
// artifact is produced.
func (t *Template) Generate(variables Variables, conditionals Conditionals) (io.Reader, error) {
	out, err := t.GenerateBytes(variables, conditionals)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(out), nil
}

// GenerateBytes is Generate returning the raw artifact bytes.
func (t *Template) GenerateBytes(variables Variables, conditionals Conditionals) (_ []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewGenerationError("render", RecoverError(r))
		}
	}()

	doc, err := t.freshDocument()
	if err != nil {
		return nil, NewGenerationError("load", err)
	}

	applyBindings(doc, variables, conditionals)

	rendered, err := MarshalDocument(doc)
	if err != nil {
		return nil, NewGenerationError("marshal", err)
	}

	out, err := rewritePackage(t.source, rendered)
	if err != nil {
		return nil, NewGenerationError("serialize", err)
	}

	log.Debug().Int("bytes", len(out)).Msg("letter generated")
	return out, nil
}

// applyBindings runs the substitution pipeline over a private working copy.
func applyBindings(doc *Document, variables Variables, conditionals Conditionals) {
	StripConditionalBlocks(doc.Body, conditionals)

	if doc.Body != nil {
		for _, p := range doc.Body.Paragraphs() {
			rewriteBodyParagraph(p, variables, conditionals)
		}
		for _, tbl := range doc.Body.Tables() {
			rewriteTable(tbl, variables, conditionals)
		}
	}

	NormalizeListNumbering(doc.Body)
	StripUnderlines(doc)
}

// rewriteBodyParagraph rewrites one body paragraph, snapshotting and
// restoring its visual formatting around the text replacement.
func rewriteBodyParagraph(p *Paragraph, variables Variables, conditionals Conditionals) {
	original := p.Text()
	if strings.TrimSpace(original) == "" {
		return
	}

	rewritten := RewriteText(original, variables, conditionals)
	if rewritten == original {
		return
	}

	snap := SaveParagraphFormat(p)
	p.SetText(rewritten)
	RestoreParagraphFormat(p, snap)
}

// rewriteTable rewrites every cell paragraph of a table. Unlike the body,
// cells get no formatting snapshot/restore; only the text is replaced.
func rewriteTable(tbl *Table, variables Variables, conditionals Conditionals) {
	for i := range tbl.Rows {
		for j := range tbl.Rows[i].Cells {
			cell := &tbl.Rows[i].Cells[j]
			for k := range cell.Paragraphs {
				p := &cell.Paragraphs[k]
				original := p.Text()
				if strings.TrimSpace(original) == "" {
					continue
				}
				if rewritten := RewriteText(original, variables, conditionals); rewritten != original {
					p.SetText(rewritten)
				}
			}
		}
	}
}
