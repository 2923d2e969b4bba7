package carta

// RunFormat is the character formatting captured from one run. The three
// toggles are tri-state: nil means "not set on the run, inherited".
type RunFormat struct {
	Bold      *bool
	Italic    *bool
	Underline *bool
	FontName  string
	FontSize  int
	FontColor string
}

// FormatSnapshot captures the visual formatting of a paragraph before its
// text is rewritten, so it can be reapplied afterwards.
type FormatSnapshot struct {
	Alignment *Alignment
	Style     *StyleRef
	Runs      []RunFormat
}

// SaveParagraphFormat records paragraph alignment, style and the character
// formatting of every run, in run order.
func SaveParagraphFormat(p *Paragraph) FormatSnapshot {
	snap := FormatSnapshot{}

	if p.Properties != nil {
		if p.Properties.Alignment != nil {
			a := *p.Properties.Alignment
			snap.Alignment = &a
		}
		if p.Properties.Style != nil {
			s := *p.Properties.Style
			snap.Style = &s
		}
	}

	for i := range p.Runs {
		snap.Runs = append(snap.Runs, saveRunFormat(&p.Runs[i]))
	}
	return snap
}

func saveRunFormat(r *Run) RunFormat {
	rf := RunFormat{}
	props := r.Properties
	if props == nil {
		return rf
	}

	if props.Bold != nil {
		v := props.Bold.On()
		rf.Bold = &v
	}
	if props.Italic != nil {
		v := props.Italic.On()
		rf.Italic = &v
	}
	if props.Underline != nil {
		v := props.Underline.On()
		rf.Underline = &v
	}
	if props.Fonts != nil {
		rf.FontName = props.Fonts.ASCII
	}
	if props.Size != nil {
		rf.FontSize = props.Size.Val
	}
	if props.Color != nil {
		rf.FontColor = props.Color.Val
	}
	return rf
}

// RestoreParagraphFormat reapplies a snapshot after a text rewrite.
// Paragraph-level attributes are applied unconditionally; the saved run
// formats are reapplied positionally to the current runs, stopping when
// either list is exhausted. Rewriting collapses a paragraph to a single
// run, so formatting carried by runs beyond the first is lost. That
// matches the observed behavior of the letter tool and stays as is.
func RestoreParagraphFormat(p *Paragraph, snap FormatSnapshot) {
	if snap.Alignment != nil || snap.Style != nil {
		if p.Properties == nil {
			p.Properties = &ParagraphProperties{}
		}
		if snap.Alignment != nil {
			a := *snap.Alignment
			p.Properties.Alignment = &a
		}
		if snap.Style != nil {
			s := *snap.Style
			p.Properties.Style = &s
		}
	}

	for i := range p.Runs {
		if i >= len(snap.Runs) {
			break
		}
		restoreRunFormat(&p.Runs[i], snap.Runs[i])
	}
}

func restoreRunFormat(r *Run, rf RunFormat) {
	if rf.Bold == nil && rf.Italic == nil && rf.Underline == nil &&
		rf.FontName == "" && rf.FontSize == 0 && rf.FontColor == "" {
		return
	}

	if r.Properties == nil {
		r.Properties = &RunProperties{}
	}

	if rf.Bold != nil {
		r.Properties.Bold = toggleFor(*rf.Bold)
	}
	if rf.Italic != nil {
		r.Properties.Italic = toggleFor(*rf.Italic)
	}
	if rf.Underline != nil {
		if *rf.Underline {
			r.Properties.Underline = &Underline{Val: "single"}
		} else {
			r.Properties.Underline = &Underline{Val: "none"}
		}
	}
	if rf.FontName != "" {
		r.Properties.Fonts = &Fonts{ASCII: rf.FontName, HAnsi: rf.FontName}
	}
	if rf.FontSize != 0 {
		r.Properties.Size = &Size{Val: rf.FontSize}
	}
	if rf.FontColor != "" {
		r.Properties.Color = &Color{Val: rf.FontColor}
	}
}

func toggleFor(on bool) *Toggle {
	if on {
		return &Toggle{}
	}
	return &Toggle{Val: "0"}
}

// StripUnderlines removes underline formatting from every run of the body
// and of every table cell, regardless of binding state.
func StripUnderlines(doc *Document) {
	if doc.Body == nil {
		return
	}

	for _, p := range doc.Body.Paragraphs() {
		stripParagraphUnderlines(p)
	}
	for _, t := range doc.Body.Tables() {
		for i := range t.Rows {
			for j := range t.Rows[i].Cells {
				for k := range t.Rows[i].Cells[j].Paragraphs {
					stripParagraphUnderlines(&t.Rows[i].Cells[j].Paragraphs[k])
				}
			}
		}
	}
}

// Every run gets an explicit "none", properties created if needed, so
// underline inherited from a paragraph or character style is overridden too.
func stripParagraphUnderlines(p *Paragraph) {
	for i := range p.Runs {
		if p.Runs[i].Properties == nil {
			p.Runs[i].Properties = &RunProperties{}
		}
		p.Runs[i].Properties.Underline = &Underline{Val: "none"}
	}
}
