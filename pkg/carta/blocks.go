package carta

import "strings"

// StripConditionalBlocks removes block conditionals from the top-level body
// sequence. A paragraph whose text opens a block gates every following
// element, paragraph or table, until the closing marker paragraph. Blocks
// bound to Yes keep their interior content and lose only the marker
// paragraphs; blocks bound to No, or unbound, lose markers and interior
// alike. Table cells are not scanned: block markers only exist at the top
// level.
//
// The scanner is a flat two-state flag, not a stack; nested blocks using
// the same pattern are not supported. Matching runs in a mark phase over
// the unmodified sequence, followed by a single delete sweep, so the
// sequence is never mutated while it is being scanned.
func StripConditionalBlocks(body *Body, conditionals Conditionals) {
	if body == nil {
		return
	}

	removing := false
	openName := ""
	marked := make(map[int]struct{})

	for i, elem := range body.Elements {
		text := ""
		if p, ok := elem.(*Paragraph); ok {
			text = strings.TrimSpace(p.Text())
		}

		if name, ok := matchBlockOpen(text); ok {
			// The marker paragraph goes regardless of the outcome.
			marked[i] = struct{}{}
			openName = name
			if !conditionals.IsYes(name) {
				removing = true
			}
			continue
		}

		if matchBlockClose(text) {
			marked[i] = struct{}{}
			removing = false
			openName = ""
			continue
		}

		if removing {
			marked[i] = struct{}{}
		}
	}

	if removing {
		// An opening marker with no closer consumes everything to the end
		// of the document. Legacy behavior, kept; flag it loudly.
		log.Warn().Str("conditional", openName).
			Msg("unterminated conditional block: removing all trailing content")
	}

	if len(marked) == 0 {
		return
	}

	kept := make([]BodyElement, 0, len(body.Elements)-len(marked))
	for i, elem := range body.Elements {
		if _, gone := marked[i]; !gone {
			kept = append(kept, elem)
		}
	}
	body.Elements = kept
}
