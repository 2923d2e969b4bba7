package carta

import "sort"

// ExtractPlaceholders scans the whole document, body paragraphs and every
// table cell, and returns the sorted, deduplicated sets of variable and
// conditional names it references. The result is deterministic for an
// unmodified document: the UI renders these lists directly.
func ExtractPlaceholders(doc *Document) (variables, conditionals []string) {
	varSet := make(map[string]struct{})
	condSet := make(map[string]struct{})

	scan := func(text string) {
		for _, m := range placeholderRe.FindAllStringSubmatch(text, -1) {
			if name, ok := placeholderKey(m[1]); ok {
				varSet[name] = struct{}{}
			}
		}
		for _, m := range conditionalRefRe.FindAllStringSubmatch(text, -1) {
			condSet[m[1]] = struct{}{}
		}
	}

	if doc.Body != nil {
		for _, p := range doc.Body.Paragraphs() {
			scan(p.Text())
		}
		for _, t := range doc.Body.Tables() {
			for i := range t.Rows {
				for j := range t.Rows[i].Cells {
					scan(t.Rows[i].Cells[j].GetText())
				}
			}
		}
	}

	variables = make([]string, 0, len(varSet))
	for name := range varSet {
		variables = append(variables, name)
	}
	sort.Strings(variables)

	conditionals = make([]string, 0, len(condSet))
	for name := range condSet {
		conditionals = append(conditionals, name)
	}
	sort.Strings(conditionals)

	return variables, conditionals
}
