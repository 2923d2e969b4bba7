package carta

import (
	"regexp"
	"strings"
)

// ListPlaceholderName is the one multi-value placeholder the template
// language knows about. Its occurrences carry a free-text description after
// a colon which is not part of the key.
const ListPlaceholderName = "lista_alto_directores"

var (
	// placeholderRe matches a {{ ... }} token and captures its inner text.
	placeholderRe = regexp.MustCompile(`\{\{([^}]+)\}\}`)

	// conditionalRefRe matches the opening of an inline or block conditional
	// and captures the conditional name.
	conditionalRefRe = regexp.MustCompile(`\{%\s*if\s+(\w+)\s*==`)

	// blockOpenRe matches a paragraph that opens a block conditional. It is
	// anchored at the start of the paragraph text only.
	blockOpenRe = regexp.MustCompile(`^\{% if (\w+)\s*==\s*'sí' %\}`)

	// blockCloseRe matches a paragraph that closes a block conditional.
	blockCloseRe = regexp.MustCompile(`^\{% endif %\}`)

	// listPlaceholderRe matches the multi-line list placeholder as a unit.
	// The description may span newlines.
	listPlaceholderRe = regexp.MustCompile(`(?s)\{\{lista_alto_directores:[^}]+\}\}`)

	// orphanTagRe matches any remaining {% ... %} fragment.
	orphanTagRe = regexp.MustCompile(`\{%[^%]*%\}`)

	// leftoverPlaceholderRe matches any surviving well-formed {{...}} token,
	// optionally wrapped in literal square brackets.
	leftoverPlaceholderRe = regexp.MustCompile(`\[?\{\{[^}]*\}\}\]?`)
)

// inlineConditionalPatterns returns the two regexes that recognize an inline
// conditional for the given name: the bracket-marked authoring-tool variant
// and the bare variant. Both are non-greedy and span newlines.
func inlineConditionalPatterns(name string) (marked, bare *regexp.Regexp) {
	q := regexp.QuoteMeta(name)
	marked = regexp.MustCompile(`(?s)\[\{% if ` + q + ` == 'sí' %\}\]\.mark(.*?)\[\{% endif %\}\]\.mark`)
	bare = regexp.MustCompile(`(?s)\{% if ` + q + ` == 'sí' %\}(.*?)\{% endif %\}`)
	return marked, bare
}

// scalarPatterns returns the three substitution forms for a variable: plain,
// numeric filter, and numeric decrement filter.
func scalarPatterns(name string) (plain, intForm, intMinusOne *regexp.Regexp) {
	q := regexp.QuoteMeta(name)
	plain = regexp.MustCompile(`\{\{\s*` + q + `\s*\}\}`)
	intForm = regexp.MustCompile(`\{\{\s*` + q + `\s*\|\s*int\s*\}\}`)
	intMinusOne = regexp.MustCompile(`\{\{\s*` + q + `\s*\|\s*int\s*-\s*1\s*\}\}`)
	return plain, intForm, intMinusOne
}

// matchBlockOpen reports whether the text opens a block conditional and
// returns the conditional name.
func matchBlockOpen(text string) (string, bool) {
	m := blockOpenRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// matchBlockClose reports whether the text closes a block conditional.
func matchBlockClose(text string) bool {
	return blockCloseRe.MatchString(text)
}

// placeholderKey classifies the raw inner text of a {{...}} occurrence and
// returns the variable name to record. ok is false for tokens that are not
// variables: mis-captured block tag fragments starting with '%'.
func placeholderKey(raw string) (string, bool) {
	name := strings.TrimSpace(raw)
	switch {
	case strings.Contains(name, ListPlaceholderName) && strings.Contains(name, ":"):
		// The text after the colon is a description, not part of the key.
		return ListPlaceholderName, true
	case strings.Contains(name, "|"):
		base := strings.TrimSpace(strings.SplitN(name, "|", 2)[0])
		if strings.HasPrefix(base, "%") {
			return "", false
		}
		return base, true
	default:
		if strings.HasPrefix(name, "%") {
			return "", false
		}
		return name, true
	}
}
