package carta

import (
	"strconv"
	"strings"
)

// RewriteText rewrites one paragraph's effective text against the given
// bindings. The passes run in a fixed order: inline conditionals, the
// multi-line list placeholder, scalar variables with their filter forms,
// and finally leftover-token cleanup. Text without any placeholder syntax
// comes back unchanged.
//
// Each pass keys its patterns on a specific binding name, so the map
// iteration order does not affect the result, and running the rewrite
// twice is a no-op.
func RewriteText(text string, variables Variables, conditionals Conditionals) string {
	text = rewriteInlineConditionals(text, conditionals)
	text = rewriteListPlaceholder(text, variables)
	text = rewriteScalars(text, variables)
	return cleanupLeftovers(text)
}

// rewriteInlineConditionals unwraps or deletes {% if name == 'sí' %}...{% endif %}
// constructs for every bound conditional, in both the bracket-marked and
// bare variants, then strips any remaining {% ... %} fragment. Orphaned
// tags are noise, not errors.
func rewriteInlineConditionals(text string, conditionals Conditionals) string {
	for name, value := range conditionals {
		marked, bare := inlineConditionalPatterns(name)
		if value == Yes {
			text = marked.ReplaceAllString(text, "${1}")
			text = bare.ReplaceAllString(text, "${1}")
		} else {
			text = marked.ReplaceAllString(text, "")
			text = bare.ReplaceAllString(text, "")
		}
	}
	return orphanTagRe.ReplaceAllString(text, "")
}

// rewriteListPlaceholder substitutes every {{lista_alto_directores: ...}}
// occurrence with the bound multi-line value, or deletes it when the
// binding is absent or empty. Matches are replaced in reverse order of
// appearance so earlier offsets stay valid as lengths change.
func rewriteListPlaceholder(text string, variables Variables) string {
	matches := listPlaceholderRe.FindAllStringIndex(text, -1)
	value := variables[ListPlaceholderName]

	for i := len(matches) - 1; i >= 0; i-- {
		start, end := matches[i][0], matches[i][1]
		text = text[:start] + value + text[end:]
	}
	return text
}

// rewriteScalars applies, for every bound variable, the plain form, the
// |int form and the |int - 1 form. The numeric filters never fail: a value
// that does not parse as an integer is substituted unchanged.
func rewriteScalars(text string, variables Variables) string {
	for name, value := range variables {
		if name == ListPlaceholderName {
			continue
		}

		plain, intForm, intMinusOne := scalarPatterns(name)

		text = plain.ReplaceAllLiteralString(text, value)
		text = intForm.ReplaceAllLiteralString(text, value)
		text = intMinusOne.ReplaceAllLiteralString(text, decrement(name, value))
	}
	return text
}

// decrement renders value-1 for the |int - 1 filter, falling back to the
// raw string when the value is not an integer. The fallback is silent at
// the API; it surfaces only on the debug log.
func decrement(name, value string) string {
	if value == "" {
		return ""
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Debug().Str("variable", name).Str("value", value).
			Msg("non-numeric value for int filter, substituting verbatim")
		return value
	}
	return strconv.Itoa(n - 1)
}

// cleanupLeftovers removes any surviving well-formed {{...}} token,
// optionally bracket-wrapped, plus the .mark artifacts the authoring
// toolchain leaves behind.
func cleanupLeftovers(text string) string {
	text = leftoverPlaceholderRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "[].mark", "")
	text = strings.ReplaceAll(text, ".mark", "")
	text = strings.ReplaceAll(text, "[.mark]", "")
	return text
}
