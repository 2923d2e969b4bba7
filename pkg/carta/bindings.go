package carta

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Answer values of a conditional binding. Anything else is treated as No.
const (
	Yes = "sí"
	No  = "no"
)

// Variables maps normalized variable names to their string values.
type Variables map[string]string

// Conditionals maps normalized conditional names to a two-valued answer
// (Yes/No). An absent key counts as No.
type Conditionals map[string]string

// IsYes reports whether the named conditional is bound to Yes. Unbound
// names default to No; that is never an error.
func (c Conditionals) IsYes(name string) bool {
	return c[name] == Yes
}

// nameAliases maps accent-folded spellings to the canonical variable name,
// so "Comisión" and "comision" resolve identically.
var nameAliases = map[string]string{
	"comision": "comision",
	"organo":   "organo",
}

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func stripAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeName resolves alternative spellings of a variable name. The name
// is lowercased and accent-stripped before the alias lookup; names without
// an alias entry are returned unchanged.
func NormalizeName(name string) string {
	folded := stripAccents(strings.ToLower(name))
	if canonical, ok := nameAliases[folded]; ok {
		return canonical
	}
	return name
}

// NormalizeAnswer maps the spellings accepted from imports and forms
// (SI, SÍ, 1 / NO, 0) onto the canonical Yes/No values. Other values pass
// through unchanged.
func NormalizeAnswer(value string) string {
	switch strings.ToUpper(value) {
	case "SI", "SÍ", "1":
		return Yes
	case "NO", "0":
		return No
	}
	return value
}
