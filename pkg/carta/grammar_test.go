package carta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderKey(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"plain", "Nombre_Cliente", "Nombre_Cliente", true},
		{"padded", "  Nombre_Cliente  ", "Nombre_Cliente", true},
		{"int filter", "Numero_Directores | int", "Numero_Directores", true},
		{"int minus one filter", "Numero_Directores | int - 1", "Numero_Directores", true},
		{"list with description", "lista_alto_directores: nombre y cargo", ListPlaceholderName, true},
		{"list description spanning lines", "lista_alto_directores: nombre\ny cargo", ListPlaceholderName, true},
		{"block tag fragment", "% if experto == 'sí' %", "", false},
		{"block tag fragment with pipe", "% if x %| int", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := placeholderKey(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchBlockOpen(t *testing.T) {
	name, ok := matchBlockOpen("{% if experto == 'sí' %}")
	require.True(t, ok)
	assert.Equal(t, "experto", name)

	name, ok = matchBlockOpen("{% if unidad_decision  ==  'sí' %}")
	require.True(t, ok)
	assert.Equal(t, "unidad_decision", name)

	_, ok = matchBlockOpen("texto {% if experto == 'sí' %}")
	assert.False(t, ok, "open marker must be anchored at the paragraph start")

	_, ok = matchBlockOpen("{% if experto == 'no' %}")
	assert.False(t, ok, "only the Yes comparison opens a block")
}

func TestMatchBlockClose(t *testing.T) {
	assert.True(t, matchBlockClose("{% endif %}"))
	assert.True(t, matchBlockClose("{% endif %} "))
	assert.False(t, matchBlockClose("texto {% endif %}"))
}

func TestInlineConditionalPatterns(t *testing.T) {
	marked, bare := inlineConditionalPatterns("experto")

	assert.True(t, marked.MatchString("[{% if experto == 'sí' %}].mark texto [{% endif %}].mark"))
	assert.True(t, bare.MatchString("{% if experto == 'sí' %} texto {% endif %}"))
	assert.True(t, bare.MatchString("{% if experto == 'sí' %}línea 1\nlínea 2{% endif %}"),
		"inline conditionals span newlines")
	assert.False(t, bare.MatchString("{% if otro == 'sí' %} texto {% endif %}"))
}

func TestScalarPatterns(t *testing.T) {
	plain, intForm, intMinusOne := scalarPatterns("Numero_Directores")

	assert.True(t, plain.MatchString("{{Numero_Directores}}"))
	assert.True(t, plain.MatchString("{{ Numero_Directores }}"))
	assert.True(t, intForm.MatchString("{{ Numero_Directores | int }}"))
	assert.True(t, intForm.MatchString("{{Numero_Directores|int}}"))
	assert.True(t, intMinusOne.MatchString("{{ Numero_Directores | int - 1 }}"))
	assert.True(t, intMinusOne.MatchString("{{Numero_Directores|int-1}}"))

	assert.False(t, plain.MatchString("{{ Otro }}"))
	assert.False(t, intForm.MatchString("{{ Numero_Directores }}"))
}

func TestListPlaceholderRegex(t *testing.T) {
	assert.True(t, listPlaceholderRe.MatchString("{{lista_alto_directores: nombre, cargo}}"))
	assert.True(t, listPlaceholderRe.MatchString("{{lista_alto_directores: nombre\ncargo\nfecha}}"),
		"the description may span multiple lines")
	assert.False(t, listPlaceholderRe.MatchString("{{lista_alto_directores}}"))
}
