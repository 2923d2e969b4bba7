package carta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndRestoreParagraphFormat(t *testing.T) {
	p := &Paragraph{
		Properties: &ParagraphProperties{
			Alignment: &Alignment{Val: "both"},
			Style:     &StyleRef{Val: "Textoindependiente"},
		},
		Runs: []Run{{
			Properties: &RunProperties{
				Bold:  &Toggle{},
				Fonts: &Fonts{ASCII: "Garamond", HAnsi: "Garamond"},
				Size:  &Size{Val: 22},
				Color: &Color{Val: "1F3864"},
			},
			Text: &Text{Content: "Estimado {{Nombre_Cliente}}:"},
		}},
	}

	snap := SaveParagraphFormat(p)
	p.SetText("Estimado ACME S.A.:")
	RestoreParagraphFormat(p, snap)

	require.NotNil(t, p.Properties)
	assert.Equal(t, "both", p.Properties.Alignment.Val)
	assert.Equal(t, "Textoindependiente", p.Properties.Style.Val)

	require.Len(t, p.Runs, 1)
	props := p.Runs[0].Properties
	require.NotNil(t, props)
	assert.True(t, props.Bold.On())
	assert.Equal(t, "Garamond", props.Fonts.ASCII)
	assert.Equal(t, 22, props.Size.Val)
	assert.Equal(t, "1F3864", props.Color.Val)
	assert.Equal(t, "Estimado ACME S.A.:", p.Text())
}

func TestRestoreParagraphFormatStopsAtShorterList(t *testing.T) {
	// The rewrite collapses the paragraph to one run; only the first saved
	// run format is reapplied and the rest is dropped.
	p := &Paragraph{Runs: []Run{
		{Properties: &RunProperties{Bold: &Toggle{}}, Text: &Text{Content: "negrita "}},
		{Properties: &RunProperties{Italic: &Toggle{}}, Text: &Text{Content: "cursiva"}},
	}}

	snap := SaveParagraphFormat(p)
	require.Len(t, snap.Runs, 2)

	p.SetText("texto nuevo")
	RestoreParagraphFormat(p, snap)

	require.Len(t, p.Runs, 1)
	require.NotNil(t, p.Runs[0].Properties)
	assert.True(t, p.Runs[0].Properties.Bold.On())
	assert.Nil(t, p.Runs[0].Properties.Italic)
}

func TestRestoreRunFormatExplicitOff(t *testing.T) {
	p := &Paragraph{Runs: []Run{{
		Properties: &RunProperties{Bold: &Toggle{Val: "0"}},
		Text:       &Text{Content: "texto"},
	}}}

	snap := SaveParagraphFormat(p)
	p.SetText("otro texto")
	RestoreParagraphFormat(p, snap)

	props := p.Runs[0].Properties
	require.NotNil(t, props)
	require.NotNil(t, props.Bold)
	assert.False(t, props.Bold.On(), "an explicit off toggle survives the round trip")
}

func TestSaveParagraphFormatUnformattedRun(t *testing.T) {
	p := makeParagraph("sin formato")
	snap := SaveParagraphFormat(p)

	require.Len(t, snap.Runs, 1)
	assert.Nil(t, snap.Runs[0].Bold)
	assert.Nil(t, snap.Runs[0].Italic)
	assert.Nil(t, snap.Runs[0].Underline)

	p.SetText("texto nuevo")
	RestoreParagraphFormat(p, snap)
	assert.Nil(t, p.Runs[0].Properties, "nothing to restore leaves the run untouched")
}

func TestStripUnderlines(t *testing.T) {
	underlined := &Paragraph{Runs: []Run{{
		Properties: &RunProperties{Underline: &Underline{Val: "single"}},
		Text:       &Text{Content: "subrayado"},
	}}}
	plain := makeParagraph("normal")
	table := &Table{Rows: []TableRow{{Cells: []TableCell{{
		Paragraphs: []Paragraph{{Runs: []Run{{
			Properties: &RunProperties{Underline: &Underline{Val: "single"}},
			Text:       &Text{Content: "celda"},
		}}}},
	}}}}}

	doc := &Document{Body: &Body{Elements: []BodyElement{underlined, plain, table}}}
	StripUnderlines(doc)

	assert.Equal(t, "none", underlined.Runs[0].Properties.Underline.Val)
	require.NotNil(t, plain.Runs[0].Properties, "bare runs get properties so the override is explicit")
	assert.Equal(t, "none", plain.Runs[0].Properties.Underline.Val)
	assert.Equal(t, "none", table.Rows[0].Cells[0].Paragraphs[0].Runs[0].Properties.Underline.Val)
}

func TestStripUnderlinesOverridesInheritedFormatting(t *testing.T) {
	// A run with character properties but no w:u of its own may still be
	// underlined through a paragraph or character style; the strip writes an
	// explicit "none" so the inherited underline cannot survive.
	styled := &Paragraph{
		Properties: &ParagraphProperties{Style: &StyleRef{Val: "Subrayadointenso"}},
		Runs: []Run{{
			Properties: &RunProperties{Bold: &Toggle{}},
			Text:       &Text{Content: "texto con estilo"},
		}},
	}

	doc := &Document{Body: &Body{Elements: []BodyElement{styled}}}
	StripUnderlines(doc)

	require.NotNil(t, styled.Runs[0].Properties.Underline)
	assert.Equal(t, "none", styled.Runs[0].Properties.Underline.Val)
	assert.True(t, styled.Runs[0].Properties.Bold.On(), "other character formatting is untouched")
}

func TestUnderlineRestoreEmitsStyleValues(t *testing.T) {
	p := &Paragraph{Runs: []Run{{
		Properties: &RunProperties{Underline: &Underline{Val: "single"}},
		Text:       &Text{Content: "texto"},
	}}}

	snap := SaveParagraphFormat(p)
	p.SetText("nuevo")
	RestoreParagraphFormat(p, snap)

	require.NotNil(t, p.Runs[0].Properties.Underline)
	assert.Equal(t, "single", p.Runs[0].Properties.Underline.Val)
}
