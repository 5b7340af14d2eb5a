package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/eghc/internal/model"
)

func TestExtractSection(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		tag         string
		wantPresent bool
		wantText    string
		wantOffset  int
		wantWarning bool
	}{
		{
			name:        "trims inner text and records its offset",
			source:      "<script>\n  let a = 1;\n</script>",
			tag:         TagScript,
			wantPresent: true,
			wantText:    "let a = 1;",
			wantOffset:  11,
		},
		{
			name:   "missing section is absent without warning",
			source: "<template><p>hi</p></template>",
			tag:    TagStyle,
		},
		{
			name:        "unterminated section is absent with warning",
			source:      "<style>\n.a { color: red; }\n",
			tag:         TagStyle,
			wantWarning: true,
		},
		{
			name:        "only the first occurrence is honored",
			source:      "<style>.a {}</style><style>.b {}</style>",
			tag:         TagStyle,
			wantPresent: true,
			wantText:    ".a {}",
			wantOffset:  7,
		},
		{
			name:        "longer tag names do not match",
			source:      "<templates>x</templates><template>y</template>",
			tag:         TagTemplate,
			wantPresent: true,
			wantText:    "y",
			wantOffset:  34,
		},
		{
			name:        "empty section is present",
			source:      "<script></script>",
			tag:         TagScript,
			wantPresent: true,
			wantOffset:  8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section, warning := ExtractSection(tt.source, tt.tag)

			assert.Equal(t, tt.wantPresent, section.Present)
			assert.Equal(t, tt.wantText, section.Text)

			if tt.wantPresent {
				assert.Equal(t, tt.wantOffset, section.Offset)
			}

			if tt.wantWarning {
				require.NotNil(t, warning)
				assert.Equal(t, string(KindSectionMalformed), warning.Kind)
				assert.Equal(t, 0, warning.Offset)
			} else {
				assert.Nil(t, warning)
			}
		})
	}
}

func TestExtractSections(t *testing.T) {
	source := `<template><p>{n}</p></template>
<script lang="ts">let n: number = 0;</script>
<style scoped>
p { color: red; }
`

	component, warnings := ExtractSections("Widget", source)

	assert.Equal(t, "Widget", component.ID)
	assert.Equal(t, source, component.Source)
	assert.Equal(t, "<p>{n}</p>", component.Template.Text)
	assert.Equal(t, "let n: number = 0;", component.Script.Text)
	assert.Equal(t, m.LangTypeScript, component.Lang)
	assert.False(t, component.Style.Present)
	assert.False(t, component.HasStyle())

	require.Len(t, warnings, 1)
	assert.Equal(t, string(KindSectionMalformed), warnings[0].Kind)
	assert.Contains(t, warnings[0].Message, "</style>")
}

func TestExtractSections_DefaultsToJavaScript(t *testing.T) {
	component, warnings := ExtractSections("Plain", "<script>let a = 1;</script>")

	assert.Empty(t, warnings)
	assert.Equal(t, m.LangJavaScript, component.Lang)
	assert.False(t, component.Template.Present)
}

func TestScriptLang(t *testing.T) {
	tests := []struct {
		attr string
		want m.ScriptLang
	}{
		{attr: "ts", want: m.LangTypeScript},
		{attr: "TypeScript", want: m.LangTypeScript},
		{attr: "javascript", want: m.LangJavaScript},
		{attr: " js ", want: m.LangJavaScript},
		{attr: "Coffee", want: m.ScriptLang("coffee")},
	}

	for _, tt := range tests {
		t.Run(tt.attr, func(t *testing.T) {
			assert.Equal(t, tt.want, scriptLang(tt.attr))
		})
	}
}
