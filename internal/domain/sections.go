package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/eghc/internal/model"
)

// Section tags of a component file.
const (
	TagTemplate = "template"
	TagScript   = "script"
	TagStyle    = "style"
)

// ExtractSection locates the first <tag ...>...</tag> region of source by
// textual search. A missing section is reported as absent. An opening tag
// without a closing tag yields an absent section and a SectionMalformed
// warning.
func ExtractSection(source, tag string) (m.Section, *m.Warning) {
	open := findOpenTag(source, tag, 0)
	if open < 0 {
		return m.Section{}, nil
	}

	headerEnd := strings.IndexByte(source[open:], '>')
	if headerEnd < 0 {
		return m.Section{}, &m.Warning{
			Kind:    string(KindSectionMalformed),
			Offset:  open,
			Message: fmt.Sprintf("<%s> opening tag is never closed", tag),
		}
	}

	header := source[open+1+len(tag) : open+headerEnd]
	bodyStart := open + headerEnd + 1

	closeTag := "</" + tag + ">"

	bodyLen := strings.Index(source[bodyStart:], closeTag)
	if bodyLen < 0 {
		return m.Section{}, &m.Warning{
			Kind:    string(KindSectionMalformed),
			Offset:  open,
			Message: fmt.Sprintf("missing %s", closeTag),
		}
	}

	raw := source[bodyStart : bodyStart+bodyLen]
	trimmedLeft := strings.TrimLeft(raw, " \t\r\n")

	return m.Section{
		Text:    strings.TrimRight(trimmedLeft, " \t\r\n"),
		Offset:  bodyStart + len(raw) - len(trimmedLeft),
		Present: true,
		Attrs:   parseTagAttrs(header),
	}, nil
}

// findOpenTag returns the offset of the first "<tag" followed by '>', '/'
// or whitespace, starting at from.
func findOpenTag(source, tag string, from int) int {
	needle := "<" + tag

	for from < len(source) {
		idx := strings.Index(source[from:], needle)
		if idx < 0 {
			return -1
		}

		pos := from + idx
		next := pos + len(needle)

		if next >= len(source) {
			return pos
		}

		switch source[next] {
		case '>', '/', ' ', '\t', '\n', '\r':
			return pos
		}

		from = next
	}

	return -1
}

// parseTagAttrs reads name="value" pairs from an opening tag header.
func parseTagAttrs(header string) map[string]string {
	attrs := make(map[string]string)

	fields := strings.Fields(strings.TrimSuffix(strings.TrimSpace(header), "/"))
	for _, field := range fields {
		name, value, found := strings.Cut(field, "=")
		if !found {
			attrs[name] = ""
			continue
		}

		attrs[name] = strings.Trim(value, `"'`)
	}

	return attrs
}

// ExtractSections splits a component source into its three sections.
func ExtractSections(id, source string) (m.Component, []m.Warning) {
	var warnings []m.Warning

	component := m.Component{ID: id, Source: source, Lang: m.LangJavaScript}

	for _, tag := range []string{TagTemplate, TagScript, TagStyle} {
		section, warning := ExtractSection(source, tag)
		if warning != nil {
			warnings = append(warnings, *warning)
		}

		switch tag {
		case TagTemplate:
			component.Template = section
		case TagScript:
			component.Script = section
			if lang := section.Attrs["lang"]; lang != "" {
				component.Lang = scriptLang(lang)
			}
		case TagStyle:
			component.Style = section
		}
	}

	return component, warnings
}

// scriptLang normalizes the lang attribute of a script section. Unknown
// languages are kept as written and rejected by the compiler.
func scriptLang(attr string) m.ScriptLang {
	switch lang := strings.ToLower(strings.TrimSpace(attr)); lang {
	case "javascript", "js":
		return m.LangJavaScript
	case "typescript", "ts":
		return m.LangTypeScript
	default:
		return m.ScriptLang(lang)
	}
}
