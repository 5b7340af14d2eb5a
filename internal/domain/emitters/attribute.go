package emitters

import (
	"strings"

	m "github.com/mouse-blink/eghc/internal/model"
)

// CreateElement renders the construction of an element.
func CreateElement(tag string) string {
	return runtimeNamespace + ".createElement(" + JSString(tag) + ")"
}

// AttributeValue renders the JavaScript value of an attribute. exprJS
// renders one embedded expression. A non-empty scopeClass is appended to
// the value of a class attribute.
func AttributeValue(attr m.Attr, exprJS func(*m.Expr) string, scopeClass string) string {
	value := attributeValue(attr, exprJS)

	if scopeClass == "" || attr.Name != "class" {
		return value
	}

	if !attr.Dynamic() {
		return JSString(strings.TrimSpace(attr.StaticValue() + " " + scopeClass))
	}

	return value + " + " + JSString(" "+scopeClass)
}

func attributeValue(attr m.Attr, exprJS func(*m.Expr) string) string {
	if !attr.Dynamic() {
		return JSString(attr.StaticValue())
	}

	if len(attr.Parts) == 1 {
		return "(" + exprJS(attr.Parts[0].Expr) + ")"
	}

	var b strings.Builder

	b.WriteByte('`')

	for _, part := range attr.Parts {
		if part.Dynamic {
			b.WriteString("${" + exprJS(part.Expr) + "}")

			continue
		}

		b.WriteString(templateEscape(part.Text))
	}

	b.WriteByte('`')

	return b.String()
}

func templateEscape(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)
	text = strings.ReplaceAll(text, "`", "\\`")

	return strings.ReplaceAll(text, "${", "\\${")
}

// SetAttribute renders an attribute store.
func SetAttribute(node, name, value string) string {
	return Call("setAttribute", node, JSString(name), value)
}
