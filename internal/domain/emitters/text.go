package emitters

// CreateText renders the construction of a text node.
func CreateText(value string) string {
	return runtimeNamespace + ".createText(" + value + ")"
}

// StaticText renders a constant text node value.
func StaticText(text string) string {
	return JSString(text)
}

// DynamicText converts an expression to its displayed string.
func DynamicText(expr string) string {
	return "String(" + expr + ")"
}

// SetText refreshes a text node.
func SetText(node, expr string) string {
	return Call("setText", node, DynamicText(expr))
}
