package model

// Section is one tagged region of a component file.
type Section struct {
	Text    string
	Offset  int // byte offset of Text inside the component source
	Present bool
	Attrs   map[string]string
}

// Component is a component source split into its sections.
type Component struct {
	ID       string
	Source   string
	Template Section
	Script   Section
	Style    Section
	Lang     ScriptLang
}

// HasStyle reports whether the component carries a non-empty style section.
func (c Component) HasStyle() bool {
	return c.Style.Present && c.Style.Text != ""
}

// ProcessedStyles is the scoped stylesheet of a component.
type ProcessedStyles struct {
	CSS        string
	ScopeClass string
}
