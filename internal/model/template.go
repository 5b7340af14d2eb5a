package model

// NodeID identifies one constructed DOM node within a component.
type NodeID int

// TargetType is the kind of DOM mutation a dependency target needs.
type TargetType int

// Target kinds.
const (
	TargetTextContent TargetType = iota
	TargetAttribute
	TargetEventListener
	TargetStructural
)

func (t TargetType) String() string {
	switch t {
	case TargetTextContent:
		return "text"
	case TargetAttribute:
		return "attribute"
	case TargetEventListener:
		return "event"
	case TargetStructural:
		return "structural"
	default:
		return "unknown"
	}
}

// DependencyTarget is a DOM location bound to a template expression.
type DependencyTarget struct {
	NodeID NodeID
	Type   TargetType
	// Name is the attribute name or event name.
	Name       string
	Expression string
	Reads      []string
	Offset     int
	Block      int // control block index for structural targets, -1 otherwise
}

// Refreshes reports whether the target must be updated when a signal fires.
func (t DependencyTarget) Refreshes() bool {
	return t.Type != TargetEventListener
}

// NodeKind classifies template construction nodes.
type NodeKind int

// Node kinds.
const (
	NodeElement NodeKind = iota
	NodeText
	NodeDynamicText
	NodeAnchor
)

// AttrPart is a static or dynamic fragment of an attribute value.
type AttrPart struct {
	Text    string
	Expr    *Expr
	Dynamic bool
}

// Attr is an element attribute as written in the template.
type Attr struct {
	Name  string
	Parts []AttrPart
	Event bool
}

// Dynamic reports whether any part of the value is an expression.
func (a Attr) Dynamic() bool {
	for _, part := range a.Parts {
		if part.Dynamic {
			return true
		}
	}

	return false
}

// StaticValue joins the static parts of the value.
func (a Attr) StaticValue() string {
	value := ""
	for _, part := range a.Parts {
		value += part.Text
	}

	return value
}

// TemplateNode is one node of the construction tree.
type TemplateNode struct {
	ID       NodeID
	Kind     NodeKind
	Tag      string
	Text     string
	Expr     *Expr
	Attrs    []Attr
	Children []*TemplateNode
	// Block is set on anchors and indexes Template.Blocks.
	Block  int
	Offset int
}

// Branch is one arm of a control block. An empty Condition marks `{:else}`.
type Branch struct {
	Condition *Expr
	Children  []*TemplateNode
}

// ControlBlock is an `{#if}` block anchored at Anchor.
type ControlBlock struct {
	Index    int
	Anchor   NodeID
	Branches []Branch
	Offset   int
}

// Template is the bound template of a component.
type Template struct {
	Roots   []*TemplateNode
	Blocks  []*ControlBlock
	Targets []*DependencyTarget
	Nodes   int
}
