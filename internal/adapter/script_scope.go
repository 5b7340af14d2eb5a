package adapter

import (
	sitter "github.com/smacker/go-tree-sitter"

	m "github.com/mouse-blink/eghc/internal/model"
)

// scopeWalker collects the free identifiers read and written under a node.
// Names bound by nested functions, blocks, loops and catch clauses shadow
// the top-level names and are not reported.
type scopeWalker struct {
	content []byte
	scopes  []map[string]bool
	depth   int // nested function depth
	reads   []m.NameRef
	writes  []m.WriteSite
}

func newScopeWalker(content []byte) *scopeWalker {
	return &scopeWalker{content: content}
}

func (w *scopeWalker) shadowed(name string) bool {
	for i := len(w.scopes) - 1; i >= 0; i-- {
		if w.scopes[i][name] {
			return true
		}
	}

	return false
}

func (w *scopeWalker) push(names map[string]bool) {
	w.scopes = append(w.scopes, names)
}

func (w *scopeWalker) pop() {
	w.scopes = w.scopes[:len(w.scopes)-1]
}

func (w *scopeWalker) read(ident *sitter.Node) {
	name := ident.Content(w.content)
	if w.shadowed(name) {
		return
	}

	w.reads = append(w.reads, m.NameRef{Name: name, Offset: int(ident.StartByte())})
}

func (w *scopeWalker) write(ident, site *sitter.Node) {
	name := ident.Content(w.content)
	if w.shadowed(name) {
		return
	}

	w.writes = append(w.writes, m.WriteSite{
		Name:     name,
		Start:    int(site.StartByte()),
		End:      int(site.EndByte()),
		Deferred: w.depth > 0,
	})
}

func (w *scopeWalker) walkChildren(node *sitter.Node) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		w.walk(node.NamedChild(i))
	}
}

//nolint:cyclop // One case per syntax form keeps the scoping rules in one place.
func (w *scopeWalker) walk(node *sitter.Node) {
	if node == nil {
		return
	}

	switch node.Type() {
	case "identifier", "shorthand_property_identifier":
		w.read(node)
	case "property_identifier", "private_property_identifier", "statement_identifier",
		"this", "super", "comment", "string", "number", "regex", "true", "false", "null", "undefined":
		return
	case "member_expression":
		w.walk(node.ChildByFieldName("object"))
	case "pair":
		if key := node.ChildByFieldName("key"); key != nil && key.Type() == "computed_property_name" {
			w.walk(key)
		}

		w.walk(node.ChildByFieldName("value"))
	case "assignment_expression":
		w.assignment(node, false)
	case "augmented_assignment_expression":
		w.assignment(node, true)
	case "update_expression":
		if arg := node.ChildByFieldName("argument"); arg != nil {
			w.target(arg, node, true)
		}
	case "arrow_function", "function", "function_expression", "function_declaration",
		"generator_function", "generator_function_declaration", "method_definition":
		w.function(node)
	case "statement_block", "class_body":
		w.push(blockDeclarations(node, w.content))
		w.walkChildren(node)
		w.pop()
	case "lexical_declaration", "variable_declaration":
		w.declaration(node)
	case "class_declaration", "class":
		w.walk(node.ChildByFieldName("body"))

		for i := 0; i < int(node.NamedChildCount()); i++ {
			if child := node.NamedChild(i); child.Type() == "class_heritage" {
				w.walk(child)
			}
		}
	case "for_statement":
		w.push(loopDeclarations(node.ChildByFieldName("initializer"), w.content))
		w.walkChildren(node)
		w.pop()
	case "for_in_statement":
		w.forIn(node)
	case "catch_clause":
		names := make(map[string]bool)
		for _, ident := range patternIdentifiers(node.ChildByFieldName("parameter")) {
			names[ident.Content(w.content)] = true
		}

		w.push(names)
		w.walk(node.ChildByFieldName("body"))
		w.pop()
	case "labeled_statement":
		w.walk(node.ChildByFieldName("body"))
	case "ERROR":
		return
	default:
		w.walkChildren(node)
	}
}

func (w *scopeWalker) assignment(node *sitter.Node, compound bool) {
	if left := node.ChildByFieldName("left"); left != nil {
		w.target(left, node, compound)
	}

	w.walk(node.ChildByFieldName("right"))
}

// target records the stores made by an assignment left-hand side. A member
// store counts as a write of its root object.
func (w *scopeWalker) target(left, site *sitter.Node, alsoRead bool) {
	switch left.Type() {
	case "identifier":
		if alsoRead {
			w.read(left)
		}

		w.write(left, site)
	case "parenthesized_expression":
		if left.NamedChildCount() > 0 {
			w.target(left.NamedChild(0), site, alsoRead)
		}
	case "member_expression", "subscript_expression":
		root := left
		for root.Type() == "member_expression" || root.Type() == "subscript_expression" {
			if index := root.ChildByFieldName("index"); index != nil {
				w.walk(index)
			}

			root = root.ChildByFieldName("object")
			if root == nil {
				return
			}
		}

		if root.Type() == "identifier" {
			w.read(root)
			w.write(root, site)

			return
		}

		w.walk(root)
	case "object_pattern", "array_pattern":
		for _, ident := range patternIdentifiers(left) {
			w.write(ident, site)
		}

		w.patternDefaults(left)
	default:
		w.walk(left)
	}
}

// patternDefaults walks the default value expressions inside a pattern.
func (w *scopeWalker) patternDefaults(node *sitter.Node) {
	if node == nil {
		return
	}

	switch node.Type() {
	case "assignment_pattern", "object_assignment_pattern":
		w.walk(node.ChildByFieldName("right"))
		w.patternDefaults(node.ChildByFieldName("left"))
	case "pair_pattern":
		if key := node.ChildByFieldName("key"); key != nil && key.Type() == "computed_property_name" {
			w.walk(key)
		}

		w.patternDefaults(node.ChildByFieldName("value"))
	default:
		for i := 0; i < int(node.NamedChildCount()); i++ {
			w.patternDefaults(node.NamedChild(i))
		}
	}
}

func (w *scopeWalker) function(node *sitter.Node) {
	names := make(map[string]bool)

	if node.Type() != "function_declaration" && node.Type() != "generator_function_declaration" {
		if name := node.ChildByFieldName("name"); name != nil && name.Type() == "identifier" {
			names[name.Content(w.content)] = true
		}
	}

	params := node.ChildByFieldName("parameters")
	if params == nil {
		params = node.ChildByFieldName("parameter")
	}

	for _, ident := range patternIdentifiers(params) {
		names[ident.Content(w.content)] = true
	}

	body := node.ChildByFieldName("body")
	if body != nil && body.Type() == "statement_block" {
		for name := range functionDeclarations(body, w.content) {
			names[name] = true
		}
	}

	w.push(names)
	w.depth++
	w.patternDefaults(params)

	if body != nil && body.Type() == "statement_block" {
		w.walkChildren(body)
	} else {
		w.walk(body)
	}

	w.depth--
	w.pop()
}

func (w *scopeWalker) declaration(node *sitter.Node) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		declarator := node.NamedChild(i)
		if declarator.Type() != "variable_declarator" {
			continue
		}

		w.patternDefaults(declarator.ChildByFieldName("name"))
		w.walk(declarator.ChildByFieldName("value"))
	}
}

func (w *scopeWalker) forIn(node *sitter.Node) {
	left := node.ChildByFieldName("left")
	names := make(map[string]bool)

	if node.ChildByFieldName("kind") != nil {
		for _, ident := range patternIdentifiers(left) {
			names[ident.Content(w.content)] = true
		}
	} else if left != nil {
		w.target(left, node, false)
	}

	w.walk(node.ChildByFieldName("right"))
	w.push(names)
	w.walk(node.ChildByFieldName("body"))
	w.pop()
}

// blockDeclarations returns the names declared directly inside a block.
func blockDeclarations(block *sitter.Node, content []byte) map[string]bool {
	names := make(map[string]bool)

	for i := 0; i < int(block.NamedChildCount()); i++ {
		for _, name := range declaredNames(block.NamedChild(i), content) {
			names[name] = true
		}
	}

	return names
}

// functionDeclarations returns every name declared in a function body,
// without descending into nested functions.
func functionDeclarations(body *sitter.Node, content []byte) map[string]bool {
	names := make(map[string]bool)
	stack := []*sitter.Node{body}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, name := range declaredNames(node, content) {
			names[name] = true
		}

		switch node.Type() {
		case "arrow_function", "function", "function_expression", "function_declaration",
			"generator_function", "generator_function_declaration", "method_definition", "class_body":
			if node != body {
				continue
			}
		}

		for i := 0; i < int(node.NamedChildCount()); i++ {
			stack = append(stack, node.NamedChild(i))
		}
	}

	return names
}

func loopDeclarations(initializer *sitter.Node, content []byte) map[string]bool {
	names := make(map[string]bool)
	if initializer == nil {
		return names
	}

	for _, name := range declaredNames(initializer, content) {
		names[name] = true
	}

	return names
}

func declaredNames(node *sitter.Node, content []byte) []string {
	var names []string

	switch node.Type() {
	case "lexical_declaration", "variable_declaration":
		for i := 0; i < int(node.NamedChildCount()); i++ {
			declarator := node.NamedChild(i)
			if declarator.Type() != "variable_declarator" {
				continue
			}

			for _, ident := range patternIdentifiers(declarator.ChildByFieldName("name")) {
				names = append(names, ident.Content(content))
			}
		}
	case "function_declaration", "generator_function_declaration", "class_declaration":
		if name := node.ChildByFieldName("name"); name != nil {
			names = append(names, name.Content(content))
		}
	}

	return names
}
