package adapter

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// UnsupportedError is reported for script constructs that have no
// JavaScript equivalent the compiler can emit. Offset is relative to the
// text handed to the adapter.
type UnsupportedError struct {
	Offset    int
	Construct string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported %s at byte %d", e.Construct, e.Offset)
}

// typeOnlyNodes carry no runtime behavior and are blanked whole.
var typeOnlyNodes = map[string]bool{
	"interface_declaration":     true,
	"type_alias_declaration":    true,
	"ambient_declaration":       true,
	"function_signature":        true,
	"method_signature":          true,
	"abstract_method_signature": true,
	"index_signature":           true,
	"type_annotation":           true,
	"type_predicate_annotation": true,
	"asserts_annotation":        true,
	"opting_type_annotation":    true,
	"omitting_type_annotation":  true,
	"adding_type_annotation":    true,
	"type_arguments":            true,
	"type_parameters":           true,
	"implements_clause":         true,
	"accessibility_modifier":    true,
	"override_modifier":         true,
}

// runtimeTypeConstructs emit code in TypeScript and cannot be erased.
var runtimeTypeConstructs = map[string]string{
	"enum_declaration":           "enum declaration",
	"internal_module":            "namespace declaration",
	"module":                     "module declaration",
	"abstract_class_declaration": "abstract class",
	"import_alias":               "import alias",
}

// eraseTypes parses content as TypeScript and returns a copy with every
// type-only construct replaced by spaces. Line breaks are kept, so byte
// offsets and line numbers of the remaining JavaScript do not move.
func (a *TreeSitterScriptAdapter) eraseTypes(ctx context.Context, content []byte) ([]byte, error) {
	tree, err := a.parse(ctx, content, typescript.GetLanguage())
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	e := &typeEraser{out: append([]byte(nil), content...)}
	if err := e.visit(tree.RootNode()); err != nil {
		return nil, err
	}

	return e.out, nil
}

type typeEraser struct {
	out []byte
}

func (e *typeEraser) blank(from, to uint32) {
	for i := from; i < to && int(i) < len(e.out); i++ {
		if e.out[i] != '\n' && e.out[i] != '\r' {
			e.out[i] = ' '
		}
	}
}

func (e *typeEraser) blankNode(node *sitter.Node) {
	e.blank(node.StartByte(), node.EndByte())
}

// blankTokens blanks the anonymous children of node whose text is listed.
func (e *typeEraser) blankTokens(node *sitter.Node, tokens ...string) {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.IsNamed() {
			continue
		}

		for _, token := range tokens {
			if child.Type() == token {
				e.blankNode(child)
			}
		}
	}
}

func hasToken(node *sitter.Node, token string) bool {
	for i := 0; i < int(node.ChildCount()); i++ {
		if child := node.Child(i); !child.IsNamed() && child.Type() == token {
			return true
		}
	}

	return false
}

func (e *typeEraser) unsupported(node *sitter.Node, construct string) error {
	return &UnsupportedError{Offset: int(node.StartByte()), Construct: construct}
}

func (e *typeEraser) visitChildren(node *sitter.Node) error {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if err := e.visit(node.NamedChild(i)); err != nil {
			return err
		}
	}

	return nil
}

//nolint:cyclop // One case per TypeScript form.
func (e *typeEraser) visit(node *sitter.Node) error {
	kind := node.Type()

	if construct, ok := runtimeTypeConstructs[kind]; ok {
		return e.unsupported(node, construct)
	}

	if typeOnlyNodes[kind] {
		e.blankNode(node)

		return nil
	}

	switch kind {
	case "export_statement":
		// export type { A }, export interface A {}, export declare ...
		if hasToken(node, "type") {
			e.blankNode(node)

			return nil
		}

		if decl := node.ChildByFieldName("declaration"); decl != nil && typeOnlyNodes[decl.Type()] {
			e.blankNode(node)

			return nil
		}
	case "import_statement":
		if hasToken(node, "type") {
			e.blankNode(node)

			return nil
		}
	case "import_specifier":
		if hasToken(node, "type") {
			e.blankSpecifier(node)

			return nil
		}
	case "as_expression", "satisfies_expression":
		e.blankFromToken(node, "as", "satisfies")
	case "non_null_expression":
		e.blankTokens(node, "!")
	case "optional_parameter":
		if hasAccessibility(node) {
			return e.unsupported(node, "parameter property")
		}

		e.blankTokens(node, "?")
	case "required_parameter":
		if hasAccessibility(node) || hasToken(node, "readonly") {
			return e.unsupported(node, "parameter property")
		}
	case "variable_declarator":
		e.blankTokens(node, "!")
	case "public_field_definition":
		if hasToken(node, "declare") || hasToken(node, "abstract") {
			e.blankNode(node)

			return nil
		}

		e.blankTokens(node, "readonly", "?", "!")
	case "method_definition":
		e.blankTokens(node, "?")
	}

	return e.visitChildren(node)
}

func hasAccessibility(node *sitter.Node) bool {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if node.NamedChild(i).Type() == "accessibility_modifier" {
			return true
		}
	}

	return false
}

// blankFromToken blanks from the first listed keyword to the end of node:
// `x as T` keeps `x`.
func (e *typeEraser) blankFromToken(node *sitter.Node, tokens ...string) {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		for _, token := range tokens {
			if !child.IsNamed() && child.Type() == token {
				e.blank(child.StartByte(), node.EndByte())

				return
			}
		}
	}
}

// blankSpecifier removes a type-only import specifier together with one
// adjacent comma so the remaining named imports stay well formed.
func (e *typeEraser) blankSpecifier(node *sitter.Node) {
	e.blankNode(node)

	if next := node.NextSibling(); next != nil && next.Type() == "," {
		e.blankNode(next)

		return
	}

	if prev := node.PrevSibling(); prev != nil && prev.Type() == "," {
		e.blankNode(prev)
	}
}
