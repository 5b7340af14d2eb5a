package adapter

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	m "github.com/mouse-blink/eghc/internal/model"
)

// reactiveLabel marks a reactive statement: `$: doubled = count * 2`.
const reactiveLabel = "$"

// ScriptAdapter turns component script text into the statement model the
// reactivity analyzer walks. Parsing is delegated to tree-sitter.
type ScriptAdapter interface {
	// ParseScript parses a whole script section written in lang.
	ParseScript(ctx context.Context, source string, lang m.ScriptLang) (m.Script, error)

	// ParseExpression parses a single template expression.
	ParseExpression(ctx context.Context, expr string) (m.Expr, error)
}

// SyntaxError is reported when the script does not parse. Offset is relative
// to the text handed to the adapter.
type SyntaxError struct {
	Offset  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at byte %d: %s", e.Offset, e.Message)
}

// TreeSitterScriptAdapter parses scripts with the tree-sitter JavaScript
// grammar; TypeScript is first reduced to JavaScript with the TypeScript
// grammar. A new parser is created per call, so it is safe for concurrent
// use.
type TreeSitterScriptAdapter struct{}

// NewTreeSitterScriptAdapter constructs a TreeSitterScriptAdapter.
func NewTreeSitterScriptAdapter() *TreeSitterScriptAdapter {
	return &TreeSitterScriptAdapter{}
}

func (a *TreeSitterScriptAdapter) parse(ctx context.Context, content []byte, language *sitter.Language) (*sitter.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("script parse canceled: %w", err)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(language)

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}

	if root := tree.RootNode(); root.HasError() {
		defer tree.Close()

		return nil, syntaxErrorAt(root, content)
	}

	return tree, nil
}

// ParseScript parses the script and classifies its top-level statements.
func (a *TreeSitterScriptAdapter) ParseScript(ctx context.Context, source string, lang m.ScriptLang) (m.Script, error) {
	content := []byte(source)

	switch lang {
	case m.LangJavaScript, "":
		lang = m.LangJavaScript
	case m.LangTypeScript:
		stripped, err := a.eraseTypes(ctx, content)
		if err != nil {
			return m.Script{}, err
		}

		content = stripped
	default:
		return m.Script{}, &UnsupportedError{Construct: fmt.Sprintf("script lang %q", lang)}
	}

	tree, err := a.parse(ctx, content, javascript.GetLanguage())
	if err != nil {
		return m.Script{}, err
	}
	defer tree.Close()

	root := tree.RootNode()
	script := m.Script{Source: string(content), Lang: lang}

	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)
		if node.Type() == "comment" {
			continue
		}

		script.Stmts = append(script.Stmts, topLevelStmt(node, content))
	}

	return script, nil
}

// ParseExpression parses expr in expression position. Offsets in the result
// are relative to expr.
func (a *TreeSitterScriptAdapter) ParseExpression(ctx context.Context, expr string) (m.Expr, error) {
	content := []byte("(" + expr + "\n)")

	tree, err := a.parse(ctx, content, javascript.GetLanguage())
	if err != nil {
		var syntaxErr *SyntaxError
		if errors.As(err, &syntaxErr) {
			return m.Expr{}, &SyntaxError{Offset: max(syntaxErr.Offset-1, 0), Message: syntaxErr.Message}
		}

		return m.Expr{}, err
	}
	defer tree.Close()

	w := newScopeWalker(content)
	w.walk(tree.RootNode())

	result := m.Expr{Source: expr}
	for _, ref := range w.reads {
		ref.Offset--
		result.Reads = append(result.Reads, ref)
	}

	for _, site := range w.writes {
		site.Start--
		site.End--
		result.WriteSites = append(result.WriteSites, site)
	}

	return result, nil
}

func topLevelStmt(node *sitter.Node, content []byte) m.Stmt {
	stmt := m.Stmt{
		Kind:  m.StmtOther,
		Start: int(node.StartByte()),
		End:   int(node.EndByte()),
	}

	decl := node
	if node.Type() == "export_statement" {
		if inner := node.ChildByFieldName("declaration"); inner != nil {
			decl = inner
			stmt.Exported = true
			stmt.DeclStart = int(inner.StartByte())
		}
	}

	switch decl.Type() {
	case "import_statement":
		stmt.Kind = m.StmtImport
		stmt.Bindings = importBindings(decl, content)

		return stmt
	case "lexical_declaration", "variable_declaration":
		stmt.Kind = m.StmtDeclaration
		stmt.Bindings = declarationBindings(decl, content)
	case "function_declaration", "generator_function_declaration":
		stmt.Kind = m.StmtDeclaration
		stmt.Bindings = namedBinding(decl, content, m.DeclFunction)
	case "class_declaration":
		stmt.Kind = m.StmtDeclaration
		stmt.Bindings = namedBinding(decl, content, m.DeclClass)
	case "labeled_statement":
		if label := decl.ChildByFieldName("label"); label != nil && label.Content(content) == reactiveLabel {
			reactiveStmt(&stmt, decl, content)
		}
	}

	for i := range stmt.Bindings {
		stmt.Bindings[i].Exported = stmt.Exported
	}

	w := newScopeWalker(content)
	w.walk(decl)
	stmt.Reads = w.reads
	stmt.WriteSites = w.writes

	return stmt
}

func reactiveStmt(stmt *m.Stmt, node *sitter.Node, content []byte) {
	body := node.ChildByFieldName("body")
	if body == nil {
		return
	}

	stmt.Kind = m.StmtReactive
	stmt.BodyStart = int(body.StartByte())
	stmt.BodyEnd = int(body.EndByte())

	switch body.Type() {
	case "statement_block":
		stmt.Block = true
	case "expression_statement":
		if body.NamedChildCount() == 0 {
			return
		}

		expr := body.NamedChild(0)
		switch expr.Type() {
		case "assignment_expression", "augmented_assignment_expression":
			if left := expr.ChildByFieldName("left"); left != nil && left.Type() == "identifier" {
				stmt.AssignTarget = left.Content(content)
			}
		}
	}
}

func importBindings(node *sitter.Node, content []byte) []m.Binding {
	var bindings []m.Binding

	var visit func(n *sitter.Node)
	visit = func(n *sitter.Node) {
		switch n.Type() {
		case "import_specifier":
			name := n.ChildByFieldName("alias")
			if name == nil {
				name = n.ChildByFieldName("name")
			}

			if name != nil {
				bindings = append(bindings, m.Binding{Name: name.Content(content), Kind: m.DeclImport, Offset: int(name.StartByte())})
			}

			return
		case "identifier":
			bindings = append(bindings, m.Binding{Name: n.Content(content), Kind: m.DeclImport, Offset: int(n.StartByte())})

			return
		case "string":
			return
		}

		for i := 0; i < int(n.NamedChildCount()); i++ {
			visit(n.NamedChild(i))
		}
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		visit(node.NamedChild(i))
	}

	return bindings
}

func declarationBindings(node *sitter.Node, content []byte) []m.Binding {
	kind := m.DeclVar
	if node.Type() == "lexical_declaration" && node.ChildCount() > 0 {
		kind = m.DeclKind(node.Child(0).Type())
	}

	var bindings []m.Binding

	for i := 0; i < int(node.NamedChildCount()); i++ {
		declarator := node.NamedChild(i)
		if declarator.Type() != "variable_declarator" {
			continue
		}

		for _, ident := range patternIdentifiers(declarator.ChildByFieldName("name")) {
			bindings = append(bindings, m.Binding{
				Name:   ident.Content(content),
				Kind:   kind,
				Offset: int(ident.StartByte()),
			})
		}
	}

	return bindings
}

func namedBinding(node *sitter.Node, content []byte, kind m.DeclKind) []m.Binding {
	name := node.ChildByFieldName("name")
	if name == nil {
		return nil
	}

	return []m.Binding{{Name: name.Content(content), Kind: kind, Offset: int(name.StartByte())}}
}

// patternIdentifiers returns the identifiers bound by a binding pattern.
func patternIdentifiers(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}

	switch node.Type() {
	case "identifier", "shorthand_property_identifier_pattern":
		return []*sitter.Node{node}
	case "pair_pattern":
		return patternIdentifiers(node.ChildByFieldName("value"))
	case "assignment_pattern", "object_assignment_pattern":
		return patternIdentifiers(node.ChildByFieldName("left"))
	}

	var out []*sitter.Node
	for i := 0; i < int(node.NamedChildCount()); i++ {
		out = append(out, patternIdentifiers(node.NamedChild(i))...)
	}

	return out
}

func syntaxErrorAt(root *sitter.Node, content []byte) *SyntaxError {
	stack := []*sitter.Node{root}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if node.IsMissing() {
			return &SyntaxError{Offset: int(node.StartByte()), Message: fmt.Sprintf("missing %s", node.Type())}
		}

		if node.Type() == "ERROR" {
			return &SyntaxError{Offset: int(node.StartByte()), Message: fmt.Sprintf("unexpected %q", snippet(node.Content(content)))}
		}

		for i := int(node.ChildCount()) - 1; i >= 0; i-- {
			if child := node.Child(i); child.HasError() || child.IsMissing() || child.Type() == "ERROR" {
				stack = append(stack, child)
			}
		}
	}

	return &SyntaxError{Offset: int(root.StartByte()), Message: "invalid script"}
}

func snippet(text string) string {
	const limit = 24
	if len(text) > limit {
		return text[:limit] + "..."
	}

	return text
}
