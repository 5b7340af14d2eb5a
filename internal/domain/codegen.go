package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mouse-blink/eghc/internal/domain/emitters"
	m "github.com/mouse-blink/eghc/internal/model"
)

const indentUnit = "  "

// GenerateInput is everything the generator needs for one component.
type GenerateInput struct {
	Component  m.Component
	Script     m.Script
	Analysis   m.Analysis
	Template   m.Template
	ScopeClass string
	Options    m.Options
}

// CodeLine is one generated line. Origin is the absolute source offset the
// line was produced from, or -1.
type CodeLine struct {
	Text   string
	Origin int
}

// Generated is the emitted module.
type Generated struct {
	Code  string
	Lines []CodeLine
}

// Generator emits the imperative module of a component.
type Generator struct{}

// NewGenerator constructs a Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

type listener struct {
	node    m.NodeID
	event   string
	handler string
	origin  int
}

type generation struct {
	in          GenerateInput
	lines       []CodeLine
	nodes       map[m.NodeID]*m.TemplateNode
	nodeChain   map[m.NodeID][]emitters.BranchRef
	blockParent map[int]string
	blockChain  map[int][]emitters.BranchRef
	nested      map[emitters.BranchRef][]int
	blockNodes  []string
	listeners   []listener
}

// Generate emits the module. The output depends only on the input: every
// collection reaching the output is walked in a fixed order.
func (g *Generator) Generate(in GenerateInput) (Generated, error) {
	gen := &generation{
		in:          in,
		nodes:       make(map[m.NodeID]*m.TemplateNode),
		nodeChain:   make(map[m.NodeID][]emitters.BranchRef),
		blockParent: make(map[int]string),
		blockChain:  make(map[int][]emitters.BranchRef),
		nested:      make(map[emitters.BranchRef][]int),
	}

	gen.index(in.Template.Roots, "target", nil)

	if err := gen.module(); err != nil {
		return Generated{}, err
	}

	texts := make([]string, len(gen.lines))
	for i, line := range gen.lines {
		texts[i] = line.Text
	}

	return Generated{Code: strings.Join(texts, "\n") + "\n", Lines: gen.lines}, nil
}

// index records the parent, block chain and nesting of every node.
func (g *generation) index(nodes []*m.TemplateNode, parent string, chain []emitters.BranchRef) {
	for _, node := range nodes {
		g.nodes[node.ID] = node
		g.nodeChain[node.ID] = chain

		if len(chain) > 0 {
			g.blockNodes = append(g.blockNodes, emitters.Node(node.ID))
		}

		switch node.Kind {
		case m.NodeElement:
			g.index(node.Children, emitters.Node(node.ID), chain)
		case m.NodeAnchor:
			block := g.in.Template.Blocks[node.Block]
			g.blockParent[block.Index] = parent
			g.blockChain[block.Index] = chain

			if len(chain) > 0 {
				outer := chain[len(chain)-1]
				g.nested[outer] = append(g.nested[outer], block.Index)
			}

			for b, branch := range block.Branches {
				inner := make([]emitters.BranchRef, len(chain), len(chain)+1)
				copy(inner, chain)
				inner = append(inner, emitters.BranchRef{Block: block.Index, Branch: b})
				g.index(branch.Children, parent, inner)
			}
		case m.NodeText, m.NodeDynamicText:
		}
	}
}

func (g *generation) emit(indent, origin int, text string) {
	if text == "" {
		g.lines = append(g.lines, CodeLine{Origin: -1})

		return
	}

	g.lines = append(g.lines, CodeLine{Text: strings.Repeat(indentUnit, indent) + text, Origin: origin})
}

func (g *generation) blank() {
	g.emit(0, -1, "")
}

func (g *generation) isSignal(name string) bool {
	return g.in.Analysis.IsSignal(name)
}

func (g *generation) exprJS(expr *m.Expr) string {
	return emitters.WrapWrites(expr.Source, 0, expr.WriteSites, g.isSignal)
}

func (g *generation) runtimeImport() string {
	if g.in.Options.RuntimeImport != "" {
		return g.in.Options.RuntimeImport
	}

	return m.DefaultRuntimeImport
}

func (g *generation) module() error {
	g.emit(0, -1, "import * as runtime from "+emitters.JSString(g.runtimeImport())+";")

	for _, stmt := range g.in.Script.Stmts {
		if stmt.Kind == m.StmtImport {
			g.statement(stmt, stmt.Start, stmt.End, 0)
		}
	}

	g.blank()
	g.emit(0, -1, "export default function create(target, props = {}) {")
	g.emit(1, -1, "let $$mounted = false;")

	g.script()
	g.reactiveFunctions()
	g.construction()

	if err := g.updateFunctions(); err != nil {
		return err
	}

	g.invalidators()
	g.blank()
	g.emit(1, -1, "$$mounted = true;")
	g.destroy()
	g.emit(0, -1, "}")

	return nil
}

func (g *generation) script() {
	emitted := false

	for _, stmt := range g.in.Script.Stmts {
		if stmt.Kind == m.StmtImport || stmt.Kind == m.StmtReactive {
			continue
		}

		if !emitted {
			g.blank()

			emitted = true
		}

		start := stmt.Start
		if stmt.Exported {
			start = stmt.DeclStart
		}

		g.statement(stmt, start, stmt.End, 1)
	}

	if len(g.in.Analysis.Props) > 0 {
		g.blank()
	}

	for _, prop := range g.in.Analysis.Props {
		quoted := emitters.JSString(prop)
		g.emit(1, -1, fmt.Sprintf("if (%s in props) %s = props[%s];", quoted, prop, quoted))
	}
}

// statement emits script[from:to] with writes intercepted, dedenting
// continuation lines to the column the statement starts at.
func (g *generation) statement(stmt m.Stmt, from, to, indent int) {
	source := g.in.Script.Source
	text := emitters.WrapWrites(source[from:to], from, stmt.WriteSites, g.isSignal)

	abs := g.in.Component.Script.Offset + from
	column := abs - (strings.LastIndexByte(g.in.Component.Source[:abs], '\n') + 1)

	original := strings.Split(source[from:to], "\n")
	origin := abs

	for i, line := range strings.Split(text, "\n") {
		strip := 0
		if i > 0 {
			for strip < column && strip < len(line) && (line[strip] == ' ' || line[strip] == '\t') {
				strip++
			}
		}

		g.emit(indent, origin+strip, line[strip:])

		if i < len(original) {
			origin += len(original[i]) + 1
		}
	}
}

func (g *generation) reactiveFunctions() {
	statements := g.in.Analysis.Statements
	if len(statements) == 0 {
		return
	}

	for _, rs := range statements {
		stmt := g.in.Script.Stmts[rs.Stmt]
		from, to := stmt.BodyStart, stmt.BodyEnd

		if stmt.Block {
			from, to = trimRange(g.in.Script.Source, from+1, to-1)
		}

		g.blank()
		g.emit(1, rs.Offset, "function "+emitters.Reactive(rs.ID)+"() {")

		if from < to {
			g.statement(stmt, from, to, 2)
		}

		g.emit(1, -1, "}")
	}

	g.blank()

	for _, rs := range g.in.Analysis.Order {
		g.emit(1, rs.Offset, emitters.Reactive(rs.ID)+"();")
	}
}

func trimRange(text string, from, to int) (int, int) {
	for from < to && strings.ContainsRune(" \t\r\n", rune(text[from])) {
		from++
	}

	for to > from && strings.ContainsRune(" \t\r\n", rune(text[to-1])) {
		to--
	}

	return from, to
}

func (g *generation) construction() {
	tmpl := g.in.Template
	if len(tmpl.Roots) == 0 {
		return
	}

	g.blank()

	for _, block := range tmpl.Blocks {
		g.emit(1, -1, fmt.Sprintf("let %s = -1;", emitters.BlockBranch(block.Index)))
		g.emit(1, -1, fmt.Sprintf("let %s = [];", emitters.BlockNodes(block.Index)))
	}

	if len(g.blockNodes) > 0 {
		g.emit(1, -1, "let "+strings.Join(g.blockNodes, ", ")+";")
	}

	for _, node := range tmpl.Roots {
		g.construct(node, "target", false, 1)
	}

	for _, block := range tmpl.Blocks {
		g.blockFunctions(block)
	}

	var initial []string

	for _, block := range tmpl.Blocks {
		if len(g.blockChain[block.Index]) == 0 {
			initial = append(initial, emitters.BlockUpdate(block.Index)+"();")
		}
	}

	if len(initial) > 0 {
		g.blank()
	}

	for _, call := range initial {
		g.emit(1, -1, call)
	}

	if len(g.listeners) > 0 {
		g.blank()
	}

	for i, l := range g.listeners {
		g.emit(1, l.origin, fmt.Sprintf("const %s = %s;", emitters.Listener(i), l.handler))
		g.emit(1, l.origin, emitters.AddEventListener(emitters.Node(l.node), l.event, emitters.Listener(i)))
	}
}

// construct emits the creation of node. Nodes inside blocks are assigned to
// variables declared up front; branch roots are inserted by their block.
func (g *generation) construct(node *m.TemplateNode, parent string, branchRoot bool, indent int) {
	name := emitters.Node(node.ID)
	inBlock := len(g.nodeChain[node.ID]) > 0

	decl := "const "
	if inBlock {
		decl = ""
	}

	switch node.Kind {
	case m.NodeElement:
		g.emit(indent, node.Offset, fmt.Sprintf("%s%s = %s;", decl, name, emitters.CreateElement(node.Tag)))
		g.attributes(node, indent)
	case m.NodeText:
		g.emit(indent, node.Offset, fmt.Sprintf("%s%s = %s;", decl, name, emitters.CreateText(emitters.StaticText(node.Text))))
	case m.NodeDynamicText:
		g.emit(indent, node.Offset, fmt.Sprintf("%s%s = %s;", decl, name, emitters.CreateText(emitters.DynamicText(g.exprJS(node.Expr)))))
	case m.NodeAnchor:
		g.emit(indent, node.Offset, fmt.Sprintf("%s%s = %s;", decl, name, emitters.CreateText(`""`)))
	}

	if !branchRoot {
		g.emit(indent, node.Offset, emitters.Call("appendChild", parent, name))
	}

	if node.Kind != m.NodeElement {
		return
	}

	for _, child := range node.Children {
		g.construct(child, name, false, indent)
	}

	for _, attr := range node.Attrs {
		if !attr.Event {
			continue
		}

		handler := g.exprJS(attr.Parts[0].Expr)
		if inBlock {
			g.emit(indent, node.Offset, emitters.AddEventListener(name, attr.Name, handler))

			continue
		}

		g.listeners = append(g.listeners, listener{node: node.ID, event: attr.Name, handler: handler, origin: node.Offset})
	}
}

func (g *generation) attributes(node *m.TemplateNode, indent int) {
	name := emitters.Node(node.ID)
	hasClass := false

	for _, attr := range node.Attrs {
		if attr.Event {
			continue
		}

		if attr.Name == "class" {
			hasClass = true
		}

		value := emitters.AttributeValue(attr, g.exprJS, g.in.ScopeClass)
		g.emit(indent, node.Offset, emitters.SetAttribute(name, attr.Name, value))
	}

	if !hasClass && g.in.ScopeClass != "" {
		g.emit(indent, node.Offset, emitters.SetAttribute(name, "class", emitters.JSString(g.in.ScopeClass)))
	}
}

func (g *generation) blockFunctions(block *m.ControlBlock) {
	idx := block.Index
	parent := g.blockParent[idx]
	anchor := emitters.Node(block.Anchor)
	branchVar := emitters.BlockBranch(idx)
	nodesVar := emitters.BlockNodes(idx)

	g.blank()
	g.emit(1, block.Offset, "function "+emitters.BlockClear(idx)+"() {")

	for b := range block.Branches {
		nested := g.nested[emitters.BranchRef{Block: idx, Branch: b}]
		if len(nested) == 0 {
			continue
		}

		g.emit(2, -1, fmt.Sprintf("if (%s === %d) {", branchVar, b))

		for _, inner := range nested {
			g.emit(3, -1, emitters.BlockClear(inner)+"();")
		}

		g.emit(2, -1, "}")
	}

	g.emit(2, -1, fmt.Sprintf("for (const node of %s) %s", nodesVar, emitters.Call("removeChild", parent, "node")))
	g.emit(2, -1, nodesVar+" = [];")
	g.emit(2, -1, branchVar+" = -1;")
	g.emit(1, -1, "}")

	conditions := make([]string, len(block.Branches))
	for b, branch := range block.Branches {
		if branch.Condition != nil {
			conditions[b] = g.exprJS(branch.Condition)
		}
	}

	g.blank()
	g.emit(1, block.Offset, "function "+emitters.BlockUpdate(idx)+"() {")
	g.emit(2, block.Offset, "const branch = "+emitters.BranchSelector(conditions)+";")
	g.emit(2, -1, "if (branch === "+branchVar+") return;")
	g.emit(2, -1, emitters.BlockClear(idx)+"();")

	opened := false

	for b, branch := range block.Branches {
		if len(branch.Children) == 0 {
			continue
		}

		head := fmt.Sprintf("if (branch === %d) {", b)
		if opened {
			head = "} else " + head
		}

		g.emit(2, -1, head)

		opened = true
		roots := make([]string, 0, len(branch.Children))

		for _, child := range branch.Children {
			g.construct(child, parent, true, 3)
			roots = append(roots, emitters.Node(child.ID))
		}

		g.emit(3, -1, fmt.Sprintf("%s = [%s];", nodesVar, strings.Join(roots, ", ")))
	}

	if opened {
		g.emit(2, -1, "}")
	}

	g.emit(2, -1, fmt.Sprintf("for (const node of %s) %s", nodesVar, emitters.Call("insertBefore", parent, "node", anchor)))
	g.emit(2, -1, branchVar+" = branch;")

	for b := range block.Branches {
		nested := g.nested[emitters.BranchRef{Block: idx, Branch: b}]
		if len(nested) == 0 {
			continue
		}

		g.emit(2, -1, fmt.Sprintf("if (branch === %d) {", b))

		for _, inner := range nested {
			g.emit(3, -1, emitters.BlockUpdate(inner)+"();")
		}

		g.emit(2, -1, "}")
	}

	g.emit(1, -1, "}")
}

// updateFunctions emits update_<name> for every signal in emission order:
// template targets first, then statement subscribers in evaluation order.
func (g *generation) updateFunctions() error {
	for _, name := range g.in.Analysis.SignalOrder {
		signal := g.in.Analysis.Signals[name]

		g.blank()
		g.emit(1, -1, "function "+emitters.Updater(name)+"() {")

		for _, target := range signal.Targets() {
			stmt, chain, err := g.refresh(target)
			if err != nil {
				return err
			}

			g.emit(2, target.Offset, emitters.Guarded(chain, stmt))
		}

		for _, rs := range g.in.Analysis.Order {
			if rs.DependsOn(name) {
				g.emit(2, rs.Offset, emitters.Reactive(rs.ID)+"();")
			}
		}

		g.emit(1, -1, "}")
	}

	return nil
}

func (g *generation) refresh(target *m.DependencyTarget) (string, []emitters.BranchRef, error) {
	var value string

	chain := g.nodeChain[target.NodeID]

	switch target.Type {
	case m.TargetTextContent:
		if node := g.nodes[target.NodeID]; node != nil && node.Expr != nil {
			value = g.exprJS(node.Expr)
		}
	case m.TargetAttribute:
		if node := g.nodes[target.NodeID]; node != nil {
			for _, attr := range node.Attrs {
				if attr.Name == target.Name && !attr.Event {
					value = emitters.AttributeValue(attr, g.exprJS, g.in.ScopeClass)
				}
			}
		}
	case m.TargetStructural:
		chain = g.blockChain[target.Block]
	case m.TargetEventListener:
	}

	stmt, err := emitters.Refresh(target, value)
	if err != nil {
		if errors.Is(err, emitters.ErrNoEmitter) {
			return "", nil, &CompileError{Kind: KindUnsupportedConstruct, Offset: target.Offset, Err: err}
		}

		return "", nil, err
	}

	return stmt, chain, nil
}

func (g *generation) invalidators() {
	for _, name := range g.in.Analysis.SignalOrder {
		g.blank()
		g.emit(1, -1, "function "+emitters.Invalidator(name)+"(value) {")
		g.emit(2, -1, "if ($$mounted) "+emitters.Updater(name)+"();")
		g.emit(2, -1, "return value;")
		g.emit(1, -1, "}")
	}
}

func (g *generation) destroy() {
	g.blank()
	g.emit(1, -1, "return {")
	g.emit(2, -1, "destroy() {")
	g.emit(3, -1, "$$mounted = false;")

	for i, l := range g.listeners {
		g.emit(3, -1, emitters.RemoveEventListener(emitters.Node(l.node), l.event, emitters.Listener(i)))
	}

	for _, block := range g.in.Template.Blocks {
		if len(g.blockChain[block.Index]) == 0 {
			g.emit(3, -1, emitters.BlockClear(block.Index)+"();")
		}
	}

	for _, node := range g.in.Template.Roots {
		g.emit(3, -1, emitters.Call("removeChild", "target", emitters.Node(node.ID)))
	}

	g.emit(2, -1, "},")
	g.emit(1, -1, "};")
}
