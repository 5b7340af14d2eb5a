package domain

import (
	"fmt"
	"sort"
	"strings"

	m "github.com/mouse-blink/eghc/internal/model"
)

const (
	reactivePrefix = "reactive_"
	storePrefix    = "$"
)

// Analyzer discovers the reactive structure of a script. It keeps no state
// between calls and can be shared across components and goroutines.
type Analyzer struct{}

// NewAnalyzer constructs an Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// analysisBuilder accumulates the analysis of one component. Every step
// returns an updated copy instead of mutating the receiver.
type analysisBuilder struct {
	offset     int
	script     m.Script
	bindings   []m.Binding
	vars       []m.ReactiveVar
	statements []m.ReactiveStatement
	order      []m.ReactiveStatement
	signals    m.SignalGraph
	signalList []string
}

// Analyze runs every analysis step over a parsed script. scriptOffset is the
// offset of the script section in the component source, used to make every
// reported offset absolute. targets are the template dependency targets.
func (a *Analyzer) Analyze(script m.Script, scriptOffset int, targets []*m.DependencyTarget) (m.Analysis, error) {
	b := analysisBuilder{offset: scriptOffset, script: script, bindings: absoluteBindings(script, scriptOffset)}

	b = b.withVars(a.ClassifyVariables(script, scriptOffset))

	statements, err := a.ExtractReactiveStatements(script, scriptOffset)
	if err != nil {
		return m.Analysis{}, err
	}

	b = b.withStatements(statements)

	order, err := a.ComputeEvaluationOrder(b.statements)
	if err != nil {
		return m.Analysis{}, err
	}

	b = b.withOrder(order)
	b = b.withSignals(a.BuildSignalGraph(b.vars, b.statements, targets))

	return b.build(targets), nil
}

func (b analysisBuilder) withVars(vars []m.ReactiveVar) analysisBuilder {
	b.vars = vars

	return b
}

func (b analysisBuilder) withStatements(statements []m.ReactiveStatement) analysisBuilder {
	b.statements = statements

	return b
}

func (b analysisBuilder) withOrder(order []m.ReactiveStatement) analysisBuilder {
	b.order = order

	return b
}

// withSignals stores the graph and derives the emission order: signals that
// no statement produces come first in declaration order, then each derived
// signal after the statement producing it in evaluation order.
func (b analysisBuilder) withSignals(signals m.SignalGraph) analysisBuilder {
	b.signals = signals

	rank := make(map[string]int, len(signals))
	position := make(map[string]int, len(signals))

	for _, v := range b.vars {
		position[v.Name] = v.Offset
	}

	for i, stmt := range b.order {
		for _, out := range stmt.Outputs {
			if _, ok := rank[out]; ok {
				continue
			}

			rank[out] = i + 1

			if _, ok := position[out]; !ok {
				position[out] = stmt.Offset
			}
		}
	}

	names := make([]string, 0, len(signals))
	for name := range signals {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		ri, rj := rank[names[i]], rank[names[j]]
		if ri != rj {
			return ri < rj
		}

		if position[names[i]] != position[names[j]] {
			return position[names[i]] < position[names[j]]
		}

		return names[i] < names[j]
	})

	b.signalList = names

	return b
}

func (b analysisBuilder) build(targets []*m.DependencyTarget) m.Analysis {
	var props []string

	for _, binding := range b.bindings {
		if binding.Exported && binding.Kind == m.DeclLet {
			props = append(props, binding.Name)
		}
	}

	return m.Analysis{
		Bindings:    b.bindings,
		Vars:        b.vars,
		Statements:  b.statements,
		Order:       b.order,
		Signals:     b.signals,
		SignalOrder: b.signalList,
		StoreRefs:   storeRefs(b.script, b.bindings, targets),
		Props:       props,
	}
}

func absoluteBindings(script m.Script, offset int) []m.Binding {
	bindings := script.Bindings()
	for i := range bindings {
		bindings[i].Offset += offset
	}

	return bindings
}

// ClassifyVariables returns the top-level `let` bindings in declaration
// order. `const`, `var`, function and import bindings are never reactive.
func (a *Analyzer) ClassifyVariables(script m.Script, scriptOffset int) []m.ReactiveVar {
	var vars []m.ReactiveVar

	seen := make(map[string]bool)

	for _, binding := range script.Bindings() {
		if binding.Kind != m.DeclLet || seen[binding.Name] {
			continue
		}

		seen[binding.Name] = true
		vars = append(vars, m.ReactiveVar{
			Name:            binding.Name,
			DeclaredMutable: true,
			Offset:          scriptOffset + binding.Offset,
		})
	}

	return vars
}

// ExtractReactiveStatements returns one ReactiveStatement per `$:` statement
// in source order. Every store made while the statement runs is an output;
// outputs must be declared at the top level.
func (a *Analyzer) ExtractReactiveStatements(script m.Script, scriptOffset int) ([]m.ReactiveStatement, error) {
	declared := make(map[string]bool)

	var names []string

	for _, binding := range script.Bindings() {
		if !declared[binding.Name] {
			declared[binding.Name] = true
			names = append(names, binding.Name)
		}
	}

	var statements []m.ReactiveStatement

	for i, stmt := range script.Stmts {
		if stmt.Kind != m.StmtReactive {
			continue
		}

		outputs, err := statementOutputs(stmt, declared, names, scriptOffset)
		if err != nil {
			return nil, err
		}

		index := len(statements)
		statements = append(statements, m.ReactiveStatement{
			ID:           fmt.Sprintf("%s%d", reactivePrefix, index),
			Index:        index,
			TargetVar:    stmt.AssignTarget,
			Dependencies: statementDependencies(stmt),
			Outputs:      outputs,
			Body:         script.Source[stmt.BodyStart:stmt.BodyEnd],
			Block:        stmt.Block,
			Offset:       scriptOffset + stmt.Start,
			Stmt:         i,
		})
	}

	return statements, nil
}

func statementOutputs(stmt m.Stmt, declared map[string]bool, names []string, scriptOffset int) ([]string, error) {
	var outputs []string

	seen := make(map[string]bool)

	for _, site := range stmt.WriteSites {
		if site.Deferred || seen[site.Name] {
			continue
		}

		if !declared[site.Name] {
			err := newCompileError(KindUndeclaredAssignmentTarget, scriptOffset+site.Start, "")
			err.Name = site.Name
			err.Hint = suggest(site.Name, names)

			return nil, err
		}

		seen[site.Name] = true
		outputs = append(outputs, site.Name)
	}

	return outputs, nil
}

// statementDependencies returns the distinct names read by the statement in
// order of first read. A read that follows a completed store of the same
// name inside the statement observes the statement's own value and is not a
// dependency.
func statementDependencies(stmt m.Stmt) []string {
	var deps []string

	seen := make(map[string]bool)

	for _, ref := range stmt.Reads {
		if seen[ref.Name] || writtenBefore(stmt.WriteSites, ref) {
			continue
		}

		seen[ref.Name] = true
		deps = append(deps, ref.Name)
	}

	return deps
}

func writtenBefore(sites []m.WriteSite, ref m.NameRef) bool {
	for _, site := range sites {
		if site.Name == ref.Name && !site.Deferred && site.End <= ref.Offset {
			return true
		}
	}

	return false
}

// BuildSignalGraph creates one signal per reactive variable and one per
// statement output read elsewhere, then subscribes every statement and
// refreshable template target to the signals it reads. Subscribers are
// ordered by their position in the component source.
func (a *Analyzer) BuildSignalGraph(vars []m.ReactiveVar, statements []m.ReactiveStatement, targets []*m.DependencyTarget) m.SignalGraph {
	graph := make(m.SignalGraph)

	for _, v := range vars {
		graph[v.Name] = &m.Signal{Name: v.Name, Declared: true}
	}

	for _, stmt := range statements {
		for _, out := range stmt.Outputs {
			if _, ok := graph[out]; ok {
				continue
			}

			if readElsewhere(out, stmt.ID, statements, targets) {
				graph[out] = &m.Signal{Name: out}
			}
		}
	}

	for i := range statements {
		stmt := &statements[i]

		for _, dep := range stmt.Dependencies {
			if signal, ok := graph[dep]; ok {
				signal.Subscribers = append(signal.Subscribers, m.Subscriber{Statement: stmt})
			}
		}
	}

	for _, target := range targets {
		if !target.Refreshes() {
			continue
		}

		for _, name := range target.Reads {
			if signal, ok := graph[name]; ok {
				signal.Subscribers = append(signal.Subscribers, m.Subscriber{Target: target})
			}
		}
	}

	for _, signal := range graph {
		sort.SliceStable(signal.Subscribers, func(i, j int) bool {
			return signal.Subscribers[i].Offset() < signal.Subscribers[j].Offset()
		})
	}

	return graph
}

func readElsewhere(name, statementID string, statements []m.ReactiveStatement, targets []*m.DependencyTarget) bool {
	for _, stmt := range statements {
		if stmt.ID != statementID && stmt.DependsOn(name) {
			return true
		}
	}

	for _, target := range targets {
		if !target.Refreshes() {
			continue
		}

		for _, read := range target.Reads {
			if read == name {
				return true
			}
		}
	}

	return false
}

type mark int

const (
	unvisited mark = iota
	inProgress
	done
)

type sortFrame struct {
	stmt int
	next int
}

// ComputeEvaluationOrder sorts statements so each runs after every statement
// producing one of its dependencies. Independent statements keep source
// order. The sort uses an explicit stack; a back edge is reported as a
// CyclicDependency carrying the variable chain.
func (a *Analyzer) ComputeEvaluationOrder(statements []m.ReactiveStatement) ([]m.ReactiveStatement, error) {
	producers := producerEdges(statements)
	marks := make([]mark, len(statements))
	order := make([]m.ReactiveStatement, 0, len(statements))

	for start := range statements {
		if marks[start] != unvisited {
			continue
		}

		marks[start] = inProgress
		stack := []sortFrame{{stmt: start}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]

			if top.next < len(producers[top.stmt]) {
				producer := producers[top.stmt][top.next]
				top.next++

				switch marks[producer] {
				case inProgress:
					return nil, cycleError(statements, stack, producer)
				case unvisited:
					marks[producer] = inProgress
					stack = append(stack, sortFrame{stmt: producer})
				case done:
				}

				continue
			}

			marks[top.stmt] = done
			order = append(order, statements[top.stmt])
			stack = stack[:len(stack)-1]
		}
	}

	return order, nil
}

// producerEdges lists, for each statement, the statements producing one of
// its dependencies, in source order.
func producerEdges(statements []m.ReactiveStatement) [][]int {
	edges := make([][]int, len(statements))

	for i, consumer := range statements {
		for j, producer := range statements {
			for _, out := range producer.Outputs {
				if consumer.DependsOn(out) {
					edges[i] = append(edges[i], j)

					break
				}
			}
		}
	}

	return edges
}

func cycleError(statements []m.ReactiveStatement, stack []sortFrame, producer int) error {
	start := 0

	for i, frame := range stack {
		if frame.stmt == producer {
			start = i

			break
		}
	}

	chain := make([]string, 0, len(stack)-start+1)
	for _, frame := range stack[start:] {
		chain = append(chain, statementLabel(statements[frame.stmt]))
	}

	chain = append(chain, statementLabel(statements[producer]))

	err := newCompileError(KindCyclicDependency, statements[producer].Offset, "")
	err.Chain = chain

	return err
}

func statementLabel(stmt m.ReactiveStatement) string {
	if stmt.TargetVar != "" {
		return stmt.TargetVar
	}

	if len(stmt.Outputs) > 0 {
		return strings.Join(stmt.Outputs, ",")
	}

	return stmt.ID
}

// storeRefs returns the `$name` references whose name is declared at the
// top level, in order of first appearance.
func storeRefs(script m.Script, bindings []m.Binding, targets []*m.DependencyTarget) []string {
	declared := make(map[string]bool, len(bindings))
	for _, binding := range bindings {
		declared[binding.Name] = true
	}

	var refs []string

	seen := make(map[string]bool)
	add := func(name string) {
		if len(name) <= len(storePrefix) || !strings.HasPrefix(name, storePrefix) || seen[name] {
			return
		}

		if declared[strings.TrimPrefix(name, storePrefix)] && !declared[name] {
			seen[name] = true
			refs = append(refs, name)
		}
	}

	for _, stmt := range script.Stmts {
		for _, ref := range stmt.Reads {
			add(ref.Name)
		}
	}

	for _, target := range targets {
		for _, name := range target.Reads {
			add(name)
		}
	}

	return refs
}
