package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrorKind names a class of compile diagnostic.
type ErrorKind string

// Diagnostic kinds. SectionMalformed is only ever reported as a warning.
const (
	KindSectionMalformed           ErrorKind = "SectionMalformed"
	KindScriptSyntaxError          ErrorKind = "ScriptSyntaxError"
	KindUndeclaredAssignmentTarget ErrorKind = "UndeclaredAssignmentTarget"
	KindCyclicDependency           ErrorKind = "CyclicDependency"
	KindUnmatchedControlBlock      ErrorKind = "UnmatchedControlBlock"
	KindUnsupportedConstruct       ErrorKind = "UnsupportedConstruct"
)

// Sentinel errors matched by errors.Is against a *CompileError.
var (
	ErrScriptSyntax               = errors.New("script syntax error")
	ErrUndeclaredAssignmentTarget = errors.New("undeclared assignment target")
	ErrCyclicDependency           = errors.New("cyclic dependency")
	ErrUnmatchedControlBlock      = errors.New("unmatched control block")
	ErrUnsupportedConstruct       = errors.New("unsupported construct")
)

var sentinels = map[ErrorKind]error{
	KindScriptSyntaxError:          ErrScriptSyntax,
	KindUndeclaredAssignmentTarget: ErrUndeclaredAssignmentTarget,
	KindCyclicDependency:           ErrCyclicDependency,
	KindUnmatchedControlBlock:      ErrUnmatchedControlBlock,
	KindUnsupportedConstruct:       ErrUnsupportedConstruct,
}

// CompileError is a fatal diagnostic for one component.
type CompileError struct {
	Kind      ErrorKind
	Component string
	// Offset is the absolute byte offset in the component source, -1 if unknown.
	Offset int
	Line   int
	Column int
	Name   string
	Chain  []string
	Hint   string
	Msg    string
	Err    error
}

func (e *CompileError) Error() string {
	var b strings.Builder

	if e.Component != "" {
		b.WriteString(e.Component)

		if e.Line > 0 {
			fmt.Fprintf(&b, ":%d:%d", e.Line, e.Column)
		}

		b.WriteString(": ")
	}

	b.WriteString(string(e.Kind))

	switch {
	case len(e.Chain) > 0:
		fmt.Fprintf(&b, ": %s", strings.Join(e.Chain, " -> "))
	case e.Name != "":
		fmt.Fprintf(&b, ": %q", e.Name)
	}

	if e.Msg != "" {
		fmt.Fprintf(&b, ": %s", e.Msg)
	}

	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}

	if e.Hint != "" {
		fmt.Fprintf(&b, " (did you mean %q?)", e.Hint)
	}

	return b.String()
}

// Is matches the sentinel error of the kind.
func (e *CompileError) Is(target error) bool {
	sentinel, ok := sentinels[e.Kind]

	return ok && sentinel == target
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

func newCompileError(kind ErrorKind, offset int, msg string) *CompileError {
	return &CompileError{Kind: kind, Offset: offset, Msg: msg}
}

// locate fills in the component name and the line/column of the offset.
func locate(err error, component, source string) error {
	var ce *CompileError
	if !errors.As(err, &ce) {
		return err
	}

	ce.Component = component

	if ce.Offset >= 0 && ce.Offset <= len(source) {
		ce.Line, ce.Column = lineColumn(source, ce.Offset)
	}

	return ce
}

// lineColumn converts a byte offset to a 1-based line and column.
func lineColumn(source string, offset int) (int, int) {
	line := 1 + strings.Count(source[:offset], "\n")
	column := offset + 1

	if idx := strings.LastIndexByte(source[:offset], '\n'); idx >= 0 {
		column = offset - idx
	}

	return line, column
}

// suggest returns the declared name closest to name, or "" when nothing is
// close enough.
func suggest(name string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}

	ranks := fuzzy.RankFindFold(name, candidates)
	if len(ranks) > 0 {
		sort.Sort(ranks)

		return ranks[0].Target
	}

	best := ""
	bestDistance := len(name)/2 + 1

	for _, candidate := range candidates {
		distance := fuzzy.LevenshteinDistance(strings.ToLower(name), strings.ToLower(candidate))
		if distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}

	return best
}
