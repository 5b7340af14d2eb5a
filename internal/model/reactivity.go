package model

// ReactiveVar is a top-level binding whose writes refresh dependents.
type ReactiveVar struct {
	Name            string
	DeclaredMutable bool
	Offset          int
}

// ReactiveStatement is one `$:` statement of the script section.
type ReactiveStatement struct {
	// ID is the stable identifier used in generated code (reactive_N).
	ID    string
	Index int
	// TargetVar is set when the statement is a single assignment.
	TargetVar    string
	Dependencies []string
	Outputs      []string
	Body         string
	Block        bool
	// Offset is the absolute byte offset of the statement in the component.
	Offset int
	// Stmt is the index of the statement in Script.Stmts.
	Stmt int
}

// DependsOn reports whether the statement reads name.
func (s ReactiveStatement) DependsOn(name string) bool {
	for _, dep := range s.Dependencies {
		if dep == name {
			return true
		}
	}

	return false
}

// Writes reports whether name is one of the statement outputs.
func (s ReactiveStatement) Writes(name string) bool {
	for _, out := range s.Outputs {
		if out == name {
			return true
		}
	}

	return false
}

// Subscriber is either a reactive statement or a template target.
type Subscriber struct {
	Statement *ReactiveStatement
	Target    *DependencyTarget
}

// Offset returns the absolute source offset used for subscriber ordering.
func (s Subscriber) Offset() int {
	if s.Statement != nil {
		return s.Statement.Offset
	}

	if s.Target != nil {
		return s.Target.Offset
	}

	return -1
}

// Signal is the subscriber set of one reactive name.
type Signal struct {
	Name string
	// Declared is set for signals backed by a `let` declaration. Signals for
	// derived outputs declared otherwise leave it false.
	Declared    bool
	Subscribers []Subscriber
}

// Statements returns the statement subscribers in subscription order.
func (s *Signal) Statements() []*ReactiveStatement {
	var out []*ReactiveStatement
	for _, sub := range s.Subscribers {
		if sub.Statement != nil {
			out = append(out, sub.Statement)
		}
	}

	return out
}

// Targets returns the template subscribers in subscription order.
func (s *Signal) Targets() []*DependencyTarget {
	var out []*DependencyTarget
	for _, sub := range s.Subscribers {
		if sub.Target != nil {
			out = append(out, sub.Target)
		}
	}

	return out
}

// SignalGraph maps a reactive name to its signal.
type SignalGraph map[string]*Signal

// Analysis is the immutable result of analyzing one script.
type Analysis struct {
	Bindings   []Binding
	Vars       []ReactiveVar
	Statements []ReactiveStatement
	Order      []ReactiveStatement
	Signals    SignalGraph
	// SignalOrder lists signal names in emission order.
	SignalOrder []string
	StoreRefs   []string
	Props       []string
}

// IsSignal reports whether name has a signal.
func (a Analysis) IsSignal(name string) bool {
	_, ok := a.Signals[name]

	return ok
}
