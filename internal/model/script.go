package model

// DeclKind is the binding form a top-level name was declared with.
type DeclKind string

// Declaration forms understood by the analyzer.
const (
	DeclLet      DeclKind = "let"
	DeclConst    DeclKind = "const"
	DeclVar      DeclKind = "var"
	DeclFunction DeclKind = "function"
	DeclClass    DeclKind = "class"
	DeclImport   DeclKind = "import"
)

// ScriptLang is the language of a script section.
type ScriptLang string

// Script languages. TypeScript sections are reduced to JavaScript before
// analysis.
const (
	LangJavaScript ScriptLang = "js"
	LangTypeScript ScriptLang = "ts"
)

// StmtKind classifies a top-level script statement.
type StmtKind int

// Statement kinds.
const (
	StmtOther StmtKind = iota
	StmtDeclaration
	StmtReactive
	StmtImport
)

// Binding is a name introduced at the top level of a script.
type Binding struct {
	Name     string
	Kind     DeclKind
	Offset   int
	Exported bool
}

// NameRef is a free identifier read at Offset.
type NameRef struct {
	Name   string
	Offset int
}

// WriteSite is an expression that stores into Name. Start and End delimit
// the whole assignment or update expression. Deferred is set when the store
// sits inside a nested function and does not run with the statement.
type WriteSite struct {
	Name     string
	Start    int
	End      int
	Deferred bool
}

// Stmt is a top-level statement of the script section. Offsets are relative
// to the script text.
type Stmt struct {
	Kind       StmtKind
	Start      int
	End        int
	Bindings   []Binding
	Reads      []NameRef
	WriteSites []WriteSite
	Exported   bool
	// DeclStart is where the declaration begins when Exported is set.
	DeclStart int

	// Reactive statements only.
	BodyStart    int
	BodyEnd      int
	Block        bool
	AssignTarget string
}

// Script is the parsed script section. Source is the JavaScript the
// statements index into; for TypeScript it is the section text with every
// type-only construct blanked out, so offsets still match the original.
type Script struct {
	Source string
	Lang   ScriptLang
	Stmts  []Stmt
}

// Bindings returns every top-level binding in declaration order.
func (s Script) Bindings() []Binding {
	var out []Binding
	for _, stmt := range s.Stmts {
		out = append(out, stmt.Bindings...)
	}

	return out
}

// Expr is a single template expression.
type Expr struct {
	Source     string
	Reads      []NameRef
	WriteSites []WriteSite
}

// ReadNames returns the distinct names read by the expression in order of
// first appearance.
func (e Expr) ReadNames() []string {
	return uniqueNames(e.Reads)
}

func uniqueNames(refs []NameRef) []string {
	seen := make(map[string]bool, len(refs))
	out := make([]string, 0, len(refs))

	for _, ref := range refs {
		if seen[ref.Name] {
			continue
		}

		seen[ref.Name] = true
		out = append(out, ref.Name)
	}

	return out
}
