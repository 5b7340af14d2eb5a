package model

// Path represents a file system path.
type Path string

// Source represents a discovered component file.
type Source struct {
	// Origin is the path of the component file as discovered.
	Origin Path
	// Root is the directory the discovery started from. Output paths and the
	// component ID are derived relative to it.
	Root Path
	// ID is the logical component identifier used for scope hashing.
	ID string
}

// Input is one component handed to the compiler in memory.
type Input struct {
	ID       string
	FileName string
	Source   string
	Options  Options
}

// Options tunes code generation for a single compilation.
type Options struct {
	RuntimeImport string
	SourceMaps    bool
}

// Output holds every artifact produced for one component.
type Output struct {
	Code       string
	CSS        string
	ScopeClass string
	SourceMap  []byte
	Warnings   []Warning
	Stats      Stats
}

// Stats summarizes the reactive shape of a compiled component.
type Stats struct {
	Vars       int
	Statements int
	Signals    int
	Targets    int
	Nodes      int
}

// Warning is a recovered, non-fatal diagnostic.
type Warning struct {
	Kind    string
	Offset  int
	Message string
}
