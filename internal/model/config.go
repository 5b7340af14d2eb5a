package model

// Config is the project configuration read from eghc.yaml.
type Config struct {
	OutDir        string   `yaml:"outDir"`
	CacheDir      string   `yaml:"cacheDir"`
	Parallel      int      `yaml:"parallel"`
	SourceMaps    bool     `yaml:"sourceMaps"`
	RuntimeImport string   `yaml:"runtimeImport"`
	Exclude       []string `yaml:"exclude"`
}

// DefaultRuntimeImport is the module the generated code imports its DOM
// primitives from.
const DefaultRuntimeImport = "/eghact-runtime.js"

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		OutDir:        "dist",
		CacheDir:      ".eghc-cache",
		Parallel:      1,
		RuntimeImport: DefaultRuntimeImport,
	}
}
