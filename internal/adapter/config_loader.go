package adapter

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/eghc/internal/model"
)

// DefaultConfigFile is read when no --config flag is given.
const DefaultConfigFile = "eghc.yaml"

// ConfigLoader reads the project configuration.
type ConfigLoader interface {
	Load(path m.Path) (m.Config, error)
}

// YAMLConfigLoader reads eghc.yaml files.
type YAMLConfigLoader struct{}

// NewConfigLoader constructs a ConfigLoader implementation.
func NewConfigLoader() ConfigLoader {
	return &YAMLConfigLoader{}
}

// Load merges the file over the defaults. A missing file yields the
// defaults; unknown keys are rejected.
func (l *YAMLConfigLoader) Load(path m.Path) (m.Config, error) {
	cfg := m.DefaultConfig()

	f, err := os.Open(string(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return m.Config{}, fmt.Errorf("open config: %w", err)
	}

	defer func() {
		_ = f.Close()
	}()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return m.Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	if cfg.Parallel <= 0 {
		cfg.Parallel = 1
	}

	return cfg, nil
}
