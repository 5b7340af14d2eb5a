package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/eghc/internal/model"
)

func TestYAMLConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    m.Config
	}{
		{
			name:    "empty file keeps defaults",
			content: "",
			want:    m.DefaultConfig(),
		},
		{
			name: "values override defaults",
			content: `outDir: build
cacheDir: tmp/cache
parallel: 8
sourceMaps: true
runtimeImport: ./runtime.js
exclude:
  - ^vendor/
`,
			want: m.Config{
				OutDir:        "build",
				CacheDir:      "tmp/cache",
				Parallel:      8,
				SourceMaps:    true,
				RuntimeImport: "./runtime.js",
				Exclude:       []string{"^vendor/"},
			},
		},
		{
			name:    "non-positive parallelism falls back to one",
			content: "parallel: 0\n",
			want:    m.DefaultConfig(),
		},
		{
			name:    "partial file",
			content: "outDir: public\n",
			want: func() m.Config {
				cfg := m.DefaultConfig()
				cfg.OutDir = "public"

				return cfg
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultConfigFile)
			writeTestFile(t, path, tt.content)

			cfg, err := NewConfigLoader().Load(m.Path(path))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestYAMLConfigLoader_MissingFile(t *testing.T) {
	cfg, err := NewConfigLoader().Load(m.Path(filepath.Join(t.TempDir(), DefaultConfigFile)))
	require.NoError(t, err)
	assert.Equal(t, m.DefaultConfig(), cfg)
}

func TestYAMLConfigLoader_RejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	writeTestFile(t, path, "outdir: build\n")

	_, err := NewConfigLoader().Load(m.Path(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode config")
	assert.Contains(t, err.Error(), "field outdir not found")
}
