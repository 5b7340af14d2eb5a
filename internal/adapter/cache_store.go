package adapter

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/zeebo/xxh3"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/eghc/internal/model"
)

// cacheFormat is folded into every key so entries written by an older
// generator are never reused.
const cacheFormat = "eghc-cache-v2"

// CacheStore persists compiled components keyed by their compiler input.
type CacheStore interface {
	// Key fingerprints everything the compiled output depends on: the
	// component identity, its source and the options it is compiled with.
	Key(in m.Input) (string, error)
	// Load returns the entry stored under key, reporting false when absent.
	Load(dir m.Path, key string) (m.CacheEntry, bool, error)
	// Save stores entry under its key.
	Save(dir m.Path, entry m.CacheEntry) error
}

// LocalCacheStore keeps one YAML file per entry inside the cache directory.
type LocalCacheStore struct{}

// NewCacheStore constructs a CacheStore implementation.
func NewCacheStore() CacheStore {
	return &LocalCacheStore{}
}

// Key hashes the input with xxh3. The ID feeds the scope class and the file
// name the source map, so both are part of the key.
func (cs *LocalCacheStore) Key(in m.Input) (string, error) {
	h := xxh3.New()

	parts := []string{
		cacheFormat,
		in.ID,
		in.FileName,
		in.Options.RuntimeImport,
		strconv.FormatBool(in.Options.SourceMaps),
	}

	for _, part := range parts {
		if _, err := io.WriteString(h, part+"\x00"); err != nil {
			return "", err
		}
	}

	if _, err := io.WriteString(h, in.Source); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

func (cs *LocalCacheStore) entryPath(dir m.Path, key string) string {
	return filepath.Join(string(dir), key+".yaml")
}

// Load reads the entry for key. A missing file is a miss, not an error; an
// entry whose recorded key differs is treated as a miss as well.
func (cs *LocalCacheStore) Load(dir m.Path, key string) (m.CacheEntry, bool, error) {
	data, err := os.ReadFile(cs.entryPath(dir, key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m.CacheEntry{}, false, nil
		}

		return m.CacheEntry{}, false, fmt.Errorf("read cache entry: %w", err)
	}

	var entry m.CacheEntry
	if err := yaml.Unmarshal(data, &entry); err != nil {
		return m.CacheEntry{}, false, fmt.Errorf("decode cache entry %s: %w", key, err)
	}

	if entry.Key != key {
		return m.CacheEntry{}, false, nil
	}

	return entry, true, nil
}

// Save writes the entry atomically.
func (cs *LocalCacheStore) Save(dir m.Path, entry m.CacheEntry) error {
	if entry.Key == "" {
		return errors.New("cache entry without key")
	}

	data, err := yaml.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}

	if err := writeFileAtomic(cs.entryPath(dir, entry.Key), data, 0o644); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}

	return nil
}
