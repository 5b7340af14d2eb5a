// Package adapter contains infrastructure adapters for the eghc CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/eghc/internal/model"
)

// ComponentExt is the file extension of component sources.
const ComponentExt = ".egh"

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when discovering components and writing artifacts. It hides direct
// `os` access so the workflow logic can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Get discovers component files below the provided roots. A root ending
	// in `/...` is scanned recursively.
	Get(roots []m.Path) ([]m.Source, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// WriteFileAtomic writes content to a temporary sibling and renames it
	// into place, creating parent directories as needed.
	WriteFileAtomic(path m.Path, content []byte, perm os.FileMode) error

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter backs SourceFSAdapter with the local filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects component files for the provided roots. Each file is reported
// once even when several roots reach it.
func (a *LocalSourceFSAdapter) Get(roots []m.Path) ([]m.Source, error) {
	if len(roots) == 0 {
		return []m.Source{}, nil
	}

	seen := make(map[string]struct{})

	var sources []m.Source

	add := func(source m.Source) {
		if _, exists := seen[string(source.Origin)]; exists {
			return
		}

		seen[string(source.Origin)] = struct{}{}
		sources = append(sources, source)
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			source, ok, err := a.processFilePath(filepath.Dir(rootPath), rootPath)
			if err != nil {
				return nil, err
			}

			if ok {
				add(source)
			}

			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				return nil
			}

			source, ok, err := a.processFilePath(rootPath, path)
			if err != nil {
				return err
			}

			if ok {
				add(source)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return sources, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && path != rootStr {
			base := filepath.Base(path)
			if !recursive || base == "node_modules" || strings.HasPrefix(base, ".") {
				return filepath.SkipDir
			}
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// WriteFileAtomic writes through a temporary file in the target directory so
// readers never observe partial content.
func (a *LocalSourceFSAdapter) WriteFileAtomic(path m.Path, content []byte, perm os.FileMode) error {
	return writeFileAtomic(string(path), content, perm)
}

func writeFileAtomic(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.Write(content); err != nil {
		cleanup()

		return err
	}

	if err := tmp.Chmod(perm); err != nil {
		cleanup()

		return err
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)

		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)

		return err
	}

	return nil
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rootStr == "..." {
		return ".", true
	}

	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}

// processFilePath describes one component file. The component ID is its
// slash-separated path below root without the extension.
func (a *LocalSourceFSAdapter) processFilePath(root, path string) (m.Source, bool, error) {
	if filepath.Ext(path) != ComponentExt {
		return m.Source{}, false, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return m.Source{}, false, err
	}

	rel, err := filepath.Rel(root, absPath)
	if err != nil {
		return m.Source{}, false, err
	}

	return m.Source{
		Origin: m.Path(absPath),
		Root:   m.Path(root),
		ID:     filepath.ToSlash(strings.TrimSuffix(rel, ComponentExt)),
	}, true, nil
}
