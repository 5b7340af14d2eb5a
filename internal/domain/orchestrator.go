package domain

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/mouse-blink/eghc/internal/adapter"
	m "github.com/mouse-blink/eghc/internal/model"
)

const artifactPerm = 0o644

// Orchestrator builds a single component: it consults the cache, compiles on
// a miss and writes the artifacts.
type Orchestrator interface {
	// BuildComponent reports compile failures in the result. The returned
	// error is reserved for infrastructure failures that should stop the
	// whole build.
	BuildComponent(ctx context.Context, source m.Source, args BuildArgs) (m.BuildResult, error)
}

type orchestrator struct {
	fsAdapter adapter.SourceFSAdapter
	cache     adapter.CacheStore
	compiler  Compiler
	now       func() time.Time
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem adapter, cache store and compiler.
func NewOrchestrator(fsAdapter adapter.SourceFSAdapter, cache adapter.CacheStore, compiler Compiler) Orchestrator {
	return &orchestrator{
		fsAdapter: fsAdapter,
		cache:     cache,
		compiler:  compiler,
		now:       time.Now,
	}
}

func (o *orchestrator) BuildComponent(ctx context.Context, source m.Source, args BuildArgs) (m.BuildResult, error) {
	start := o.now()
	result := m.BuildResult{Source: source}

	content, err := o.fsAdapter.ReadFile(source.Origin)
	if err != nil {
		return o.failed(result, start, fmt.Errorf("read %s: %w", source.Origin, err)), nil
	}

	input := m.Input{
		ID:       source.ID,
		FileName: source.ID + adapter.ComponentExt,
		Source:   string(content),
		Options:  args.Options,
	}

	key, err := o.cache.Key(input)
	if err != nil {
		return m.BuildResult{}, fmt.Errorf("cache key for %s: %w", source.ID, err)
	}

	if args.UseCache {
		entry, ok, err := o.cache.Load(args.CacheDir, key)
		if err != nil {
			return m.BuildResult{}, err
		}

		if ok {
			output := m.Output{
				Code:       entry.Code,
				CSS:        entry.CSS,
				ScopeClass: entry.ScopeClass,
				SourceMap:  []byte(entry.SourceMap),
				Warnings:   entry.Warnings,
				Stats:      entry.Stats,
			}

			return o.write(result, start, source, args, output, m.BuildCached)
		}
	}

	output, err := o.compiler.Compile(ctx, input)
	if err != nil {
		return o.failed(result, start, err), nil
	}

	result, err = o.write(result, start, source, args, output, m.BuildCompiled)
	if err != nil {
		return m.BuildResult{}, err
	}

	if args.UseCache {
		entry := m.CacheEntry{
			Key:        key,
			ID:         source.ID,
			Code:       output.Code,
			CSS:        output.CSS,
			ScopeClass: output.ScopeClass,
			SourceMap:  string(output.SourceMap),
			Stats:      output.Stats,
			Warnings:   output.Warnings,
			CreatedAt:  o.now().UTC(),
		}

		if err := o.cache.Save(args.CacheDir, entry); err != nil {
			return m.BuildResult{}, fmt.Errorf("save cache for %s: %w", source.ID, err)
		}
	}

	return result, nil
}

func (o *orchestrator) failed(result m.BuildResult, start time.Time, err error) m.BuildResult {
	result.Status = m.BuildFailed
	result.Err = err
	result.Duration = o.now().Sub(start)

	return result
}

type artifact struct {
	path    m.Path
	content []byte
}

// write stores the artifacts of one component below the output directory,
// mirroring the component's path below its discovery root.
func (o *orchestrator) write(result m.BuildResult, start time.Time, source m.Source, args BuildArgs, output m.Output, status m.BuildStatus) (m.BuildResult, error) {
	base := o.fsAdapter.JoinPath(string(args.OutDir), source.ID)
	jsPath := m.Path(string(base) + ".js")

	code := output.Code
	if len(output.SourceMap) > 0 {
		code += "//# sourceMappingURL=" + path.Base(source.ID) + ".js.map\n"
	}

	artifacts := []artifact{{path: jsPath, content: []byte(code)}}

	if output.CSS != "" {
		artifacts = append(artifacts, artifact{path: m.Path(string(base) + ".css"), content: []byte(output.CSS)})
	}

	if len(output.SourceMap) > 0 {
		artifacts = append(artifacts, artifact{path: m.Path(string(jsPath) + ".map"), content: output.SourceMap})
	}

	for _, a := range artifacts {
		if err := o.fsAdapter.WriteFileAtomic(a.path, a.content, artifactPerm); err != nil {
			return m.BuildResult{}, fmt.Errorf("write %s: %w", a.path, err)
		}

		result.Artifacts = append(result.Artifacts, a.path)
	}

	result.Status = status
	result.Stats = output.Stats
	result.Warnings = output.Warnings
	result.Duration = o.now().Sub(start)

	return result, nil
}
