package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/eghc/internal/adapter"
	"github.com/mouse-blink/eghc/internal/controller"
	m "github.com/mouse-blink/eghc/internal/model"
)

var (
	// ErrBuildFailed is returned when at least one component failed to compile.
	ErrBuildFailed = errors.New("build failed")
	// ErrDuplicateComponentID is returned when two discovered files map to
	// the same component ID and would share output paths and scope classes.
	ErrDuplicateComponentID = errors.New("duplicate component id")
)

// SourceArgs selects the components a command works on.
type SourceArgs struct {
	Paths   []m.Path
	Exclude []string
}

// BuildArgs configures a batch build.
type BuildArgs struct {
	SourceArgs
	OutDir   m.Path
	CacheDir m.Path
	Parallel int
	UseCache bool
	Options  m.Options
}

// ListArgs configures component listing.
type ListArgs struct {
	SourceArgs
}

// InspectArgs selects a single component to inspect. The component ID is
// the file's path below Root, as a build rooted there would name it, unless
// ID overrides it. Root defaults to the working directory.
type InspectArgs struct {
	Path m.Path
	Root m.Path
	ID   string
}

// Workflow defines the batch operations of the compiler CLI.
type Workflow interface {
	Build(ctx context.Context, args BuildArgs) error
	List(ctx context.Context, args ListArgs) error
	Inspect(ctx context.Context, args InspectArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	ui        controller.UI
	orch      Orchestrator
	compiler  Compiler
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	ui controller.UI,
	orch Orchestrator,
	compiler Compiler,
) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		ui:        ui,
		orch:      orch,
		compiler:  compiler,
	}
}

// Build compiles every selected component with a bounded worker pool.
// Component failures are reported and turn into ErrBuildFailed once every
// component has been attempted; infrastructure errors abort the build.
func (w *workflow) Build(ctx context.Context, args BuildArgs) error {
	sources, err := w.sources(args.SourceArgs)
	if err != nil {
		return err
	}

	workers := args.Parallel
	if workers <= 0 {
		workers = 1
	}

	if err := w.ui.Start(controller.WithBuildMode()); err != nil {
		return err
	}

	slog.InfoContext(ctx, "build.start",
		slog.Int("components", len(sources)),
		slog.Int("workers", workers),
		slog.Bool("cache", args.UseCache),
	)

	started := time.Now()
	results := make([]m.BuildResult, len(sources))

	w.ui.DisplayBuildStart(len(sources), workers)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	var mu sync.Mutex

	for i, source := range sources {
		group.Go(func() error {
			result, err := w.orch.BuildComponent(groupCtx, source, args)
			if err != nil {
				return fmt.Errorf("build %s: %w", source.ID, err)
			}

			logResult(groupCtx, result)

			mu.Lock()
			results[i] = result
			mu.Unlock()

			w.ui.DisplayBuildResult(result)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		w.ui.Close()
		w.ui.Wait()

		return err
	}

	w.ui.DisplayBuildSummary(results)
	w.ui.Close()
	w.ui.Wait()

	failed := 0

	for _, result := range results {
		if result.Status == m.BuildFailed {
			failed++
		}
	}

	slog.InfoContext(ctx, "build.done",
		slog.Int("components", len(results)),
		slog.Int("failed", failed),
		slog.Duration("elapsed", time.Since(started)),
	)

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d component(s) failed", ErrBuildFailed, failed, len(results))
	}

	return nil
}

func logResult(ctx context.Context, result m.BuildResult) {
	switch result.Status {
	case m.BuildCached:
		slog.DebugContext(ctx, "build.cache_hit", slog.String("component", result.Source.ID))
	case m.BuildCompiled:
		slog.DebugContext(ctx, "build.compiled",
			slog.String("component", result.Source.ID),
			slog.Int("signals", result.Stats.Signals),
			slog.Duration("elapsed", result.Duration),
		)
	case m.BuildFailed:
		slog.WarnContext(ctx, "build.failed",
			slog.String("component", result.Source.ID),
			slog.Any("error", result.Err),
		)
	}

	for _, warning := range result.Warnings {
		slog.WarnContext(ctx, "build.warning",
			slog.String("component", result.Source.ID),
			slog.String("kind", warning.Kind),
			slog.String("message", warning.Message),
		)
	}
}

// List analyzes every selected component without writing anything.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	sources, err := w.sources(args.SourceArgs)
	if err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithListMode()); err != nil {
		return err
	}

	defer w.ui.Close()

	infos := make([]m.ComponentInfo, 0, len(sources))

	for _, source := range sources {
		info, err := w.analyze(ctx, source)
		if err != nil && ctx.Err() != nil {
			return ctx.Err()
		}

		infos = append(infos, info)
	}

	return w.ui.DisplayComponents(infos)
}

// Inspect shows the reactive structure of a single component.
func (w *workflow) Inspect(ctx context.Context, args InspectArgs) error {
	abs, err := filepath.Abs(string(args.Path))
	if err != nil {
		return err
	}

	root := string(args.Root)
	if root == "" {
		root = "."
	}

	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	source := m.Source{Origin: m.Path(abs), Root: m.Path(rootAbs), ID: args.ID}
	if source.ID == "" {
		source = w.inspectSource(source)
	}

	info, err := w.analyze(ctx, source)
	if displayErr := w.ui.DisplayInspection(info); displayErr != nil && err == nil {
		return displayErr
	}

	return err
}

// inspectSource names the component by its path below the root. Files
// outside the root are named by their base name.
func (w *workflow) inspectSource(source m.Source) m.Source {
	rel, err := w.fsAdapter.RelPath(source.Root, source.Origin)
	if err != nil || rel == ".." || strings.HasPrefix(filepath.ToSlash(string(rel)), "../") {
		source.Root = m.Path(filepath.Dir(string(source.Origin)))
		source.ID = trimExt(filepath.Base(string(source.Origin)))

		return source
	}

	source.ID = filepath.ToSlash(trimExt(string(rel)))

	return source
}

func (w *workflow) analyze(ctx context.Context, source m.Source) (m.ComponentInfo, error) {
	content, err := w.fsAdapter.ReadFile(source.Origin)
	if err != nil {
		err = fmt.Errorf("read %s: %w", source.Origin, err)

		return m.ComponentInfo{Source: source, Err: err}, err
	}

	info, err := w.compiler.Analyze(ctx, m.Input{
		ID:       source.ID,
		FileName: source.ID + adapter.ComponentExt,
		Source:   string(content),
	})
	info.Source = source
	info.Err = err

	return info, err
}

// sources discovers components and drops the excluded ones. Results are
// sorted by ID so every run visits components in the same order.
func (w *workflow) sources(args SourceArgs) ([]m.Source, error) {
	paths := args.Paths
	if len(paths) == 0 {
		paths = []m.Path{"./..."}
	}

	sources, err := w.fsAdapter.Get(paths)
	if err != nil {
		return nil, fmt.Errorf("discover components: %w", err)
	}

	excludes, err := compileExcludes(args.Exclude)
	if err != nil {
		return nil, err
	}

	filtered := make([]m.Source, 0, len(sources))

	for _, source := range sources {
		if excluded(source, excludes) {
			continue
		}

		filtered = append(filtered, source)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].ID != filtered[j].ID {
			return filtered[i].ID < filtered[j].ID
		}

		return filtered[i].Origin < filtered[j].Origin
	})

	for i := 1; i < len(filtered); i++ {
		if filtered[i].ID == filtered[i-1].ID {
			return nil, fmt.Errorf("%w %q: %s and %s",
				ErrDuplicateComponentID, filtered[i].ID, filtered[i-1].Origin, filtered[i].Origin)
		}
	}

	return filtered, nil
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

// excluded matches patterns against the component ID and its full path.
func excluded(source m.Source, excludes []*regexp.Regexp) bool {
	for _, re := range excludes {
		if re.MatchString(source.ID) || re.MatchString(filepath.ToSlash(string(source.Origin))) {
			return true
		}
	}

	return false
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
