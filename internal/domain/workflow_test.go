package domain_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/mouse-blink/eghc/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/eghc/internal/controller/mocks"
	"github.com/mouse-blink/eghc/internal/domain"
	domainmocks "github.com/mouse-blink/eghc/internal/domain/mocks"
	m "github.com/mouse-blink/eghc/internal/model"
)

type workflowMocks struct {
	fs       *adaptermocks.MockSourceFSAdapter
	ui       *controllermocks.MockUI
	orch     *domainmocks.MockOrchestrator
	compiler *domainmocks.MockCompiler
}

func newTestWorkflow(t *testing.T) (domain.Workflow, workflowMocks) {
	t.Helper()

	mocks := workflowMocks{
		fs:       adaptermocks.NewMockSourceFSAdapter(t),
		ui:       controllermocks.NewMockUI(t),
		orch:     domainmocks.NewMockOrchestrator(t),
		compiler: domainmocks.NewMockCompiler(t),
	}

	return domain.NewWorkflow(mocks.fs, mocks.ui, mocks.orch, mocks.compiler), mocks
}

func testSources() []m.Source {
	return []m.Source{
		{Origin: "src/ui/Toggle.egh", Root: "src", ID: "ui/Toggle"},
		{Origin: "src/Counter.egh", Root: "src", ID: "Counter"},
	}
}

func expectUI(ui *controllermocks.MockUI) {
	ui.EXPECT().Start(mock.Anything).Return(nil)
	ui.EXPECT().Close().Return()
	ui.EXPECT().Wait().Return()
}

func TestWorkflow_Build(t *testing.T) {
	ctx := context.Background()
	wf, mocks := newTestWorkflow(t)

	args := domain.BuildArgs{
		SourceArgs: domain.SourceArgs{Paths: []m.Path{"src/..."}},
		OutDir:     "dist",
		Parallel:   2,
		UseCache:   true,
	}

	sources := testSources()
	mocks.fs.EXPECT().Get([]m.Path{"src/..."}).Return(sources, nil)
	expectUI(mocks.ui)
	mocks.ui.EXPECT().DisplayBuildStart(2, 2).Return()

	for _, source := range sources {
		mocks.orch.EXPECT().BuildComponent(mock.Anything, source, args).
			Return(m.BuildResult{Source: source, Status: m.BuildCompiled}, nil)
	}

	mocks.ui.EXPECT().DisplayBuildResult(mock.Anything).Return().Times(2)
	mocks.ui.EXPECT().DisplayBuildSummary(mock.MatchedBy(func(results []m.BuildResult) bool {
		return len(results) == 2 && results[0].Source.ID == "Counter" && results[1].Source.ID == "ui/Toggle"
	})).Return()

	require.NoError(t, wf.Build(ctx, args))
}

func TestWorkflow_Build_DefaultsToCurrentTree(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	mocks.fs.EXPECT().Get([]m.Path{"./..."}).Return(nil, nil)
	expectUI(mocks.ui)
	mocks.ui.EXPECT().DisplayBuildStart(0, 1).Return()
	mocks.ui.EXPECT().DisplayBuildSummary(mock.Anything).Return()

	require.NoError(t, wf.Build(context.Background(), domain.BuildArgs{}))
}

func TestWorkflow_Build_ReportsComponentFailures(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	args := domain.BuildArgs{Parallel: 1}
	sources := testSources()

	mocks.fs.EXPECT().Get(mock.Anything).Return(sources, nil)
	expectUI(mocks.ui)
	mocks.ui.EXPECT().DisplayBuildStart(2, 1).Return()

	mocks.orch.EXPECT().BuildComponent(mock.Anything, sources[1], args).
		Return(m.BuildResult{Source: sources[1], Status: m.BuildFailed, Err: domain.ErrCyclicDependency}, nil)
	mocks.orch.EXPECT().BuildComponent(mock.Anything, sources[0], args).
		Return(m.BuildResult{Source: sources[0], Status: m.BuildCached}, nil)

	mocks.ui.EXPECT().DisplayBuildResult(mock.Anything).Return().Times(2)
	mocks.ui.EXPECT().DisplayBuildSummary(mock.Anything).Return()

	err := wf.Build(context.Background(), args)
	require.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.Contains(t, err.Error(), "1 of 2 component(s) failed")
}

func TestWorkflow_Build_StopsOnInfrastructureError(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	args := domain.BuildArgs{Parallel: 1}
	sources := testSources()
	diskFull := errors.New("disk full")

	mocks.fs.EXPECT().Get(mock.Anything).Return(sources, nil)
	expectUI(mocks.ui)
	mocks.ui.EXPECT().DisplayBuildStart(2, 1).Return()

	mocks.orch.EXPECT().BuildComponent(mock.Anything, sources[1], args).Return(m.BuildResult{}, diskFull)
	mocks.orch.EXPECT().BuildComponent(mock.Anything, sources[0], args).
		Return(m.BuildResult{Source: sources[0], Status: m.BuildCompiled}, nil).Maybe()
	mocks.ui.EXPECT().DisplayBuildResult(mock.Anything).Return().Maybe()

	err := wf.Build(context.Background(), args)
	require.ErrorIs(t, err, diskFull)
	assert.Contains(t, err.Error(), "build Counter")
	mocks.ui.AssertNotCalled(t, "DisplayBuildSummary", mock.Anything)
}

func TestWorkflow_Build_Excludes(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	args := domain.BuildArgs{SourceArgs: domain.SourceArgs{Exclude: []string{"^ui/"}}, Parallel: 4}
	sources := testSources()

	mocks.fs.EXPECT().Get(mock.Anything).Return(sources, nil)
	expectUI(mocks.ui)
	mocks.ui.EXPECT().DisplayBuildStart(1, 4).Return()
	mocks.orch.EXPECT().BuildComponent(mock.Anything, sources[1], args).
		Return(m.BuildResult{Source: sources[1], Status: m.BuildCompiled}, nil)
	mocks.ui.EXPECT().DisplayBuildResult(mock.Anything).Return()
	mocks.ui.EXPECT().DisplayBuildSummary(mock.Anything).Return()

	require.NoError(t, wf.Build(context.Background(), args))
}

func TestWorkflow_Build_SourceErrors(t *testing.T) {
	tests := []struct {
		name    string
		exclude []string
		getErr  error
		want    string
	}{
		{name: "invalid exclude", exclude: []string{"("}, want: `invalid exclude pattern "("`},
		{name: "discovery failure", getErr: errors.New("permission denied"), want: "discover components: permission denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wf, mocks := newTestWorkflow(t)

			mocks.fs.EXPECT().Get(mock.Anything).Return(testSources(), tt.getErr)

			err := wf.Build(context.Background(), domain.BuildArgs{SourceArgs: domain.SourceArgs{Exclude: tt.exclude}})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestWorkflow_Build_RejectsDuplicateIDs(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	mocks.fs.EXPECT().Get([]m.Path{"a/...", "b/..."}).Return([]m.Source{
		{Origin: "b/Button.egh", Root: "b", ID: "Button"},
		{Origin: "a/Button.egh", Root: "a", ID: "Button"},
		{Origin: "a/Card.egh", Root: "a", ID: "Card"},
	}, nil)

	err := wf.Build(context.Background(), domain.BuildArgs{
		SourceArgs: domain.SourceArgs{Paths: []m.Path{"a/...", "b/..."}},
	})
	require.ErrorIs(t, err, domain.ErrDuplicateComponentID)
	assert.Contains(t, err.Error(), `"Button": a/Button.egh and b/Button.egh`)
	mocks.orch.AssertNotCalled(t, "BuildComponent", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_List(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	sources := testSources()

	mocks.fs.EXPECT().Get([]m.Path{"src"}).Return(sources, nil)
	mocks.ui.EXPECT().Start(mock.Anything).Return(nil)
	mocks.ui.EXPECT().Close().Return()

	mocks.fs.EXPECT().ReadFile(m.Path("src/Counter.egh")).Return([]byte("<script>let n = 0;</script>"), nil)
	mocks.fs.EXPECT().ReadFile(m.Path("src/ui/Toggle.egh")).Return(nil, errors.New("gone"))

	mocks.compiler.EXPECT().Analyze(mock.Anything, m.Input{
		ID:       "Counter",
		FileName: "Counter.egh",
		Source:   "<script>let n = 0;</script>",
	}).Return(m.ComponentInfo{ScopeClass: "egh-1"}, nil)

	mocks.ui.EXPECT().DisplayComponents(mock.MatchedBy(func(infos []m.ComponentInfo) bool {
		return len(infos) == 2 &&
			infos[0].Source.ID == "Counter" && infos[0].Err == nil && infos[0].ScopeClass == "egh-1" &&
			infos[1].Source.ID == "ui/Toggle" && infos[1].Err != nil
	})).Return(nil)

	require.NoError(t, wf.List(context.Background(), domain.ListArgs{SourceArgs: domain.SourceArgs{Paths: []m.Path{"src"}}}))
}

func TestWorkflow_List_KeepsAnalysisFailures(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	sources := testSources()[1:]

	mocks.fs.EXPECT().Get(mock.Anything).Return(sources, nil)
	mocks.ui.EXPECT().Start(mock.Anything).Return(nil)
	mocks.ui.EXPECT().Close().Return()
	mocks.fs.EXPECT().ReadFile(mock.Anything).Return([]byte("<script>$: y = 1;</script>"), nil)
	mocks.compiler.EXPECT().Analyze(mock.Anything, mock.Anything).
		Return(m.ComponentInfo{}, domain.ErrUndeclaredAssignmentTarget)
	mocks.ui.EXPECT().DisplayComponents(mock.MatchedBy(func(infos []m.ComponentInfo) bool {
		return len(infos) == 1 && errors.Is(infos[0].Err, domain.ErrUndeclaredAssignmentTarget)
	})).Return(nil)

	require.NoError(t, wf.List(context.Background(), domain.ListArgs{}))
}

func TestWorkflow_Inspect(t *testing.T) {
	cwd, err := filepath.Abs(".")
	require.NoError(t, err)

	tests := []struct {
		name     string
		args     domain.InspectArgs
		rel      m.Path
		wantID   string
		wantFile string
		wantRoot string
	}{
		{
			name:     "id relative to working directory",
			args:     domain.InspectArgs{Path: "components/Counter.egh"},
			rel:      "components/Counter.egh",
			wantID:   "components/Counter",
			wantFile: "components/Counter.egh",
			wantRoot: cwd,
		},
		{
			name:     "id relative to root",
			args:     domain.InspectArgs{Path: "components/ui/Counter.egh", Root: "components"},
			rel:      "ui/Counter.egh",
			wantID:   "ui/Counter",
			wantFile: "ui/Counter.egh",
			wantRoot: filepath.Join(cwd, "components"),
		},
		{
			name:     "file outside root",
			args:     domain.InspectArgs{Path: "components/Counter.egh", Root: "src"},
			rel:      "../components/Counter.egh",
			wantID:   "Counter",
			wantFile: "Counter.egh",
			wantRoot: filepath.Join(cwd, "components"),
		},
		{
			name:     "explicit id",
			args:     domain.InspectArgs{Path: "components/Counter.egh", ID: "ui/Counter"},
			wantID:   "ui/Counter",
			wantFile: "ui/Counter.egh",
			wantRoot: cwd,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wf, mocks := newTestWorkflow(t)

			abs, err := filepath.Abs(string(tt.args.Path))
			require.NoError(t, err)

			if tt.rel != "" {
				rootAbs, err := filepath.Abs(string(tt.args.Root))
				require.NoError(t, err)

				mocks.fs.EXPECT().RelPath(m.Path(rootAbs), m.Path(abs)).Return(tt.rel, nil)
			}

			mocks.fs.EXPECT().ReadFile(m.Path(abs)).Return([]byte("<script>let n = 0;</script>"), nil)
			mocks.compiler.EXPECT().Analyze(mock.Anything, mock.MatchedBy(func(in m.Input) bool {
				return in.ID == tt.wantID && in.FileName == tt.wantFile
			})).Return(m.ComponentInfo{}, nil)
			mocks.ui.EXPECT().DisplayInspection(mock.MatchedBy(func(info m.ComponentInfo) bool {
				return info.Source.ID == tt.wantID && string(info.Source.Origin) == abs &&
					string(info.Source.Root) == tt.wantRoot
			})).Return(nil)

			require.NoError(t, wf.Inspect(context.Background(), tt.args))
		})
	}
}

func TestWorkflow_Inspect_ReturnsAnalysisError(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	mocks.fs.EXPECT().RelPath(mock.Anything, mock.Anything).Return("Loop.egh", nil)
	mocks.fs.EXPECT().ReadFile(mock.Anything).Return([]byte("<script>$: x = y; $: y = x;</script>"), nil)
	mocks.compiler.EXPECT().Analyze(mock.Anything, mock.Anything).Return(m.ComponentInfo{}, domain.ErrCyclicDependency)
	mocks.ui.EXPECT().DisplayInspection(mock.MatchedBy(func(info m.ComponentInfo) bool {
		return errors.Is(info.Err, domain.ErrCyclicDependency)
	})).Return(domain.ErrCyclicDependency)

	err := wf.Inspect(context.Background(), domain.InspectArgs{Path: "Loop.egh"})
	require.ErrorIs(t, err, domain.ErrCyclicDependency)
}
