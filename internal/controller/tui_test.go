package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/eghc/internal/model"
)

func TestTUI_BuildMode_RunsUntilSummary(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	// send before start is a no-op
	tui.DisplayBuildStart(1, 1)

	if err := tui.Start(WithBuildMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	results := buildResults()
	tui.DisplayBuildStart(len(results), 2)

	for _, result := range results {
		tui.DisplayBuildResult(result)
	}

	tui.DisplayBuildSummary(results)

	done := make(chan struct{})
	go func() {
		tui.Close()
		tui.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait() timed out")
	}

	if !strings.Contains(buf.String(), "eghc build") {
		t.Fatalf("output missing title\noutput:\n%s", buf.String())
	}
}

func TestTUI_ListMode_NoProgram(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.Start(WithListMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// Close and Wait without a running program must not block.
	tui.Close()
	tui.Wait()
	tui.DisplayBuildResult(m.BuildResult{})
}

func TestTUI_DisplayComponents_PrintsStaticView(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	failed := m.ComponentInfo{Source: m.Source{ID: "Broken"}, Err: errors.New("boom")}

	if err := tui.DisplayComponents([]m.ComponentInfo{counterInfo(), failed}); err != nil {
		t.Fatalf("DisplayComponents() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"eghc components", "Counter", "Broken: boom", "Sigs"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestTUI_DisplayInspection(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.DisplayInspection(counterInfo()); err != nil {
		t.Fatalf("DisplayInspection() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Counter", "egh-1a2b3c4d", "reactive_0", "evaluation order", "label", "$user", "SectionMalformed"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestTUI_DisplayInspection_Error(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)
	boom := errors.New("boom")

	if err := tui.DisplayInspection(m.ComponentInfo{Err: boom}); !errors.Is(err, boom) {
		t.Fatalf("DisplayInspection() error = %v, want %v", err, boom)
	}

	if !strings.Contains(buf.String(), "inspect error: boom") {
		t.Fatalf("output missing error\noutput:\n%s", buf.String())
	}
}

func TestBuildModel_Update(t *testing.T) {
	model := newBuildModel()

	if got := model.View(); !strings.Contains(got, "Discovering components") {
		t.Fatalf("initial View() = %q", got)
	}

	updated, _ := model.Update(buildStartMsg{total: 3, workers: 2})
	model = updated.(buildModel)

	updated, _ = model.Update(buildResultMsg{id: "Counter", status: "compiled", duration: 5 * time.Millisecond})
	model = updated.(buildModel)

	updated, _ = model.Update(buildResultMsg{id: "Cycle", status: "failed", detail: "CyclicDependency"})
	model = updated.(buildModel)

	if model.completed != 2 || len(model.failures) != 1 || len(model.log) != 2 {
		t.Fatalf("unexpected state: completed=%d failures=%d log=%d", model.completed, len(model.failures), len(model.log))
	}

	if model.log[0].detail != "5ms" {
		t.Errorf("log detail = %q, want duration", model.log[0].detail)
	}

	if got := model.percent(); got < 0.66 || got > 0.67 {
		t.Errorf("percent() = %v, want 2/3", got)
	}

	updated, cmd := model.Update(buildDoneMsg{compiled: 1, failed: 1})
	model = updated.(buildModel)

	if cmd == nil {
		t.Fatal("buildDoneMsg should quit the program")
	}

	view := model.View()
	for _, want := range []string{"eghc build", "Progress:", "Compiled:", "CyclicDependency"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\n%s", want, view)
		}
	}
}

func TestBuildModel_LogIsBounded(t *testing.T) {
	model := newBuildModel()

	for i := 0; i < maxLogLines+5; i++ {
		model = model.handleResult(buildResultMsg{id: "C", status: "compiled"})
	}

	if len(model.log) != maxLogLines {
		t.Fatalf("len(log) = %d, want %d", len(model.log), maxLogLines)
	}
}

func TestListModel_Update(t *testing.T) {
	model := newListModel().handleComponentsMsg(componentsMsg{items: []componentItem{
		{id: "Counter", signals: 2, targets: 3},
		{id: "Broken", failed: true, detail: "boom"},
	}})

	if model.total != 2 || model.failed != 1 || !model.rendered {
		t.Fatalf("unexpected state: total=%d failed=%d rendered=%v", model.total, model.failed, model.rendered)
	}

	updated, cmd := model.Update(tickMsg(time.Now()))
	model = updated.(listModel)

	if model.animOffset != 1 || cmd == nil {
		t.Fatalf("tick should advance the animation and schedule the next tick")
	}

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{text: "Counter", width: 10, want: "Counter"},
		{text: "ui/forms/Greeting", width: 6, want: "ui/fo…"},
		{text: "Counter", width: 1, want: "…"},
		{text: "Counter", width: 0, want: ""},
	}

	for _, tt := range tests {
		if got := truncateToWidth(tt.text, tt.width); got != tt.want {
			t.Errorf("truncateToWidth(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestAnimateScroll(t *testing.T) {
	text := "abcdefghij"

	tests := []struct {
		offset int
		want   string
	}{
		{offset: 0, want: "abcd…"},
		{offset: 5, want: "abcde"},
		{offset: 6, want: "bcdef"},
	}

	for _, tt := range tests {
		if got := animateScroll(text, 5, tt.offset); got != tt.want {
			t.Errorf("animateScroll(offset=%d) = %q, want %q", tt.offset, got, tt.want)
		}
	}

	if got := animateScroll("abc", 5, 9); got != "abc" {
		t.Errorf("short text should not scroll, got %q", got)
	}
}
