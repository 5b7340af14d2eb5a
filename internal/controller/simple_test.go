package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/eghc/internal/model"
)

func counterInfo() m.ComponentInfo {
	stmt := m.ReactiveStatement{
		ID:           "reactive_0",
		TargetVar:    "doubled",
		Dependencies: []string{"count"},
		Outputs:      []string{"doubled"},
		Offset:       120,
	}

	countText := &m.DependencyTarget{NodeID: 3, Type: m.TargetTextContent, Reads: []string{"count"}, Offset: 40, Block: -1}
	doubledText := &m.DependencyTarget{NodeID: 6, Type: m.TargetTextContent, Reads: []string{"doubled"}, Offset: 70, Block: -1}
	click := &m.DependencyTarget{NodeID: 7, Type: m.TargetEventListener, Name: "click", Offset: 90, Block: -1}

	return m.ComponentInfo{
		Source:     m.Source{ID: "Counter"},
		ScopeClass: "egh-1a2b3c4d",
		Analysis: m.Analysis{
			Vars:       []m.ReactiveVar{{Name: "count"}, {Name: "doubled"}},
			Statements: []m.ReactiveStatement{stmt},
			Order:      []m.ReactiveStatement{stmt},
			Signals: m.SignalGraph{
				"count":   {Name: "count", Declared: true, Subscribers: []m.Subscriber{{Target: countText}, {Statement: &stmt}}},
				"doubled": {Name: "doubled", Declared: true, Subscribers: []m.Subscriber{{Target: doubledText}}},
			},
			SignalOrder: []string{"count", "doubled"},
			Props:       []string{"label"},
			StoreRefs:   []string{"$user"},
		},
		Template: m.Template{Targets: []*m.DependencyTarget{countText, doubledText, click}},
		Warnings: []m.Warning{{Kind: "SectionMalformed", Message: "unterminated <style>"}},
	}
}

func buildResults() []m.BuildResult {
	return []m.BuildResult{
		{
			Source:    m.Source{ID: "Counter"},
			Status:    m.BuildCompiled,
			Artifacts: []m.Path{"dist/Counter.js", "dist/Counter.css"},
			Duration:  12 * time.Millisecond,
		},
		{
			Source:    m.Source{ID: "ui/Toggle"},
			Status:    m.BuildCached,
			Artifacts: []m.Path{"dist/ui/Toggle.js"},
		},
		{
			Source: m.Source{ID: "Cycle"},
			Status: m.BuildFailed,
			Err:    errors.New("Cycle.egh:9:3: CyclicDependency: x -> y -> x"),
		},
	}
}

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	return NewSimpleUI(cmd), &buf
}

func assertContainsAll(t *testing.T, output string, wants ...string) {
	t.Helper()

	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayComponents_PrintsTable(t *testing.T) {
	ui, buf := newTestSimpleUI()

	failed := m.ComponentInfo{Source: m.Source{ID: "Broken"}, Err: errors.New("UnmatchedControlBlock")}

	if err := ui.DisplayComponents([]m.ComponentInfo{counterInfo(), failed}); err != nil {
		t.Fatalf("DisplayComponents() error = %v", err)
	}

	assertContainsAll(t, buf.String(),
		"COMPONENT",
		"SIGNALS",
		"Counter",
		"Broken",
		"UnmatchedControlBlock",
		"TOTAL COMPONENTS 2",
		"1 FAILED",
	)
}

func TestSimpleUI_DisplayInspection(t *testing.T) {
	ui, buf := newTestSimpleUI()

	if err := ui.DisplayInspection(counterInfo()); err != nil {
		t.Fatalf("DisplayInspection() error = %v", err)
	}

	assertContainsAll(t, buf.String(),
		"Component: Counter",
		"Scope class: egh-1a2b3c4d",
		"text n3, reactive_0",
		"Evaluation order:",
		"1. reactive_0: doubled <- count",
		"Props: label",
		"Store references: $user",
		"warning: SectionMalformed: unterminated <style>",
	)
}

func TestSimpleUI_DisplayInspection_Error(t *testing.T) {
	ui, buf := newTestSimpleUI()
	boom := errors.New("boom")

	if err := ui.DisplayInspection(m.ComponentInfo{Err: boom}); !errors.Is(err, boom) {
		t.Fatalf("DisplayInspection() error = %v, want %v", err, boom)
	}

	if !strings.Contains(buf.String(), "inspect error: boom") {
		t.Fatalf("output missing error message\noutput:\n%s", buf.String())
	}
}

func TestSimpleUI_BuildProgress(t *testing.T) {
	ui, buf := newTestSimpleUI()
	results := buildResults()

	if err := ui.Start(WithBuildMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ui.DisplayBuildStart(len(results), 2)

	for _, result := range results {
		ui.DisplayBuildResult(result)
	}

	ui.DisplayBuildSummary(results)
	ui.Close()
	ui.Wait()

	assertContainsAll(t, buf.String(),
		"Building 3 component(s) with 2 worker(s)",
		"compiled Counter (12ms)",
		"cached   ui/Toggle",
		"failed   Cycle: Cycle.egh:9:3: CyclicDependency: x -> y -> x",
		"dist/Counter.js",
		"dist/ui/Toggle.js",
		"TOTAL COMPONENTS 3",
		"1 CACHED",
		"1 COMPILED, 1 FAILED",
	)
}

func TestDescribeTarget(t *testing.T) {
	tests := []struct {
		target m.DependencyTarget
		want   string
	}{
		{target: m.DependencyTarget{NodeID: 3, Type: m.TargetTextContent}, want: "text n3"},
		{target: m.DependencyTarget{NodeID: 2, Type: m.TargetAttribute, Name: "value"}, want: "attribute(value) n2"},
		{target: m.DependencyTarget{NodeID: 7, Type: m.TargetEventListener, Name: "click"}, want: "event(click) n7"},
		{target: m.DependencyTarget{NodeID: 1, Type: m.TargetStructural, Block: 0}, want: "structural #0"},
	}

	for _, tt := range tests {
		if got := describeTarget(&tt.target); got != tt.want {
			t.Errorf("describeTarget() = %q, want %q", got, tt.want)
		}
	}
}

func TestDescribeStatement_SideEffectOnly(t *testing.T) {
	got := describeStatement(m.ReactiveStatement{ID: "reactive_1", Dependencies: []string{"count"}})
	if got != "reactive_1: - <- count" {
		t.Errorf("describeStatement() = %q", got)
	}
}
