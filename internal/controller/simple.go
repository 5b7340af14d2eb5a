package controller

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/eghc/internal/model"
)

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// Wait returns immediately; plain output needs no user interaction.
func (s *SimpleUI) Wait() {
}

// DisplayComponents prints one row per discovered component.
func (s *SimpleUI) DisplayComponents(infos []m.ComponentInfo) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Component", "Vars", "Statements", "Signals", "Targets", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	failed := 0

	for _, info := range infos {
		status := "ok"
		if info.Err != nil {
			status = info.Err.Error()
			failed++
		}

		table.Append([]string{
			info.Source.ID,
			fmt.Sprintf("%d", len(info.Analysis.Vars)),
			fmt.Sprintf("%d", len(info.Analysis.Statements)),
			fmt.Sprintf("%d", len(info.Analysis.Signals)),
			fmt.Sprintf("%d", len(info.Template.Targets)),
			status,
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Components %d", len(infos)),
		"", "", "", "",
		fmt.Sprintf("%d failed", failed),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayInspection prints the signal graph and evaluation order of one
// component.
func (s *SimpleUI) DisplayInspection(info m.ComponentInfo) error {
	if info.Err != nil {
		s.printf("inspect error: %v\n", info.Err)

		return info.Err
	}

	s.printf("Component: %s\n", info.Source.ID)

	if info.ScopeClass != "" {
		s.printf("Scope class: %s\n", info.ScopeClass)
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Signal", "Subscribers"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, name := range info.Analysis.SignalOrder {
		signal := info.Analysis.Signals[name]
		table.Append([]string{name, strings.Join(describeSubscribers(signal), ", ")})
	}

	table.Render()
	s.printf("\n%s\n", tableBuffer.String())

	s.printf("Evaluation order:\n")

	for i, stmt := range info.Analysis.Order {
		s.printf("  %d. %s\n", i+1, describeStatement(stmt))
	}

	if len(info.Analysis.Props) > 0 {
		s.printf("Props: %s\n", strings.Join(info.Analysis.Props, ", "))
	}

	if len(info.Analysis.StoreRefs) > 0 {
		s.printf("Store references: %s\n", strings.Join(info.Analysis.StoreRefs, ", "))
	}

	for _, warning := range info.Warnings {
		s.printf("warning: %s: %s\n", warning.Kind, warning.Message)
	}

	return nil
}

// DisplayBuildStart announces the size of the build.
func (s *SimpleUI) DisplayBuildStart(total int, workers int) {
	s.printf("Building %d component(s) with %d worker(s)\n", total, workers)
}

// DisplayBuildResult prints the outcome of one component as it finishes.
func (s *SimpleUI) DisplayBuildResult(result m.BuildResult) {
	if result.Err != nil {
		s.printf("%-8s %s: %v\n", result.Status, result.Source.ID, result.Err)

		return
	}

	s.printf("%-8s %s (%s)\n", result.Status, result.Source.ID, result.Duration.Round(time.Millisecond))
}

// DisplayBuildSummary prints the artifacts of every component and the totals.
func (s *SimpleUI) DisplayBuildSummary(results []m.BuildResult) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Component", "Status", "Artifacts"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, result := range results {
		artifacts := make([]string, 0, len(result.Artifacts))
		for _, artifact := range result.Artifacts {
			artifacts = append(artifacts, string(artifact))
		}

		table.Append([]string{result.Source.ID, string(result.Status), strings.Join(artifacts, " ")})
	}

	totals := summarize(results)
	table.SetFooter([]string{
		fmt.Sprintf("Total Components %d", len(results)),
		fmt.Sprintf("%d cached", totals.cached),
		fmt.Sprintf("%d compiled, %d failed", totals.compiled, totals.failed),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func describeSubscribers(signal *m.Signal) []string {
	if signal == nil {
		return nil
	}

	out := make([]string, 0, len(signal.Subscribers))

	for _, sub := range signal.Subscribers {
		switch {
		case sub.Statement != nil:
			out = append(out, sub.Statement.ID)
		case sub.Target != nil:
			out = append(out, describeTarget(sub.Target))
		}
	}

	return out
}

func describeTarget(target *m.DependencyTarget) string {
	switch target.Type {
	case m.TargetAttribute, m.TargetEventListener:
		return fmt.Sprintf("%s(%s) n%d", target.Type, target.Name, target.NodeID)
	case m.TargetStructural:
		return fmt.Sprintf("%s #%d", target.Type, target.Block)
	default:
		return fmt.Sprintf("%s n%d", target.Type, target.NodeID)
	}
}

func describeStatement(stmt m.ReactiveStatement) string {
	outputs := strings.Join(stmt.Outputs, ", ")
	if outputs == "" {
		outputs = "-"
	}

	deps := strings.Join(stmt.Dependencies, ", ")
	if deps == "" {
		deps = "-"
	}

	return fmt.Sprintf("%s: %s <- %s", stmt.ID, outputs, deps)
}
