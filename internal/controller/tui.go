package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/eghc/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	config  StartConfig
	program *tea.Program
	done    chan struct{}
	err     error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start initializes the UI. Build mode runs the progress program in the
// background until the summary is displayed.
func (t *TUI) Start(options ...StartOption) error {
	t.config = StartConfig{}
	for _, option := range options {
		option(&t.config)
	}

	if t.config.mode != ModeBuild {
		return nil
	}

	t.program = tea.NewProgram(newBuildModel(), tea.WithOutput(t.output))
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		if _, err := t.program.Run(); err != nil {
			t.err = err
		}
	}()

	return nil
}

// Close stops a running program.
func (t *TUI) Close() {
	if t.program != nil {
		t.program.Quit()
	}
}

// Wait blocks until the running program exits.
func (t *TUI) Wait() {
	if t.done != nil {
		<-t.done
	}

	if t.err != nil {
		_, _ = fmt.Fprintf(t.output, "ui error: %v\n", t.err)
	}
}

func (t *TUI) send(msg tea.Msg) {
	if t.program != nil {
		t.program.Send(msg)
	}
}

// DisplayComponents shows the component list; lists taller than the
// terminal open a scrollable view.
func (t *TUI) DisplayComponents(infos []m.ComponentInfo) error {
	items := make([]componentItem, 0, len(infos))

	for _, info := range infos {
		item := componentItem{
			id:      info.Source.ID,
			signals: len(info.Analysis.Signals),
			targets: len(info.Template.Targets),
		}

		if info.Err != nil {
			item.failed = true
			item.detail = info.Err.Error()
		}

		items = append(items, item)
	}

	model := newListModel().handleComponentsMsg(componentsMsg{items: items})
	model.width, model.height = 80, 0

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width, model.height = width, height
		}
	}

	if model.height == 0 || len(items) <= model.height-9 {
		model.height = len(items) + 9
		_, err := fmt.Fprintln(t.output, model.View())

		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayInspection prints the signal graph of one component.
func (t *TUI) DisplayInspection(info m.ComponentInfo) error {
	if info.Err != nil {
		_, _ = fmt.Fprintf(t.output, "inspect error: %v\n", info.Err)

		return info.Err
	}

	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	subStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	var b strings.Builder

	b.WriteString(titleStyle.Render(info.Source.ID))

	if info.ScopeClass != "" {
		b.WriteString("  " + mutedStyle.Render(info.ScopeClass))
	}

	b.WriteString("\n\n")

	for _, name := range info.Analysis.SignalOrder {
		subs := describeSubscribers(info.Analysis.Signals[name])
		fmt.Fprintf(&b, "%s -> %s\n", nameStyle.Render(name), subStyle.Render(strings.Join(subs, ", ")))
	}

	if len(info.Analysis.Order) > 0 {
		b.WriteString("\n" + mutedStyle.Render("evaluation order") + "\n")
	}

	for i, stmt := range info.Analysis.Order {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, describeStatement(stmt))
	}

	if len(info.Analysis.Props) > 0 {
		fmt.Fprintf(&b, "\n%s %s\n", mutedStyle.Render("props"), strings.Join(info.Analysis.Props, ", "))
	}

	if len(info.Analysis.StoreRefs) > 0 {
		fmt.Fprintf(&b, "%s %s\n", mutedStyle.Render("stores"), strings.Join(info.Analysis.StoreRefs, ", "))
	}

	for _, warning := range info.Warnings {
		fmt.Fprintf(&b, "%s %s\n", lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Render(warning.Kind), warning.Message)
	}

	_, err := fmt.Fprint(t.output, lipgloss.NewStyle().Padding(1, 2).Render(b.String())+"\n")

	return err
}

// DisplayBuildStart shows the build size.
func (t *TUI) DisplayBuildStart(total int, workers int) {
	t.send(buildStartMsg{total: total, workers: workers})
}

// DisplayBuildResult records one finished component.
func (t *TUI) DisplayBuildResult(result m.BuildResult) {
	msg := buildResultMsg{id: result.Source.ID, status: string(result.Status), duration: result.Duration}
	if result.Err != nil {
		msg.detail = result.Err.Error()
	}

	t.send(msg)
}

// DisplayBuildSummary shows the totals and ends the progress program.
func (t *TUI) DisplayBuildSummary(results []m.BuildResult) {
	totals := summarize(results)
	t.send(buildDoneMsg{compiled: totals.compiled, cached: totals.cached, failed: totals.failed})
}
