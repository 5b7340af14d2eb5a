package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxLogLines bounds the finished-component log shown under the bar.
const maxLogLines = 8

var statusColors = map[string]lipgloss.Color{
	"compiled": lipgloss.Color("2"),
	"cached":   lipgloss.Color("6"),
	"failed":   lipgloss.Color("1"),
}

// buildModel shows build progress and quits once the summary arrives.
type buildModel struct {
	width       int
	progressBar progress.Model
	total       int
	workers     int
	completed   int
	failures    []buildItem
	log         []buildItem
	done        *buildDoneMsg
	rendered    bool
}

func newBuildModel() buildModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return buildModel{progressBar: prog}
}

func (m buildModel) Init() tea.Cmd {
	return nil
}

func (m buildModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}

	case buildStartMsg:
		m.total = msg.total
		m.workers = msg.workers
		m.completed = 0
		m.rendered = true

	case buildResultMsg:
		m = m.handleResult(msg)

	case buildDoneMsg:
		m.done = &msg
		m.rendered = true

		return m, tea.Quit
	}

	return m, nil
}

func (m buildModel) handleResult(msg buildResultMsg) buildModel {
	m.completed++

	item := buildItem{id: msg.id, status: msg.status, detail: msg.detail}
	if msg.detail == "" {
		item.detail = msg.duration.Round(time.Millisecond).String()
	}

	if msg.status == "failed" {
		m.failures = append(m.failures, item)
	}

	m.log = append(m.log, item)
	if len(m.log) > maxLogLines {
		m.log = m.log[len(m.log)-maxLogLines:]
	}

	return m
}

func (m buildModel) percent() float64 {
	if m.total == 0 {
		return 0
	}

	return float64(m.completed) / float64(m.total)
}

func (m buildModel) View() string {
	if !m.rendered {
		return "Discovering components…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("eghc build")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Progress: %s / %s  •  Workers: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.completed)),
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		accentStyle.Render(fmt.Sprintf("%d", m.workers)),
	))

	progressView := lipgloss.NewStyle().Padding(0, 2).Render(m.progressBar.ViewAs(m.percent()))

	sections := []string{title, summary, progressView, m.renderLog()}

	if m.done != nil {
		sections = append(sections, summaryStyle.Render(fmt.Sprintf(
			"Compiled: %s  •  Cached: %s  •  Failed: %s",
			accentStyle.Render(fmt.Sprintf("%d", m.done.compiled)),
			accentStyle.Render(fmt.Sprintf("%d", m.done.cached)),
			accentStyle.Render(fmt.Sprintf("%d", m.done.failed)),
		)))
		sections = append(sections, m.renderFailures())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m buildModel) renderLog() string {
	if len(m.log) == 0 {
		return ""
	}

	lines := make([]string, 0, len(m.log))
	for _, item := range m.log {
		lines = append(lines, m.renderItem(item))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 1).
		Margin(1, 1, 1, 0).
		Render(strings.Join(lines, "\n"))
}

func (m buildModel) renderItem(item buildItem) string {
	color, ok := statusColors[item.status]
	if !ok {
		color = lipgloss.Color("8")
	}

	statusStyle := lipgloss.NewStyle().Foreground(color).Bold(true).Width(10)
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	width := m.width - 16
	if width < 20 {
		width = 60
	}

	return statusStyle.Render(item.status) +
		idStyle.Render(truncateToWidth(item.id, width/2)) + " " +
		detailStyle.Render(truncateToWidth(item.detail, width/2))
}

func (m buildModel) renderFailures() string {
	if len(m.failures) == 0 {
		return ""
	}

	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Padding(0, 2)

	lines := make([]string, 0, len(m.failures))
	for _, item := range m.failures {
		lines = append(lines, errStyle.Render(item.detail))
	}

	return strings.Join(lines, "\n")
}
