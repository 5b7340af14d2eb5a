package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// componentDelegate renders one component row.
type componentDelegate struct {
	offset int
}

func (d componentDelegate) Height() int  { return 1 }
func (d componentDelegate) Spacing() int { return 0 }
func (d componentDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d componentDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	component, ok := item.(componentItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	var idStyle, countStyle lipgloss.Style

	var displayID string

	width := m.Width() - 16 // two count columns (6 each) + spacing

	if isSelected {
		idStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)

		displayID = animateScroll(component.label(), width, d.offset)
	} else {
		idStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		if component.failed {
			idStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
		}

		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)

		displayID = truncateToWidth(component.label(), width)
	}

	line := fmt.Sprintf("%s  %s  %s",
		countStyle.Render(fmt.Sprintf("%d", component.signals)),
		countStyle.Render(fmt.Sprintf("%d", component.targets)),
		idStyle.Render(displayID),
	)
	_, _ = fmt.Fprint(w, line)
}

func (c componentItem) label() string {
	if c.failed {
		return c.id + ": " + c.detail
	}

	return c.id
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	gap := "   "

	// ticks before scrolling starts
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	effectiveStep := offset - pause

	runes := []rune(text + gap)
	n := len(runes)

	start := effectiveStep % n

	res := make([]rune, 0, width)
	for i := range width {
		idx := (start + i) % n
		res = append(res, runes[idx])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// listModel browses the discovered components.
type listModel struct {
	width        int
	height       int
	components   list.Model
	delegate     componentDelegate
	total        int
	failed       int
	rendered     bool
	animOffset   int
	lastSelected int
}

func newListModel() listModel {
	delegate := componentDelegate{}
	components := list.New([]list.Item{}, delegate, 80, 20)
	components.SetShowPagination(false)
	components.SetShowFilter(true)
	components.SetShowHelp(false)
	components.SetShowTitle(false)
	components.SetShowStatusBar(false)
	components.FilterInput.Placeholder = "Filter by component…"

	return listModel{
		components:   components,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m listModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.components.SetWidth(m.width)

	case tickMsg:
		if m.components.FilterState() != list.Filtering && m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.components.SetDelegate(m.delegate)
		}

		return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			var newList list.Model

			newList, cmd = m.components.Update(msg)
			m.components = newList

			if m.components.Index() != m.lastSelected {
				m.lastSelected = m.components.Index()
				m.animOffset = 0
				m.delegate.offset = 0
				m.components.SetDelegate(m.delegate)
			}

			return m, cmd
		}

	case componentsMsg:
		m = m.handleComponentsMsg(msg)
	}

	return m, cmd
}

func (m listModel) handleComponentsMsg(msg componentsMsg) listModel {
	items := make([]list.Item, 0, len(msg.items))

	m.total = len(msg.items)
	m.failed = 0

	for _, item := range msg.items {
		if item.failed {
			m.failed++
		}

		items = append(items, item)
	}

	m.components.SetItems(items)
	m.rendered = true

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m listModel) View() string {
	if !m.rendered {
		return "Loading components…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("eghc components")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Components: %s   Failed: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		accentStyle.Render(fmt.Sprintf("%d", m.failed)),
	))

	table := m.renderTable()

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		table,
		footer,
	)
}

func (m listModel) renderTable() string {
	// title, summary, footer, border and header take 9 lines
	listHeight := m.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := m.width - 6

	m.components.SetHeight(listHeight)
	m.components.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%6s  %6s  %s", "Sigs", "Tgts", "Component"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.components.View(),
		),
	)
}
