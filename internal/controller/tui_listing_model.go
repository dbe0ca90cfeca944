package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

// listingDelegate renders one module per line.
type listingDelegate struct {
	offset int
}

func (d listingDelegate) Height() int  { return 1 }
func (d listingDelegate) Spacing() int { return 0 }
func (d listingDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d listingDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	module, ok := item.(moduleItem)
	if !ok {
		return
	}

	width := m.Width() - 8 // count column (6) + spacing (2)

	var pathStyle, countStyle lipgloss.Style

	var displayPath string

	if index == m.Index() {
		pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)

		displayPath = animateScroll(module.path, width, d.offset)
	} else {
		pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)

		displayPath = truncateToWidth(module.path, width)
	}

	count := fmt.Sprintf("%d", module.classes)
	if module.failed {
		count = "!"
		countStyle = countStyle.Foreground(lipgloss.Color("1"))
	}

	_, _ = fmt.Fprintf(w, "%s  %s", countStyle.Render(count), pathStyle.Render(displayPath))
}

// listingModel lists modules and how many AnalysisBase classes each declares.
type listingModel struct {
	width        int
	height       int
	moduleList   list.Model
	delegate     listingDelegate
	modules      int
	classes      int
	failed       int
	rendered     bool
	animOffset   int
	lastSelected int
}

func newListingModel() listingModel {
	delegate := listingDelegate{}
	moduleList := list.New([]list.Item{}, delegate, 80, 20)
	moduleList.SetShowPagination(false)
	moduleList.SetShowFilter(true)
	moduleList.SetShowHelp(false)
	moduleList.SetShowTitle(false)
	moduleList.SetShowStatusBar(false)
	moduleList.FilterInput.Placeholder = "Filter by path…"

	return listingModel{
		moduleList:   moduleList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m listingModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m listingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.moduleList.SetWidth(m.width)

	case tickMsg:
		if m.moduleList.FilterState() != list.Filtering && m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.moduleList.SetDelegate(m.delegate)
		}

		return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			m.moduleList, cmd = m.moduleList.Update(msg)

			if m.moduleList.Index() != m.lastSelected {
				m.lastSelected = m.moduleList.Index()
				m.animOffset = 0
				m.delegate.offset = 0
				m.moduleList.SetDelegate(m.delegate)
			}

			return m, cmd
		}

	case listingMsg:
		m = m.handleListingMsg(msg)
	}

	return m, cmd
}

func (m listingModel) handleListingMsg(msg listingMsg) listingModel {
	m.modules = len(msg.entries)
	m.classes = 0
	m.failed = 0

	items := make([]list.Item, 0, len(msg.entries))
	for _, entry := range msg.entries {
		m.classes += entry.Classes
		if entry.Failed {
			m.failed++
		}

		items = append(items, moduleItem{path: string(entry.Path), classes: entry.Classes, failed: entry.Failed})
	}

	m.moduleList.SetItems(items)
	m.rendered = true

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m listingModel) View() string {
	if !m.rendered {
		return "Loading module list…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("mdalint modules")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Modules: %s   Classes: %s   Unreadable: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.modules)),
		accentStyle.Render(fmt.Sprintf("%d", m.classes)),
		accentStyle.Render(fmt.Sprintf("%d", m.failed)),
	))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		m.renderTable(),
		footer,
	)
}

func (m listingModel) renderTable() string {
	// title, summary, footer, border and header take 9 lines
	listHeight := m.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := m.width - 6

	m.moduleList.SetHeight(listHeight)
	m.moduleList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%6s  %s", "Classes", "Module"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.moduleList.View(),
		),
	)
}
