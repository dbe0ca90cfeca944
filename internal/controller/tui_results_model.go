package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/mdalint/internal/domain/aggregate"
)

const recentModules = 5

var statusColors = map[string]lipgloss.Color{
	statusAcquired: lipgloss.Color("2"), // Green
	statusPossible: lipgloss.Color("3"), // Yellow
	statusFailed:   lipgloss.Color("1"), // Red
}

// badgeDelegate renders one badge per line.
type badgeDelegate struct {
	offset int
}

func (d badgeDelegate) Height() int  { return 1 }
func (d badgeDelegate) Spacing() int { return 0 }
func (d badgeDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d badgeDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	badge, ok := item.(badgeItem)
	if !ok {
		return
	}

	labelWidth := m.Width() - 14 // status column and spacing
	text := badge.label + " in " + badge.location

	statusStyle := lipgloss.NewStyle().Bold(true).Width(10).Align(lipgloss.Left)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	var display string

	if index == m.Index() {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		statusStyle = statusStyle.Inherit(selected)
		labelStyle = selected
		display = animateScroll(text, labelWidth, d.offset)
	} else {
		color, ok := statusColors[badge.status]
		if !ok {
			color = lipgloss.Color("8")
		}

		statusStyle = statusStyle.Foreground(color)
		display = truncateToWidth(text, labelWidth)
	}

	_, _ = fmt.Fprintf(w, "%s  %s", statusStyle.Render(strings.ToUpper(badge.status)), labelStyle.Render(display))
}

// resultsModel shows lint progress, then lets the user browse badges.
type resultsModel struct {
	width        int
	height       int
	progressBar  progress.Model
	showProgress bool
	total        int
	checked      int
	recent       []moduleCheckedMsg
	finished     bool
	summary      aggregate.Summary
	items        []badgeItem
	badgeList    list.Model
	delegate     badgeDelegate
	animOffset   int
	lastSelected int
	showDetail   bool
}

func newResultsModel(showProgress bool) resultsModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	delegate := badgeDelegate{}
	badgeList := list.New([]list.Item{}, delegate, 80, 20)
	badgeList.SetShowPagination(false)
	badgeList.SetShowFilter(true)
	badgeList.SetShowHelp(false)
	badgeList.SetShowTitle(false)
	badgeList.SetShowStatusBar(false)
	badgeList.FilterInput.Placeholder = "Filter badges…"

	return resultsModel{
		progressBar:  prog,
		showProgress: showProgress,
		badgeList:    badgeList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m resultsModel) Init() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m resultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case tea.MouseMsg:
		m, cmd = m.handleMouseMsg(msg)

	case tickMsg:
		return m.handleTickMsg(msg)

	case upcomingMsg:
		m.total = msg.count
		m.checked = 0

	case moduleCheckedMsg:
		m = m.handleModuleChecked(msg)

	case resultsMsg:
		m = m.handleResults(msg)
	}

	return m, cmd
}

func (m resultsModel) View() string {
	if m.finished {
		return m.viewResults()
	}

	if !m.showProgress {
		return "Loading reports…\n"
	}

	if m.total == 0 && m.checked == 0 {
		return "Collecting modules…\n"
	}

	return m.viewProgress()
}

func (m resultsModel) percent() float64 {
	if m.total == 0 {
		return 0
	}

	return float64(m.checked) / float64(m.total)
}

func (m resultsModel) viewProgress() string {
	accentColor := lipgloss.Color("6")

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	title := titleStyle.Render("mdalint")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Modules: %s / %s",
		accentStyle.Render(fmt.Sprintf("%d", m.checked)),
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
	))

	progressView := lipgloss.NewStyle().
		Padding(0, 2).
		Render(m.progressBar.ViewAs(m.percent()))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render("Press q to quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		progressView,
		m.renderRecentBox(accentColor),
		footer,
	)
}

func (m resultsModel) renderRecentBox(accentColor lipgloss.Color) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1).
		Margin(1, 1, 1, 0)

	// border and padding take 4 columns
	available := m.width - 8
	if available < 20 {
		available = 20
	}

	lines := make([]string, 0, len(m.recent))

	for _, r := range m.recent {
		status := fmt.Sprintf("%d badge(s)", r.badges)

		switch {
		case r.failed:
			status = "failed"
		case r.possible > 0:
			status = fmt.Sprintf("%d badge(s), %d possible", r.badges, r.possible)
		}

		if r.cached {
			status += ", cached"
		}

		path := truncateToWidth(r.path, available-len(status)-3)
		lines = append(lines, fmt.Sprintf("%s  %s",
			lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Render(path),
			lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render(status),
		))
	}

	if len(lines) == 0 {
		lines = append(lines, "idle")
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m resultsModel) viewResults() string {
	accentColor := lipgloss.Color("6")

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)
	count := func(n int) string { return accentStyle.Render(fmt.Sprintf("%d", n)) }

	title := titleStyle.Render("mdalint badges")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Modules: %s  •  Badges: %s  •  Acquired: %s  •  Possible: %s  •  Failed modules: %s",
		count(m.summary.Modules),
		count(m.summary.Badges),
		count(m.summary.Acquired),
		count(m.summary.Possible),
		count(m.summary.FailedModules),
	))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render("↑/k up • ↓/j down • g/G top/bottom • / filter • enter/space/click details • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		m.renderResultsBox(accentColor),
		footer,
	)
}

func (m resultsModel) renderResultsBox(accentColor lipgloss.Color) string {
	listWidth := m.width - 4

	detailBox := m.renderDetailBox(accentColor, listWidth)

	listHeight := m.height - 9 - lipgloss.Height(detailBox)
	if detailBox == "" {
		listHeight = m.height - 9
	}

	if listHeight < 5 {
		listHeight = 5
	}

	m.badgeList.SetHeight(listHeight)
	m.badgeList.SetWidth(listWidth)

	headers := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth).
		Render(fmt.Sprintf("%-10s  %s", "Status", "Badge"))

	resultsBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, m.badgeList.View()))

	if detailBox == "" {
		return resultsBox
	}

	return lipgloss.JoinVertical(lipgloss.Left, resultsBox, detailBox)
}

func (m resultsModel) selected() (badgeItem, bool) {
	item, ok := m.badgeList.SelectedItem().(badgeItem)
	return item, ok
}

func (m resultsModel) renderDetailBox(accentColor lipgloss.Color, width int) string {
	if !m.showDetail {
		return ""
	}

	item, ok := m.selected()
	if !ok {
		return ""
	}

	contentWidth := width - 4
	if contentWidth < 10 {
		contentWidth = 10
	}

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Render(truncateToWidth(item.label+" • "+item.location, contentWidth))

	body := make([]string, 0, len(item.errors)+len(item.warnings)+1)

	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	for _, title := range item.errors {
		body = append(body, errorStyle.Render(truncateToWidth("error: "+title, contentWidth)))
	}

	warningStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	for _, title := range item.warnings {
		body = append(body, warningStyle.Render(truncateToWidth("warning: "+title, contentWidth)))
	}

	if len(body) == 0 {
		body = append(body, lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("no findings"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, lipgloss.JoinVertical(lipgloss.Left, body...)))
}

func (m resultsModel) handleModuleChecked(msg moduleCheckedMsg) resultsModel {
	m.checked++

	m.recent = append(m.recent, msg)
	if len(m.recent) > recentModules {
		m.recent = m.recent[len(m.recent)-recentModules:]
	}

	return m
}

func (m resultsModel) handleResults(msg resultsMsg) resultsModel {
	m.summary = aggregate.Summarize(msg.results)
	m.items = badgeItems(msg.results)

	items := make([]list.Item, 0, len(m.items))
	for _, item := range m.items {
		items = append(items, item)
	}

	m.badgeList.SetItems(items)
	m.finished = true

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m resultsModel) resetSelection() resultsModel {
	if m.badgeList.Index() != m.lastSelected {
		m.lastSelected = m.badgeList.Index()
		m.animOffset = 0
		m.delegate.offset = 0
		m.badgeList.SetDelegate(m.delegate)
		m.showDetail = false
	}

	return m
}

func (m resultsModel) handleKeyMsg(msg tea.KeyMsg) (resultsModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	if !m.finished {
		return m, nil
	}

	if m.badgeList.FilterState() != list.Filtering && (msg.String() == "enter" || msg.String() == " ") {
		m.showDetail = !m.showDetail
		return m, nil
	}

	m.badgeList, cmd = m.badgeList.Update(msg)

	return m.resetSelection(), cmd
}

func (m resultsModel) handleMouseMsg(msg tea.MouseMsg) (resultsModel, tea.Cmd) {
	var cmd tea.Cmd

	if !m.finished {
		return m, nil
	}

	m.badgeList, cmd = m.badgeList.Update(msg)
	m = m.resetSelection()

	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease && m.badgeList.FilterState() != list.Filtering {
		m.showDetail = !m.showDetail
	}

	return m, cmd
}

func (m resultsModel) handleWindowSize(msg tea.WindowSizeMsg) resultsModel {
	m.width = msg.Width
	m.height = msg.Height

	m.progressBar.Width = m.width - 8
	if m.progressBar.Width < 20 {
		m.progressBar.Width = 20
	}

	return m
}

func (m resultsModel) handleTickMsg(_ tickMsg) (resultsModel, tea.Cmd) {
	if m.finished && m.badgeList.FilterState() != list.Filtering {
		m.animOffset++
		m.delegate.offset = m.animOffset
		m.badgeList.SetDelegate(m.delegate)
	}

	return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
