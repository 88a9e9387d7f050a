// Package ui renders aggregated summaries for the terminal: plain-text
// reports and an interactive dashboard.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rezmoss/activtrack/internal/core"
	"github.com/rezmoss/activtrack/internal/storage"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4A90E2")).
			Padding(0, 1).
			MarginBottom(1)

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F7DC6F")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2).
			MarginBottom(1)
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second*30, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Dashboard is the interactive view over the activity log and goal
// table. It reloads both documents on every tick so edits made by a
// concurrent invocation show up within half a minute.
type Dashboard struct {
	store   *storage.Store
	records []core.Record
	goals   *core.GoalTable
	week    bool
	width   int
	height  int
}

func NewDashboard(store *storage.Store) Dashboard {
	return Dashboard{
		store:   store,
		records: store.LoadActivities(),
		goals:   store.LoadGoals(),
	}
}

func (m Dashboard) Init() tea.Cmd {
	return tickCmd()
}

func (m Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "t":
			m.week = false
		case "w":
			m.week = true
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		m.records = m.store.LoadActivities()
		m.goals = m.store.LoadGoals()
		return m, tickCmd()
	}
	return m, nil
}

func (m Dashboard) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	now := time.Now()

	header := headerStyle.Width(m.width).Render(
		fmt.Sprintf("Activity Tracker - %s", now.Format("Jan 2, 2006 15:04:05")),
	)

	leftColWidth := m.width/2 - 3
	rightColWidth := m.width/2 - 3

	var totals map[string]float64
	var breakdownTitle string
	if m.week {
		totals = core.Aggregate(m.records, core.WeekFilter(now))
		breakdownTitle = fmt.Sprintf("WEEKLY BREAKDOWN (from %s)", core.StartOfWeek(now).Format("Jan 2"))
	} else {
		totals = core.Aggregate(m.records, core.TodayFilter(now))
		breakdownTitle = "TODAY'S BREAKDOWN"
	}

	breakdownBox := boxStyle.Width(leftColWidth).Render(
		breakdownTitle + "\n\n" + m.renderBars(totals, leftColWidth-8),
	)

	weekTotals := core.Aggregate(m.records, core.WeekFilter(now))
	progressBox := boxStyle.Width(rightColWidth).Render(
		"WEEKLY GOAL PROGRESS\n\n" + m.renderProgress(core.Progress(weekTotals, m.goals)),
	)

	goalsBox := boxStyle.Width(rightColWidth).Render(
		"GOALS\n\n" + m.renderGoals(),
	)

	leftColumn := breakdownBox
	rightColumn := lipgloss.JoinVertical(lipgloss.Left, progressBox, goalsBox)
	content := lipgloss.JoinHorizontal(lipgloss.Top, leftColumn, rightColumn)

	footer := lipgloss.NewStyle().
		Width(m.width).
		Foreground(lipgloss.Color("#626262")).
		Render("'t' today / 'w' week • 'q' to quit • Updates every 30 seconds")

	fullContent := lipgloss.JoinVertical(lipgloss.Left, header, content, footer)

	contentHeight := lipgloss.Height(fullContent)
	if contentHeight < m.height {
		fullContent += strings.Repeat("\n", m.height-contentHeight-1)
	}

	return fullContent
}

// renderBars draws one share bar per activity, the terminal stand-in
// for the pie chart.
func (m Dashboard) renderBars(totals map[string]float64, barWidth int) string {
	if len(totals) == 0 {
		return warnStyle.Render("No activities to display")
	}
	if barWidth < 10 {
		barWidth = 10
	}
	var total float64
	for _, v := range totals {
		total += v
	}
	var b strings.Builder
	for _, name := range sortedNames(totals) {
		share := totals[name] / total * 100
		filled := int(share) * barWidth / 100
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		fmt.Fprintf(&b, "%s (%s, %.1f%%)\n%s\n",
			name, fmtMinutes(totals[name])+" mins", share,
			activeStyle.Render(bar))
	}
	fmt.Fprintf(&b, "\nTotal: %s", fmtMinutes(total)+" mins")
	return b.String()
}

func (m Dashboard) renderProgress(rows []core.GoalProgress) string {
	if len(rows) == 0 {
		return warnStyle.Render("No activity goals set")
	}
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%s: %s of %s %s\n",
			r.Activity,
			fmtMinutes(r.ActualMinutes)+" mins",
			humanDuration(r.GoalMinutes),
			percentStyle.Render(fmt.Sprintf("(%.1f%%)", r.Percent)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Dashboard) renderGoals() string {
	if m.goals.Len() == 0 {
		return warnStyle.Render("No activity goals set")
	}
	return core.FormatGoals(m.goals)
}
