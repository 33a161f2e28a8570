package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/journey/internal/constants"
	"github.com/julianstephens/journey/internal/journal"
)

// OpenDayMsg asks the parent to show the detail view for Date.
type OpenDayMsg struct {
	Date time.Time
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Width(7 * cellWidth).
			Align(lipgloss.Center)

	weekdayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	outsideStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	entryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62"))

	selectedStyle = lipgloss.NewStyle().
			Reverse(true).
			Bold(true)

	todayStyle = lipgloss.NewStyle().
			Underline(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(40)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	moodStyles = map[string]lipgloss.Style{
		"excellent":   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		"good":        lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		"neutral":     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		"challenging": lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

const cellWidth = 4

var weekdays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	Open      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev week"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next week"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next month"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view day"),
		),
	}
}

// Bindings lists the calendar keys for the help view.
func (k KeyMap) Bindings() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.PrevMonth, k.NextMonth, k.Today, k.Open}
}

type Model struct {
	svc      *journal.Service
	keys     KeyMap
	selected time.Time
	month    journal.Month
	summary  journal.Summary
	err      error
}

func New(svc *journal.Service, selected time.Time) Model {
	m := Model{svc: svc, keys: DefaultKeyMap()}
	m.Select(selected)
	return m
}

func (m Model) Keys() KeyMap             { return m.keys }
func (m Model) Selected() time.Time      { return m.selected }
func (m Model) Month() journal.Month     { return m.month }
func (m Model) Summary() journal.Summary { return m.summary }
func (m Model) Err() error               { return m.err }

// Select moves the cursor to t and rebuilds the grid and summary.
func (m *Model) Select(t time.Time) {
	m.selected = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	m.month, m.err = m.svc.Month(m.selected.Year(), m.selected.Month(), m.selected)
	if m.err != nil {
		return
	}
	m.summary, m.err = m.svc.Summary(m.selected)
}

// ShiftMonth moves n months, keeping the day of month where it exists.
func (m *Model) ShiftMonth(n int) {
	first := time.Date(m.selected.Year(), m.selected.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	lastDay := first.AddDate(0, 1, -1).Day()
	m.Select(first.AddDate(0, 0, min(m.selected.Day(), lastDay)-1))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Left):
		m.Select(m.selected.AddDate(0, 0, -1))
	case key.Matches(keyMsg, m.keys.Right):
		m.Select(m.selected.AddDate(0, 0, 1))
	case key.Matches(keyMsg, m.keys.Up):
		m.Select(m.selected.AddDate(0, 0, -7))
	case key.Matches(keyMsg, m.keys.Down):
		m.Select(m.selected.AddDate(0, 0, 7))
	case key.Matches(keyMsg, m.keys.PrevMonth):
		m.ShiftMonth(-1)
	case key.Matches(keyMsg, m.keys.NextMonth):
		m.ShiftMonth(1)
	case key.Matches(keyMsg, m.keys.Today):
		m.Select(m.svc.Today())
	case key.Matches(keyMsg, m.keys.Open):
		date := m.selected
		return m, func() tea.Msg { return OpenDayMsg{Date: date} }
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.viewGrid(), "   ", m.viewSummary())
}

func (m Model) viewGrid() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.month.Title))
	b.WriteString("\n")
	for _, d := range weekdays {
		b.WriteString(weekdayStyle.Render(fmt.Sprintf("%*s", cellWidth, d)))
	}
	b.WriteString("\n")
	for _, week := range m.month.Weeks {
		for _, c := range week {
			b.WriteString(" ")
			b.WriteString(renderCell(c))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderCell(c journal.Cell) string {
	style := lipgloss.NewStyle()
	switch {
	case !c.InMonth:
		style = outsideStyle
	case c.HasEntry:
		style = entryStyle
	}
	if c.Today {
		style = style.Inherit(todayStyle)
	}
	if c.Selected {
		style = style.Inherit(selectedStyle)
	}
	return style.Render(fmt.Sprintf("%*d", cellWidth-1, c.Day))
}

func (m Model) viewSummary() string {
	s := m.summary
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(s.Title))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(s.Description))
	b.WriteString("\n\n")

	if !s.Found {
		if !s.Date.IsZero() {
			b.WriteString(mutedStyle.Render(constants.NoEntryMessage))
		}
		return panelStyle.Render(b.String())
	}

	mood := string(s.Entry.Mood)
	moodStyle, ok := moodStyles[mood]
	if !ok {
		moodStyle = mutedStyle
	}
	fmt.Fprintf(&b, "Mood: %s\n\n", moodStyle.Render(mood))
	fmt.Fprintf(&b, "Tasks Completed %s\n", mutedStyle.Render(s.Tasks()))
	for _, done := range s.Dots {
		if done {
			b.WriteString(doneStyle.Render("●"))
		} else {
			b.WriteString(mutedStyle.Render("○"))
		}
	}
	b.WriteString("\n")
	if len(s.Activities) > 0 {
		fmt.Fprintf(&b, "\nActivities: %s\n", strings.Join(s.Activities, ", "))
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("enter: view full details"))
	return panelStyle.Render(b.String())
}
