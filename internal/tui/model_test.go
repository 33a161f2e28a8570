package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/journey/internal/journal"
	"github.com/julianstephens/journey/internal/storage"
	"github.com/julianstephens/journey/internal/tui/components/calendar"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	svc := journal.New(storage.NewMemoryStore()).WithClock(func() time.Time {
		return time.Date(2024, time.January, 16, 9, 0, 0, 0, time.UTC)
	})
	m := NewModel(svc, "notty")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel_StartsOnLatestEntry(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, StateCalendar, m.State())
	assert.Equal(t, "2024-01-15", journal.FormatDate(m.Calendar().Selected()))
	assert.True(t, m.Calendar().Summary().Found)
	assert.Empty(t, m.loadWarning)
	assert.Equal(t, 2, m.taskList.Len())
	assert.Equal(t, 4, m.writingList.Len())
}

func TestUpdate_TabCycling(t *testing.T) {
	m := newTestModel(t)
	want := []SessionState{StateTasks, StateArticles, StateWritings, StateUpdates, StateCalendar}
	for _, s := range want {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, s, m.State())
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, StateUpdates, m.State())
}

func TestUpdate_CalendarNavigation(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "2024-01-16", journal.FormatDate(m.Calendar().Selected()))
	assert.False(t, m.Calendar().Summary().Found)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "2024-01-09", journal.FormatDate(m.Calendar().Selected()))

	m, _ = press(t, m, runes("]"))
	assert.Equal(t, time.February, m.Calendar().Month().Month)
	assert.Equal(t, "2024-02-09", journal.FormatDate(m.Calendar().Selected()))

	m, _ = press(t, m, runes("["))
	m, _ = press(t, m, runes("["))
	assert.Equal(t, "2023-12-09", journal.FormatDate(m.Calendar().Selected()))
	assert.Equal(t, 2023, m.Calendar().Month().Year)
}

func TestUpdate_OpenDay(t *testing.T) {
	m := newTestModel(t)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	open, ok := msg.(calendar.OpenDayMsg)
	require.True(t, ok)
	assert.Equal(t, "2024-01-15", journal.FormatDate(open.Date))

	m, _ = press(t, m, msg)
	assert.Equal(t, StateDay, m.State())
	require.NotNil(t, m.DayDetail().Day())
	assert.Equal(t, "2024-01-15", m.DayDetail().Day().Date)
	assert.Contains(t, m.View(), "Monday, January 15, 2024")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, StateCalendar, m.State())
}

func TestUpdate_OpenDayWithoutEntry(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, calendar.OpenDayMsg{Date: time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC)})
	assert.Equal(t, StateDay, m.State())
	assert.Nil(t, m.DayDetail().Day())
	view := m.View()
	assert.Contains(t, view, "No entry recorded for this date.")
	assert.Contains(t, view, "Tuesday, January 16, 2024")
}

func TestUpdate_TabIgnoredInDayView(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, calendar.OpenDayMsg{Date: time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC)})
	require.Equal(t, StateDay, m.State())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, StateDay, m.State())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, StateTasks, m.State())
}

func TestUpdate_GotoForm(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, runes("g"))
	assert.Equal(t, StateGoto, m.State())
	assert.NotNil(t, m.form)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, StateCalendar, m.State())
}

func TestUpdate_Quit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestView_Tabs(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	for _, title := range tabTitles {
		assert.Contains(t, view, title)
	}
	assert.Contains(t, view, "January 2024")
}

func TestViewTabs_UnderlinedRow(t *testing.T) {
	m := newTestModel(t)
	tabs := m.viewTabs()

	assert.Equal(t, 2, lipgloss.Height(tabs))
	assert.Contains(t, tabs, "─")

	var want int
	for i, title := range tabTitles {
		style := tabStyle
		if i == 0 {
			style = currentTabStyle
		}
		want += lipgloss.Width(style.Render(title))
	}
	assert.Equal(t, want, lipgloss.Width(tabs))
}
