package calendar

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/julianstephens/journey/internal/journal"
	"github.com/julianstephens/journey/internal/storage"
)

func newService() *journal.Service {
	return journal.New(storage.NewMemoryStore()).WithClock(func() time.Time {
		return time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC)
	})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestShiftMonth_ClampsDay(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		shift int
		want  string
	}{
		{"leap february", time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC), 1, "2024-02-29"},
		{"short month", time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), 1, "2024-04-30"},
		{"backwards across year", time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), -1, "2023-12-15"},
		{"forwards across year", time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), 2, "2024-02-29"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(newService(), tt.start)
			m.ShiftMonth(tt.shift)
			assert.Equal(t, tt.want, journal.FormatDate(m.Selected()))
			assert.Equal(t, m.Selected().Month(), m.Month().Month)
		})
	}
}

func TestSelect_Summary(t *testing.T) {
	m := New(newService(), time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC))
	sum := m.Summary()
	assert.True(t, sum.Found)
	assert.Equal(t, "3/5", sum.Tasks())
	assert.NoError(t, m.Err())

	view := m.View()
	assert.Contains(t, view, "January 2024")
	assert.Contains(t, view, "January 14, 2024")
	assert.Contains(t, view, "Tasks Completed")

	m.Select(time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC))
	assert.False(t, m.Summary().Found)
	assert.Contains(t, m.View(), "No entry recorded for this date.")
}

func TestUpdate_Today(t *testing.T) {
	m := New(newService(), time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC))
	m, cmd := m.Update(keyRunes("t"))
	assert.Nil(t, cmd)
	assert.Equal(t, "2024-01-16", journal.FormatDate(m.Selected()))
}

func TestUpdate_OpenEmitsSelectedDate(t *testing.T) {
	m := New(newService(), time.Date(2024, time.January, 13, 0, 0, 0, 0, time.UTC))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if assert.NotNil(t, cmd) {
		assert.Equal(t, OpenDayMsg{Date: time.Date(2024, time.January, 13, 0, 0, 0, 0, time.UTC)}, cmd())
	}
}
