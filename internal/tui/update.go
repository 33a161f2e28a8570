package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/journey/internal/constants"
	"github.com/julianstephens/journey/internal/journal"
	"github.com/julianstephens/journey/internal/tui/components/calendar"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case calendar.OpenDayMsg:
		m.openDay(journal.FormatDate(msg.Date))
		return m, nil
	}

	if m.state == StateGoto {
		return m.updateGoto(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok && !m.filtering() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return m, nil
		case key.Matches(msg, m.keys.GoTo):
			m.previousState = m.state
			m.gotoForm = &GotoFormModel{}
			m.form = NewGotoForm(m.gotoForm)
			m.state = StateGoto
			return m, m.form.Init()
		case m.state == StateDay && key.Matches(msg, m.keys.Back):
			m.state = m.previousState
			return m, nil
		case m.state != StateDay && key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case m.state != StateDay && key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateCalendar:
		m.calendar, cmd = m.calendar.Update(msg)
	case StateDay:
		m.dayModel, cmd = m.dayModel.Update(msg)
	case StateTasks:
		m.taskList, cmd = m.taskList.Update(msg)
	case StateArticles:
		m.articleList, cmd = m.articleList.Update(msg)
	case StateWritings:
		m.writingList, cmd = m.writingList.Update(msg)
	case StateUpdates:
		m.updateList, cmd = m.updateList.Update(msg)
	}
	return m, cmd
}

func (m Model) updateGoto(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		date := strings.TrimSpace(m.gotoForm.Date)
		if t, err := journal.ParseDate(date); err == nil {
			m.calendar.Select(t)
		}
		if m.previousState == StateDay {
			m.previousState = StateCalendar
		}
		m.openDay(date)
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, tea.Batch(cmds...)
}

// openDay shows the detail view for value, or the fallback message when
// the date is invalid or has no record.
func (m *Model) openDay(value string) {
	if m.state != StateDay && m.state != StateGoto {
		m.previousState = m.state
	}
	m.state = StateDay

	day, err := m.svc.Day(value)
	switch {
	case err == nil:
		m.dayModel.SetDay(day)
	case errors.Is(err, journal.ErrNoEntry), errors.Is(err, journal.ErrInvalidDate):
		// t is zero for an invalid date, which drops the heading.
		t, _ := journal.ParseDate(value)
		m.dayModel.SetMissing(t, constants.NoEntryMessage)
	default:
		m.dayModel.SetMissing(time.Time{}, "Error: "+err.Error())
	}
}

func (m Model) filtering() bool {
	switch m.state {
	case StateTasks:
		return m.taskList.Filtering()
	case StateArticles:
		return m.articleList.Filtering()
	case StateWritings:
		return m.writingList.Filtering()
	case StateUpdates:
		return m.updateList.Filtering()
	}
	return false
}

func (m *Model) resize() {
	h, v := pageStyle.GetFrameSize()
	helpHeight := 1
	if m.help.ShowAll {
		helpHeight = 3
	}
	width := m.width - h
	height := m.height - v - helpHeight - 2
	if height < 0 {
		height = 0
	}
	m.dayModel.SetSize(width, height)
	m.taskList.SetSize(width, height)
	m.articleList.SetSize(width, height)
	m.writingList.SetSize(width, height)
	m.updateList.SetSize(width, height)
}
