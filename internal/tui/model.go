package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/journey/internal/journal"
	"github.com/julianstephens/journey/internal/tui/components/calendar"
	"github.com/julianstephens/journey/internal/tui/components/daydetail"
	"github.com/julianstephens/journey/internal/tui/components/entrylist"
)

type SessionState int

// Tab states come first so they index the tab bar.
const (
	StateCalendar SessionState = iota
	StateTasks
	StateArticles
	StateWritings
	StateUpdates
	StateDay
	StateGoto
)

var tabTitles = []string{"Calendar", "Tasks", "Articles", "Writings", "Updates"}

const tabCount = SessionState(5)

type GotoFormModel struct {
	Date string
}

type Model struct {
	svc           *journal.Service
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	calendar      calendar.Model
	dayModel      daydetail.Model
	taskList      entrylist.Model
	articleList   entrylist.Model
	writingList   entrylist.Model
	updateList    entrylist.Model
	form          *huh.Form
	gotoForm      *GotoFormModel
	loadWarning   string
	quitting      bool
	width         int
	height        int
}

// NewModel builds the browser positioned on the newest entry. style is the
// glamour style used for day details.
func NewModel(svc *journal.Service, style string) Model {
	m := Model{
		svc:         svc,
		state:       StateCalendar,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		calendar:    calendar.New(svc, svc.Latest()),
		dayModel:    daydetail.New(style, 0, 0),
		taskList:    entrylist.New("Tasks", nil, "No tasks recorded.", 0, 0),
		articleList: entrylist.New("Articles", nil, "No articles yet.", 0, 0),
		writingList: entrylist.New("Writings", nil, "No writings yet.", 0, 0),
		updateList:  entrylist.New("Updates", nil, "No updates yet.", 0, 0),
	}
	m.loadLists()
	return m
}

// loadLists fills the component tabs; a failing dataset leaves its tab
// empty and sets the warning line.
func (m *Model) loadLists() {
	m.loadWarning = ""
	if days, err := m.svc.TaskDays(); err == nil {
		m.taskList.SetItems(taskDayItems(days))
	} else {
		m.loadWarning = "⚠ " + err.Error()
	}
	if articles, err := m.svc.Articles(); err == nil {
		m.articleList.SetItems(articleItems(articles))
	} else {
		m.loadWarning = "⚠ " + err.Error()
	}
	if writings, err := m.svc.Writings(); err == nil {
		m.writingList.SetItems(writingItems(writings))
	} else {
		m.loadWarning = "⚠ " + err.Error()
	}
	if updates, err := m.svc.Updates(); err == nil {
		m.updateList.SetItems(updateItems(updates))
	} else {
		m.loadWarning = "⚠ " + err.Error()
	}
}

func (m Model) State() SessionState {
	return m.state
}

func (m Model) Calendar() calendar.Model {
	return m.calendar
}

func (m Model) DayDetail() daydetail.Model {
	return m.dayModel
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.GoTo, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateCalendar:
		ck := m.calendar.Keys()
		keys = append(keys, ck.PrevMonth, ck.NextMonth, ck.Open)
	case StateDay, StateGoto:
		keys = []key.Binding{m.keys.Back, m.keys.Quit}
	default:
		keys = append(keys, m.keys.Filter)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.GoTo, m.keys.Back, m.keys.Quit, m.keys.Help}
	var navigation []key.Binding
	switch m.state {
	case StateCalendar:
		navigation = m.calendar.Keys().Bindings()
	default:
		navigation = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Filter}
	}
	return [][]key.Binding{global, navigation}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// NewGotoForm asks for a YYYY-MM-DD date to open.
func NewGotoForm(fm *GotoFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Go to date").
				Placeholder("YYYY-MM-DD").
				Value(&fm.Date).
				Validate(func(s string) error {
					_, err := journal.ParseDate(s)
					return err
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
