package entrylist

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Item is one row: a heading, a one-line detail and the text filtering
// matches against.
type Item struct {
	Heading string
	Detail  string
	Filter  string
}

func (i Item) Title() string       { return i.Heading }
func (i Item) Description() string { return i.Detail }
func (i Item) FilterValue() string {
	if i.Filter != "" {
		return i.Filter
	}
	return i.Heading
}

type Model struct {
	list  list.Model
	empty string
}

func New(title string, items []Item, empty string, width, height int) Model {
	l := list.New(toListItems(items), list.NewDefaultDelegate(), width, height)
	l.Title = title
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model
	return Model{list: l, empty: empty}
}

func toListItems(items []Item) []list.Item {
	out := make([]list.Item, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

func (m *Model) SetItems(items []Item) {
	m.list.SetItems(toListItems(items))
}

func (m Model) Len() int {
	return len(m.list.Items())
}

// Filtering reports whether the user is typing a filter, in which case
// global keys must not be intercepted.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Selected() (Item, bool) {
	it, ok := m.list.SelectedItem().(Item)
	return it, ok
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && !m.Filtering() {
		return "\n  " + m.empty
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
