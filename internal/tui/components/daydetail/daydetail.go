package daydetail

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/journey/internal/journal"
)

var (
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// Model shows one day in a scrollable viewport.
type Model struct {
	viewport viewport.Model
	style    string
	day      *journal.Day
	date     time.Time
	message  string
	width    int
	height   int
}

// New builds the view. style is a glamour standard style name such as
// "dark", "light" or "notty".
func New(style string, width, height int) Model {
	return Model{
		viewport: viewport.New(width, height),
		style:    style,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

// Day is the record on display, nil when showing a fallback message.
func (m Model) Day() *journal.Day {
	return m.day
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetDay(day *journal.Day) {
	m.day = day
	m.date = day.Time
	m.message = ""
	m.Render()
	m.viewport.GotoTop()
}

// SetMissing shows message instead of a record, headed by date when known.
func (m *Model) SetMissing(date time.Time, message string) {
	m.day = nil
	m.date = date
	m.message = message
	m.Render()
	m.viewport.GotoTop()
}

func (m *Model) Render() {
	if m.day == nil {
		content := emptyStyle.Render(m.message)
		if !m.date.IsZero() {
			content = headingStyle.Render(journal.FormatLong(m.date)) + "\n\n" + content
		}
		m.viewport.SetContent(lipgloss.NewStyle().Padding(1, 2).Render(content))
		return
	}

	md := m.day.Markdown()
	out, err := Render(md, m.style, m.width)
	if err != nil {
		out = md
	}
	m.viewport.SetContent(out)
}

// Render turns markdown into styled terminal output wrapped at width.
func Render(md, style string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
