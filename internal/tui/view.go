package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateCalendar:
		content = pageStyle.Render(m.calendar.View())
	case StateTasks:
		content = pageStyle.Render(m.taskList.View())
	case StateArticles:
		content = pageStyle.Render(m.articleList.View())
	case StateWritings:
		content = pageStyle.Render(m.writingList.View())
	case StateUpdates:
		content = pageStyle.Render(m.updateList.View())
	case StateDay:
		content = m.dayModel.View()
	case StateGoto:
		content = pageStyle.Render(m.form.View())
	}

	parts := []string{m.viewTabs(), content}
	if m.loadWarning != "" {
		parts = append(parts, noticeStyle.Render(m.loadWarning))
	}
	if err := m.calendar.Err(); err != nil && m.state == StateCalendar {
		parts = append(parts, errorStyle.Render("Error: "+err.Error()))
	}
	parts = append(parts, m.help.View(m))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	active := m.state
	if active == StateDay || active == StateGoto {
		active = m.previousState
	}
	var tabs []string
	for i, title := range tabTitles {
		if active == SessionState(i) {
			tabs = append(tabs, currentTabStyle.Render(title))
		} else {
			tabs = append(tabs, tabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
