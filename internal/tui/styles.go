package tui

import "github.com/charmbracelet/lipgloss"

// Tabs and notices share the calendar's indigo accent.
var (
	accent = lipgloss.Color("62")
	subtle = lipgloss.Color("240")

	tabBorder = lipgloss.Border{Bottom: "─"}

	tabStyle = lipgloss.NewStyle().
			Foreground(subtle).
			Border(tabBorder, false, false, true, false).
			BorderForeground(subtle).
			Padding(0, 2)

	currentTabStyle = tabStyle.
			Foreground(lipgloss.Color("230")).
			BorderForeground(accent).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			PaddingLeft(2)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("179")).
			PaddingLeft(2).
			Italic(true)

	pageStyle = lipgloss.NewStyle().Margin(1, 2, 0)
)
