package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/journey/internal/tui"
)

type TuiCmd struct {
	Style string `help:"Glamour style for day details (dark, light, notty). Detected from the terminal when empty."`
}

func (c *TuiCmd) Run(ctx *Context) error {
	// Resolve the style before the program owns the terminal.
	style := c.Style
	if style == "" {
		style = detectStyle()
	}

	p := tea.NewProgram(tui.NewModel(ctx.Journal, style), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}

func detectStyle() string {
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
