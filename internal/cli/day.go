package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/julianstephens/journey/internal/constants"
	"github.com/julianstephens/journey/internal/journal"
)

type DayCmd struct {
	Date  string `arg:"" help:"Date to show (YYYY-MM-DD, 'today' or 'latest')." default:"latest"`
	Raw   bool   `help:"Print markdown without terminal styling."`
	Width int    `help:"Wrap rendered output at this width." default:"80"`
}

func (c *DayCmd) Run(ctx *Context) error {
	value := c.Date
	switch value {
	case "today":
		value = journal.FormatDate(ctx.Journal.Today())
	case "latest":
		value = journal.FormatDate(ctx.Journal.Latest())
	}

	day, err := ctx.Journal.Day(value)
	if errors.Is(err, journal.ErrNoEntry) {
		t, _ := journal.ParseDate(value)
		fmt.Fprintf(ctx.out(), "%s\n\n%s\n", journal.FormatLong(t), constants.NoEntryMessage)
		return nil
	}
	if err != nil {
		return err
	}

	md := day.Markdown()
	if c.Raw {
		fmt.Fprint(ctx.out(), md)
		return nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(c.Width),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render day: %w", err)
	}
	fmt.Fprint(ctx.out(), out)
	return nil
}
