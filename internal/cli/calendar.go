package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/journey/internal/constants"
	"github.com/julianstephens/journey/internal/journal"
)

type CalendarCmd struct {
	Month string `arg:"" optional:"" help:"Month to show (YYYY-MM). Defaults to the month of the latest entry."`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	selected := ctx.Journal.Latest()
	year, month := selected.Year(), selected.Month()
	if c.Month != "" {
		var err error
		if year, month, err = journal.ParseMonth(c.Month); err != nil {
			return err
		}
	}

	m, err := ctx.Journal.Month(year, month, selected)
	if err != nil {
		return err
	}

	w := ctx.out()
	fmt.Fprintln(w, m.Title)
	fmt.Fprintln(w, "  Su  Mo  Tu  We  Th  Fr  Sa")
	for _, week := range m.Weeks {
		var b strings.Builder
		for _, cell := range week {
			b.WriteString(formatCell(cell))
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
	fmt.Fprintln(w)

	found := false
	for _, cell := range m.Cells() {
		if !cell.InMonth || !cell.HasEntry {
			continue
		}
		sum, err := ctx.Journal.Summary(cell.Date)
		if err != nil {
			return err
		}
		found = true
		fmt.Fprintf(w, "%s  %s tasks  %-11s %s\n",
			journal.FormatDate(cell.Date), sum.Tasks(), sum.Entry.Mood, strings.Join(sum.Activities, ", "))
	}
	if !found {
		fmt.Fprintln(w, constants.NoEntryMessage)
	}
	return nil
}

// formatCell renders a day in four columns; "*" marks an entry and
// blanks pad days outside the month.
func formatCell(c journal.Cell) string {
	if !c.InMonth {
		return "    "
	}
	mark := " "
	if c.HasEntry {
		mark = "*"
	}
	return fmt.Sprintf("%3d%s", c.Day, mark)
}
