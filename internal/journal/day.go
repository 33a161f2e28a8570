package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/journey/internal/models"
)

// Day is a detail record with its parsed date.
type Day struct {
	models.DayDetail
	Time time.Time
}

// Title renders the heading, e.g. "Monday, January 15, 2024".
func (d *Day) Title() string {
	return FormatLong(d.Time)
}

func (d *Day) Path() string {
	return DayPath(d.Time)
}

// Markdown renders the day for the terminal views.
func (d *Day) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", d.Title())
	fmt.Fprintf(&b, "**Mood:** %s\n\n", d.Mood.Label())

	b.WriteString("## Daily Tasks\n\n")
	fmt.Fprintf(&b, "### Completed (%d)\n\n", len(d.Completed))
	for _, t := range d.Completed {
		fmt.Fprintf(&b, "- [x] %s _%s, %s priority", t.Title, t.Category, t.Priority)
		if t.TimeSpent != "" {
			fmt.Fprintf(&b, ", %s", t.TimeSpent)
		}
		b.WriteString("_\n")
	}
	if len(d.Completed) == 0 {
		b.WriteString("_Nothing completed._\n")
	}
	fmt.Fprintf(&b, "\n### Planned (%d)\n\n", len(d.Planned))
	for _, t := range d.Planned {
		fmt.Fprintf(&b, "- [ ] %s _%s, %s priority_\n", t.Title, t.Category, t.Priority)
	}
	if len(d.Planned) == 0 {
		b.WriteString("_Nothing planned._\n")
	}

	if len(d.Articles) > 0 {
		b.WriteString("\n## Learning Articles\n")
		for _, a := range d.Articles {
			fmt.Fprintf(&b, "\n### %s (%s)\n\n%s\n\n", a.Title, a.TimeToRead, a.Summary)
			writeTags(&b, a.Tags)
			fmt.Fprintf(&b, "> **Key Insight:** %s\n", a.Insight)
		}
	}

	if len(d.Writings) > 0 {
		b.WriteString("\n## Philosophical Writings\n")
		for _, w := range d.Writings {
			fmt.Fprintf(&b, "\n### %s (%s)\n\n%s\n\n", w.Title, w.TimeToRead, w.Summary)
			writeTags(&b, w.Tags)
			fmt.Fprintf(&b, "> **Key Thought:** %s\n", w.KeyThought)
		}
	}

	if d.Reflection != "" {
		fmt.Fprintf(&b, "\n## Daily Reflection\n\n%s\n", d.Reflection)
	}
	return b.String()
}

func writeTags(b *strings.Builder, tags []string) {
	if len(tags) == 0 {
		return
	}
	quoted := make([]string, len(tags))
	for i, t := range tags {
		quoted[i] = "`" + t + "`"
	}
	fmt.Fprintf(b, "%s\n\n", strings.Join(quoted, " "))
}
