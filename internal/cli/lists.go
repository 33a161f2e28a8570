package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/journey/internal/constants"
	"github.com/julianstephens/journey/internal/journal"
	"github.com/julianstephens/journey/internal/models"
)

type TasksCmd struct {
	JSON bool `help:"Print as JSON."`
}

func (c *TasksCmd) Run(ctx *Context) error {
	days, err := ctx.Journal.TaskDays()
	if err != nil {
		return err
	}
	w := ctx.out()
	if c.JSON {
		return writeJSON(w, days)
	}
	if len(days) == 0 {
		fmt.Fprintln(w, "No tasks found")
		return nil
	}

	for i, d := range days {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\n", journal.FormatISO(d.Date, constants.LongDateFormat))
		fmt.Fprintf(w, "  Completed (%d):\n", len(d.Completed))
		for _, t := range d.Completed {
			fmt.Fprintf(w, "    [x] %s (%s, %s)\n", t.Title, t.Category.Label(), t.Priority)
		}
		fmt.Fprintf(w, "  Planned (%d):\n", len(d.Planned))
		for _, t := range d.Planned {
			fmt.Fprintf(w, "    [ ] %s (%s, %s)\n", t.Title, t.Category.Label(), t.Priority)
		}
		if d.Reflection != "" {
			fmt.Fprintf(w, "  Reflection: %s\n", d.Reflection)
		}
	}
	return nil
}

type ArticlesCmd struct {
	JSON bool `help:"Print as JSON."`
}

func (c *ArticlesCmd) Run(ctx *Context) error {
	articles, err := ctx.Journal.Articles()
	if err != nil {
		return err
	}
	w := ctx.out()
	if c.JSON {
		return writeJSON(w, articles)
	}
	if len(articles) == 0 {
		fmt.Fprintln(w, "No articles found")
		return nil
	}

	for _, a := range articles {
		fmt.Fprintf(w, "%s  %s\n", a.Date, a.Title)
		fmt.Fprintf(w, "    %s, %d min read", a.Category, a.ReadTimeMin)
		if len(a.Tags) > 0 {
			fmt.Fprintf(w, " [%s]", strings.Join(a.Tags, ", "))
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "    %s\n", a.Excerpt)
	}
	return nil
}

type WritingsCmd struct {
	JSON     bool   `help:"Print as JSON."`
	Category string `help:"Only show writings in this category (philosophy, non-academic, reflection, book-insights)."`
}

func (c *WritingsCmd) Run(ctx *Context) error {
	if c.Category != "" && !models.WritingCategory(c.Category).Valid() {
		return fmt.Errorf("invalid category %q", c.Category)
	}
	writings, err := ctx.Journal.Writings()
	if err != nil {
		return err
	}
	if c.Category != "" {
		filtered := writings[:0]
		for _, wr := range writings {
			if string(wr.Category) == c.Category {
				filtered = append(filtered, wr)
			}
		}
		writings = filtered
	}

	w := ctx.out()
	if c.JSON {
		return writeJSON(w, writings)
	}
	if len(writings) == 0 {
		fmt.Fprintln(w, "No writings found")
		return nil
	}

	for _, wr := range writings {
		fmt.Fprintf(w, "%s  %s\n", wr.Date, wr.Title)
		fmt.Fprintf(w, "    %s, %s, %d min read\n", wr.Category.Label(), wr.Mood.Label(), wr.ReadTimeMin)
		fmt.Fprintf(w, "    %s\n", wr.Excerpt)
	}
	return nil
}

type UpdatesCmd struct {
	JSON bool `help:"Print as JSON."`
}

func (c *UpdatesCmd) Run(ctx *Context) error {
	updates, err := ctx.Journal.Updates()
	if err != nil {
		return err
	}
	w := ctx.out()
	if c.JSON {
		return writeJSON(w, updates)
	}
	if len(updates) == 0 {
		fmt.Fprintln(w, "No updates found")
		return nil
	}

	for _, u := range updates {
		fmt.Fprintf(w, "%s  (%s)\n", journal.FormatISO(u.Date, constants.MediumDateFormat), u.Mood.Label())
		fmt.Fprintf(w, "    Reading: %s, %d pages\n", u.Reading.Book, u.Reading.Pages)
		fmt.Fprintf(w, "      %s\n", u.Reading.Insights)
		fmt.Fprintf(w, "    DSA: %s (%d min)\n", strings.Join(u.DSA.Problems, ", "), u.DSA.TimeSpentMin)
		if len(u.DSA.Concepts) > 0 {
			fmt.Fprintf(w, "      Concepts: %s\n", strings.Join(u.DSA.Concepts, ", "))
		}
	}
	return nil
}

type ProfileCmd struct {
	JSON bool `help:"Print as JSON."`
}

func (c *ProfileCmd) Run(ctx *Context) error {
	o, err := ctx.Journal.Overview()
	if err != nil {
		return err
	}
	w := ctx.out()
	if c.JSON {
		return writeJSON(w, struct {
			Profile  models.Profile  `json:"profile"`
			Progress models.Progress `json:"progress"`
		}{o.Profile, o.Progress})
	}

	p := o.Profile
	fmt.Fprintf(w, "%s\n%s\n\n%s\n\n", p.Name, p.Headline, p.Bio)
	fmt.Fprintf(w, "Skills: %s\n", strings.Join(p.Skills, ", "))
	fmt.Fprintf(w, "Email:  %s\n", p.Email)
	for _, l := range p.Links {
		fmt.Fprintf(w, "%-7s %s\n", l.Label+":", l.URL)
	}
	fmt.Fprintf(w, "\n%d day streak, %d problems solved, %d books read\n\n",
		p.Stats.DayStreak, p.Stats.ProblemsSolved, p.Stats.BooksRead)

	fmt.Fprintf(w, "Current streak: %d days\n", o.Progress.CurrentStreak)
	for _, g := range []journal.Goal{o.Weekly, o.Monthly} {
		fmt.Fprintf(w, "%-17s %s %s %d%%\n", g.Label+":", g.Ratio(), bar(g.Width, 20), g.Percent)
	}
	h := o.Progress.Highlights
	fmt.Fprintf(w, "Highlights: %d new concepts, %d books completed, %d%% consistency\n",
		h.NewConcepts, h.BooksCompleted, h.ConsistencyRate)
	return nil
}

// bar draws a width-percent fill in cells characters.
func bar(width, cells int) string {
	filled := width * cells / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", cells-filled) + "]"
}
