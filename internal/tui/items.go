package tui

import (
	"fmt"
	"strings"

	"github.com/julianstephens/journey/internal/constants"
	"github.com/julianstephens/journey/internal/journal"
	"github.com/julianstephens/journey/internal/models"
	"github.com/julianstephens/journey/internal/tui/components/entrylist"
)

func taskDayItems(days []models.TaskDay) []entrylist.Item {
	items := make([]entrylist.Item, 0, len(days))
	for _, d := range days {
		titles := make([]string, 0, len(d.Completed)+len(d.Planned))
		for _, t := range d.Completed {
			titles = append(titles, t.Title)
		}
		for _, t := range d.Planned {
			titles = append(titles, t.Title)
		}
		items = append(items, entrylist.Item{
			Heading: journal.FormatISO(d.Date, constants.LongDateFormat),
			Detail:  fmt.Sprintf("%d completed, %d planned · %s", len(d.Completed), len(d.Planned), d.Reflection),
			Filter:  d.Date + " " + strings.Join(titles, " "),
		})
	}
	return items
}

func articleItems(articles []models.Article) []entrylist.Item {
	items := make([]entrylist.Item, 0, len(articles))
	for _, a := range articles {
		items = append(items, entrylist.Item{
			Heading: a.Title,
			Detail: fmt.Sprintf("%s · %s · %d min read",
				a.Category, journal.FormatISO(a.Date, constants.MediumDateFormat), a.ReadTimeMin),
			Filter: a.Title + " " + a.Category + " " + strings.Join(a.Tags, " "),
		})
	}
	return items
}

func writingItems(writings []models.Writing) []entrylist.Item {
	items := make([]entrylist.Item, 0, len(writings))
	for _, w := range writings {
		items = append(items, entrylist.Item{
			Heading: w.Title,
			Detail: fmt.Sprintf("%s · %s · %s · %d min read",
				w.Category.Label(), w.Mood.Label(), journal.FormatISO(w.Date, constants.MediumDateFormat), w.ReadTimeMin),
			Filter: w.Title + " " + string(w.Category) + " " + string(w.Mood),
		})
	}
	return items
}

func updateItems(updates []models.Update) []entrylist.Item {
	items := make([]entrylist.Item, 0, len(updates))
	for _, u := range updates {
		items = append(items, entrylist.Item{
			Heading: fmt.Sprintf("%s · %s", journal.FormatISO(u.Date, constants.MediumDateFormat), u.Reading.Book),
			Detail: fmt.Sprintf("%d pages · %d problems · %d min · %s",
				u.Reading.Pages, len(u.DSA.Problems), u.DSA.TimeSpentMin, u.Mood.Label()),
			Filter: u.Date + " " + u.Reading.Book + " " + strings.Join(u.DSA.Concepts, " "),
		})
	}
	return items
}
