package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/journey/internal/constants"
	"github.com/julianstephens/journey/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictMissingField  ConflictType = "missing_field"
	ConflictInvalidDate   ConflictType = "invalid_date"
	ConflictDuplicateDate ConflictType = "duplicate_date"
	ConflictDuplicateID   ConflictType = "duplicate_id"
	ConflictInvalidEnum   ConflictType = "invalid_enum"
	ConflictInvalidCount  ConflictType = "invalid_count"
)

// Conflict represents a problem found in one journal record
type Conflict struct {
	Type        ConflictType
	Description string
	Dataset     string // entries, days, updates, ...
	Date        string // YYYY-MM-DD format (if applicable)
	ID          string // record id (if applicable)
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// ByType returns the conflicts of one type.
func (vr *ValidationResult) ByType(t ConflictType) []Conflict {
	var out []Conflict
	for _, c := range vr.Conflicts {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// Validator checks journal datasets for malformed records
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateDataset runs every check over ds.
func (v *Validator) ValidateDataset(ds models.Dataset) ValidationResult {
	c := &collector{}
	v.checkProfile(c, ds.Profile)
	v.checkProgress(c, ds.Progress)
	v.checkEntries(c, ds.Entries)
	v.checkDays(c, ds.Days)
	v.checkUpdates(c, ds.Updates)
	v.checkTaskDays(c, ds.TaskDays)
	v.checkArticles(c, ds.Articles)
	v.checkWritings(c, ds.Writings)
	return ValidationResult{Conflicts: c.conflicts}
}

// ValidateEntries checks the calendar entries alone.
func (v *Validator) ValidateEntries(entries []models.DailyEntry) ValidationResult {
	c := &collector{}
	v.checkEntries(c, entries)
	return ValidationResult{Conflicts: c.conflicts}
}

type collector struct {
	conflicts []Conflict
}

func (c *collector) add(t ConflictType, dataset, date, id, format string, args ...any) {
	c.conflicts = append(c.conflicts, Conflict{
		Type:        t,
		Description: fmt.Sprintf(format, args...),
		Dataset:     dataset,
		Date:        date,
		ID:          id,
	})
}

func (c *collector) required(dataset, key, field, value string) {
	if strings.TrimSpace(value) == "" {
		c.add(ConflictMissingField, dataset, "", key, "%s %s: %s is empty", dataset, key, field)
	}
}

func (c *collector) date(dataset, key, value string) {
	if value == "" {
		c.add(ConflictMissingField, dataset, "", key, "%s %s: date is empty", dataset, key)
		return
	}
	if _, err := time.Parse(constants.DateFormat, value); err != nil {
		c.add(ConflictInvalidDate, dataset, value, key, "%s %s: invalid date %q (expected YYYY-MM-DD)", dataset, key, value)
	}
}

func (c *collector) nonNegative(dataset, key, field string, n int) {
	if n < 0 {
		c.add(ConflictInvalidCount, dataset, "", key, "%s %s: %s is negative (%d)", dataset, key, field, n)
	}
}

// uniq reports the second and later occurrences of a key.
type uniq map[string]bool

func (u uniq) seen(key string) bool {
	if key == "" {
		return false
	}
	if u[key] {
		return true
	}
	u[key] = true
	return false
}

func (v *Validator) checkProfile(c *collector, p models.Profile) {
	c.required("profile", "", "name", p.Name)
	c.required("profile", "", "headline", p.Headline)
	c.required("profile", "", "bio", p.Bio)
	c.required("profile", "", "email", p.Email)
	for i, s := range p.Skills {
		c.required("profile", fmt.Sprintf("skill %d", i+1), "skill", s)
	}
	for _, l := range p.Links {
		c.required("profile", "link "+l.Label, "label", l.Label)
		c.required("profile", "link "+l.Label, "url", l.URL)
	}
	c.nonNegative("profile", "", "day streak", p.Stats.DayStreak)
	c.nonNegative("profile", "", "problems solved", p.Stats.ProblemsSolved)
	c.nonNegative("profile", "", "books read", p.Stats.BooksRead)
}

func (v *Validator) checkProgress(c *collector, p models.Progress) {
	c.nonNegative("progress", "", "current streak", p.CurrentStreak)
	c.nonNegative("progress", "", "weekly goal", p.WeeklyGoal)
	c.nonNegative("progress", "", "completed this week", p.CompletedThisWeek)
	c.nonNegative("progress", "", "monthly problems", p.MonthlyProblems)
	c.nonNegative("progress", "", "monthly goal", p.MonthlyGoal)
	if r := p.Highlights.ConsistencyRate; r < 0 || r > 100 {
		c.add(ConflictInvalidCount, "progress", "", "", "progress: consistency rate %d is outside 0-100", r)
	}
}

func (v *Validator) checkEntries(c *collector, entries []models.DailyEntry) {
	dates := uniq{}
	for _, e := range entries {
		c.date("entries", e.Date, e.Date)
		if dates.seen(e.Date) {
			c.add(ConflictDuplicateDate, "entries", e.Date, "", "entries: duplicate date %s", e.Date)
		}
		if !e.Mood.Valid() {
			c.add(ConflictInvalidEnum, "entries", e.Date, "", "entries %s: invalid mood %q", e.Date, e.Mood)
		}
		if e.TasksCompleted < 0 || e.TasksCompleted > e.TotalTasks {
			c.add(ConflictInvalidCount, "entries", e.Date, "", "entries %s: %d of %d tasks completed", e.Date, e.TasksCompleted, e.TotalTasks)
		}
	}
}

func (v *Validator) checkTasks(c *collector, dataset, date string, tasks []models.Task, ids uniq, category func(models.Category) bool) {
	for _, t := range tasks {
		key := date + " task " + t.ID
		c.required(dataset, key, "id", t.ID)
		c.required(dataset, key, "title", t.Title)
		if ids.seen(t.ID) {
			c.add(ConflictDuplicateID, dataset, date, t.ID, "%s %s: duplicate task id %s", dataset, date, t.ID)
		}
		if !category(t.Category) {
			c.add(ConflictInvalidEnum, dataset, date, t.ID, "%s: invalid category %q", key, t.Category)
		}
		if !t.Priority.Valid() {
			c.add(ConflictInvalidEnum, dataset, date, t.ID, "%s: invalid priority %q", key, t.Priority)
		}
	}
}

func (v *Validator) checkDays(c *collector, days []models.DayDetail) {
	dates := uniq{}
	for _, d := range days {
		c.date("days", d.Date, d.Date)
		if dates.seen(d.Date) {
			c.add(ConflictDuplicateDate, "days", d.Date, "", "days: duplicate date %s", d.Date)
		}
		if !d.Mood.Valid() {
			c.add(ConflictInvalidEnum, "days", d.Date, "", "days %s: invalid mood %q", d.Date, d.Mood)
		}
		ids := uniq{}
		v.checkTasks(c, "days", d.Date, d.Completed, ids, models.Category.ValidDetailCategory)
		v.checkTasks(c, "days", d.Date, d.Planned, ids, models.Category.ValidDetailCategory)
		for _, n := range d.Articles {
			key := d.Date + " note " + n.ID
			c.required("days", key, "id", n.ID)
			c.required("days", key, "title", n.Title)
			c.required("days", key, "summary", n.Summary)
			c.required("days", key, "insight", n.Insight)
		}
		for _, r := range d.Writings {
			key := d.Date + " reflection " + r.ID
			c.required("days", key, "id", r.ID)
			c.required("days", key, "title", r.Title)
			c.required("days", key, "summary", r.Summary)
			c.required("days", key, "key thought", r.KeyThought)
		}
		c.required("days", d.Date, "reflection", d.Reflection)
	}
}

func (v *Validator) checkUpdates(c *collector, updates []models.Update) {
	ids := uniq{}
	for _, u := range updates {
		c.required("updates", u.ID, "id", u.ID)
		c.date("updates", u.ID, u.Date)
		if ids.seen(u.ID) {
			c.add(ConflictDuplicateID, "updates", u.Date, u.ID, "updates: duplicate id %s", u.ID)
		}
		c.required("updates", u.ID, "book", u.Reading.Book)
		c.required("updates", u.ID, "insights", u.Reading.Insights)
		c.nonNegative("updates", u.ID, "pages", u.Reading.Pages)
		c.nonNegative("updates", u.ID, "time spent", u.DSA.TimeSpentMin)
		if !u.Mood.Valid() {
			c.add(ConflictInvalidEnum, "updates", u.Date, u.ID, "updates %s: invalid mood %q", u.ID, u.Mood)
		}
	}
}

func (v *Validator) checkTaskDays(c *collector, days []models.TaskDay) {
	dates := uniq{}
	for _, d := range days {
		c.date("task days", d.Date, d.Date)
		if dates.seen(d.Date) {
			c.add(ConflictDuplicateDate, "task days", d.Date, "", "task days: duplicate date %s", d.Date)
		}
		ids := uniq{}
		v.checkTasks(c, "task days", d.Date, d.Completed, ids, models.Category.ValidTaskCategory)
		v.checkTasks(c, "task days", d.Date, d.Planned, ids, models.Category.ValidTaskCategory)
	}
}

func (v *Validator) checkArticles(c *collector, articles []models.Article) {
	ids := uniq{}
	for _, a := range articles {
		c.required("articles", a.ID, "id", a.ID)
		c.required("articles", a.ID, "title", a.Title)
		c.required("articles", a.ID, "excerpt", a.Excerpt)
		c.required("articles", a.ID, "category", a.Category)
		c.date("articles", a.ID, a.Date)
		if ids.seen(a.ID) {
			c.add(ConflictDuplicateID, "articles", a.Date, a.ID, "articles: duplicate id %s", a.ID)
		}
		c.nonNegative("articles", a.ID, "read time", a.ReadTimeMin)
	}
}

func (v *Validator) checkWritings(c *collector, writings []models.Writing) {
	ids := uniq{}
	for _, w := range writings {
		c.required("writings", w.ID, "id", w.ID)
		c.required("writings", w.ID, "title", w.Title)
		c.required("writings", w.ID, "excerpt", w.Excerpt)
		c.date("writings", w.ID, w.Date)
		if ids.seen(w.ID) {
			c.add(ConflictDuplicateID, "writings", w.Date, w.ID, "writings: duplicate id %s", w.ID)
		}
		if !w.Category.Valid() {
			c.add(ConflictInvalidEnum, "writings", w.Date, w.ID, "writings %s: invalid category %q", w.ID, w.Category)
		}
		if !w.Mood.Valid() {
			c.add(ConflictInvalidEnum, "writings", w.Date, w.ID, "writings %s: invalid mood %q", w.ID, w.Mood)
		}
		c.nonNegative("writings", w.ID, "read time", w.ReadTimeMin)
	}
}
