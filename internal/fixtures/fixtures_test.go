package fixtures

import (
	"testing"
	"time"

	"github.com/julianstephens/journey/internal/constants"
	"github.com/julianstephens/journey/internal/validation"
)

func TestFixturesValidate(t *testing.T) {
	result := validation.New().ValidateDataset(Dataset())
	if result.HasConflicts() {
		t.Fatalf("fixtures have conflicts:\n%s", result.FormatReport())
	}
}

func TestRequiredFieldsNonEmpty(t *testing.T) {
	for _, e := range DailyEntries() {
		if e.Date == "" || e.Mood == "" {
			t.Errorf("entry %+v has empty required fields", e)
		}
	}
	for _, a := range Articles() {
		if a.ID == "" || a.Title == "" || a.Excerpt == "" || a.Category == "" || a.Date == "" || len(a.Tags) == 0 {
			t.Errorf("article %q has empty required fields", a.ID)
		}
	}
	for _, w := range Writings() {
		if w.ID == "" || w.Title == "" || w.Excerpt == "" || w.Date == "" {
			t.Errorf("writing %q has empty required fields", w.ID)
		}
	}
	for _, u := range Updates() {
		if u.ID == "" || u.Date == "" || u.Reading.Book == "" || len(u.DSA.Problems) == 0 {
			t.Errorf("update %q has empty required fields", u.ID)
		}
	}
}

func TestEveryEntryHasDayDetail(t *testing.T) {
	days := map[string]bool{}
	for _, d := range DayDetails() {
		days[d.Date] = true
	}
	for _, e := range DailyEntries() {
		if !days[e.Date] {
			t.Errorf("entry %s has no day detail", e.Date)
		}
	}
}

func TestDatesAreISO(t *testing.T) {
	for _, e := range DailyEntries() {
		if _, err := time.Parse(constants.DateFormat, e.Date); err != nil {
			t.Errorf("entry date %q: %v", e.Date, err)
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	entries := DailyEntries()
	entries[0].TasksCompleted = 99

	articles := Articles()
	articles[0].Tags[0] = "mutated"

	days := DayDetails()
	days[0].Completed[0].Title = "mutated"
	days[0].Articles[0].Tags[0] = "mutated"

	profile := Profile()
	profile.Skills[0] = "mutated"

	if DailyEntries()[0].TasksCompleted == 99 {
		t.Error("DailyEntries shares its backing array")
	}
	if Articles()[0].Tags[0] == "mutated" {
		t.Error("Articles shares tag slices")
	}
	if DayDetails()[0].Completed[0].Title == "mutated" {
		t.Error("DayDetails shares task slices")
	}
	if DayDetails()[0].Articles[0].Tags[0] == "mutated" {
		t.Error("DayDetails shares note tags")
	}
	if Profile().Skills[0] == "mutated" {
		t.Error("Profile shares skills")
	}
}

func TestCalendarEntries(t *testing.T) {
	want := map[string][2]int{
		"2024-01-15": {5, 7},
		"2024-01-14": {3, 5},
		"2024-01-13": {2, 4},
	}
	entries := DailyEntries()
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for _, e := range entries {
		w, ok := want[e.Date]
		if !ok {
			t.Errorf("unexpected entry %s", e.Date)
			continue
		}
		if e.TasksCompleted != w[0] || e.TotalTasks != w[1] {
			t.Errorf("entry %s = %d/%d, want %d/%d", e.Date, e.TasksCompleted, e.TotalTasks, w[0], w[1])
		}
	}
}
