package validation

import (
	"strings"
	"testing"

	"github.com/julianstephens/journey/internal/fixtures"
	"github.com/julianstephens/journey/internal/models"
)

func TestValidateDataset_FixturesAreClean(t *testing.T) {
	result := New().ValidateDataset(fixtures.Dataset())

	if result.HasConflicts() {
		t.Errorf("expected no conflicts in fixtures, got:\n%s", result.FormatReport())
	}
	if got := result.FormatReport(); got != "No conflicts detected." {
		t.Errorf("FormatReport() = %q", got)
	}
}

func TestValidateEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.DailyEntry
		want    ConflictType
	}{
		{
			name:    "missing date",
			entries: []models.DailyEntry{{TotalTasks: 1, Mood: models.MoodGood}},
			want:    ConflictMissingField,
		},
		{
			name:    "invalid date",
			entries: []models.DailyEntry{{Date: "2024-13-01", TotalTasks: 1, Mood: models.MoodGood}},
			want:    ConflictInvalidDate,
		},
		{
			name: "duplicate date",
			entries: []models.DailyEntry{
				{Date: "2024-01-15", TotalTasks: 1, Mood: models.MoodGood},
				{Date: "2024-01-15", TotalTasks: 2, Mood: models.MoodNeutral},
			},
			want: ConflictDuplicateDate,
		},
		{
			name:    "invalid mood",
			entries: []models.DailyEntry{{Date: "2024-01-15", TotalTasks: 1, Mood: "okay"}},
			want:    ConflictInvalidEnum,
		},
		{
			name:    "completed exceeds total",
			entries: []models.DailyEntry{{Date: "2024-01-15", TasksCompleted: 8, TotalTasks: 7, Mood: models.MoodGood}},
			want:    ConflictInvalidCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := New().ValidateEntries(tt.entries)
			if len(result.ByType(tt.want)) == 0 {
				t.Errorf("expected a %s conflict, got %+v", tt.want, result.Conflicts)
			}
		})
	}
}

func TestValidateDataset_EmptyRequiredFields(t *testing.T) {
	ds := fixtures.Dataset()
	ds.Articles[0].Title = ""
	ds.Writings[1].Excerpt = "   "
	ds.Days[0].Articles[0].Insight = ""
	ds.Updates[2].Reading.Book = ""

	result := New().ValidateDataset(ds)

	missing := result.ByType(ConflictMissingField)
	if len(missing) != 4 {
		t.Fatalf("expected 4 missing field conflicts, got %d:\n%s", len(missing), result.FormatReport())
	}
	report := result.FormatReport()
	for _, want := range []string{"articles 1: title is empty", "writings 2: excerpt is empty", "insight is empty", "updates 3: book is empty"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestValidateDataset_DuplicateIDs(t *testing.T) {
	ds := fixtures.Dataset()
	ds.Articles[1].ID = ds.Articles[0].ID
	ds.Days[0].Planned[0].ID = ds.Days[0].Completed[0].ID

	result := New().ValidateDataset(ds)

	dups := result.ByType(ConflictDuplicateID)
	if len(dups) != 2 {
		t.Fatalf("expected 2 duplicate id conflicts, got %d:\n%s", len(dups), result.FormatReport())
	}
}

func TestValidateDataset_InvalidEnums(t *testing.T) {
	ds := fixtures.Dataset()
	ds.Writings[0].Category = "poetry"
	ds.Writings[0].Mood = "angry"
	ds.TaskDays[0].Completed[0].Priority = "urgent"
	ds.Updates[0].Mood = "neutral"

	result := New().ValidateDataset(ds)

	if got := len(result.ByType(ConflictInvalidEnum)); got != 4 {
		t.Errorf("expected 4 invalid enum conflicts, got %d:\n%s", got, result.FormatReport())
	}
}

func TestValidateDataset_CategorySets(t *testing.T) {
	ds := fixtures.Dataset()
	ds.TaskDays[0].Completed[0].Category = models.CategoryDetailSystemDesign
	ds.Days[0].Completed[0].Category = models.CategoryGeneral

	result := New().ValidateDataset(ds)

	enums := result.ByType(ConflictInvalidEnum)
	if len(enums) != 2 {
		t.Fatalf("expected 2 invalid enum conflicts, got %d:\n%s", len(enums), result.FormatReport())
	}
	if enums[0].Dataset != "days" || enums[1].Dataset != "task days" {
		t.Errorf("conflict datasets = %q, %q; want days, task days", enums[0].Dataset, enums[1].Dataset)
	}
}

func TestValidateDataset_NegativeCounts(t *testing.T) {
	ds := fixtures.Dataset()
	ds.Articles[0].ReadTimeMin = -1
	ds.Updates[0].Reading.Pages = -5
	ds.Progress.Highlights.ConsistencyRate = 120

	result := New().ValidateDataset(ds)

	if got := len(result.ByType(ConflictInvalidCount)); got != 3 {
		t.Errorf("expected 3 invalid count conflicts, got %d:\n%s", got, result.FormatReport())
	}
}

func TestFormatReport(t *testing.T) {
	result := ValidationResult{Conflicts: []Conflict{
		{Type: ConflictDuplicateDate, Description: "entries: duplicate date 2024-01-15"},
		{Type: ConflictInvalidDate, Description: "articles 9: invalid date \"x\" (expected YYYY-MM-DD)"},
	}}

	want := "Conflicts detected:\n" +
		"- entries: duplicate date 2024-01-15\n" +
		"- articles 9: invalid date \"x\" (expected YYYY-MM-DD)\n"
	if got := result.FormatReport(); got != want {
		t.Errorf("FormatReport() =\n%s\nwant\n%s", got, want)
	}
}
