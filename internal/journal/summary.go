package journal

import (
	"fmt"
	"math"
	"time"

	"github.com/julianstephens/journey/internal/constants"
	"github.com/julianstephens/journey/internal/models"
)

// Summary is the side panel shown for the selected calendar date.
type Summary struct {
	Date        time.Time
	Title       string
	Description string
	Found       bool
	Entry       models.DailyEntry
	Dots        []bool
	Activities  []string
}

// Tasks renders "completed/total".
func (s Summary) Tasks() string {
	return fmt.Sprintf("%d/%d", s.Entry.TasksCompleted, s.Entry.TotalTasks)
}

// Path is the detail route for the summary's date.
func (s Summary) Path() string {
	return DayPath(s.Date)
}

// Summary looks up t and prepares the summary panel. A zero t yields the
// "Select a Date" placeholder.
func (s *Service) Summary(t time.Time) (Summary, error) {
	if t.IsZero() {
		return Summary{Title: constants.SelectDateTitle, Description: constants.NoEntryDescription}, nil
	}

	sum := Summary{Date: t, Title: FormatMedium(t), Description: constants.NoEntryDescription}
	entry, found, err := s.EntryFor(t)
	if err != nil {
		return sum, err
	}
	if !found {
		return sum, nil
	}

	sum.Found = true
	sum.Entry = entry
	sum.Description = constants.EntryDescription
	sum.Dots = make([]bool, max(entry.TotalTasks, 0))
	for i := range sum.Dots {
		sum.Dots[i] = i < entry.TasksCompleted
	}
	if entry.HasReading {
		sum.Activities = append(sum.Activities, "Reading")
	}
	if entry.HasPhilosophical {
		sum.Activities = append(sum.Activities, "Philosophy")
	}
	return sum, nil
}

// Goal is one done/goal progress bar.
type Goal struct {
	Label   string
	Done    int
	Target  int
	Percent int
	// Width is the bar fill, clamped to 0-100.
	Width int
}

func (g Goal) Ratio() string {
	return fmt.Sprintf("%d/%d", g.Done, g.Target)
}

// Percent is round(done/goal*100), 0 when goal is 0.
func Percent(done, goal int) int {
	if goal == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(goal) * 100))
}

func newGoal(label string, done, target int) Goal {
	p := Percent(done, target)
	return Goal{Label: label, Done: done, Target: target, Percent: p, Width: min(max(p, 0), 100)}
}

// Overview bundles the profile card and the progress section.
type Overview struct {
	Profile  models.Profile
	Progress models.Progress
	Weekly   Goal
	Monthly  Goal
}

func (s *Service) Overview() (Overview, error) {
	profile, err := s.store.GetProfile()
	if err != nil {
		return Overview{}, fmt.Errorf("failed to load profile: %w", err)
	}
	progress, err := s.store.GetProgress()
	if err != nil {
		return Overview{}, fmt.Errorf("failed to load progress: %w", err)
	}
	return Overview{
		Profile:  profile,
		Progress: progress,
		Weekly:   newGoal("Weekly Goal", progress.CompletedThisWeek, progress.WeeklyGoal),
		Monthly:  newGoal("Monthly Problems", progress.MonthlyProblems, progress.MonthlyGoal),
	}, nil
}
