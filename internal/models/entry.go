package models

type Mood string

const (
	MoodExcellent   Mood = "excellent"
	MoodGood        Mood = "good"
	MoodNeutral     Mood = "neutral"
	MoodChallenging Mood = "challenging"
)

func (m Mood) Valid() bool {
	switch m {
	case MoodExcellent, MoodGood, MoodNeutral, MoodChallenging:
		return true
	}
	return false
}

// DailyEntry is one calendar day of the journal.
type DailyEntry struct {
	Date             string `json:"date"` // YYYY-MM-DD format
	TasksCompleted   int    `json:"tasks_completed"`
	TotalTasks       int    `json:"total_tasks"`
	HasReading       bool   `json:"has_reading"`
	HasPhilosophical bool   `json:"has_philosophical"`
	Mood             Mood   `json:"mood"`
}
