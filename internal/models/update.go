package models

type UpdateMood string

const (
	UpdateMoodExcellent   UpdateMood = "excellent"
	UpdateMoodGood        UpdateMood = "good"
	UpdateMoodOkay        UpdateMood = "okay"
	UpdateMoodChallenging UpdateMood = "challenging"
)

func (m UpdateMood) Valid() bool {
	switch m {
	case UpdateMoodExcellent, UpdateMoodGood, UpdateMoodOkay, UpdateMoodChallenging:
		return true
	}
	return false
}

type Reading struct {
	Book     string `json:"book"`
	Pages    int    `json:"pages"`
	Insights string `json:"insights"`
}

type Practice struct {
	Problems     []string `json:"problems"`
	Concepts     []string `json:"concepts"`
	TimeSpentMin int      `json:"time_spent_min"`
}

// Update is a daily reading + DSA practice log.
type Update struct {
	ID      string     `json:"id"`
	Date    string     `json:"date"` // YYYY-MM-DD format
	Reading Reading    `json:"reading"`
	DSA     Practice   `json:"dsa"`
	Mood    UpdateMood `json:"mood"`
}
