package models

// LearningNote is an article summary attached to a day.
type LearningNote struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	Tags       []string `json:"tags"`
	TimeToRead string   `json:"time_to_read"`
	Insight    string   `json:"insight"`
}

// Reflection is a philosophical writing attached to a day.
type Reflection struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	Tags       []string `json:"tags"`
	TimeToRead string   `json:"time_to_read"`
	KeyThought string   `json:"key_thought"`
}

// DayDetail is everything recorded for a single day, shown on /day/{date}.
type DayDetail struct {
	Date       string         `json:"date"` // YYYY-MM-DD format
	Mood       Mood           `json:"mood"`
	Completed  []Task         `json:"completed"`
	Planned    []Task         `json:"planned"`
	Articles   []LearningNote `json:"articles"`
	Writings   []Reflection   `json:"writings"`
	Reflection string         `json:"reflection"`
}
