package models

type WritingCategory string

const (
	WritingPhilosophy   WritingCategory = "philosophy"
	WritingNonAcademic  WritingCategory = "non-academic"
	WritingReflection   WritingCategory = "reflection"
	WritingBookInsights WritingCategory = "book-insights"
)

func (c WritingCategory) Valid() bool {
	switch c {
	case WritingPhilosophy, WritingNonAcademic, WritingReflection, WritingBookInsights:
		return true
	}
	return false
}

type WritingMood string

const (
	WritingThoughtful    WritingMood = "thoughtful"
	WritingInspired      WritingMood = "inspired"
	WritingContemplative WritingMood = "contemplative"
	WritingCurious       WritingMood = "curious"
)

func (m WritingMood) Valid() bool {
	switch m {
	case WritingThoughtful, WritingInspired, WritingContemplative, WritingCurious:
		return true
	}
	return false
}

type Writing struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Excerpt     string          `json:"excerpt"`
	Category    WritingCategory `json:"category"`
	Date        string          `json:"date"` // YYYY-MM-DD format
	Mood        WritingMood     `json:"mood"`
	ReadTimeMin int             `json:"read_time_min"`
}
