package models

type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type ProfileStats struct {
	DayStreak      int `json:"day_streak"`
	ProblemsSolved int `json:"problems_solved"`
	BooksRead      int `json:"books_read"`
}

type Profile struct {
	Name     string       `json:"name"`
	Headline string       `json:"headline"`
	Skills   []string     `json:"skills"`
	Bio      string       `json:"bio"`
	Email    string       `json:"email"`
	Links    []Link       `json:"links"`
	Stats    ProfileStats `json:"stats"`
}

type Highlights struct {
	NewConcepts     int `json:"new_concepts"`
	BooksCompleted  int `json:"books_completed"`
	ConsistencyRate int `json:"consistency_rate"` // percent
}

type Progress struct {
	CurrentStreak     int        `json:"current_streak"`
	WeeklyGoal        int        `json:"weekly_goal"`
	CompletedThisWeek int        `json:"completed_this_week"`
	MonthlyProblems   int        `json:"monthly_problems"`
	MonthlyGoal       int        `json:"monthly_goal"`
	Highlights        Highlights `json:"highlights"`
}
