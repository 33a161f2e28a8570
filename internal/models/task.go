package models

type Category string

const (
	// Task manager categories
	CategoryDSA     Category = "dsa"
	CategoryReading Category = "reading"
	CategoryGeneral Category = "general"

	// Day detail categories
	CategoryDetailDSA          Category = "DSA"
	CategoryDetailReading      Category = "Reading"
	CategoryDetailSystemDesign Category = "System Design"
)

// Valid accepts a category from either set.
func (c Category) Valid() bool {
	return c.ValidTaskCategory() || c.ValidDetailCategory()
}

// ValidTaskCategory reports whether c belongs to the task manager set.
func (c Category) ValidTaskCategory() bool {
	switch c {
	case CategoryDSA, CategoryReading, CategoryGeneral:
		return true
	}
	return false
}

// ValidDetailCategory reports whether c belongs to the day detail set.
func (c Category) ValidDetailCategory() bool {
	switch c {
	case CategoryDetailDSA, CategoryDetailReading, CategoryDetailSystemDesign:
		return true
	}
	return false
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type Task struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Completed bool     `json:"completed"`
	Category  Category `json:"category"`
	Priority  Priority `json:"priority"`
	TimeSpent string   `json:"time_spent,omitempty"` // e.g. "1.5h", only for completed detail tasks
}

// TaskDay groups the tasks and reflection logged for one day.
type TaskDay struct {
	Date       string `json:"date"` // YYYY-MM-DD format
	Completed  []Task `json:"completed"`
	Planned    []Task `json:"planned"`
	Reflection string `json:"reflection"`
}
