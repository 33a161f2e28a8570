package models

// Dataset is the full set of journal records behind one store.
type Dataset struct {
	Profile  Profile      `json:"profile"`
	Progress Progress     `json:"progress"`
	Entries  []DailyEntry `json:"entries"`
	Days     []DayDetail  `json:"days"`
	Updates  []Update     `json:"updates"`
	TaskDays []TaskDay    `json:"task_days"`
	Articles []Article    `json:"articles"`
	Writings []Writing    `json:"writings"`
}
