package models

type Article struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Category    string   `json:"category"`
	ReadTimeMin int      `json:"read_time_min"`
	Date        string   `json:"date"` // YYYY-MM-DD format
	Tags        []string `json:"tags"`
}
