package models

import "time"

// Goal is a single item within a monthly goal list.
type Goal struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// MonthlyGoal groups a month's goals with an end-of-month reflection.
// Month (YYYY-MM) is unique per record.
type MonthlyGoal struct {
	ID         string    `json:"id"`
	Month      string    `json:"month"`
	Goals      []Goal    `json:"goals"`
	Completed  bool      `json:"completed"`
	Reflection string    `json:"reflection"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
