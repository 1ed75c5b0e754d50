package models

import "time"

// HabitSummary counts habit days over one week, for weekly reflections.
type HabitSummary struct {
	Workout       int     `json:"workout"`
	Drink         int     `json:"drink"`
	Smoke         int     `json:"smoke"`
	Read          int     `json:"read"`
	LSAT          int     `json:"lsat"`
	AvgScreenTime float64 `json:"avg_screen_time"`
}

// WeeklyReflection is a free-form review of one week. WeekStart (the
// Monday, YYYY-MM-DD) is unique per record.
type WeeklyReflection struct {
	ID         string       `json:"id"`
	WeekStart  string       `json:"week_start"`
	WeekEnd    string       `json:"week_end"`
	Summary    string       `json:"summary"`
	Highlights []string     `json:"highlights"`
	Habits     HabitSummary `json:"habits_completed"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
