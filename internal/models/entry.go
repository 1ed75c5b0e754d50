package models

import (
	"strings"
	"time"
)

// SleepData records one night's sleep. Hours is clamped to [0,24] by
// validation; Quality uses the same 1-5 scale as mood.
type SleepData struct {
	Hours   float64 `json:"hours"`
	Quality int     `json:"quality"`
}

// Habits holds the fixed set of daily habit flags plus screen time in minutes.
type Habits struct {
	Workout    bool `json:"workout"`
	Drink      bool `json:"drink"`
	Smoke      bool `json:"smoke"`
	Read       bool `json:"read"`
	LSAT       bool `json:"lsat"`
	ScreenTime int  `json:"screen_time"`
}

// DayEntry is one calendar day's journal record. Date (YYYY-MM-DD) is the
// business key: the store enforces at most one entry per date. ID and the
// timestamps are assigned by the store on first insert and never supplied
// by callers. Mood nil means "not yet rated", which is distinct from any
// numeric value.
type DayEntry struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Mood        *int      `json:"mood"`
	Sleep       SleepData `json:"sleep"`
	Highlight   string    `json:"highlight"`
	JournalText string    `json:"journal_text"`
	Habits      Habits    `json:"habits"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewDayEntry returns the default draft entry for a date: all habits
// false, screen time 0, sleep 0h at mid-scale quality, mood unset,
// texts empty. The draft only becomes a real entry once persisted.
func NewDayEntry(date string) DayEntry {
	return DayEntry{
		Date:  date,
		Sleep: SleepData{Hours: 0, Quality: 3},
	}
}

// Persisted reports whether the entry has been committed to the store.
// Aggregation only ever sees persisted entries; drafts live in memory.
func (e DayEntry) Persisted() bool {
	return e.ID != ""
}

// HasJournal reports whether the entry carries any journal text after
// trimming whitespace.
func (e DayEntry) HasJournal() bool {
	return strings.TrimSpace(e.JournalText) != ""
}

// HabitDone reports whether the given habit flag is set on this entry.
func (e DayEntry) HabitDone(key HabitKey) bool {
	switch key {
	case HabitWorkout:
		return e.Habits.Workout
	case HabitDrink:
		return e.Habits.Drink
	case HabitSmoke:
		return e.Habits.Smoke
	case HabitRead:
		return e.Habits.Read
	case HabitLSAT:
		return e.Habits.LSAT
	default:
		return false
	}
}

// SetHabit sets the given habit flag on this entry.
func (e *DayEntry) SetHabit(key HabitKey, done bool) {
	switch key {
	case HabitWorkout:
		e.Habits.Workout = done
	case HabitDrink:
		e.Habits.Drink = done
	case HabitSmoke:
		e.Habits.Smoke = done
	case HabitRead:
		e.Habits.Read = done
	case HabitLSAT:
		e.Habits.LSAT = done
	}
}
