package storage

import (
	"errors"

	"github.com/julianstephens/daybook/internal/models"
)

// ErrNotFound is returned by point lookups when no record exists for the key.
var ErrNotFound = errors.New("record not found")

// Provider is the persistence contract for daybook. A single process owns
// the store; operations are safe to call from any goroutine but callers
// must not assume ordering between two independently issued calls.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Day entries. UpsertEntry is atomic on the date key: an existing row
	// keeps its id and created_at; a new row gets both assigned. The
	// returned entry reflects the stored state.
	GetEntry(date string) (models.DayEntry, error)
	GetEntriesInRange(start, end string) ([]models.DayEntry, error)
	UpsertEntry(models.DayEntry) (models.DayEntry, error)

	// Subscribe registers a consumer of entry change notifications.
	// Every successful upsert is published to all open subscriptions.
	Subscribe() *Subscription

	// Monthly goals
	GetMonthlyGoal(month string) (models.MonthlyGoal, error)
	GetAllMonthlyGoals() ([]models.MonthlyGoal, error)
	SaveMonthlyGoal(models.MonthlyGoal) (models.MonthlyGoal, error)

	// Weekly reflections
	GetWeeklyReflection(weekStart string) (models.WeeklyReflection, error)
	GetAllWeeklyReflections() ([]models.WeeklyReflection, error)
	SaveWeeklyReflection(models.WeeklyReflection) (models.WeeklyReflection, error)

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Utils
	GetConfigPath() string
}
