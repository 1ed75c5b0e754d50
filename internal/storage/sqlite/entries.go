package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/storage"
	"github.com/julianstephens/daybook/internal/utils"
)

const entryColumns = `id, date, mood, sleep_hours, sleep_quality, highlight, journal_text,
		workout, drink, smoke, read, lsat, screen_time, created_at, updated_at`

func scanEntry(row interface{ Scan(...any) error }) (models.DayEntry, error) {
	var e models.DayEntry
	var mood sql.NullInt64
	var workout, drink, smoke, read, lsat int
	var createdAt, updatedAt string

	err := row.Scan(&e.ID, &e.Date, &mood, &e.Sleep.Hours, &e.Sleep.Quality,
		&e.Highlight, &e.JournalText, &workout, &drink, &smoke, &read, &lsat,
		&e.Habits.ScreenTime, &createdAt, &updatedAt)
	if err != nil {
		return models.DayEntry{}, err
	}

	if mood.Valid {
		v := int(mood.Int64)
		e.Mood = &v
	}
	e.Habits.Workout = workout != 0
	e.Habits.Drink = drink != 0
	e.Habits.Smoke = smoke != 0
	e.Habits.Read = read != 0
	e.Habits.LSAT = lsat != 0

	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.DayEntry{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.DayEntry{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return e, nil
}

func (s *Store) GetEntry(date string) (models.DayEntry, error) {
	if err := utils.ValidateDate(date); err != nil {
		return models.DayEntry{}, err
	}

	row := s.db.QueryRow(`SELECT `+entryColumns+` FROM day_entries WHERE date = ?`, date)
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DayEntry{}, storage.ErrNotFound
		}
		return models.DayEntry{}, err
	}
	return e, nil
}

// GetEntriesInRange returns all persisted entries with start <= date <= end,
// ordered by date ascending. Days without an entry are simply absent.
func (s *Store) GetEntriesInRange(start, end string) ([]models.DayEntry, error) {
	if err := utils.ValidateDate(start); err != nil {
		return nil, err
	}
	if err := utils.ValidateDate(end); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`SELECT `+entryColumns+`
		FROM day_entries WHERE date >= ? AND date <= ?
		ORDER BY date`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.DayEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// UpsertEntry inserts or replaces the entry for its date. The existence
// check and the write are a single statement, so two racing upserts for
// the same date can never produce duplicate rows: the conflict target is
// the unique date index, and an existing row keeps its id and created_at.
func (s *Store) UpsertEntry(entry models.DayEntry) (models.DayEntry, error) {
	if err := utils.ValidateDate(entry.Date); err != nil {
		return models.DayEntry{}, err
	}

	now := time.Now().Format(time.RFC3339)
	id := entry.ID
	if id == "" {
		id = uuid.New().String()
	}

	var mood sql.NullInt64
	if entry.Mood != nil {
		mood = sql.NullInt64{Int64: int64(*entry.Mood), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO day_entries (id, date, mood, sleep_hours, sleep_quality, highlight, journal_text,
			workout, drink, smoke, read, lsat, screen_time, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			mood = excluded.mood,
			sleep_hours = excluded.sleep_hours,
			sleep_quality = excluded.sleep_quality,
			highlight = excluded.highlight,
			journal_text = excluded.journal_text,
			workout = excluded.workout,
			drink = excluded.drink,
			smoke = excluded.smoke,
			read = excluded.read,
			lsat = excluded.lsat,
			screen_time = excluded.screen_time,
			updated_at = excluded.updated_at`,
		id, entry.Date, mood, entry.Sleep.Hours, entry.Sleep.Quality,
		entry.Highlight, entry.JournalText,
		boolToInt(entry.Habits.Workout), boolToInt(entry.Habits.Drink),
		boolToInt(entry.Habits.Smoke), boolToInt(entry.Habits.Read),
		boolToInt(entry.Habits.LSAT), entry.Habits.ScreenTime,
		now, now)
	if err != nil {
		return models.DayEntry{}, fmt.Errorf("failed to upsert entry for %s: %w", entry.Date, err)
	}

	// Read back the stored row so the caller sees the surviving id and
	// created_at when the write landed on an existing date.
	saved, err := s.GetEntry(entry.Date)
	if err != nil {
		return models.DayEntry{}, fmt.Errorf("failed to read back entry for %s: %w", entry.Date, err)
	}

	s.feed.Publish(storage.EntryChange{Date: saved.Date})

	return saved, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
