package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/storage"
)

func scanReflection(row interface{ Scan(...any) error }) (models.WeeklyReflection, error) {
	var r models.WeeklyReflection
	var highlightsJSON, habitsJSON string
	var createdAt, updatedAt string

	err := row.Scan(&r.ID, &r.WeekStart, &r.WeekEnd, &r.Summary, &highlightsJSON, &habitsJSON, &createdAt, &updatedAt)
	if err != nil {
		return models.WeeklyReflection{}, err
	}

	if err := json.Unmarshal([]byte(highlightsJSON), &r.Highlights); err != nil {
		return models.WeeklyReflection{}, fmt.Errorf("failed to parse highlights for week %s: %w", r.WeekStart, err)
	}
	if err := json.Unmarshal([]byte(habitsJSON), &r.Habits); err != nil {
		return models.WeeklyReflection{}, fmt.Errorf("failed to parse habit summary for week %s: %w", r.WeekStart, err)
	}

	r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.WeeklyReflection{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	r.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.WeeklyReflection{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return r, nil
}

func (s *Store) GetWeeklyReflection(weekStart string) (models.WeeklyReflection, error) {
	row := s.db.QueryRow(`
		SELECT id, week_start, week_end, summary, highlights, habits, created_at, updated_at
		FROM weekly_reflections WHERE week_start = ?`, weekStart)

	r, err := scanReflection(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.WeeklyReflection{}, storage.ErrNotFound
		}
		return models.WeeklyReflection{}, err
	}
	return r, nil
}

func (s *Store) GetAllWeeklyReflections() ([]models.WeeklyReflection, error) {
	rows, err := s.db.Query(`
		SELECT id, week_start, week_end, summary, highlights, habits, created_at, updated_at
		FROM weekly_reflections ORDER BY week_start`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reflections []models.WeeklyReflection
	for rows.Next() {
		r, err := scanReflection(rows)
		if err != nil {
			return nil, err
		}
		reflections = append(reflections, r)
	}

	return reflections, rows.Err()
}

func (s *Store) SaveWeeklyReflection(r models.WeeklyReflection) (models.WeeklyReflection, error) {
	now := time.Now().Format(time.RFC3339)
	id := r.ID
	if id == "" {
		id = uuid.New().String()
	}
	if r.Highlights == nil {
		r.Highlights = []string{}
	}

	highlightsJSON, err := json.Marshal(r.Highlights)
	if err != nil {
		return models.WeeklyReflection{}, fmt.Errorf("failed to encode highlights: %w", err)
	}
	habitsJSON, err := json.Marshal(r.Habits)
	if err != nil {
		return models.WeeklyReflection{}, fmt.Errorf("failed to encode habit summary: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO weekly_reflections (id, week_start, week_end, summary, highlights, habits, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(week_start) DO UPDATE SET
			week_end = excluded.week_end,
			summary = excluded.summary,
			highlights = excluded.highlights,
			habits = excluded.habits,
			updated_at = excluded.updated_at`,
		id, r.WeekStart, r.WeekEnd, r.Summary, string(highlightsJSON), string(habitsJSON), now, now)
	if err != nil {
		return models.WeeklyReflection{}, fmt.Errorf("failed to save reflection for week %s: %w", r.WeekStart, err)
	}

	return s.GetWeeklyReflection(r.WeekStart)
}
