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

func scanMonthlyGoal(row interface{ Scan(...any) error }) (models.MonthlyGoal, error) {
	var g models.MonthlyGoal
	var goalsJSON string
	var completed int
	var createdAt, updatedAt string

	err := row.Scan(&g.ID, &g.Month, &goalsJSON, &completed, &g.Reflection, &createdAt, &updatedAt)
	if err != nil {
		return models.MonthlyGoal{}, err
	}

	if err := json.Unmarshal([]byte(goalsJSON), &g.Goals); err != nil {
		return models.MonthlyGoal{}, fmt.Errorf("failed to parse goals for month %s: %w", g.Month, err)
	}
	g.Completed = completed != 0

	g.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.MonthlyGoal{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	g.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.MonthlyGoal{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return g, nil
}

func (s *Store) GetMonthlyGoal(month string) (models.MonthlyGoal, error) {
	row := s.db.QueryRow(`
		SELECT id, month, goals, completed, reflection, created_at, updated_at
		FROM monthly_goals WHERE month = ?`, month)

	g, err := scanMonthlyGoal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MonthlyGoal{}, storage.ErrNotFound
		}
		return models.MonthlyGoal{}, err
	}
	return g, nil
}

func (s *Store) GetAllMonthlyGoals() ([]models.MonthlyGoal, error) {
	rows, err := s.db.Query(`
		SELECT id, month, goals, completed, reflection, created_at, updated_at
		FROM monthly_goals ORDER BY month`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.MonthlyGoal
	for rows.Next() {
		g, err := scanMonthlyGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}

	return goals, rows.Err()
}

func (s *Store) SaveMonthlyGoal(goal models.MonthlyGoal) (models.MonthlyGoal, error) {
	now := time.Now().Format(time.RFC3339)
	id := goal.ID
	if id == "" {
		id = uuid.New().String()
	}

	goalsJSON, err := json.Marshal(goal.Goals)
	if err != nil {
		return models.MonthlyGoal{}, fmt.Errorf("failed to encode goals: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO monthly_goals (id, month, goals, completed, reflection, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(month) DO UPDATE SET
			goals = excluded.goals,
			completed = excluded.completed,
			reflection = excluded.reflection,
			updated_at = excluded.updated_at`,
		id, goal.Month, string(goalsJSON), boolToInt(goal.Completed), goal.Reflection, now, now)
	if err != nil {
		return models.MonthlyGoal{}, fmt.Errorf("failed to save monthly goal for %s: %w", goal.Month, err)
	}

	return s.GetMonthlyGoal(goal.Month)
}
