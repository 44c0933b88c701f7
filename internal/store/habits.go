package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hy4ri/habitflow/internal/api"
	"github.com/hy4ri/habitflow/internal/dateutil"
)

// ListHabits returns all habits ordered by sort_order, then id.
func (s *Store) ListHabits() ([]api.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, name, icon, color, sort_order, created_at
		FROM habits
		ORDER BY sort_order, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	defer rows.Close()

	habits := make([]api.Habit, 0)
	for rows.Next() {
		var h api.Habit
		if err := rows.Scan(&h.ID, &h.Name, &h.Icon, &h.Color, &h.SortOrder, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

// CreateHabit inserts a habit at the end of the display order.
func (s *Store) CreateHabit(name, icon, color string) (*api.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("habit name is required")
	}
	if strings.TrimSpace(icon) == "" {
		icon = api.DefaultHabitIcon
	}
	if strings.TrimSpace(color) == "" {
		color = api.DefaultHabitColor
	}

	var h api.Habit
	err := s.withTx(func(tx *sql.Tx) error {
		var next int
		if err := tx.QueryRow(`SELECT COALESCE(MAX(sort_order), -1) + 1 FROM habits`).Scan(&next); err != nil {
			return fmt.Errorf("failed to compute sort order: %w", err)
		}
		res, err := tx.Exec(
			`INSERT INTO habits (name, icon, color, sort_order) VALUES (?, ?, ?, ?)`,
			name, icon, color, next,
		)
		if err != nil {
			return fmt.Errorf("failed to insert habit: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read habit id: %w", err)
		}
		return tx.QueryRow(
			`SELECT id, name, icon, color, sort_order, created_at FROM habits WHERE id = ?`, id,
		).Scan(&h.ID, &h.Name, &h.Icon, &h.Color, &h.SortOrder, &h.CreatedAt)
	})
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// DeleteHabit removes a habit and all its completions.
func (s *Store) DeleteHabit(id int64) error {
	return s.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM habit_completions WHERE habit_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete completions: %w", err)
		}
		res, err := tx.Exec(`DELETE FROM habits WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete habit: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("habit %d: %w", id, ErrNotFound)
		}
		return nil
	})
}

// ReorderHabits sets sort_order to each id's index in ids.
// Ids that do not exist are ignored.
func (s *Store) ReorderHabits(ids []int64) error {
	return s.withTx(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`UPDATE habits SET sort_order = ? WHERE id = ?`)
		if err != nil {
			return fmt.Errorf("failed to prepare reorder: %w", err)
		}
		defer stmt.Close()
		for i, id := range ids {
			if _, err := stmt.Exec(i, id); err != nil {
				return fmt.Errorf("failed to reorder habit %d: %w", id, err)
			}
		}
		return nil
	})
}

// ToggleHabit flips the completion of habit id on date and returns the new state.
func (s *Store) ToggleHabit(id int64, date string) (bool, error) {
	if _, err := dateutil.ParseDate(date); err != nil {
		return false, invalid("%v", err)
	}

	var completed bool
	err := s.withTx(func(tx *sql.Tx) error {
		var exists int
		if err := tx.QueryRow(`SELECT COUNT(*) FROM habits WHERE id = ?`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to look up habit: %w", err)
		}
		if exists == 0 {
			return fmt.Errorf("habit %d: %w", id, ErrNotFound)
		}

		res, err := tx.Exec(`DELETE FROM habit_completions WHERE habit_id = ? AND date = ?`, id, date)
		if err != nil {
			return fmt.Errorf("failed to clear completion: %w", err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			completed = false
			return nil
		}
		if _, err := tx.Exec(`INSERT INTO habit_completions (habit_id, date) VALUES (?, ?)`, id, date); err != nil {
			return fmt.Errorf("failed to record completion: %w", err)
		}
		completed = true
		return nil
	})
	return completed, err
}

// IsHabitCompleted reports whether habit id has a completion on date.
func (s *Store) IsHabitCompleted(id int64, date string) (bool, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM habit_completions WHERE habit_id = ? AND date = ?`, id, date,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to read completion: %w", err)
	}
	return n > 0, nil
}

// CalendarMonth returns completed day numbers per habit for a month.
func (s *Store) CalendarMonth(year int, month time.Month) (api.CalendarMonth, error) {
	if month < time.January || month > time.December {
		return nil, invalid("month %d out of range", int(month))
	}
	prefix := fmt.Sprintf("%04d-%02d-", year, int(month))
	rows, err := s.db.Query(
		`SELECT habit_id, date FROM habit_completions WHERE date LIKE ? ORDER BY habit_id, date`,
		prefix+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read calendar: %w", err)
	}
	defer rows.Close()

	cal := make(api.CalendarMonth)
	for rows.Next() {
		var (
			habitID int64
			date    string
		)
		if err := rows.Scan(&habitID, &date); err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		day, err := strconv.Atoi(strings.TrimPrefix(date, prefix))
		if err != nil {
			continue
		}
		cal[habitID] = append(cal[habitID], day)
	}
	return cal, rows.Err()
}
