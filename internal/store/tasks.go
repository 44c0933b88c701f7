package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/hy4ri/habitflow/internal/api"
	"github.com/hy4ri/habitflow/internal/dateutil"
)

const taskColumns = `id, title, date, completed, priority, start_time, end_time, created_at`

// Tasks are listed highest priority first, then in creation order.
const taskOrder = `CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END, created_at, id`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (api.Task, error) {
	var (
		t          api.Task
		start, end sql.NullString
		priority   string
	)
	if err := row.Scan(&t.ID, &t.Title, &t.Date, &t.Completed, &priority, &start, &end, &t.CreatedAt); err != nil {
		return t, err
	}
	t.Priority = api.Priority(priority)
	if start.Valid && start.String != "" {
		t.StartTime = &start.String
	}
	if end.Valid && end.String != "" {
		t.EndTime = &end.String
	}
	return t, nil
}

// TasksForDate returns the tasks scheduled on date.
func (s *Store) TasksForDate(date string) ([]api.Task, error) {
	if _, err := dateutil.ParseDate(date); err != nil {
		return nil, invalid("%v", err)
	}
	rows, err := s.db.Query(`SELECT `+taskColumns+` FROM tasks WHERE date = ? ORDER BY `+taskOrder, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]api.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func normalizeClock(p *string) (*string, error) {
	if p == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil, nil
	}
	if !dateutil.ValidClock(v) {
		return nil, invalid("time %q must be HH:MM", v)
	}
	return &v, nil
}

// CreateTask validates and inserts a task.
func (s *Store) CreateTask(req api.CreateTaskRequest) (*api.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, invalid("task title is required")
	}
	if _, err := dateutil.ParseDate(req.Date); err != nil {
		return nil, invalid("%v", err)
	}
	priority := req.Priority
	if priority == "" {
		priority = api.PriorityMedium
	}
	if !priority.Valid() {
		return nil, invalid("unknown priority %q", priority)
	}
	start, err := normalizeClock(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := normalizeClock(req.EndTime)
	if err != nil {
		return nil, err
	}

	res, err := s.db.Exec(
		`INSERT INTO tasks (title, date, priority, start_time, end_time) VALUES (?, ?, ?, ?, ?)`,
		title, req.Date, string(priority), start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read task id: %w", err)
	}
	return s.GetTask(id)
}

// GetTask returns a task by id.
func (s *Store) GetTask(id int64) (*api.Task, error) {
	t, err := scanTask(s.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read task: %w", err)
	}
	return &t, nil
}

// ToggleTask flips a task's completed flag and returns the new state.
func (s *Store) ToggleTask(id int64) (bool, error) {
	var completed bool
	err := s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(`UPDATE tasks SET completed = 1 - completed WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to toggle task: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("task %d: %w", id, ErrNotFound)
		}
		return tx.QueryRow(`SELECT completed FROM tasks WHERE id = ?`, id).Scan(&completed)
	})
	return completed, err
}

// DeleteTask removes a task.
func (s *Store) DeleteTask(id int64) error {
	res, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return nil
}
