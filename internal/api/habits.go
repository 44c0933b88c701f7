package api

import (
	"fmt"
	"strconv"
	"time"
)

// GetHabits returns all habits in display order.
func (c *Client) GetHabits() ([]Habit, error) {
	habits := make([]Habit, 0)
	if err := c.Get("/api/habits", &habits); err != nil {
		return nil, fmt.Errorf("failed to get habits: %w", err)
	}
	return habits, nil
}

// CreateHabit creates a new habit.
func (c *Client) CreateHabit(req CreateHabitRequest) (*Habit, error) {
	var habit Habit
	if err := c.Post("/api/habits", req, &habit); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}
	return &habit, nil
}

// DeleteHabit deletes a habit and its completions.
func (c *Client) DeleteHabit(id int64) error {
	var resp SuccessResponse
	if err := c.Delete("/api/habits/"+strconv.FormatInt(id, 10), &resp); err != nil {
		return fmt.Errorf("failed to delete habit %d: %w", id, err)
	}
	return nil
}

// ToggleHabit flips the completion of a habit on date and returns the new state.
func (c *Client) ToggleHabit(id int64, date string) (bool, error) {
	var resp ToggleResponse
	path := "/api/habits/" + strconv.FormatInt(id, 10) + "/toggle"
	if err := c.Post(path, ToggleHabitRequest{Date: date}, &resp); err != nil {
		return false, fmt.Errorf("failed to toggle habit %d on %s: %w", id, date, err)
	}
	return resp.Completed, nil
}

// ReorderHabits persists a new display order.
func (c *Client) ReorderHabits(ids []int64) error {
	if ids == nil {
		ids = []int64{}
	}
	var resp SuccessResponse
	if err := c.Post("/api/habits/reorder", ReorderHabitsRequest{HabitIDs: ids}, &resp); err != nil {
		return fmt.Errorf("failed to reorder habits: %w", err)
	}
	return nil
}

// GetCalendar returns the completed day numbers per habit for a month.
func (c *Client) GetCalendar(year int, month time.Month) (CalendarMonth, error) {
	cal := make(CalendarMonth)
	path := fmt.Sprintf("/api/habits/calendar/%d/%d", year, int(month))
	if err := c.Get(path, &cal); err != nil {
		return nil, fmt.Errorf("failed to get calendar %d-%02d: %w", year, int(month), err)
	}
	return cal, nil
}
