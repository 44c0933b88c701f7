package api

import (
	"fmt"
	"net/url"
	"strconv"
)

// GetTasks returns the tasks scheduled for date (YYYY-MM-DD), in server order.
func (c *Client) GetTasks(date string) ([]Task, error) {
	tasks := make([]Task, 0)
	if err := c.Get("/api/tasks/"+url.PathEscape(date), &tasks); err != nil {
		return nil, fmt.Errorf("failed to get tasks for %s: %w", date, err)
	}
	return tasks, nil
}

// CreateTask creates a new task.
func (c *Client) CreateTask(req CreateTaskRequest) (*Task, error) {
	var task Task
	if err := c.Post("/api/tasks", req, &task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

// ToggleTask flips a task's completed flag and returns the new state.
func (c *Client) ToggleTask(id int64) (bool, error) {
	var resp ToggleResponse
	if err := c.Post("/api/tasks/"+strconv.FormatInt(id, 10)+"/toggle", nil, &resp); err != nil {
		return false, fmt.Errorf("failed to toggle task %d: %w", id, err)
	}
	return resp.Completed, nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(id int64) error {
	var resp SuccessResponse
	if err := c.Delete("/api/tasks/"+strconv.FormatInt(id, 10), &resp); err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return nil
}
