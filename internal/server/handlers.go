package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hy4ri/habitflow/internal/api"
	"github.com/hy4ri/habitflow/internal/dateutil"
	"github.com/hy4ri/habitflow/internal/metrics"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "db_not_ready"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Stats

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats()
	if err != nil {
		s.writeStoreError(w, "stats", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleWeeklyStats(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start_date")
	if start == "" {
		start = dateutil.FormatDate(dateutil.Monday(dateutil.Today()))
	}
	days, err := s.store.WeeklyData(start)
	if err != nil {
		s.writeStoreError(w, "weekly_stats", err)
		return
	}
	writeJSON(w, http.StatusOK, days)
}

// Habits

func (s *Server) handleListHabits(w http.ResponseWriter, r *http.Request) {
	habits, err := s.store.ListHabits()
	if err != nil {
		s.writeStoreError(w, "list_habits", err)
		return
	}
	writeJSON(w, http.StatusOK, habits)
}

func (s *Server) handleCreateHabit(w http.ResponseWriter, r *http.Request) {
	var req api.CreateHabitRequest
	if err := decodeBody(r, &req); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "Invalid habit data")
		return
	}
	habit, err := s.store.CreateHabit(req.Name, req.Icon, req.Color)
	if err != nil {
		s.writeStoreError(w, "create_habit", err)
		return
	}
	writeJSON(w, http.StatusCreated, habit)
}

func (s *Server) handleDeleteHabit(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.DeleteHabit(id); err != nil {
		s.writeStoreError(w, "delete_habit", err)
		return
	}
	writeJSON(w, http.StatusOK, api.SuccessResponse{Success: true})
}

func (s *Server) handleReorderHabits(w http.ResponseWriter, r *http.Request) {
	var req api.ReorderHabitsRequest
	if err := decodeBody(r, &req); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "Invalid reorder data")
		return
	}
	if err := s.store.ReorderHabits(req.HabitIDs); err != nil {
		s.writeStoreError(w, "reorder_habits", err)
		return
	}
	writeJSON(w, http.StatusOK, api.SuccessResponse{Success: true})
}

func (s *Server) handleToggleHabit(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	var req api.ToggleHabitRequest
	if err := decodeBody(r, &req); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "Invalid toggle data")
		return
	}
	if strings.TrimSpace(req.Date) == "" {
		req.Date = dateutil.FormatDate(dateutil.Today())
	}
	completed, err := s.store.ToggleHabit(id, req.Date)
	if err != nil {
		s.writeStoreError(w, "toggle_habit", err)
		return
	}
	metrics.HabitToggles.WithLabelValues(metrics.ToggleResult(completed)).Inc()
	writeJSON(w, http.StatusOK, api.ToggleResponse{Completed: completed})
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonthParams(r)
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	cal, err := s.store.CalendarMonth(year, month)
	if err != nil {
		s.writeStoreError(w, "calendar", err)
		return
	}
	writeJSON(w, http.StatusOK, cal)
}

// Tasks

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.store.TasksForDate(chi.URLParam(r, "date"))
	if err != nil {
		s.writeStoreError(w, "list_tasks", err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req api.CreateTaskRequest
	if err := decodeBody(r, &req); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "Invalid task data")
		return
	}
	task, err := s.store.CreateTask(req)
	if err != nil {
		s.writeStoreError(w, "create_task", err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleToggleTask(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	completed, err := s.store.ToggleTask(id)
	if err != nil {
		s.writeStoreError(w, "toggle_task", err)
		return
	}
	metrics.TaskToggles.WithLabelValues(metrics.ToggleResult(completed)).Inc()
	writeJSON(w, http.StatusOK, api.ToggleResponse{Completed: completed})
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.DeleteTask(id); err != nil {
		s.writeStoreError(w, "delete_task", err)
		return
	}
	writeJSON(w, http.StatusOK, api.SuccessResponse{Success: true})
}

// Reports

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	a, err := s.store.Analytics()
	if err != nil {
		s.writeStoreError(w, "analytics", err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleMonthlyTrends(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonthParams(r)
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	m, err := s.store.MonthlyTrends(year, month)
	if err != nil {
		s.writeStoreError(w, "monthly_trends", err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleDailyReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.store.DailyReport(chi.URLParam(r, "date"))
	if err != nil {
		s.writeStoreError(w, "daily_report", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Settings

func (s *Server) handleGetSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	value, err := s.store.GetSetting(key)
	if err != nil {
		s.writeStoreError(w, "get_setting", err)
		return
	}
	writeJSON(w, http.StatusOK, api.Setting{Key: key, Value: value})
}

func (s *Server) handleSetSetting(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Value string `json:"value"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "Invalid setting data")
		return
	}
	if err := s.store.SetSetting(chi.URLParam(r, "key"), body.Value); err != nil {
		s.writeStoreError(w, "set_setting", err)
		return
	}
	writeJSON(w, http.StatusOK, api.SuccessResponse{Success: true})
}
