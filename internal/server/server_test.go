package server

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hy4ri/habitflow/internal/api"
	"github.com/hy4ri/habitflow/internal/store"
)

func newTestServer(t *testing.T) (*httptest.Server, *api.Client) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "server.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	st.SetClock(func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.Local) })
	t.Cleanup(func() { st.Close() })

	ts := httptest.NewServer(New("127.0.0.1:0", st, nil).Handler())
	t.Cleanup(ts.Close)
	return ts, api.NewClient(ts.URL)
}

func TestHealth(t *testing.T) {
	ts, client := newTestServer(t)
	if err := client.Health(); err != nil {
		t.Fatalf("Health: %v", err)
	}
	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("metrics status = %d", resp.StatusCode)
	}
}

func TestHabitEndpoints(t *testing.T) {
	_, client := newTestServer(t)

	a, err := client.CreateHabit(api.CreateHabitRequest{Name: "Read", Icon: "📚", Color: "#22C55E"})
	if err != nil {
		t.Fatalf("CreateHabit: %v", err)
	}
	b, err := client.CreateHabit(api.CreateHabitRequest{Name: "Run"})
	if err != nil {
		t.Fatalf("CreateHabit: %v", err)
	}
	if b.Icon != api.DefaultHabitIcon {
		t.Errorf("icon = %q, want default", b.Icon)
	}

	completed, err := client.ToggleHabit(a.ID, "2026-10-19")
	if err != nil || !completed {
		t.Fatalf("ToggleHabit = %v, %v", completed, err)
	}
	cal, err := client.GetCalendar(2026, time.October)
	if err != nil {
		t.Fatalf("GetCalendar: %v", err)
	}
	if !cal.IsCompleted(a.ID, 19) || cal.IsCompleted(b.ID, 19) {
		t.Errorf("unexpected calendar %v", cal)
	}

	if err := client.ReorderHabits([]int64{b.ID, a.ID}); err != nil {
		t.Fatalf("ReorderHabits: %v", err)
	}
	habits, err := client.GetHabits()
	if err != nil {
		t.Fatalf("GetHabits: %v", err)
	}
	if len(habits) != 2 || habits[0].ID != b.ID {
		t.Errorf("reorder not applied: %+v", habits)
	}

	if err := client.DeleteHabit(a.ID); err != nil {
		t.Fatalf("DeleteHabit: %v", err)
	}
	err = client.DeleteHabit(a.ID)
	apiErr, ok := api.IsAPIError(err)
	if !ok || !apiErr.IsNotFound() {
		t.Errorf("second delete: got %v, want 404", err)
	}
}

func TestTaskEndpoints(t *testing.T) {
	_, client := newTestServer(t)

	start, end := "09:00", "10:30"
	task, err := client.CreateTask(api.CreateTaskRequest{
		Title: "Standup", Date: "2026-10-19", Priority: api.PriorityHigh, StartTime: &start, EndTime: &end,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.TimeRange() != "09:00–10:30" {
		t.Errorf("TimeRange = %q", task.TimeRange())
	}

	_, err = client.CreateTask(api.CreateTaskRequest{Title: "", Date: "2026-10-19"})
	apiErr, ok := api.IsAPIError(err)
	if !ok || !apiErr.IsBadRequest() {
		t.Errorf("empty title: got %v, want 400", err)
	}

	done, err := client.ToggleTask(task.ID)
	if err != nil || !done {
		t.Fatalf("ToggleTask = %v, %v", done, err)
	}
	tasks, err := client.GetTasks("2026-10-19")
	if err != nil {
		t.Fatalf("GetTasks: %v", err)
	}
	if len(tasks) != 1 || !tasks[0].Completed {
		t.Errorf("unexpected tasks %+v", tasks)
	}
	if err := client.DeleteTask(task.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	tasks, _ = client.GetTasks("2026-10-19")
	if len(tasks) != 0 {
		t.Errorf("tasks after delete = %d", len(tasks))
	}
}

func TestReportEndpoints(t *testing.T) {
	_, client := newTestServer(t)
	h, _ := client.CreateHabit(api.CreateHabitRequest{Name: "Read"})
	client.ToggleHabit(h.ID, "2026-10-18")
	client.ToggleHabit(h.ID, "2026-10-19")

	stats, err := client.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.Streak != 2 || stats.CompletionRate != 100 || len(stats.WeeklyData) != 7 {
		t.Errorf("unexpected stats %+v", stats)
	}

	week, err := client.GetWeeklyStats("2026-10-19")
	if err != nil {
		t.Fatalf("GetWeeklyStats: %v", err)
	}
	if len(week) != 7 || week[0].Percentage != 100 || week[1].Percentage != 0 {
		t.Errorf("unexpected week %+v", week)
	}

	a, err := client.GetAnalytics()
	if err != nil {
		t.Fatalf("GetAnalytics: %v", err)
	}
	if a.BestStreak != 2 || len(a.HabitStreaks) != 1 {
		t.Errorf("unexpected analytics %+v", a)
	}

	m, err := client.GetMonthlyTrends(2026, time.October)
	if err != nil {
		t.Fatalf("GetMonthlyTrends: %v", err)
	}
	if len(m.DailyData) != 31 {
		t.Errorf("monthly days = %d", len(m.DailyData))
	}

	r, err := client.GetDailyReport("2026-10-19")
	if err != nil {
		t.Fatalf("GetDailyReport: %v", err)
	}
	if r.HabitRate != 100 || r.TasksTotal != 0 {
		t.Errorf("unexpected daily report %+v", r)
	}
}

func TestSettingsEndpoints(t *testing.T) {
	_, client := newTestServer(t)
	if v, err := client.GetSetting("theme"); err != nil || v != "" {
		t.Fatalf("unset setting = %q, %v", v, err)
	}
	if err := client.SetSetting("theme", "light"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}
	if v, _ := client.GetSetting("theme"); v != "light" {
		t.Errorf("theme = %q", v)
	}
}

func TestBadRequests(t *testing.T) {
	ts, _ := newTestServer(t)
	tests := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodGet, "/api/habits/calendar/2026/13", "", http.StatusBadRequest},
		{http.MethodPost, "/api/habits/abc/toggle", `{}`, http.StatusBadRequest},
		{http.MethodPost, "/api/habits/42/toggle", `{"date":"2026-10-19"}`, http.StatusNotFound},
		{http.MethodPost, "/api/habits", `not json`, http.StatusBadRequest},
		{http.MethodGet, "/api/tasks/yesterday", "", http.StatusBadRequest},
		{http.MethodPost, "/api/tasks/7/toggle", "", http.StatusNotFound},
		{http.MethodGet, "/api/stats/weekly?start_date=bad", "", http.StatusBadRequest},
	}
	for _, tt := range tests {
		req, _ := http.NewRequest(tt.method, ts.URL+tt.path, strings.NewReader(tt.body))
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("%s %s: %v", tt.method, tt.path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != tt.want {
			t.Errorf("%s %s = %d, want %d", tt.method, tt.path, resp.StatusCode, tt.want)
		}
	}
}
