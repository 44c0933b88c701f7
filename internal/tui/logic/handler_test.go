package logic

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/habitflow/internal/api"
	"github.com/hy4ri/habitflow/internal/config"
	"github.com/hy4ri/habitflow/internal/sound"
	"github.com/hy4ri/habitflow/internal/tui/state"
)

var fixedNow = time.Date(2026, time.October, 19, 10, 0, 0, 0, time.Local)

// countingServer answers every endpoint the TUI calls and records requests.
type countingServer struct {
	mu       sync.Mutex
	requests []string
	bodies   map[string]string
	habits   string
	tasks    string
}

func (c *countingServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	key := r.Method + " " + r.URL.Path
	if r.URL.RawQuery != "" {
		key += "?" + r.URL.RawQuery
	}

	c.mu.Lock()
	c.requests = append(c.requests, key)
	c.bodies[r.Method+" "+r.URL.Path] = string(body)
	habits, tasks := c.habits, c.tasks
	c.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	path := r.URL.Path
	switch {
	case r.Method == http.MethodDelete, strings.HasSuffix(path, "/reorder"):
		io.WriteString(w, `{"success":true}`)
	case strings.HasPrefix(path, "/api/habits/calendar/"):
		io.WriteString(w, `{}`)
	case path == "/api/habits":
		io.WriteString(w, habits)
	case strings.HasPrefix(path, "/api/tasks/"):
		io.WriteString(w, tasks)
	case path == "/api/stats/weekly":
		io.WriteString(w, `[]`)
	case path == "/api/stats":
		io.WriteString(w, `{"streak":1,"weekly_data":[]}`)
	case path == "/api/reports/analytics":
		io.WriteString(w, `{"best_streak":2,"habit_streaks":[]}`)
	case strings.HasPrefix(path, "/api/reports/monthly/"):
		io.WriteString(w, `{"year":2026,"month":10,"daily_data":[]}`)
	case strings.HasPrefix(path, "/api/reports/daily/"):
		io.WriteString(w, `{"date":"2026-10-19","habits":[],"tasks":[]}`)
	case strings.HasPrefix(path, "/api/settings/"):
		if r.Method == http.MethodPost {
			io.WriteString(w, `{"success":true}`)
		} else {
			io.WriteString(w, `{"key":"focus_sessions","value":"4"}`)
		}
	default:
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":"not found"}`)
	}
}

func (c *countingServer) calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.requests...)
}

func (c *countingServer) body(key string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bodies[key]
}

type testEnv struct {
	h      *Handler
	server *countingServer
	cues   *[]float64
}

func newTestHandler(t *testing.T) testEnv {
	t.Helper()
	cs := &countingServer{
		bodies: map[string]string{},
		habits: `[{"id":1,"name":"Read"},{"id":2,"name":"Run"},{"id":3,"name":"Write"},{"id":4,"name":"Sleep"}]`,
		tasks:  `[]`,
	}
	srv := httptest.NewServer(cs)
	t.Cleanup(srv.Close)

	var mu sync.Mutex
	var beeps []float64
	snd := sound.NewManager(true, nil)
	snd.SetBeepFunc(func(freq float64, _ int) error {
		mu.Lock()
		beeps = append(beeps, freq)
		mu.Unlock()
		return nil
	})

	s := state.New(api.NewClient(srv.URL), config.DefaultConfig(), nil, snd, nil)
	s.Now = func() time.Time { return fixedNow }
	s.TaskDate = s.Today()
	s.CalendarMonth = time.Date(2026, time.October, 1, 0, 0, 0, 0, time.Local)
	s.ReportMonth = s.CalendarMonth
	s.DayCursor = 19

	h := NewHandler(s)
	h.notify = func(string, string) error { return nil }
	return testEnv{h: h, server: cs, cues: &beeps}
}

// runAll executes cmd, flattening batches, and returns the non-nil messages.
func runAll(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, runAll(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// deliver runs cmd and feeds its messages back into the handler once.
func deliver(h *Handler, cmd tea.Cmd) []tea.Cmd {
	var next []tea.Cmd
	for _, msg := range runAll(cmd) {
		next = append(next, h.Update(msg))
	}
	return next
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func press(h *Handler, keys ...string) tea.Cmd {
	var last tea.Cmd
	for _, k := range keys {
		last = h.Update(keyMsg(k))
	}
	return last
}

func TestNavigateToReturnsOneLoader(t *testing.T) {
	env := newTestHandler(t)
	h := env.h

	msgs := runAll(h.NavigateTo(state.PageTasks))
	if h.CurrentPage != state.PageTasks {
		t.Fatalf("CurrentPage = %v", h.CurrentPage)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected one loader message, got %d: %#v", len(msgs), msgs)
	}
	if _, ok := msgs[0].(tasksLoadedMsg); !ok {
		t.Fatalf("expected tasksLoadedMsg, got %T", msgs[0])
	}
	if calls := env.server.calls(); !reflect.DeepEqual(calls, []string{"GET /api/tasks/2026-10-19"}) {
		t.Errorf("unexpected calls %v", calls)
	}
	if len(*env.cues) == 0 || (*env.cues)[0] != sound.Cues[sound.CueNavigate][0].Freq {
		t.Errorf("expected navigate cue, got %v", *env.cues)
	}
}

func TestEmptyTaskListIssuesNoFurtherCalls(t *testing.T) {
	env := newTestHandler(t)
	h := env.h

	for _, cmd := range deliver(h, h.NavigateTo(state.PageTasks)) {
		if cmd != nil {
			t.Fatal("loading an empty list should not schedule more work")
		}
	}
	if h.Tasks == nil || len(h.Tasks) != 0 {
		t.Fatalf("expected empty task list, got %v", h.Tasks)
	}

	for _, k := range []string{"x", "d", "d", "j", "k", "G"} {
		if cmd := press(h, k); cmd != nil {
			runAll(cmd)
		}
	}
	if calls := env.server.calls(); len(calls) != 1 {
		t.Errorf("expected a single request, got %v", calls)
	}
	if h.Confirm != nil {
		t.Error("delete on an empty list should not ask for confirmation")
	}
}

func TestManageReorderPersistsFinalOrder(t *testing.T) {
	env := newTestHandler(t)
	h := env.h
	h.CurrentPage = state.PageHabits
	h.Habits = []api.Habit{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}

	press(h, "M")
	if !h.Manage.Open {
		t.Fatal("manage modal did not open")
	}

	// Drag 4 onto 1, then 1 onto 3.
	press(h, "j", "j", "j", "enter", "k", "k", "k", "enter")
	if got := h.Manage.IDs(); !reflect.DeepEqual(got, []int64{4, 1, 2, 3}) {
		t.Fatalf("after first drop: %v", got)
	}
	press(h, "j", "enter", "j", "j", "enter")
	if got := h.Manage.IDs(); !reflect.DeepEqual(got, []int64{4, 2, 3, 1}) {
		t.Fatalf("after second drop: %v", got)
	}

	msgs := runAll(press(h, "esc"))
	if h.Manage.Open {
		t.Fatal("esc should close the modal")
	}

	var req api.ReorderHabitsRequest
	if err := json.Unmarshal([]byte(env.server.body("POST /api/habits/reorder")), &req); err != nil {
		t.Fatalf("reorder body: %v", err)
	}
	if !reflect.DeepEqual(req.HabitIDs, []int64{4, 2, 3, 1}) {
		t.Errorf("persisted order %v", req.HabitIDs)
	}

	reloaded := false
	for _, m := range msgs {
		if _, ok := m.(habitsReorderedMsg); ok {
			reloaded = true
		}
	}
	if !reloaded {
		t.Error("expected habitsReorderedMsg after close")
	}
}

func TestManageEscCancelsDragBeforeClosing(t *testing.T) {
	env := newTestHandler(t)
	h := env.h
	h.CurrentPage = state.PageHabits
	h.Habits = []api.Habit{{ID: 1}, {ID: 2}}

	press(h, "M", "enter")
	if !h.Manage.IsDragging() {
		t.Fatal("expected drag to start")
	}
	press(h, "esc")
	if !h.Manage.Open || h.Manage.IsDragging() {
		t.Fatal("first esc should only cancel the drag")
	}
	runAll(press(h, "q"))
	if h.Manage.Open {
		t.Fatal("q should close the modal")
	}
	if calls := env.server.calls(); len(calls) != 1 || calls[0] != "POST /api/habits/reorder" {
		t.Errorf("expected only the reorder call, got %v", calls)
	}
}

func TestDeleteFromManageListDoesNotReload(t *testing.T) {
	env := newTestHandler(t)
	h := env.h
	h.CurrentPage = state.PageHabits
	h.Habits = []api.Habit{{ID: 1, Name: "Read"}, {ID: 2, Name: "Run"}}

	press(h, "M", "d", "d")
	if h.Confirm == nil || h.Confirm.ID != 1 {
		t.Fatalf("expected confirm for habit 1, got %+v", h.Confirm)
	}

	cmd := press(h, "y")
	if h.Confirm != nil {
		t.Fatal("confirm should be resolved")
	}
	if len(h.Habits) != 1 || h.Habits[0].ID != 2 {
		t.Errorf("habit not removed from memory: %v", h.Habits)
	}
	if got := h.Manage.IDs(); !reflect.DeepEqual(got, []int64{2}) {
		t.Errorf("habit not removed from manage list: %v", got)
	}

	for _, next := range deliver(h, cmd) {
		if next != nil {
			t.Error("deleting should not schedule a reload")
		}
	}
	if calls := env.server.calls(); !reflect.DeepEqual(calls, []string{"DELETE /api/habits/1"}) {
		t.Errorf("unexpected calls %v", calls)
	}
}

func TestConfirmCancelKeepsHabit(t *testing.T) {
	env := newTestHandler(t)
	h := env.h
	h.CurrentPage = state.PageHabits
	h.Habits = []api.Habit{{ID: 1, Name: "Read"}}

	press(h, "d", "d")
	if h.Confirm == nil {
		t.Fatal("expected confirm modal")
	}
	runAll(press(h, "n"))
	if h.Confirm != nil || len(h.Habits) != 1 {
		t.Errorf("cancel should keep the habit, got %v", h.Habits)
	}
	if calls := env.server.calls(); len(calls) != 0 {
		t.Errorf("unexpected calls %v", calls)
	}
}

func TestWeekChangeFetchesOnlyWeekly(t *testing.T) {
	env := newTestHandler(t)
	h := env.h
	h.CurrentPage = state.PageDashboard

	deliver(h, press(h, "["))
	if h.WeekOffset != -1 {
		t.Fatalf("WeekOffset = %d", h.WeekOffset)
	}
	want := []string{"GET /api/stats/weekly?start_date=2026-10-12"}
	if calls := env.server.calls(); !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}

	deliver(h, h.LoadDashboard())
	if h.WeekOffset != 0 {
		t.Errorf("LoadDashboard should reset the week offset, got %d", h.WeekOffset)
	}
}

func TestPrevMonthWrapsYear(t *testing.T) {
	env := newTestHandler(t)
	h := env.h
	h.CurrentPage = state.PageHabits
	h.CalendarMonth = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local)

	deliver(h, press(h, "["))
	if h.CalendarMonth.Year() != 2025 || h.CalendarMonth.Month() != time.December {
		t.Fatalf("CalendarMonth = %v", h.CalendarMonth)
	}
	calls := env.server.calls()
	if len(calls) != 2 {
		t.Fatalf("expected habits and calendar requests, got %v", calls)
	}
	found := false
	for _, c := range calls {
		if c == "GET /api/habits/calendar/2025/12" {
			found = true
		}
	}
	if !found {
		t.Errorf("calendar for 2025/12 not requested: %v", calls)
	}
	if len(h.Habits) != 4 {
		t.Errorf("expected habits loaded, got %d", len(h.Habits))
	}
}

func TestToggleHabitReloadsCalendar(t *testing.T) {
	env := newTestHandler(t)
	h := env.h
	h.CurrentPage = state.PageHabits
	h.Habits = []api.Habit{{ID: 1, Name: "Read"}}

	// The fake server has no toggle route, so the toggle surfaces an error.
	deliver(h, press(h, "x"))
	if h.Err == nil {
		t.Fatal("expected error from unknown route")
	}

	h.DayCursor = 20
	if cmd := press(h, "x"); cmd != nil {
		runAll(cmd)
	}
	if !strings.Contains(h.StatusMsg, "future") {
		t.Errorf("expected future-day alert, got %q", h.StatusMsg)
	}
	if calls := env.server.calls(); len(calls) != 1 {
		t.Errorf("future toggle should not hit the network: %v", calls)
	}

	next := h.handleHabitToggled(habitToggledMsg{name: "Read", completed: true})
	msgs := runAll(next)
	if len(msgs) != 1 {
		t.Fatalf("expected calendar reload, got %v", msgs)
	}
	if _, ok := msgs[0].(calendarLoadedMsg); !ok {
		t.Errorf("expected calendarLoadedMsg, got %T", msgs[0])
	}
}

func TestEmptyHabitNameAlertsWithoutNetwork(t *testing.T) {
	env := newTestHandler(t)
	h := env.h
	h.CurrentPage = state.PageHabits

	press(h, "a")
	if h.HabitForm == nil {
		t.Fatal("habit form did not open")
	}
	runAll(press(h, "enter"))
	if h.HabitForm == nil {
		t.Error("form should stay open after a validation failure")
	}
	if !strings.Contains(h.StatusMsg, state.ErrNameRequired.Error()) {
		t.Errorf("StatusMsg = %q", h.StatusMsg)
	}
	if calls := env.server.calls(); len(calls) != 0 {
		t.Errorf("unexpected calls %v", calls)
	}
}

func TestDatePickerSetsTaskDate(t *testing.T) {
	env := newTestHandler(t)
	h := env.h
	h.CurrentPage = state.PageTasks

	press(h, "p")
	if h.DatePicker == nil {
		t.Fatal("date picker did not open")
	}
	h.DatePicker.Input.SetValue("not a date")
	runAll(press(h, "enter"))
	if h.DatePicker == nil {
		t.Fatal("invalid input should keep the picker open")
	}

	h.DatePicker.Input.SetValue("2026-12-25")
	deliver(h, press(h, "enter"))
	if h.DatePicker != nil {
		t.Fatal("picker should close")
	}
	if got := h.TaskDate.Format("2006-01-02"); got != "2026-12-25" {
		t.Errorf("TaskDate = %s", got)
	}
	if calls := env.server.calls(); !reflect.DeepEqual(calls, []string{"GET /api/tasks/2026-12-25"}) {
		t.Errorf("unexpected calls %v", calls)
	}
}

func TestLoadReportsJoinsAllThree(t *testing.T) {
	env := newTestHandler(t)
	h := env.h

	msgs := runAll(h.LoadReports())
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	m, ok := msgs[0].(reportsLoadedMsg)
	if !ok {
		t.Fatalf("expected reportsLoadedMsg, got %T", msgs[0])
	}
	if m.analytics == nil || m.monthly == nil || m.daily == nil {
		t.Errorf("incomplete report bundle %+v", m)
	}
	if calls := env.server.calls(); len(calls) != 3 {
		t.Errorf("expected three requests, got %v", calls)
	}
}

func TestFocusPhaseEndStoresSessions(t *testing.T) {
	env := newTestHandler(t)
	h := env.h
	h.CurrentPage = state.PageMusic

	notified := 0
	h.notify = func(string, string) error {
		notified++
		return nil
	}

	deliver(h, h.LoadMusic())
	if h.FocusTotal != 4 {
		t.Fatalf("FocusTotal = %d, want 4", h.FocusTotal)
	}

	h.Focus.Remaining = time.Second
	tick := press(h, "space")
	if !h.Focus.Running {
		t.Fatal("space should start the timer")
	}

	deliver(h, deliver(h, tick)[0])
	if h.Focus.Phase != state.FocusBreak || h.Focus.Running {
		t.Errorf("expected stopped break phase, got %+v", h.Focus)
	}
	if h.FocusTotal != 5 {
		t.Errorf("FocusTotal = %d, want 5", h.FocusTotal)
	}
	if got := env.server.body("POST /api/settings/focus_sessions"); !strings.Contains(got, `"5"`) {
		t.Errorf("settings body = %q", got)
	}
	if notified != 1 {
		t.Errorf("notified %d times, want 1", notified)
	}
}

func TestFocusPhaseEndBeforeLoadKeepsStoredCount(t *testing.T) {
	env := newTestHandler(t)
	h := env.h
	h.CurrentPage = state.PageMusic
	h.notify = func(string, string) error { return nil }

	// The stored count (4) has not been loaded yet.
	h.Focus.Remaining = time.Second
	tick := press(h, "space")
	deliver(h, deliver(h, tick)[0])

	if got := env.server.body("POST /api/settings/focus_sessions"); !strings.Contains(got, `"5"`) {
		t.Errorf("settings body = %q, want the stored count plus one", got)
	}
	if h.FocusTotal != 5 {
		t.Errorf("FocusTotal = %d, want 5", h.FocusTotal)
	}
}
