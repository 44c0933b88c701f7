package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"
)

func TestGetHabits(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/habits" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode([]Habit{
			{ID: 2, Name: "Read", Icon: "📚", Color: "#10B981", SortOrder: 0},
			{ID: 1, Name: "Run", Icon: "🏃", Color: "#F59E0B", SortOrder: 1},
		})
	})
	defer server.Close()

	habits, err := NewClient(server.URL).GetHabits()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(habits) != 2 || habits[0].ID != 2 || habits[1].Name != "Run" {
		t.Errorf("unexpected habits: %+v", habits)
	}
}

func TestGetCalendarDecodesIntegerKeys(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/habits/calendar/2026/2" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"1":[1,2,28],"7":[14]}`))
	})
	defer server.Close()

	cal, err := NewClient(server.URL).GetCalendar(2026, time.February)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cal.IsCompleted(1, 28) || !cal.IsCompleted(7, 14) {
		t.Errorf("unexpected calendar: %+v", cal)
	}
	if cal.IsCompleted(1, 3) || cal.IsCompleted(99, 1) {
		t.Error("unexpected completion reported")
	}
}

func TestReorderHabitsSendsOrder(t *testing.T) {
	var got ReorderHabitsRequest
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/habits/reorder" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Write([]byte(`{"success":true}`))
	})
	defer server.Close()

	if err := NewClient(server.URL).ReorderHabits([]int64{3, 1, 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.HabitIDs) != 3 || got.HabitIDs[0] != 3 || got.HabitIDs[2] != 2 {
		t.Errorf("unexpected order sent: %v", got.HabitIDs)
	}
}

func TestCreateAndDeleteHabit(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/habits":
			var req CreateHabitRequest
			json.NewDecoder(r.Body).Decode(&req)
			json.NewEncoder(w).Encode(Habit{ID: 5, Name: req.Name, Icon: req.Icon, Color: req.Color})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/habits/5":
			w.Write([]byte(`{"success":true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	defer server.Close()

	client := NewClient(server.URL)
	h, err := client.CreateHabit(CreateHabitRequest{Name: "Meditate", Icon: "🧘", Color: "#8B5CF6"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if h.ID != 5 || h.Name != "Meditate" {
		t.Errorf("unexpected habit %+v", h)
	}
	if err := client.DeleteHabit(5); err != nil {
		t.Errorf("delete: %v", err)
	}
	if err := client.DeleteHabit(6); err == nil {
		t.Error("expected error deleting unknown habit")
	}
}
