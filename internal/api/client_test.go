package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// mockServer creates a test HTTP server for mocking API responses.
func mockServer(handler http.HandlerFunc) *httptest.Server {
	return httptest.NewServer(handler)
}

func TestNewClient(t *testing.T) {
	client := NewClient("")
	if client.baseURL != DefaultBaseURL {
		t.Errorf("unexpected base URL: %s", client.baseURL)
	}

	client = NewClient("http://localhost:9000/")
	if client.baseURL != "http://localhost:9000" {
		t.Errorf("trailing slash not trimmed: %s", client.baseURL)
	}
}

func TestRequestSendsJSON(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), `"date":"2026-10-19"`) {
			t.Errorf("unexpected body: %s", body)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ToggleResponse{Completed: true})
	})
	defer server.Close()

	client := NewClient(server.URL)
	var out ToggleResponse
	if err := client.Request(http.MethodPost, "/api/habits/1/toggle", ToggleHabitRequest{Date: "2026-10-19"}, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Completed {
		t.Error("expected completed=true")
	}
}

func TestRequestErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantAPI    bool
		wantMsg    string
	}{
		{"not found with json error", http.StatusNotFound, `{"error":"habit not found"}`, true, "habit not found"},
		{"server error plain text", http.StatusInternalServerError, "boom", true, "boom"},
		{"bad json on success", http.StatusOK, "{not json", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := mockServer(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			})
			defer server.Close()

			client := NewClient(server.URL)
			var out Stats
			err := client.Get("/api/stats", &out)
			if err == nil {
				t.Fatal("expected error")
			}
			apiErr, ok := IsAPIError(err)
			if ok != tt.wantAPI {
				t.Fatalf("IsAPIError = %v, want %v (err: %v)", ok, tt.wantAPI, err)
			}
			if ok && apiErr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", apiErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestRequestTransportFailurePropagates(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {})
	url := server.URL
	server.Close()

	client := NewClient(url)
	_, err := client.GetHabits()
	if err == nil {
		t.Fatal("expected transport error")
	}
	if _, ok := IsAPIError(err); ok {
		t.Error("transport failure should not be an APIError")
	}
}

func TestAPIErrorHelpers(t *testing.T) {
	err := error(&APIError{StatusCode: 404})
	wrapped := errors.Join(errors.New("context"), err)
	apiErr, ok := IsAPIError(wrapped)
	if !ok || !apiErr.IsNotFound() {
		t.Error("expected wrapped 404 to be detected")
	}
	if (&APIError{StatusCode: 503}).IsServerError() != true {
		t.Error("503 should be a server error")
	}
	if (&APIError{StatusCode: 400}).IsBadRequest() != true {
		t.Error("400 should be a bad request")
	}
}

func TestHealth(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"status":"ok"}`))
	})
	defer server.Close()

	if err := NewClient(server.URL).Health(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
