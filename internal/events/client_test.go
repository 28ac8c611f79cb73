package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eventease/eventease/internal/model"
)

func TestGetByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/events/42" {
			t.Errorf("path = %q, want /events/42", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("apikey"); got != "anon-key" {
			t.Errorf("apikey = %q", got)
		}
		json.NewEncoder(w).Encode(model.Event{ID: 42, Title: "Go Conference 2026"})
	}))
	defer server.Close()

	c := NewClient(server.URL, "anon-key")
	event, err := c.GetByID(context.Background(), "tok-1", 42)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if event == nil || event.Title != "Go Conference 2026" {
		t.Errorf("event = %+v", event)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClient(server.URL, "anon-key")
	event, err := c.GetByID(context.Background(), "tok-1", 99)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if event != nil {
		t.Errorf("event = %+v, want nil for missing record", event)
	}
}

func TestListByOwner(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("user_id"); got != "user-7" {
			t.Errorf("user_id = %q", got)
		}
		json.NewEncoder(w).Encode([]model.Event{{ID: 1}, {ID: 2}})
	}))
	defer server.Close()

	c := NewClient(server.URL, "anon-key")
	list, err := c.ListByOwner(context.Background(), "tok-1", "user-7")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("len = %d, want 2", len(list))
	}
}

func TestUpdateSendsEditableFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PATCH" {
			t.Errorf("method = %q, want PATCH", r.Method)
		}
		var params UpdateParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if params.Time != "14:00" || params.EndTime != "16:30" {
			t.Errorf("times = %q/%q, want canonical 24-hour form", params.Time, params.EndTime)
		}
		json.NewEncoder(w).Encode(model.Event{ID: 42, Title: params.Title, Time: params.Time})
	}))
	defer server.Close()

	c := NewClient(server.URL, "anon-key")
	event, err := c.Update(context.Background(), "tok-1", 42, UpdateParams{
		Title:   "Go Conference 2026",
		Date:    "2026-09-15",
		Time:    "14:00",
		EndTime: "16:30",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if event.Time != "14:00" {
		t.Errorf("event.Time = %q", event.Time)
	}
}

func TestSetImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(payload) != 1 || payload["image_url"] != "https://cdn.example.com/a.png" {
			t.Errorf("payload = %v, want only image_url", payload)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	c := NewClient(server.URL, "anon-key")
	if err := c.SetImage(context.Background(), "tok-1", 42, "https://cdn.example.com/a.png"); err != nil {
		t.Fatalf("SetImage: %v", err)
	}
}

func TestDelete(t *testing.T) {
	var called bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if r.Method != "DELETE" {
			t.Errorf("method = %q, want DELETE", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := NewClient(server.URL, "anon-key")
	if err := c.Delete(context.Background(), "tok-1", 42); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !called {
		t.Error("delete request never reached the API")
	}
}

func TestParticipantCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/events/42/participants/count" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]int{"count": 17})
	}))
	defer server.Close()

	c := NewClient(server.URL, "anon-key")
	n, err := c.ParticipantCount(context.Background(), "tok-1", 42)
	if err != nil {
		t.Fatalf("ParticipantCount: %v", err)
	}
	if n != 17 {
		t.Errorf("count = %d, want 17", n)
	}
}

func TestServerErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(server.URL, "anon-key")
	if _, err := c.ListByOwner(context.Background(), "tok-1", "user-7"); err == nil {
		t.Error("expected error for 500 response")
	}
}
