package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/tasknest/tasknest/task"
)

func noRedirectClient() *http.Client {
	return &http.Client{CheckRedirect: func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}}
}

func TestTasksViewRendersDepthIndentedRows(t *testing.T) {
	rows := []taskRow{
		{ID: 1, Description: "plan trip", Status: task.StatusActive, Depth: 0},
		{ID: 2, Description: "book flights", Status: task.StatusActive, Depth: 1},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/tasks/view", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		_ = json.NewEncoder(w).Encode(viewResponse{Tasks: rows})
	})
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(statusResponse{
			Total:  2,
			Counts: map[task.Status]int{task.StatusActive: 2},
		})
	})

	webHandler := NewHandler(Options{})
	mux.Handle("/web/", webHandler)
	server := httptest.NewServer(mux)
	defer server.Close()

	resp, err := http.Get(server.URL + "/web/tasks")
	if err != nil {
		t.Fatalf("get tasks: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	output := string(body)
	if !strings.Contains(output, "book flights") {
		t.Fatalf("expected task list to include child task, got %s", output)
	}
	if !strings.Contains(output, "padding-left: 18px") {
		t.Fatalf("expected child row to be indented, got %s", output)
	}
	if !strings.Contains(output, "ACTIVE: 2") || !strings.Contains(output, "Total: 2") {
		t.Fatalf("expected status summary, got %s", output)
	}
}

func TestTasksViewDefaultsToNonClear(t *testing.T) {
	filters := make(chan string, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/tasks/view", func(w http.ResponseWriter, r *http.Request) {
		var request viewRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		select {
		case filters <- request.Filter:
		default:
		}
		_ = json.NewEncoder(w).Encode(viewResponse{Tasks: []taskRow{}})
	})
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(statusResponse{Counts: map[task.Status]int{}})
	})

	webHandler := NewHandler(Options{})
	mux.Handle("/web/", webHandler)
	server := httptest.NewServer(mux)
	defer server.Close()

	resp, err := http.Get(server.URL + "/web/tasks")
	if err != nil {
		t.Fatalf("get tasks: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	select {
	case filter := <-filters:
		if filter != "NON_CLEAR" {
			t.Fatalf("expected NON_CLEAR filter, got %q", filter)
		}
	default:
		t.Fatal("expected a view request")
	}
}

func TestTaskCreateRedirectsToNewTask(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tasks/create", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var request createRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if request.Description != "Pack bags" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if request.ParentID == nil || *request.ParentID != 1 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(createResponse{ID: 9})
	})

	webHandler := NewHandler(Options{})
	mux.Handle("/web/", webHandler)
	server := httptest.NewServer(mux)
	defer server.Close()

	form := url.Values{}
	form.Set("description", "Pack bags")
	form.Set("parent_id", "1")

	resp, err := noRedirectClient().PostForm(server.URL+"/web/tasks/create?view=ALL", form)
	if err != nil {
		t.Fatalf("post create: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", resp.StatusCode)
	}
	if location := resp.Header.Get("Location"); location != "/web/tasks?view=ALL&id=9" {
		t.Fatalf("expected redirect to new task, got %q", location)
	}
}

func TestTaskCreateErrorRedisplaysDraft(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tasks/create", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": "parent task is not active",
			"kind":  "parent_not_active",
		})
	})
	mux.HandleFunc("/tasks/view", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(viewResponse{Tasks: []taskRow{}})
	})
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(statusResponse{Counts: map[task.Status]int{}})
	})

	webHandler := NewHandler(Options{})
	mux.Handle("/web/", webHandler)
	server := httptest.NewServer(mux)
	defer server.Close()

	form := url.Values{}
	form.Set("description", "Needs more work")
	form.Set("parent_id", "4")

	resp, err := noRedirectClient().PostForm(server.URL+"/web/tasks/create", form)
	if err != nil {
		t.Fatalf("post create: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", resp.StatusCode)
	}
	location := resp.Header.Get("Location")
	if location != "/web/tasks?create=1" {
		t.Fatalf("expected redirect to create form, got %q", location)
	}

	page, err := http.Get(server.URL + location)
	if err != nil {
		t.Fatalf("get create form: %v", err)
	}
	defer page.Body.Close()
	body, err := io.ReadAll(page.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	output := string(body)
	if !strings.Contains(output, "parent task is not active") {
		t.Fatalf("expected error message, got %s", output)
	}
	if !strings.Contains(output, "Needs more work") {
		t.Fatalf("expected form to keep the draft description, got %s", output)
	}
}

func TestTaskUpdatePostsNormalizedStatus(t *testing.T) {
	updates := make(chan updateRequest, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/tasks/update", func(w http.ResponseWriter, r *http.Request) {
		var request updateRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		select {
		case updates <- request:
		default:
		}
		_ = json.NewEncoder(w).Encode(okResponse{OK: true})
	})

	webHandler := NewHandler(Options{})
	mux.Handle("/web/", webHandler)
	server := httptest.NewServer(mux)
	defer server.Close()

	form := url.Values{}
	form.Set("status", "completed")

	resp, err := noRedirectClient().PostForm(server.URL+"/web/tasks/update?view=ACTIVE&id=3", form)
	if err != nil {
		t.Fatalf("post update: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", resp.StatusCode)
	}
	if location := resp.Header.Get("Location"); location != "/web/tasks?view=ACTIVE&id=3" {
		t.Fatalf("expected redirect back to task, got %q", location)
	}

	select {
	case request := <-updates:
		if request.ID != 3 || request.Status != "COMPLETED" {
			t.Fatalf("expected normalized update for task 3, got %+v", request)
		}
	default:
		t.Fatal("expected an update request")
	}
}
