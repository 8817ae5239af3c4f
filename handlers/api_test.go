package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"planboard/store"
)

// newTestMux gives each test a fresh in-memory store and a fully routed mux.
func newTestMux() *http.ServeMux {
	Store = store.NewMemoryStore()
	mux := http.NewServeMux()
	RegisterHandlers(mux)
	return mux
}

func doJSON(mux *http.ServeMux, method, path string, payload any) *httptest.ResponseRecorder {
	var req *http.Request
	if payload != nil {
		body, _ := json.Marshal(payload)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestCreateMeetingAndListByDate(t *testing.T) {
	mux := newTestMux()

	seen := map[float64]bool{}
	create := func(title, date string) {
		w := doJSON(mux, "POST", "/api/meetings", map[string]any{
			"title":     title,
			"startTime": "09:00",
			"duration":  30,
			"color":     "#8b5cf6",
			"date":      date,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("Create meeting failed, expected 201, got %d. Body: %s", w.Code, w.Body.String())
		}
		var m map[string]any
		json.NewDecoder(w.Body).Decode(&m)
		id := m["id"].(float64)
		if seen[id] {
			t.Errorf("Duplicate id %v issued", id)
		}
		seen[id] = true
	}

	create("Standup", "2025-06-02")
	create("Review", "2025-06-03")
	create("Planning", "2025-06-02")

	w := doJSON(mux, "GET", "/api/meetings/2025-06-02", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("List meetings failed, expected 200, got %d", w.Code)
	}
	var meetings []map[string]any
	json.NewDecoder(w.Body).Decode(&meetings)
	if len(meetings) != 2 {
		t.Fatalf("Expected 2 meetings for 2025-06-02, got %d", len(meetings))
	}
	for _, m := range meetings {
		if m["date"] != "2025-06-02" {
			t.Errorf("Meeting %v has wrong date %v", m["id"], m["date"])
		}
	}
}

func TestCreateMeetingValidation(t *testing.T) {
	mux := newTestMux()

	// Missing title
	w := doJSON(mux, "POST", "/api/meetings", map[string]any{
		"startTime": "09:00",
		"duration":  30,
		"date":      "2025-06-02",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing title, got %d", w.Code)
	}
	var resp map[string]string
	json.NewDecoder(w.Body).Decode(&resp)
	if resp["message"] == "" {
		t.Error("Expected a message field in the error response")
	}

	// Unknown field
	w = doJSON(mux, "POST", "/api/meetings", map[string]any{
		"title":     "Standup",
		"startTime": "09:00",
		"duration":  30,
		"date":      "2025-06-02",
		"organizer": "nobody",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown field, got %d", w.Code)
	}
}

func TestUpdateTodoCompleted(t *testing.T) {
	mux := newTestMux()

	w := doJSON(mux, "POST", "/api/todos", map[string]any{
		"title":             "Write report",
		"description":       "quarterly numbers",
		"priority":          "high",
		"estimatedDuration": 45,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Create todo failed, expected 201, got %d. Body: %s", w.Code, w.Body.String())
	}
	var created map[string]any
	json.NewDecoder(w.Body).Decode(&created)
	id := int(created["id"].(float64))

	w = doJSON(mux, "PUT", fmt.Sprintf("/api/todos/%d", id), map[string]any{"completed": true})
	if w.Code != http.StatusOK {
		t.Fatalf("Update todo failed, expected 200, got %d. Body: %s", w.Code, w.Body.String())
	}

	w = doJSON(mux, "GET", "/api/todos", nil)
	var todos []map[string]any
	json.NewDecoder(w.Body).Decode(&todos)

	var found bool
	for _, todo := range todos {
		if int(todo["id"].(float64)) != id {
			continue
		}
		found = true
		if todo["completed"] != true {
			t.Error("Expected todo to be completed")
		}
		if todo["title"] != "Write report" {
			t.Errorf("Title changed unexpectedly: %v", todo["title"])
		}
		if todo["priority"] != "high" {
			t.Errorf("Priority changed unexpectedly: %v", todo["priority"])
		}
		if todo["estimatedDuration"] != float64(45) {
			t.Errorf("Estimated duration changed unexpectedly: %v", todo["estimatedDuration"])
		}
	}
	if !found {
		t.Errorf("Todo %d not found in list", id)
	}
}

func TestDeleteUnknownIDReturns404(t *testing.T) {
	mux := newTestMux()

	doJSON(mux, "POST", "/api/todos", map[string]any{"title": "keep me"})

	w := doJSON(mux, "DELETE", "/api/todos/999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown id, got %d", w.Code)
	}

	w = doJSON(mux, "GET", "/api/todos", nil)
	var todos []map[string]any
	json.NewDecoder(w.Body).Decode(&todos)
	if len(todos) != 1 {
		t.Errorf("Store changed by failed delete: expected 1 todo, got %d", len(todos))
	}
}

func TestDeleteReturnsSuccess(t *testing.T) {
	mux := newTestMux()

	w := doJSON(mux, "POST", "/api/projects", map[string]any{"name": "Q3", "color": "#10b981"})
	var created map[string]any
	json.NewDecoder(w.Body).Decode(&created)
	id := int(created["id"].(float64))

	w = doJSON(mux, "DELETE", fmt.Sprintf("/api/projects/%d", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Delete failed, expected 200, got %d", w.Code)
	}
	var resp map[string]any
	json.NewDecoder(w.Body).Decode(&resp)
	if resp["success"] != true {
		t.Errorf("Expected {success:true}, got %v", resp)
	}
}

func TestDropTodoOntoSlot(t *testing.T) {
	mux := newTestMux()

	w := doJSON(mux, "POST", "/api/todos", map[string]any{
		"title":             "Write report",
		"priority":          "high",
		"estimatedDuration": 45,
	})
	var todo map[string]any
	json.NewDecoder(w.Body).Decode(&todo)
	id := int(todo["id"].(float64))

	w = doJSON(mux, "POST", "/api/scheduled-items/drop", map[string]any{
		"sourceType": "todo",
		"sourceId":   id,
		"slot":       "10:00",
		"date":       "2025-06-02",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Drop failed, expected 201, got %d. Body: %s", w.Code, w.Body.String())
	}
	var item map[string]any
	json.NewDecoder(w.Body).Decode(&item)
	if item["startTime"] != "10:00" {
		t.Errorf("Expected startTime 10:00, got %v", item["startTime"])
	}
	if item["duration"] != float64(45) {
		t.Errorf("Expected duration 45, got %v", item["duration"])
	}
	if item["type"] != "todo" {
		t.Errorf("Expected type todo, got %v", item["type"])
	}
	if int(item["originalId"].(float64)) != id {
		t.Errorf("Expected originalId %d, got %v", id, item["originalId"])
	}

	// The created item shows up on the timeline for that date
	w = doJSON(mux, "GET", "/api/scheduled-items/2025-06-02", nil)
	var items []map[string]any
	json.NewDecoder(w.Body).Decode(&items)
	if len(items) != 1 {
		t.Errorf("Expected 1 scheduled item, got %d", len(items))
	}
}

func TestDropInvalidSlot(t *testing.T) {
	mux := newTestMux()

	w := doJSON(mux, "POST", "/api/todos", map[string]any{"title": "x"})
	var todo map[string]any
	json.NewDecoder(w.Body).Decode(&todo)
	id := int(todo["id"].(float64))

	w = doJSON(mux, "POST", "/api/scheduled-items/drop", map[string]any{
		"sourceType": "todo",
		"sourceId":   id,
		"slot":       "25:99",
		"date":       "2025-06-02",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid slot, got %d", w.Code)
	}

	w = doJSON(mux, "POST", "/api/scheduled-items/drop", map[string]any{
		"sourceType": "todo",
		"sourceId":   9999,
		"slot":       "10:00",
		"date":       "2025-06-02",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown source, got %d", w.Code)
	}
}

func TestHealthScoreDuplicateMonthsCoexist(t *testing.T) {
	mux := newTestMux()

	payload := map[string]any{
		"month": 6, "year": 2025,
		"sleep": 7, "exercise": 5, "nutrition": 6, "mental": 8, "energy": 7,
	}
	for i := 0; i < 2; i++ {
		w := doJSON(mux, "POST", "/api/health-scores", payload)
		if w.Code != http.StatusCreated {
			t.Fatalf("Create health score failed, expected 201, got %d. Body: %s", w.Code, w.Body.String())
		}
	}

	w := doJSON(mux, "GET", "/api/health-scores/6/2025", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("List health scores failed, expected 200, got %d", w.Code)
	}
	var scores []map[string]any
	json.NewDecoder(w.Body).Decode(&scores)
	if len(scores) != 2 {
		t.Errorf("Expected 2 independent records for the same month, got %d", len(scores))
	}
}

func TestHealthScoreValidation(t *testing.T) {
	mux := newTestMux()

	w := doJSON(mux, "POST", "/api/health-scores", map[string]any{
		"month": 13, "year": 2025,
		"sleep": 7, "exercise": 5, "nutrition": 6, "mental": 8, "energy": 7,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for month 13, got %d", w.Code)
	}

	w = doJSON(mux, "POST", "/api/health-scores", map[string]any{
		"month": 6, "year": 2025,
		"sleep": 11, "exercise": 5, "nutrition": 6, "mental": 8, "energy": 7,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for out-of-range score, got %d", w.Code)
	}
}

func TestTodosFilteredByProject(t *testing.T) {
	mux := newTestMux()

	w := doJSON(mux, "POST", "/api/projects", map[string]any{"name": "Q3"})
	var project map[string]any
	json.NewDecoder(w.Body).Decode(&project)
	projectID := int(project["id"].(float64))

	doJSON(mux, "POST", "/api/todos", map[string]any{"title": "no project"})
	doJSON(mux, "POST", "/api/todos", map[string]any{"title": "in project", "projectId": projectID})

	w = doJSON(mux, "GET", fmt.Sprintf("/api/todos?projectId=%d", projectID), nil)
	var todos []map[string]any
	json.NewDecoder(w.Body).Decode(&todos)
	if len(todos) != 1 {
		t.Fatalf("Expected 1 todo in project, got %d", len(todos))
	}
	if todos[0]["title"] != "in project" {
		t.Errorf("Wrong todo returned: %v", todos[0]["title"])
	}
}

func TestTransactionsByMonth(t *testing.T) {
	mux := newTestMux()

	w := doJSON(mux, "POST", "/api/accounts", map[string]any{"name": "Checking", "type": "checking"})
	var account map[string]any
	json.NewDecoder(w.Body).Decode(&account)
	accountID := int(account["id"].(float64))

	doJSON(mux, "POST", "/api/transactions", map[string]any{
		"accountId": accountID, "amount": -42.5, "type": "expense", "date": "2025-06-10",
	})
	doJSON(mux, "POST", "/api/transactions", map[string]any{
		"accountId": accountID, "amount": 1200.0, "type": "income", "date": "2025-07-01",
	})

	w = doJSON(mux, "GET", "/api/transactions/6/2025", nil)
	var transactions []map[string]any
	json.NewDecoder(w.Body).Decode(&transactions)
	if len(transactions) != 1 {
		t.Fatalf("Expected 1 transaction in June, got %d", len(transactions))
	}
	if transactions[0]["amount"] != -42.5 {
		t.Errorf("Wrong transaction returned: %v", transactions[0])
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestMux()

	w := doJSON(mux, "PATCH", "/api/todos", nil)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405 for PATCH, got %d", w.Code)
	}
}

func TestListEmptyCollectionsReturnArrays(t *testing.T) {
	mux := newTestMux()

	for _, path := range []string{"/api/todos", "/api/projects", "/api/passwords", "/api/goals", "/api/meetings/2025-06-02"} {
		w := doJSON(mux, "GET", path, nil)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, w.Code)
			continue
		}
		if body := w.Body.String(); body == "null\n" {
			t.Errorf("GET %s returned null instead of an empty array", path)
		}
	}
}
