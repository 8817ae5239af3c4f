package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"planboard/i18n"
	"planboard/store"
)

// DemoUserID scopes every request. There is no authentication; all data
// belongs to this single hard-coded user.
const DemoUserID = 1

// Store is the entity store shared by all handlers, set from main and from
// test setup.
var Store store.Storage

type errorResponse struct {
	Message string `json:"message"`
}

type deleteResponse struct {
	Success bool `json:"success"`
}

func sendJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func sendError(w http.ResponseWriter, r *http.Request, status int, key string) {
	lang := i18n.DetectLanguage(r)
	sendJSON(w, status, errorResponse{Message: i18n.T(lang, key)})
}

// decodeBody strictly decodes a JSON request body; unknown fields are a
// validation failure.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// pathTail returns the URL path segment(s) after prefix.
func pathTail(r *http.Request, prefix string) string {
	return strings.TrimPrefix(r.URL.Path, prefix)
}

// pathID parses the trailing path segment as a record id.
func pathID(r *http.Request, prefix string) (int, bool) {
	id, err := strconv.Atoi(pathTail(r, prefix))
	return id, err == nil
}

// pathMonthYear parses a trailing "{month}/{year}" pair.
func pathMonthYear(tail string) (month, year int, ok bool) {
	parts := strings.Split(tail, "/")
	if len(parts) != 2 {
		return 0, 0, false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	year, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return month, year, true
}

func RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc("/api/meetings", MeetingsHandler)
	mux.HandleFunc("/api/meetings/", MeetingHandler)

	mux.HandleFunc("/api/todos", TodosHandler)
	mux.HandleFunc("/api/todos/", TodoHandler)

	mux.HandleFunc("/api/projects", ProjectsHandler)
	mux.HandleFunc("/api/projects/", ProjectHandler)

	mux.HandleFunc("/api/scheduled-items", ScheduledItemsHandler)
	mux.HandleFunc("/api/scheduled-items/", ScheduledItemHandler)
	mux.HandleFunc("/api/scheduled-items/drop", DropHandler)

	mux.HandleFunc("/api/passwords", PasswordsHandler)
	mux.HandleFunc("/api/passwords/", PasswordHandler)

	mux.HandleFunc("/api/goals", GoalsHandler)
	mux.HandleFunc("/api/goals/", GoalHandler)

	mux.HandleFunc("/api/habit-tracking", HabitTrackingCollectionHandler)
	mux.HandleFunc("/api/habit-tracking/", HabitTrackingHandler)

	mux.HandleFunc("/api/habit-legends", HabitLegendsHandler)
	mux.HandleFunc("/api/habit-legends/", HabitLegendHandler)

	mux.HandleFunc("/api/accounts", AccountsHandler)
	mux.HandleFunc("/api/accounts/", AccountHandler)

	mux.HandleFunc("/api/transactions", TransactionsHandler)
	mux.HandleFunc("/api/transactions/", TransactionHandler)

	mux.HandleFunc("/api/financial-goals", FinancialGoalsHandler)
	mux.HandleFunc("/api/financial-goals/", FinancialGoalHandler)

	mux.HandleFunc("/api/health-scores", HealthScoresHandler)
	mux.HandleFunc("/api/health-scores/", HealthScoreHandler)
}
