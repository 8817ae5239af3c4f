package handlers

import (
	"errors"
	"log"
	"net/http"

	"planboard/models"
	"planboard/store"
)

func GoalsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		goals, err := Store.Goals(DemoUserID)
		if err != nil {
			log.Printf("Error listing goals: %v", err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		if goals == nil {
			goals = []models.Goal{}
		}
		sendJSON(w, http.StatusOK, goals)

	case http.MethodPost:
		var input struct {
			Title        string   `json:"title"`
			Category     string   `json:"category"`
			TargetValue  *float64 `json:"targetValue"`
			CurrentValue *float64 `json:"currentValue"`
			Unit         string   `json:"unit"`
			StartDate    string   `json:"startDate"`
			TargetDate   string   `json:"targetDate"`
			Active       *bool    `json:"active"`
		}
		if err := decodeBody(r, &input); err != nil {
			sendError(w, r, http.StatusBadRequest, "InvalidGoal")
			return
		}
		if input.Title == "" || input.Category == "" {
			sendError(w, r, http.StatusBadRequest, "InvalidGoal")
			return
		}
		active := true
		if input.Active != nil {
			active = *input.Active
		}

		g, err := Store.CreateGoal(models.Goal{
			UserID:       DemoUserID,
			Title:        input.Title,
			Category:     input.Category,
			TargetValue:  input.TargetValue,
			CurrentValue: input.CurrentValue,
			Unit:         input.Unit,
			StartDate:    input.StartDate,
			TargetDate:   input.TargetDate,
			Active:       active,
		})
		if err != nil {
			log.Printf("Error creating goal: %v", err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusCreated, g)

	default:
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
	}
}

func GoalHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "/api/goals/")
	if !ok {
		sendError(w, r, http.StatusNotFound, "GoalNotFound")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var patch models.GoalPatch
		if err := decodeBody(r, &patch); err != nil {
			sendError(w, r, http.StatusBadRequest, "InvalidGoal")
			return
		}
		g, err := Store.UpdateGoal(id, patch)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "GoalNotFound")
			return
		}
		if err != nil {
			log.Printf("Error updating goal %d: %v", id, err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusOK, g)

	case http.MethodDelete:
		err := Store.DeleteGoal(id)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "GoalNotFound")
			return
		}
		if err != nil {
			log.Printf("Error deleting goal %d: %v", id, err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusOK, deleteResponse{Success: true})

	default:
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
	}
}

// HabitTrackingCollectionHandler handles POST. Nothing deduplicates on
// (goal, date): every click appends a record and the client's first-match
// lookup decides which one it shows.
func HabitTrackingCollectionHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
		return
	}

	var input struct {
		GoalID int    `json:"goalId"`
		Date   string `json:"date"`
		Status string `json:"status"`
		Icon   string `json:"icon"`
	}
	if err := decodeBody(r, &input); err != nil {
		sendError(w, r, http.StatusBadRequest, "InvalidHabitTracking")
		return
	}
	if input.GoalID == 0 || input.Date == "" || input.Status == "" {
		sendError(w, r, http.StatusBadRequest, "InvalidHabitTracking")
		return
	}

	h, err := Store.CreateHabitTracking(models.HabitTracking{
		UserID: DemoUserID,
		GoalID: input.GoalID,
		Date:   input.Date,
		Status: input.Status,
		Icon:   input.Icon,
	})
	if err != nil {
		log.Printf("Error creating habit tracking entry: %v", err)
		sendError(w, r, http.StatusInternalServerError, "InternalServerError")
		return
	}
	sendJSON(w, http.StatusCreated, h)
}

func HabitTrackingHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		month, year, ok := pathMonthYear(pathTail(r, "/api/habit-tracking/"))
		if !ok {
			sendError(w, r, http.StatusNotFound, "HabitTrackingNotFound")
			return
		}
		entries, err := Store.HabitTrackingByMonth(DemoUserID, month, year)
		if err != nil {
			log.Printf("Error listing habit tracking: %v", err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		if entries == nil {
			entries = []models.HabitTracking{}
		}
		sendJSON(w, http.StatusOK, entries)

	case http.MethodPut:
		id, ok := pathID(r, "/api/habit-tracking/")
		if !ok {
			sendError(w, r, http.StatusNotFound, "HabitTrackingNotFound")
			return
		}
		var patch models.HabitTrackingPatch
		if err := decodeBody(r, &patch); err != nil {
			sendError(w, r, http.StatusBadRequest, "InvalidHabitTracking")
			return
		}
		h, err := Store.UpdateHabitTracking(id, patch)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "HabitTrackingNotFound")
			return
		}
		if err != nil {
			log.Printf("Error updating habit tracking %d: %v", id, err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusOK, h)

	case http.MethodDelete:
		id, ok := pathID(r, "/api/habit-tracking/")
		if !ok {
			sendError(w, r, http.StatusNotFound, "HabitTrackingNotFound")
			return
		}
		err := Store.DeleteHabitTracking(id)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "HabitTrackingNotFound")
			return
		}
		if err != nil {
			log.Printf("Error deleting habit tracking %d: %v", id, err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusOK, deleteResponse{Success: true})

	default:
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
	}
}

func HabitLegendsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		legends, err := Store.HabitLegends(DemoUserID)
		if err != nil {
			log.Printf("Error listing habit legends: %v", err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		if legends == nil {
			legends = []models.HabitLegend{}
		}
		sendJSON(w, http.StatusOK, legends)

	case http.MethodPost:
		var input struct {
			Key   string `json:"key"`
			Label string `json:"label"`
			Icon  string `json:"icon"`
			Color string `json:"color"`
		}
		if err := decodeBody(r, &input); err != nil {
			sendError(w, r, http.StatusBadRequest, "InvalidHabitLegend")
			return
		}
		if input.Key == "" || input.Label == "" {
			sendError(w, r, http.StatusBadRequest, "InvalidHabitLegend")
			return
		}

		l, err := Store.CreateHabitLegend(models.HabitLegend{
			UserID: DemoUserID,
			Key:    input.Key,
			Label:  input.Label,
			Icon:   input.Icon,
			Color:  input.Color,
		})
		if err != nil {
			log.Printf("Error creating habit legend: %v", err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusCreated, l)

	default:
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
	}
}

func HabitLegendHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "/api/habit-legends/")
	if !ok {
		sendError(w, r, http.StatusNotFound, "HabitLegendNotFound")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var patch models.HabitLegendPatch
		if err := decodeBody(r, &patch); err != nil {
			sendError(w, r, http.StatusBadRequest, "InvalidHabitLegend")
			return
		}
		l, err := Store.UpdateHabitLegend(id, patch)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "HabitLegendNotFound")
			return
		}
		if err != nil {
			log.Printf("Error updating habit legend %d: %v", id, err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusOK, l)

	case http.MethodDelete:
		err := Store.DeleteHabitLegend(id)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "HabitLegendNotFound")
			return
		}
		if err != nil {
			log.Printf("Error deleting habit legend %d: %v", id, err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusOK, deleteResponse{Success: true})

	default:
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
	}
}
