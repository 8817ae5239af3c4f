package handlers

import (
	"errors"
	"log"
	"net/http"

	"planboard/models"
	"planboard/store"
)

func validScore(s int) bool {
	return s >= 1 && s <= 10
}

// HealthScoresHandler handles POST. Nothing deduplicates on (month, year):
// a second POST for an already-scored month creates a second record. Only
// the client avoids this, by querying before deciding between its create
// and update forms.
func HealthScoresHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
		return
	}

	var input struct {
		Month     int    `json:"month"`
		Year      int    `json:"year"`
		Sleep     int    `json:"sleep"`
		Exercise  int    `json:"exercise"`
		Nutrition int    `json:"nutrition"`
		Mental    int    `json:"mental"`
		Energy    int    `json:"energy"`
		Notes     string `json:"notes"`
	}
	if err := decodeBody(r, &input); err != nil {
		sendError(w, r, http.StatusBadRequest, "InvalidHealthScore")
		return
	}
	if input.Month < 1 || input.Month > 12 || input.Year < 1 {
		sendError(w, r, http.StatusBadRequest, "InvalidHealthScore")
		return
	}
	if !validScore(input.Sleep) || !validScore(input.Exercise) || !validScore(input.Nutrition) ||
		!validScore(input.Mental) || !validScore(input.Energy) {
		sendError(w, r, http.StatusBadRequest, "InvalidHealthScore")
		return
	}

	h, err := Store.CreateHealthScore(models.HealthScore{
		UserID:    DemoUserID,
		Month:     input.Month,
		Year:      input.Year,
		Sleep:     input.Sleep,
		Exercise:  input.Exercise,
		Nutrition: input.Nutrition,
		Mental:    input.Mental,
		Energy:    input.Energy,
		Notes:     input.Notes,
	})
	if err != nil {
		log.Printf("Error creating health score: %v", err)
		sendError(w, r, http.StatusInternalServerError, "InternalServerError")
		return
	}
	sendJSON(w, http.StatusCreated, h)
}

func HealthScoreHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		month, year, ok := pathMonthYear(pathTail(r, "/api/health-scores/"))
		if !ok {
			sendError(w, r, http.StatusNotFound, "HealthScoreNotFound")
			return
		}
		scores, err := Store.HealthScoresByMonth(DemoUserID, month, year)
		if err != nil {
			log.Printf("Error listing health scores: %v", err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		if scores == nil {
			scores = []models.HealthScore{}
		}
		sendJSON(w, http.StatusOK, scores)

	case http.MethodPut:
		id, ok := pathID(r, "/api/health-scores/")
		if !ok {
			sendError(w, r, http.StatusNotFound, "HealthScoreNotFound")
			return
		}
		var patch models.HealthScorePatch
		if err := decodeBody(r, &patch); err != nil {
			sendError(w, r, http.StatusBadRequest, "InvalidHealthScore")
			return
		}
		for _, s := range []*int{patch.Sleep, patch.Exercise, patch.Nutrition, patch.Mental, patch.Energy} {
			if s != nil && !validScore(*s) {
				sendError(w, r, http.StatusBadRequest, "InvalidHealthScore")
				return
			}
		}
		h, err := Store.UpdateHealthScore(id, patch)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "HealthScoreNotFound")
			return
		}
		if err != nil {
			log.Printf("Error updating health score %d: %v", id, err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusOK, h)

	case http.MethodDelete:
		id, ok := pathID(r, "/api/health-scores/")
		if !ok {
			sendError(w, r, http.StatusNotFound, "HealthScoreNotFound")
			return
		}
		err := Store.DeleteHealthScore(id)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "HealthScoreNotFound")
			return
		}
		if err != nil {
			log.Printf("Error deleting health score %d: %v", id, err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusOK, deleteResponse{Success: true})

	default:
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
	}
}
