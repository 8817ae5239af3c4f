package handlers

import (
	"errors"
	"log"
	"net/http"

	"planboard/models"
	"planboard/schedule"
	"planboard/store"
)

func MeetingsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
		return
	}

	var input struct {
		Title     string `json:"title"`
		StartTime string `json:"startTime"`
		Duration  int    `json:"duration"`
		Color     string `json:"color"`
		Date      string `json:"date"`
	}
	if err := decodeBody(r, &input); err != nil {
		sendError(w, r, http.StatusBadRequest, "InvalidMeeting")
		return
	}
	if input.Title == "" || input.StartTime == "" || input.Date == "" || input.Duration <= 0 {
		sendError(w, r, http.StatusBadRequest, "InvalidMeeting")
		return
	}

	m, err := Store.CreateMeeting(models.Meeting{
		UserID:    DemoUserID,
		Title:     input.Title,
		StartTime: input.StartTime,
		Duration:  input.Duration,
		Color:     input.Color,
		Date:      input.Date,
	})
	if err != nil {
		log.Printf("Error creating meeting: %v", err)
		sendError(w, r, http.StatusInternalServerError, "InternalServerError")
		return
	}
	sendJSON(w, http.StatusCreated, m)
}

func MeetingHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		date := pathTail(r, "/api/meetings/")
		meetings, err := Store.MeetingsByDate(DemoUserID, date)
		if err != nil {
			log.Printf("Error listing meetings: %v", err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		if meetings == nil {
			meetings = []models.Meeting{}
		}
		sendJSON(w, http.StatusOK, meetings)

	case http.MethodPut:
		id, ok := pathID(r, "/api/meetings/")
		if !ok {
			sendError(w, r, http.StatusNotFound, "MeetingNotFound")
			return
		}
		var patch models.MeetingPatch
		if err := decodeBody(r, &patch); err != nil {
			sendError(w, r, http.StatusBadRequest, "InvalidMeeting")
			return
		}
		m, err := Store.UpdateMeeting(id, patch)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "MeetingNotFound")
			return
		}
		if err != nil {
			log.Printf("Error updating meeting %d: %v", id, err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusOK, m)

	case http.MethodDelete:
		id, ok := pathID(r, "/api/meetings/")
		if !ok {
			sendError(w, r, http.StatusNotFound, "MeetingNotFound")
			return
		}
		err := Store.DeleteMeeting(id)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "MeetingNotFound")
			return
		}
		if err != nil {
			log.Printf("Error deleting meeting %d: %v", id, err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusOK, deleteResponse{Success: true})

	default:
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
	}
}

func ScheduledItemsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
		return
	}

	var input struct {
		Title      string `json:"title"`
		StartTime  string `json:"startTime"`
		Duration   int    `json:"duration"`
		Date       string `json:"date"`
		Type       string `json:"type"`
		OriginalID *int   `json:"originalId"`
		Color      string `json:"color"`
	}
	if err := decodeBody(r, &input); err != nil {
		sendError(w, r, http.StatusBadRequest, "InvalidScheduledItem")
		return
	}
	if input.Title == "" || input.StartTime == "" || input.Date == "" || input.Duration <= 0 {
		sendError(w, r, http.StatusBadRequest, "InvalidScheduledItem")
		return
	}
	switch input.Type {
	case "":
		input.Type = models.ItemTypeCustom
	case models.ItemTypeMeeting, models.ItemTypeTodo, models.ItemTypeCustom:
	default:
		sendError(w, r, http.StatusBadRequest, "InvalidScheduledItem")
		return
	}

	it, err := Store.CreateScheduledItem(models.ScheduledItem{
		UserID:     DemoUserID,
		Title:      input.Title,
		StartTime:  input.StartTime,
		Duration:   input.Duration,
		Date:       input.Date,
		Type:       input.Type,
		OriginalID: input.OriginalID,
		Color:      input.Color,
	})
	if err != nil {
		log.Printf("Error creating scheduled item: %v", err)
		sendError(w, r, http.StatusInternalServerError, "InternalServerError")
		return
	}
	sendJSON(w, http.StatusCreated, it)
}

func ScheduledItemHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		date := pathTail(r, "/api/scheduled-items/")
		items, err := Store.ScheduledItemsByDate(DemoUserID, date)
		if err != nil {
			log.Printf("Error listing scheduled items: %v", err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		if items == nil {
			items = []models.ScheduledItem{}
		}
		sendJSON(w, http.StatusOK, items)

	case http.MethodPut:
		id, ok := pathID(r, "/api/scheduled-items/")
		if !ok {
			sendError(w, r, http.StatusNotFound, "ScheduledItemNotFound")
			return
		}
		var patch models.ScheduledItemPatch
		if err := decodeBody(r, &patch); err != nil {
			sendError(w, r, http.StatusBadRequest, "InvalidScheduledItem")
			return
		}
		it, err := Store.UpdateScheduledItem(id, patch)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "ScheduledItemNotFound")
			return
		}
		if err != nil {
			log.Printf("Error updating scheduled item %d: %v", id, err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusOK, it)

	case http.MethodDelete:
		id, ok := pathID(r, "/api/scheduled-items/")
		if !ok {
			sendError(w, r, http.StatusNotFound, "ScheduledItemNotFound")
			return
		}
		err := Store.DeleteScheduledItem(id)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "ScheduledItemNotFound")
			return
		}
		if err != nil {
			log.Printf("Error deleting scheduled item %d: %v", id, err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusOK, deleteResponse{Success: true})

	default:
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
	}
}

// DropHandler is the server half of the timeline drag-and-drop: the client
// reports which record was dragged onto which slot and the coordinator
// persists the resulting scheduled item.
func DropHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
		return
	}

	var req schedule.DropRequest
	if err := decodeBody(r, &req); err != nil {
		sendError(w, r, http.StatusBadRequest, "InvalidRequestBody")
		return
	}
	if req.Date == "" {
		sendError(w, r, http.StatusBadRequest, "InvalidDrop")
		return
	}

	item, err := schedule.NewCoordinator(Store).Drop(DemoUserID, req)
	switch {
	case errors.Is(err, schedule.ErrInvalidSlot):
		sendError(w, r, http.StatusBadRequest, "InvalidDrop")
		return
	case errors.Is(err, schedule.ErrUnknownSource):
		sendError(w, r, http.StatusNotFound, "DropSourceNotFound")
		return
	case err != nil:
		log.Printf("Error handling drop: %v", err)
		sendError(w, r, http.StatusInternalServerError, "InternalServerError")
		return
	}
	sendJSON(w, http.StatusCreated, item)
}
