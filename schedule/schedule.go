package schedule

import (
	"errors"
	"regexp"

	"planboard/models"
	"planboard/store"
)

var (
	// ErrInvalidSlot means the drop target does not look like a time slot;
	// the drop is a no-op, the same as releasing outside the grid.
	ErrInvalidSlot = errors.New("drop target is not a time slot")
	// ErrUnknownSource means the dragged element could not be resolved to a
	// meeting or todo.
	ErrUnknownSource = errors.New("dragged source not found")
)

var slotPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// Fallbacks when the source carries no duration or color of its own.
const (
	defaultDuration = 30
	defaultColor    = "#3b82f6"
)

// priorityColors maps a todo's priority to its timeline block color.
var priorityColors = map[string]string{
	models.PriorityHigh:   "#ef4444",
	models.PriorityMedium: "#f59e0b",
	models.PriorityLow:    "#10b981",
}

// DropRequest is the payload the client sends when a drag ends over a slot.
type DropRequest struct {
	SourceType string `json:"sourceType"` // meeting or todo
	SourceID   int    `json:"sourceId"`
	Slot       string `json:"slot"` // HH:MM
	Date       string `json:"date"` // YYYY-MM-DD
}

// Coordinator turns a drop into a persisted scheduled item.
type Coordinator struct {
	store store.Storage
}

func NewCoordinator(s store.Storage) *Coordinator {
	return &Coordinator{store: s}
}

// Drop resolves the dragged source record, maps it onto the target slot and
// creates the scheduled item. Nothing checks the slot for existing occupants;
// overlapping items simply coexist.
func (c *Coordinator) Drop(userID int, req DropRequest) (models.ScheduledItem, error) {
	if !slotPattern.MatchString(req.Slot) {
		return models.ScheduledItem{}, ErrInvalidSlot
	}

	item := models.ScheduledItem{
		UserID:    userID,
		StartTime: req.Slot,
		Date:      req.Date,
	}
	srcID := req.SourceID

	switch req.SourceType {
	case models.ItemTypeMeeting:
		m, err := c.store.Meeting(req.SourceID)
		if err != nil || m.UserID != userID {
			return models.ScheduledItem{}, ErrUnknownSource
		}
		item.Title = m.Title
		item.Duration = m.Duration
		item.Color = m.Color
		item.Type = models.ItemTypeMeeting
		item.OriginalID = &srcID
	case models.ItemTypeTodo:
		t, err := c.store.Todo(req.SourceID)
		if err != nil || t.UserID != userID {
			return models.ScheduledItem{}, ErrUnknownSource
		}
		item.Title = t.Title
		item.Duration = t.EstimatedDuration
		item.Color = priorityColors[t.Priority]
		item.Type = models.ItemTypeTodo
		item.OriginalID = &srcID
	default:
		return models.ScheduledItem{}, ErrUnknownSource
	}

	if item.Duration <= 0 {
		item.Duration = defaultDuration
	}
	if item.Color == "" {
		item.Color = defaultColor
	}

	return c.store.CreateScheduledItem(item)
}
