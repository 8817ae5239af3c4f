package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planboard/models"
	"planboard/store"
)

func TestDrop_TodoOntoSlot(t *testing.T) {
	s := store.NewMemoryStore()
	todo, err := s.CreateTodo(models.Todo{UserID: 1, Title: "Write report", Priority: models.PriorityHigh, EstimatedDuration: 45})
	require.NoError(t, err)

	c := NewCoordinator(s)
	item, err := c.Drop(1, DropRequest{SourceType: "todo", SourceID: todo.ID, Slot: "10:00", Date: "2025-06-02"})
	require.NoError(t, err)

	assert.Equal(t, "10:00", item.StartTime)
	assert.Equal(t, 45, item.Duration)
	assert.Equal(t, models.ItemTypeTodo, item.Type)
	require.NotNil(t, item.OriginalID)
	assert.Equal(t, todo.ID, *item.OriginalID)
	assert.Equal(t, "Write report", item.Title)
	assert.Equal(t, "#ef4444", item.Color)

	// The item was persisted for that date
	items, err := s.ScheduledItemsByDate(1, "2025-06-02")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
}

func TestDrop_MeetingCopiesDurationAndColor(t *testing.T) {
	s := store.NewMemoryStore()
	m, err := s.CreateMeeting(models.Meeting{UserID: 1, Title: "Standup", StartTime: "09:00", Duration: 15, Color: "#8b5cf6", Date: "2025-06-02"})
	require.NoError(t, err)

	c := NewCoordinator(s)
	item, err := c.Drop(1, DropRequest{SourceType: "meeting", SourceID: m.ID, Slot: "14:30", Date: "2025-06-02"})
	require.NoError(t, err)

	assert.Equal(t, "14:30", item.StartTime)
	assert.Equal(t, 15, item.Duration)
	assert.Equal(t, "#8b5cf6", item.Color)
	assert.Equal(t, models.ItemTypeMeeting, item.Type)
}

func TestDrop_InvalidSlotIsNoOp(t *testing.T) {
	s := store.NewMemoryStore()
	todo, _ := s.CreateTodo(models.Todo{UserID: 1, Title: "x", Priority: models.PriorityLow})

	c := NewCoordinator(s)
	for _, slot := range []string{"", "25:00", "10:60", "10", "ten o'clock", "slot-10:00"} {
		_, err := c.Drop(1, DropRequest{SourceType: "todo", SourceID: todo.ID, Slot: slot, Date: "2025-06-02"})
		assert.ErrorIs(t, err, ErrInvalidSlot, "slot %q", slot)
	}

	items, err := s.ScheduledItemsByDate(1, "2025-06-02")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDrop_UnknownSource(t *testing.T) {
	s := store.NewMemoryStore()
	c := NewCoordinator(s)

	_, err := c.Drop(1, DropRequest{SourceType: "todo", SourceID: 99, Slot: "10:00", Date: "2025-06-02"})
	assert.ErrorIs(t, err, ErrUnknownSource)

	_, err = c.Drop(1, DropRequest{SourceType: "meeting", SourceID: 99, Slot: "10:00", Date: "2025-06-02"})
	assert.ErrorIs(t, err, ErrUnknownSource)

	_, err = c.Drop(1, DropRequest{SourceType: "note", SourceID: 1, Slot: "10:00", Date: "2025-06-02"})
	assert.ErrorIs(t, err, ErrUnknownSource)
}

func TestDrop_OtherUsersRecordIsUnknown(t *testing.T) {
	s := store.NewMemoryStore()
	todo, _ := s.CreateTodo(models.Todo{UserID: 2, Title: "not yours", Priority: models.PriorityLow})

	c := NewCoordinator(s)
	_, err := c.Drop(1, DropRequest{SourceType: "todo", SourceID: todo.ID, Slot: "10:00", Date: "2025-06-02"})
	assert.ErrorIs(t, err, ErrUnknownSource)
}

func TestDrop_Defaults(t *testing.T) {
	s := store.NewMemoryStore()
	// No estimate and an unmapped priority color
	todo, _ := s.CreateTodo(models.Todo{UserID: 1, Title: "fuzzy", Priority: ""})

	c := NewCoordinator(s)
	item, err := c.Drop(1, DropRequest{SourceType: "todo", SourceID: todo.ID, Slot: "08:05", Date: "2025-06-02"})
	require.NoError(t, err)
	assert.Equal(t, defaultDuration, item.Duration)
	assert.Equal(t, defaultColor, item.Color)
}

func TestDrop_SameSlotTwiceCoexists(t *testing.T) {
	s := store.NewMemoryStore()
	todo, _ := s.CreateTodo(models.Todo{UserID: 1, Title: "x", Priority: models.PriorityLow, EstimatedDuration: 30})

	c := NewCoordinator(s)
	_, err := c.Drop(1, DropRequest{SourceType: "todo", SourceID: todo.ID, Slot: "10:00", Date: "2025-06-02"})
	require.NoError(t, err)
	_, err = c.Drop(1, DropRequest{SourceType: "todo", SourceID: todo.ID, Slot: "10:00", Date: "2025-06-02"})
	require.NoError(t, err)

	items, err := s.ScheduledItemsByDate(1, "2025-06-02")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
