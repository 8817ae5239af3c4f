package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planboard/models"
)

func TestMemoryStore_IDsUniqueAcrossKinds(t *testing.T) {
	s := NewMemoryStore()

	seen := map[int]bool{}
	m, err := s.CreateMeeting(models.Meeting{UserID: 1, Title: "Standup", StartTime: "09:00", Duration: 15, Date: "2025-06-02"})
	require.NoError(t, err)
	seen[m.ID] = true

	todo, err := s.CreateTodo(models.Todo{UserID: 1, Title: "Write report", Priority: models.PriorityHigh})
	require.NoError(t, err)
	assert.False(t, seen[todo.ID], "todo reused a meeting id")
	seen[todo.ID] = true

	pr, err := s.CreateProject(models.Project{UserID: 1, Name: "Q3"})
	require.NoError(t, err)
	assert.False(t, seen[pr.ID], "project reused an id")
	seen[pr.ID] = true

	g, err := s.CreateGoal(models.Goal{UserID: 1, Title: "Run", Category: "fitness"})
	require.NoError(t, err)
	assert.False(t, seen[g.ID], "goal reused an id")
}

func TestMemoryStore_MeetingsByDateFilters(t *testing.T) {
	s := NewMemoryStore()

	a, _ := s.CreateMeeting(models.Meeting{UserID: 1, Title: "A", StartTime: "09:00", Duration: 30, Date: "2025-06-02"})
	s.CreateMeeting(models.Meeting{UserID: 1, Title: "B", StartTime: "10:00", Duration: 30, Date: "2025-06-03"})
	c, _ := s.CreateMeeting(models.Meeting{UserID: 1, Title: "C", StartTime: "11:00", Duration: 30, Date: "2025-06-02"})
	s.CreateMeeting(models.Meeting{UserID: 2, Title: "D", StartTime: "09:00", Duration: 30, Date: "2025-06-02"})

	got, err := s.MeetingsByDate(1, "2025-06-02")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, c.ID, got[1].ID)
}

func TestMemoryStore_UpdateMergesPartial(t *testing.T) {
	s := NewMemoryStore()

	created, err := s.CreateTodo(models.Todo{
		UserID:            1,
		Title:             "Write report",
		Description:       "quarterly numbers",
		Priority:          models.PriorityHigh,
		EstimatedDuration: 45,
	})
	require.NoError(t, err)

	completed := true
	updated, err := s.UpdateTodo(created.ID, models.TodoPatch{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Write report", updated.Title)
	assert.Equal(t, "quarterly numbers", updated.Description)
	assert.Equal(t, models.PriorityHigh, updated.Priority)
	assert.Equal(t, 45, updated.EstimatedDuration)
}

func TestMemoryStore_UpdateUnknownID(t *testing.T) {
	s := NewMemoryStore()

	title := "x"
	_, err := s.UpdateMeeting(42, models.MeetingPatch{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_DeleteUnknownLeavesStoreUnchanged(t *testing.T) {
	s := NewMemoryStore()

	s.CreateTodo(models.Todo{UserID: 1, Title: "keep me", Priority: models.PriorityLow})

	err := s.DeleteTodo(999)
	assert.ErrorIs(t, err, ErrNotFound)

	todos, err := s.Todos(1)
	require.NoError(t, err)
	assert.Len(t, todos, 1)
}

func TestMemoryStore_TodosByProject(t *testing.T) {
	s := NewMemoryStore()

	pr, _ := s.CreateProject(models.Project{UserID: 1, Name: "Q3"})
	s.CreateTodo(models.Todo{UserID: 1, Title: "no project", Priority: models.PriorityLow})
	in, _ := s.CreateTodo(models.Todo{UserID: 1, Title: "in project", Priority: models.PriorityLow, ProjectID: &pr.ID})

	got, err := s.TodosByProject(1, pr.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, in.ID, got[0].ID)
}

func TestMemoryStore_HabitTrackingByMonth(t *testing.T) {
	s := NewMemoryStore()

	june, _ := s.CreateHabitTracking(models.HabitTracking{UserID: 1, GoalID: 7, Date: "2025-06-15", Status: "done"})
	s.CreateHabitTracking(models.HabitTracking{UserID: 1, GoalID: 7, Date: "2025-07-01", Status: "missed"})

	got, err := s.HabitTrackingByMonth(1, 6, 2025)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, june.ID, got[0].ID)
}

func TestMemoryStore_DuplicateHealthScoresCoexist(t *testing.T) {
	s := NewMemoryStore()

	first, err := s.CreateHealthScore(models.HealthScore{UserID: 1, Month: 6, Year: 2025, Sleep: 7, Exercise: 5, Nutrition: 6, Mental: 8, Energy: 7})
	require.NoError(t, err)
	second, err := s.CreateHealthScore(models.HealthScore{UserID: 1, Month: 6, Year: 2025, Sleep: 3, Exercise: 3, Nutrition: 3, Mental: 3, Energy: 3})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	got, err := s.HealthScoresByMonth(1, 6, 2025)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestMemoryStore_PasswordTimestamps(t *testing.T) {
	s := NewMemoryStore()

	e, err := s.CreatePassword(models.Password{UserID: 1, Site: "example.com", Password: "hunter2"})
	require.NoError(t, err)
	assert.False(t, e.CreatedAt.IsZero())
	assert.Equal(t, e.CreatedAt, e.UpdatedAt)

	pw := "correct horse"
	updated, err := s.UpdatePassword(e.ID, models.PasswordPatch{Password: &pw})
	require.NoError(t, err)
	assert.Equal(t, "correct horse", updated.Password)
	assert.Equal(t, "example.com", updated.Site)
	assert.False(t, updated.UpdatedAt.Before(e.UpdatedAt))
}

func TestSeedHabitLegends(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, SeedHabitLegends(s, 1))
	legends, err := s.HabitLegends(1)
	require.NoError(t, err)
	assert.Len(t, legends, 4)

	// Idempotent: a second seed does not duplicate
	require.NoError(t, SeedHabitLegends(s, 1))
	legends, _ = s.HabitLegends(1)
	assert.Len(t, legends, 4)
}
