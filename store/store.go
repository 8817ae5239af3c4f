package store

import (
	"errors"
	"fmt"

	"planboard/models"
)

// ErrNotFound is returned by Update*/Delete* when no record has the given id.
var ErrNotFound = errors.New("record not found")

// Storage is the typed CRUD surface over the entity store. Every record is
// scoped to an owning user id; list operations take entity-specific filters
// and return slices sorted by id. Updates are read-merge-write with no
// check-and-set: two concurrent updates to the same id race and the last
// write wins.
type Storage interface {
	Meeting(id int) (models.Meeting, error)
	MeetingsByDate(userID int, date string) ([]models.Meeting, error)
	CreateMeeting(m models.Meeting) (models.Meeting, error)
	UpdateMeeting(id int, p models.MeetingPatch) (models.Meeting, error)
	DeleteMeeting(id int) error

	Todo(id int) (models.Todo, error)
	Todos(userID int) ([]models.Todo, error)
	TodosByProject(userID, projectID int) ([]models.Todo, error)
	CreateTodo(t models.Todo) (models.Todo, error)
	UpdateTodo(id int, p models.TodoPatch) (models.Todo, error)
	DeleteTodo(id int) error

	Projects(userID int) ([]models.Project, error)
	CreateProject(pr models.Project) (models.Project, error)
	UpdateProject(id int, p models.ProjectPatch) (models.Project, error)
	DeleteProject(id int) error

	ScheduledItemsByDate(userID int, date string) ([]models.ScheduledItem, error)
	CreateScheduledItem(s models.ScheduledItem) (models.ScheduledItem, error)
	UpdateScheduledItem(id int, p models.ScheduledItemPatch) (models.ScheduledItem, error)
	DeleteScheduledItem(id int) error

	Passwords(userID int) ([]models.Password, error)
	CreatePassword(e models.Password) (models.Password, error)
	UpdatePassword(id int, p models.PasswordPatch) (models.Password, error)
	DeletePassword(id int) error

	Goals(userID int) ([]models.Goal, error)
	CreateGoal(g models.Goal) (models.Goal, error)
	UpdateGoal(id int, p models.GoalPatch) (models.Goal, error)
	DeleteGoal(id int) error

	HabitTrackingByMonth(userID, month, year int) ([]models.HabitTracking, error)
	CreateHabitTracking(h models.HabitTracking) (models.HabitTracking, error)
	UpdateHabitTracking(id int, p models.HabitTrackingPatch) (models.HabitTracking, error)
	DeleteHabitTracking(id int) error

	HabitLegends(userID int) ([]models.HabitLegend, error)
	CreateHabitLegend(l models.HabitLegend) (models.HabitLegend, error)
	UpdateHabitLegend(id int, p models.HabitLegendPatch) (models.HabitLegend, error)
	DeleteHabitLegend(id int) error

	Accounts(userID int) ([]models.Account, error)
	CreateAccount(a models.Account) (models.Account, error)
	UpdateAccount(id int, p models.AccountPatch) (models.Account, error)
	DeleteAccount(id int) error

	Transactions(userID int) ([]models.Transaction, error)
	TransactionsByMonth(userID, month, year int) ([]models.Transaction, error)
	CreateTransaction(t models.Transaction) (models.Transaction, error)
	UpdateTransaction(id int, p models.TransactionPatch) (models.Transaction, error)
	DeleteTransaction(id int) error

	FinancialGoals(userID int) ([]models.FinancialGoal, error)
	CreateFinancialGoal(g models.FinancialGoal) (models.FinancialGoal, error)
	UpdateFinancialGoal(id int, p models.FinancialGoalPatch) (models.FinancialGoal, error)
	DeleteFinancialGoal(id int) error

	HealthScoresByMonth(userID, month, year int) ([]models.HealthScore, error)
	CreateHealthScore(h models.HealthScore) (models.HealthScore, error)
	UpdateHealthScore(id int, p models.HealthScorePatch) (models.HealthScore, error)
	DeleteHealthScore(id int) error
}

// monthPrefix formats a month/year filter as the YYYY-MM- prefix shared by
// every date in that month.
func monthPrefix(month, year int) string {
	return fmt.Sprintf("%04d-%02d-", year, month)
}
