package models

import "time"

// Priority levels for todos.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// ScheduledItem type tags.
const (
	ItemTypeMeeting = "meeting"
	ItemTypeTodo    = "todo"
	ItemTypeCustom  = "custom"
)

type Meeting struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	StartTime string `json:"startTime"` // HH:MM
	Duration  int    `json:"duration"`  // minutes
	Color     string `json:"color"`
	Date      string `json:"date"` // YYYY-MM-DD
}

type Todo struct {
	ID                int    `json:"id"`
	UserID            int    `json:"userId"`
	Title             string `json:"title"`
	Description       string `json:"description,omitempty"`
	Priority          string `json:"priority"` // high, medium or low
	EstimatedDuration int    `json:"estimatedDuration"`
	Completed         bool   `json:"completed"`
	ProjectID         *int   `json:"projectId,omitempty"`
	DueDate           string `json:"dueDate,omitempty"`
}

type Project struct {
	ID          int    `json:"id"`
	UserID      int    `json:"userId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color"`
}

// ScheduledItem is a placed block on the daily timeline. OriginalID points back
// at the meeting or todo it was created from; it is a reference, not ownership.
type ScheduledItem struct {
	ID         int    `json:"id"`
	UserID     int    `json:"userId"`
	Title      string `json:"title"`
	StartTime  string `json:"startTime"`
	Duration   int    `json:"duration"`
	Date       string `json:"date"`
	Type       string `json:"type"` // meeting, todo or custom
	OriginalID *int   `json:"originalId,omitempty"`
	Color      string `json:"color"`
}

type Password struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Site      string    `json:"site"`
	URL       string    `json:"url,omitempty"`
	Username  string    `json:"username,omitempty"`
	Email     string    `json:"email,omitempty"`
	Password  string    `json:"password"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Goal struct {
	ID           int      `json:"id"`
	UserID       int      `json:"userId"`
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	TargetValue  *float64 `json:"targetValue,omitempty"`
	CurrentValue *float64 `json:"currentValue,omitempty"`
	Unit         string   `json:"unit,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	TargetDate   string   `json:"targetDate,omitempty"`
	Active       bool     `json:"active"`
}

// HabitTracking marks a habit (goal) with a status on a given date. Nothing
// enforces one record per (habit, date); repeated clicks append new records.
type HabitTracking struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	GoalID int    `json:"goalId"`
	Date   string `json:"date"`
	Status string `json:"status"` // legend key
	Icon   string `json:"icon"`
}

// HabitLegend is a user-defined status vocabulary entry. Cycling through the
// legend set is how a tracking cell advances on repeated clicks.
type HabitLegend struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Key    string `json:"key"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
}

type Account struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Name   string `json:"name"`
	Type   string `json:"type"` // checking, savings, credit or cash
	Color  string `json:"color,omitempty"`
}

// Transaction amounts are summed client-side; balances are never stored.
type Transaction struct {
	ID          int     `json:"id"`
	UserID      int     `json:"userId"`
	AccountID   int     `json:"accountId"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"` // income or expense
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date"`
}

type FinancialGoal struct {
	ID           int     `json:"id"`
	UserID       int     `json:"userId"`
	Title        string  `json:"title"`
	TargetAmount float64 `json:"targetAmount"`
	TargetDate   string  `json:"targetDate,omitempty"`
}

// HealthScore holds one month's self-assessment, five dimensions scored 1-10.
type HealthScore struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	Month     int    `json:"month"`
	Year      int    `json:"year"`
	Sleep     int    `json:"sleep"`
	Exercise  int    `json:"exercise"`
	Nutrition int    `json:"nutrition"`
	Mental    int    `json:"mental"`
	Energy    int    `json:"energy"`
	Notes     string `json:"notes,omitempty"`
}
