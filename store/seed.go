package store

import (
	"log"

	"planboard/models"
)

// defaultLegends is the starting status vocabulary for habit tracking.
var defaultLegends = []models.HabitLegend{
	{Key: "done", Label: "Done", Icon: "check", Color: "#10b981"},
	{Key: "partial", Label: "Partial", Icon: "minus", Color: "#f59e0b"},
	{Key: "missed", Label: "Missed", Icon: "x", Color: "#ef4444"},
	{Key: "skipped", Label: "Skipped", Icon: "arrow-right", Color: "#6b7280"},
}

// SeedHabitLegends creates the default legends for a user that has none.
// Creates are independent; there is no rollback if one fails.
func SeedHabitLegends(s Storage, userID int) error {
	existing, err := s.HabitLegends(userID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, l := range defaultLegends {
		l.UserID = userID
		if _, err := s.CreateHabitLegend(l); err != nil {
			return err
		}
	}
	log.Printf("Created %d default habit legends for user %d", len(defaultLegends), userID)
	return nil
}
