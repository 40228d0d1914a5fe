package projection

import (
	"time"

	"github.com/balkashynov/myday/internal/models"
)

// Counts are the sidebar badges, computed over the whole collection
type Counts struct {
	All       int `json:"all"`
	Today     int `json:"today"`
	Important int `json:"important"`
	Planned   int `json:"planned"`
	Assigned  int `json:"assigned"`
}

// For returns the badge of a view
func (c Counts) For(view models.View) int {
	switch view {
	case models.ViewToday:
		return c.Today
	case models.ViewImportant:
		return c.Important
	case models.ViewPlanned:
		return c.Planned
	case models.ViewAssigned:
		return c.Assigned
	default:
		return c.All
	}
}

// CountViews tallies every view bucket in a single pass.
// The status filter does not apply to counts.
func CountViews(tasks []models.Task, userID string, now time.Time) Counts {
	c := Counts{All: len(tasks)}
	for _, t := range tasks {
		if MatchesView(t, models.ViewToday, userID, now) {
			c.Today++
		}
		if MatchesView(t, models.ViewImportant, userID, now) {
			c.Important++
		}
		if MatchesView(t, models.ViewPlanned, userID, now) {
			c.Planned++
		}
		if MatchesView(t, models.ViewAssigned, userID, now) {
			c.Assigned++
		}
	}
	return c
}

// Progress is the fraction of tasks created today that are completed.
// It is 0 when nothing was created today.
func Progress(tasks []models.Task, now time.Time) float64 {
	total, done := 0, 0
	for _, t := range tasks {
		if !SameDay(t.CreatedAt, now) {
			continue
		}
		total++
		if t.Completed {
			done++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total)
}
