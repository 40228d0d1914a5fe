// Package projection derives display sequences and aggregates from the task
// collection. Every function is pure and recomputes from its input.
package projection

import (
	"time"

	"github.com/balkashynov/myday/internal/models"
)

// ViewQuery holds the parameters of a view projection
type ViewQuery struct {
	View   models.View
	Status models.Status // display status filter; empty means todo
	UserID string        // current user, empty when logged out
	Now    time.Time     // "today" is the calendar day of Now in Now's location
}

// FilterView keeps the tasks matching the status filter and then the view
// predicate. Collection order is preserved.
func FilterView(tasks []models.Task, q ViewQuery) []models.Task {
	status := q.Status
	if status == "" {
		status = models.StatusTodo
	}

	result := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if !MatchesStatus(t, status) {
			continue
		}
		if !MatchesView(t, q.View, q.UserID, q.Now) {
			continue
		}
		result = append(result, t)
	}
	return result
}

// MatchesStatus reports whether t passes the status filter.
// A task without a status matches the todo filter only.
func MatchesStatus(t models.Task, status models.Status) bool {
	if t.Status == nil {
		return status == models.StatusTodo
	}
	return *t.Status == status
}

// MatchesView applies the view-specific predicate
func MatchesView(t models.Task, view models.View, userID string, now time.Time) bool {
	switch view {
	case models.ViewToday:
		return SameDay(t.CreatedAt, now)
	case models.ViewImportant:
		return t.Priority == models.PriorityHigh
	case models.ViewPlanned:
		return t.DueDate != nil
	case models.ViewAssigned:
		return userID != "" && t.AssignedTo != nil && *t.AssignedTo == userID
	default:
		return true
	}
}

// SameDay compares calendar dates in the location of now
func SameDay(t, now time.Time) bool {
	ty, tm, td := t.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	return ty == ny && tm == nm && td == nd
}

// FilterList narrows the flat task list by completion or priority
func FilterList(tasks []models.Task, filter models.ListFilter) []models.Task {
	result := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		keep := true
		switch filter {
		case models.FilterActive:
			keep = !t.Completed
		case models.FilterCompleted:
			keep = t.Completed
		case models.FilterHigh:
			keep = t.Priority == models.PriorityHigh
		case models.FilterMedium:
			keep = t.Priority == models.PriorityMedium
		case models.FilterLow:
			keep = t.Priority == models.PriorityLow
		}
		if keep {
			result = append(result, t)
		}
	}
	return result
}
