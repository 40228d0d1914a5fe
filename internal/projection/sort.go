package projection

import (
	"sort"

	"github.com/balkashynov/myday/internal/models"
)

// SortTasks returns a sorted copy of tasks. The sort is stable: tasks that
// compare equal keep their input order.
func SortTasks(tasks []models.Task, key models.SortKey) []models.Task {
	sorted := make([]models.Task, len(tasks))
	copy(sorted, tasks)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch key {
		case models.SortOldest:
			return a.CreatedAt.Before(b.CreatedAt)
		case models.SortPriority:
			return a.Priority.Rank() > b.Priority.Rank()
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})

	return sorted
}
