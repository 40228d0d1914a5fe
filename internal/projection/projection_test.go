package projection

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/balkashynov/myday/internal/models"
)

var now = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func ids(tasks []models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

// randomTasks builds a reproducible collection covering every field combination
func randomTasks(seed int64, n int) []models.Task {
	r := rand.New(rand.NewSource(seed))
	tasks := make([]models.Task, 0, n)
	for i := 0; i < n; i++ {
		t := models.Task{
			ID:        fmt.Sprintf("t%03d", i),
			Title:     fmt.Sprintf("task %d", i),
			Completed: r.Intn(2) == 0,
			Priority:  models.Priorities[r.Intn(len(models.Priorities))],
			CreatedAt: now.Add(-time.Duration(r.Intn(72)) * time.Hour),
		}
		if r.Intn(4) > 0 {
			t.Status = ptr(models.Statuses[r.Intn(len(models.Statuses))])
		}
		if r.Intn(2) == 0 {
			t.DueDate = ptr(now.Add(24 * time.Hour))
		}
		if r.Intn(3) == 0 {
			t.AssignedTo = ptr([]string{"1", "2"}[r.Intn(2)])
		}
		tasks = append(tasks, t)
	}
	return tasks
}

func TestFilterView_StatusAbsentMatchesTodoOnly(t *testing.T) {
	tasks := []models.Task{
		{ID: "a", CreatedAt: now},
		{ID: "b", CreatedAt: now, Status: ptr(models.StatusInProgress)},
		{ID: "c", CreatedAt: now, Status: ptr(models.StatusTodo)},
	}

	assert.Equal(t, []string{"a", "c"}, ids(FilterView(tasks, ViewQuery{View: models.ViewAll, Status: models.StatusTodo, Now: now})))
	assert.Equal(t, []string{"b"}, ids(FilterView(tasks, ViewQuery{View: models.ViewAll, Status: models.StatusInProgress, Now: now})))
	assert.Empty(t, FilterView(tasks, ViewQuery{View: models.ViewAll, Status: models.StatusDone, Now: now}))
	// empty status filter defaults to todo
	assert.Equal(t, []string{"a", "c"}, ids(FilterView(tasks, ViewQuery{View: models.ViewAll, Now: now})))
}

func TestFilterView_ImportantIsExactlyHighPriority(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		tasks := randomTasks(seed, 60)
		got := FilterView(tasks, ViewQuery{View: models.ViewImportant, Status: models.StatusTodo, Now: now})

		var want []string
		for _, task := range tasks {
			if task.Priority == models.PriorityHigh && MatchesStatus(task, models.StatusTodo) {
				want = append(want, task.ID)
			}
		}
		assert.Equal(t, want, nilIfEmpty(ids(got)), "seed %d", seed)
	}
}

func TestFilterView_PlannedIsExactlyDueDateSet(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		tasks := randomTasks(seed, 60)
		for _, status := range models.Statuses {
			got := FilterView(tasks, ViewQuery{View: models.ViewPlanned, Status: status, Now: now})

			var want []string
			for _, task := range tasks {
				if task.DueDate != nil && MatchesStatus(task, status) {
					want = append(want, task.ID)
				}
			}
			assert.Equal(t, want, nilIfEmpty(ids(got)), "seed %d status %s", seed, status)
		}
	}
}

func TestFilterView_TodayUsesCalendarDay(t *testing.T) {
	startOfDay := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		{ID: "midnight", CreatedAt: startOfDay},
		{ID: "yesterday", CreatedAt: startOfDay.Add(-time.Second)},
		{ID: "late", CreatedAt: startOfDay.Add(23*time.Hour + 59*time.Minute)},
	}

	got := FilterView(tasks, ViewQuery{View: models.ViewToday, Now: now})
	assert.Equal(t, []string{"midnight", "late"}, ids(got))
}

func TestFilterView_AssignedNeedsCurrentUser(t *testing.T) {
	tasks := []models.Task{
		{ID: "mine", AssignedTo: ptr("1")},
		{ID: "theirs", AssignedTo: ptr("2")},
		{ID: "nobody"},
	}

	assert.Equal(t, []string{"mine"}, ids(FilterView(tasks, ViewQuery{View: models.ViewAssigned, UserID: "1", Now: now})))
	assert.Empty(t, FilterView(tasks, ViewQuery{View: models.ViewAssigned, Now: now}))
}

func TestFilterView_PreservesOrder(t *testing.T) {
	tasks := randomTasks(7, 40)
	got := FilterView(tasks, ViewQuery{View: models.ViewAll, Status: models.StatusTodo, Now: now})

	pos := map[string]int{}
	for i, task := range tasks {
		pos[task.ID] = i
	}
	for i := 1; i < len(got); i++ {
		assert.Less(t, pos[got[i-1].ID], pos[got[i].ID])
	}
}

func TestFilterList(t *testing.T) {
	tasks := []models.Task{
		{ID: "a", Completed: true, Priority: models.PriorityHigh},
		{ID: "b", Priority: models.PriorityLow},
		{ID: "c", Priority: models.PriorityMedium},
	}

	assert.Equal(t, []string{"a", "b", "c"}, ids(FilterList(tasks, models.FilterAll)))
	assert.Equal(t, []string{"b", "c"}, ids(FilterList(tasks, models.FilterActive)))
	assert.Equal(t, []string{"a"}, ids(FilterList(tasks, models.FilterCompleted)))
	assert.Equal(t, []string{"a"}, ids(FilterList(tasks, models.FilterHigh)))
	assert.Equal(t, []string{"c"}, ids(FilterList(tasks, models.FilterMedium)))
	assert.Equal(t, []string{"b"}, ids(FilterList(tasks, models.FilterLow)))
}

func TestSortTasks_PriorityIsStable(t *testing.T) {
	tasks := []models.Task{
		{ID: "m1", Priority: models.PriorityMedium},
		{ID: "l1", Priority: models.PriorityLow},
		{ID: "h1", Priority: models.PriorityHigh},
		{ID: "m2", Priority: models.PriorityMedium},
		{ID: "h2", Priority: models.PriorityHigh},
		{ID: "l2", Priority: models.PriorityLow},
	}

	got := SortTasks(tasks, models.SortPriority)
	assert.Equal(t, []string{"h1", "h2", "m1", "m2", "l1", "l2"}, ids(got))
	// input untouched
	assert.Equal(t, "m1", tasks[0].ID)
}

func TestSortTasks_ByCreatedAt(t *testing.T) {
	tasks := []models.Task{
		{ID: "mid", CreatedAt: now.Add(-time.Hour)},
		{ID: "tie1", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "new", CreatedAt: now},
		{ID: "tie2", CreatedAt: now.Add(-2 * time.Hour)},
	}

	assert.Equal(t, []string{"new", "mid", "tie1", "tie2"}, ids(SortTasks(tasks, models.SortNewest)))
	assert.Equal(t, []string{"tie1", "tie2", "mid", "new"}, ids(SortTasks(tasks, models.SortOldest)))
}

func TestCountViews(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		tasks := randomTasks(seed, 50)
		c := CountViews(tasks, "1", now)

		assert.Equal(t, len(tasks), c.All)
		assert.LessOrEqual(t, c.Today, c.All)

		important, planned, assigned := 0, 0, 0
		for _, task := range tasks {
			if task.Priority == models.PriorityHigh {
				important++
			}
			if task.DueDate != nil {
				planned++
			}
			if task.AssignedTo != nil && *task.AssignedTo == "1" {
				assigned++
			}
		}
		assert.Equal(t, important, c.Important)
		assert.Equal(t, planned, c.Planned)
		assert.Equal(t, assigned, c.Assigned)
		assert.Equal(t, c.Important, c.For(models.ViewImportant))
	}
}

func TestProgress(t *testing.T) {
	assert.Zero(t, Progress(nil, now))
	assert.Zero(t, Progress([]models.Task{{CreatedAt: now.AddDate(0, 0, -1), Completed: true}}, now))

	tasks := []models.Task{
		{CreatedAt: now, Completed: true},
		{CreatedAt: now},
		{CreatedAt: now},
		{CreatedAt: now, Completed: true},
		{CreatedAt: now.AddDate(0, 0, -2), Completed: true},
	}
	assert.InDelta(t, 0.5, Progress(tasks, now), 1e-9)
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

func TestSearch_RanksMatches(t *testing.T) {
	tasks := []models.Task{
		{ID: "contains", Title: "go buy milk now"},
		{ID: "suffix", Title: "oat milk"},
		{ID: "none", Title: "walk the dog"},
		{ID: "exact", Title: "Milk"},
		{ID: "prefix", Title: "milk the cow"},
		{ID: "step", Title: "groceries", Steps: []models.Step{{ID: "s", Title: "milk"}}},
		{ID: "notes", Title: "errands", Notes: "remember MILK!"},
	}

	got := Search(tasks, " milk ")
	assert.Equal(t, []string{"exact", "step", "prefix", "suffix", "contains", "notes"}, ids(got))
	assert.Empty(t, Search(tasks, "  "))
	assert.Empty(t, Search(tasks, "bread"))
}
