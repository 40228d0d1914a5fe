package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/balkashynov/myday/internal/models"
)

// AddTaskRequest holds the data needed to create a new task
type AddTaskRequest struct {
	Title    string
	Priority models.Priority // empty means medium
	Status   models.Status   // empty means todo

	// Optional metadata set at creation time
	DueDate  *time.Time
	Reminder *time.Time
	Repeat   *models.Repeat
	Notes    string
}

func (r AddTaskRequest) normalize() (AddTaskRequest, error) {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return r, fmt.Errorf("title is required: %w", models.ErrValidation)
	}
	if r.Priority == "" {
		r.Priority = models.PriorityMedium
	}
	if !r.Priority.Valid() {
		return r, fmt.Errorf("invalid priority %q: %w", r.Priority, models.ErrValidation)
	}
	if r.Status == "" {
		r.Status = models.StatusTodo
	}
	if !r.Status.Valid() {
		return r, fmt.Errorf("invalid status %q: %w", r.Status, models.ErrValidation)
	}
	if r.Repeat != nil && !r.Repeat.Valid() {
		return r, fmt.Errorf("invalid repeat %q: %w", *r.Repeat, models.ErrValidation)
	}
	return r, nil
}

// AddTask creates a task at the front of the collection (newest first).
// A blank title is rejected and leaves the collection unchanged.
func (s *Store) AddTask(req AddTaskRequest) (models.Task, error) {
	req, err := req.normalize()
	if err != nil {
		return models.Task{}, err
	}

	status := req.Status
	task := models.Task{
		ID:        s.newID(),
		Title:     req.Title,
		Completed: false,
		Priority:  req.Priority,
		Status:    &status,
		CreatedAt: s.now(),
		Notes:     req.Notes,
		Steps:     []models.Step{},
	}
	if req.DueDate != nil {
		d := *req.DueDate
		task.DueDate = &d
	}
	if req.Reminder != nil {
		r := *req.Reminder
		task.Reminder = &r
	}
	if req.Repeat != nil {
		r := *req.Repeat
		task.Repeat = &r
	}

	s.update("addTask", func(st *state) bool {
		// ids must stay unique even with an injected generator
		for st.indexOf(task.ID) >= 0 {
			task.ID = s.newID()
		}
		st.tasks = append([]models.Task{task}, st.tasks...)
		return true
	})
	return task.Clone(), nil
}

// RemoveTask deletes a task and clears the selection if it pointed at it
func (s *Store) RemoveTask(id string) error {
	s.update("removeTask", func(st *state) bool {
		i := st.indexOf(id)
		if i < 0 {
			return false
		}
		st.tasks = append(st.tasks[:i], st.tasks[i+1:]...)
		if st.selectedID == id {
			st.selectedID = ""
		}
		return true
	})
	return nil
}

// mutateTask applies fn to the task with the given id; unknown ids are a no-op
func (s *Store) mutateTask(op, id string, fn func(t *models.Task)) {
	s.update(op, func(st *state) bool {
		t := st.task(id)
		if t == nil {
			return false
		}
		fn(t)
		return true
	})
}

// ToggleTask flips completion
func (s *Store) ToggleTask(id string) error {
	s.mutateTask("toggleTask", id, func(t *models.Task) {
		t.Completed = !t.Completed
	})
	return nil
}

// SetPriority changes a task's priority
func (s *Store) SetPriority(id string, p models.Priority) error {
	if !p.Valid() {
		return fmt.Errorf("invalid priority %q: %w", p, models.ErrValidation)
	}
	s.mutateTask("setPriority", id, func(t *models.Task) {
		t.Priority = p
	})
	return nil
}

// SetStatus changes a task's workflow status
func (s *Store) SetStatus(id string, status models.Status) error {
	if !status.Valid() {
		return fmt.Errorf("invalid status %q: %w", status, models.ErrValidation)
	}
	s.mutateTask("setStatus", id, func(t *models.Task) {
		t.Status = &status
	})
	return nil
}

// UpdateNotes replaces a task's notes
func (s *Store) UpdateNotes(id, notes string) error {
	s.mutateTask("updateNotes", id, func(t *models.Task) {
		t.Notes = notes
	})
	return nil
}

// AddStep appends a step to a task. An unknown task is a no-op and returns
// the zero Step.
func (s *Store) AddStep(taskID, title string) (models.Step, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Step{}, fmt.Errorf("step title is required: %w", models.ErrValidation)
	}

	var added models.Step
	s.update("addStep", func(st *state) bool {
		t := st.task(taskID)
		if t == nil {
			return false
		}
		step := models.Step{ID: s.newID(), Title: title}
		for stepIndex(t.Steps, step.ID) >= 0 {
			step.ID = s.newID()
		}
		t.Steps = append(t.Steps, step)
		added = step
		return true
	})
	return added, nil
}

func stepIndex(steps []models.Step, id string) int {
	for i := range steps {
		if steps[i].ID == id {
			return i
		}
	}
	return -1
}

// ToggleStep flips a step's completion
func (s *Store) ToggleStep(taskID, stepID string) error {
	s.update("toggleStep", func(st *state) bool {
		t := st.task(taskID)
		if t == nil {
			return false
		}
		i := stepIndex(t.Steps, stepID)
		if i < 0 {
			return false
		}
		t.Steps[i].Completed = !t.Steps[i].Completed
		return true
	})
	return nil
}

// SetReminder sets when to remind about a task
func (s *Store) SetReminder(id string, at time.Time) error {
	s.mutateTask("setReminder", id, func(t *models.Task) {
		t.Reminder = &at
	})
	return nil
}

// SetDueDate sets a task's due date
func (s *Store) SetDueDate(id string, at time.Time) error {
	s.mutateTask("setDueDate", id, func(t *models.Task) {
		t.DueDate = &at
	})
	return nil
}

// SetRepeat sets a task's repeat rule
func (s *Store) SetRepeat(id string, r models.Repeat) error {
	if !r.Valid() {
		return fmt.Errorf("invalid repeat %q: %w", r, models.ErrValidation)
	}
	s.mutateTask("setRepeat", id, func(t *models.Task) {
		t.Repeat = &r
	})
	return nil
}

// AssignTask points a task at a user id. The id is not validated; a dangling
// reference simply matches no one.
func (s *Store) AssignTask(id, userID string) error {
	s.mutateTask("assignTask", id, func(t *models.Task) {
		t.AssignedTo = &userID
	})
	return nil
}
