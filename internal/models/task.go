package models

import (
	"fmt"
	"time"
)

// Priority of a task
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists the priorities from lowest to highest
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p is a known priority
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank orders priorities: high > medium > low. Unknown values rank lowest.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Next cycles low -> medium -> high -> low
func (p Priority) Next() Priority {
	switch p {
	case PriorityLow:
		return PriorityMedium
	case PriorityMedium:
		return PriorityHigh
	default:
		return PriorityLow
	}
}

// Status is the workflow state of a task
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Statuses lists every status in workflow order
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Next cycles todo -> in-progress -> done -> todo
func (s Status) Next() Status {
	switch s {
	case StatusTodo:
		return StatusInProgress
	case StatusInProgress:
		return StatusDone
	default:
		return StatusTodo
	}
}

// Repeat rule of a task
type Repeat string

const (
	RepeatNone  Repeat = "none"
	RepeatDaily Repeat = "daily"
)

// Valid reports whether r is a known repeat rule
func (r Repeat) Valid() bool {
	return r == RepeatNone || r == RepeatDaily
}

// Step is a checklist entry owned by a task
type Step struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Task represents a todo item.
// Optional fields are pointers: nil means absent.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Priority  Priority  `json:"priority"`
	Status    *Status   `json:"status,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	DueDate  *time.Time `json:"dueDate,omitempty"`
	Reminder *time.Time `json:"reminder,omitempty"`
	Repeat   *Repeat    `json:"repeat,omitempty"`

	Notes      string  `json:"notes,omitempty"`
	Steps      []Step  `json:"steps"`
	AssignedTo *string `json:"assignedTo,omitempty"`
}

// StatusOrTodo returns the task status, reading an absent status as todo
func (t Task) StatusOrTodo() Status {
	if t.Status == nil {
		return StatusTodo
	}
	return *t.Status
}

// ShortID is the id prefix shown in listings
func (t Task) ShortID() string {
	if len(t.ID) > 8 {
		return t.ID[:8]
	}
	return t.ID
}

// StepsDone counts completed steps
func (t Task) StepsDone() int {
	n := 0
	for _, s := range t.Steps {
		if s.Completed {
			n++
		}
	}
	return n
}

// Clone returns a deep copy so callers never share steps or optional fields
// with the store.
func (t Task) Clone() Task {
	c := t
	if t.Steps != nil {
		c.Steps = make([]Step, len(t.Steps))
		copy(c.Steps, t.Steps)
	} else {
		c.Steps = []Step{}
	}
	if t.Status != nil {
		s := *t.Status
		c.Status = &s
	}
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	if t.Reminder != nil {
		r := *t.Reminder
		c.Reminder = &r
	}
	if t.Repeat != nil {
		r := *t.Repeat
		c.Repeat = &r
	}
	if t.AssignedTo != nil {
		a := *t.AssignedTo
		c.AssignedTo = &a
	}
	return c
}

// String renders a one-line summary
func (t Task) String() string {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s (%s)", mark, t.Title, t.Priority)
}
