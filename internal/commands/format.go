package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/balkashynov/myday/internal/models"
	"github.com/balkashynov/myday/internal/parser"
)

// printTaskTable prints tasks as a fixed width table for 80-column terminals
func printTaskTable(w io.Writer, tasks []models.Task, now time.Time) {
	fmt.Fprintf(w, "%-8s %-2s %-36s %-8s %-12s %s\n", "ID", "", "TITLE", "PRIORITY", "STATUS", "DUE")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, task := range tasks {
		check := "○"
		if task.Completed {
			check = "✓"
		}

		title := task.Title
		if len([]rune(title)) > 36 {
			title = string([]rune(title)[:33]) + "..."
		}

		due := "-"
		if task.DueDate != nil {
			due = shortDue(*task.DueDate, now)
		}

		fmt.Fprintf(w, "%-8s %-2s %-36s %-8s %-12s %s\n",
			task.ShortID(),
			check,
			title,
			task.Priority,
			task.StatusOrTodo(),
			due)
	}
}

// shortDue formats a due date for a table column
func shortDue(due, now time.Time) string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	local := due.In(now.Location())
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, now.Location())
	days := int(day.Sub(today).Hours() / 24)

	switch {
	case days < 0:
		return "OVERDUE"
	case days == 0:
		return "TODAY"
	case days == 1:
		return "TOMORROW"
	case days <= 7:
		return fmt.Sprintf("%dd", days)
	}
	return local.Format("02/01")
}

// printTaskDetails prints every field of one task
func printTaskDetails(w io.Writer, task models.Task, now time.Time) {
	fmt.Fprintf(w, "📋 %s\n", task.Title)
	fmt.Fprintf(w, "  ID: %s\n", task.ID)
	fmt.Fprintf(w, "  Priority: %s\n", task.Priority)
	fmt.Fprintf(w, "  Status: %s\n", task.StatusOrTodo())
	if task.Completed {
		fmt.Fprintln(w, "  Completed: yes")
	}
	if task.DueDate != nil {
		fmt.Fprintf(w, "  Due: %s\n", parser.FormatDueDate(task.DueDate, now))
	}
	if task.Reminder != nil {
		fmt.Fprintf(w, "  Reminder: %s\n", parser.FormatReminder(task.Reminder, now))
	}
	if task.Repeat != nil && *task.Repeat != models.RepeatNone {
		fmt.Fprintf(w, "  Repeat: %s\n", *task.Repeat)
	}
	if task.AssignedTo != nil {
		fmt.Fprintf(w, "  Assigned to: %s\n", *task.AssignedTo)
	}
	if len(task.Steps) > 0 {
		fmt.Fprintf(w, "  Steps (%d/%d):\n", task.StepsDone(), len(task.Steps))
		for _, step := range task.Steps {
			check := "○"
			if step.Completed {
				check = "✓"
			}
			fmt.Fprintf(w, "    %s %s  [%s]\n", check, step.Title, shortID(step.ID))
		}
	}
	if task.Notes != "" {
		fmt.Fprintf(w, "  Notes: %s\n", task.Notes)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
