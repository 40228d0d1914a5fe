package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/myday/internal/models"
	"github.com/balkashynov/myday/internal/parser"
	"github.com/balkashynov/myday/internal/store"
)

var addCmd = &cobra.Command{
	Use:   "add <task title>",
	Short: "Add a new task",
	Long: `Add a new task. The task is created at the top of the list and selected.

Smart parsing syntax:
  +priority       - Priority (low/medium/high or 1/2/3)
  due:tomorrow    - Due date (today, tomorrow, dd/mm/yyyy, X days, X weeks)
  remind:2h       - Reminder (X minutes, X hours, or any due date format)
  repeat:daily    - Repeat rule (none/daily)

Flags take precedence over the smart syntax.

Example:
  myday add "Buy milk +high due:tomorrow remind:2h"`,
	Args: cobra.MinimumNArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		now := a.store.Now()
		parsed := parser.ParseTitle(strings.Join(args, " "), now)
		if len(parsed.Errors) > 0 {
			return errors.New(strings.Join(parsed.Errors, "; "))
		}

		req := store.AddTaskRequest{
			Title:    parsed.Title,
			Priority: parsed.Priority,
			DueDate:  parsed.DueDate,
			Reminder: parsed.Reminder,
			Repeat:   parsed.Repeat,
		}

		// Override with explicit flags (flags take precedence)
		if v, _ := cmd.Flags().GetString("priority"); v != "" {
			p, err := parser.NormalizePriority(v)
			if err != nil {
				return err
			}
			req.Priority = p
		}
		if v, _ := cmd.Flags().GetString("status"); v != "" {
			s, err := parser.NormalizeStatus(v)
			if err != nil {
				return err
			}
			req.Status = s
		}
		if v, _ := cmd.Flags().GetString("due"); v != "" {
			due, err := parser.ParseWhen(v, now)
			if err != nil {
				return fmt.Errorf("due date: %w", err)
			}
			req.DueDate = &due
		}
		if v, _ := cmd.Flags().GetString("remind"); v != "" {
			at, err := parser.ParseWhen(v, now)
			if err != nil {
				return fmt.Errorf("reminder: %w", err)
			}
			req.Reminder = &at
		}
		if v, _ := cmd.Flags().GetString("repeat"); v != "" {
			r, err := parser.NormalizeRepeat(v)
			if err != nil {
				return err
			}
			req.Repeat = &r
		}
		req.Notes, _ = cmd.Flags().GetString("note")

		task, err := a.store.AddTask(req)
		if err != nil {
			return err
		}
		if err := a.store.SelectTask(task.ID); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Created task %s: %s\n", task.ShortID(), task.Title)
		fmt.Fprintf(out, "  Priority: %s\n", task.Priority)
		if s := task.StatusOrTodo(); s != models.StatusTodo {
			fmt.Fprintf(out, "  Status: %s\n", s)
		}
		if task.DueDate != nil {
			fmt.Fprintf(out, "  Due: %s\n", parser.FormatDueDate(task.DueDate, now))
		}
		if task.Reminder != nil {
			fmt.Fprintf(out, "  Reminder: %s\n", parser.FormatReminder(task.Reminder, now))
		}
		if task.Repeat != nil {
			fmt.Fprintf(out, "  Repeat: %s\n", *task.Repeat)
		}
		return nil
	}),
}

func init() {
	addCmd.Flags().String("priority", "", "Priority: low, medium, high, or 1-3")
	addCmd.Flags().String("status", "", "Status: todo, in-progress, done")
	addCmd.Flags().String("due", "", "Due date: today, tomorrow, dd/mm/yyyy, X days, X weeks")
	addCmd.Flags().String("remind", "", "Reminder: X minutes, X hours, or a due date format")
	addCmd.Flags().String("repeat", "", "Repeat: none, daily")
	addCmd.Flags().String("note", "", "Notes")
}
