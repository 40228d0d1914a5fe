package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/myday/internal/parser"
)

var rmCmd = &cobra.Command{
	Use:     "rm <task-id>",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		task, err := a.store.Find(args[0])
		if err != nil {
			return err
		}
		if err := a.store.RemoveTask(task.ID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "🗑️  Deleted task %s: %s\n", task.ShortID(), task.Title)
		return nil
	}),
}

var priorityCmd = &cobra.Command{
	Use:   "priority <task-id> <low|medium|high>",
	Short: "Set a task's priority",
	Args:  cobra.ExactArgs(2),
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		task, err := a.store.Find(args[0])
		if err != nil {
			return err
		}
		p, err := parser.NormalizePriority(args[1])
		if err != nil {
			return err
		}
		if err := a.store.SetPriority(task.ID, p); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Priority of %s set to %s\n", task.ShortID(), p)
		return nil
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status <task-id> <todo|in-progress|done>",
	Short: "Set a task's workflow status",
	Args:  cobra.ExactArgs(2),
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		task, err := a.store.Find(args[0])
		if err != nil {
			return err
		}
		s, err := parser.NormalizeStatus(args[1])
		if err != nil {
			return err
		}
		if err := a.store.SetStatus(task.ID, s); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Status of %s set to %s\n", task.ShortID(), s)
		return nil
	}),
}

var selectCmd = &cobra.Command{
	Use:   "select [task-id]",
	Short: "Select a task and show its details (no id shows the selection)",
	Args:  cobra.MaximumNArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		if len(args) == 1 {
			task, err := a.store.Find(args[0])
			if err != nil {
				return err
			}
			if err := a.store.SelectTask(task.ID); err != nil {
				return err
			}
		}

		task, ok := a.store.Selected()
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "No task selected")
			return nil
		}
		printTaskDetails(cmd.OutOrStdout(), task, a.store.Now())
		return nil
	}),
}

var notesCmd = &cobra.Command{
	Use:   "notes <task-id> [text...]",
	Short: "Replace a task's notes (no text clears them)",
	Args:  cobra.MinimumNArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		task, err := a.store.Find(args[0])
		if err != nil {
			return err
		}
		notes := strings.Join(args[1:], " ")
		if err := a.store.UpdateNotes(task.ID, notes); err != nil {
			return err
		}
		if notes == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared notes of %s\n", task.ShortID())
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Updated notes of %s\n", task.ShortID())
		}
		return nil
	}),
}

var remindCmd = &cobra.Command{
	Use:   "remind <task-id> [when]",
	Short: "Set a reminder (default: in 1 hour)",
	Long: `Set a reminder on a task.

Formats: X minutes, X hours, today, tomorrow, dd/mm/yyyy, X days, X weeks`,
	Args: cobra.MinimumNArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		task, err := a.store.Find(args[0])
		if err != nil {
			return err
		}
		when := "1 hour"
		if len(args) > 1 {
			when = strings.Join(args[1:], " ")
		}
		now := a.store.Now()
		at, err := parser.ParseWhen(when, now)
		if err != nil {
			return err
		}
		if err := a.store.SetReminder(task.ID, at); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Reminder for %s: %s\n", task.ShortID(), parser.FormatReminder(&at, now))
		return nil
	}),
}

var dueCmd = &cobra.Command{
	Use:   "due <task-id> [when]",
	Short: "Set a due date (default: tomorrow)",
	Long: `Set the due date of a task.

Formats: today, tomorrow, dd/mm/yyyy, yyyy-mm-dd, X days, X weeks, X hours`,
	Args: cobra.MinimumNArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		task, err := a.store.Find(args[0])
		if err != nil {
			return err
		}
		when := "tomorrow"
		if len(args) > 1 {
			when = strings.Join(args[1:], " ")
		}
		now := a.store.Now()
		due, err := parser.ParseWhen(when, now)
		if err != nil {
			return err
		}
		if err := a.store.SetDueDate(task.ID, due); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", task.ShortID(), parser.FormatDueDate(&due, now))
		return nil
	}),
}

var repeatCmd = &cobra.Command{
	Use:   "repeat <task-id> <none|daily>",
	Short: "Set a task's repeat rule",
	Args:  cobra.ExactArgs(2),
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		task, err := a.store.Find(args[0])
		if err != nil {
			return err
		}
		r, err := parser.NormalizeRepeat(args[1])
		if err != nil {
			return err
		}
		if err := a.store.SetRepeat(task.ID, r); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s repeats: %s\n", task.ShortID(), r)
		return nil
	}),
}

var assignCmd = &cobra.Command{
	Use:   "assign <task-id> [user-id]",
	Short: "Assign a task (default: to yourself)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		task, err := a.store.Find(args[0])
		if err != nil {
			return err
		}

		var userID string
		if len(args) == 2 {
			userID = strings.TrimSpace(args[1])
		} else {
			user, ok := a.store.User()
			if !ok {
				return fmt.Errorf("not logged in: use 'myday login' or pass a user id")
			}
			userID = user.ID
		}
		if userID == "" {
			return fmt.Errorf("user id is required")
		}

		if err := a.store.AssignTask(task.ID, userID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Assigned %s to user %s\n", task.ShortID(), userID)
		return nil
	}),
}
