package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/myday/internal/models"
)

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Manage the steps of a task",
}

var stepAddCmd = &cobra.Command{
	Use:   "add <task-id> <step title...>",
	Short: "Append a step to a task",
	Args:  cobra.MinimumNArgs(2),
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		task, err := a.store.Find(args[0])
		if err != nil {
			return err
		}
		step, err := a.store.AddStep(task.ID, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added step %s to %s: %s\n", shortID(step.ID), task.ShortID(), step.Title)
		return nil
	}),
}

var stepDoneCmd = &cobra.Command{
	Use:   "done <task-id> <step-id>",
	Short: "Toggle a step between completed and open",
	Args:  cobra.ExactArgs(2),
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		task, err := a.store.Find(args[0])
		if err != nil {
			return err
		}
		step, err := findStep(task, args[1])
		if err != nil {
			return err
		}
		if err := a.store.ToggleStep(task.ID, step.ID); err != nil {
			return err
		}
		if step.Completed {
			fmt.Fprintf(cmd.OutOrStdout(), "↩️  Reopened step: %s\n", step.Title)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Completed step: %s\n", step.Title)
		}
		return nil
	}),
}

// findStep resolves a step by 1-based position, full id or unique id prefix
func findStep(task models.Task, ref string) (models.Step, error) {
	if pos, err := strconv.Atoi(ref); err == nil && pos >= 1 && pos <= len(task.Steps) {
		return task.Steps[pos-1], nil
	}

	var match *models.Step
	for i := range task.Steps {
		s := &task.Steps[i]
		if s.ID == ref {
			return *s, nil
		}
		if strings.HasPrefix(s.ID, ref) {
			if match != nil {
				return models.Step{}, fmt.Errorf("step id %q is ambiguous", ref)
			}
			match = s
		}
	}
	if match == nil {
		return models.Step{}, fmt.Errorf("step %q: %w", ref, models.ErrNotFound)
	}
	return *match, nil
}

func init() {
	stepCmd.AddCommand(stepAddCmd)
	stepCmd.AddCommand(stepDoneCmd)
}
