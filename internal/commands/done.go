package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Toggle a task between completed and open",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		task, err := a.store.Find(args[0])
		if err != nil {
			return err
		}
		if err := a.store.ToggleTask(task.ID); err != nil {
			return err
		}

		if task.Completed {
			fmt.Fprintf(cmd.OutOrStdout(), "↩️  Reopened task %s: %s\n", task.ShortID(), task.Title)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Completed task %s: %s\n", task.ShortID(), task.Title)
		}
		return nil
	}),
}
