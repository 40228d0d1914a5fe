package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/myday/internal/projection"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search tasks by title, notes and steps",
	Long: `Search tasks with ranked matching:
- Exact match (highest priority)
- Prefix match
- Suffix match
- Contains (lowest priority)

Search is case insensitive and looks at the title, the notes and every step.`,
	Args: cobra.MinimumNArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		query := strings.Join(args, " ")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		tasks := projection.Search(a.store.Tasks(), query)

		if jsonOutput {
			return renderTasksJSON(cmd, map[string]any{
				"query": query,
				"count": len(tasks),
				"tasks": tasks,
			})
		}

		out := cmd.OutOrStdout()
		if len(tasks) == 0 {
			fmt.Fprintf(out, "No tasks found matching '%s'\n", query)
			return nil
		}
		fmt.Fprintf(out, "Found %d task(s) matching '%s':\n\n", len(tasks), query)
		printTaskTable(out, tasks, a.store.Now())
		return nil
	}),
}

func init() {
	searchCmd.Flags().Bool("json", false, "JSON output")
}
