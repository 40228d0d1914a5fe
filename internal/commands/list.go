package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/myday/internal/models"
	"github.com/balkashynov/myday/internal/projection"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every task with sort and filter options",
	Long: `List every task regardless of the current view.

Sort keys: newest, oldest, priority
Filters: all, active, completed, high, medium, low`,
	Args: cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		sortBy, _ := cmd.Flags().GetString("sort")
		filter, _ := cmd.Flags().GetString("filter")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		key := models.SortKey(strings.ToLower(sortBy))
		if !key.Valid() {
			return fmt.Errorf("invalid sort %q, use newest, oldest or priority: %w", sortBy, models.ErrValidation)
		}
		f := models.ListFilter(strings.ToLower(filter))
		if !f.Valid() {
			return fmt.Errorf("invalid filter %q, use all, active, completed, high, medium or low: %w", filter, models.ErrValidation)
		}

		tasks := projection.SortTasks(projection.FilterList(a.store.Tasks(), f), key)

		if jsonOutput {
			return renderTasksJSON(cmd, map[string]any{
				"count": len(tasks),
				"tasks": tasks,
			})
		}

		out := cmd.OutOrStdout()
		if len(tasks) == 0 {
			fmt.Fprintln(out, "No tasks found. Use 'myday add \"task description\"' to create your first task.")
			return nil
		}
		printTaskTable(out, tasks, a.store.Now())
		return nil
	}),
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show view counts and today's progress",
	Args:  cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		p := a.store.Project()
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "📊 Tasks")
		for _, v := range models.Views {
			fmt.Fprintf(out, "  %-16s %d\n", v.Title(), p.Counts.For(v))
		}

		const width = 20
		filled := int(p.Progress*width + 0.5)
		fmt.Fprintf(out, "\nToday's progress: [%s%s] %.0f%%\n",
			strings.Repeat("█", filled), strings.Repeat("░", width-filled), p.Progress*100)
		return nil
	}),
}

// renderTasksJSON writes v as indented JSON
func renderTasksJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func init() {
	listCmd.Flags().String("sort", string(models.SortNewest), "Sort: newest, oldest, priority")
	listCmd.Flags().StringP("filter", "f", string(models.FilterAll), "Filter: all, active, completed, high, medium, low")
	listCmd.Flags().Bool("json", false, "JSON output")
}
