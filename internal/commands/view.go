package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/myday/internal/models"
	"github.com/balkashynov/myday/internal/parser"
	"github.com/balkashynov/myday/internal/projection"
)

var viewCmd = &cobra.Command{
	Use:   "view [today|important|planned|assigned|all]",
	Short: "Show or switch the current view",
	Args:  cobra.MaximumNArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		if len(args) == 1 {
			v, err := parser.NormalizeView(args[0])
			if err != nil {
				return err
			}
			if err := a.store.SetCurrentView(v); err != nil {
				return err
			}
		}

		p := a.store.Project()
		out := cmd.OutOrStdout()
		for i, v := range models.Views {
			marker := " "
			if v == p.View {
				marker = "▶"
			}
			fmt.Fprintf(out, "%s %d. %-16s %d\n", marker, i+1, v.Title(), p.Counts.For(v))
		}
		return nil
	}),
}

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the tasks of the current view",
	Long: `List the tasks of the current view filtered by the current status filter.

--view and --status show another view or status without changing the saved ones.
--status also accepts "all" to skip status filtering.`,
	Args: cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		p := a.store.Project()
		visible := p.Visible
		view, status := p.View, p.Status

		viewFlag, _ := cmd.Flags().GetString("view")
		statusFlag, _ := cmd.Flags().GetString("status")
		if viewFlag != "" || statusFlag != "" {
			if viewFlag != "" {
				v, err := parser.NormalizeView(viewFlag)
				if err != nil {
					return err
				}
				view = v
			}
			var all bool
			if statusFlag == "all" {
				all = true
			} else if statusFlag != "" {
				s, err := parser.NormalizeStatus(statusFlag)
				if err != nil {
					return err
				}
				status = s
			}

			userID := ""
			if p.User != nil {
				userID = p.User.ID
			}
			tasks := a.store.Tasks()
			now := a.store.Now()
			visible = nil
			for _, t := range tasks {
				if !projection.MatchesView(t, view, userID, now) {
					continue
				}
				if !all && !projection.MatchesStatus(t, status) {
					continue
				}
				visible = append(visible, t)
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n\n", view.Title(), status)
		if len(visible) == 0 {
			fmt.Fprintln(out, "No tasks here. Use 'myday add \"task\"' to create one.")
			return nil
		}
		printTaskTable(out, visible, a.store.Now())
		return nil
	}),
}

func init() {
	lsCmd.Flags().String("view", "", "View: today, important, planned, assigned, all (or 1-5)")
	lsCmd.Flags().StringP("status", "s", "", "Status: todo, in-progress, done, all")
}
