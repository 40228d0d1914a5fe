package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/balkashynov/myday/internal/models"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write all tasks and session state to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		snap := a.store.Snapshot()
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
		if err := os.WriteFile(args[0], data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "📦 Exported %d task(s) to %s\n", len(snap.Tasks), args[0])
		return nil
	}),
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all tasks and session state with a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		var snap models.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return fmt.Errorf("%w: %v", models.ErrIncompatibleSnapshot, err)
		}
		if err := a.store.Restore(snap); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "📥 Imported %d task(s) from %s\n", len(snap.Tasks), args[0])
		return nil
	}),
}
