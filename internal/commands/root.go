package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/balkashynov/myday/internal/config"
	"github.com/balkashynov/myday/internal/db"
	"github.com/balkashynov/myday/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// command annotations
const (
	logToFile      = "log-to-file"     // log to a file instead of stderr
	backgroundSave = "background-save" // save snapshots off the command goroutine
)

var rootCmd = &cobra.Command{
	Use:   "myday",
	Short: "A terminal task manager for your day",
	Long: `myday keeps your tasks, steps, due dates and reminders in one place
and shows them through five views: Today, Important, Planned, Assigned and All.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// app bundles everything a command needs
type app struct {
	cfg    config.Config
	logger *slog.Logger
	db     *gorm.DB
	store  *store.Store

	logFile *os.File
}

// openApp loads config, opens the database and loads the store
func openApp(cmd *cobra.Command) (*app, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		cfg.Database = dbPath
	}

	a := &app{cfg: cfg}

	level := cfg.SlogLevel()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	var logOut io.Writer = cmd.ErrOrStderr()
	if cmd.Annotations[logToFile] != "" {
		// the UI owns the terminal
		if err := os.MkdirAll(filepath.Dir(cfg.Database), 0755); err != nil {
			return nil, fmt.Errorf("failed to create myday directory: %w", err)
		}
		f, err := os.OpenFile(filepath.Join(filepath.Dir(cfg.Database), "myday.log"),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		a.logFile = f
		logOut = f
	}
	a.logger = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	a.db, err = db.Open(cfg.Database)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.logger.Debug("database opened", "path", cfg.Database)

	opts := []store.Option{store.WithLogger(a.logger)}
	if cmd.Annotations[backgroundSave] != "" {
		opts = append(opts, store.WithBackgroundSave())
	}
	a.store = store.Open(context.Background(), db.NewSnapshotRepo(a.db), opts...)
	return a, nil
}

// Close flushes pending saves and releases the database and log file
func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
	if err := db.Close(a.db); err != nil {
		a.logger.Warn("failed to close database", "error", err)
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

// withStore wraps a command function to open the app first
func withStore(fn func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(cmd, args, a)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "myday %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/myday/config.json)")
	rootCmd.PersistentFlags().String("db", "", "Database file (overrides config)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Debug logging")

	rootCmd.SetHelpCommand(helpCmd)

	// Session
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	// Tasks
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(priorityCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(repeatCmd)
	rootCmd.AddCommand(assignCmd)

	// Views
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)

	// Other
	rootCmd.AddCommand(weatherCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(versionCmd)
}
