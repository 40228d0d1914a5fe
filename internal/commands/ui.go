package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/myday/internal/tui"
	"github.com/balkashynov/myday/internal/weather"
)

var uiCmd = &cobra.Command{
	Use:         "ui",
	Short:       "Open the interactive task manager",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{logToFile: "true", backgroundSave: "true"},
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		schedule, err := weather.ParseSchedule(a.cfg.Weather.Refresh)
		if err != nil {
			return fmt.Errorf("weather.refresh: %w", err)
		}

		// without an api key the panel just shows that weather is unavailable
		var fetcher weather.Fetcher
		if client, err := weatherClient(a.cfg); err == nil {
			fetcher = client
		} else {
			a.logger.Info("weather disabled", "reason", err)
		}

		return tui.RunApp(a.store, fetcher, a.cfg.City,
			weather.WithSchedule(schedule),
			weather.WithLogger(a.logger))
	}),
}
