package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/myday/internal/config"
	"github.com/balkashynov/myday/internal/weather"
)

var weatherCmd = &cobra.Command{
	Use:   "weather [city]",
	Short: "Show the current weather (default: the configured city)",
	Args:  cobra.ArbitraryArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		client, err := weatherClient(a.cfg)
		if err != nil {
			return err
		}
		city := a.cfg.City
		if len(args) > 0 {
			city = strings.Join(args, " ")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
		defer cancel()

		info, err := client.Fetch(ctx, city)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "🌤  %s: %.0f°C, %s\n", city, info.TemperatureCelsius, info.Condition)
		return nil
	}),
}

// weatherClient builds the API client from config. It fails without an api key.
func weatherClient(cfg config.Config) (*weather.Client, error) {
	if cfg.Weather.APIKey == "" {
		return nil, errors.New("weather API key not set: add weather.api_key to the config or set MYDAY_WEATHER_API_KEY")
	}
	var opts []weather.ClientOption
	if cfg.Weather.BaseURL != "" {
		opts = append(opts, weather.WithBaseURL(cfg.Weather.BaseURL))
	}
	return weather.NewClient(cfg.Weather.APIKey, opts...), nil
}
