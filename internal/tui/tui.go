// Package tui is the interactive terminal interface.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/myday/internal/store"
	"github.com/balkashynov/myday/internal/weather"
)

// RunApp starts the interactive UI. A nil fetcher disables the weather panel.
func RunApp(s *store.Store, fetcher weather.Fetcher, city string, opts ...weather.WatcherOption) error {
	var (
		p       *tea.Program
		watcher *weather.Watcher
	)

	if fetcher != nil && city != "" {
		opts = append(opts, weather.OnUpdate(func(r weather.Reading) {
			if p != nil {
				p.Send(weatherMsg(r))
			}
		}))
		watcher = weather.NewWatcher(fetcher, city, opts...)
	}

	p = tea.NewProgram(NewAppModel(s, watcher), tea.WithAltScreen())

	if watcher != nil {
		watcher.Start()
		defer watcher.Stop()
	}

	_, err := p.Run()
	return err
}
