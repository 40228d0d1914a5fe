package weather

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/balkashynov/myday/internal/models"
)

// DefaultRefresh is how often the watcher polls when no schedule is given
const DefaultRefresh = 30 * time.Minute

// Reading is what display surfaces render: the last good value plus the
// error of the latest attempt, if it failed.
type Reading struct {
	Info      models.WeatherInfo
	Valid     bool // Info holds a successful result
	Err       error
	UpdatedAt time.Time
}

// Watcher refreshes the weather for one city on a schedule
type Watcher struct {
	fetcher  Fetcher
	city     string
	schedule cron.Schedule
	timeout  time.Duration
	logger   *slog.Logger
	onUpdate func(Reading)

	mu         sync.Mutex
	generation uint64
	reading    Reading

	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
}

// WatcherOption configures a Watcher
type WatcherOption func(*Watcher)

// WithSchedule sets the refresh schedule
func WithSchedule(s cron.Schedule) WatcherOption {
	return func(w *Watcher) { w.schedule = s }
}

// WithLogger sets the logger; the default discards
func WithLogger(l *slog.Logger) WatcherOption {
	return func(w *Watcher) { w.logger = l }
}

// OnUpdate registers a callback run after every applied refresh
func OnUpdate(fn func(Reading)) WatcherOption {
	return func(w *Watcher) { w.onUpdate = fn }
}

// ParseSchedule accepts a Go duration ("30m") or a standard cron
// expression including descriptors ("@hourly", "*/15 * * * *").
func ParseSchedule(spec string) (cron.Schedule, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return cron.Every(DefaultRefresh), nil
	}
	if d, err := time.ParseDuration(spec); err == nil {
		if d < time.Second {
			return nil, fmt.Errorf("refresh interval %s is below one second: %w", d, models.ErrValidation)
		}
		return cron.Every(d), nil
	}
	s, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse refresh schedule %q: %w", spec, err)
	}
	return s, nil
}

// NewWatcher creates a stopped watcher for city
func NewWatcher(f Fetcher, city string, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		fetcher:  f,
		city:     city,
		schedule: cron.Every(DefaultRefresh),
		timeout:  15 * time.Second,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start refreshes once right away and then on every schedule tick
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.cron != nil {
		w.mu.Unlock()
		return
	}
	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.cron = cron.New()
	w.cron.Schedule(w.schedule, cron.FuncJob(w.tick))
	w.cron.Start()
	w.mu.Unlock()

	w.logger.Debug("weather watcher started", "city", w.city)
	go w.tick()
}

// Stop cancels the schedule and any in-flight request
func (w *Watcher) Stop() {
	w.mu.Lock()
	c, cancel := w.cron, w.cancel
	w.cron, w.cancel = nil, nil
	w.mu.Unlock()

	if c == nil {
		return
	}
	cancel()
	<-c.Stop().Done()
	w.logger.Debug("weather watcher stopped", "city", w.city)
}

func (w *Watcher) tick() {
	w.mu.Lock()
	ctx := w.ctx
	w.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	if _, err := w.Refresh(ctx); err != nil {
		w.logger.Warn("weather refresh failed", "city", w.city, "error", err)
	}
}

// Refresh fetches now. A refresh started later supersedes this one: if
// another refresh began while this one was in flight, its result is
// dropped. Failures keep the last good value.
func (w *Watcher) Refresh(ctx context.Context) (Reading, error) {
	w.mu.Lock()
	w.generation++
	gen := w.generation
	w.mu.Unlock()

	info, err := w.fetcher.Fetch(ctx, w.city)

	w.mu.Lock()
	if gen != w.generation {
		r := w.reading
		w.mu.Unlock()
		w.logger.Debug("weather result superseded", "generation", gen)
		return r, err
	}
	if err != nil {
		w.reading.Err = err
	} else {
		w.reading = Reading{Info: info, Valid: true, UpdatedAt: time.Now()}
	}
	r := w.reading
	w.mu.Unlock()

	if w.onUpdate != nil {
		w.onUpdate(r)
	}
	return r, err
}

// Current returns the latest applied reading
func (w *Watcher) Current() Reading {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reading
}

// City is the city being watched
func (w *Watcher) City() string {
	return w.city
}
