// Package store holds the task collection, session and view state. Every
// mutation goes through a named transition that runs atomically under one
// mutex; persistence happens after the lock is released.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/balkashynov/myday/internal/auth"
	"github.com/balkashynov/myday/internal/models"
	"github.com/balkashynov/myday/internal/projection"
)

// ErrAmbiguous is returned by Find when an id prefix matches several tasks
var ErrAmbiguous = errors.New("ambiguous task id")

// Persister loads and saves snapshots. Load returns (nil, nil) when nothing
// has been saved yet.
type Persister interface {
	Load(ctx context.Context) (*models.Snapshot, error)
	Save(ctx context.Context, snap models.Snapshot) error
}

// state is everything guarded by Store.mu
type state struct {
	tasks        []models.Task // newest first
	user         *models.User
	currentView  models.View
	selectedID   string
	statusFilter models.Status
}

func defaultState() state {
	return state{
		tasks:        []models.Task{},
		currentView:  models.ViewToday,
		statusFilter: models.StatusTodo,
	}
}

// Store is the single source of truth for tasks and session
type Store struct {
	mu       sync.Mutex
	st       state
	revision uint64

	now       func() time.Time
	newID     func() string
	auth      auth.Authenticator
	persister Persister
	logger    *slog.Logger

	saveMu      sync.Mutex
	savedRev    uint64
	saveTimeout time.Duration

	// background saving; latest pending snapshot wins
	background bool
	pendingMu  sync.Mutex
	pendingRev uint64
	pending    models.Snapshot
	wake       chan struct{}
	quit       chan struct{}
	done       chan struct{}
	closeOnce  sync.Once
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the uuid generator for task and step ids
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithAuthenticator replaces the login stub
func WithAuthenticator(a auth.Authenticator) Option {
	return func(s *Store) { s.auth = a }
}

// WithPersister saves a snapshot after every change
func WithPersister(p Persister) Option {
	return func(s *Store) { s.persister = p }
}

// WithLogger sets the logger; the default discards
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithBackgroundSave moves saves off the calling goroutine. Close must be
// called to flush the last pending save.
func WithBackgroundSave() Option {
	return func(s *Store) { s.background = true }
}

// New creates an empty store
func New(opts ...Option) *Store {
	s := &Store{
		st:          defaultState(),
		now:         time.Now,
		newID:       uuid.NewString,
		auth:        auth.Stub{},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		saveTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.background {
		s.wake = make(chan struct{}, 1)
		s.quit = make(chan struct{})
		s.done = make(chan struct{})
		go s.saveLoop()
	}
	return s
}

// Close flushes a pending background save and stops the saver.
// It is a no-op for stores saving in the foreground.
func (s *Store) Close() {
	if !s.background {
		return
	}
	s.closeOnce.Do(func() {
		close(s.quit)
		<-s.done
	})
}

func (s *Store) saveLoop() {
	defer close(s.done)
	for {
		select {
		case <-s.wake:
			s.savePending()
		case <-s.quit:
			s.savePending()
			return
		}
	}
}

func (s *Store) savePending() {
	s.pendingMu.Lock()
	rev, snap := s.pendingRev, s.pending
	s.pendingMu.Unlock()
	if rev > 0 {
		s.save(rev, snap)
	}
}

// Open creates a store and loads the last saved snapshot from p.
// Load failures are logged and the store starts from the default state.
func Open(ctx context.Context, p Persister, opts ...Option) *Store {
	s := New(append(opts, WithPersister(p))...)

	snap, err := p.Load(ctx)
	if err != nil {
		s.logger.Warn("load snapshot failed, starting empty", "error", err)
		return s
	}
	if snap == nil {
		s.logger.Debug("no snapshot saved yet")
		return s
	}
	if err := s.restore(*snap); err != nil {
		s.logger.Warn("snapshot rejected, starting empty", "error", err)
		return s
	}
	s.logger.Debug("snapshot loaded", "tasks", len(snap.Tasks))
	return s
}

// update runs fn under the lock. fn reports whether it changed anything;
// changes bump the revision and are persisted once the lock is released.
func (s *Store) update(op string, fn func(st *state) bool) {
	s.mu.Lock()
	changed := fn(&s.st)
	var snap models.Snapshot
	var rev uint64
	if changed {
		s.revision++
		rev = s.revision
		snap = s.snapshotLocked()
	}
	s.mu.Unlock()

	if !changed {
		s.logger.Debug("no-op", "op", op)
		return
	}
	s.logger.Debug("applied", "op", op, "revision", rev)
	s.persist(rev, snap)
}

// persist saves snap unless a newer revision was already written.
// Errors are logged and dropped.
func (s *Store) persist(rev uint64, snap models.Snapshot) {
	if s.persister == nil {
		return
	}
	if !s.background {
		s.save(rev, snap)
		return
	}

	s.pendingMu.Lock()
	if rev > s.pendingRev {
		s.pendingRev, s.pending = rev, snap
	}
	s.pendingMu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Store) save(rev uint64, snap models.Snapshot) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if rev <= s.savedRev {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
	defer cancel()

	if err := s.persister.Save(ctx, snap); err != nil {
		s.logger.Error("save snapshot failed", "revision", rev, "error", err)
		return
	}
	s.savedRev = rev
}

// indexOf returns the position of id in st.tasks or -1
func (st *state) indexOf(id string) int {
	for i := range st.tasks {
		if st.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// task returns a pointer into the collection or nil
func (st *state) task(id string) *models.Task {
	if i := st.indexOf(id); i >= 0 {
		return &st.tasks[i]
	}
	return nil
}

func cloneTasks(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

// Tasks returns a copy of the collection, newest first
func (s *Store) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTasks(s.st.tasks)
}

// Task returns a copy of the task with the given id
func (s *Store) Task(id string) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t := s.st.task(id); t != nil {
		return t.Clone(), true
	}
	return models.Task{}, false
}

// Find resolves a full id or a unique id prefix
func (s *Store) Find(ref string) (models.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.Task{}, fmt.Errorf("task id is required: %w", models.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t := s.st.task(ref); t != nil {
		return t.Clone(), nil
	}

	var match *models.Task
	for i := range s.st.tasks {
		if strings.HasPrefix(s.st.tasks[i].ID, ref) {
			if match != nil {
				return models.Task{}, fmt.Errorf("%w: %q", ErrAmbiguous, ref)
			}
			match = &s.st.tasks[i]
		}
	}
	if match == nil {
		return models.Task{}, fmt.Errorf("task %q: %w", ref, models.ErrNotFound)
	}
	return match.Clone(), nil
}

// User returns the logged in user
func (s *Store) User() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.st.user == nil {
		return models.User{}, false
	}
	return *s.st.user, true
}

// IsAuthenticated is true iff a user is logged in
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.user != nil
}

// CurrentView returns the active view
func (s *Store) CurrentView() models.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.currentView
}

// StatusFilter returns the display status filter
func (s *Store) StatusFilter() models.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.statusFilter
}

// SelectedID returns the selected task id, empty when nothing is selected
func (s *Store) SelectedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.selectedID
}

// Selected returns the selected task
func (s *Store) Selected() (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t := s.st.task(s.st.selectedID); t != nil {
		return t.Clone(), true
	}
	return models.Task{}, false
}

// View is a consistent read of everything a display surface renders
type View struct {
	View     models.View
	Status   models.Status
	User     *models.User
	Visible  []models.Task
	Counts   projection.Counts
	Progress float64
	Selected *models.Task
}

// Project runs the projection engine over one consistent copy of the state
func (s *Store) Project() View {
	s.mu.Lock()
	tasks := cloneTasks(s.st.tasks)
	st := s.st
	var user *models.User
	if st.user != nil {
		u := *st.user
		user = &u
	}
	s.mu.Unlock()

	now := s.now()
	userID := ""
	if user != nil {
		userID = user.ID
	}

	v := View{
		View:   st.currentView,
		Status: st.statusFilter,
		User:   user,
		Visible: projection.FilterView(tasks, projection.ViewQuery{
			View:   st.currentView,
			Status: st.statusFilter,
			UserID: userID,
			Now:    now,
		}),
		Counts:   projection.CountViews(tasks, userID, now),
		Progress: projection.Progress(tasks, now),
	}
	for i := range tasks {
		if tasks[i].ID == st.selectedID {
			v.Selected = &tasks[i]
			break
		}
	}
	return v
}

// Now returns the store clock's current time
func (s *Store) Now() time.Time {
	return s.now()
}
