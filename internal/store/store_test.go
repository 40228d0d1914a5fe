package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/myday/internal/models"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// memPersister records every saved snapshot
type memPersister struct {
	mu      sync.Mutex
	loaded  *models.Snapshot
	loadErr error
	saveErr error
	saves   []models.Snapshot
}

func (m *memPersister) Load(context.Context) (*models.Snapshot, error) {
	return m.loaded, m.loadErr
}

func (m *memPersister) Save(_ context.Context, snap models.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves = append(m.saves, snap)
	return nil
}

func (m *memPersister) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.saves)
}

func (m *memPersister) last() models.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves[len(m.saves)-1]
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestStore(opts ...Option) *Store {
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(sequentialIDs()),
	}
	return New(append(base, opts...)...)
}

func mustAdd(t *testing.T, s *Store, req AddTaskRequest) models.Task {
	t.Helper()
	task, err := s.AddTask(req)
	require.NoError(t, err)
	return task
}

func TestNew_Defaults(t *testing.T) {
	s := newTestStore()

	assert.Empty(t, s.Tasks())
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, models.ViewToday, s.CurrentView())
	assert.Equal(t, models.StatusTodo, s.StatusFilter())
	assert.Empty(t, s.SelectedID())
}

func TestAddTask_UniqueIDs(t *testing.T) {
	s := New()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		task := mustAdd(t, s, AddTaskRequest{Title: fmt.Sprintf("task %d", i)})
		seen[task.ID] = true
	}

	assert.Len(t, s.Tasks(), 50)
	assert.Len(t, seen, 50)
}

func TestAddTask_CollidingGeneratorStillUnique(t *testing.T) {
	calls := 0
	s := newTestStore(WithIDGenerator(func() string {
		calls++
		if calls <= 2 {
			return "same"
		}
		return fmt.Sprintf("id-%d", calls)
	}))

	a := mustAdd(t, s, AddTaskRequest{Title: "a"})
	b := mustAdd(t, s, AddTaskRequest{Title: "b"})
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAddTask_Defaults(t *testing.T) {
	s := newTestStore()
	task := mustAdd(t, s, AddTaskRequest{Title: "  Buy milk  "})

	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	require.NotNil(t, task.Status)
	assert.Equal(t, models.StatusTodo, *task.Status)
	assert.False(t, task.Completed)
	assert.Equal(t, fixedNow, task.CreatedAt)
	assert.NotNil(t, task.Steps)
	assert.Empty(t, task.Steps)
	assert.Nil(t, task.DueDate)
	assert.Nil(t, task.AssignedTo)
}

func TestAddTask_BlankTitleRejected(t *testing.T) {
	s := newTestStore()
	mustAdd(t, s, AddTaskRequest{Title: "keep"})

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := s.AddTask(AddTaskRequest{Title: title})
		assert.ErrorIs(t, err, models.ErrValidation)
	}
	assert.Len(t, s.Tasks(), 1)
}

func TestAddTask_InvalidEnums(t *testing.T) {
	s := newTestStore()

	_, err := s.AddTask(AddTaskRequest{Title: "x", Priority: "urgent"})
	assert.ErrorIs(t, err, models.ErrValidation)
	_, err = s.AddTask(AddTaskRequest{Title: "x", Status: "blocked"})
	assert.ErrorIs(t, err, models.ErrValidation)
	bad := models.Repeat("weekly")
	_, err = s.AddTask(AddTaskRequest{Title: "x", Repeat: &bad})
	assert.ErrorIs(t, err, models.ErrValidation)

	assert.Empty(t, s.Tasks())
}

func TestAddTask_NewestFirst(t *testing.T) {
	s := newTestStore()
	a := mustAdd(t, s, AddTaskRequest{Title: "a"})
	b := mustAdd(t, s, AddTaskRequest{Title: "b"})

	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, b.ID, tasks[0].ID)
	assert.Equal(t, a.ID, tasks[1].ID)
}

func TestRemoveTask_ClearsSelection(t *testing.T) {
	s := newTestStore()
	a := mustAdd(t, s, AddTaskRequest{Title: "a"})
	b := mustAdd(t, s, AddTaskRequest{Title: "b"})

	require.NoError(t, s.SelectTask(a.ID))
	require.NoError(t, s.RemoveTask(b.ID))
	assert.Equal(t, a.ID, s.SelectedID(), "removing another task keeps the selection")

	require.NoError(t, s.RemoveTask(a.ID))
	assert.Empty(t, s.SelectedID())
	assert.Empty(t, s.Tasks())
}

func TestToggleTask_Involutive(t *testing.T) {
	s := newTestStore()
	task := mustAdd(t, s, AddTaskRequest{Title: "a"})

	require.NoError(t, s.ToggleTask(task.ID))
	got, _ := s.Task(task.ID)
	assert.True(t, got.Completed)

	require.NoError(t, s.ToggleTask(task.ID))
	got, _ = s.Task(task.ID)
	assert.False(t, got.Completed)
}

func TestUnknownIDsAreNoOps(t *testing.T) {
	p := &memPersister{}
	s := newTestStore(WithPersister(p))
	task := mustAdd(t, s, AddTaskRequest{Title: "a"})
	before := s.Tasks()
	saves := p.count()

	assert.NoError(t, s.RemoveTask("nope"))
	assert.NoError(t, s.ToggleTask("nope"))
	assert.NoError(t, s.SetPriority("nope", models.PriorityHigh))
	assert.NoError(t, s.SetStatus("nope", models.StatusDone))
	assert.NoError(t, s.UpdateNotes("nope", "n"))
	step, err := s.AddStep("nope", "step")
	assert.NoError(t, err)
	assert.Zero(t, step)
	assert.NoError(t, s.ToggleStep("nope", "nope"))
	assert.NoError(t, s.ToggleStep(task.ID, "nope"))
	assert.NoError(t, s.SetReminder("nope", fixedNow))
	assert.NoError(t, s.SetDueDate("nope", fixedNow))
	assert.NoError(t, s.SetRepeat("nope", models.RepeatDaily))
	assert.NoError(t, s.AssignTask("nope", "1"))

	assert.Equal(t, before, s.Tasks())
	assert.Equal(t, saves, p.count(), "no-ops must not persist")
}

func TestSelectTask_UnknownClears(t *testing.T) {
	s := newTestStore()
	task := mustAdd(t, s, AddTaskRequest{Title: "a"})

	require.NoError(t, s.SelectTask(task.ID))
	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, task.ID, sel.ID)

	require.NoError(t, s.SelectTask("missing"))
	_, ok = s.Selected()
	assert.False(t, ok)
}

func TestSetters(t *testing.T) {
	s := newTestStore()
	task := mustAdd(t, s, AddTaskRequest{Title: "a"})
	due := fixedNow.Add(24 * time.Hour)
	remind := fixedNow.Add(time.Hour)

	require.NoError(t, s.SetPriority(task.ID, models.PriorityHigh))
	require.NoError(t, s.SetStatus(task.ID, models.StatusInProgress))
	require.NoError(t, s.UpdateNotes(task.ID, "call first"))
	require.NoError(t, s.SetDueDate(task.ID, due))
	require.NoError(t, s.SetReminder(task.ID, remind))
	require.NoError(t, s.SetRepeat(task.ID, models.RepeatDaily))
	require.NoError(t, s.AssignTask(task.ID, "42"))

	got, ok := s.Task(task.ID)
	require.True(t, ok)
	assert.Equal(t, models.PriorityHigh, got.Priority)
	assert.Equal(t, models.StatusInProgress, *got.Status)
	assert.Equal(t, "call first", got.Notes)
	assert.Equal(t, due, *got.DueDate)
	assert.Equal(t, remind, *got.Reminder)
	assert.Equal(t, models.RepeatDaily, *got.Repeat)
	assert.Equal(t, "42", *got.AssignedTo)

	assert.ErrorIs(t, s.SetPriority(task.ID, "urgent"), models.ErrValidation)
	assert.ErrorIs(t, s.SetStatus(task.ID, "later"), models.ErrValidation)
	assert.ErrorIs(t, s.SetRepeat(task.ID, "hourly"), models.ErrValidation)
	assert.ErrorIs(t, s.SetCurrentView("inbox"), models.ErrValidation)
	assert.ErrorIs(t, s.SetStatusFilter("later"), models.ErrValidation)
}

func TestSteps(t *testing.T) {
	s := newTestStore()
	task := mustAdd(t, s, AddTaskRequest{Title: "a"})

	_, err := s.AddStep(task.ID, "  ")
	assert.ErrorIs(t, err, models.ErrValidation)

	first, err := s.AddStep(task.ID, "first")
	require.NoError(t, err)
	second, err := s.AddStep(task.ID, "second")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	require.NoError(t, s.ToggleStep(task.ID, second.ID))

	got, _ := s.Task(task.ID)
	require.Len(t, got.Steps, 2)
	assert.Equal(t, "first", got.Steps[0].Title)
	assert.False(t, got.Steps[0].Completed)
	assert.True(t, got.Steps[1].Completed)
	assert.Equal(t, 1, got.StepsDone())
}

func TestReadsReturnCopies(t *testing.T) {
	s := newTestStore()
	task := mustAdd(t, s, AddTaskRequest{Title: "a"})
	_, err := s.AddStep(task.ID, "step")
	require.NoError(t, err)

	tasks := s.Tasks()
	tasks[0].Title = "changed"
	tasks[0].Steps[0].Title = "changed"

	got, _ := s.Task(task.ID)
	assert.Equal(t, "a", got.Title)
	assert.Equal(t, "step", got.Steps[0].Title)
}

func TestFind(t *testing.T) {
	ids := []string{"abc111", "abc222", "def333"}
	i := 0
	s := newTestStore(WithIDGenerator(func() string {
		id := ids[i%len(ids)]
		i++
		return id
	}))
	for _, title := range []string{"a", "b", "c"} {
		mustAdd(t, s, AddTaskRequest{Title: title})
	}

	got, err := s.Find("def")
	require.NoError(t, err)
	assert.Equal(t, "c", got.Title)

	got, err = s.Find("abc111")
	require.NoError(t, err)
	assert.Equal(t, "a", got.Title)

	_, err = s.Find("abc")
	assert.ErrorIs(t, err, ErrAmbiguous)
	_, err = s.Find("zzz")
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = s.Find(" ")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestLogin(t *testing.T) {
	s := newTestStore()

	_, err := s.Login("", "x")
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.False(t, s.IsAuthenticated())

	_, err = s.Login("a@b.com", "")
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.False(t, s.IsAuthenticated())

	user, err := s.Login("a@b.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "a", user.Username)
	assert.True(t, s.IsAuthenticated())

	got, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestLogout_Idempotent(t *testing.T) {
	s := newTestStore()
	mustAdd(t, s, AddTaskRequest{Title: "stays"})
	_, err := s.Login("a@b.com", "pw")
	require.NoError(t, err)

	s.Logout()
	assert.False(t, s.IsAuthenticated())
	s.Logout()
	assert.False(t, s.IsAuthenticated())
	_, ok := s.User()
	assert.False(t, ok)
	assert.Len(t, s.Tasks(), 1)
}

type rejectAll struct{}

func (rejectAll) Login(string, string) (models.User, error) {
	return models.User{}, errors.New("denied")
}

func TestLogin_CustomAuthenticator(t *testing.T) {
	s := newTestStore(WithAuthenticator(rejectAll{}))
	_, err := s.Login("a@b.com", "pw")
	assert.Error(t, err)
	assert.False(t, s.IsAuthenticated())
}

func TestScenario_ToggleAndDelete(t *testing.T) {
	s := newTestStore()
	task := mustAdd(t, s, AddTaskRequest{Title: "Buy milk"})
	assert.Equal(t, models.PriorityMedium, task.Priority)
	require.NoError(t, s.SelectTask(task.ID))

	require.NoError(t, s.ToggleTask(task.ID))
	require.NoError(t, s.ToggleTask(task.ID))
	got, _ := s.Task(task.ID)
	assert.False(t, got.Completed)

	require.NoError(t, s.RemoveTask(task.ID))
	assert.Empty(t, s.Tasks())
	assert.Empty(t, s.SelectedID())
}

func TestScenario_Views(t *testing.T) {
	s := newTestStore()
	tomorrow := fixedNow.AddDate(0, 0, 1)
	a := mustAdd(t, s, AddTaskRequest{Title: "A", Priority: models.PriorityHigh, DueDate: &tomorrow})
	b := mustAdd(t, s, AddTaskRequest{Title: "B", Priority: models.PriorityLow})

	visible := func(v models.View) []string {
		require.NoError(t, s.SetCurrentView(v))
		var out []string
		for _, task := range s.Project().Visible {
			out = append(out, task.ID)
		}
		return out
	}

	assert.Equal(t, []string{a.ID}, visible(models.ViewImportant))
	assert.Equal(t, []string{a.ID}, visible(models.ViewPlanned))
	assert.Equal(t, []string{b.ID, a.ID}, visible(models.ViewAll))
}

func TestProject(t *testing.T) {
	s := newTestStore()
	a := mustAdd(t, s, AddTaskRequest{Title: "A", Priority: models.PriorityHigh})
	mustAdd(t, s, AddTaskRequest{Title: "B", Status: models.StatusInProgress})
	_, err := s.Login("me@example.com", "pw")
	require.NoError(t, err)
	require.NoError(t, s.AssignTask(a.ID, "1"))
	require.NoError(t, s.ToggleTask(a.ID))
	require.NoError(t, s.SelectTask(a.ID))

	v := s.Project()
	assert.Equal(t, models.ViewToday, v.View)
	assert.Equal(t, models.StatusTodo, v.Status)
	require.Len(t, v.Visible, 1)
	assert.Equal(t, a.ID, v.Visible[0].ID)
	assert.Equal(t, 2, v.Counts.All)
	assert.Equal(t, 2, v.Counts.Today)
	assert.Equal(t, 1, v.Counts.Important)
	assert.Equal(t, 1, v.Counts.Assigned)
	assert.InDelta(t, 0.5, v.Progress, 1e-9)
	require.NotNil(t, v.Selected)
	assert.Equal(t, a.ID, v.Selected.ID)
	require.NotNil(t, v.User)
	assert.Equal(t, "me", v.User.Username)

	require.NoError(t, s.SetStatusFilter(models.StatusInProgress))
	v = s.Project()
	require.Len(t, v.Visible, 1)
	assert.Equal(t, "B", v.Visible[0].Title)
}

func TestConcurrentAdds(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = s.AddTask(AddTaskRequest{Title: fmt.Sprintf("t%d", i)})
			_ = s.Project()
		}(i)
	}
	wg.Wait()
	assert.Len(t, s.Tasks(), 20)
}

func TestPersist_SavesEveryChange(t *testing.T) {
	p := &memPersister{}
	s := newTestStore(WithPersister(p))

	task := mustAdd(t, s, AddTaskRequest{Title: "a"})
	require.NoError(t, s.ToggleTask(task.ID))

	require.Equal(t, 2, p.count())
	last := p.last()
	assert.Equal(t, models.SnapshotVersion, last.Version)
	require.Len(t, last.Tasks, 1)
	assert.True(t, last.Tasks[0].Completed)
}

func TestPersist_SaveFailureDoesNotRollBack(t *testing.T) {
	p := &memPersister{saveErr: errors.New("disk full")}
	s := newTestStore(WithPersister(p))

	mustAdd(t, s, AddTaskRequest{Title: "a"})
	assert.Len(t, s.Tasks(), 1)
	assert.Zero(t, p.count())

	p.mu.Lock()
	p.saveErr = nil
	p.mu.Unlock()
	mustAdd(t, s, AddTaskRequest{Title: "b"})
	assert.Len(t, p.last().Tasks, 2)
}

func TestPersist_StaleRevisionSkipped(t *testing.T) {
	p := &memPersister{}
	s := newTestStore(WithPersister(p))

	newer := models.Snapshot{Version: models.SnapshotVersion, Tasks: []models.Task{{ID: "new"}}}
	older := models.Snapshot{Version: models.SnapshotVersion}

	s.persist(2, newer)
	s.persist(1, older)

	require.Equal(t, 1, p.count())
	assert.Equal(t, "new", p.last().Tasks[0].ID)
}

// blockingPersister holds every save until release is closed
type blockingPersister struct {
	memPersister
	started chan struct{}
	release chan struct{}
}

func (b *blockingPersister) Save(ctx context.Context, snap models.Snapshot) error {
	select {
	case b.started <- struct{}{}:
	default:
	}
	<-b.release
	return b.memPersister.Save(ctx, snap)
}

func TestPersist_BackgroundSave(t *testing.T) {
	p := &blockingPersister{started: make(chan struct{}, 16), release: make(chan struct{})}
	s := newTestStore(WithPersister(p), WithBackgroundSave())

	// returns while the first save is still blocked
	mustAdd(t, s, AddTaskRequest{Title: "a"})
	select {
	case <-p.started:
	case <-time.After(2 * time.Second):
		t.Fatal("background save did not start")
	}
	mustAdd(t, s, AddTaskRequest{Title: "b"})
	mustAdd(t, s, AddTaskRequest{Title: "c"})
	assert.Len(t, s.Tasks(), 3)

	close(p.release)
	s.Close()
	s.Close()

	require.NotZero(t, p.count())
	assert.LessOrEqual(t, p.count(), 3)
	assert.Len(t, p.last().Tasks, 3, "the newest revision is saved last")
}

func TestClose_ForegroundIsNoOp(t *testing.T) {
	p := &memPersister{}
	s := newTestStore(WithPersister(p))
	mustAdd(t, s, AddTaskRequest{Title: "a"})
	s.Close()
	assert.Equal(t, 1, p.count())
}

func TestOpen_RestoresSnapshot(t *testing.T) {
	user := models.User{ID: "1", Username: "a", Email: "a@b.com"}
	snap := &models.Snapshot{
		Version: models.SnapshotVersion,
		Tasks:   []models.Task{{ID: "t1", Title: "saved", Priority: models.PriorityLow, CreatedAt: fixedNow}},
		Auth:    models.AuthState{User: &user, IsAuthenticated: false},
		View: models.ViewState{
			CurrentView:    models.ViewPlanned,
			SelectedTaskID: "t1",
			StatusFilter:   models.StatusDone,
		},
	}

	s := Open(context.Background(), &memPersister{loaded: snap})

	require.Len(t, s.Tasks(), 1)
	assert.Equal(t, "saved", s.Tasks()[0].Title)
	assert.True(t, s.IsAuthenticated(), "auth flag follows the user")
	assert.Equal(t, models.ViewPlanned, s.CurrentView())
	assert.Equal(t, models.StatusDone, s.StatusFilter())
	assert.Equal(t, "t1", s.SelectedID())
}

func TestOpen_FallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name string
		p    *memPersister
	}{
		{"load error", &memPersister{loadErr: errors.New("corrupt")}},
		{"nothing saved", &memPersister{}},
		{"wrong version", &memPersister{loaded: &models.Snapshot{Version: 99, Tasks: []models.Task{{ID: "x"}}}}},
		{"duplicate ids", &memPersister{loaded: &models.Snapshot{
			Version: models.SnapshotVersion,
			Tasks:   []models.Task{{ID: "x"}, {ID: "x"}},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Open(context.Background(), tt.p)
			assert.Empty(t, s.Tasks())
			assert.Equal(t, models.ViewToday, s.CurrentView())
			assert.Equal(t, models.StatusTodo, s.StatusFilter())
			assert.False(t, s.IsAuthenticated())
		})
	}
}

func TestRestore_SanitizesViewState(t *testing.T) {
	s := newTestStore()
	err := s.Restore(models.Snapshot{
		Version: models.SnapshotVersion,
		Tasks:   []models.Task{{ID: "t1", Title: "x"}},
		View: models.ViewState{
			CurrentView:    "inbox",
			SelectedTaskID: "gone",
			StatusFilter:   "someday",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, models.ViewToday, s.CurrentView())
	assert.Equal(t, models.StatusTodo, s.StatusFilter())
	assert.Empty(t, s.SelectedID())
	assert.Equal(t, models.PriorityMedium, s.Tasks()[0].Priority)

	assert.ErrorIs(t, s.Restore(models.Snapshot{Version: 2}), models.ErrIncompatibleSnapshot)
	assert.Len(t, s.Tasks(), 1, "rejected restore keeps the current state")
}

func TestRestore_SanitizesTasks(t *testing.T) {
	bogusStatus := models.Status("bogus")
	weekly := models.Repeat("weekly")

	s := newTestStore()
	require.NoError(t, s.Restore(models.Snapshot{
		Version: models.SnapshotVersion,
		Tasks: []models.Task{{
			ID:        "t1",
			Title:     "imported",
			CreatedAt: fixedNow,
			Status:    &bogusStatus,
			Repeat:    &weekly,
			Steps:     []models.Step{{ID: "s1", Title: "a"}, {ID: "s2", Title: "b"}},
		}},
	}))

	got := s.Tasks()[0]
	assert.Nil(t, got.Status)
	assert.Nil(t, got.Repeat)
	assert.Len(t, got.Steps, 2)

	// a task with a dropped status shows under the todo filter
	v := s.Project()
	require.Len(t, v.Visible, 1)
	assert.Equal(t, "t1", v.Visible[0].ID)

	rejected := []struct {
		name string
		task models.Task
	}{
		{"empty title", models.Task{ID: "x", Title: ""}},
		{"blank title", models.Task{ID: "x", Title: "   "}},
		{"duplicate step ids", models.Task{ID: "x", Title: "x", Steps: []models.Step{{ID: "s"}, {ID: "s"}}}},
		{"empty step id", models.Task{ID: "x", Title: "x", Steps: []models.Step{{ID: ""}}}},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Restore(models.Snapshot{Version: models.SnapshotVersion, Tasks: []models.Task{tt.task}})
			assert.ErrorIs(t, err, models.ErrIncompatibleSnapshot)
			require.Len(t, s.Tasks(), 1, "rejected restore keeps the current state")
			assert.Equal(t, "t1", s.Tasks()[0].ID)
		})
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	src := newTestStore()
	task := mustAdd(t, src, AddTaskRequest{Title: "a", Priority: models.PriorityHigh})
	_, err := src.AddStep(task.ID, "s1")
	require.NoError(t, err)
	_, err = src.Login("a@b.com", "pw")
	require.NoError(t, err)
	require.NoError(t, src.SelectTask(task.ID))
	require.NoError(t, src.SetCurrentView(models.ViewImportant))

	p := &memPersister{}
	dst := newTestStore(WithPersister(p))
	require.NoError(t, dst.Restore(src.Snapshot()))

	assert.Equal(t, src.Tasks(), dst.Tasks())
	assert.Equal(t, src.SelectedID(), dst.SelectedID())
	assert.Equal(t, models.ViewImportant, dst.CurrentView())
	assert.True(t, dst.IsAuthenticated())
	assert.Equal(t, 1, p.count(), "restore persists the new state")
}
