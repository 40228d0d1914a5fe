package store

import (
	"fmt"
	"strings"

	"github.com/balkashynov/myday/internal/models"
)

// Snapshot returns a serializable copy of the whole state
func (s *Store) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() models.Snapshot {
	var user *models.User
	if s.st.user != nil {
		u := *s.st.user
		user = &u
	}
	return models.Snapshot{
		Version: models.SnapshotVersion,
		SavedAt: s.now(),
		Tasks:   cloneTasks(s.st.tasks),
		Auth: models.AuthState{
			User:            user,
			IsAuthenticated: user != nil,
		},
		View: models.ViewState{
			CurrentView:    s.st.currentView,
			SelectedTaskID: s.st.selectedID,
			StatusFilter:   s.st.statusFilter,
		},
	}
}

// Restore replaces the whole state with snap and persists it
func (s *Store) Restore(snap models.Snapshot) error {
	if err := s.restore(snap); err != nil {
		return err
	}

	s.mu.Lock()
	s.revision++
	rev := s.revision
	out := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(rev, out)
	return nil
}

// restore validates snap and swaps it in without persisting
func (s *Store) restore(snap models.Snapshot) error {
	st, err := stateFromSnapshot(snap)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.st = st
	s.mu.Unlock()
	return nil
}

func stateFromSnapshot(snap models.Snapshot) (state, error) {
	if snap.Version != models.SnapshotVersion {
		return state{}, fmt.Errorf("%w: got %d, want %d", models.ErrIncompatibleSnapshot, snap.Version, models.SnapshotVersion)
	}

	st := defaultState()

	seen := make(map[string]bool, len(snap.Tasks))
	for _, t := range snap.Tasks {
		if t.ID == "" || seen[t.ID] {
			return state{}, fmt.Errorf("%w: duplicate or empty task id %q", models.ErrIncompatibleSnapshot, t.ID)
		}
		seen[t.ID] = true
		if strings.TrimSpace(t.Title) == "" {
			return state{}, fmt.Errorf("%w: task %q has no title", models.ErrIncompatibleSnapshot, t.ID)
		}
		if err := checkStepIDs(t); err != nil {
			return state{}, err
		}

		t = t.Clone()
		if !t.Priority.Valid() {
			t.Priority = models.PriorityMedium
		}
		// an absent status reads as todo
		if t.Status != nil && !t.Status.Valid() {
			t.Status = nil
		}
		if t.Repeat != nil && !t.Repeat.Valid() {
			t.Repeat = nil
		}
		st.tasks = append(st.tasks, t)
	}

	// isAuthenticated is derived from the user, never trusted on its own
	if snap.Auth.User != nil {
		u := *snap.Auth.User
		st.user = &u
	}

	if snap.View.CurrentView.Valid() {
		st.currentView = snap.View.CurrentView
	}
	if snap.View.StatusFilter.Valid() {
		st.statusFilter = snap.View.StatusFilter
	}
	if seen[snap.View.SelectedTaskID] {
		st.selectedID = snap.View.SelectedTaskID
	}

	return st, nil
}

// checkStepIDs rejects empty or repeated step ids within one task
func checkStepIDs(t models.Task) error {
	seen := make(map[string]bool, len(t.Steps))
	for _, step := range t.Steps {
		if step.ID == "" || seen[step.ID] {
			return fmt.Errorf("%w: task %q has a duplicate or empty step id %q",
				models.ErrIncompatibleSnapshot, t.ID, step.ID)
		}
		seen[step.ID] = true
	}
	return nil
}
