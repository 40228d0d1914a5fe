package store

import (
	"fmt"

	"github.com/balkashynov/myday/internal/models"
)

// Login authenticates through the configured authenticator. On failure the
// session is left unchanged.
func (s *Store) Login(email, password string) (models.User, error) {
	user, err := s.auth.Login(email, password)
	if err != nil {
		return models.User{}, err
	}

	s.update("login", func(st *state) bool {
		u := user
		st.user = &u
		return true
	})
	s.logger.Info("logged in", "user", user.Username)
	return user, nil
}

// Logout clears the session. Tasks are kept.
func (s *Store) Logout() {
	s.update("logout", func(st *state) bool {
		if st.user == nil {
			return false
		}
		st.user = nil
		return true
	})
}

// SetCurrentView switches the active view
func (s *Store) SetCurrentView(v models.View) error {
	if !v.Valid() {
		return fmt.Errorf("invalid view %q: %w", v, models.ErrValidation)
	}
	s.update("setCurrentView", func(st *state) bool {
		if st.currentView == v {
			return false
		}
		st.currentView = v
		return true
	})
	return nil
}

// SetStatusFilter changes which status the view projection shows
func (s *Store) SetStatusFilter(status models.Status) error {
	if !status.Valid() {
		return fmt.Errorf("invalid status %q: %w", status, models.ErrValidation)
	}
	s.update("setStatusFilter", func(st *state) bool {
		if st.statusFilter == status {
			return false
		}
		st.statusFilter = status
		return true
	})
	return nil
}

// SelectTask selects a task. An unknown id clears the selection.
func (s *Store) SelectTask(id string) error {
	s.update("selectTask", func(st *state) bool {
		next := ""
		if st.indexOf(id) >= 0 {
			next = id
		}
		if st.selectedID == next {
			return false
		}
		st.selectedID = next
		return true
	})
	return nil
}
