// Package auth provides the login collaborator. There is no real
// authentication: any non-empty email and password pair is accepted.
package auth

import (
	"fmt"
	"strings"

	"github.com/balkashynov/myday/internal/models"
)

// StubUserID is the id given to every user logged in through the stub
const StubUserID = "1"

// Authenticator turns credentials into a user
type Authenticator interface {
	Login(email, password string) (models.User, error)
}

// Stub accepts any non-empty credentials
type Stub struct{}

// Login validates that both fields are present and derives the username
// from the local part of the email.
func (Stub) Login(email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return models.User{}, fmt.Errorf("email is required: %w", models.ErrValidation)
	}
	if strings.TrimSpace(password) == "" {
		return models.User{}, fmt.Errorf("password is required: %w", models.ErrValidation)
	}

	return models.User{
		ID:       StubUserID,
		Username: Username(email),
		Email:    email,
	}, nil
}

// Username returns the part of email before the first '@', or the whole
// email when that part is blank
func Username(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if strings.TrimSpace(local) == "" {
		return email
	}
	return local
}
