package models

// User is the authenticated account
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthState is the persisted form of the session.
// IsAuthenticated is redundant with User and is recomputed on restore.
type AuthState struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
}
