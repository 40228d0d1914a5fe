package models

import "errors"

var (
	// ErrValidation marks input with an empty required field or an unknown enum value
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a reference to an unknown task or step
	ErrNotFound = errors.New("not found")
	// ErrIncompatibleSnapshot marks a saved snapshot with another layout version
	ErrIncompatibleSnapshot = errors.New("incompatible snapshot version")
)
