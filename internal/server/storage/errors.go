package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user has no leaderboard row
	ErrUserNotFound = errors.New("user not found")

	// ErrSubmissionExists indicates that submission with this id is already stored
	ErrSubmissionExists = errors.New("submission already exists")
)
