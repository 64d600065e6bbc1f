package storage

import (
	"context"

	"github.com/sast/hwboard/internal/models"
	"github.com/sast/hwboard/pkg/api"
)

// BoardStorage defines interface for submissions and leaderboard persistence
//
//go:generate moq -out board_mock.go . BoardStorage
type BoardStorage interface {
	// SaveSubmission stores a history row and upserts the user's leaderboard row
	// with the latest sub-scores, score and time. Avatar of the row is kept
	// when the submission carries none. Votes are never reset.
	SaveSubmission(ctx context.Context, sub *models.Submission) error

	// Leaderboard returns all rows ordered by score desc, then time asc
	// Returns empty slice if nobody has submitted yet
	Leaderboard(ctx context.Context) ([]api.LeaderboardEntry, error)

	// History returns user's submissions ordered by time, then insertion order
	// Returns empty slice for unknown user
	History(ctx context.Context, user string) ([]api.HistoryEntry, error)

	// Vote atomically increments votes of the user
	// Returns ErrUserNotFound if user has no leaderboard row
	Vote(ctx context.Context, user string) error
}
