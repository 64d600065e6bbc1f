package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sast/hwboard/internal/models"
	"github.com/sast/hwboard/internal/server/storage"
	"github.com/sast/hwboard/pkg/api"
)

// SaveSubmission stores a history row and upserts the user's leaderboard row
func (s *Storage) SaveSubmission(ctx context.Context, sub *models.Submission) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO submissions (id, user_id, sub0, sub1, sub2, score, time, has_avatar)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`,
			sub.ID,
			sub.User,
			sub.Subs[0],
			sub.Subs[1],
			sub.Subs[2],
			sub.Score,
			sub.Time,
			boolToInt(sub.Avatar != ""),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return storage.ErrSubmissionExists
			}
			return fmt.Errorf("failed to insert submission: %w", err)
		}

		// Голоса сохраняются, аватар заменяется только если прислан новый
		_, err = tx.ExecContext(ctx, `
			INSERT INTO leaderboard (user_id, avatar, sub0, sub1, sub2, score, time, votes)
			VALUES (?, ?, ?, ?, ?, ?, ?, 0)
			ON CONFLICT(user_id) DO UPDATE SET
				sub0 = excluded.sub0,
				sub1 = excluded.sub1,
				sub2 = excluded.sub2,
				score = excluded.score,
				time = excluded.time,
				avatar = CASE WHEN excluded.avatar <> '' THEN excluded.avatar ELSE leaderboard.avatar END
		`,
			sub.User,
			sub.Avatar,
			sub.Subs[0],
			sub.Subs[1],
			sub.Subs[2],
			sub.Score,
			sub.Time,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert leaderboard row: %w", err)
		}

		return nil
	})
}

// Leaderboard returns all rows ordered by score desc, then time asc
func (s *Storage) Leaderboard(ctx context.Context) (entries []api.LeaderboardEntry, err error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, avatar, sub0, sub1, sub2, score, time, votes
		FROM leaderboard
		ORDER BY score DESC, time ASC, user_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	entries = []api.LeaderboardEntry{}
	for rows.Next() {
		var e api.LeaderboardEntry
		if err := rows.Scan(&e.User, &e.Avatar, &e.Subs[0], &e.Subs[1], &e.Subs[2], &e.Score, &e.Time, &e.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}

// History returns user's submissions ordered by time, then insertion order
func (s *Storage) History(ctx context.Context, user string) (entries []api.HistoryEntry, err error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, sub0, sub1, sub2, score, time
		FROM submissions
		WHERE user_id = ?
		ORDER BY time ASC, seq ASC
	`, user)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	entries = []api.HistoryEntry{}
	for rows.Next() {
		var sub models.Submission
		if err := rows.Scan(&sub.ID, &sub.User, &sub.Subs[0], &sub.Subs[1], &sub.Subs[2], &sub.Score, &sub.Time); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, sub.HistoryEntry())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}

// Vote atomically increments votes of the user
func (s *Storage) Vote(ctx context.Context, user string) error {
	result, err := s.db.ExecContext(ctx, `UPDATE leaderboard SET votes = votes + 1 WHERE user_id = ?`, user)
	if err != nil {
		return fmt.Errorf("failed to vote: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// isUniqueViolation распознает нарушение UNIQUE по тексту ошибки драйвера
func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
