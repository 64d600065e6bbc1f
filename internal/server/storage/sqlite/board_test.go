package sqlite

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sast/hwboard/internal/models"
	"github.com/sast/hwboard/internal/server/storage"
	"github.com/sast/hwboard/pkg/api"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	s, err := New(ctx, ":memory:", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
	}

	return s, cleanup
}

func newSubmission(user string, subs api.Subs, time int64, avatar string) *models.Submission {
	return &models.Submission{
		ID:     uuid.New().String(),
		User:   user,
		Avatar: avatar,
		Subs:   subs,
		Score:  subs.Average(),
		Time:   time,
	}
}

func TestStorage_SaveSubmission_CreatesRow(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	sub := newSubmission("u1", api.Subs{0.9, 0.8, 0.95}, 100, "")
	require.NoError(t, s.SaveSubmission(ctx, sub))

	entries, err := s.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, api.LeaderboardEntry{
		User:  "u1",
		Subs:  api.Subs{0.9, 0.8, 0.95},
		Score: sub.Score,
		Time:  100,
		Votes: 0,
	}, entries[0])
}

func TestStorage_SaveSubmission_UpdatesLatest(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, s.SaveSubmission(ctx, newSubmission("u1", api.Subs{0.9, 0.9, 0.9}, 100, "AP8Q")))
	require.NoError(t, s.Vote(ctx, "u1"))

	// Более слабая посылка все равно становится текущей
	require.NoError(t, s.SaveSubmission(ctx, newSubmission("u1", api.Subs{0.1, 0.2, 0.3}, 200, "")))

	entries, err := s.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, api.Subs{0.1, 0.2, 0.3}, entries[0].Subs)
	assert.Equal(t, int64(200), entries[0].Time)
	assert.Equal(t, "AP8Q", entries[0].Avatar, "avatar kept when new submission has none")
	assert.Equal(t, 1, entries[0].Votes, "votes survive resubmission")

	require.NoError(t, s.SaveSubmission(ctx, newSubmission("u1", api.Subs{0.5, 0.5, 0.5}, 300, "AAAA")))
	entries, err = s.Leaderboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, "AAAA", entries[0].Avatar)
}

func TestStorage_SaveSubmission_DuplicateID(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	sub := newSubmission("u1", api.Subs{1, 1, 1}, 100, "")
	require.NoError(t, s.SaveSubmission(ctx, sub))

	err := s.SaveSubmission(ctx, sub)
	assert.ErrorIs(t, err, storage.ErrSubmissionExists)

	history, err := s.History(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, history, 1, "failed transaction leaves no rows")
}

func TestStorage_Leaderboard_Order(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	// Пустая таблица это пустой срез, а не nil
	entries, err := s.Leaderboard(ctx)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)

	require.NoError(t, s.SaveSubmission(ctx, newSubmission("late", api.Subs{0.5, 0.5, 0.5}, 300, "")))
	require.NoError(t, s.SaveSubmission(ctx, newSubmission("top", api.Subs{1, 1, 1}, 400, "")))
	require.NoError(t, s.SaveSubmission(ctx, newSubmission("early", api.Subs{0.5, 0.5, 0.5}, 100, "")))

	entries, err = s.Leaderboard(ctx)
	require.NoError(t, err)

	users := make([]string, 0, len(entries))
	for _, e := range entries {
		users = append(users, e.User)
	}
	assert.Equal(t, []string{"top", "early", "late"}, users)
}

func TestStorage_History(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	history, err := s.History(ctx, "ghost")
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)

	require.NoError(t, s.SaveSubmission(ctx, newSubmission("u1", api.Subs{0.1, 0.1, 0.1}, 200, "")))
	earliest := newSubmission("u1", api.Subs{0.2, 0.2, 0.2}, 100, "")
	require.NoError(t, s.SaveSubmission(ctx, earliest))
	require.NoError(t, s.SaveSubmission(ctx, newSubmission("u1", api.Subs{0.3, 0.3, 0.3}, 200, "")))
	require.NoError(t, s.SaveSubmission(ctx, newSubmission("u2", api.Subs{1, 1, 1}, 150, "")))

	history, err = s.History(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, history, 3)

	// По времени, при равном времени в порядке вставки
	assert.Equal(t, earliest.HistoryEntry(), history[0])
	assert.Equal(t, api.Subs{0.1, 0.1, 0.1}, history[1].Subs)
	assert.Equal(t, api.Subs{0.3, 0.3, 0.3}, history[2].Subs)
	for i := 1; i < len(history); i++ {
		assert.LessOrEqual(t, history[i-1].Time, history[i].Time)
	}
}

func TestStorage_Vote(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, s.SaveSubmission(ctx, newSubmission("u1", api.Subs{1, 1, 1}, 100, "")))
	require.NoError(t, s.SaveSubmission(ctx, newSubmission("u2", api.Subs{0, 0, 0}, 100, "")))

	err := s.Vote(ctx, "ghost")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	require.NoError(t, s.Vote(ctx, "u2"))

	entries, err := s.Leaderboard(ctx)
	require.NoError(t, err)
	votes := map[string]int{}
	for _, e := range entries {
		votes[e.User] = e.Votes
	}
	assert.Equal(t, map[string]int{"u1": 0, "u2": 1}, votes)
}

func TestStorage_Vote_Concurrent(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, s.SaveSubmission(ctx, newSubmission("u1", api.Subs{1, 1, 1}, 100, "")))

	const voters = 20
	var wg sync.WaitGroup
	for range voters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Vote(ctx, "u1"))
		}()
	}
	wg.Wait()

	entries, err := s.Leaderboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, voters, entries[0].Votes)
}

func TestStorage_File(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "board.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s, err := New(ctx, path, logger)
	require.NoError(t, err)
	require.NoError(t, s.SaveSubmission(ctx, newSubmission("u1", api.Subs{1, 1, 1}, 100, "")))
	require.NoError(t, s.Ping(ctx))
	require.NoError(t, s.Close())

	// Повторное открытие не применяет миграции заново и видит данные
	s, err = New(ctx, path, logger)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	entries, err := s.Leaderboard(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
