package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sast/hwboard/internal/models"
	"github.com/sast/hwboard/internal/server/storage"
	"github.com/sast/hwboard/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors in tests
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

func newTestBoardHandler(store storage.BoardStorage) *BoardHandler {
	h := NewBoardHandler(setupTestLogger(), store)
	h.now = func() time.Time { return time.Unix(1668945600, 0) }
	h.newID = func() string { return "sub-1" }
	return h
}

func boardFixture() []api.LeaderboardEntry {
	return []api.LeaderboardEntry{
		{User: "u1", Subs: api.Subs{0.9, 0.8, 0.95}, Score: 0.88, Time: 1668945600, Votes: 1},
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestBoardHandler_Leaderboard(t *testing.T) {
	store := &storage.BoardStorageMock{
		LeaderboardFunc: func(ctx context.Context) ([]api.LeaderboardEntry, error) {
			return boardFixture(), nil
		},
	}
	handler := newTestBoardHandler(store)

	w := httptest.NewRecorder()
	handler.Leaderboard(w, httptest.NewRequest(http.MethodGet, "/leaderboard", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var entries []api.LeaderboardEntry
	require.NoError(t, json.NewDecoder(w.Body).Decode(&entries))
	assert.Equal(t, boardFixture(), entries)
}

func TestBoardHandler_Leaderboard_StorageError(t *testing.T) {
	store := &storage.BoardStorageMock{
		LeaderboardFunc: func(ctx context.Context) ([]api.LeaderboardEntry, error) {
			return nil, errors.New("disk I/O error")
		},
	}
	handler := newTestBoardHandler(store)

	w := httptest.NewRecorder()
	handler.Leaderboard(w, httptest.NewRequest(http.MethodGet, "/leaderboard", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "disk")
}

func TestBoardHandler_History(t *testing.T) {
	store := &storage.BoardStorageMock{
		HistoryFunc: func(ctx context.Context, user string) ([]api.HistoryEntry, error) {
			if user != "u1" {
				return []api.HistoryEntry{}, nil
			}
			return []api.HistoryEntry{{Subs: api.Subs{1, 1, 1}, Score: 1, Time: 10}}, nil
		},
	}
	handler := newTestBoardHandler(store)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /history/{user}", handler.History)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/history/u1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"subs":[1,1,1],"score":1,"time":10}]`, w.Body.String())

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/history/ghost", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	require.Len(t, store.HistoryCalls(), 2)
	assert.Equal(t, "ghost", store.HistoryCalls()[1].User)
}

func TestBoardHandler_Submit_Success(t *testing.T) {
	store := &storage.BoardStorageMock{
		SaveSubmissionFunc: func(ctx context.Context, sub *models.Submission) error {
			return nil
		},
		LeaderboardFunc: func(ctx context.Context) ([]api.LeaderboardEntry, error) {
			return boardFixture(), nil
		},
	}
	handler := newTestBoardHandler(store)

	body := `{"user":"u1","content":"0.9\n0.8\n0.95","avatar":"AP8Q"}`
	w := httptest.NewRecorder()
	handler.Submit(w, httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, w.Code)

	require.Len(t, store.SaveSubmissionCalls(), 1)
	sub := store.SaveSubmissionCalls()[0].Sub
	assert.Equal(t, "sub-1", sub.ID)
	assert.Equal(t, "u1", sub.User)
	assert.Equal(t, "AP8Q", sub.Avatar)
	assert.Equal(t, api.Subs{0.9, 0.8, 0.95}, sub.Subs)
	assert.Equal(t, api.Subs{0.9, 0.8, 0.95}.Average(), sub.Score)
	assert.Equal(t, int64(1668945600), sub.Time)

	var entries []api.LeaderboardEntry
	require.NoError(t, json.NewDecoder(w.Body).Decode(&entries))
	assert.Len(t, entries, 1)
}

func TestBoardHandler_Submit_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
		status  int
	}{
		{
			name:   "malformed json",
			body:   `{"user":`,
			status: http.StatusBadRequest,
		},
		{
			name:    "empty user",
			body:    `{"user":"","content":"1 1 1"}`,
			status:  http.StatusBadRequest,
			message: "user cannot be empty",
		},
		{
			name:    "bad user",
			body:    `{"user":"a b","content":"1 1 1"}`,
			status:  http.StatusBadRequest,
			message: "can only contain letters",
		},
		{
			name:    "content not numbers",
			body:    `{"user":"u1","content":"a b c"}`,
			status:  http.StatusBadRequest,
			message: "invalid number",
		},
		{
			name:    "two numbers",
			body:    `{"user":"u1","content":"1 1"}`,
			status:  http.StatusBadRequest,
			message: "wrong number of sub-scores",
		},
		{
			name:    "avatar not base64",
			body:    `{"user":"u1","content":"1 1 1","avatar":"!!"}`,
			status:  http.StatusBadRequest,
			message: "avatar is not valid base64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &storage.BoardStorageMock{}
			handler := newTestBoardHandler(store)

			w := httptest.NewRecorder()
			handler.Submit(w, httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(tt.body)))

			assert.Equal(t, tt.status, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, http.StatusText(tt.status), resp.Error)
			if tt.message != "" {
				assert.Contains(t, resp.Message, tt.message)
			}
			assert.Empty(t, store.SaveSubmissionCalls())
		})
	}
}

func TestBoardHandler_Submit_TooLarge(t *testing.T) {
	handler := newTestBoardHandler(&storage.BoardStorageMock{})

	body := `{"user":"u1","content":"` + strings.Repeat("A", MaxRequestBytes) + `"}`
	w := httptest.NewRecorder()
	handler.Submit(w, httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(body)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestBoardHandler_Submit_StorageError(t *testing.T) {
	store := &storage.BoardStorageMock{
		SaveSubmissionFunc: func(ctx context.Context, sub *models.Submission) error {
			return errors.New("database is locked")
		},
	}
	handler := newTestBoardHandler(store)

	body := `{"user":"u1","content":"1 1 1"}`
	w := httptest.NewRecorder()
	handler.Submit(w, httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(body)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, store.LeaderboardCalls())
}

func TestBoardHandler_Vote(t *testing.T) {
	store := &storage.BoardStorageMock{
		VoteFunc: func(ctx context.Context, user string) error {
			if user == "ghost" {
				return storage.ErrUserNotFound
			}
			return nil
		},
		LeaderboardFunc: func(ctx context.Context) ([]api.LeaderboardEntry, error) {
			return boardFixture(), nil
		},
	}
	handler := newTestBoardHandler(store)

	t.Run("success", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Vote(w, httptest.NewRequest(http.MethodPost, "/vote", strings.NewReader(`{"user":"u1"}`)))

		assert.Equal(t, http.StatusOK, w.Code)
		var entries []api.LeaderboardEntry
		require.NoError(t, json.NewDecoder(w.Body).Decode(&entries))
		assert.Equal(t, boardFixture(), entries)
	})

	t.Run("unknown user", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Vote(w, httptest.NewRequest(http.MethodPost, "/vote", strings.NewReader(`{"user":"ghost"}`)))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "user not found", decodeError(t, w).Message)
	})

	t.Run("missing user", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Vote(w, httptest.NewRequest(http.MethodPost, "/vote", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Vote(w, httptest.NewRequest(http.MethodPost, "/vote", strings.NewReader(`nope`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("storage error", func(t *testing.T) {
		store.VoteFunc = func(ctx context.Context, user string) error {
			return errors.New("boom")
		}
		w := httptest.NewRecorder()
		handler.Vote(w, httptest.NewRequest(http.MethodPost, "/vote", strings.NewReader(`{"user":"u1"}`)))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	assert.Len(t, store.VoteCalls(), 3)
}
