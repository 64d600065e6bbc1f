package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/sast/hwboard/internal/client/api"
	"github.com/sast/hwboard/internal/client/board"
	"github.com/sast/hwboard/internal/client/cache"
	"github.com/sast/hwboard/internal/client/endpoint"
	"github.com/sast/hwboard/internal/client/history"
	"github.com/sast/hwboard/internal/server/config"
	"github.com/sast/hwboard/internal/server/storage/sqlite"
	"github.com/sast/hwboard/pkg/api"
)

type testServer struct {
	server *httptest.Server
	store  *sqlite.Storage
	cfg    *config.Config
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := sqlite.New(context.Background(), ":memory:", logger)
	require.NoError(t, err)

	if cfg == nil {
		cfg = &config.Config{RateWindow: time.Minute}
	}
	router, stop := NewRouter(logger, store, cfg, "test")
	srv := httptest.NewServer(router)

	t.Cleanup(func() {
		srv.Close()
		stop()
		_ = store.Close()
	})

	return &testServer{server: srv, store: store, cfg: cfg}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func findEntry(entries []api.LeaderboardEntry, user string) (api.LeaderboardEntry, bool) {
	for _, e := range entries {
		if e.User == user {
			return e, true
		}
	}
	return api.LeaderboardEntry{}, false
}

// TestScenario_SubmitThenVote проходит путь пользователя: посылка, голос, история
func TestScenario_SubmitThenVote(t *testing.T) {
	ts := newTestServer(t, nil)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := endpoint.New(ts.server.URL)
	cfg.Confirm()
	client := clientapi.NewClient(cfg)
	leaderboard := cache.New(client, logger)
	leaderboard.SetConfirmed(ctx, true)

	opts := board.DefaultOptions()
	opts.Policy = board.PolicyNotify
	service := board.NewService(client, leaderboard, logger, opts)

	// Пустая таблица
	entries, err := leaderboard.Revalidate(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Посылка u1
	resultPath := writeFile(t, "result.txt", "0.9\n0.8\n0.95")
	require.NoError(t, service.Submit(ctx, board.SubmitForm{User: "u1", ContentPath: resultPath}))

	entries, ok := leaderboard.Peek()
	require.True(t, ok)
	u1, found := findEntry(entries, "u1")
	require.True(t, found)
	assert.Equal(t, 0, u1.Votes)
	assert.Equal(t, api.Subs{0.9, 0.8, 0.95}, u1.Subs)
	assert.Equal(t, u1.Subs.Average(), u1.Score)

	// Данные сервера совпадают с кэшем
	fresh, err := client.GetLeaderboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, fresh)

	// Голос за u1
	require.NoError(t, service.Vote(ctx, "u1"))
	entries, _ = leaderboard.Peek()
	u1, _ = findEntry(entries, "u1")
	assert.Equal(t, 1, u1.Votes)

	// История
	viewer := history.NewViewer(client, logger)
	view, err := viewer.Open(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, view.Rows, 1)
	assert.Equal(t, u1.Score, view.Rows[0].Score)
	assert.Equal(t, "u1 submission history", view.Title)
}

func TestScenario_VoteOnlyTarget(t *testing.T) {
	ts := newTestServer(t, nil)
	ctx := context.Background()

	cfg := endpoint.New(ts.server.URL)
	client := clientapi.NewClient(cfg)

	for _, user := range []string{"u1", "u2"} {
		_, err := client.Submit(ctx, api.SubmitRequest{
			User:    user,
			Content: "1 0.5 0",
		})
		require.NoError(t, err)
	}

	before, err := client.GetLeaderboard(ctx)
	require.NoError(t, err)

	after, err := client.Vote(ctx, "u2")
	require.NoError(t, err)

	for _, e := range before {
		got, ok := findEntry(after, e.User)
		require.True(t, ok)
		if e.User == "u2" {
			assert.Equal(t, e.Votes+1, got.Votes)
		} else {
			assert.Equal(t, e.Votes, got.Votes)
		}
	}
}

func TestScenario_Errors(t *testing.T) {
	ts := newTestServer(t, nil)
	ctx := context.Background()
	client := clientapi.NewClient(endpoint.New(ts.server.URL))

	// Голос за неизвестного пользователя
	_, err := client.Vote(ctx, "ghost")
	require.Error(t, err)
	assert.True(t, clientapi.IsServerError(err))

	// Отказ сервера по содержимому превращается в ошибку валидации
	_, err = client.Submit(ctx, api.SubmitRequest{
		User:    "u1",
		Content: "only two",
	})
	require.Error(t, err)
	assert.True(t, clientapi.IsValidationError(err))

	// История неизвестного пользователя пуста
	hist, err := client.GetHistory(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, hist)
}

func TestRouter_Health(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.server.URL + "/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","version":"test"}`, string(body))
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Post(ts.server.URL+"/leaderboard", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRouter_VoteRateLimit(t *testing.T) {
	ts := newTestServer(t, &config.Config{VoteRate: 1, RateWindow: time.Minute})
	ctx := context.Background()
	client := clientapi.NewClient(endpoint.New(ts.server.URL))

	_, err := client.Submit(ctx, api.SubmitRequest{
		User:    "u1",
		Content: "1 1 1",
	})
	require.NoError(t, err)

	_, err = client.Vote(ctx, "u1")
	require.NoError(t, err)

	_, err = client.Vote(ctx, "u1")
	require.Error(t, err)
	var serverErr *clientapi.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusTooManyRequests, serverErr.StatusCode)
}
