// Package server собирает HTTP сервер таблицы лидеров
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sast/hwboard/internal/server/config"
	"github.com/sast/hwboard/internal/server/handlers"
	"github.com/sast/hwboard/internal/server/middleware"
	"github.com/sast/hwboard/internal/server/storage"
)

// Storage хранилище с проверкой доступности
type Storage interface {
	storage.BoardStorage
	Ping(ctx context.Context) error
}

// NewRouter регистрирует маршруты и middleware.
// Возвращает функцию остановки фоновых задач rate limiter.
func NewRouter(logger *slog.Logger, store Storage, cfg *config.Config, version string) (http.Handler, func()) {
	board := handlers.NewBoardHandler(logger, store)
	health := handlers.NewHealthHandler(logger, store, version)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /leaderboard", board.Leaderboard)
	mux.HandleFunc("GET /history/{user}", board.History)
	mux.HandleFunc("POST /submit", board.Submit)
	mux.HandleFunc("POST /vote", board.Vote)

	rateLimit, stop := middleware.RateLimitByPath([]middleware.PathRateLimit{
		{Path: "/vote", Rate: cfg.VoteRate, Window: cfg.RateWindow},
		{Path: "/submit", Rate: cfg.SubmitRate, Window: cfg.RateWindow},
	}, cfg.TrustProxy, logger)

	var h http.Handler = mux
	h = rateLimit(h)
	h = middleware.Logging(logger, "/health")(h)
	h = middleware.Recovery(logger)(h)

	return h, stop
}
