package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sast/hwboard/internal/models"
	"github.com/sast/hwboard/internal/scoring"
	"github.com/sast/hwboard/internal/server/storage"
	"github.com/sast/hwboard/internal/validation"
	"github.com/sast/hwboard/pkg/api"
)

// MaxRequestBytes ограничение тела POST запроса (аватар в base64 плюс result.txt)
const MaxRequestBytes = 4 << 20

// BoardHandler обрабатывает запросы таблицы лидеров
type BoardHandler struct {
	logger  *slog.Logger
	storage storage.BoardStorage
	now     func() time.Time
	newID   func() string
}

// NewBoardHandler создает handler таблицы лидеров
func NewBoardHandler(logger *slog.Logger, storage storage.BoardStorage) *BoardHandler {
	return &BoardHandler{
		logger:  logger,
		storage: storage,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
}

// Leaderboard обрабатывает GET /leaderboard
func (h *BoardHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	h.sendLeaderboard(w, r, http.StatusOK)
}

// History обрабатывает GET /history/{user}
// Неизвестный пользователь получает пустой список
func (h *BoardHandler) History(w http.ResponseWriter, r *http.Request) {
	user := r.PathValue("user")

	entries, err := h.storage.History(r.Context(), user)
	if err != nil {
		h.logger.Error("Failed to get history", "error", err, "user", user)
		sendError(h.logger, w, "", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, entries, http.StatusOK)
}

// Submit обрабатывает POST /submit
// Возвращает всю таблицу после сохранения посылки
func (h *BoardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req api.SubmitRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBytes)).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode submit request", "error", err)
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			sendError(h.logger, w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	sub, err := h.parseSubmission(req)
	if err != nil {
		h.logger.Info("Submission rejected", "user", req.User, "reason", err)
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.storage.SaveSubmission(r.Context(), sub); err != nil {
		h.logger.Error("Failed to save submission", "error", err, "user", sub.User)
		sendError(h.logger, w, "", http.StatusInternalServerError)
		return
	}

	h.logger.Info("Submission accepted", "user", sub.User, "score", sub.Score, "submission_id", sub.ID)
	h.sendLeaderboard(w, r, http.StatusOK)
}

// parseSubmission проверяет запрос и считает балл
func (h *BoardHandler) parseSubmission(req api.SubmitRequest) (*models.Submission, error) {
	if err := validation.ValidateUser(req.User); err != nil {
		return nil, err
	}

	// content это текст result.txt, аватар в base64
	subs, err := scoring.Parse(req.Content)
	if err != nil {
		return nil, err
	}

	if req.Avatar != "" {
		avatar, err := api.DecodeAvatar(req.Avatar)
		if err != nil {
			return nil, errors.New("avatar is not valid base64")
		}
		if err := validation.ValidateAvatar(avatar); err != nil {
			return nil, err
		}
	}

	return &models.Submission{
		ID:     h.newID(),
		User:   req.User,
		Avatar: req.Avatar,
		Subs:   subs,
		Score:  scoring.Score(subs),
		Time:   h.now().Unix(),
	}, nil
}

// Vote обрабатывает POST /vote
// Возвращает всю таблицу после голосования
func (h *BoardHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req api.VoteRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBytes)).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode vote request", "error", err)
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.User == "" {
		sendError(h.logger, w, "user is required", http.StatusBadRequest)
		return
	}

	if err := h.storage.Vote(r.Context(), req.User); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			sendError(h.logger, w, "user not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to vote", "error", err, "user", req.User)
		sendError(h.logger, w, "", http.StatusInternalServerError)
		return
	}

	h.logger.Info("Vote accepted", "user", req.User)
	h.sendLeaderboard(w, r, http.StatusOK)
}

func (h *BoardHandler) sendLeaderboard(w http.ResponseWriter, r *http.Request, statusCode int) {
	entries, err := h.storage.Leaderboard(r.Context())
	if err != nil {
		h.logger.Error("Failed to get leaderboard", "error", err)
		sendError(h.logger, w, "", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, entries, statusCode)
}
