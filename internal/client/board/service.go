package board

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	clientapi "github.com/sast/hwboard/internal/client/api"
	"github.com/sast/hwboard/internal/client/cache"
	"github.com/sast/hwboard/internal/client/payload"
	"github.com/sast/hwboard/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service связывает действия пользователя с API и кэшем таблицы
type Service interface {
	// Vote голосует за пользователя и обновляет кэш ответом сервера
	Vote(ctx context.Context, user string) error

	// Submit проверяет форму, кодирует файлы, отправляет посылку и обновляет кэш
	Submit(ctx context.Context, form SubmitForm) error
}

// Cache минимальный интерфейс кэша таблицы, нужный сервису
type Cache interface {
	Mutate(
		ctx context.Context,
		delta *cache.Delta,
		commit func(ctx context.Context) ([]api.LeaderboardEntry, error),
	) error
}

// SubmitForm данные формы посылки
type SubmitForm struct {
	User        string // номер студента
	ContentPath string // путь к result.txt
	AvatarPath  string // путь к аватару, необязательно
}

type service struct {
	apiClient clientapi.ClientAPI
	cache     Cache
	logger    *slog.Logger
	opts      Options
}

// NewService создает сервис голосования и посылок
func NewService(apiClient clientapi.ClientAPI, cache Cache, logger *slog.Logger, opts Options) Service {
	return &service{
		apiClient: apiClient,
		cache:     cache,
		logger:    logger,
		opts:      opts,
	}
}

// Vote выполняет двухфазное обновление: голос сразу учитывается локально,
// затем заменяется ответом сервера или откатывается при ошибке
func (s *service) Vote(ctx context.Context, user string) error {
	s.logger.Info("Voting", "user", user)

	delta := &cache.Delta{
		Apply: func(entries []api.LeaderboardEntry) []api.LeaderboardEntry {
			return addVote(entries, user)
		},
		Revert: func(entries []api.LeaderboardEntry) []api.LeaderboardEntry {
			return removeVote(entries, user)
		},
	}
	err := s.cache.Mutate(ctx, delta,
		func(ctx context.Context) ([]api.LeaderboardEntry, error) {
			var result []api.LeaderboardEntry
			err := s.call(ctx, func(ctx context.Context) error {
				var err error
				result, err = s.apiClient.Vote(ctx, user)
				return err
			})
			return result, err
		},
	)
	if err != nil {
		return s.handle("vote", err)
	}

	s.logger.Info("Vote accepted", "user", user)
	return nil
}

// Submit отправляет посылку. Ошибки валидации формы возвращаются всегда,
// до любого сетевого вызова. Кэш меняется только ответом сервера.
func (s *service) Submit(ctx context.Context, form SubmitForm) error {
	if err := validateForm(form); err != nil {
		return err
	}

	req, err := payload.EncodeFiles(strings.TrimSpace(form.User), form.ContentPath, form.AvatarPath)
	if err != nil {
		return fmt.Errorf("failed to prepare submission: %w", err)
	}

	s.logger.Info("Submitting", "user", req.User, "content_bytes", len(req.Content), "has_avatar", req.Avatar != "")

	err = s.cache.Mutate(ctx, nil, func(ctx context.Context) ([]api.LeaderboardEntry, error) {
		var result []api.LeaderboardEntry
		err := s.call(ctx, func(ctx context.Context) error {
			var err error
			result, err = s.apiClient.Submit(ctx, req)
			return err
		})
		return result, err
	})
	if err != nil {
		// Отказ сервера по валидации показываем пользователю независимо от политики
		if clientapi.IsValidationError(err) {
			return err
		}
		return s.handle("submit", err)
	}

	s.logger.Info("Submission accepted", "user", req.User)
	return nil
}

// handle применяет политику ошибок
func (s *service) handle(op string, err error) error {
	s.logger.Warn("Mutation failed", "op", op, "policy", s.opts.Policy.String(), "error", err)

	if s.opts.Policy == PolicyIgnore {
		return nil
	}
	return err
}

func validateForm(form SubmitForm) error {
	if strings.TrimSpace(form.User) == "" {
		return &clientapi.ValidationError{Field: "user", Message: "user is required"}
	}
	if form.ContentPath == "" {
		return &clientapi.ValidationError{Field: "content", Message: "result file is required"}
	}
	return nil
}

// addVote увеличивает голоса пользователя на 1; остальные записи не меняются
func addVote(entries []api.LeaderboardEntry, user string) []api.LeaderboardEntry {
	for i := range entries {
		if entries[i].User == user {
			entries[i].Votes++
			break
		}
	}
	return entries
}

// removeVote отменяет addVote; голоса не уходят ниже нуля
func removeVote(entries []api.LeaderboardEntry, user string) []api.LeaderboardEntry {
	for i := range entries {
		if entries[i].User == user {
			if entries[i].Votes > 0 {
				entries[i].Votes--
			}
			break
		}
	}
	return entries
}
