package board

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"

	clientapi "github.com/sast/hwboard/internal/client/api"
)

// ErrorPolicy определяет, что делать с ошибкой мутации (vote/submit)
type ErrorPolicy int

const (
	// PolicyIgnore логирует ошибку и не возвращает ее вызывающему
	PolicyIgnore ErrorPolicy = iota
	// PolicyNotify возвращает ошибку вызывающему
	PolicyNotify
	// PolicyRetry повторяет сетевые и 5xx ошибки, затем возвращает ошибку
	PolicyRetry
)

func (p ErrorPolicy) String() string {
	switch p {
	case PolicyIgnore:
		return "ignore"
	case PolicyNotify:
		return "notify"
	case PolicyRetry:
		return "retry"
	default:
		return "unknown"
	}
}

// ParsePolicy разбирает название политики
func ParsePolicy(s string) (ErrorPolicy, error) {
	switch s {
	case "ignore":
		return PolicyIgnore, nil
	case "notify":
		return PolicyNotify, nil
	case "retry":
		return PolicyRetry, nil
	default:
		return PolicyIgnore, errors.New("unknown error policy: " + s)
	}
}

// Options настройки сервиса
type Options struct {
	Policy        ErrorPolicy
	RetryBase     time.Duration // начальная задержка экспоненциального backoff
	RetryAttempts uint64        // количество повторов для PolicyRetry
}

// DefaultOptions повторяет поведение исходного клиента: ошибки мутаций игнорируются
func DefaultOptions() Options {
	return Options{
		Policy:        PolicyIgnore,
		RetryBase:     200 * time.Millisecond,
		RetryAttempts: 3,
	}
}

// call выполняет запрос, при PolicyRetry повторяя временные ошибки
func (s *service) call(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.opts.Policy != PolicyRetry {
		return fn(ctx)
	}

	backoff := retry.WithMaxRetries(s.opts.RetryAttempts, retry.NewExponential(s.opts.RetryBase))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && isTransient(err) {
			s.logger.Debug("Retrying request", "error", err)
			return retry.RetryableError(err)
		}
		return err
	})
}

// isTransient сообщает, имеет ли смысл повторять запрос
func isTransient(err error) bool {
	if clientapi.IsNetworkError(err) {
		return true
	}
	var se *clientapi.ServerError
	if errors.As(err, &se) {
		return se.StatusCode >= http.StatusInternalServerError || se.StatusCode == http.StatusTooManyRequests
	}
	return false
}
