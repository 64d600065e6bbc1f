package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNetwork означает, что запрос не дошел до сервера или ответ не был прочитан
var ErrNetwork = errors.New("network error")

// ServerError описывает ответ сервера с кодом вне диапазона 2xx
type ServerError struct {
	Message    string
	StatusCode int
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// ValidationError описывает отсутствующие или некорректные поля посылки.
// Возникает либо до сетевого вызова, либо как ответ сервера 400/422 на submit.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation error: " + e.Message
	}
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// IsNetworkError сообщает, является ли err транспортной ошибкой
func IsNetworkError(err error) bool {
	return errors.Is(err, ErrNetwork)
}

// IsServerError сообщает, является ли err ответом сервера с ошибкой
func IsServerError(err error) bool {
	var se *ServerError
	return errors.As(err, &se)
}

// IsValidationError сообщает, является ли err ошибкой валидации
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func isValidationStatus(code int) bool {
	return code == http.StatusBadRequest || code == http.StatusUnprocessableEntity
}
