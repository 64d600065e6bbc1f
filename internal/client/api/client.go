package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sast/hwboard/internal/client/endpoint"
	"github.com/sast/hwboard/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI описывает операции сервера таблицы лидеров
type ClientAPI interface {
	// GetLeaderboard возвращает текущий набор записей таблицы
	GetLeaderboard(ctx context.Context) ([]api.LeaderboardEntry, error)

	// GetHistory возвращает посылки пользователя по возрастанию времени.
	// Для неизвестного пользователя возвращается пустой слайс.
	GetHistory(ctx context.Context, user string) ([]api.HistoryEntry, error)

	// Submit отправляет посылку и возвращает всю обновленную таблицу
	Submit(ctx context.Context, req api.SubmitRequest) ([]api.LeaderboardEntry, error)

	// Vote голосует за пользователя и возвращает всю обновленную таблицу
	Vote(ctx context.Context, user string) ([]api.LeaderboardEntry, error)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	endpoint   endpoint.Source
	httpClient *http.Client
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент.
// Базовый URL берется из endpoint при каждом запросе.
func NewClient(src endpoint.Source) *Client {
	return NewClientWithHTTP(src, &http.Client{})
}

// NewClientWithHTTP создает API клиент с заданным http.Client
func NewClientWithHTTP(src endpoint.Source, httpClient *http.Client) *Client {
	return &Client{
		endpoint:   src,
		httpClient: httpClient,
	}
}

// GetLeaderboard получает таблицу лидеров
func (c *Client) GetLeaderboard(ctx context.Context) ([]api.LeaderboardEntry, error) {
	var resp []api.LeaderboardEntry
	if err := c.doRequest(ctx, http.MethodGet, "/leaderboard", nil, &resp); err != nil {
		return nil, fmt.Errorf("leaderboard request failed: %w", err)
	}
	return resp, nil
}

// GetHistory получает историю посылок пользователя
func (c *Client) GetHistory(ctx context.Context, user string) ([]api.HistoryEntry, error) {
	var resp []api.HistoryEntry
	path := "/history/" + url.PathEscape(user)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("history request failed: %w", err)
	}
	if resp == nil {
		resp = []api.HistoryEntry{}
	}
	return resp, nil
}

// Submit отправляет посылку
func (c *Client) Submit(ctx context.Context, req api.SubmitRequest) ([]api.LeaderboardEntry, error) {
	var resp []api.LeaderboardEntry
	if err := c.doRequest(ctx, http.MethodPost, "/submit", req, &resp); err != nil {
		return nil, fmt.Errorf("submit request failed: %w", err)
	}
	return resp, nil
}

// Vote голосует за пользователя
func (c *Client) Vote(ctx context.Context, user string) ([]api.LeaderboardEntry, error) {
	var resp []api.LeaderboardEntry
	if err := c.doRequest(ctx, http.MethodPost, "/vote", api.VoteRequest{User: user}, &resp); err != nil {
		return nil, fmt.Errorf("vote request failed: %w", err)
	}
	return resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	// Адрес читается в момент вызова
	target := c.endpoint.Get() + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %w", ErrNetwork, err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := string(bytes.TrimSpace(respBody))
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && (errResp.Error != "" || errResp.Message != "") {
			message = errResp.Error
			if errResp.Message != "" {
				message = errResp.Message
			}
		}

		if method == http.MethodPost && path == "/submit" && isValidationStatus(resp.StatusCode) {
			return &ValidationError{Message: message}
		}
		return &ServerError{StatusCode: resp.StatusCode, Message: message}
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &ServerError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to decode response: %v", err)}
		}
	}

	return nil
}
