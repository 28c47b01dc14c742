package listings_api_client

import (
	"admin-console/internal/contextkeys"
	"admin-console/internal/core/domain"
	"admin-console/internal/core/port"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// TokenSource - откуда клиент берет токен администратора.
// Передается явно при создании клиента, глобального состояния нет.
type TokenSource interface {
	Get(ctx context.Context) (string, error)
}

// Client - клиент REST API бэкенда площадки объявлений
type Client struct {
	baseURL    string // Например, "http://localhost:5050"
	session    TokenSource
	httpClient *http.Client
}

// NewClient - конструктор. Завершающие слэши базового адреса отбрасываются.
func NewClient(baseURL string, session TokenSource, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		session:    session,
		httpClient: httpClient,
	}
}

// BaseURL возвращает нормализованный адрес бэкенда
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doRequest - внутренний хелпер для выполнения запросов.
// Токен прикладывается всегда, когда он есть, независимо от эндпоинта.
func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	token := ""
	if c.session != nil {
		var err error
		token, err = c.session.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read admin session: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// Request выполняет JSON-запрос. Тело сериализуется только если оно передано.
// При статусе вне 2xx возвращает *domain.RequestError с сообщением сервера или fallback.
func (c *Client) Request(ctx context.Context, method, path string, body any, out any, fallback string) error {
	clientLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "ListingsApiClient",
		"http_method": method,
		"path":        path,
	})

	var reader io.Reader
	contentType := ""
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			clientLogger.Error("Failed to marshal request body", err, nil)
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
		contentType = "application/json"
	}

	clientLogger.Debug("Sending request to listings backend", nil)
	resp, err := c.doRequest(ctx, method, path, reader, contentType)
	if err != nil {
		clientLogger.Error("Failed to perform request to listings backend", err, nil)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp, out, fallback, clientLogger)
}

func (c *Client) handleResponse(resp *http.Response, out any, fallback string, logger port.LoggerPort) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("Failed to read response body", err, nil)
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reqErr := domain.NewRequestError(resp.StatusCode, messageFromBody(data, fallback))
		logger.Error("Received error response from listings backend", reqErr, port.Fields{"status_code": resp.StatusCode})
		return reqErr
	}

	logger.Debug("Received success response from listings backend", port.Fields{"status_code": resp.StatusCode, "bytes": len(data)})

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	// Нечитаемое тело успешного ответа считаем пустым объектом
	if err := json.Unmarshal(data, out); err != nil {
		logger.Warn("Failed to decode response body, treating it as empty", port.Fields{"error": err.Error()})
	}
	return nil
}

// messageFromBody достает поле message из JSON-тела ответа
func messageFromBody(data []byte, fallback string) string {
	var body struct {
		Message any `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return fallback
	}
	if msg, ok := body.Message.(string); ok && msg != "" {
		return msg
	}
	return fallback
}
