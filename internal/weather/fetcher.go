package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultTimeout  = 10 * time.Second
	maxResponseBody = 10 * 1024 * 1024 // 10 MB
)

// Fetcher запрашивает текущую погоду у внешнего API.
//
// Один вызов Fetch — один GET без повторов.
// Тело ответа возвращается без изменений.
type Fetcher struct {
	url     string
	client  *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

// FetcherConfig — конфигурация Fetcher.
type FetcherConfig struct {
	Endpoint Endpoint

	// Timeout — таймаут запроса (default: 10s).
	Timeout time.Duration

	// Client — HTTP клиент (опционально).
	Client *http.Client

	Logger *slog.Logger
}

// NewFetcher создаёт новый Fetcher.
func NewFetcher(cfg FetcherConfig) *Fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Fetcher{
		url:     cfg.Endpoint.URL(),
		client:  client,
		timeout: timeout,
		logger:  logger,
	}
}

// Fetch выполняет GET и возвращает сырое JSON тело ответа.
//
// Ошибки — всегда *FetchError: сеть/таймаут (ErrRequest),
// не-2xx статус (ErrUnexpectedStatus), нечитаемое или не-JSON тело (ErrMalformedBody).
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("%w: create request: %v", ErrRequest, stripURL(err))}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("%w: %w", ErrRequest, stripURL(err))}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, &FetchError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: read body: %v", ErrMalformedBody, err),
		}
	}

	f.logger.Debug("weather api responded",
		"status_code", resp.StatusCode,
		"bytes", len(body),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: %s", ErrUnexpectedStatus, truncate(string(body), 200)),
		}
	}

	if !json.Valid(body) {
		return nil, &FetchError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: not valid JSON (%d bytes)", ErrMalformedBody, len(body)),
		}
	}

	return body, nil
}

// stripURL убирает URL из *url.Error: в query лежит API key.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}

// truncate обрезает строку до указанной длины.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
