package weather

import (
	"errors"
	"fmt"
)

// Ошибки получения данных.
var (
	// ErrRequest — запрос не выполнен (сеть, DNS, таймаут).
	ErrRequest = errors.New("weather request failed")

	// ErrUnexpectedStatus — API ответил не 2xx.
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// ErrMalformedBody — тело ответа не прочитано или не является JSON.
	ErrMalformedBody = errors.New("malformed response body")
)

// FetchError — ошибка Fetcher.Fetch.
type FetchError struct {
	StatusCode int   // HTTP-код ответа, 0 если ответа не было
	Err        error // базовая ошибка
}

// Error реализует интерфейс error.
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch weather: HTTP %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch weather: %v", e.Err)
}

// Unwrap возвращает базовую ошибку.
func (e *FetchError) Unwrap() error {
	return e.Err
}
