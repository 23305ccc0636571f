package mq

import (
	"errors"
	"fmt"
)

// ErrConnectionClosed — соединение или канал с брокером закрыты.
var ErrConnectionClosed = errors.New("broker connection closed")

// ConnectError — неудачная попытка подключения к брокеру.
//
// Причина (сеть, авторизация, таймаут) не классифицируется:
// все ошибки подключения обрабатываются одинаково.
type ConnectError struct {
	Attempt int   // номер попытки, начиная с 1
	Err     error // базовая ошибка
}

// Error реализует интерфейс error.
func (e *ConnectError) Error() string {
	return fmt.Sprintf("connect attempt %d: %v", e.Attempt, e.Err)
}

// Unwrap возвращает базовую ошибку.
func (e *ConnectError) Unwrap() error {
	return e.Err
}

// BrokerError — ошибка брокера при публикации, не связанная с закрытием соединения.
type BrokerError struct {
	Queue string
	Err   error
}

// Error реализует интерфейс error.
func (e *BrokerError) Error() string {
	return fmt.Sprintf("publish to %s: %v", e.Queue, e.Err)
}

// Unwrap возвращает базовую ошибку.
func (e *BrokerError) Unwrap() error {
	return e.Err
}

// IsBrokerError проверяет, является ли ошибка BrokerError.
func IsBrokerError(err error) bool {
	var be *BrokerError
	return errors.As(err, &be)
}
