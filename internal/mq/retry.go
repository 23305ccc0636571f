package mq

import (
	"context"
	"time"
)

// SleepFunc ждёт d или отмены ctx.
// Возвращает false, если ctx был отменён раньше.
type SleepFunc func(ctx context.Context, d time.Duration) bool

// SleepContext — реализация SleepFunc на таймере.
func SleepContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// RetryPolicy — политика повторных попыток с фиксированной задержкой.
type RetryPolicy struct {
	// MaxAttempts — максимальное количество попыток (включая первую).
	// 0 — без ограничения.
	MaxAttempts int

	// Delay — пауза между попытками.
	Delay time.Duration
}

// Unbounded возвращает true, если количество попыток не ограничено.
func (p RetryPolicy) Unbounded() bool {
	return p.MaxAttempts <= 0
}

// Exhausted проверяет, исчерпаны ли попытки после attempt-й.
func (p RetryPolicy) Exhausted(attempt int) bool {
	return !p.Unbounded() && attempt >= p.MaxAttempts
}

// Do вызывает fn, пока она не вернёт nil или не закончатся попытки.
//
// Между попытками ждёт Delay через sleep (nil — SleepContext).
// Возвращает ошибку последней попытки либо ctx.Err() при отмене.
func (p RetryPolicy) Do(ctx context.Context, sleep SleepFunc, fn func(attempt int) error) error {
	if sleep == nil {
		sleep = SleepContext
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(attempt)
		if err == nil {
			return nil
		}

		if p.Exhausted(attempt) {
			return err
		}

		if !sleep(ctx, p.Delay) {
			return ctx.Err()
		}
	}
}
