package mq

import (
	"context"
	"sync"
	"time"
)

// fakeSession — Session в памяти.
type fakeSession struct {
	mu sync.Mutex

	closed     bool
	closeCalls int

	// publishErr возвращается из Publish; closeOnPublish закрывает сессию перед ошибкой.
	publishErr     error
	closeOnPublish bool

	routingKeys []string
	bodies      [][]byte
}

func (s *fakeSession) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *fakeSession) Publish(_ context.Context, routingKey string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.publishErr != nil {
		if s.closeOnPublish {
			s.closed = true
		}
		return s.publishErr
	}

	s.routingKeys = append(s.routingKeys, routingKey)
	s.bodies = append(s.bodies, append([]byte(nil), body...))
	return nil
}

func (s *fakeSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.closeCalls++
	return nil
}

// sleepRecorder записывает запрошенные паузы и не ждёт.
type sleepRecorder struct {
	delays []time.Duration
}

func (r *sleepRecorder) sleep(ctx context.Context, d time.Duration) bool {
	r.delays = append(r.delays, d)
	return ctx.Err() == nil
}
