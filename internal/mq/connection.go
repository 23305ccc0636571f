package mq

import (
	"log/slog"

	"github.com/google/uuid"
)

// Connection — живая сессия с брокером и очередь, в которую она публикует.
//
// Connection не переподключается сама: владелец проверяет IsAlive
// и при необходимости получает новую через Connector.Connect.
type Connection struct {
	id      string
	session Session
	queue   string
	logger  *slog.Logger
}

// NewConnection оборачивает открытую Session.
func NewConnection(session Session, queue string, logger *slog.Logger) *Connection {
	if logger == nil {
		logger = slog.Default()
	}

	id := uuid.NewString()

	return &Connection{
		id:      id,
		session: session,
		queue:   queue,
		logger:  logger.With("connection_id", id, "queue", queue),
	}
}

// ID возвращает идентификатор соединения (для логов).
func (c *Connection) ID() string {
	return c.id
}

// Queue возвращает имя очереди.
func (c *Connection) Queue() string {
	return c.queue
}

// IsAlive проверяет, что сессия открыта. Не блокируется.
// Для nil Connection возвращает false.
func (c *Connection) IsAlive() bool {
	if c == nil || c.session == nil {
		return false
	}
	return !c.session.IsClosed()
}

// Close закрывает сессию.
func (c *Connection) Close() error {
	if c == nil || c.session == nil {
		return nil
	}

	if err := c.session.Close(); err != nil {
		return err
	}

	c.logger.Debug("connection closed")
	return nil
}
