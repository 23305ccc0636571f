package mq

import (
	"context"
	"log/slog"
	"time"

	"github.com/shaiso/weather-collector/internal/telemetry"
)

const defaultConnectRetryDelay = 5 * time.Second

// Connector устанавливает соединения с RabbitMQ.
//
// Connect не возвращает ошибку подключения: попытки повторяются
// согласно RetryPolicy (по умолчанию бесконечно, каждые 5s),
// пока брокер не станет доступен или не будет отменён ctx.
type Connector struct {
	broker Config
	dial   DialFunc
	retry  RetryPolicy
	sleep  SleepFunc
	logger *slog.Logger
}

// ConnectorConfig — конфигурация Connector.
type ConnectorConfig struct {
	// Broker — параметры подключения.
	Broker Config

	// Dial — примитив подключения (опционально; если nil — DialAMQP).
	Dial DialFunc

	// Retry — политика повторов Connect.
	// MaxAttempts 0 — без ограничения; Delay по умолчанию 5s.
	Retry RetryPolicy

	// Sleep — ожидание между попытками (опционально; если nil — SleepContext).
	Sleep SleepFunc

	// Logger
	Logger *slog.Logger
}

// NewConnector создаёт новый Connector.
func NewConnector(cfg ConnectorConfig) *Connector {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	dial := cfg.Dial
	if dial == nil {
		dial = DialAMQP
	}

	sleep := cfg.Sleep
	if sleep == nil {
		sleep = SleepContext
	}

	retry := cfg.Retry
	if retry.Delay <= 0 {
		retry.Delay = defaultConnectRetryDelay
	}

	broker := cfg.Broker
	if broker.Logger == nil {
		broker.Logger = logger
	}

	return &Connector{
		broker: broker,
		dial:   dial,
		retry:  retry,
		sleep:  sleep,
		logger: logger,
	}
}

// Connect блокируется до установки соединения и объявления очереди.
//
// Каждая неудачная попытка логируется как *ConnectError.
// Ошибка возвращается только при отмене ctx (или если RetryPolicy ограничена).
func (c *Connector) Connect(ctx context.Context) (*Connection, error) {
	var session Session

	err := c.retry.Do(ctx, c.sleep, func(attempt int) error {
		c.logger.Info("connecting to RabbitMQ",
			"addr", c.broker.Addr(),
			"queue", c.broker.Queue,
			"attempt", attempt,
		)

		s, err := c.dial(ctx, c.broker)
		if err != nil {
			telemetry.ConnectAttempts.WithLabelValues(telemetry.ResultError).Inc()

			connErr := &ConnectError{Attempt: attempt, Err: err}
			c.logger.Warn("failed to connect to RabbitMQ",
				"attempt", attempt,
				"retry_in", c.retry.Delay,
				"error", connErr,
			)
			return connErr
		}

		telemetry.ConnectAttempts.WithLabelValues(telemetry.ResultOK).Inc()
		session = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	conn := NewConnection(session, c.broker.Queue, c.logger)

	c.logger.Info("connected to RabbitMQ",
		"addr", c.broker.Addr(),
		"queue", c.broker.Queue,
		"connection_id", conn.ID(),
	)

	return conn, nil
}
