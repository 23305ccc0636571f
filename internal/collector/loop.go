package collector

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/shaiso/weather-collector/internal/mq"
	"github.com/shaiso/weather-collector/internal/telemetry"
)

// Default configuration values.
const (
	defaultInterval   = 30 * time.Second
	defaultRetryDelay = 5 * time.Second
)

// Broker выдаёт живые соединения с брокером.
type Broker interface {
	// Connect блокируется до успеха; ошибка — только при отмене ctx.
	Connect(ctx context.Context) (*mq.Connection, error)
}

// Fetcher получает payload из внешнего API.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// Loop — цикл fetch/publish.
type Loop struct {
	broker  Broker
	fetcher Fetcher

	// Configuration
	interval   time.Duration
	retryDelay time.Duration
	sleep      mq.SleepFunc

	// Состояние цикла; меняется только горутиной Run.
	conn          *mq.Connection
	everConnected bool
	payload       []byte
	cycleID       string

	// live — копия conn для чтения из других горутин (healthz, метрики).
	live   atomic.Pointer[mq.Connection]
	logger *slog.Logger
}

// Config — конфигурация Loop.
type Config struct {
	Broker  Broker
	Fetcher Fetcher

	Interval   time.Duration // пауза после успешной публикации (default: 30s)
	RetryDelay time.Duration // пауза после ошибки fetch или брокера (default: 5s)

	// Sleep (опционально; если nil — mq.SleepContext)
	Sleep mq.SleepFunc

	Logger *slog.Logger
}

// New создаёт новый Loop.
func New(cfg Config) *Loop {
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}

	retryDelay := cfg.RetryDelay
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}

	sleep := cfg.Sleep
	if sleep == nil {
		sleep = mq.SleepContext
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Loop{
		broker:     cfg.Broker,
		fetcher:    cfg.Fetcher,
		interval:   interval,
		retryDelay: retryDelay,
		sleep:      sleep,
		logger:     logger,
	}
}

// Connected сообщает, есть ли у Loop живое соединение.
// Безопасен для вызова из других горутин; закрытие соединения брокером
// видно сразу, без ожидания следующего цикла.
func (l *Loop) Connected() bool {
	return l.live.Load().IsAlive()
}

// Run выполняет цикл до отмены ctx.
// Возвращает ctx.Err(); соединение закрывается при выходе.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info("starting publish loop",
		"interval", l.interval,
		"retry_delay", l.retryDelay,
	)

	defer l.dropConnection()

	state := StateAwaitConnection
	for {
		if err := ctx.Err(); err != nil {
			l.logger.Info("publish loop stopped", "state", state.String())
			return err
		}

		state = l.step(ctx, state)
	}
}

// step выполняет одно состояние и возвращает следующее.
func (l *Loop) step(ctx context.Context, state State) State {
	switch state {
	case StateAwaitConnection:
		return l.awaitConnection(ctx)
	case StateFetching:
		return l.fetch(ctx)
	case StatePublishing:
		return l.publish(ctx)
	case StateSleeping:
		l.sleep(ctx, l.interval)
		return StateAwaitConnection
	default:
		return StateAwaitConnection
	}
}

// awaitConnection переподключается, если текущее соединение не живо.
func (l *Loop) awaitConnection(ctx context.Context) State {
	if l.conn.IsAlive() {
		return StateFetching
	}

	if l.conn != nil {
		l.logger.Warn("broker connection lost, reconnecting",
			"connection_id", l.conn.ID(),
		)
		l.dropConnection()
	}

	conn, err := l.broker.Connect(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return StateAwaitConnection
		}

		// Только для Broker с ограниченной политикой повторов.
		l.logger.Error("failed to connect to broker",
			"error", err,
			"retry_in", l.retryDelay,
		)
		l.sleep(ctx, l.retryDelay)
		return StateAwaitConnection
	}

	if l.everConnected {
		telemetry.Reconnects.Inc()
	}

	l.conn = conn
	l.everConnected = true
	l.live.Store(conn)

	return StateFetching
}

// fetch получает payload; при ошибке ждёт retryDelay.
func (l *Loop) fetch(ctx context.Context) State {
	l.cycleID = uuid.NewString()
	logger := telemetry.WithCycleID(l.logger, l.cycleID)

	logger.Debug("fetching weather data")

	payload, err := l.fetcher.Fetch(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return StateAwaitConnection
		}

		telemetry.FetchTotal.WithLabelValues(telemetry.ResultError).Inc()
		logger.Error("failed to fetch weather data",
			"error", err,
			"retry_in", l.retryDelay,
		)

		l.sleep(ctx, l.retryDelay)
		return StateAwaitConnection
	}

	telemetry.FetchTotal.WithLabelValues(telemetry.ResultOK).Inc()
	l.payload = payload

	return StatePublishing
}

// publish отправляет payload текущего цикла.
func (l *Loop) publish(ctx context.Context) State {
	logger := telemetry.WithCycleID(l.logger, l.cycleID)

	payload := l.payload
	l.payload = nil

	err := l.conn.Publish(ctx, payload)
	switch {
	case err == nil:
		telemetry.PublishTotal.WithLabelValues(telemetry.ResultOK).Inc()
		telemetry.PublishedBytes.Add(float64(len(payload)))
		logger.Info("weather data published",
			"queue", l.conn.Queue(),
			"bytes", len(payload),
			"next_in", l.interval,
		)
		return StateSleeping

	case errors.Is(err, mq.ErrConnectionClosed):
		// Payload отбрасывается, переподключаемся без паузы.
		telemetry.PublishTotal.WithLabelValues(telemetry.ResultConnectionClosed).Inc()
		logger.Warn("broker connection closed during publish, payload discarded",
			"bytes", len(payload),
			"error", err,
		)
		l.dropConnection()
		return StateAwaitConnection

	default:
		if ctx.Err() != nil {
			return StateAwaitConnection
		}

		result := telemetry.ResultError
		if mq.IsBrokerError(err) {
			result = telemetry.ResultBrokerError
		}

		telemetry.PublishTotal.WithLabelValues(result).Inc()
		logger.Error("failed to publish weather data",
			"result", result,
			"error", err,
			"retry_in", l.retryDelay,
		)

		l.sleep(ctx, l.retryDelay)
		return StateAwaitConnection
	}
}

// dropConnection закрывает и забывает текущее соединение.
func (l *Loop) dropConnection() {
	if l.conn == nil {
		return
	}

	if err := l.conn.Close(); err != nil {
		l.logger.Debug("close stale connection", "error", err)
	}

	l.conn = nil
	l.live.Store(nil)
}
