// Weather Collector — публикует данные о погоде в RabbitMQ.
//
// Collector:
//   - Подключается к RabbitMQ и объявляет durable очередь (retry каждые 5s)
//   - Каждые 30s запрашивает текущую погоду у OpenWeatherMap
//   - Публикует сырой JSON в очередь через default exchange
//   - Переподключается при разрыве соединения
//
// Рассчитан на запуск под супервизором; работает до SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shaiso/weather-collector/internal/collector"
	"github.com/shaiso/weather-collector/internal/config"
	"github.com/shaiso/weather-collector/internal/mq"
	"github.com/shaiso/weather-collector/internal/telemetry"
	"github.com/shaiso/weather-collector/internal/weather"
)

func main() {
	// Инициализируем structured logging
	logger := telemetry.SetupLogger()
	logger.Info("starting weather-collector")

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// RabbitMQ
	connector := mq.NewConnector(mq.ConnectorConfig{
		Broker: mq.Config{
			URL:   cfg.BrokerURL(),
			Queue: cfg.QueueName,
		},
		Retry:  mq.RetryPolicy{Delay: cfg.RetryDelay},
		Logger: logger,
	})

	// Weather API
	fetcher := weather.NewFetcher(weather.FetcherConfig{
		Endpoint: weather.Endpoint{
			BaseURL: cfg.WeatherURL,
			Lat:     cfg.Lat,
			Lon:     cfg.Lon,
			APIKey:  cfg.APIKey,
			Units:   cfg.Units,
			Lang:    cfg.Lang,
		},
		Timeout: cfg.HTTPTimeout,
		Logger:  logger,
	})

	loop := collector.New(collector.Config{
		Broker:     connector,
		Fetcher:    fetcher,
		Interval:   cfg.FetchInterval,
		RetryDelay: cfg.RetryDelay,
		Logger:     logger,
	})

	telemetry.RegisterBrokerConnected(loop.Connected)

	// HTTP mux: /healthz + /metrics
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if !loop.Connected() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("broker disconnected"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Цикл блокируется до сигнала завершения
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("publish loop failed", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http server shutdown", "error", err)
	}

	logger.Info("weather-collector stopped")
}
