package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Значения label "result".
const (
	ResultOK               = "ok"
	ResultError            = "error"
	ResultConnectionClosed = "connection_closed"
	ResultBrokerError      = "broker_error"
)

var (
	// FetchTotal — запросы к погодному API по результату (ok, error).
	FetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "weather_collector_fetch_total",
		Help: "Weather API requests by result",
	}, []string{"result"})

	// PublishTotal — публикации по результату (ok, connection_closed, broker_error).
	PublishTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "weather_collector_publish_total",
		Help: "Messages published to the broker by result",
	}, []string{"result"})

	// PublishedBytes — суммарный размер опубликованных payload.
	PublishedBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "weather_collector_published_bytes_total",
		Help: "Total bytes published to the broker",
	})

	// ConnectAttempts — попытки подключения к брокеру по результату (ok, error).
	ConnectAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "weather_collector_broker_connect_attempts_total",
		Help: "Broker connection attempts by result",
	}, []string{"result"})

	// Reconnects — замены потерянного соединения новым.
	Reconnects = promauto.NewCounter(prometheus.CounterOpts{
		Name: "weather_collector_broker_reconnects_total",
		Help: "Broker connections replaced after being lost",
	})
)

// RegisterBrokerConnected регистрирует gauge weather_collector_broker_connected.
// Значение читается из connected при каждом scrape.
// Вызывается один раз на процесс.
func RegisterBrokerConnected(connected func() bool) prometheus.GaugeFunc {
	return promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "weather_collector_broker_connected",
		Help: "Whether the collector holds a live broker connection",
	}, func() float64 {
		if connected() {
			return 1
		}
		return 0
	})
}
