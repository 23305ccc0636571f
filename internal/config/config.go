package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/shaiso/weather-collector/internal/weather"
)

// Значения по умолчанию.
const (
	defaultRabbitHost     = "rabbitmq"
	defaultRabbitPort     = 5672
	defaultRabbitUser     = "admin"
	defaultRabbitPassword = "admin"

	defaultLat = -23.958807
	defaultLon = -46.331928

	defaultUnits = "metric"
	defaultLang  = "pt_br"

	defaultFetchInterval = 30 * time.Second
	defaultRetryDelay    = 5 * time.Second
	defaultHTTPTimeout   = 10 * time.Second

	defaultPort = "8083"
)

// Ошибки конфигурации.
var (
	// ErrMissingQueue — не задан QUEUE_NAME.
	ErrMissingQueue = errors.New("QUEUE_NAME is required")

	// ErrMissingAPIKey — не задан OPENWEATHER_API_KEY.
	ErrMissingAPIKey = errors.New("OPENWEATHER_API_KEY is required")
)

// Config — конфигурация коллектора.
type Config struct {
	// RabbitMQ
	RabbitURL  string // если задан, host/port/user/password игнорируются
	RabbitHost string
	RabbitPort int
	RabbitUser string
	RabbitPass string
	QueueName  string

	// Weather API
	APIKey     string
	WeatherURL string
	Lat        float64
	Lon        float64
	Units      string
	Lang       string

	// Cadence
	FetchInterval time.Duration
	RetryDelay    time.Duration
	HTTPTimeout   time.Duration

	// HTTP (/healthz, /metrics)
	Port string
}

// Load читает конфигурацию из окружения.
// Если в рабочей директории есть .env, он загружается первым
// (уже заданные переменные окружения не перезаписываются).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	cfg := &Config{
		RabbitURL:  os.Getenv("RABBITMQ_URL"),
		RabbitHost: getenvDefault("RABBITMQ_HOST", defaultRabbitHost),
		RabbitUser: getenvDefault("RABBITMQ_USER", defaultRabbitUser),
		RabbitPass: getenvDefault("RABBITMQ_PASSWORD", defaultRabbitPassword),
		QueueName:  os.Getenv("QUEUE_NAME"),
		APIKey:     os.Getenv("OPENWEATHER_API_KEY"),
		WeatherURL: getenvDefault("WEATHER_API_URL", weather.DefaultBaseURL),
		Units:      getenvDefault("WEATHER_UNITS", defaultUnits),
		Lang:       getenvDefault("WEATHER_LANG", defaultLang),
		Port:       getenvDefault("COLLECTOR_PORT", defaultPort),
	}

	var err error

	if cfg.RabbitPort, err = getenvInt("RABBITMQ_PORT", defaultRabbitPort); err != nil {
		return nil, err
	}
	if cfg.Lat, err = getenvFloat("WEATHER_LAT", defaultLat); err != nil {
		return nil, err
	}
	if cfg.Lon, err = getenvFloat("WEATHER_LON", defaultLon); err != nil {
		return nil, err
	}
	if cfg.FetchInterval, err = getenvDuration("FETCH_INTERVAL", defaultFetchInterval); err != nil {
		return nil, err
	}
	if cfg.RetryDelay, err = getenvDuration("RETRY_DELAY", defaultRetryDelay); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", defaultHTTPTimeout); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные поля.
func (c *Config) Validate() error {
	var errs []error

	if c.QueueName == "" {
		errs = append(errs, ErrMissingQueue)
	}
	if c.APIKey == "" {
		errs = append(errs, ErrMissingAPIKey)
	}
	if c.RabbitPort < 1 || c.RabbitPort > 65535 {
		errs = append(errs, fmt.Errorf("RABBITMQ_PORT out of range: %d", c.RabbitPort))
	}
	if c.Lat < -90 || c.Lat > 90 {
		errs = append(errs, fmt.Errorf("WEATHER_LAT out of range: %v", c.Lat))
	}
	if c.Lon < -180 || c.Lon > 180 {
		errs = append(errs, fmt.Errorf("WEATHER_LON out of range: %v", c.Lon))
	}

	return errors.Join(errs...)
}

// BrokerURL возвращает AMQP URL.
func (c *Config) BrokerURL() string {
	if c.RabbitURL != "" {
		return c.RabbitURL
	}

	u := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(c.RabbitUser, c.RabbitPass),
		Host:   net.JoinHostPort(c.RabbitHost, strconv.Itoa(c.RabbitPort)),
		Path:   "/",
	}
	return u.String()
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}
