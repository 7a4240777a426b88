package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"

	"github.com/hospital/turns-service/internal/daynames"
	"github.com/hospital/turns-service/internal/domain"
)

// ErrInvalidConfig конфигурация не прошла валидацию
var ErrInvalidConfig = errors.New("invalid config")

// Config конфигурация сервиса.
// Значения читаются из TOML, затем переопределяются переменными окружения.
type Config struct {
	Server           ServerConfig       `toml:"server"`
	Database         DatabaseConfig     `toml:"database"`
	Logs             LogsConfig         `toml:"logs"`
	Metrics          MetricsConfig      `toml:"metrics"`
	ScheduleCatalog  ClientConfig       `toml:"schedule_catalog" envPrefix:"TURNS_CATALOG_"`
	AppointmentStore ClientConfig       `toml:"appointment_store" envPrefix:"TURNS_STORE_"`
	Availability     AvailabilityConfig `toml:"availability"`
	Sessions         SessionsConfig     `toml:"sessions"`
}

// ServerConfig HTTP сервер, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"TURNS_HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig PostgreSQL с настройками слотов
type DatabaseConfig struct {
	Host            string `toml:"host" env:"TURNS_DB_HOST"`
	Port            int    `toml:"port" env:"TURNS_DB_PORT"`
	User            string `toml:"user" env:"TURNS_DB_USER"`
	Password        string `toml:"password" env:"TURNS_DB_PASSWORD"`
	DBName          string `toml:"dbname" env:"TURNS_DB_NAME"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig уровень и файл логов
type LogsConfig struct {
	Level string `toml:"level" env:"TURNS_LOG_LEVEL"`
	File  string `toml:"file"`
}

// MetricsConfig Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"TURNS_METRICS_ENABLED"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ClientConfig внешний HTTP сервис, таймаут в секундах
type ClientConfig struct {
	URL     string `toml:"url" env:"URL"`
	APIKey  string `toml:"api_key" env:"API_KEY"`
	Timeout int    `toml:"timeout"`
}

// TimeoutDuration таймаут клиента
func (c ClientConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// AvailabilityConfig генерация слотов и правила талонов
type AvailabilityConfig struct {
	DefaultIntervalMinutes int    `toml:"default_interval_minutes"`
	Locale                 string `toml:"locale" env:"TURNS_LOCALE"`
	AllowServiceBundling   bool   `toml:"allow_service_bundling"`
	Timezone               string `toml:"timezone" env:"TURNS_TIMEZONE"`
}

// Location часовой пояс, в котором считаются "сегодня" и "сейчас"
func (a AvailabilityConfig) Location() (*time.Location, error) {
	return time.LoadLocation(a.Timezone)
}

// SessionsConfig реестр сессий резолвера, TTL в секундах
type SessionsConfig struct {
	Size int `toml:"size"`
	TTL  int `toml:"ttl"`
}

// TTLDuration время жизни сессии
func (s SessionsConfig) TTLDuration() time.Duration {
	return time.Duration(s.TTL) * time.Second
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "turns",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "turns-service",
		},
		ScheduleCatalog:  ClientConfig{Timeout: 5},
		AppointmentStore: ClientConfig{Timeout: 10},
		Availability: AvailabilityConfig{
			DefaultIntervalMinutes: domain.DefaultIntervalMinutes,
			Locale:                 string(daynames.LocaleES),
			Timezone:               "UTC",
		},
		Sessions: SessionsConfig{
			Size: 1024,
			TTL:  1800,
		},
	}
}

// Load читает конфигурацию из файла и переменных окружения.
// Отсутствующий файл не ошибка: используются значения по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	cfg.Logs.Level = strings.ToLower(strings.TrimSpace(cfg.Logs.Level))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения
func (c *Config) Validate() error {
	var errs []error

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port out of range: %d", c.Server.HTTPPort))
	}
	if c.ScheduleCatalog.URL == "" {
		errs = append(errs, errors.New("schedule_catalog.url is required"))
	}
	if c.AppointmentStore.URL == "" {
		errs = append(errs, errors.New("appointment_store.url is required"))
	}
	if c.ScheduleCatalog.Timeout <= 0 || c.AppointmentStore.Timeout <= 0 {
		errs = append(errs, errors.New("client timeouts must be positive"))
	}

	interval := c.Availability.DefaultIntervalMinutes
	if interval < domain.MinIntervalMinutes || interval > domain.MaxIntervalMinutes {
		errs = append(errs, fmt.Errorf("availability.default_interval_minutes must be between %d and %d, got %d",
			domain.MinIntervalMinutes, domain.MaxIntervalMinutes, interval))
	}
	if _, err := daynames.New(c.Availability.Locale); err != nil {
		errs = append(errs, fmt.Errorf("availability.locale: %v", err))
	}
	if _, err := c.Availability.Location(); err != nil {
		errs = append(errs, fmt.Errorf("availability.timezone: %v", err))
	}

	if c.Sessions.Size <= 0 {
		errs = append(errs, fmt.Errorf("sessions.size must be positive, got %d", c.Sessions.Size))
	}
	if c.Sessions.TTL <= 0 {
		errs = append(errs, fmt.Errorf("sessions.ttl must be positive, got %d", c.Sessions.TTL))
	}

	switch c.Logs.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logs.level unknown: %q", c.Logs.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
