package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Переменные окружения, переопределяющие значения из файла
const (
	EnvDBPassword = "CAMPSITE_DB_PASSWORD"
	EnvDBHost     = "CAMPSITE_DB_HOST"
	EnvRedisAddr  = "CAMPSITE_REDIS_ADDR"
	EnvAMQPURL    = "CAMPSITE_AMQP_URL"
	EnvHTTPPort   = "CAMPSITE_HTTP_PORT"
)

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Cache       CacheConfig       `toml:"cache"`
	Events      EventsConfig      `toml:"events"`
	CORS        CORSConfig        `toml:"cors"`
	Reservation ReservationConfig `toml:"reservation"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к БД
type DatabaseConfig struct {
	Driver          string `toml:"driver"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	Path            string `toml:"path"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN возвращает строку подключения для выбранного драйвера
func (c DatabaseConfig) DSN() string {
	if c.Driver == "sqlite3" {
		return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", c.Path)
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CacheConfig настройки Redis кэша доступности
type CacheConfig struct {
	Enabled         bool   `toml:"enabled"`
	Addr            string `toml:"addr"`
	Password        string `toml:"password"`
	DB              int    `toml:"db"`
	AvailabilityTTL int    `toml:"availability_ttl"`
	KeyPrefix       string `toml:"key_prefix"`
}

// TTL возвращает время жизни записи кэша
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.AvailabilityTTL) * time.Second
}

// EventsConfig настройки публикации событий в RabbitMQ
type EventsConfig struct {
	Enabled       bool   `toml:"enabled"`
	URL           string `toml:"url"`
	Exchange      string `toml:"exchange"`
	RoutingPrefix string `toml:"routing_prefix"`
}

// CORSConfig настройки CORS
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
	MaxAge         int      `toml:"max_age"`
}

// ReservationConfig бизнес-параметры бронирования
type ReservationConfig struct {
	MinStayDays            int    `toml:"min_stay_days"`
	MaxStayDays            int    `toml:"max_stay_days"`
	MaxDefaultDaysToSearch int    `toml:"max_default_days_to_search"`
	MinAheadArrivalDays    int    `toml:"min_ahead_arrival_days"`
	MaxAheadArrivalDays    int    `toml:"max_ahead_arrival_days"`
	MaxNameLength          int    `toml:"max_name_length"`
	MaxEmailLength         int    `toml:"max_email_length"`
	Location               string `toml:"location"`
}

// Params возвращает параметры политики бронирования
func (c ReservationConfig) Params() domain.ReservationParams {
	return domain.ReservationParams{
		MinStayDays:            c.MinStayDays,
		MaxStayDays:            c.MaxStayDays,
		MaxDefaultDaysToSearch: c.MaxDefaultDaysToSearch,
		MinLeadDays:            c.MinAheadArrivalDays,
		MaxLeadDays:            c.MaxAheadArrivalDays,
		MaxNameLength:          c.MaxNameLength,
		MaxEmailLength:         c.MaxEmailLength,
	}
}

// TimeLocation возвращает часовой пояс, в котором определяется текущая дата
func (c ReservationConfig) TimeLocation() (*time.Location, error) {
	if c.Location == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Location)
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	params := domain.DefaultReservationParams()
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Driver:          "postgres",
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "campsite_service",
		},
		Cache: CacheConfig{
			Addr:            "localhost:6379",
			AvailabilityTTL: 60,
			KeyPrefix:       "campsite:",
		},
		Events: EventsConfig{
			Exchange:      "campsite.reservations",
			RoutingPrefix: "campsite",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
			MaxAge:         300,
		},
		Reservation: ReservationConfig{
			MinStayDays:            params.MinStayDays,
			MaxStayDays:            params.MaxStayDays,
			MaxDefaultDaysToSearch: params.MaxDefaultDaysToSearch,
			MinAheadArrivalDays:    params.MinLeadDays,
			MaxAheadArrivalDays:    params.MaxLeadDays,
			MaxNameLength:          params.MaxNameLength,
			MaxEmailLength:         params.MaxEmailLength,
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию.
// Если рядом есть .env, переменные из него загружаются перед применением переопределений.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDBPassword); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(EnvDBHost); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv(EnvRedisAddr); v != "" {
		c.Cache.Addr = v
	}
	if v := os.Getenv(EnvAMQPURL); v != "" {
		c.Events.URL = v
	}
	if v := os.Getenv(EnvHTTPPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvHTTPPort, v)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет конфигурацию. Вызывается один раз при старте.
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Database.Driver {
	case "postgres":
	case "sqlite3":
		if c.Database.Path == "" {
			return fmt.Errorf("%w: database.path is required for sqlite3", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: database.driver must be postgres or sqlite3, got %q", ErrInvalidConfig, c.Database.Driver)
	}

	if c.Cache.Enabled && c.Cache.AvailabilityTTL <= 0 {
		return fmt.Errorf("%w: cache.availability_ttl must be positive", ErrInvalidConfig)
	}
	if c.Events.Enabled && c.Events.URL == "" {
		return fmt.Errorf("%w: events.url is required when events are enabled", ErrInvalidConfig)
	}

	r := c.Reservation
	positive := []struct {
		name  string
		value int
	}{
		{"reservation.min_stay_days", r.MinStayDays},
		{"reservation.max_stay_days", r.MaxStayDays},
		{"reservation.max_default_days_to_search", r.MaxDefaultDaysToSearch},
		{"reservation.max_ahead_arrival_days", r.MaxAheadArrivalDays},
		{"reservation.max_name_length", r.MaxNameLength},
		{"reservation.max_email_length", r.MaxEmailLength},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, p.name, p.value)
		}
	}
	if r.MinAheadArrivalDays < 0 {
		return fmt.Errorf("%w: reservation.min_ahead_arrival_days must not be negative", ErrInvalidConfig)
	}
	if r.MinStayDays > r.MaxStayDays {
		return fmt.Errorf("%w: reservation.min_stay_days (%d) > max_stay_days (%d)", ErrInvalidConfig, r.MinStayDays, r.MaxStayDays)
	}
	if r.MinAheadArrivalDays > r.MaxAheadArrivalDays {
		return fmt.Errorf("%w: reservation.min_ahead_arrival_days (%d) > max_ahead_arrival_days (%d)",
			ErrInvalidConfig, r.MinAheadArrivalDays, r.MaxAheadArrivalDays)
	}
	if _, err := r.TimeLocation(); err != nil {
		return fmt.Errorf("%w: reservation.location: %v", ErrInvalidConfig, err)
	}

	return nil
}
