package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из TOML файла
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Booking   BookingConfig   `toml:"booking"`
	Admin     AdminConfig     `toml:"admin"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN собирает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig настройки Redis для хранения сессий бронирования.
// При Enabled=false используется in-memory хранилище (для локальной разработки)
type RedisConfig struct {
	Enabled           bool   `toml:"enabled"`
	Addr              string `toml:"addr"`
	Password          string `toml:"password"`
	DB                int    `toml:"db"`
	SessionTTLMinutes int    `toml:"session_ttl_minutes"`
}

// SessionTTL возвращает время жизни сессии бронирования
func (c *RedisConfig) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig бизнес-настройки бронирования
type BookingConfig struct {
	// Скользящее окно бронирования в днях
	HorizonDays int `toml:"horizon_days"`

	// Фиксированное смещение локального времени (например "-03:00").
	// Даты записей хранятся без смещения и интерпретируются в нём
	UTCOffset string `toml:"utc_offset"`
}

// Location разбирает UTCOffset в *time.Location
func (c *BookingConfig) Location() (*time.Location, error) {
	var sign int
	var hours, minutes int
	switch {
	case len(c.UTCOffset) == 6 && c.UTCOffset[0] == '-':
		sign = -1
	case len(c.UTCOffset) == 6 && c.UTCOffset[0] == '+':
		sign = 1
	default:
		return nil, fmt.Errorf("config: invalid utc_offset %q, expected +HH:MM or -HH:MM", c.UTCOffset)
	}
	if _, err := fmt.Sscanf(c.UTCOffset[1:], "%02d:%02d", &hours, &minutes); err != nil {
		return nil, fmt.Errorf("config: invalid utc_offset %q: %v", c.UTCOffset, err)
	}
	offset := sign * (hours*3600 + minutes*60)
	return time.FixedZone(c.UTCOffset, offset), nil
}

// AdminConfig защита административных маршрутов
type AdminConfig struct {
	Token string `toml:"token"`
}

// RateLimitConfig ограничение частоты запросов на публичных маршрутах
type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`   // запросов в секунду на один IP
	Burst   int     `toml:"burst"` // размер всплеска
}

// Load загружает конфигурацию из TOML файла и применяет дефолты
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Redis.SessionTTLMinutes == 0 {
		c.Redis.SessionTTLMinutes = 30
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "agenda2"
	}
	if c.Booking.HorizonDays == 0 {
		c.Booking.HorizonDays = 30
	}
	if c.Booking.UTCOffset == "" {
		c.Booking.UTCOffset = "-03:00"
	}
	if c.RateLimit.RPS == 0 {
		c.RateLimit.RPS = 10
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 20
	}
	if c.Logs.File == "" {
		c.Logs.File = "logs/app.log"
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" {
		return errors.New("config: database.host is required")
	}
	if c.Booking.HorizonDays < 0 {
		return errors.New("config: booking.horizon_days must be non-negative")
	}
	if _, err := c.Booking.Location(); err != nil {
		return err
	}
	return nil
}
