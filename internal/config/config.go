package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"
)

const envPrefix = "MEDICARE_"

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Session store kinds
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Config struct {
	App          AppConfig          `toml:"app"`
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	MedicareAPI  MedicareAPIConfig  `toml:"medicare_api"`
	Session      SessionConfig      `toml:"session"`
	Redis        RedisConfig        `toml:"redis"`
	Database     DatabaseConfig     `toml:"database"`
	Doctors      DoctorsConfig      `toml:"doctors"`
	Availability AvailabilityConfig `toml:"availability"`
	CORS         CORSConfig         `toml:"cors"`
	RateLimit    RateLimitConfig    `toml:"rate_limit"`
}

type AppConfig struct {
	// Timezone клиники, в которой считается "сегодня" для окна слотов
	Timezone string `toml:"timezone" env:"APP_TIMEZONE"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"SERVER_HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout" env:"SERVER_READ_TIMEOUT"`         // seconds
	WriteTimeout    int `toml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`       // seconds
	IdleTimeout     int `toml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT"`         // seconds
	ShutdownTimeout int `toml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"` // seconds
}

type LogsConfig struct {
	File  string `toml:"file" env:"LOGS_FILE"`
	Level string `toml:"level" env:"LOGS_LEVEL"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"METRICS_ENABLED"`
	Path        string `toml:"path" env:"METRICS_PATH"`
	ServiceName string `toml:"service_name" env:"METRICS_SERVICE_NAME"`
}

type MedicareAPIConfig struct {
	URL     string `toml:"url" env:"API_URL"`
	Timeout int    `toml:"timeout" env:"API_TIMEOUT"` // seconds
}

type SessionConfig struct {
	Store      string `toml:"store" env:"SESSION_STORE"`
	TTLMinutes int    `toml:"ttl_minutes" env:"SESSION_TTL_MINUTES"`
	MemorySize int    `toml:"memory_size" env:"SESSION_MEMORY_SIZE"`
}

type RedisConfig struct {
	Addr     string `toml:"addr" env:"REDIS_ADDR"`
	Password string `toml:"password" env:"REDIS_PASSWORD"`
	DB       int    `toml:"db" env:"REDIS_DB"`
}

type DatabaseConfig struct {
	Host            string `toml:"host" env:"DATABASE_HOST"`
	Port            int    `toml:"port" env:"DATABASE_PORT"`
	User            string `toml:"user" env:"DATABASE_USER"`
	Password        string `toml:"password" env:"DATABASE_PASSWORD"`
	DBName          string `toml:"dbname" env:"DATABASE_DBNAME"`
	SSLMode         string `toml:"sslmode" env:"DATABASE_SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" env:"DATABASE_MAX_OPEN_CONNS"`
	MaxIdleConns    int    `toml:"max_idle_conns" env:"DATABASE_MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" env:"DATABASE_CONN_MAX_LIFETIME"` // seconds
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type DoctorsConfig struct {
	CacheTTLSeconds int  `toml:"cache_ttl_seconds" env:"DOCTORS_CACHE_TTL_SECONDS"`
	CacheSize       int  `toml:"cache_size" env:"DOCTORS_CACHE_SIZE"`
	DemoFallback    bool `toml:"demo_fallback" env:"DOCTORS_DEMO_FALLBACK"`
}

type AvailabilityConfig struct {
	// ExcludeBooked включает хранилище броней в Postgres
	ExcludeBooked bool `toml:"exclude_booked" env:"AVAILABILITY_EXCLUDE_BOOKED"`
	// Seed 0 = от текущего времени
	Seed int64 `toml:"seed" env:"AVAILABILITY_SEED"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

type RateLimitConfig struct {
	LoginPerMinute int `toml:"login_per_minute" env:"RATE_LIMIT_LOGIN_PER_MINUTE"`
	LoginBurst     int `toml:"login_burst" env:"RATE_LIMIT_LOGIN_BURST"`
}

// Default конфигурация со значениями по умолчанию
func Default() *Config {
	return &Config{
		App: AppConfig{Timezone: "UTC"},
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "medicare_gateway",
		},
		MedicareAPI: MedicareAPIConfig{
			URL:     "http://localhost:8000/api",
			Timeout: 5,
		},
		Session: SessionConfig{
			Store:      SessionStoreMemory,
			TTLMinutes: 60,
			MemorySize: 10000,
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Doctors: DoctorsConfig{
			CacheTTLSeconds: 60,
			CacheSize:       256,
			DemoFallback:    true,
		},
		CORS: CORSConfig{AllowedOrigins: []string{"http://localhost:5500"}},
		RateLimit: RateLimitConfig{
			LoginPerMinute: 20,
			LoginBurst:     5,
		},
	}
}

// Load читает TOML-файл поверх значений по умолчанию и применяет переменные окружения MEDICARE_*
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := env.Parse(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.MedicareAPI.URL == "" {
		return fmt.Errorf("%w: medicare_api.url is required", ErrInvalidConfig)
	}
	if c.MedicareAPI.Timeout <= 0 {
		return fmt.Errorf("%w: medicare_api.timeout must be positive", ErrInvalidConfig)
	}
	switch c.Session.Store {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("%w: session.store must be %q or %q", ErrInvalidConfig, SessionStoreMemory, SessionStoreRedis)
	}
	if c.Session.TTLMinutes <= 0 {
		return fmt.Errorf("%w: session.ttl_minutes must be positive", ErrInvalidConfig)
	}
	if c.Session.Store == SessionStoreMemory && c.Session.MemorySize <= 0 {
		return fmt.Errorf("%w: session.memory_size must be positive", ErrInvalidConfig)
	}
	if c.Doctors.CacheSize <= 0 {
		return fmt.Errorf("%w: doctors.cache_size must be positive", ErrInvalidConfig)
	}
	if c.RateLimit.LoginPerMinute <= 0 || c.RateLimit.LoginBurst <= 0 {
		return fmt.Errorf("%w: rate_limit values must be positive", ErrInvalidConfig)
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("%w: app.timezone %q: %v", ErrInvalidConfig, c.App.Timezone, err)
	}
	return nil
}

// Location часовой пояс клиники
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}

func (c *Config) DoctorsCacheTTL() time.Duration {
	return time.Duration(c.Doctors.CacheTTLSeconds) * time.Second
}
