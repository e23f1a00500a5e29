package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Supported database drivers.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string        `env:"SERVER_PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	DBDriver   string `env:"DB_DRIVER" envDefault:"mysql"`
	MySQLDSN   string `env:"MYSQL_DSN" envDefault:"user:password@tcp(localhost:3306)/recipehub?charset=utf8mb4&parseTime=True&loc=Local"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"recipehub.db"`
	ResetDB    bool   `env:"RESET_DB" envDefault:"false"`

	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`
	RedisPass string `env:"REDIS_PASSWORD"`

	JWTSecret       string        `env:"JWT_SECRET" envDefault:"change-me"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"15m"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"168h"`

	PageSize int `env:"PAGE_SIZE" envDefault:"10"`

	// Limits signup and signin per client IP.
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`

	ActivityRetention     time.Duration `env:"ACTIVITY_RETENTION" envDefault:"720h"`
	ActivityPurgeSchedule string        `env:"ACTIVITY_PURGE_SCHEDULE" envDefault:"@daily"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"false"`

	SwaggerHost string `env:"SWAGGER_HOST"`
}

// Load builds Config from environment with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		return fmt.Errorf("token TTLs must be positive")
	}
	return nil
}

// SwaggerURL returns where the API docs are served.
func (c *Config) SwaggerURL() string {
	host := c.SwaggerHost
	if host == "" {
		host = "localhost:" + c.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return strings.TrimSuffix(host, "/") + "/swagger/index.html"
}
