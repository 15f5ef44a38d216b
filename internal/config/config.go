package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Bot      BotConfig      `yaml:"bot"`
	Export   ExportConfig   `yaml:"export"`
	Log      LogConfig      `yaml:"log"`
	Seed     SeedConfig     `yaml:"seed"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// BotConfig holds the chat-bot settings.
type BotConfig struct {
	// AdminSecretHash is the bcrypt hash of the admin PIN.
	AdminSecretHash   string  `yaml:"admin_secret_hash"   env:"BOT_ADMIN_SECRET_HASH"   env-required:"true"`
	LowStockThreshold float64 `yaml:"low_stock_threshold" env:"BOT_LOW_STOCK_THRESHOLD" env-default:"5"`
	ConditionsRaw     string  `yaml:"conditions"          env:"BOT_CONDITIONS"          env-default:"Bon,Moyen,Mauvais"`

	// Conditions is parsed from ConditionsRaw during validation.
	Conditions []string `yaml:"-" env:"-"`
}

// ExportConfig holds export endpoint settings.
type ExportConfig struct {
	// Token gates /v1/export.*; empty disables the endpoints.
	Token string `yaml:"token" env:"EXPORT_TOKEN"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SeedConfig holds reference data applied at startup. Existing rows are
// never overwritten.
type SeedConfig struct {
	Rooms     []SeedRoom     `yaml:"rooms"`
	Materials []SeedMaterial `yaml:"materials"`
	Colors    []SeedColor    `yaml:"colors"`
}

type SeedRoom struct {
	Name     string `yaml:"name"`
	RoomType string `yaml:"room_type"`
	Location string `yaml:"location"`
}

type SeedMaterial struct {
	Name          string `yaml:"name"`
	Emoji         string `yaml:"emoji"`
	Category      string `yaml:"category"`
	RequiresColor bool   `yaml:"requires_color"`
}

type SeedColor struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

// Addr returns the host:port string for the HTTP listener.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
