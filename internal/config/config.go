// Package config loads server configuration from the environment
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/godbound-api/internal/errors"
)

// Prefix is prepended to every environment variable name
const Prefix = "GODBOUND_"

// Config is the server configuration
type Config struct {
	GRPCPort    int `env:"GRPC_PORT" envDefault:"50051"`
	MetricsPort int `env:"METRICS_PORT" envDefault:"9090"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	Redis Redis `envPrefix:"REDIS_"`

	// ChatLogTTL is how long an idle subject's chat log is kept
	ChatLogTTL time.Duration `env:"CHAT_LOG_TTL" envDefault:"24h"`

	// RulesetPath points at a ruleset YAML file; empty uses the built-in rules
	RulesetPath string `env:"RULESET_PATH"`

	// DiceSound is attached to roll records when no dice animator is present
	DiceSound string `env:"DICE_SOUND" envDefault:"sounds/dice.wav"`

	// AdjustmentFloor is the smallest value accepted for typed adjustments
	AdjustmentFloor int `env:"ADJUSTMENT_FLOOR" envDefault:"0"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Redis configures the redis connection
type Redis struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	PoolSize int    `env:"POOL_SIZE" envDefault:"10"`
	UseTLS   bool   `env:"TLS" envDefault:"false"`
}

// Load reads the optional .env files then parses the environment. Missing
// .env files are not an error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			slog.Debug("no env file loaded", "file", f, "error", err)
		}
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: Prefix}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("grpc_port", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRange("metrics_port", c.MetricsPort, 0, 65535, vb)
	errors.ValidateEnum("log_level", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("log_format", strings.ToLower(c.LogFormat), []string{"json", "text"}, vb)
	errors.ValidateRequired("redis.addr", c.Redis.Addr, vb)

	if c.Redis.DB < 0 {
		vb.InvalidField("redis.db", "cannot be negative")
	}
	if c.Redis.PoolSize < 1 {
		vb.InvalidField("redis.pool_size", "must be at least 1")
	}
	if c.ChatLogTTL <= 0 {
		vb.InvalidField("chat_log_ttl", "must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		vb.InvalidField("shutdown_timeout", "must be positive")
	}

	return vb.Build()
}

// SlogLevel converts LogLevel for slog
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
