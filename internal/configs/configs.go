package config

import (
	"fmt"
	"net"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	AppURL                 string `validate:"required,hostname_port"`
	Workers                int    `validate:"gt=0"`
	QueueSize              int    `validate:"gt=0"`
	DatabaseDSN            string `validate:"required"`
	AutoMigrate            bool
	RateLimit              int `validate:"gte=0"`
	RedisAddr              string
	RedisQueueKey          string `validate:"required"`
	ShutdownTimeoutSeconds int    `validate:"gt=0"`
	LogLevel               string `validate:"oneof=debug info warn warning error"`
	LogJSON                bool
	DisplayTimezone        string `validate:"required"`
}

// Keys are the viper keys; each is bound to the env names listed in envBindings.
const (
	KeyAppHost         = "app_host"
	KeyAppPort         = "app_port"
	KeyWorkers         = "task_workers"
	KeyQueueSize       = "task_queue_size"
	KeyDatabaseDSN     = "database_dsn"
	KeyAutoMigrate     = "auto_migrate"
	KeyRateLimit       = "rate_limit_per_minute"
	KeyRedisAddr       = "redis_addr"
	KeyRedisQueueKey   = "redis_queue_key"
	KeyShutdownTimeout = "shutdown_timeout_seconds"
	KeyLogLevel        = "log_level"
	KeyLogJSON         = "log_json"
	KeyDisplayTimezone = "display_timezone"
)

var envBindings = map[string][]string{
	KeyAppHost:         {"APP_HOST"},
	KeyAppPort:         {"APP_PORT", "SERVER_PORT"},
	KeyWorkers:         {"TASK_WORKERS"},
	KeyQueueSize:       {"TASK_QUEUE_SIZE"},
	KeyDatabaseDSN:     {"DATABASE_URL", "DATABASE_DSN"},
	KeyAutoMigrate:     {"AUTO_MIGRATE"},
	KeyRateLimit:       {"RATE_LIMIT_PER_MINUTE"},
	KeyRedisAddr:       {"REDIS_ADDR"},
	KeyRedisQueueKey:   {"REDIS_QUEUE_KEY"},
	KeyShutdownTimeout: {"SHUTDOWN_TIMEOUT_SECONDS"},
	KeyLogLevel:        {"LOG_LEVEL"},
	KeyLogJSON:         {"LOG_JSON"},
	KeyDisplayTimezone: {"DISPLAY_TIMEZONE"},
}

var defaults = map[string]any{
	KeyAppHost:         "127.0.0.1",
	KeyAppPort:         "8080",
	KeyWorkers:         3,
	KeyQueueSize:       64,
	KeyDatabaseDSN:     "tasks.db",
	KeyAutoMigrate:     true,
	KeyRateLimit:       0,
	KeyRedisAddr:       "",
	KeyRedisQueueKey:   "task_tracker_tokens",
	KeyShutdownTimeout: 20,
	KeyLogLevel:        "info",
	KeyLogJSON:         false,
	KeyDisplayTimezone: "Local",
}

// NewViper returns a viper instance with defaults and env bindings installed.
func NewViper() *viper.Viper {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	for key, envs := range envBindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}
	return v
}

func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		AppURL:                 net.JoinHostPort(v.GetString(KeyAppHost), v.GetString(KeyAppPort)),
		Workers:                v.GetInt(KeyWorkers),
		QueueSize:              v.GetInt(KeyQueueSize),
		DatabaseDSN:            v.GetString(KeyDatabaseDSN),
		AutoMigrate:            v.GetBool(KeyAutoMigrate),
		RateLimit:              v.GetInt(KeyRateLimit),
		RedisAddr:              v.GetString(KeyRedisAddr),
		RedisQueueKey:          v.GetString(KeyRedisQueueKey),
		ShutdownTimeoutSeconds: v.GetInt(KeyShutdownTimeout),
		LogLevel:               v.GetString(KeyLogLevel),
		LogJSON:                v.GetBool(KeyLogJSON),
		DisplayTimezone:        v.GetString(KeyDisplayTimezone),
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := time.LoadLocation(cfg.DisplayTimezone); err != nil {
		return fmt.Errorf("invalid configuration: DISPLAY_TIMEZONE %q: %w", cfg.DisplayTimezone, err)
	}
	return nil
}

func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// Location is the zone deadlines are rendered in. Load has already validated it.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}
