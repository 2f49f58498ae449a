package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/abhisek/quizbot/internal/chat"
)

// Store backends.
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config holds all runtime configuration.
type Config struct {
	// Store selects the session backend: "sqlite", "memory" or "redis".
	Store string

	// DBPath is the SQLite database file. Empty means store.DefaultDBPath.
	DBPath string

	// CatalogPath is a JSON or YAML question file. Empty means the built-in quiz.
	CatalogPath string

	// OnFinish is the finished-state policy: "reject" or "restart".
	OnFinish string

	Redis    RedisConfig
	Telegram TelegramConfig
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration // Zero keeps sessions forever
}

// TelegramConfig holds Telegram bot settings.
type TelegramConfig struct {
	Token       string
	PollTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Store:    StoreSQLite,
		OnFinish: chat.PolicyReject.String(),
		Redis: RedisConfig{
			Addr: "localhost:6379",
			TTL:  30 * 24 * time.Hour,
		},
		Telegram: TelegramConfig{
			PollTimeout: 10 * time.Second,
		},
	}
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding ones already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if s := os.Getenv("QUIZBOT_STORE"); s != "" {
		cfg.Store = s
	}
	if p := os.Getenv("QUIZBOT_DB"); p != "" {
		cfg.DBPath = p
	}
	if p := os.Getenv("QUIZBOT_CATALOG"); p != "" {
		cfg.CatalogPath = p
	}
	if p := os.Getenv("QUIZBOT_ON_FINISH"); p != "" {
		cfg.OnFinish = p
	}

	if a := os.Getenv("QUIZBOT_REDIS_ADDR"); a != "" {
		cfg.Redis.Addr = a
	}
	if p := os.Getenv("QUIZBOT_REDIS_PASSWORD"); p != "" {
		cfg.Redis.Password = p
	}
	if v := os.Getenv("QUIZBOT_REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("QUIZBOT_REDIS_DB: %w", err)
		}
		cfg.Redis.DB = db
	}
	if v := os.Getenv("QUIZBOT_REDIS_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("QUIZBOT_REDIS_TTL: %w", err)
		}
		cfg.Redis.TTL = ttl
	}

	if t := os.Getenv("QUIZBOT_TELEGRAM_TOKEN"); t != "" {
		cfg.Telegram.Token = t
	}
	if v := os.Getenv("QUIZBOT_TELEGRAM_POLL_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("QUIZBOT_TELEGRAM_POLL_TIMEOUT: %w", err)
		}
		cfg.Telegram.PollTimeout = d
	}

	return cfg, nil
}

// Policy parses OnFinish.
func (c Config) Policy() (chat.FinishedPolicy, error) {
	return chat.ParsePolicy(c.OnFinish)
}

// Validate checks the settings every command depends on.
func (c Config) Validate() error {
	switch c.Store {
	case StoreSQLite, StoreMemory:
	case StoreRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("QUIZBOT_REDIS_ADDR is required for the redis store")
		}
	default:
		return fmt.Errorf("unknown store: %q (want sqlite, memory or redis)", c.Store)
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	return nil
}

// ValidateTelegram checks the settings the Telegram bot needs.
func (c Config) ValidateTelegram() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("QUIZBOT_TELEGRAM_TOKEN is required for the telegram bot")
	}
	if c.Telegram.PollTimeout <= 0 {
		return fmt.Errorf("telegram poll timeout must be positive, got %s", c.Telegram.PollTimeout)
	}
	return nil
}
