package config

import (
	"fmt"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
	StorageMemory   = "memory"
)

type Config struct {
	TelegramToken   string        `env:"TELEGRAM_TOKEN"`
	DBDSN           string        `env:"DB_DSN"`
	Environment     string        `env:"ENV" env-default:"development"`
	StorageBackend  string        `env:"STORAGE_BACKEND" env-default:"postgres"`
	RedisAddr       string        `env:"REDIS_ADDR" env-default:"localhost:6379"`
	NotifyChatID    int64         `env:"NOTIFY_CHAT_ID"`
	NotifyQueueSize int           `env:"NOTIFY_QUEUE_SIZE" env-default:"64"`
	HTTPAddr        string        `env:"HTTP_ADDR" env-default:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
	Timezone        string        `env:"TIMEZONE" env-default:"Europe/Moscow"`
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	// Пользователи всегда хранятся в Postgres
	if c.DBDSN == "" {
		return fmt.Errorf("DB_DSN is required but not set")
	}

	switch c.StorageBackend {
	case StoragePostgres, StorageMemory:
	case StorageRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for redis storage")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}

	return nil
}

// Location часовой пояс, в котором пользователи вводят время занятий
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsProduction возвращает true для ENV=production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
