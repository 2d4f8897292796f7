package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DotEnvFile файл с переменными окружения для локального запуска
const DotEnvFile = ".env"

// ClicksConfig параметры фонового подсчета переходов
type ClicksConfig struct {
	Workers   int           `env:"WORKERS"`
	QueueSize int           `env:"QUEUE_SIZE"`
	Timeout   time.Duration `env:"TIMEOUT"`
}

// LogConfig параметры журналирования
type LogConfig struct {
	Level      string `env:"LEVEL"`
	File       string `env:"FILE"`
	MaxSizeMB  int    `env:"MAX_SIZE_MB"`
	MaxBackups int    `env:"MAX_BACKUPS"`
	MaxAgeDays int    `env:"MAX_AGE_DAYS"`
}

// SentryConfig параметры отправки ошибок; пустой DSN отключает Sentry
type SentryConfig struct {
	DSN         string `env:"DSN"`
	Environment string `env:"ENVIRONMENT"`
}

// Config конфигурация приложения.
// Порядок приоритета: значения по умолчанию, флаги, переменные окружения (.env не перекрывает окружение).
type Config struct {
	ServerAddress   NetworkAddress `env:"SERVER_ADDRESS"`
	GRPCAddress     NetworkAddress `env:"GRPC_ADDRESS"`
	BaseURL         URLPrefix      `env:"BASE_URL"`
	FileStoragePath string         `env:"FILE_STORAGE_PATH"`
	DatabaseDSN     string         `env:"DATABASE_DSN"`
	SQLitePath      string         `env:"SQLITE_PATH"`

	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL"`

	CodeMaxAttempts int           `env:"CODE_MAX_ATTEMPTS"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	Clicks ClicksConfig `envPrefix:"CLICK_"`
	Log    LogConfig    `envPrefix:"LOG_"`
	Sentry SentryConfig `envPrefix:"SENTRY_"`

	OTelEndpoint string `env:"OTEL_EXPORTER_ENDPOINT"`
}

// NewDefaultConfig возвращает конфигурацию по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:   NetworkAddress{Host: "localhost", Port: 8080},
		GRPCAddress:     NetworkAddress{Host: "localhost", Port: 3200},
		BaseURL:         URLPrefix("http://localhost:8080"),
		TokenTTL:        24 * time.Hour,
		CodeMaxAttempts: 10,
		ShutdownTimeout: 10 * time.Second,
		Clicks: ClicksConfig{
			Workers:   4,
			QueueSize: 1024,
			Timeout:   5 * time.Second,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Sentry: SentryConfig{
			Environment: "development",
		},
	}
}

// Load загружает конфигурацию из аргументов командной строки процесса и окружения
func Load() (*Config, error) {
	return LoadFromArgs(os.Args[1:])
}

// LoadFromArgs загружает конфигурацию из переданных аргументов, .env файла и окружения
func LoadFromArgs(args []string) (*Config, error) {
	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	cfg := NewDefaultConfig()

	fset := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fset.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	fset.Var(&cfg.GRPCAddress, "g", "address to run gRPC server")
	fset.Var(&cfg.BaseURL, "b", "base URL for short links")
	fset.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "path to JSON file storage")
	fset.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL connection string")
	fset.StringVar(&cfg.SQLitePath, "s", cfg.SQLitePath, "SQLite file path or libsql:// URL")

	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Clicks.Workers <= 0 {
		return fmt.Errorf("click workers must be positive, got %d", c.Clicks.Workers)
	}
	if c.Clicks.QueueSize <= 0 {
		return fmt.Errorf("click queue size must be positive, got %d", c.Clicks.QueueSize)
	}
	if c.CodeMaxAttempts <= 0 {
		return fmt.Errorf("code max attempts must be positive, got %d", c.CodeMaxAttempts)
	}
	return nil
}

// loadDotEnv подгружает переменные из файла; отсутствие файла не ошибка
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
