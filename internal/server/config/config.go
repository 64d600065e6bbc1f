package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/sast/hwboard/internal/logging"
)

// Config настройки сервера таблицы лидеров
type Config struct {
	Addr         string
	DBPath       string
	LogLevel     string
	VoteRate     int // голосов с одного IP за RateWindow, 0 без лимита
	SubmitRate   int // посылок с одного IP за RateWindow, 0 без лимита
	RateWindow   time.Duration
	TrustProxy   bool // IP клиента из X-Real-IP/X-Forwarded-For; только за своим прокси
	ShowVersion  bool
	ShutdownWait time.Duration
}

// LoadEnv загружает .env, отсутствие файла не ошибка
func LoadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// Load разбирает флаги; переменные окружения задают значения по умолчанию
func Load(args []string, output io.Writer) (*Config, error) {
	cfg := &Config{}

	flags := flag.NewFlagSet("hwboard-server", flag.ContinueOnError)
	flags.SetOutput(output)

	flags.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flags.StringVar(&cfg.Addr, "addr", getEnv("HWBOARD_ADDR", ":8080"), "Listen address (env HWBOARD_ADDR)")
	flags.StringVar(&cfg.DBPath, "db", getEnv("HWBOARD_DB", "hwboard.db"), "Path to SQLite database (env HWBOARD_DB)")
	flags.StringVar(&cfg.LogLevel, "log-level", getEnv("HWBOARD_LOG_LEVEL", "info"), "Log level: debug, info, warn, error (env HWBOARD_LOG_LEVEL)")
	flags.IntVar(&cfg.VoteRate, "vote-rate", getEnvInt("HWBOARD_VOTE_RATE", 30), "Votes per IP per minute, 0 disables the limit")
	flags.IntVar(&cfg.SubmitRate, "submit-rate", getEnvInt("HWBOARD_SUBMIT_RATE", 10), "Submissions per IP per minute, 0 disables the limit")
	flags.BoolVar(&cfg.TrustProxy, "trust-proxy", getEnvBool("HWBOARD_TRUST_PROXY", false), "Take client IP from proxy headers (env HWBOARD_TRUST_PROXY)")
	flags.DurationVar(&cfg.ShutdownWait, "shutdown-timeout", 10*time.Second, "Graceful shutdown timeout")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	cfg.RateWindow = time.Minute

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr cannot be empty")
	}
	if c.DBPath == "" {
		return errors.New("db path cannot be empty")
	}
	if c.VoteRate < 0 || c.SubmitRate < 0 {
		return errors.New("rate limits cannot be negative")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
