package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr       string
	LogLevel       string
	RequestTimeout time.Duration
	OpenRouter     OpenRouterConfig
	Relay          RelayConfig
}

type OpenRouterConfig struct {
	BaseURL string
}

type RelayConfig struct {
	DefaultReferer string
	AppTitle       string
	// MaxBodyBytes 0 означает отсутствие лимита.
	MaxBodyBytes   int64
}

func Load() (Config, error) {
	var cfg Config

	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	// 0 означает отсутствие явного таймаута: полагаемся на платформу.
	reqTimeout, err := parseDuration(getEnv("HTTP_CLIENT_TIMEOUT", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_CLIENT_TIMEOUT: %w", err)
	}
	if reqTimeout < 0 {
		return Config{}, fmt.Errorf("parse HTTP_CLIENT_TIMEOUT: negative duration %s", reqTimeout)
	}
	cfg.RequestTimeout = reqTimeout

	cfg.OpenRouter = OpenRouterConfig{
		BaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
	}

	maxBody, err := parseInt64Default(getEnv("RELAY_MAX_BODY_BYTES", ""), 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse RELAY_MAX_BODY_BYTES: %w", err)
	}
	cfg.Relay = RelayConfig{
		DefaultReferer: getEnv("RELAY_DEFAULT_REFERER", "https://safarnama.pages.dev"),
		AppTitle:       getEnv("RELAY_APP_TITLE", "Safarnama AI Chatbot"),
		MaxBodyBytes:   maxBody,
	}

	return cfg, nil
}

func parseDuration(value string) (time.Duration, error) {
	if value == "" {
		return 0, fmt.Errorf("duration is empty")
	}
	return time.ParseDuration(value)
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}

// parseInt64Default парсит необязательное неотрицательное целое с значением по умолчанию.
func parseInt64Default(value string, def int64) (int64, error) {
	if value == "" {
		return def, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, err
	}
	if parsed < 0 {
		return 0, fmt.Errorf("must not be negative, got %d", parsed)
	}
	return parsed, nil
}
