package app

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	"safarnama/internal/config"
	"safarnama/internal/httpserver"
	"safarnama/internal/relay"
	"safarnama/internal/transport"
	"safarnama/internal/upstream"
)

// Options позволяет подменить зависимости при сборке, например в тестах.
type Options struct {
	Credentials config.CredentialProvider
	HTTPClient  *http.Client
}

// NewHandler собирает роутер релея из конфигурации.
func NewHandler(cfg config.Config, logger *slog.Logger, opts Options) http.Handler {
	if opts.Credentials == nil {
		opts.Credentials = config.NewEnvCredentials()
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = transport.NewHTTPClient(cfg.RequestTimeout)
	}

	client := upstream.NewOpenRouterClient(cfg.OpenRouter, cfg.Relay.AppTitle, opts.HTTPClient)
	chat := relay.NewHandler(relay.Deps{
		Credentials:    opts.Credentials,
		Upstream:       client,
		Logger:         logger,
		DefaultReferer: cfg.Relay.DefaultReferer,
		MaxBodyBytes:   cfg.Relay.MaxBodyBytes,
	})

	return httpserver.NewRouter(httpserver.RouterDeps{
		Logger: logger,
		Chat:   chat,
	})
}

func NewLogger(level string) *slog.Logger {
	return newLogger(os.Stdout, level)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	slogLevel := slog.LevelInfo
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slogLevel}))
}
