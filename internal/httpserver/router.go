package httpserver

import (
	"net/http"

	"safarnama/internal/middleware"

	"log/slog"

	"github.com/go-chi/chi/v5"
)

const ChatPath = "/api/chat"

// ChatHandler обработчики маршрута чата.
type ChatHandler interface {
	ServeChat(w http.ResponseWriter, r *http.Request)
	ServePreflight(w http.ResponseWriter, r *http.Request)
}

type RouterDeps struct {
	Logger *slog.Logger
	Chat   ChatHandler
}

// NewRouter собирает chi-роутер с общими middleware.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(deps.Logger))
	r.Use(middleware.Logging(deps.Logger))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Post(ChatPath, deps.Chat.ServeChat)
	r.Options(ChatPath, deps.Chat.ServePreflight)

	return r
}
