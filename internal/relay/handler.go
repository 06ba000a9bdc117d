package relay

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"safarnama/internal/config"
	"safarnama/internal/httpserver"
	"safarnama/internal/middleware"
	"safarnama/internal/upstream"
)

const (
	DefaultReferer = "https://safarnama.pages.dev"

	snippetLimit = 200
)

type Deps struct {
	Credentials    config.CredentialProvider
	Upstream       upstream.Forwarder
	Logger         *slog.Logger
	DefaultReferer string
	// MaxBodyBytes 0 или меньше: тело не ограничивается.
	MaxBodyBytes   int64
}

// Handler пересылает chat-completion запросы браузера в апстрим,
// подставляя ключ сервера.
type Handler struct {
	credentials    config.CredentialProvider
	upstream       upstream.Forwarder
	logger         *slog.Logger
	defaultReferer string
	maxBodyBytes   int64
}

func NewHandler(deps Deps) *Handler {
	h := &Handler{
		credentials:    deps.Credentials,
		upstream:       deps.Upstream,
		logger:         deps.Logger,
		defaultReferer: deps.DefaultReferer,
		maxBodyBytes:   deps.MaxBodyBytes,
	}
	if h.logger == nil {
		h.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if h.defaultReferer == "" {
		h.defaultReferer = DefaultReferer
	}
	return h
}

// ServeChat обрабатывает POST /api/chat.
func (h *Handler) ServeChat(w http.ResponseWriter, r *http.Request) {
	res, err := h.relay(r.Context(), w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if res.Failed() {
		h.logger.Warn("upstream returned error",
			slog.Int("status", res.StatusCode),
			slog.String("body", snippet(res.Body)),
			slog.String("request_id", r.Header.Get(middleware.HeaderRequestID)))
	}

	setCORS(w.Header())
	httpserver.WriteRawJSON(w, res.StatusCode, res.Body)
}

// ServePreflight отвечает на OPTIONS статическими заголовками, запрос не читается.
func (h *Handler) ServePreflight(w http.ResponseWriter, r *http.Request) {
	setPreflight(w.Header())
	w.WriteHeader(http.StatusNoContent)
}

// relay выполняет один проход: ключ, разбор тела, пересылка.
// Любая ошибка завершает вызов; повторов нет.
func (h *Handler) relay(ctx context.Context, w http.ResponseWriter, r *http.Request) (upstream.Result, error) {
	apiKey, ok := h.credentials.APIKey()
	if !ok {
		return upstream.Result{}, ErrCredentialMissing
	}

	body, err := h.readBody(w, r)
	if err != nil {
		return upstream.Result{}, err
	}

	return h.upstream.Forward(ctx, upstream.Request{
		APIKey:  apiKey,
		Referer: h.referer(r),
		Body:    body,
	})
}

func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body := r.Body
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, &RequestError{Err: err}
	}

	// Только синтаксическая проверка: форма запроса определяется апстримом.
	var parsed json.RawMessage
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &RequestError{Err: err}
	}
	return raw, nil
}

func (h *Handler) referer(r *http.Request) string {
	if origin := r.Header.Get("Origin"); origin != "" {
		return origin
	}
	return h.defaultReferer
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := errorKind(err)
	attrs := []any{
		slog.String("kind", kind),
		slog.String("error", err.Error()),
		slog.String("request_id", r.Header.Get(middleware.HeaderRequestID)),
	}
	var (
		respErr *upstream.ResponseError
		trErr   *upstream.TransportError
	)
	if errors.As(err, &respErr) {
		attrs = append(attrs, slog.String("detail", respErr.Detail()))
	}
	if errors.As(err, &trErr) {
		attrs = append(attrs, slog.String("op", trErr.Op))
	}
	if kind == kindConfig {
		h.logger.Error("relay not configured", attrs...)
	} else {
		h.logger.Error("proxy error", attrs...)
	}

	setOrigin(w.Header())
	httpserver.WriteJSONError(w, http.StatusInternalServerError, "", clientMessage(err))
}

func snippet(body []byte) string {
	if len(body) <= snippetLimit {
		return string(body)
	}
	return string(body[:snippetLimit])
}
