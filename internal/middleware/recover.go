package middleware

import (
	"log/slog"
	"net/http"
)

var panicBody = []byte(`{"error":{"message":"Server error: internal error"}}` + "\n")

// Recover перехватывает panic и отвечает 500 в формате ошибок релея,
// не падая процессом.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Error("panic recovered",
						slog.Any("error", rec),
						slog.String("path", r.URL.Path),
						slog.String("request_id", r.Header.Get(HeaderRequestID)))
					w.Header().Set("Content-Type", "application/json")
					w.Header().Set("Access-Control-Allow-Origin", "*")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write(panicBody)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
