package upstream

import (
	"context"
	"encoding/json"
)

// Forwarder минимальный интерфейс пересылки запроса в апстрим.
type Forwarder interface {
	Forward(ctx context.Context, req Request) (Result, error)
}

// Request исходящий запрос. Body уходит как есть.
type Request struct {
	APIKey  string
	Referer string
	Body    []byte
}

// Result ответ апстрима: статус и тело, проверенное как JSON и не перекодированное.
type Result struct {
	StatusCode int
	Body       json.RawMessage
}

// Failed сообщает, что апстрим ответил не 2xx. Это не локальная ошибка:
// такой ответ отдается клиенту как есть.
func (r Result) Failed() bool {
	return r.StatusCode < 200 || r.StatusCode >= 300
}
