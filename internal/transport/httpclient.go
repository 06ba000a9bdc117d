package transport

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient возвращает клиент для исходящих запросов к апстриму.
// timeout <= 0 не ограничивает запрос целиком: остаются только таймауты
// соединения, а отмену задает контекст входящего запроса.
func NewHTTPClient(timeout time.Duration) *http.Client {
	client := &http.Client{
		Transport: newTransport(),
	}
	if timeout > 0 {
		client.Timeout = timeout
	}
	return client
}

func newTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}
