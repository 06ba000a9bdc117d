package relay

import (
	"errors"

	"safarnama/internal/upstream"
)

// ErrCredentialMissing ключ апстрима не настроен на сервере.
var ErrCredentialMissing = errors.New("API key not configured on server")

// RequestError входящее тело не прочитано или не является JSON.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

const (
	kindConfig        = "config"
	kindParseRequest  = "parse_request"
	kindParseResponse = "parse_response"
	kindTransport     = "transport"
	kindInternal      = "internal"
)

func errorKind(err error) string {
	var (
		reqErr  *RequestError
		respErr *upstream.ResponseError
		trErr   *upstream.TransportError
	)
	switch {
	case errors.Is(err, ErrCredentialMissing):
		return kindConfig
	case errors.As(err, &reqErr):
		return kindParseRequest
	case errors.As(err, &respErr):
		return kindParseResponse
	case errors.As(err, &trErr):
		return kindTransport
	default:
		return kindInternal
	}
}

// clientMessage текст ошибки для клиента. Секрет в сообщения не попадает:
// ни одна из ошибок не содержит заголовков исходящего запроса.
func clientMessage(err error) string {
	if errors.Is(err, ErrCredentialMissing) {
		return ErrCredentialMissing.Error()
	}
	return "Server error: " + err.Error()
}
