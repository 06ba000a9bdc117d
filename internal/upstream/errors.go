package upstream

import (
	"errors"
	"fmt"
	"net/url"
)

// TransportError сетевой сбой при обращении к апстриму.
// Error() возвращает исходную причину без обертки url.Error.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func newTransportError(op string, err error) *TransportError {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		err = urlErr.Err
	}
	return &TransportError{Op: op, Err: err}
}

// ResponseError апстрим вернул тело, которое не является JSON.
type ResponseError struct {
	StatusCode int
	Err        error
}

func (e *ResponseError) Error() string {
	return e.Err.Error()
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

// Detail подробное описание для логов.
func (e *ResponseError) Detail() string {
	return fmt.Sprintf("decode upstream response (status %d): %v", e.StatusCode, e.Err)
}
