package httpserver

import (
	"encoding/json"
	"net/http"
)

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// MarshalJSONError сериализует ошибку в едином формате {"error":{"message":...}}.
// Пустой code в ответ не попадает.
func MarshalJSONError(code, message string) []byte {
	buf, _ := json.Marshal(errorEnvelope{
		Error: errorBody{
			Code:    code,
			Message: message,
		},
	})
	return append(buf, '\n')
}

// WriteJSONError возвращает ошибку в едином формате.
func WriteJSONError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(MarshalJSONError(code, message))
}

// WriteRawJSON отдает уже сериализованный JSON без перекодирования.
func WriteRawJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
