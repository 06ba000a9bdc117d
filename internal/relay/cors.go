package relay

import (
	"net/http"
	"strconv"
	"time"
)

const (
	allowOrigin  = "*"
	allowMethods = "POST, OPTIONS"
	allowHeaders = "Content-Type"

	preflightMaxAge = 24 * time.Hour
)

// setOrigin минимальный набор: ставится на каждом ответе, включая ошибки.
func setOrigin(h http.Header) {
	h.Set("Access-Control-Allow-Origin", allowOrigin)
}

func setCORS(h http.Header) {
	setOrigin(h)
	h.Set("Access-Control-Allow-Methods", allowMethods)
	h.Set("Access-Control-Allow-Headers", allowHeaders)
}

func setPreflight(h http.Header) {
	setCORS(h)
	h.Set("Access-Control-Max-Age", strconv.Itoa(int(preflightMaxAge/time.Second)))
}
