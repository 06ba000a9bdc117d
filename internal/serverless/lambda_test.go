package serverless

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"safarnama/internal/app"
	"safarnama/internal/config"

	"github.com/aws/aws-lambda-go/events"
)

func chatEvent(method, body string, base64Body bool) events.APIGatewayV2HTTPRequest {
	ev := events.APIGatewayV2HTTPRequest{
		RawPath:         "/api/chat",
		RawQueryString:  "debug=1",
		Headers:         map[string]string{"content-type": "application/json", "origin": "https://example.com"},
		Body:            body,
		IsBase64Encoded: base64Body,
	}
	ev.RequestContext.DomainName = "relay.example.com"
	ev.RequestContext.RequestID = "req-1"
	ev.RequestContext.HTTP.Method = method
	ev.RequestContext.HTTP.Path = "/api/chat"
	ev.RequestContext.HTTP.SourceIP = "203.0.113.7"
	return ev
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAdapterConvertsRequestAndResponse(t *testing.T) {
	var gotMethod, gotPath, gotQuery, gotOrigin, gotBody string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("debug")
		gotOrigin = r.Header.Get("Origin")
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"slow down"}}`))
	})

	resp, err := NewAdapter(handler, discardLogger()).Handle(context.Background(), chatEvent(http.MethodPost, `{"model":"m"}`, false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotMethod != http.MethodPost || gotPath != "/api/chat" || gotQuery != "1" {
		t.Fatalf("unexpected request line: %s %s ?debug=%s", gotMethod, gotPath, gotQuery)
	}
	if gotOrigin != "https://example.com" {
		t.Fatalf("origin header lost: %q", gotOrigin)
	}
	if gotBody != `{"model":"m"}` {
		t.Fatalf("unexpected body: %s", gotBody)
	}

	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	if resp.Body != `{"error":{"message":"slow down"}}` || resp.IsBase64Encoded {
		t.Fatalf("unexpected response body: %q base64=%v", resp.Body, resp.IsBase64Encoded)
	}
	if resp.Headers["Access-Control-Allow-Origin"] != "*" {
		t.Fatalf("headers lost: %v", resp.Headers)
	}
}

func TestAdapterDecodesBase64Body(t *testing.T) {
	var gotBody string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.WriteHeader(http.StatusNoContent)
	})

	encoded := base64.StdEncoding.EncodeToString([]byte(`{"a":1}`))
	resp, err := NewAdapter(handler, discardLogger()).Handle(context.Background(), chatEvent(http.MethodPost, encoded, true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotBody != `{"a":1}` {
		t.Fatalf("unexpected decoded body: %q", gotBody)
	}
	if resp.StatusCode != http.StatusNoContent || resp.Body != "" {
		t.Fatalf("unexpected response: %d %q", resp.StatusCode, resp.Body)
	}
}

func TestAdapterBrokenBase64AnswersWithCORSError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler must not be called")
	})

	resp, err := NewAdapter(handler, discardLogger()).Handle(context.Background(), chatEvent(http.MethodPost, "%%%", true))
	if err != nil {
		t.Fatalf("adapter errors must become a response, got %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}
	if resp.Headers["Access-Control-Allow-Origin"] != "*" {
		t.Fatalf("missing CORS header: %v", resp.Headers)
	}
	if resp.Headers["Content-Type"] != "application/json" {
		t.Fatalf("unexpected content type: %v", resp.Headers)
	}

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(resp.Body), &envelope); err != nil {
		t.Fatalf("decode body: %v (%s)", err, resp.Body)
	}
	if !strings.HasPrefix(envelope.Error.Message, "Server error: ") {
		t.Fatalf("unexpected message: %q", envelope.Error.Message)
	}
}

func TestAdapterServesRelayPreflight(t *testing.T) {
	handler := app.NewHandler(config.Config{}, discardLogger(), app.Options{
		Credentials: config.StaticCredentials(""),
	})

	resp, err := NewAdapter(handler, discardLogger()).Handle(context.Background(), chatEvent(http.MethodOptions, "", false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.StatusCode)
	}
	if resp.Headers["Access-Control-Max-Age"] != "86400" {
		t.Fatalf("unexpected max age: %v", resp.Headers)
	}
	if resp.Body != "" {
		t.Fatalf("expected empty body, got %q", resp.Body)
	}
}

func TestAdapterMissingCredential(t *testing.T) {
	handler := app.NewHandler(config.Config{}, discardLogger(), app.Options{
		Credentials: config.StaticCredentials(""),
	})

	resp, err := NewAdapter(handler, discardLogger()).Handle(context.Background(), chatEvent(http.MethodPost, `{}`, false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}
	if !strings.Contains(resp.Body, "API key not configured on server") {
		t.Fatalf("unexpected body: %s", resp.Body)
	}
	if resp.Headers["Access-Control-Allow-Origin"] != "*" {
		t.Fatalf("missing CORS header: %v", resp.Headers)
	}
}
