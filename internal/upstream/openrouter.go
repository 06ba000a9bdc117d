package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"safarnama/internal/config"
)

const chatCompletionsPath = "/chat/completions"

type OpenRouterClient struct {
	endpoint   string
	title      string
	httpClient *http.Client
}

func NewOpenRouterClient(cfg config.OpenRouterConfig, title string, httpClient *http.Client) *OpenRouterClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &OpenRouterClient{
		endpoint:   strings.TrimRight(cfg.BaseURL, "/") + chatCompletionsPath,
		title:      title,
		httpClient: httpClient,
	}
}

// Forward отправляет тело в апстрим ровно один раз, без повторов.
func (c *OpenRouterClient) Forward(ctx context.Context, req Request) (Result, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(req.Body))
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+req.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("HTTP-Referer", req.Referer)
	if c.title != "" {
		httpReq.Header.Set("X-Title", c.title)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Result{}, newTransportError("execute request", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, newTransportError("read response", err)
	}

	// Тело только проверяется: клиенту уходят исходные байты апстрима.
	var parsed json.RawMessage
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return Result{}, &ResponseError{StatusCode: resp.StatusCode, Err: err}
	}

	return Result{StatusCode: resp.StatusCode, Body: bodyBytes}, nil
}
