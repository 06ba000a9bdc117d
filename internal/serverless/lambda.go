package serverless

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"safarnama/internal/httpserver"

	"github.com/aws/aws-lambda-go/events"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
)

// Adapter прогоняет события API Gateway HTTP API (payload v2) через обычный
// http.Handler, чтобы релей работал как serverless-функция.
type Adapter struct {
	proxy  *httpadapter.HandlerAdapterV2
	logger *slog.Logger
}

func NewAdapter(handler http.Handler, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Adapter{
		proxy:  httpadapter.NewV2(handler),
		logger: logger,
	}
}

// Handle никогда не возвращает ошибку в рантайм Lambda: сбой конвертации
// отдается клиенту тем же 500 с CORS, что и ошибки релея.
func (a *Adapter) Handle(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	resp, err := a.proxy.ProxyWithContext(ctx, event)
	if err != nil {
		a.logger.Error("proxy error",
			slog.String("kind", "adapter"),
			slog.String("error", err.Error()),
			slog.String("request_id", event.RequestContext.RequestID))
		return errorResponse(err), nil
	}
	return resp, nil
}

func errorResponse(err error) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: http.StatusInternalServerError,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(httpserver.MarshalJSONError("", "Server error: "+err.Error())),
	}
}
