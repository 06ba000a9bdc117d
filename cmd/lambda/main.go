package main

import (
	"log"

	"safarnama/internal/app"
	"safarnama/internal/config"
	"safarnama/internal/serverless"

	"github.com/aws/aws-lambda-go/lambda"
)

// Холодный старт: конфигурация читается один раз, ключ при каждом вызове.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.LogLevel)
	handler := app.NewHandler(cfg, logger, app.Options{})

	lambda.Start(serverless.NewAdapter(handler, logger).Handle)
}
