// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Command orchestrator starts the readiness review HTTP server.
//
// This is the main entry point for the containerized service. It reads
// configuration from environment variables and starts the server.
//
// # Environment Variables
//
//   - ORCHESTRATOR_PORT: HTTP server port (default: 12300)
//   - MODEL_BACKEND_TYPE: model provider - gemini, openai, mock (default: gemini)
//   - GOOGLE_API_KEY / GOOGLE_CLOUD_PROJECT_ID: Gemini credentials
//   - OPENAI_API_KEY: OpenAI credentials
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OpenTelemetry collector (optional)
//   - LOG_DIR: directory for JSON file logs (optional)
//
// # Usage
//
//	# Build
//	go build -o orchestrator ./cmd/orchestrator
//
//	# Run
//	./orchestrator
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/lighthouse-sre/readiness/pkg/logging"
	"github.com/lighthouse-sre/readiness/services/orchestrator"
)

func main() {
	logger := logging.New(logging.Config{
		Level:   logging.LevelInfo,
		LogDir:  os.Getenv("LOG_DIR"),
		Service: "orchestrator",
		JSON:    true,
	})
	defer logger.Close()
	slog.SetDefault(logger.Slog())

	cfg := orchestrator.Config{
		Port:         getEnvInt("ORCHESTRATOR_PORT", 12300),
		ModelBackend: getEnvString("MODEL_BACKEND_TYPE", "gemini"),
		OTelEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	slog.Info("Starting readiness orchestrator",
		"port", cfg.Port,
		"model_backend", cfg.ModelBackend,
	)

	svc, err := orchestrator.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to create orchestrator: %v", err)
	}

	// Run the server (blocks until shutdown)
	if err := svc.Run(); err != nil {
		log.Fatalf("Orchestrator error: %v", err)
	}
}

// getEnvString returns the environment variable value or a default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the environment variable as int or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
