// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lighthouse-sre/readiness/services/llm"
	"github.com/lighthouse-sre/readiness/services/orchestrator/services"
	"github.com/lighthouse-sre/readiness/services/orchestrator/store"
	"github.com/lighthouse-sre/readiness/services/policy_engine"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubModel struct{}

func (stubModel) Generate(ctx context.Context, prompt string, params llm.GenerationParams) (string, error) {
	return "ok", nil
}

func (stubModel) AnalyzeImage(ctx context.Context, prompt, mimeType string, data []byte, params llm.GenerationParams) (string, error) {
	return "ok", nil
}

// TestSetupRoutes_RouteTable verifies every endpoint is registered on its
// expected method and path.
func TestSetupRoutes_RouteTable(t *testing.T) {
	pe, err := policy_engine.NewPolicyEngine()
	require.NoError(t, err)
	clock := store.FixedClock{Instant: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}

	router := gin.New()
	SetupRoutes(router, Deps{
		Uploads:      store.NewUploadStore(clock, nil),
		Results:      store.NewResultStore(clock, nil),
		Agent:        services.NewSREAgent(stubModel{}, "mock", clock, nil),
		Model:        stubModel{},
		PolicyEngine: pe,
	})

	want := map[string][]string{
		http.MethodGet: {
			"/health",
			"/metrics",
			"/api/ping",
			"/api/test-gemini",
			"/api/check-env",
			"/api/download-prr/:documentId",
		},
		http.MethodPost: {
			"/api/upload-diagram",
			"/api/analyze-system",
			"/api/analyze-destructive-tests",
			"/api/generate-prr",
		},
	}

	registered := map[string][]string{}
	for _, route := range router.Routes() {
		registered[route.Method] = append(registered[route.Method], route.Path)
	}
	for method, paths := range want {
		for _, path := range paths {
			assert.Contains(t, registered[method], path, "%s %s should be registered", method, path)
		}
	}
}

func TestSetupRoutes_HealthResponds(t *testing.T) {
	pe, err := policy_engine.NewPolicyEngine()
	require.NoError(t, err)
	clock := store.SystemClock{}

	router := gin.New()
	SetupRoutes(router, Deps{
		Uploads:      store.NewUploadStore(clock, nil),
		Results:      store.NewResultStore(clock, nil),
		Agent:        services.NewSREAgent(stubModel{}, "mock", clock, nil),
		Model:        stubModel{},
		PolicyEngine: pe,
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
