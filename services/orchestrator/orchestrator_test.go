// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package orchestrator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_MockBackend verifies a fully assembled service comes up with the
// mock backend and serves the utility endpoints.
func TestNew_MockBackend(t *testing.T) {
	svc, err := New(context.Background(), Config{
		ModelBackend:   "mock",
		DisableMetrics: true,
		GinMode:        gin.TestMode,
	})
	require.NoError(t, err)
	require.NotNil(t, svc.Router())

	w := httptest.NewRecorder()
	svc.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	svc.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "API is working!")
}

// TestNew_MissingCredentialsDemotesToMock verifies the service still comes
// up when the default backend has no credentials. Degraded, never down.
func TestNew_MissingCredentialsDemotesToMock(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GOOGLE_CLOUD_PROJECT_ID", "")

	svc, err := New(context.Background(), Config{
		ModelBackend:   "gemini",
		DisableMetrics: true,
		GinMode:        gin.TestMode,
	})
	require.NoError(t, err)

	// The model probe answers through the mock client instead of failing.
	w := httptest.NewRecorder()
	svc.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/test-gemini", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "success")
}

func TestApplyConfigDefaults(t *testing.T) {
	cfg := applyConfigDefaults(Config{})

	assert.Equal(t, 12300, cfg.Port)
	assert.Equal(t, "gemini", cfg.ModelBackend)
	assert.False(t, cfg.DisableMetrics)
}
