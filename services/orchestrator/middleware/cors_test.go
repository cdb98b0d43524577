// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCORS_DefaultOrigin(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGIN", "")
	router := gin.New()
	router.Use(CORS())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_ConfiguredOrigin(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGIN", "https://reviews.example.com")
	router := gin.New()
	router.Use(CORS())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, "https://reviews.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

// TestCORS_Preflight verifies OPTIONS requests are answered without reaching
// the handler.
func TestCORS_Preflight(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGIN", "")
	handlerHit := false
	router := gin.New()
	router.Use(CORS())
	router.OPTIONS("/ping", func(c *gin.Context) { handlerHit = true })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.False(t, handlerHit)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}
