// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/lighthouse-sre/readiness/services/llm"
)

// HandlePing answers the frontend's connectivity probe.
func HandlePing() gin.HandlerFunc {
	return func(c *gin.Context) {
		slog.Debug("Ping received from frontend")
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "API is working!",
		})
	}
}

// HandleTestModel exercises the configured model backend with a trivial
// text prompt. Used to verify provider credentials end to end without
// uploading a diagram.
func HandleTestModel(model llm.ModelClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := pipelineTracer.Start(c.Request.Context(), "HandleTestModel")
		defer span.End()

		slog.Info("Testing model API connection")
		reply, err := model.Generate(ctx, "Say 'Hello, the API is working!'", llm.GenerationParams{})
		if err != nil {
			span.RecordError(err)
			slog.Error("Model API test failed", "error", err)
			c.JSON(http.StatusOK, gin.H{"status": "error", "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": reply})
	}
}

// HandleCheckEnv reports whether provider credentials are configured,
// without revealing them.
func HandleCheckEnv() gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := os.Getenv("GOOGLE_API_KEY")
		status := "Not set"
		if apiKey != "" {
			status = "Set"
		}
		slog.Debug("API key check", "status", status)
		c.JSON(http.StatusOK, gin.H{"api_key_status": status})
	}
}

// HandleHealth is the liveness probe.
func HandleHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
