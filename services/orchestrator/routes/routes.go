// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lighthouse-sre/readiness/services/llm"
	"github.com/lighthouse-sre/readiness/services/orchestrator/handlers"
	"github.com/lighthouse-sre/readiness/services/orchestrator/observability"
	"github.com/lighthouse-sre/readiness/services/orchestrator/services"
	"github.com/lighthouse-sre/readiness/services/orchestrator/store"
	"github.com/lighthouse-sre/readiness/services/policy_engine"
)

// Deps bundles everything the route handlers need. Constructed once in main
// and in tests.
type Deps struct {
	Uploads      *store.UploadStore
	Results      *store.ResultStore
	Agent        *services.SREAgent
	Model        llm.ModelClient
	PolicyEngine *policy_engine.PolicyEngine
	Metrics      *observability.PipelineMetrics
}

// SetupRoutes registers all API routes on the router.
func SetupRoutes(router *gin.Engine, deps Deps) {
	router.GET("/health", handlers.HandleHealth())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/ping", handlers.HandlePing())
		api.GET("/test-gemini", handlers.HandleTestModel(deps.Model))
		api.GET("/check-env", handlers.HandleCheckEnv())

		api.POST("/upload-diagram", handlers.HandleUploadDiagram(deps.Uploads, deps.Metrics))
		api.POST("/analyze-system", handlers.HandleAnalyzeSystem(deps.Uploads, deps.Results, deps.Agent, deps.PolicyEngine, deps.Metrics))
		api.POST("/analyze-destructive-tests", handlers.HandleAnalyzeDestructiveTests(deps.Results, deps.Agent, deps.Metrics))
		api.POST("/generate-prr", handlers.HandleGeneratePRR(deps.Results, deps.Agent, deps.Metrics))
		api.GET("/download-prr/:documentId", handlers.HandleDownloadPRR(deps.Results, deps.Metrics))
	}
}
