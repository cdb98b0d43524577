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

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/lighthouse-sre/readiness/services/orchestrator/datatypes"
	"github.com/lighthouse-sre/readiness/services/orchestrator/observability"
	"github.com/lighthouse-sre/readiness/services/orchestrator/services"
	"github.com/lighthouse-sre/readiness/services/orchestrator/store"
	"github.com/lighthouse-sre/readiness/services/policy_engine"
)

// HandleAnalyzeSystem runs the architecture analysis stage.
//
// # Description
//
// Resolves the uploaded diagram by file token, scans the project metadata
// for sensitive data, runs the vision analysis, and stores the result under
// a fresh analysis token. The analysis itself never fails: degraded paths
// resolve to text-extracted or fallback output inside the agent.
//
// An unknown file token is a domain miss, not a transport failure, and is
// reported as HTTP 200 with an "error" field. Metadata containing secrets
// is the one hard rejection: it must not reach an external provider.
func HandleAnalyzeSystem(
	uploads *store.UploadStore,
	results *store.ResultStore,
	agent *services.SREAgent,
	pe *policy_engine.PolicyEngine,
	metrics *observability.PipelineMetrics,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := pipelineTracer.Start(c.Request.Context(), "HandleAnalyzeSystem")
		defer span.End()

		var req datatypes.AnalysisRequest
		if err := c.BindJSON(&req); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			slog.Error("Failed to parse the analysis request", "error", err)
			if metrics != nil {
				metrics.RecordRequest(observability.StageAnalyze, false)
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if err := req.Validate(); err != nil {
			span.RecordError(err)
			slog.Error("Analysis request failed validation", "error", err)
			if metrics != nil {
				metrics.RecordRequest(observability.StageAnalyze, false)
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		slog.Info("Received analysis request", "file_id", req.FileID, "project", req.Metadata.Name)
		span.SetAttributes(attribute.String("file.id", req.FileID))

		findings := pe.ScanFields(map[string]string{
			"name":           req.Metadata.Name,
			"description":    req.Metadata.Description,
			"businessImpact": req.Metadata.BusinessImpact,
		})
		if len(findings) > 0 {
			slog.Warn("Blocked analysis request due to policy violation", "findings", len(findings))
			if metrics != nil {
				metrics.RecordPolicyViolation(observability.StageAnalyze)
				metrics.RecordRequest(observability.StageAnalyze, false)
			}
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "Policy Violation: Metadata contains sensitive data.",
				"findings": findings,
			})
			return
		}

		file, ok := uploads.Get(req.FileID)
		if !ok {
			slog.Error("File ID not found", "file_id", req.FileID)
			if metrics != nil {
				metrics.RecordRequest(observability.StageAnalyze, false)
			}
			c.JSON(http.StatusOK, gin.H{"error": "File not found. Please upload the file again."})
			return
		}

		slog.Info("Retrieved file", "filename", file.Filename, "bytes", len(file.Content))

		mimeType := file.ContentType
		if mimeType == "" {
			mimeType = "image/png"
		}

		outcome := agent.AnalyzeSystemArchitecture(ctx, file.Content, mimeType, req.Metadata)

		if len(outcome.Analysis.Components) > 0 {
			first := outcome.Analysis.Components[0].Name
			slog.Info("Analysis complete", "first_component", first, "source", outcome.Source)
			if first == "Frontend Web App" {
				slog.Warn("Appears to be using mock data (first component matches mock data)")
			}
		}

		analysisID := results.PutAnalysis(datatypes.AnalysisRecord{
			Kind:     datatypes.RecordKindSystemAnalysis,
			Analysis: outcome.Analysis,
			Metadata: req.Metadata,
			Source:   outcome.Source,
		})
		span.SetAttributes(
			attribute.String("analysis.id", analysisID),
			attribute.String("analysis.source", outcome.Source),
		)
		if metrics != nil {
			metrics.RecordRequest(observability.StageAnalyze, true)
		}

		c.JSON(http.StatusOK, gin.H{
			"analysisId": analysisID,
			"result":     outcome.Analysis,
		})
	}
}
