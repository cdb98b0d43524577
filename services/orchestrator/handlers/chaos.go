// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	"github.com/lighthouse-sre/readiness/services/orchestrator/datatypes"
	"github.com/lighthouse-sre/readiness/services/orchestrator/observability"
	"github.com/lighthouse-sre/readiness/services/orchestrator/services"
	"github.com/lighthouse-sre/readiness/services/orchestrator/store"
)

// HandleAnalyzeDestructiveTests runs the chaos plan generation stage.
//
// Form fields: system_analysis_id references a stored analysis,
// metadata_json carries the project metadata as a JSON string. Both misses
// and bad metadata are domain errors reported inline with HTTP 200.
func HandleAnalyzeDestructiveTests(
	results *store.ResultStore,
	agent *services.SREAgent,
	metrics *observability.PipelineMetrics,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := pipelineTracer.Start(c.Request.Context(), "HandleAnalyzeDestructiveTests")
		defer span.End()

		systemAnalysisID := c.PostForm("system_analysis_id")
		metadataJSON := c.PostForm("metadata_json")
		span.SetAttributes(attribute.String("system_analysis.id", systemAnalysisID))

		rec, ok := results.GetAnalysis(systemAnalysisID)
		if !ok || rec.Analysis == nil {
			slog.Error("System analysis not found", "system_analysis_id", systemAnalysisID)
			if metrics != nil {
				metrics.RecordRequest(observability.StageChaos, false)
			}
			c.JSON(http.StatusOK, gin.H{"error": "System analysis not found. Please analyze the system first."})
			return
		}

		var metadata datatypes.ProjectMetadata
		if err := json.Unmarshal([]byte(metadataJSON), &metadata); err != nil {
			span.RecordError(err)
			slog.Error("Failed to parse metadata_json", "error", err)
			if metrics != nil {
				metrics.RecordRequest(observability.StageChaos, false)
			}
			c.JSON(http.StatusOK, gin.H{"error": "Invalid metadata. Please provide valid project metadata."})
			return
		}

		plan := agent.GenerateChaosTestingPlan(ctx, rec.Analysis, metadata)

		analysisID := results.PutAnalysis(datatypes.AnalysisRecord{
			Kind:             datatypes.RecordKindDestructiveTesting,
			Plan:             plan,
			SystemAnalysisID: systemAnalysisID,
			Metadata:         metadata,
			Source:           datatypes.SourceStatic,
		})
		span.SetAttributes(attribute.String("analysis.id", analysisID))
		slog.Info("Generated destructive testing plan", "analysis_id", analysisID, "project", metadata.Name)
		if metrics != nil {
			metrics.RecordRequest(observability.StageChaos, true)
		}

		c.JSON(http.StatusOK, gin.H{
			"analysisId": analysisID,
			"result":     plan,
		})
	}
}
