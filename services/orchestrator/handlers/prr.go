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

// HandleGeneratePRR composes the production readiness review document from a
// stored system analysis and a stored destructive testing plan.
//
// Form fields: system_analysis_id, destructive_testing_id, metadata_json.
// Each missing prerequisite is reported inline with HTTP 200, named
// individually so the frontend can tell the user which stage to rerun.
func HandleGeneratePRR(
	results *store.ResultStore,
	agent *services.SREAgent,
	metrics *observability.PipelineMetrics,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := pipelineTracer.Start(c.Request.Context(), "HandleGeneratePRR")
		defer span.End()

		systemAnalysisID := c.PostForm("system_analysis_id")
		destructiveTestingID := c.PostForm("destructive_testing_id")
		metadataJSON := c.PostForm("metadata_json")

		analysisRec, ok := results.GetAnalysis(systemAnalysisID)
		if !ok || analysisRec.Analysis == nil {
			slog.Error("System analysis not found", "system_analysis_id", systemAnalysisID)
			if metrics != nil {
				metrics.RecordRequest(observability.StagePRR, false)
			}
			c.JSON(http.StatusOK, gin.H{"error": "System analysis not found."})
			return
		}

		planRec, ok := results.GetAnalysis(destructiveTestingID)
		if !ok || planRec.Plan == nil {
			slog.Error("Destructive testing analysis not found", "destructive_testing_id", destructiveTestingID)
			if metrics != nil {
				metrics.RecordRequest(observability.StagePRR, false)
			}
			c.JSON(http.StatusOK, gin.H{"error": "Destructive testing analysis not found."})
			return
		}

		var metadata datatypes.ProjectMetadata
		if err := json.Unmarshal([]byte(metadataJSON), &metadata); err != nil {
			span.RecordError(err)
			slog.Error("Failed to parse metadata_json", "error", err)
			if metrics != nil {
				metrics.RecordRequest(observability.StagePRR, false)
			}
			c.JSON(http.StatusOK, gin.H{"error": "Invalid metadata. Please provide valid project metadata."})
			return
		}

		document := agent.GeneratePRRDocument(ctx, analysisRec.Analysis, planRec.Plan, metadata)

		documentID := results.PutDocument(datatypes.DocumentRecord{
			Document:             document,
			SystemAnalysisID:     systemAnalysisID,
			DestructiveTestingID: destructiveTestingID,
			Metadata:             metadata,
		})
		span.SetAttributes(attribute.String("document.id", documentID))
		slog.Info("Generated PRR document", "document_id", documentID, "project", metadata.Name)
		if metrics != nil {
			metrics.RecordRequest(observability.StagePRR, true)
		}

		c.JSON(http.StatusOK, gin.H{
			"documentId": documentID,
			"document":   document,
		})
	}
}
