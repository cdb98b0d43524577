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

	"github.com/lighthouse-sre/readiness/services/orchestrator/observability"
	"github.com/lighthouse-sre/readiness/services/orchestrator/store"
)

// HandleDownloadPRR resolves a stored PRR document to a download descriptor.
//
// The format query parameter defaults to "pdf"; only "pdf" and "docx" are
// supported. Rendering is not implemented: the response carries the URL the
// renderer would publish under, not the bytes themselves.
func HandleDownloadPRR(results *store.ResultStore, metrics *observability.PipelineMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span := pipelineTracer.Start(c.Request.Context(), "HandleDownloadPRR")
		defer span.End()

		documentID := c.Param("documentId")
		format := c.DefaultQuery("format", "pdf")

		if _, ok := results.GetDocument(documentID); !ok {
			slog.Error("PRR document not found", "document_id", documentID)
			if metrics != nil {
				metrics.RecordRequest(observability.StageDownload, false)
			}
			c.JSON(http.StatusOK, gin.H{"error": "PRR document not found."})
			return
		}

		switch format {
		case "pdf", "docx":
			slog.Info("Serving PRR download descriptor", "document_id", documentID, "format", format)
			if metrics != nil {
				metrics.RecordRequest(observability.StageDownload, true)
			}
			c.JSON(http.StatusOK, gin.H{
				"documentUrl": "/downloads/" + documentID + "." + format,
				"format":      format,
			})
		default:
			slog.Error("Unsupported download format", "format", format)
			if metrics != nil {
				metrics.RecordRequest(observability.StageDownload, false)
			}
			c.JSON(http.StatusOK, gin.H{"error": "Unsupported format. Use 'pdf' or 'docx'."})
		}
	}
}
