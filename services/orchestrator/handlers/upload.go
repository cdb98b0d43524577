// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package handlers contains the Gin HTTP handlers for the readiness API.
//
// Handlers are thin: they parse the request, call into the stores and the
// SRE agent, and shape the response. Domain misses (an unknown file or
// analysis token, an unsupported format) are reported as HTTP 200 with an
// "error" field in the body, which is the contract the frontend was built
// against. Only malformed request envelopes produce non-200 statuses.
package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/lighthouse-sre/readiness/services/orchestrator/datatypes"
	"github.com/lighthouse-sre/readiness/services/orchestrator/observability"
	"github.com/lighthouse-sre/readiness/services/orchestrator/store"
)

// pipelineTracer is the OpenTelemetry tracer for pipeline handlers.
var pipelineTracer = otel.Tracer("readiness.orchestrator.handlers")

// HandleUploadDiagram accepts a multipart diagram upload and stores it in
// memory for later analysis. The field name is "file". Returns the generated
// file token and the original filename.
//
// Empty files are accepted: the analysis stage resolves them to fallback
// output rather than rejecting them here.
func HandleUploadDiagram(uploads *store.UploadStore, metrics *observability.PipelineMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span := pipelineTracer.Start(c.Request.Context(), "HandleUploadDiagram")
		defer span.End()

		fileHeader, err := c.FormFile("file")
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			slog.Error("Failed to read uploaded file", "error", err)
			if metrics != nil {
				metrics.RecordRequest(observability.StageUpload, false)
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
			return
		}

		f, err := fileHeader.Open()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			slog.Error("Failed to open uploaded file", "error", err)
			if metrics != nil {
				metrics.RecordRequest(observability.StageUpload, false)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
			return
		}
		defer f.Close()

		content, err := io.ReadAll(f)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			slog.Error("Failed to read uploaded file content", "error", err)
			if metrics != nil {
				metrics.RecordRequest(observability.StageUpload, false)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
			return
		}

		fileID := uploads.Put(datatypes.UploadedFile{
			Filename:    fileHeader.Filename,
			Content:     content,
			ContentType: fileHeader.Header.Get("Content-Type"),
		})

		slog.Info("Received file upload", "filename", fileHeader.Filename, "bytes", len(content), "file_id", fileID)
		if metrics != nil {
			metrics.RecordRequest(observability.StageUpload, true)
		}

		c.JSON(http.StatusOK, gin.H{
			"fileId":   fileID,
			"filename": fileHeader.Filename,
		})
	}
}
