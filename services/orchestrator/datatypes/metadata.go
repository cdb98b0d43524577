// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package datatypes provides data structures for the readiness orchestrator.
//
// This file contains the project metadata envelope that accompanies every
// pipeline request. For analysis result types see analysis.go, chaos.go and
// prr.go; for stored-record types see records.go.
package datatypes

import (
	"github.com/go-playground/validator/v10"
)

// metadataValidate is the validator instance for metadata types.
var metadataValidate = validator.New()

// ProjectMetadata describes the system under review.
//
// All three fields are free-form text supplied by the caller. The only
// validation performed anywhere in the pipeline is required presence; the
// content itself is passed verbatim into model prompts and document
// templates.
type ProjectMetadata struct {
	Name           string `json:"name" validate:"required"`
	Description    string `json:"description" validate:"required"`
	BusinessImpact string `json:"businessImpact" validate:"required"`
}

// Validate checks that all required metadata fields are present.
func (m *ProjectMetadata) Validate() error {
	return metadataValidate.Struct(m)
}

// PromptText formats the metadata block that is embedded in model prompts.
func (m *ProjectMetadata) PromptText() string {
	return "Project Name: " + m.Name + "\n" +
		"Description: " + m.Description + "\n" +
		"Business Impact: " + m.BusinessImpact + "\n"
}

// AnalysisRequest is the JSON body of POST /api/analyze-system.
type AnalysisRequest struct {
	FileID   string          `json:"fileId" validate:"required"`
	Metadata ProjectMetadata `json:"metadata" validate:"required"`
}

// Validate checks the request envelope, including the nested metadata.
func (r *AnalysisRequest) Validate() error {
	return metadataValidate.Struct(r)
}
