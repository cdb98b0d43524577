// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

import "time"

// Record kinds stored in the result store.
const (
	RecordKindSystemAnalysis     = "system_analysis"
	RecordKindDestructiveTesting = "destructive_testing"
)

// Result sources, distinguishing genuine model output from degraded paths.
// Stored on every analysis record so operators and tests can tell a real
// analysis from canned fallback data, which the HTTP response shape alone
// does not reveal.
const (
	// SourceModel means the payload was parsed from a model reply.
	SourceModel = "model"

	// SourceTextExtraction means the model replied but not with parseable
	// JSON, and the payload was synthesized by the plain-text extractor.
	SourceTextExtraction = "text_extraction"

	// SourceFallback means the model was skipped or failed and the payload
	// is the fixed fallback data.
	SourceFallback = "fallback"

	// SourceStatic marks stages that currently always produce fixed content
	// (the chaos plan and the PRR document).
	SourceStatic = "static"
)

// UploadedFile is a diagram held in volatile memory between the upload and
// analyze stages. Content is retained for the process lifetime; nothing
// frees it.
type UploadedFile struct {
	ID          string    `json:"fileId"`
	Filename    string    `json:"filename"`
	Content     []byte    `json:"-"`
	ContentType string    `json:"contentType"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// AnalysisRecord is a stored pipeline result: either a system analysis or a
// destructive-testing plan, together with the metadata it was produced for
// and, for derived records, a back-reference to the analysis they came from.
type AnalysisRecord struct {
	Kind             string            `json:"kind"`
	Analysis         *SystemAnalysis   `json:"analysis,omitempty"`
	Plan             *ChaosTestingPlan `json:"plan,omitempty"`
	SystemAnalysisID string            `json:"systemAnalysisId,omitempty"`
	Metadata         ProjectMetadata   `json:"metadata"`
	Source           string            `json:"source"`
	CreatedAt        time.Time         `json:"createdAt"`
}

// DocumentRecord is a stored PRR document plus the identifiers of the
// analyses it was composed from.
type DocumentRecord struct {
	Document             PRRDocument     `json:"document"`
	SystemAnalysisID     string          `json:"systemAnalysisId"`
	DestructiveTestingID string          `json:"destructiveTestingId"`
	Metadata             ProjectMetadata `json:"metadata"`
	CreatedAt            time.Time       `json:"createdAt"`
}
