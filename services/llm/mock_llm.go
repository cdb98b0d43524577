// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package llm

import "context"

// MockClient stands in when no provider credentials are configured. Its
// replies are deterministic prose, never JSON, so the pipeline exercises its
// degraded extraction paths instead of pretending a model answered.
type MockClient struct{}

// NewMockClient creates the mock backend.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Generate returns a canned acknowledgement.
func (m *MockClient) Generate(ctx context.Context, prompt string, params GenerationParams) (string, error) {
	return "Mock model response. No provider is configured.", nil
}

// AnalyzeImage returns canned prose describing a generic architecture.
func (m *MockClient) AnalyzeImage(ctx context.Context, prompt, mimeType string, data []byte, params GenerationParams) (string, error) {
	return "This diagram shows a generic web application. Components\n" +
		"Frontend: serves the user interface\n" +
		"Backend API: handles business logic\n" +
		"Database: stores application state\n", nil
}
