// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package llm provides the model backends used by the readiness pipeline.
//
// Backends are selected at startup via the MODEL_BACKEND_TYPE environment
// variable ("gemini", "openai" or "mock"). Every backend implements
// ModelClient; the rest of the service never knows which provider is
// answering.
package llm

import "context"

// GenerationParams carries optional sampling parameters for a model call.
// Nil fields leave the provider default in place.
type GenerationParams struct {
	Temperature *float32 `json:"temperature"`
	MaxTokens   *int     `json:"max_tokens"`
}

// ModelClient is the contract every model backend satisfies.
//
// AnalyzeImage sends a still image together with an instruction prompt to a
// vision-capable model and returns the raw text reply. The backend handles
// whatever transport encoding its provider needs (base64 data URLs, inline
// byte parts). No timeout is imposed beyond what ctx carries: a hung
// provider call suspends only the request that made it.
type ModelClient interface {
	Generate(ctx context.Context, prompt string, params GenerationParams) (string, error)
	AnalyzeImage(ctx context.Context, prompt, mimeType string, data []byte, params GenerationParams) (string, error)
}
