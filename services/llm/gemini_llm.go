// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package llm

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"google.golang.org/genai"
)

// GeminiClient talks to Google's Gemini API. It is the default backend: the
// system was designed around Gemini's vision models.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient builds a Gemini backend from the environment.
//
// GOOGLE_API_KEY is required unless GOOGLE_CLOUD_PROJECT_ID is set, in
// which case the Vertex AI backend is used with GOOGLE_CLOUD_LOCATION
// (default us-central1). GEMINI_MODEL overrides the default model.
//
// A missing key is an error here; the caller decides whether that is fatal.
// The orchestrator treats it as a signal to run in degraded mock mode.
func NewGeminiClient(ctx context.Context) (*GeminiClient, error) {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT_ID")
	location := os.Getenv("GOOGLE_CLOUD_LOCATION")
	model := os.Getenv("GEMINI_MODEL")

	if model == "" {
		model = "gemini-1.5-flash"
		slog.Warn("GEMINI_MODEL not set, defaulting to gemini-1.5-flash")
	}

	var cfg *genai.ClientConfig
	switch {
	case projectID != "":
		if location == "" {
			location = "us-central1"
		}
		cfg = &genai.ClientConfig{
			Project:  projectID,
			Location: location,
			Backend:  genai.BackendVertexAI,
		}
		slog.Info("Initializing Gemini client via Vertex AI", "project", projectID, "location", location, "model", model)
	case apiKey != "":
		cfg = &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		}
		slog.Info("Initializing Gemini client", "model", model)
	default:
		return nil, fmt.Errorf("GOOGLE_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Generate implements the ModelClient interface for text-only prompts.
func (g *GeminiClient) Generate(ctx context.Context, prompt string, params GenerationParams) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, g.generateConfig(params))
	if err != nil {
		return "", fmt.Errorf("Gemini API call failed: %w", err)
	}
	return resp.Text(), nil
}

// AnalyzeImage sends the instruction prompt plus the image as an inline
// bytes part. Gemini takes raw bytes; no base64 round trip is needed on our
// side.
func (g *GeminiClient) AnalyzeImage(ctx context.Context, prompt, mimeType string, data []byte, params GenerationParams) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(data, mimeType),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, g.generateConfig(params))
	if err != nil {
		return "", fmt.Errorf("Gemini vision call failed: %w", err)
	}
	slog.Debug("Received response from Gemini", "model", g.model)
	return resp.Text(), nil
}

func (g *GeminiClient) generateConfig(params GenerationParams) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if params.Temperature != nil {
		cfg.Temperature = genai.Ptr(*params.Temperature)
	}
	if params.MaxTokens != nil {
		cfg.MaxOutputTokens = int32(*params.MaxTokens)
	}
	return cfg
}
