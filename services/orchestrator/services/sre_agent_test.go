// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lighthouse-sre/readiness/services/llm"
	"github.com/lighthouse-sre/readiness/services/orchestrator/datatypes"
	"github.com/lighthouse-sre/readiness/services/orchestrator/observability"
	"github.com/lighthouse-sre/readiness/services/orchestrator/store"
)

// =============================================================================
// Mock Model Client
// =============================================================================

// mockModelClient implements llm.ModelClient with scripted responses.
type mockModelClient struct {
	reply      string
	err        error
	lastPrompt string
}

func (m *mockModelClient) Generate(ctx context.Context, prompt string, params llm.GenerationParams) (string, error) {
	m.lastPrompt = prompt
	return m.reply, m.err
}

func (m *mockModelClient) AnalyzeImage(ctx context.Context, prompt, mimeType string, data []byte, params llm.GenerationParams) (string, error) {
	m.lastPrompt = prompt
	return m.reply, m.err
}

func testMetadata() datatypes.ProjectMetadata {
	return datatypes.ProjectMetadata{
		Name:           "Shop",
		Description:    "Online storefront",
		BusinessImpact: "high",
	}
}

func newTestAgent(model llm.ModelClient) *SREAgent {
	clock := store.FixedClock{Instant: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
	return NewSREAgent(model, "mock", clock, nil)
}

// =============================================================================
// AnalyzeSystemArchitecture Tests
// =============================================================================

// TestAnalyzeSystemArchitecture_EmptyDiagram verifies empty input skips the
// model entirely and serves the fallback analysis.
func TestAnalyzeSystemArchitecture_EmptyDiagram(t *testing.T) {
	model := &mockModelClient{reply: "should not be called"}
	agent := newTestAgent(model)

	outcome := agent.AnalyzeSystemArchitecture(context.Background(), nil, "image/png", testMetadata())

	assert.Equal(t, datatypes.SourceFallback, outcome.Source)
	assert.Equal(t, observability.ReasonEmptyInput, outcome.Reason)
	require.NotEmpty(t, outcome.Analysis.Components)
	assert.Equal(t, "Frontend Web App", outcome.Analysis.Components[0].Name)
	assert.Empty(t, model.lastPrompt)
}

// TestAnalyzeSystemArchitecture_ModelError verifies backend failures degrade
// to the fallback analysis instead of surfacing an error.
func TestAnalyzeSystemArchitecture_ModelError(t *testing.T) {
	model := &mockModelClient{err: errors.New("backend unavailable")}
	agent := newTestAgent(model)

	outcome := agent.AnalyzeSystemArchitecture(context.Background(), []byte("PNGDATA"), "image/png", testMetadata())

	assert.Equal(t, datatypes.SourceFallback, outcome.Source)
	assert.Equal(t, observability.ReasonModelError, outcome.Reason)
	assert.Equal(t, datatypes.TierTwo, outcome.Analysis.AvailabilityTier)
}

// TestAnalyzeSystemArchitecture_FencedJSON verifies a markdown-fenced model
// reply is parsed as the real analysis.
func TestAnalyzeSystemArchitecture_FencedJSON(t *testing.T) {
	model := &mockModelClient{reply: "Here you go:\n```json\n" +
		`{"components": [{"name": "Checkout", "type": "service", "description": "order placement"}], "availabilityTier": "tier1"}` +
		"\n```"}
	agent := newTestAgent(model)

	outcome := agent.AnalyzeSystemArchitecture(context.Background(), []byte("PNGDATA"), "image/png", testMetadata())

	assert.Equal(t, datatypes.SourceModel, outcome.Source)
	assert.Empty(t, outcome.Reason)
	require.Len(t, outcome.Analysis.Components, 1)
	assert.Equal(t, "Checkout", outcome.Analysis.Components[0].Name)
	assert.Equal(t, datatypes.TierOne, outcome.Analysis.AvailabilityTier)
}

// TestAnalyzeSystemArchitecture_BareJSON verifies an unfenced JSON object
// reply is also accepted.
func TestAnalyzeSystemArchitecture_BareJSON(t *testing.T) {
	model := &mockModelClient{reply: `{"components": [], "availabilityTier": "tier3"}`}
	agent := newTestAgent(model)

	outcome := agent.AnalyzeSystemArchitecture(context.Background(), []byte("PNGDATA"), "image/png", testMetadata())

	assert.Equal(t, datatypes.SourceModel, outcome.Source)
	assert.Equal(t, datatypes.TierThree, outcome.Analysis.AvailabilityTier)
}

// TestAnalyzeSystemArchitecture_ProseReply verifies a non-JSON reply is
// salvaged by the text extractor rather than discarded.
func TestAnalyzeSystemArchitecture_ProseReply(t *testing.T) {
	model := &mockModelClient{reply: "The diagram shows a web system.\n" +
		"Components\n" +
		"Frontend: serves the user interface\n" +
		"Backend API: handles business logic\n"}
	agent := newTestAgent(model)

	outcome := agent.AnalyzeSystemArchitecture(context.Background(), []byte("PNGDATA"), "image/png", testMetadata())

	assert.Equal(t, datatypes.SourceTextExtraction, outcome.Source)
	assert.Equal(t, observability.ReasonTextExtraction, outcome.Reason)
	require.Len(t, outcome.Analysis.Components, 2)
	assert.Equal(t, "Frontend", outcome.Analysis.Components[0].Name)
}

// TestAnalyzeSystemArchitecture_PromptContainsMetadata verifies the project
// metadata is embedded in the prompt sent to the model.
func TestAnalyzeSystemArchitecture_PromptContainsMetadata(t *testing.T) {
	model := &mockModelClient{reply: `{"components": []}`}
	agent := newTestAgent(model)

	agent.AnalyzeSystemArchitecture(context.Background(), []byte("PNGDATA"), "image/png", testMetadata())

	assert.Contains(t, model.lastPrompt, "Project Name: Shop")
	assert.Contains(t, model.lastPrompt, "Business Impact: high")
	assert.Contains(t, model.lastPrompt, "tier1 (99.99%)")
}

// =============================================================================
// GenerateChaosTestingPlan Tests
// =============================================================================

func TestGenerateChaosTestingPlan_Content(t *testing.T) {
	agent := newTestAgent(&mockModelClient{})

	plan := agent.GenerateChaosTestingPlan(context.Background(), FallbackSystemAnalysis(), testMetadata())

	require.NotNil(t, plan)
	assert.Len(t, plan.DependencyAnalysis.Dependencies, 4)
	assert.Len(t, plan.SteadyStateDefinitions.States, 5)
	assert.Len(t, plan.Hypotheses.Items, 4)
	require.Len(t, plan.Experiments.Items, 4)
	for _, exp := range plan.Experiments.Items {
		assert.Contains(t, exp.LitmusConfig, "litmuschaos.io", "experiment %q should carry a Litmus manifest", exp.Name)
	}
	assert.Len(t, plan.Rumsfeld.Matrix.KnownKnowns, 4)
	assert.Len(t, plan.BlastRadius.Analyses, 4)
}

// =============================================================================
// GeneratePRRDocument Tests
// =============================================================================

func TestGeneratePRRDocument_Personalization(t *testing.T) {
	agent := newTestAgent(&mockModelClient{})
	metadata := testMetadata()

	doc := agent.GeneratePRRDocument(context.Background(), FallbackSystemAnalysis(), StaticChaosPlan(), metadata)

	assert.Equal(t, "Shop - Production Readiness Review", doc.Title)
	assert.Equal(t, "1.0", doc.Version)
	assert.Equal(t, "2026-03-14", doc.Date)

	wantTitles := []string{
		"Service Overview",
		"Architecture Analysis",
		"Resilience Testing Strategy",
		"Availability Design",
		"Observability Strategy",
		"Identified Risks & Mitigations",
		"Recommendations & Next Steps",
	}
	require.Len(t, doc.Sections, len(wantTitles))
	for i, want := range wantTitles {
		assert.Equal(t, want, doc.Sections[i].Title)
	}
	assert.Contains(t, doc.Sections[0].Content, "Shop")
	assert.Contains(t, doc.Sections[0].Content, "high")
}

// TestStaticStages_Deterministic verifies identical inputs produce identical
// chaos plans and PRR documents across calls.
func TestStaticStages_Deterministic(t *testing.T) {
	agent := newTestAgent(&mockModelClient{})
	metadata := testMetadata()
	analysis := FallbackSystemAnalysis()

	planA := agent.GenerateChaosTestingPlan(context.Background(), analysis, metadata)
	planB := agent.GenerateChaosTestingPlan(context.Background(), analysis, metadata)
	assert.Equal(t, planA, planB)

	docA := agent.GeneratePRRDocument(context.Background(), analysis, planA, metadata)
	docB := agent.GeneratePRRDocument(context.Background(), analysis, planB, metadata)
	assert.Equal(t, docA, docB)
}

// =============================================================================
// System Summary Tests
// =============================================================================

func TestBuildSystemSummary_Format(t *testing.T) {
	analysis := &datatypes.SystemAnalysis{
		Components: []datatypes.Component{
			{Name: "API", Description: "entry point"},
		},
		Dependencies: []datatypes.Dependency{
			{Source: "API", Target: "DB", Type: "Database"},
		},
		SinglePointsOfFailure: []datatypes.FailurePoint{
			{Name: "DB", Impact: "data unavailable"},
		},
		AvailabilityTier: datatypes.TierTwo,
	}

	summary := buildSystemSummary(analysis)

	assert.Contains(t, summary, "- API: entry point")
	assert.Contains(t, summary, "- API -> DB (Database)")
	assert.Contains(t, summary, "- DB: data unavailable")
	assert.True(t, strings.HasSuffix(summary, "Availability Tier: tier2"))
}
