// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package services provides the business logic of the readiness pipeline.
//
// This package contains the SRE agent, which turns uploaded architecture
// diagrams into structured system analyses, chaos testing plans, and
// production readiness review documents. Handlers stay thin; everything
// model-facing lives here.
//
// The agent never fails. Every degraded path (empty input, backend error,
// unparseable reply) resolves to usable output, with the degradation
// recorded in the outcome's Source field, the logs, and the metrics.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/lighthouse-sre/readiness/services/llm"
	"github.com/lighthouse-sre/readiness/services/orchestrator/datatypes"
	"github.com/lighthouse-sre/readiness/services/orchestrator/observability"
	"github.com/lighthouse-sre/readiness/services/orchestrator/store"
)

// agentTracer is the OpenTelemetry tracer for SREAgent operations.
var agentTracer = otel.Tracer("readiness.orchestrator.services")

// analysisPrompt is the instruction sent to the vision model together with
// the diagram. The metadata block is substituted per request.
const analysisPrompt = `You are an SRE expert analyzing a system architecture diagram. Your task is to extract key information
and provide a comprehensive analysis of the system.

Please analyze the provided architecture diagram with this context:
%s

Provide a structured analysis that includes:

1. System Components
- Identify all components and their purposes
- Classify components by type (UI, service, database, etc.)
- Identify technologies used

2. Dependencies
- Map all connections between components
- Identify the nature of each dependency

3. Critical Paths
- Identify the main user/data flows
- Highlight critical paths for business functionality

4. Single Points of Failure
- Identify potential SPOFs and their impact

5. Recommendations
- Suggest improvements to the architecture for reliability

6. Availability Tier Classification
- Classify the system as tier1 (99.99%%), tier2 (99.9%%), or tier3 (99.5%%)
- Provide justification for the classification

Format your response as structured JSON with these sections.`

// AnalysisOutcome is the result of one architecture analysis. Source records
// which path produced the payload (model, text_extraction, fallback); Reason
// is set on degraded outcomes and empty otherwise.
type AnalysisOutcome struct {
	Analysis *datatypes.SystemAnalysis
	Source   string
	Reason   observability.FallbackReason
}

// SREAgent runs the three pipeline stages against an injected model backend.
type SREAgent struct {
	model   llm.ModelClient
	backend string
	clock   store.Clock
	metrics *observability.PipelineMetrics
}

// NewSREAgent creates an agent. backend names the model backend for logs and
// metrics labels ("gemini", "openai", "mock"). metrics may be nil in tests.
func NewSREAgent(model llm.ModelClient, backend string, clock store.Clock, metrics *observability.PipelineMetrics) *SREAgent {
	return &SREAgent{
		model:   model,
		backend: backend,
		clock:   clock,
		metrics: metrics,
	}
}

// AnalyzeSystemArchitecture analyzes a diagram image with the vision model.
//
// # Description
//
// Builds the analysis prompt from the project metadata, sends it with the
// image to the backend, and decodes the reply in three attempts: parse the
// extracted JSON, salvage components from plain text, or serve the fixed
// fallback analysis. Empty image data and backend errors go straight to
// fallback.
//
// This method never returns an error. The outcome's Source field is the
// only honest record of which path ran.
func (a *SREAgent) AnalyzeSystemArchitecture(ctx context.Context, diagram []byte, mimeType string, metadata datatypes.ProjectMetadata) AnalysisOutcome {
	ctx, span := agentTracer.Start(ctx, "sre_agent.analyze_system_architecture")
	defer span.End()
	span.SetAttributes(
		attribute.String("project.name", metadata.Name),
		attribute.Int("diagram.bytes", len(diagram)),
		attribute.String("model.backend", a.backend),
	)

	slog.Info("Starting analysis", "project", metadata.Name)

	if len(diagram) == 0 {
		slog.Error("No diagram data provided")
		span.SetAttributes(attribute.String("analysis.source", datatypes.SourceFallback))
		a.recordFallback(observability.StageAnalyze, observability.ReasonEmptyInput)
		return AnalysisOutcome{
			Analysis: FallbackSystemAnalysis(),
			Source:   datatypes.SourceFallback,
			Reason:   observability.ReasonEmptyInput,
		}
	}

	slog.Info("Analyzing diagram", "bytes", len(diagram), "mime_type", mimeType)

	prompt := fmt.Sprintf(analysisPrompt, metadata.PromptText())

	start := time.Now()
	reply, err := a.model.AnalyzeImage(ctx, prompt, mimeType, diagram, llm.GenerationParams{})
	elapsed := time.Since(start).Seconds()
	if err != nil {
		slog.Error("Model call failed, falling back to mock data", "error", err, "backend", a.backend)
		span.RecordError(err)
		span.SetStatus(codes.Error, "model call failed")
		if a.metrics != nil {
			a.metrics.RecordModelCall(a.backend, elapsed, false)
		}
		a.recordFallback(observability.StageAnalyze, observability.ReasonModelError)
		return AnalysisOutcome{
			Analysis: FallbackSystemAnalysis(),
			Source:   datatypes.SourceFallback,
			Reason:   observability.ReasonModelError,
		}
	}
	if a.metrics != nil {
		a.metrics.RecordModelCall(a.backend, elapsed, true)
	}

	preview := reply
	if len(preview) > 100 {
		preview = preview[:100]
	}
	slog.Info("Received model response", "preview", preview)

	jsonText, fenced := ExtractJSON(reply)
	if fenced {
		slog.Info("JSON found in code block")
	}

	var analysis datatypes.SystemAnalysis
	if err := json.Unmarshal([]byte(jsonText), &analysis); err != nil {
		slog.Error("JSON decode failed, falling back to text extraction", "error", err)
		span.SetAttributes(attribute.String("analysis.source", datatypes.SourceTextExtraction))
		a.recordFallback(observability.StageAnalyze, observability.ReasonTextExtraction)
		return AnalysisOutcome{
			Analysis: ParseTextAnalysis(reply),
			Source:   datatypes.SourceTextExtraction,
			Reason:   observability.ReasonTextExtraction,
		}
	}

	slog.Info("Successfully parsed model response")
	span.SetAttributes(attribute.String("analysis.source", datatypes.SourceModel))
	return AnalysisOutcome{
		Analysis: &analysis,
		Source:   datatypes.SourceModel,
	}
}

// GenerateChaosTestingPlan produces the resilience-testing plan for an
// analyzed system.
//
// The plan content is currently fixed. The system summary is still built
// and logged so the stage's inputs are visible, and the seam for a future
// model-driven planner stays in place.
func (a *SREAgent) GenerateChaosTestingPlan(ctx context.Context, analysis *datatypes.SystemAnalysis, metadata datatypes.ProjectMetadata) *datatypes.ChaosTestingPlan {
	_, span := agentTracer.Start(ctx, "sre_agent.generate_chaos_testing_plan")
	defer span.End()
	span.SetAttributes(attribute.String("project.name", metadata.Name))

	summary := buildSystemSummary(analysis)
	slog.Debug("Generating chaos testing plan", "project", metadata.Name, "system_summary", summary)

	return StaticChaosPlan()
}

// GeneratePRRDocument composes the production readiness review document from
// the two preceding analyses. The document template is fixed; metadata
// personalizes the title and overview.
func (a *SREAgent) GeneratePRRDocument(ctx context.Context, analysis *datatypes.SystemAnalysis, plan *datatypes.ChaosTestingPlan, metadata datatypes.ProjectMetadata) datatypes.PRRDocument {
	_, span := agentTracer.Start(ctx, "sre_agent.generate_prr_document")
	defer span.End()
	span.SetAttributes(attribute.String("project.name", metadata.Name))

	slog.Info("Generating PRR document", "project", metadata.Name,
		"components", len(analysis.Components), "experiments", len(plan.Experiments.Items))

	return StaticPRRDocument(metadata, a.clock.Now())
}

func (a *SREAgent) recordFallback(stage observability.Stage, reason observability.FallbackReason) {
	if a.metrics != nil {
		a.metrics.RecordFallback(stage, reason)
	}
}

// buildSystemSummary renders an analysis as the plain-text summary fed to
// the chaos planning stage.
func buildSystemSummary(analysis *datatypes.SystemAnalysis) string {
	var components, dependencies, spofs string
	for _, c := range analysis.Components {
		components += fmt.Sprintf("- %s: %s\n", c.Name, c.Description)
	}
	for _, d := range analysis.Dependencies {
		dependencies += fmt.Sprintf("- %s -> %s (%s)\n", d.Source, d.Target, d.Type)
	}
	for _, s := range analysis.SinglePointsOfFailure {
		spofs += fmt.Sprintf("- %s: %s\n", s.Name, s.Impact)
	}
	return fmt.Sprintf("Components:\n%s\nDependencies:\n%s\nSingle Points of Failure:\n%s\nAvailability Tier: %s",
		components, dependencies, spofs, analysis.AvailabilityTier)
}
