// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package observability provides metrics and instrumentation for the
// readiness pipeline.
//
// # Description
//
// This package implements Prometheus metrics for monitoring the review
// pipeline. Metrics include:
//   - Request counters (by pipeline stage and status)
//   - Model call latency histograms (by backend and status)
//   - Fallback counters (by stage and reason)
//   - Policy violation counters
//   - Store size gauges
//
// # Integration
//
// Metrics are exposed via the /metrics endpoint. Use with Prometheus +
// Grafana for dashboards and alerting.
//
// # Thread Safety
//
// All metric operations are thread-safe via Prometheus's internal locking.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// Metric Definitions
// =============================================================================

// Namespace for all metrics
const metricsNamespace = "readiness"

// PipelineMetrics holds all Prometheus metrics for the review pipeline.
//
// # Description
//
// Provides counters, histograms, and gauges for monitoring pipeline traffic
// and degradation. Initialize once at startup via InitMetrics().
//
// # Thread Safety
//
// All operations are thread-safe.
type PipelineMetrics struct {
	// RequestsTotal counts pipeline requests by stage and status.
	// Labels: stage (upload, analyze, chaos, prr, download), status (success, error)
	RequestsTotal *prometheus.CounterVec

	// ModelCallDurationSeconds measures model call latency.
	// Labels: backend (gemini, openai, mock), status (success, error)
	ModelCallDurationSeconds *prometheus.HistogramVec

	// FallbacksTotal counts degraded results by stage and reason.
	// Labels: stage, reason (empty_input, model_error, parse_error, text_extraction)
	FallbacksTotal *prometheus.CounterVec

	// PolicyViolationsTotal counts requests blocked by the policy scan.
	// Labels: stage
	PolicyViolationsTotal *prometheus.CounterVec

	// StoreEntries tracks the number of entries held per in-memory store.
	// Labels: store (uploads, analyses, documents)
	StoreEntries *prometheus.GaugeVec
}

// DefaultMetrics is the singleton instance of PipelineMetrics.
// Initialized by InitMetrics().
var DefaultMetrics *PipelineMetrics

// InitMetrics initializes the default metrics instance.
//
// # Description
//
// Creates and registers all Prometheus metrics. Should be called once
// at application startup.
//
// # Outputs
//
//   - *PipelineMetrics: The initialized metrics instance.
//
// # Limitations
//
//   - Panics if called twice (duplicate registration).
func InitMetrics() *PipelineMetrics {
	DefaultMetrics = &PipelineMetrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "pipeline_requests_total",
				Help:      "Total pipeline requests by stage and status",
			},
			[]string{"stage", "status"},
		),

		ModelCallDurationSeconds: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "model_call_duration_seconds",
				Help:      "Model call latency in seconds by backend and status",
				Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"backend", "status"},
		),

		FallbacksTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "pipeline_fallbacks_total",
				Help:      "Total degraded results by stage and reason",
			},
			[]string{"stage", "reason"},
		),

		PolicyViolationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "policy_violations_total",
				Help:      "Total requests blocked by the policy scan",
			},
			[]string{"stage"},
		),

		StoreEntries: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "store_entries",
				Help:      "Entries currently held per in-memory store",
			},
			[]string{"store"},
		),
	}

	return DefaultMetrics
}

// =============================================================================
// Stage Names
// =============================================================================

// Stage identifies a pipeline stage for metrics labeling.
type Stage string

const (
	// StageUpload is the diagram upload stage.
	StageUpload Stage = "upload"

	// StageAnalyze is the architecture analysis stage.
	StageAnalyze Stage = "analyze"

	// StageChaos is the chaos plan generation stage.
	StageChaos Stage = "chaos"

	// StagePRR is the PRR document composition stage.
	StagePRR Stage = "prr"

	// StageDownload is the document download stage.
	StageDownload Stage = "download"
)

// =============================================================================
// Fallback Reasons
// =============================================================================

// FallbackReason categorizes why a stage produced degraded output.
type FallbackReason string

const (
	// ReasonEmptyInput indicates the uploaded diagram had no bytes.
	ReasonEmptyInput FallbackReason = "empty_input"

	// ReasonModelError indicates the model backend call failed.
	ReasonModelError FallbackReason = "model_error"

	// ReasonParseError indicates the model reply could not be used at all.
	ReasonParseError FallbackReason = "parse_error"

	// ReasonTextExtraction indicates the reply was salvaged from plain text.
	ReasonTextExtraction FallbackReason = "text_extraction"
)

// =============================================================================
// Helper Methods
// =============================================================================

// RecordRequest records a completed pipeline request.
func (m *PipelineMetrics) RecordRequest(stage Stage, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	m.RequestsTotal.WithLabelValues(string(stage), status).Inc()
}

// RecordModelCall records the latency of one model backend call.
func (m *PipelineMetrics) RecordModelCall(backend string, seconds float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	m.ModelCallDurationSeconds.WithLabelValues(backend, status).Observe(seconds)
}

// RecordFallback records a degraded result.
func (m *PipelineMetrics) RecordFallback(stage Stage, reason FallbackReason) {
	m.FallbacksTotal.WithLabelValues(string(stage), string(reason)).Inc()
}

// RecordPolicyViolation records a request blocked by the policy scan.
func (m *PipelineMetrics) RecordPolicyViolation(stage Stage) {
	m.PolicyViolationsTotal.WithLabelValues(string(stage)).Inc()
}

// SetStoreEntries updates the entry gauge for one store.
func (m *PipelineMetrics) SetStoreEntries(store string, entries int) {
	m.StoreEntries.WithLabelValues(store).Set(float64(entries))
}

// StoreReporter returns a callback suitable for the store package's
// SizeReporter hook. A nil receiver yields a nil callback, which the stores
// treat as "no reporting".
func (m *PipelineMetrics) StoreReporter() func(store string, entries int) {
	if m == nil {
		return nil
	}
	return m.SetStoreEntries
}
