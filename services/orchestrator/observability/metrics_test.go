// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPipelineMetrics exercises every recorder against the registered
// metrics. InitMetrics registers on the default registry and panics on
// duplicate registration, so everything shares one initialization.
func TestPipelineMetrics(t *testing.T) {
	m := InitMetrics()
	require.NotNil(t, m)
	assert.Same(t, m, DefaultMetrics)

	t.Run("RecordRequest", func(t *testing.T) {
		m.RecordRequest(StageUpload, true)
		m.RecordRequest(StageUpload, true)
		m.RecordRequest(StageAnalyze, false)

		assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("upload", "success")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("analyze", "error")))
	})

	t.Run("RecordFallback", func(t *testing.T) {
		m.RecordFallback(StageAnalyze, ReasonModelError)

		assert.Equal(t, 1.0, testutil.ToFloat64(m.FallbacksTotal.WithLabelValues("analyze", "model_error")))
	})

	t.Run("RecordPolicyViolation", func(t *testing.T) {
		m.RecordPolicyViolation(StageAnalyze)

		assert.Equal(t, 1.0, testutil.ToFloat64(m.PolicyViolationsTotal.WithLabelValues("analyze")))
	})

	t.Run("SetStoreEntries", func(t *testing.T) {
		m.SetStoreEntries("uploads", 3)
		m.SetStoreEntries("uploads", 5)

		assert.Equal(t, 5.0, testutil.ToFloat64(m.StoreEntries.WithLabelValues("uploads")))
	})

	t.Run("StoreReporter", func(t *testing.T) {
		report := m.StoreReporter()
		require.NotNil(t, report)
		report("documents", 7)

		assert.Equal(t, 7.0, testutil.ToFloat64(m.StoreEntries.WithLabelValues("documents")))
	})
}

// TestStoreReporter_NilReceiver verifies a nil metrics instance yields a nil
// callback, which the stores treat as reporting disabled.
func TestStoreReporter_NilReceiver(t *testing.T) {
	var m *PipelineMetrics
	assert.Nil(t, m.StoreReporter())
}
