// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lighthouse-sre/readiness/services/orchestrator/datatypes"
)

// =============================================================================
// ExtractJSON Tests
// =============================================================================

func TestExtractJSON_FencedBlock(t *testing.T) {
	reply := "Here is the analysis:\n```json\n{\"components\": []}\n```\nHope this helps."

	jsonText, fenced := ExtractJSON(reply)

	assert.True(t, fenced)
	assert.Equal(t, `{"components": []}`, jsonText)
}

func TestExtractJSON_BareObject(t *testing.T) {
	reply := "  {\"components\": [], \"availabilityTier\": \"tier1\"}  "

	jsonText, fenced := ExtractJSON(reply)

	assert.False(t, fenced)
	assert.Equal(t, reply, jsonText)
}

func TestExtractJSON_PlainText(t *testing.T) {
	reply := "The system looks resilient overall."

	jsonText, fenced := ExtractJSON(reply)

	assert.False(t, fenced)
	assert.Equal(t, reply, jsonText)
}

// =============================================================================
// ParseTextAnalysis Tests
// =============================================================================

func TestParseTextAnalysis_ComponentsSection(t *testing.T) {
	text := "Overview of the diagram.\n" +
		"Components\n" +
		"Frontend: serves the user interface\n" +
		"Backend API: handles business logic\n" +
		"x: y\n" + // too short, skipped
		"No separator on this line\n" +
		"Database: stores application state\n"

	analysis := ParseTextAnalysis(text)

	require.Len(t, analysis.Components, 3)
	assert.Equal(t, "Frontend", analysis.Components[0].Name)
	assert.Equal(t, "serves the user interface", analysis.Components[0].Description)
	assert.Equal(t, "service", analysis.Components[0].Type)
	assert.Equal(t, "Database", analysis.Components[2].Name)
	assert.Equal(t, datatypes.TierTwo, analysis.AvailabilityTier)
}

func TestParseTextAnalysis_NoComponentsMarker(t *testing.T) {
	analysis := ParseTextAnalysis("Nothing structured here at all.")

	assert.Empty(t, analysis.Components)
	assert.Empty(t, analysis.Dependencies)
	assert.Equal(t, datatypes.TierTwo, analysis.AvailabilityTier)
	assert.Equal(t, "Default justification based on text analysis", analysis.TierJustification)
}

func TestParseTextAnalysis_OnlyFirstTenLines(t *testing.T) {
	text := "Components\n"
	for i := 0; i < 15; i++ {
		text += "Service name: a long enough description line\n"
	}

	analysis := ParseTextAnalysis(text)

	// Only the first 10 lines after the marker are scanned, and the remainder
	// of the marker line itself is the first of them.
	assert.Len(t, analysis.Components, 9)
}
