// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMockClient_AnalyzeImage verifies the mock reply is deliberately
// non-JSON prose with a Components section, so the degraded extraction path
// gets exercised whenever the mock backend is active.
func TestMockClient_AnalyzeImage(t *testing.T) {
	client := NewMockClient()

	reply, err := client.AnalyzeImage(context.Background(), "analyze this", "image/png", []byte("PNGDATA"), GenerationParams{})

	require.NoError(t, err)
	assert.Contains(t, reply, "Components")
	assert.NotContains(t, reply, "{")
}

func TestMockClient_Generate(t *testing.T) {
	client := NewMockClient()

	reply, err := client.Generate(context.Background(), "say hello", GenerationParams{})

	require.NoError(t, err)
	assert.NotEmpty(t, reply)
}
