// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectMetadata_Validate(t *testing.T) {
	m := ProjectMetadata{Name: "Shop", Description: "Online storefront", BusinessImpact: "high"}
	assert.NoError(t, m.Validate())

	missing := []ProjectMetadata{
		{Description: "d", BusinessImpact: "high"},
		{Name: "Shop", BusinessImpact: "high"},
		{Name: "Shop", Description: "d"},
	}
	for _, m := range missing {
		assert.Error(t, m.Validate())
	}
}

func TestProjectMetadata_PromptText(t *testing.T) {
	m := ProjectMetadata{Name: "Shop", Description: "Online storefront", BusinessImpact: "high"}

	text := m.PromptText()

	assert.Equal(t, "Project Name: Shop\nDescription: Online storefront\nBusiness Impact: high\n", text)
}

func TestAnalysisRequest_Validate(t *testing.T) {
	valid := AnalysisRequest{
		FileID:   "file-1",
		Metadata: ProjectMetadata{Name: "Shop", Description: "d", BusinessImpact: "high"},
	}
	assert.NoError(t, valid.Validate())

	noFile := valid
	noFile.FileID = ""
	assert.Error(t, noFile.Validate())

	// Nested metadata is validated through the envelope.
	noImpact := valid
	noImpact.Metadata.BusinessImpact = ""
	assert.Error(t, noImpact.Validate())
}
