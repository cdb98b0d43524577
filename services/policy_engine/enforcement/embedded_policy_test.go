// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package enforcement

import (
	"testing"

	"gopkg.in/yaml.v3"
)

// TestEmbeddedPolicyIsValidYAML guards against shipping a binary with a
// broken policy file baked in.
func TestEmbeddedPolicyIsValidYAML(t *testing.T) {
	if len(DataClassificationPatterns) == 0 {
		t.Fatal("Embedded policy file is empty")
	}

	var doc struct {
		Classifications []struct {
			Name     string `yaml:"name"`
			Priority int    `yaml:"priority"`
		} `yaml:"classifications"`
	}
	if err := yaml.Unmarshal(DataClassificationPatterns, &doc); err != nil {
		t.Fatalf("Embedded policy file is not valid YAML: %v", err)
	}
	if len(doc.Classifications) == 0 {
		t.Fatal("Embedded policy file declares no classifications")
	}
}
