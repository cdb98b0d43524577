// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

// Availability tiers a system can be classified into by the analyzer.
//
// The tier encodes the target availability the architecture supports:
// tier1 is 99.99%, tier2 is 99.9%, tier3 is 99.5%.
const (
	TierOne   = "tier1"
	TierTwo   = "tier2"
	TierThree = "tier3"
)

// Component is a single element identified in an architecture diagram.
type Component struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// Dependency is a directed edge between two components.
type Dependency struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type"`
}

// FailurePoint is a component whose loss disables dependent functionality.
type FailurePoint struct {
	Name   string `json:"name"`
	Impact string `json:"impact"`
}

// SystemAnalysis is the structured result of analyzing an architecture
// diagram. It is produced either by the vision model, by best-effort text
// extraction from a non-JSON model reply, or from the fixed fallback data
// when the model is unreachable.
//
// No schema validation is applied beyond JSON decoding: whatever structure
// the model returns for these fields is passed through to the caller as-is.
type SystemAnalysis struct {
	Components            []Component    `json:"components"`
	Dependencies          []Dependency   `json:"dependencies"`
	CriticalPaths         [][]string     `json:"criticalPaths"`
	SinglePointsOfFailure []FailurePoint `json:"singlePointsOfFailure"`
	Recommendations       []string       `json:"recommendations"`
	AvailabilityTier      string         `json:"availabilityTier"`
	TierJustification     string         `json:"tierJustification"`
}
