// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package services

import (
	"regexp"
	"strings"

	"github.com/lighthouse-sre/readiness/services/orchestrator/datatypes"
)

// jsonBlockPattern matches a fenced ```json code block and captures its body.
var jsonBlockPattern = regexp.MustCompile("```json\n([\\s\\S]*?)\n```")

// ExtractJSON pulls the JSON candidate out of a raw model reply.
//
// Three cases, tried in order:
//  1. A fenced ```json code block: its body is returned.
//  2. The whole trimmed reply starts with "{" and ends with "}": the reply
//     is returned as-is.
//  3. Anything else: the full reply is returned and left for json.Unmarshal
//     to reject, which routes the caller to plain-text extraction.
//
// The second return reports whether a fenced block was found, for logging.
func ExtractJSON(text string) (string, bool) {
	if m := jsonBlockPattern.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		return text, false
	}
	return text, false
}

// ParseTextAnalysis salvages a minimal analysis from a model reply that was
// not JSON. It looks for a "Components" marker, scans the following ten
// lines for "name: description" pairs, and returns an analysis holding
// whatever it found. Everything else is left empty except the tier, which
// defaults to tier2.
//
// The extraction is deliberately crude. A reply that defeats it still
// produces a valid, if empty, analysis rather than an error.
func ParseTextAnalysis(text string) *datatypes.SystemAnalysis {
	result := &datatypes.SystemAnalysis{
		Components:            []datatypes.Component{},
		Dependencies:          []datatypes.Dependency{},
		CriticalPaths:         [][]string{},
		SinglePointsOfFailure: []datatypes.FailurePoint{},
		Recommendations:       []string{},
		AvailabilityTier:      datatypes.TierTwo,
		TierJustification:     "Default justification based on text analysis",
	}

	_, after, found := strings.Cut(text, "Components")
	if !found {
		return result
	}

	lines := strings.Split(after, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}
	for _, line := range lines {
		if !strings.Contains(line, ":") || len(strings.TrimSpace(line)) <= 5 {
			continue
		}
		name, desc, _ := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		desc = strings.TrimSpace(desc)
		if name == "" || desc == "" {
			continue
		}
		result.Components = append(result.Components, datatypes.Component{
			Name:         name,
			Type:         "service",
			Description:  desc,
			Technologies: []string{},
		})
	}

	return result
}
