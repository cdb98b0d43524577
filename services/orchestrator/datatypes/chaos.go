// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

// ChaosTestingPlan is the resilience-testing plan derived from a system
// analysis. Its six sections walk from dependency risk through concrete
// experiments to blast-radius containment.
type ChaosTestingPlan struct {
	DependencyAnalysis     DependencyAnalysis     `json:"dependencyAnalysis"`
	SteadyStateDefinitions SteadyStateDefinitions `json:"steadyStateDefinitions"`
	Hypotheses             Hypotheses             `json:"hypotheses"`
	Experiments            Experiments            `json:"experiments"`
	Rumsfeld               RumsfeldAnalysis       `json:"rumsfeld"`
	BlastRadius            BlastRadius            `json:"blastRadius"`
}

// DependencyAnalysis lists the dependencies that warrant chaos testing.
type DependencyAnalysis struct {
	Summary      string             `json:"summary"`
	Dependencies []CriticalDependency `json:"dependencies"`
}

// CriticalDependency is one dependency worth testing, with its failure impact.
type CriticalDependency struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// SteadyStateDefinitions captures the normal-operation baselines that
// experiments are validated against.
type SteadyStateDefinitions struct {
	Summary string        `json:"summary"`
	States  []SteadyState `json:"states"`
}

// SteadyState is a single normal-operation metric range.
type SteadyState struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Metric      string `json:"metric"`
	Threshold   string `json:"threshold"`
}

// Hypotheses holds the test hypotheses for chaos scenarios.
type Hypotheses struct {
	Summary string       `json:"summary"`
	Items   []Hypothesis `json:"items"`
}

// Hypothesis is one testable resilience assumption.
type Hypothesis struct {
	Description  string `json:"description"`
	TestApproach string `json:"testApproach"`
}

// Experiments holds the prioritized chaos experiments.
type Experiments struct {
	Summary string            `json:"summary"`
	Items   []ChaosExperiment `json:"items"`
}

// ChaosExperiment is a single runnable experiment, including a ready-to-apply
// Litmus ChaosEngine manifest.
type ChaosExperiment struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Components     []string `json:"components"`
	ExpectedResult string   `json:"expectedResult"`
	LitmusConfig   string   `json:"litmusConfig"`
}

// RumsfeldAnalysis is the known/unknown failure-scenario matrix.
type RumsfeldAnalysis struct {
	Summary         string         `json:"summary"`
	Matrix          RumsfeldMatrix `json:"matrix"`
	Recommendations []string       `json:"recommendations"`
}

// RumsfeldMatrix buckets failure scenarios by how well they are understood.
type RumsfeldMatrix struct {
	KnownKnowns     []string `json:"knownKnowns"`
	KnownUnknowns   []string `json:"knownUnknowns"`
	UnknownUnknowns []string `json:"unknownUnknowns"`
}

// BlastRadius analyzes the impact scope of each experiment.
type BlastRadius struct {
	Summary  string                `json:"summary"`
	Analyses []BlastRadiusAnalysis `json:"analyses"`
}

// BlastRadiusAnalysis scopes one experiment's direct and indirect impact.
type BlastRadiusAnalysis struct {
	Test           string   `json:"test"`
	DirectImpact   []string `json:"directImpact"`
	IndirectImpact []string `json:"indirectImpact"`
	Containment    string   `json:"containment"`
}
