// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

// PRRDocument is a Production Readiness Review: an ordered set of sections
// assessing a system's operational maturity before launch.
type PRRDocument struct {
	Title    string       `json:"title"`
	Version  string       `json:"version"`
	Date     string       `json:"date"`
	Sections []PRRSection `json:"sections"`
}

// PRRSection is one titled section of the review.
type PRRSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
