// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Command readiness is the CLI client for the readiness review service.
//
// It drives the full review pipeline from a terminal: upload a diagram,
// analyze it, generate the chaos testing plan, and compose the PRR
// document. The server location comes from READINESS_SERVER_URL
// (default http://localhost:12300).
package main

import (
	"log/slog"
	"os"

	"github.com/lighthouse-sre/readiness/pkg/logging"
)

func main() {
	logger := logging.New(logging.Config{
		Level:   logging.LevelWarn,
		LogDir:  os.Getenv("READINESS_LOG_DIR"),
		Service: "cli",
	})
	defer logger.Close()
	slog.SetDefault(logger.Slog())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
