// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestLevelToSlog(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelDebug.toSlogLevel())
	assert.Equal(t, slog.LevelError, LevelError.toSlogLevel())
	// Unknown levels default to Info rather than failing.
	assert.Equal(t, slog.LevelInfo, Level(42).toSlogLevel())
}

// TestNew_FileLogging verifies file logging creates the dated JSON log file
// and records carry the service attribute.
func TestNew_FileLogging(t *testing.T) {
	dir := t.TempDir()

	logger := New(Config{
		Level:   LevelDebug,
		LogDir:  dir,
		Service: "cli",
		Quiet:   true,
	})
	logger.Info("diagram uploaded", "file", "diagram.png")
	require.NoError(t, logger.Close())

	filename := "cli_" + time.Now().Format("2006-01-02") + ".log"
	data, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.SplitN(string(data), "\n", 2)[0]), &entry))
	assert.Equal(t, "diagram uploaded", entry["msg"])
	assert.Equal(t, "diagram.png", entry["file"])
	assert.Equal(t, "cli", entry["service"])
}

// TestNew_LevelFiltering verifies messages below the configured level are
// discarded.
func TestNew_LevelFiltering(t *testing.T) {
	dir := t.TempDir()

	logger := New(Config{
		Level:   LevelWarn,
		LogDir:  dir,
		Service: "orchestrator",
		Quiet:   true,
	})
	logger.Debug("noise")
	logger.Info("more noise")
	logger.Warn("kept")
	require.NoError(t, logger.Close())

	filename := "orchestrator_" + time.Now().Format("2006-01-02") + ".log"
	data, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)

	content := string(data)
	assert.NotContains(t, content, "noise")
	assert.Contains(t, content, "kept")
}

func TestNew_CreatesLogDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	logger := New(Config{LogDir: dir, Service: "cli", Quiet: true})
	logger.Info("hello")
	require.NoError(t, logger.Close())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

// TestWith_SharesFileHandle verifies derived loggers keep writing to the
// parent's file.
func TestWith_SharesFileHandle(t *testing.T) {
	dir := t.TempDir()

	logger := New(Config{LogDir: dir, Service: "cli", Quiet: true})
	child := logger.With("request_id", "abc-123")
	child.Info("stage complete")
	require.NoError(t, logger.Close())

	filename := "cli_" + time.Now().Format("2006-01-02") + ".log"
	data, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Contains(t, string(data), "abc-123")
}

func TestClose_Idempotent(t *testing.T) {
	logger := New(Config{LogDir: t.TempDir(), Service: "cli", Quiet: true})

	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())
}

func TestDefault(t *testing.T) {
	logger := Default()
	require.NotNil(t, logger)
	assert.Equal(t, LevelInfo, logger.config.Level)
	assert.Equal(t, "readiness", logger.config.Service)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".readiness/logs"), expandPath("~/.readiness/logs"))
	assert.Equal(t, "/var/log/readiness", expandPath("/var/log/readiness"))
	assert.Equal(t, "", expandPath(""))
}
