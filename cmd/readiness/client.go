// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lighthouse-sre/readiness/services/orchestrator/datatypes"
)

// apiClient talks to the readiness orchestrator over HTTP.
type apiClient struct {
	baseURL string
	http    *http.Client
}

// newAPIClient builds a client for the given server. Model-backed calls can
// take a while, so the timeout is generous.
func newAPIClient(baseURL string) *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 5 * time.Minute},
	}
}

// apiError is an inline error payload from the server. The pipeline reports
// domain misses with HTTP 200 and an "error" field, so every response must
// be checked for it.
type apiError struct {
	Error string `json:"error"`
}

func (c *apiClient) decode(resp *http.Response, out any) error {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return fmt.Errorf("%s", apiErr.Error)
	}
	return json.Unmarshal(body, out)
}

// Ping checks connectivity with the server.
func (c *apiClient) Ping(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/ping", nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	var out struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := c.decode(resp, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// UploadDiagram uploads an architecture diagram and returns its file token.
func (c *apiClient) UploadDiagram(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload-diagram", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	var out struct {
		FileID   string `json:"fileId"`
		Filename string `json:"filename"`
	}
	if err := c.decode(resp, &out); err != nil {
		return "", err
	}
	return out.FileID, nil
}

// AnalyzeSystem runs the architecture analysis stage.
func (c *apiClient) AnalyzeSystem(ctx context.Context, fileID string, metadata datatypes.ProjectMetadata) (string, *datatypes.SystemAnalysis, error) {
	body, err := json.Marshal(datatypes.AnalysisRequest{FileID: fileID, Metadata: metadata})
	if err != nil {
		return "", nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/analyze-system", bytes.NewReader(body))
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", nil, err
	}
	var out struct {
		AnalysisID string                    `json:"analysisId"`
		Result     *datatypes.SystemAnalysis `json:"result"`
	}
	if err := c.decode(resp, &out); err != nil {
		return "", nil, err
	}
	return out.AnalysisID, out.Result, nil
}

// AnalyzeDestructiveTests runs the chaos plan generation stage.
func (c *apiClient) AnalyzeDestructiveTests(ctx context.Context, systemAnalysisID string, metadata datatypes.ProjectMetadata) (string, *datatypes.ChaosTestingPlan, error) {
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return "", nil, err
	}
	form := url.Values{
		"system_analysis_id": {systemAnalysisID},
		"metadata_json":      {string(metadataJSON)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/analyze-destructive-tests",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", nil, err
	}
	var out struct {
		AnalysisID string                      `json:"analysisId"`
		Result     *datatypes.ChaosTestingPlan `json:"result"`
	}
	if err := c.decode(resp, &out); err != nil {
		return "", nil, err
	}
	return out.AnalysisID, out.Result, nil
}

// GeneratePRR composes the production readiness review document.
func (c *apiClient) GeneratePRR(ctx context.Context, systemAnalysisID, destructiveTestingID string, metadata datatypes.ProjectMetadata) (string, *datatypes.PRRDocument, error) {
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return "", nil, err
	}
	form := url.Values{
		"system_analysis_id":     {systemAnalysisID},
		"destructive_testing_id": {destructiveTestingID},
		"metadata_json":          {string(metadataJSON)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate-prr",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", nil, err
	}
	var out struct {
		DocumentID string                 `json:"documentId"`
		Document   *datatypes.PRRDocument `json:"document"`
	}
	if err := c.decode(resp, &out); err != nil {
		return "", nil, err
	}
	return out.DocumentID, out.Document, nil
}

// DownloadPRR resolves a document's download descriptor.
func (c *apiClient) DownloadPRR(ctx context.Context, documentID, format string) (string, error) {
	endpoint := fmt.Sprintf("%s/api/download-prr/%s?format=%s", c.baseURL, url.PathEscape(documentID), url.QueryEscape(format))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	var out struct {
		DocumentURL string `json:"documentUrl"`
		Format      string `json:"format"`
	}
	if err := c.decode(resp, &out); err != nil {
		return "", err
	}
	return out.DocumentURL, nil
}
