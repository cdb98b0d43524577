// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package store provides the process-lifetime result stores backing the
// readiness pipeline.
//
// # Description
//
// Every pipeline stage writes its output here under a freshly generated
// token and later stages read their inputs back by token. The stores are
// plain mutex-guarded maps: no eviction, no persistence, no TTL. Entries
// live until the process exits, which is a deliberate property of the
// system: an uploaded diagram or a finished analysis can be referenced at
// any later point in the process lifetime.
//
// Absence of a referenced token is a terminal condition for the requesting
// stage. Callers report it and stop; nothing is retried or reconstructed.
//
// # Thread Safety
//
// All methods are safe for concurrent use.
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/lighthouse-sre/readiness/services/orchestrator/datatypes"
)

// SizeReporter receives the entry count of a store after every insert.
// The observability package implements it to keep store gauges current.
type SizeReporter func(store string, entries int)

// UploadStore holds uploaded diagram files in volatile memory.
type UploadStore struct {
	mu     sync.RWMutex
	files  map[string]datatypes.UploadedFile
	clock  Clock
	report SizeReporter
}

// NewUploadStore creates an empty upload store.
func NewUploadStore(clock Clock, report SizeReporter) *UploadStore {
	return &UploadStore{
		files:  make(map[string]datatypes.UploadedFile),
		clock:  clock,
		report: report,
	}
}

// Put stores a file under a freshly generated token and returns the token.
// The receipt timestamp is set here; the caller's UploadedAt is overwritten.
func (s *UploadStore) Put(file datatypes.UploadedFile) string {
	id := uuid.NewString()
	file.ID = id
	file.UploadedAt = s.clock.Now()

	s.mu.Lock()
	s.files[id] = file
	n := len(s.files)
	s.mu.Unlock()

	if s.report != nil {
		s.report("uploads", n)
	}
	return id
}

// Get returns the file stored under id, if any.
func (s *UploadStore) Get(id string) (datatypes.UploadedFile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.files[id]
	return f, ok
}

// ResultStore holds analysis records and composed PRR documents.
type ResultStore struct {
	mu        sync.RWMutex
	analyses  map[string]datatypes.AnalysisRecord
	documents map[string]datatypes.DocumentRecord
	clock     Clock
	report    SizeReporter
}

// NewResultStore creates an empty result store.
func NewResultStore(clock Clock, report SizeReporter) *ResultStore {
	return &ResultStore{
		analyses:  make(map[string]datatypes.AnalysisRecord),
		documents: make(map[string]datatypes.DocumentRecord),
		clock:     clock,
		report:    report,
	}
}

// PutAnalysis stores an analysis record and returns its token.
func (s *ResultStore) PutAnalysis(rec datatypes.AnalysisRecord) string {
	id := uuid.NewString()
	rec.CreatedAt = s.clock.Now()

	s.mu.Lock()
	s.analyses[id] = rec
	n := len(s.analyses)
	s.mu.Unlock()

	if s.report != nil {
		s.report("analyses", n)
	}
	return id
}

// GetAnalysis returns the analysis record stored under id, if any.
func (s *ResultStore) GetAnalysis(id string) (datatypes.AnalysisRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.analyses[id]
	return rec, ok
}

// PutDocument stores a PRR document record and returns its token.
func (s *ResultStore) PutDocument(rec datatypes.DocumentRecord) string {
	id := uuid.NewString()
	rec.CreatedAt = s.clock.Now()

	s.mu.Lock()
	s.documents[id] = rec
	n := len(s.documents)
	s.mu.Unlock()

	if s.report != nil {
		s.report("documents", n)
	}
	return id
}

// GetDocument returns the document record stored under id, if any.
func (s *ResultStore) GetDocument(id string) (datatypes.DocumentRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.documents[id]
	return rec, ok
}
