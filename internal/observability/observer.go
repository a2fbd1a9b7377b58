// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package observability carries per-stage timing/diagnostic records for the
// operator and the per-run audit-trail events for the caller. The two are
// separate surfaces: operator records go to a writer, audit events travel
// inside the SegmentationResult.
package observability

import (
	"encoding/json"
	"io"
	"time"
)

// StandardObserver implements observability for all pipeline stages.
type StandardObserver struct {
	level  Level
	writer io.Writer
}

type Level int

const (
	LevelOff     Level = 0
	LevelMetrics Level = 1
	LevelDebug   Level = 2
)

// NewStandardObserver creates the observability component.
func NewStandardObserver(level Level, writer io.Writer) *StandardObserver {
	return &StandardObserver{level: level, writer: writer}
}

// StartTiming returns a function to complete timing for one stage.
func (o *StandardObserver) StartTiming(component, operation string) func(success bool, metadata map[string]any) {
	start := time.Now()

	return func(success bool, metadata map[string]any) {
		o.LogOperation(Record{
			Component:  component,
			Operation:  operation,
			DurationMs: time.Since(start).Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		})
	}
}

// LogOperation writes one diagnostic record. Only debug level emits JSON.
func (o *StandardObserver) LogOperation(rec Record) {
	if o == nil || o.level != LevelDebug || o.writer == nil {
		return
	}
	json.NewEncoder(o.writer).Encode(rec)
}

// Record is one diagnostic operation record.
type Record struct {
	Component  string         `json:"component"`
	Operation  string         `json:"operation"`
	DurationMs int64          `json:"duration_ms,omitempty"`
	Success    bool           `json:"success"`
	Error      string         `json:"error,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}
