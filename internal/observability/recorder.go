// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"time"

	"github.com/google/uuid"

	"clause-scan/internal/segment"
)

// EventRecorder accumulates the append-only audit trail for one
// segmentation run. Every event carries the same run id.
type EventRecorder struct {
	runID  string
	now    func() time.Time
	events []segment.Event
}

// NewEventRecorder creates a recorder with a fresh run id and wall-clock
// timestamps.
func NewEventRecorder() *EventRecorder {
	return NewEventRecorderAt(uuid.NewString(), time.Now)
}

// NewEventRecorderAt creates a recorder with a fixed run id and clock.
// Callers that need reproducible event lists inject both.
func NewEventRecorderAt(runID string, now func() time.Time) *EventRecorder {
	return &EventRecorder{runID: runID, now: now}
}

// RunID returns the id stamped on every event of this run.
func (r *EventRecorder) RunID() string {
	return r.runID
}

// Record appends one event.
func (r *EventRecorder) Record(eventType segment.EventType, detail map[string]any) {
	r.events = append(r.events, segment.Event{
		Type:      eventType,
		RunID:     r.runID,
		Timestamp: r.now(),
		Detail:    detail,
	})
}

// Events returns the recorded trail in emission order.
func (r *EventRecorder) Events() []segment.Event {
	return r.events
}
