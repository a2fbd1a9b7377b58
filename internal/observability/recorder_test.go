// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"clause-scan/internal/segment"
)

func TestEventRecorderStampsRunIDAndOrder(t *testing.T) {
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r := NewEventRecorderAt("run-1", func() time.Time { return clock })

	r.Record(segment.EventBoundaryDetected, map[string]any{"candidate_count": 4})
	r.Record(segment.EventBoundariesAccepted, map[string]any{"accepted_count": 2})

	events := r.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Type != segment.EventBoundaryDetected || events[1].Type != segment.EventBoundariesAccepted {
		t.Errorf("event order = %v, %v", events[0].Type, events[1].Type)
	}
	for _, e := range events {
		if e.RunID != "run-1" {
			t.Errorf("event run id = %q, want run-1", e.RunID)
		}
		if !e.Timestamp.Equal(clock) {
			t.Errorf("event timestamp = %v, want %v", e.Timestamp, clock)
		}
	}
	if events[0].Detail["candidate_count"] != 4 {
		t.Errorf("detail = %v", events[0].Detail)
	}
}

func TestNewEventRecorderGeneratesRunID(t *testing.T) {
	a, b := NewEventRecorder(), NewEventRecorder()
	if a.RunID() == "" || a.RunID() == b.RunID() {
		t.Errorf("run ids not unique: %q vs %q", a.RunID(), b.RunID())
	}
}

func TestObserverDebugEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	o := NewStandardObserver(LevelDebug, &buf)
	finish := o.StartTiming("detectors", "detect")
	finish(true, map[string]any{"candidate_count": 3})

	out := buf.String()
	if !strings.Contains(out, `"component":"detectors"`) || !strings.Contains(out, `"success":true`) {
		t.Errorf("debug record = %q", out)
	}
}

func TestObserverMetricsLevelSilent(t *testing.T) {
	var buf bytes.Buffer
	o := NewStandardObserver(LevelMetrics, &buf)
	o.StartTiming("detectors", "detect")(true, nil)
	if buf.Len() != 0 {
		t.Errorf("metrics level wrote output: %q", buf.String())
	}
}

func TestObserverNilSafe(t *testing.T) {
	var o *StandardObserver
	o.LogOperation(Record{Component: "x"})
}
