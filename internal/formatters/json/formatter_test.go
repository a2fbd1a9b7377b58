// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"testing"

	"clause-scan/internal/formatters"
	"clause-scan/internal/segment"
)

func sampleResult() *segment.SegmentationResult {
	return &segment.SegmentationResult{
		Clauses: []segment.Clause{
			{
				Ordinal:            1,
				NormalizedLabel:    "1",
				HeadingText:        "DEFINITIONS",
				EndChar:            99,
				StartPage:          1,
				EndPage:            1,
				DetectedStyle:      segment.StyleNumberedDecimal,
				ConfidenceBoundary: 0.95,
				ConfidenceHeading:  0.9,
			},
		},
		Metrics: segment.Metrics{CandidateCount: 1, AcceptedCount: 1, MeanConfBoundary: 0.95},
		Events: []segment.Event{
			{Type: segment.EventBoundaryDetected, RunID: "run-1"},
		},
	}
}

func TestJSONFormatterRoundtrip(t *testing.T) {
	formatter := NewFormatter()
	output, err := formatter.Format(sampleResult(), formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded segment.SegmentationResult
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Clauses) != 1 {
		t.Fatalf("expected 1 clause, got %d", len(decoded.Clauses))
	}
	if decoded.Clauses[0].HeadingText != "DEFINITIONS" {
		t.Errorf("expected heading DEFINITIONS, got %q", decoded.Clauses[0].HeadingText)
	}
	if len(decoded.Events) != 0 {
		t.Errorf("expected events omitted without verbose, got %d", len(decoded.Events))
	}
}

func TestJSONFormatterVerboseKeepsEvents(t *testing.T) {
	formatter := NewFormatter()
	output, err := formatter.Format(sampleResult(), formatters.FormatterOptions{Verbose: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded segment.SegmentationResult
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Events) != 1 {
		t.Errorf("expected 1 event in verbose output, got %d", len(decoded.Events))
	}
}
