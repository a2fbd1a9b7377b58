// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package segment

import "time"

// Style identifies how a boundary was recognized.
type Style string

const (
	StyleNumberedDecimal Style = "numbered_decimal"
	StyleNumberedRoman   Style = "numbered_roman"
	StyleNumberedAlpha   Style = "numbered_alpha"
	StyleAllCapsHeading  Style = "all_caps_heading"
	StyleTitleCase       Style = "title_case_heading"
	StyleBullet          Style = "bullet_point"
	StyleExhibit         Style = "exhibit_marker"
	StyleSignature       Style = "signature_anchor"
	StyleUnheadedBlock   Style = "unheaded_block"
)

// IsNumbered reports whether the style carries a sequence number label.
func (s Style) IsNumbered() bool {
	switch s {
	case StyleNumberedDecimal, StyleNumberedRoman, StyleNumberedAlpha:
		return true
	}
	return false
}

// Candidate is an unconfirmed boundary proposal produced by a single
// detector. Candidates are created by detectors, re-scored by the context
// scorer, and consumed by the reconciler; they are never persisted.
type Candidate struct {
	CharOffset  int
	LineIndex   int
	Style       Style
	Detector    string
	Score       float64
	NumberLabel string
	HeadingText string
}

// Clause is a finalized boundary span over the normalized text.
// StartChar/EndChar are inclusive char offsets; the last clause always ends
// at len(text)-1 so that clauses cover the whole document with no gaps.
type Clause struct {
	Ordinal            int           `json:"ordinal"`
	NumberLabel        string        `json:"number_label,omitempty"`
	NormalizedLabel    string        `json:"normalized_label,omitempty"`
	HeadingText        string        `json:"heading_text,omitempty"`
	StartChar          int           `json:"start_char"`
	EndChar            int           `json:"end_char"`
	StartPage          int           `json:"start_page"`
	EndPage            int           `json:"end_page"`
	DetectedStyle      Style         `json:"detected_style"`
	ConfidenceBoundary float64       `json:"confidence_boundary"`
	ConfidenceHeading  float64       `json:"confidence_heading"`
	AnomalyFlags       []AnomalyType `json:"anomaly_flags,omitempty"`
	TextSnippet        string        `json:"text_snippet,omitempty"`
}

// Severity grades an anomaly for the review gate.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// AnomalyType enumerates the structural checks run over finalized clauses.
type AnomalyType string

const (
	AnomalyDuplicateNumber      AnomalyType = "duplicate_number"
	AnomalySkippedNumber        AnomalyType = "skipped_number"
	AnomalyUnheadedBlock        AnomalyType = "unheaded_block"
	AnomalyExcessiveShortClause AnomalyType = "excessive_short_clause"
	AnomalyPageRegression       AnomalyType = "page_regression"
	AnomalyMixedRomanDecimal    AnomalyType = "mixed_roman_decimal"
	AnomalyAllLowercaseHeading  AnomalyType = "all_lowercase_heading"
	AnomalySparseBoundaries     AnomalyType = "sparse_boundaries"
	AnomalyLowConfBoundaries    AnomalyType = "low_confidence_boundaries"
)

// Anomaly is a structural inconsistency found in the finalized clause list.
// At is a char offset into the normalized text, or 0 for document-scoped
// findings.
type Anomaly struct {
	Type        AnomalyType `json:"type"`
	At          int         `json:"at"`
	Severity    Severity    `json:"severity"`
	Description string      `json:"description"`
}

// Metrics aggregates per-run counters. MeanConfBoundary averages the
// accepted candidates' scores, not the clauses' boundary confidences.
type Metrics struct {
	CandidateCount   int     `json:"candidate_count"`
	AcceptedCount    int     `json:"accepted_count"`
	SuppressedCount  int     `json:"suppressed_count"`
	MeanConfBoundary float64 `json:"mean_conf_boundary"`
	OCRUsed          bool    `json:"ocr_used"`
}

// EventType enumerates the audit-trail record kinds emitted per run.
type EventType string

const (
	EventBoundaryDetected     EventType = "boundary_detected"
	EventBoundariesAccepted   EventType = "boundaries_accepted"
	EventBoundariesSuppressed EventType = "boundaries_suppressed"
	EventAnomalyDetected      EventType = "anomaly_detected"
)

// Event is one append-only audit-trail record for a segmentation run.
type Event struct {
	Type      EventType      `json:"event"`
	RunID     string         `json:"run_id"`
	Timestamp time.Time      `json:"timestamp"`
	Detail    map[string]any `json:"detail,omitempty"`
}

// Page carries the caller-supplied character count for one document page,
// in page order. Counts come from the extraction stage and are not
// recomputed by the engine.
type Page struct {
	CharCount int `json:"char_count"`
}

// SegmentationResult is the sole output of a segmentation run. It is
// constructed once per invocation and never mutated afterwards.
type SegmentationResult struct {
	Clauses     []Clause  `json:"clauses"`
	Metrics     Metrics   `json:"metrics"`
	Anomalies   []Anomaly `json:"anomalies,omitempty"`
	Events      []Event   `json:"events,omitempty"`
	NeedsReview bool      `json:"needs_review"`
}

// Clamp01 bounds a confidence score to [0,1]. Every score adjustment in the
// pipeline passes through this before being stored.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
