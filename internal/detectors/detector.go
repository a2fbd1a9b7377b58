// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package detectors holds the independent boundary pattern scanners. Each
// detector walks the same normalized text on its own and proposes scored
// candidates; nothing here compares candidates to each other, that is the
// reconciler's job.
package detectors

import (
	"strings"

	"clause-scan/internal/segment"
)

// Detector scans normalized document text and proposes boundary candidates.
// Detectors are order-independent; their merged output is sorted by char
// offset before scoring.
type Detector interface {
	Name() string
	Detect(text string) []segment.Candidate
}

// All returns the full detector set in registry order.
func All() []Detector {
	return []Detector{
		NewNumberedDetector(),
		NewAllCapsDetector(),
		NewTitleCaseDetector(),
		NewBulletDetector(),
		NewExhibitDetector(),
		NewSignatureDetector(),
	}
}

// DetectAll runs every detector and returns the merged candidate list,
// unsorted.
func DetectAll(text string, dets []Detector) []segment.Candidate {
	var out []segment.Candidate
	for _, d := range dets {
		out = append(out, d.Detect(text)...)
	}
	return out
}

// line is one physical line of the normalized text together with its char
// offset and 0-based index.
type line struct {
	index  int
	offset int
	text   string
}

// scanLines splits normalized text into lines with offsets. Offsets point
// at the first char of each line in the normalized coordinate system.
func scanLines(text string) []line {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	lines := make([]line, 0, len(parts))
	offset := 0
	for i, part := range parts {
		lines = append(lines, line{index: i, offset: offset, text: part})
		offset += len(part) + 1
	}
	return lines
}

// lengthPenalty applies the shared heading-length rule: very short or very
// long headings are weak boundary evidence.
func lengthPenalty(heading string) float64 {
	if n := len(heading); n < 10 || n > 100 {
		return -0.1
	}
	return 0
}

func startsUpper(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}
