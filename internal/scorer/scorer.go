// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package scorer adjusts raw detector scores using surrounding-text signals
// and OCR-quality context. Scoring is a pure, order-independent map over
// candidates; it never compares candidates to each other.
package scorer

import (
	"strings"

	"clause-scan/internal/segment"
)

// blankWindow is how far (in chars) around a candidate the scorer looks for
// a blank line on each side.
const blankWindow = 200

// Options carries the OCR-quality context for one run.
type Options struct {
	OCRUsed bool
	// OCRLowConfPenalty is subtracted from every candidate when OCRUsed is
	// set; OCR noise makes every pattern match less trustworthy.
	OCRLowConfPenalty float64
}

// ContextScorer re-scores candidates in place against the normalized text.
type ContextScorer struct {
	opts Options
}

func New(opts Options) *ContextScorer {
	return &ContextScorer{opts: opts}
}

// Score returns the candidates with context-adjusted scores. Order is
// preserved; only the Score field changes.
func (s *ContextScorer) Score(cands []segment.Candidate, text string) []segment.Candidate {
	out := make([]segment.Candidate, len(cands))
	for i, c := range cands {
		c.Score = s.scoreOne(c, text)
		out[i] = c
	}
	return out
}

func (s *ContextScorer) scoreOne(c segment.Candidate, text string) float64 {
	score := c.Score

	if atLineStart(text, c.CharOffset) {
		score += 0.15
	}
	if blankLineBefore(text, c.CharOffset) && blankLineAfter(text, c.CharOffset) {
		score += 0.15
	}
	if c.Style == segment.StyleTitleCase || c.Style == segment.StyleAllCapsHeading {
		score += 0.2
	}
	if c.Style.IsNumbered() && c.NumberLabel != "" && sequenceLooksValid(c) {
		score += 0.15
	}
	if s.opts.OCRUsed {
		score -= s.opts.OCRLowConfPenalty
	}

	return segment.Clamp01(score)
}

// sequenceLooksValid will eventually cross-check a numbered candidate
// against its predecessors. TODO: wire the numbering comparator in once the
// reconciler exposes per-run ordering state; until then every labeled
// candidate passes.
func sequenceLooksValid(segment.Candidate) bool {
	return true
}

func atLineStart(text string, offset int) bool {
	if offset == 0 {
		return true
	}
	return offset <= len(text) && text[offset-1] == '\n'
}

func blankLineBefore(text string, offset int) bool {
	if offset > len(text) {
		offset = len(text)
	}
	start := offset - blankWindow
	if start < 0 {
		start = 0
	}
	return strings.Contains(text[start:offset], "\n\n")
}

func blankLineAfter(text string, offset int) bool {
	end := offset + blankWindow
	if end > len(text) {
		end = len(text)
	}
	if offset > len(text) {
		offset = len(text)
	}
	return strings.Contains(text[offset:end], "\n\n")
}
