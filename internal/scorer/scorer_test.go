// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package scorer

import (
	"testing"

	"clause-scan/internal/segment"
)

func scoreEq(got, want float64) bool {
	diff := got - want
	return diff < 1e-9 && diff > -1e-9
}

func TestScoreLineStartBonus(t *testing.T) {
	text := "HEADING\nbody"
	s := New(Options{})

	cands := s.Score([]segment.Candidate{
		{CharOffset: 0, Style: segment.StyleSignature, Score: 0.5},
	}, text)
	// +0.15 for offset 0.
	if !scoreEq(cands[0].Score, 0.65) {
		t.Errorf("score = %v, want 0.65", cands[0].Score)
	}

	cands = s.Score([]segment.Candidate{
		{CharOffset: 8, Style: segment.StyleSignature, Score: 0.5},
	}, text)
	// Offset 8 follows the newline after HEADING.
	if !scoreEq(cands[0].Score, 0.65) {
		t.Errorf("score after newline = %v, want 0.65", cands[0].Score)
	}

	cands = s.Score([]segment.Candidate{
		{CharOffset: 9, Style: segment.StyleSignature, Score: 0.5},
	}, text)
	// Mid-line candidate gets no bonus.
	if !scoreEq(cands[0].Score, 0.5) {
		t.Errorf("mid-line score = %v, want 0.5", cands[0].Score)
	}
}

func TestScoreBlankLineSurroundBonus(t *testing.T) {
	text := "intro\n\nHEADING\n\nbody"
	s := New(Options{})
	cands := s.Score([]segment.Candidate{
		{CharOffset: 7, Style: segment.StyleSignature, Score: 0.5},
	}, text)
	// +0.15 line start, +0.15 blank line on both sides.
	if !scoreEq(cands[0].Score, 0.8) {
		t.Errorf("score = %v, want 0.8", cands[0].Score)
	}
}

func TestScoreHeadingStyleBonus(t *testing.T) {
	text := "HEADING TEXT HERE\nbody"
	s := New(Options{})
	cands := s.Score([]segment.Candidate{
		{CharOffset: 0, Style: segment.StyleAllCapsHeading, Score: 0.5},
		{CharOffset: 0, Style: segment.StyleTitleCase, Score: 0.5},
		{CharOffset: 0, Style: segment.StyleBullet, Score: 0.5},
	}, text)
	// All-caps and title-case get +0.2 on top of the +0.15 line start.
	if !scoreEq(cands[0].Score, 0.85) {
		t.Errorf("all-caps score = %v, want 0.85", cands[0].Score)
	}
	if !scoreEq(cands[1].Score, 0.85) {
		t.Errorf("title-case score = %v, want 0.85", cands[1].Score)
	}
	if !scoreEq(cands[2].Score, 0.65) {
		t.Errorf("bullet score = %v, want 0.65", cands[2].Score)
	}
}

func TestScoreNumberedLabelBonus(t *testing.T) {
	text := "1. DEFINITIONS\nbody"
	s := New(Options{})
	cands := s.Score([]segment.Candidate{
		{CharOffset: 0, Style: segment.StyleNumberedDecimal, NumberLabel: "1.", Score: 0.5},
		{CharOffset: 0, Style: segment.StyleNumberedDecimal, Score: 0.5},
	}, text)
	if !scoreEq(cands[0].Score, 0.8) {
		t.Errorf("labeled score = %v, want 0.8", cands[0].Score)
	}
	// Missing label, no bonus.
	if !scoreEq(cands[1].Score, 0.65) {
		t.Errorf("unlabeled score = %v, want 0.65", cands[1].Score)
	}
}

func TestScoreOCRPenalty(t *testing.T) {
	text := "HEADING\nbody"
	s := New(Options{OCRUsed: true, OCRLowConfPenalty: 0.2})
	cands := s.Score([]segment.Candidate{
		{CharOffset: 0, Style: segment.StyleSignature, Score: 0.5},
	}, text)
	// +0.15 line start, -0.2 OCR penalty.
	if !scoreEq(cands[0].Score, 0.45) {
		t.Errorf("score = %v, want 0.45", cands[0].Score)
	}
}

func TestScoreClamped(t *testing.T) {
	text := "intro\n\n1. DEFINITIONS\n\nbody"
	s := New(Options{})
	cands := s.Score([]segment.Candidate{
		{CharOffset: 7, Style: segment.StyleNumberedDecimal, NumberLabel: "1.", Score: 0.9},
	}, text)
	if cands[0].Score != 1.0 {
		t.Errorf("score = %v, want clamp to 1.0", cands[0].Score)
	}

	s = New(Options{OCRUsed: true, OCRLowConfPenalty: 0.9})
	cands = s.Score([]segment.Candidate{
		{CharOffset: 9999, Style: segment.StyleBullet, Score: 0.1},
	}, text)
	if cands[0].Score != 0.0 {
		t.Errorf("score = %v, want clamp to 0.0", cands[0].Score)
	}
}

func TestScorePreservesOrderAndInput(t *testing.T) {
	text := "HEADING\nbody"
	in := []segment.Candidate{
		{CharOffset: 0, Style: segment.StyleSignature, Score: 0.5},
		{CharOffset: 8, Style: segment.StyleBullet, Score: 0.4},
	}
	out := New(Options{}).Score(in, text)
	if len(out) != 2 || out[0].CharOffset != 0 || out[1].CharOffset != 8 {
		t.Fatalf("order not preserved: %+v", out)
	}
	// Input slice stays untouched.
	if !scoreEq(in[0].Score, 0.5) {
		t.Errorf("input mutated: %v", in[0].Score)
	}
}
