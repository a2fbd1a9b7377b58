// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package anomaly runs the structural checks over finalized clauses and
// owns the review-gating policy. Gate and checks live together because they
// must agree on thresholds.
package anomaly

import (
	"fmt"
	"sort"
	"strings"

	"clause-scan/internal/numbering"
	"clause-scan/internal/segment"
)

// Options are the anomaly and review thresholds.
type Options struct {
	// MinUnheadedBlockSize is the span length above which a heading-less
	// clause is suspicious.
	MinUnheadedBlockSize int
	// MinClauseSize is the span length below which a clause counts as short.
	MinClauseSize int
	// MaxShortClauseRatio is the tolerated fraction of short clauses.
	MaxShortClauseRatio float64
	// LargeDocPages is the page count from which a document is "large".
	LargeDocPages int
	// MinBoundariesForLargeDoc is the minimum clause count expected of a
	// large document.
	MinBoundariesForLargeDoc int
	// ReviewThreshold is the boundary confidence below which a clause is
	// low-confidence.
	ReviewThreshold float64
	// MaxLowConfRatio is the tolerated fraction of low-confidence clauses.
	MaxLowConfRatio float64
}

// ocrReviewConfidence is the OCR confidence below which an OCR-sourced
// document always goes to review.
const ocrReviewConfidence = 0.6

// Detect runs all nine checks and returns the annotated clause list (with
// per-clause anomaly flags attached) plus the anomaly findings. The input
// slice is not modified.
func Detect(in []segment.Clause, pageCount int, opts Options) ([]segment.Clause, []segment.Anomaly) {
	clauses := make([]segment.Clause, len(in))
	copy(clauses, in)

	var out []segment.Anomaly
	flag := func(i int, a segment.Anomaly) {
		out = append(out, a)
		if i >= 0 {
			clauses[i].AnomalyFlags = append(clauses[i].AnomalyFlags, a.Type)
		}
	}

	checkDuplicateNumbers(clauses, flag)
	checkSkippedNumbers(clauses, flag)
	checkUnheadedBlocks(clauses, opts, flag)
	checkShortClauses(clauses, opts, flag)
	checkPageRegressions(clauses, flag)
	checkMixedNumbering(clauses, flag)
	checkLowercaseHeadings(clauses, flag)
	checkSparseBoundaries(clauses, pageCount, opts, flag)
	checkLowConfidence(clauses, opts, flag)

	return clauses, out
}

type flagFunc func(clauseIndex int, a segment.Anomaly)

func checkDuplicateNumbers(clauses []segment.Clause, flag flagFunc) {
	seen := map[string]bool{}
	for i, c := range clauses {
		if c.NormalizedLabel == "" {
			continue
		}
		if seen[c.NormalizedLabel] {
			flag(i, segment.Anomaly{
				Type:        segment.AnomalyDuplicateNumber,
				At:          c.StartChar,
				Severity:    segment.SeverityMedium,
				Description: fmt.Sprintf("clause number %q appears more than once", c.NormalizedLabel),
			})
			continue
		}
		seen[c.NormalizedLabel] = true
	}
}

func checkSkippedNumbers(clauses []segment.Clause, flag flagFunc) {
	type numbered struct {
		index int
		value float64
	}
	var nums []numbered
	for i, c := range clauses {
		if !c.DetectedStyle.IsNumbered() || c.NumberLabel == "" {
			continue
		}
		nums = append(nums, numbered{index: i, value: numbering.NumericValue(c.NumberLabel)})
	}
	sort.SliceStable(nums, func(i, j int) bool { return nums[i].value < nums[j].value })

	for i := 1; i < len(nums); i++ {
		if nums[i].value-nums[i-1].value > 1 {
			c := clauses[nums[i].index]
			flag(nums[i].index, segment.Anomaly{
				Type:     segment.AnomalySkippedNumber,
				At:       c.StartChar,
				Severity: segment.SeverityLow,
				Description: fmt.Sprintf("clause numbering jumps from %v to %v",
					nums[i-1].value, nums[i].value),
			})
		}
	}
}

func checkUnheadedBlocks(clauses []segment.Clause, opts Options, flag flagFunc) {
	for i, c := range clauses {
		if c.HeadingText != "" {
			continue
		}
		if spanLength(c) > opts.MinUnheadedBlockSize {
			flag(i, segment.Anomaly{
				Type:        segment.AnomalyUnheadedBlock,
				At:          c.StartChar,
				Severity:    segment.SeverityMedium,
				Description: fmt.Sprintf("clause %d spans %d chars without a heading", c.Ordinal, spanLength(c)),
			})
		}
	}
}

func checkShortClauses(clauses []segment.Clause, opts Options, flag flagFunc) {
	if len(clauses) == 0 {
		return
	}
	var short []int
	for i, c := range clauses {
		if spanLength(c) < opts.MinClauseSize {
			short = append(short, i)
		}
	}
	if float64(len(short))/float64(len(clauses)) <= opts.MaxShortClauseRatio {
		return
	}
	for _, i := range short {
		c := clauses[i]
		flag(i, segment.Anomaly{
			Type:        segment.AnomalyExcessiveShortClause,
			At:          c.StartChar,
			Severity:    segment.SeverityLow,
			Description: fmt.Sprintf("clause %d is only %d chars long", c.Ordinal, spanLength(c)),
		})
	}
}

func checkPageRegressions(clauses []segment.Clause, flag flagFunc) {
	for i, c := range clauses {
		if c.StartPage > c.EndPage {
			flag(i, segment.Anomaly{
				Type:        segment.AnomalyPageRegression,
				At:          c.StartChar,
				Severity:    segment.SeverityHigh,
				Description: fmt.Sprintf("clause %d starts on page %d but ends on page %d", c.Ordinal, c.StartPage, c.EndPage),
			})
		}
	}
}

func checkMixedNumbering(clauses []segment.Clause, flag flagFunc) {
	var roman, decimal bool
	for _, c := range clauses {
		switch c.DetectedStyle {
		case segment.StyleNumberedRoman:
			roman = true
		case segment.StyleNumberedDecimal:
			decimal = true
		}
	}
	if roman && decimal {
		flag(-1, segment.Anomaly{
			Type:        segment.AnomalyMixedRomanDecimal,
			At:          0,
			Severity:    segment.SeverityMedium,
			Description: "document mixes roman and decimal clause numbering",
		})
	}
}

func checkLowercaseHeadings(clauses []segment.Clause, flag flagFunc) {
	for i, c := range clauses {
		h := c.HeadingText
		if len(h) > 3 && h == strings.ToLower(h) {
			flag(i, segment.Anomaly{
				Type:        segment.AnomalyAllLowercaseHeading,
				At:          c.StartChar,
				Severity:    segment.SeverityLow,
				Description: fmt.Sprintf("clause %d heading %q is entirely lowercase", c.Ordinal, h),
			})
		}
	}
}

func checkSparseBoundaries(clauses []segment.Clause, pageCount int, opts Options, flag flagFunc) {
	if sparse(len(clauses), pageCount, opts) {
		flag(-1, segment.Anomaly{
			Type:        segment.AnomalySparseBoundaries,
			At:          0,
			Severity:    segment.SeverityHigh,
			Description: fmt.Sprintf("document spans %d pages but only %d clauses were found", pageCount, len(clauses)),
		})
	}
}

func checkLowConfidence(clauses []segment.Clause, opts Options, flag flagFunc) {
	if len(clauses) == 0 {
		return
	}
	var low []int
	for i, c := range clauses {
		if c.ConfidenceBoundary < opts.ReviewThreshold {
			low = append(low, i)
		}
	}
	if float64(len(low))/float64(len(clauses)) <= opts.MaxLowConfRatio {
		return
	}
	for _, i := range low {
		c := clauses[i]
		flag(i, segment.Anomaly{
			Type:        segment.AnomalyLowConfBoundaries,
			At:          c.StartChar,
			Severity:    segment.SeverityMedium,
			Description: fmt.Sprintf("clause %d boundary confidence %.2f is below %.2f", c.Ordinal, c.ConfidenceBoundary, opts.ReviewThreshold),
		})
	}
}

// GateInput is everything the review gate looks at.
type GateInput struct {
	Clauses       []segment.Clause
	Anomalies     []segment.Anomaly
	PageCount     int
	OCRUsed       bool
	OCRConfidence float64
}

// NeedsReview decides whether a run requires human inspection: a sparse
// large document, any low-confidence-boundaries finding, any high-severity
// finding, or OCR input below the quality floor.
func NeedsReview(in GateInput, opts Options) bool {
	if sparse(len(in.Clauses), in.PageCount, opts) {
		return true
	}
	for _, a := range in.Anomalies {
		if a.Type == segment.AnomalyLowConfBoundaries || a.Severity == segment.SeverityHigh {
			return true
		}
	}
	return in.OCRUsed && in.OCRConfidence < ocrReviewConfidence
}

func sparse(clauseCount, pageCount int, opts Options) bool {
	return pageCount >= opts.LargeDocPages && clauseCount < opts.MinBoundariesForLargeDoc
}

// spanLength is the inclusive char length of a clause span.
func spanLength(c segment.Clause) int {
	return c.EndChar - c.StartChar + 1
}
