// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core wires the segmentation stages into one pipeline:
// normalize, detect, score, reconcile, build clauses, detect anomalies,
// compute metrics and events, gate review.
package core

import (
	"sort"

	"clause-scan/internal/anomaly"
	"clause-scan/internal/clauses"
	"clause-scan/internal/config"
	"clause-scan/internal/detectors"
	"clause-scan/internal/observability"
	"clause-scan/internal/pageindex"
	"clause-scan/internal/reconcile"
	"clause-scan/internal/scorer"
	"clause-scan/internal/segment"
)

// Segmenter runs the pipeline. It holds no per-run state, so one Segmenter
// may serve many documents concurrently.
type Segmenter struct {
	detectors []detectors.Detector
	observer  *observability.StandardObserver
}

// NewSegmenter builds a Segmenter with the full detector set. The observer
// may be nil.
func NewSegmenter(observer *observability.StandardObserver) *Segmenter {
	return &Segmenter{
		detectors: detectors.All(),
		observer:  observer,
	}
}

// Segment runs one document through the pipeline and returns the result
// aggregate. It never fails: degenerate inputs degrade to low-confidence
// results or a review verdict instead of errors.
func (s *Segmenter) Segment(rawText string, pages []segment.Page, opts config.Options) *segment.SegmentationResult {
	return s.SegmentWithRecorder(rawText, pages, opts, observability.NewEventRecorder())
}

// SegmentWithRecorder is Segment with a caller-supplied event recorder,
// which makes the emitted audit trail reproducible in tests.
func (s *Segmenter) SegmentWithRecorder(rawText string, pages []segment.Page, opts config.Options, rec *observability.EventRecorder) *segment.SegmentationResult {
	finish := s.observer.StartTiming("segmenter", "segment")

	text := segment.NormalizeText(rawText)
	pageIdx := pageindex.Build(pages)

	cands := detectors.DetectAll(text, s.detectors)
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].CharOffset < cands[j].CharOffset
	})

	scored := scorer.New(scorer.Options{
		OCRUsed:           opts.OCRUsed,
		OCRLowConfPenalty: opts.OCRLowConfPenalty,
	}).Score(cands, text)

	accepted, suppressed := reconcile.Reconcile(scored, reconcile.Options{
		OverlapWindow:   opts.OverlapWindow,
		MinBoundaryGap:  opts.MinBoundaryGap,
		AcceptThreshold: opts.AcceptThreshold,
	})

	built := clauses.NewBuilder(pageIdx).Build(accepted, text)

	anomalyOpts := anomaly.Options{
		MinUnheadedBlockSize:     opts.MinUnheadedBlockSize,
		MinClauseSize:            opts.MinClauseSize,
		MaxShortClauseRatio:      opts.MaxShortClauseRatio,
		LargeDocPages:            opts.LargeDocPages,
		MinBoundariesForLargeDoc: opts.MinBoundariesForLargeDoc,
		ReviewThreshold:          opts.ReviewThreshold,
		MaxLowConfRatio:          opts.MaxLowConfRatio,
	}
	annotated, anomalies := anomaly.Detect(built, pageIdx.PageCount(), anomalyOpts)

	rec.Record(segment.EventBoundaryDetected, map[string]any{
		"candidate_count":      len(cands),
		"segmentation_version": opts.SegmentationVersion,
	})
	rec.Record(segment.EventBoundariesAccepted, map[string]any{
		"accepted_count": len(accepted),
	})
	rec.Record(segment.EventBoundariesSuppressed, map[string]any{
		"suppressed_count": len(suppressed),
	})
	for _, a := range anomalies {
		rec.Record(segment.EventAnomalyDetected, map[string]any{
			"type":     string(a.Type),
			"at":       a.At,
			"severity": string(a.Severity),
		})
	}

	needsReview := anomaly.NeedsReview(anomaly.GateInput{
		Clauses:       annotated,
		Anomalies:     anomalies,
		PageCount:     pageIdx.PageCount(),
		OCRUsed:       opts.OCRUsed,
		OCRConfidence: opts.OCRConfidence,
	}, anomalyOpts)

	result := &segment.SegmentationResult{
		Clauses: annotated,
		Metrics: segment.Metrics{
			CandidateCount:   len(cands),
			AcceptedCount:    len(accepted),
			SuppressedCount:  len(suppressed),
			MeanConfBoundary: meanScore(accepted),
			OCRUsed:          opts.OCRUsed,
		},
		Anomalies:   anomalies,
		Events:      rec.Events(),
		NeedsReview: needsReview,
	}

	finish(true, map[string]any{
		"candidate_count": len(cands),
		"accepted_count":  len(accepted),
		"anomaly_count":   len(anomalies),
		"needs_review":    needsReview,
	})
	return result
}

// meanScore averages the accepted candidates' context-adjusted scores. The
// clause records carry their own re-adjusted confidences; metrics
// deliberately report the candidate-level mean.
func meanScore(accepted []segment.Candidate) float64 {
	if len(accepted) == 0 {
		return 0
	}
	sum := 0.0
	for _, c := range accepted {
		sum += c.Score
	}
	return sum / float64(len(accepted))
}
