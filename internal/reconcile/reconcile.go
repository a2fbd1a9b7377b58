// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package reconcile collapses the merged candidate stream into the final
// accepted boundary set: overlapping clusters keep their best member,
// boundaries too close to an accepted one are dropped, and weak scores are
// filtered out.
package reconcile

import (
	"sort"

	"clause-scan/internal/segment"
)

// Options are the reconciliation knobs, all in chars or score units.
type Options struct {
	// OverlapWindow is the lookahead distance for clustering candidates
	// that describe the same physical boundary.
	OverlapWindow int
	// MinBoundaryGap is the minimum char distance between two accepted
	// boundaries.
	MinBoundaryGap int
	// AcceptThreshold is the minimum context-adjusted score a candidate
	// needs to survive.
	AcceptThreshold float64
}

// Reconcile runs the three passes over context-scored candidates and
// returns (accepted, suppressed). The suppressed list records only the
// overlap-cluster losers from pass 1; min-gap and threshold drops are
// excluded from both lists. Input order does not matter, candidates are
// sorted by offset first.
func Reconcile(cands []segment.Candidate, opts Options) ([]segment.Candidate, []segment.Candidate) {
	sorted := make([]segment.Candidate, len(cands))
	copy(sorted, cands)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CharOffset < sorted[j].CharOffset
	})

	survivors, suppressed := suppressOverlaps(sorted, opts.OverlapWindow)
	spaced := enforceMinGap(survivors, opts.MinBoundaryGap)
	accepted := filterByThreshold(spaced, opts.AcceptThreshold)
	return accepted, suppressed
}

// suppressOverlaps scans left to right; for each unconsumed candidate it
// gathers every candidate within window chars ahead and keeps the single
// highest-scoring member of that cluster (ties keep the earliest).
func suppressOverlaps(sorted []segment.Candidate, window int) ([]segment.Candidate, []segment.Candidate) {
	var kept, suppressed []segment.Candidate
	consumed := make([]bool, len(sorted))

	for i := range sorted {
		if consumed[i] {
			continue
		}
		cluster := []int{i}
		for j := i + 1; j < len(sorted); j++ {
			if consumed[j] {
				continue
			}
			if sorted[j].CharOffset-sorted[i].CharOffset > window {
				break
			}
			cluster = append(cluster, j)
		}

		best := cluster[0]
		for _, idx := range cluster[1:] {
			if sorted[idx].Score > sorted[best].Score {
				best = idx
			}
		}
		for _, idx := range cluster {
			consumed[idx] = true
			if idx == best {
				kept = append(kept, sorted[idx])
			} else {
				suppressed = append(suppressed, sorted[idx])
			}
		}
	}
	return kept, suppressed
}

// enforceMinGap greedily accepts the first survivor and then each candidate
// at least gap chars past the last accepted one. Dropped candidates are not
// reported anywhere; only pass-1 losers count as suppressed.
func enforceMinGap(cands []segment.Candidate, gap int) []segment.Candidate {
	var out []segment.Candidate
	for _, c := range cands {
		if len(out) == 0 || c.CharOffset-out[len(out)-1].CharOffset >= gap {
			out = append(out, c)
		}
	}
	return out
}

func filterByThreshold(cands []segment.Candidate, threshold float64) []segment.Candidate {
	var out []segment.Candidate
	for _, c := range cands {
		if c.Score >= threshold {
			out = append(out, c)
		}
	}
	return out
}
