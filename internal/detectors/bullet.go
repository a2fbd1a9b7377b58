// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detectors

import (
	"regexp"
	"strings"

	"clause-scan/internal/segment"
)

// BulletDetector finds list-item lines: "(a)", "1)", "[i]", "- " and "•".
// Bullets are weak boundaries on their own and rely on the context scorer
// and reconciler to survive.
type BulletDetector struct {
	paren   *regexp.Regexp
	bracket *regexp.Regexp
	numeric *regexp.Regexp
	dash    *regexp.Regexp
	dot     *regexp.Regexp
}

func NewBulletDetector() *BulletDetector {
	return &BulletDetector{
		paren:   regexp.MustCompile(`^\(([a-zA-Z0-9]{1,3})\)\s+\S`),
		bracket: regexp.MustCompile(`^\[([a-zA-Z0-9]{1,3})\]\s+\S`),
		numeric: regexp.MustCompile(`^(\d{1,3})\)\s+\S`),
		dash:    regexp.MustCompile(`^-\s+\S`),
		dot:     regexp.MustCompile(`^•\s*\S`),
	}
}

func (d *BulletDetector) Name() string {
	return "bullet_point"
}

func (d *BulletDetector) Detect(text string) []segment.Candidate {
	var out []segment.Candidate
	for _, ln := range scanLines(text) {
		var label string
		matched := false

		switch {
		case d.paren.MatchString(ln.text):
			label = d.paren.FindStringSubmatch(ln.text)[1]
			matched = true
		case d.bracket.MatchString(ln.text):
			label = d.bracket.FindStringSubmatch(ln.text)[1]
			matched = true
		case d.numeric.MatchString(ln.text):
			label = d.numeric.FindStringSubmatch(ln.text)[1]
			matched = true
		case d.dash.MatchString(ln.text), d.dot.MatchString(ln.text):
			matched = true
		}
		if !matched {
			continue
		}

		score := 0.5
		// Explicitly delimited markers are slightly stronger than bare dashes.
		if strings.HasPrefix(ln.text, "•") || strings.HasPrefix(ln.text, "(") || strings.HasPrefix(ln.text, "[") {
			score += 0.05
		}

		out = append(out, segment.Candidate{
			CharOffset:  ln.offset,
			LineIndex:   ln.index,
			Style:       segment.StyleBullet,
			Detector:    d.Name(),
			Score:       segment.Clamp01(score),
			NumberLabel: label,
		})
	}
	return out
}
