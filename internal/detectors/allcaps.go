// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detectors

import (
	"regexp"
	"strings"

	"clause-scan/internal/segment"
)

// boilerplateTerms are headings that legal contracts reliably use for major
// sections; their presence strengthens an all-caps boundary.
var boilerplateTerms = []string{"DEFINITIONS", "TERMS", "CONDITIONS", "AGREEMENT"}

// AllCapsDetector finds whole lines of 3-100 uppercase letters, spaces and
// the /&- punctuation that appears in contract headings.
type AllCapsDetector struct {
	pattern *regexp.Regexp
}

func NewAllCapsDetector() *AllCapsDetector {
	return &AllCapsDetector{
		pattern: regexp.MustCompile(`^[A-Z][A-Z /&\-]{2,99}$`),
	}
}

func (d *AllCapsDetector) Name() string {
	return "all_caps_heading"
}

func (d *AllCapsDetector) Detect(text string) []segment.Candidate {
	var out []segment.Candidate
	for _, ln := range scanLines(text) {
		if !d.pattern.MatchString(ln.text) {
			continue
		}

		score := 0.7
		switch n := len(ln.text); {
		case n > 80:
			score -= 0.2
		case n < 5:
			score -= 0.1
		case n >= 10 && n <= 50:
			score += 0.1
		}
		for _, term := range boilerplateTerms {
			if strings.Contains(ln.text, term) {
				score += 0.1
				break
			}
		}

		out = append(out, segment.Candidate{
			CharOffset:  ln.offset,
			LineIndex:   ln.index,
			Style:       segment.StyleAllCapsHeading,
			Detector:    d.Name(),
			Score:       segment.Clamp01(score),
			HeadingText: ln.text,
		})
	}
	return out
}
