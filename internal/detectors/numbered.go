// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detectors

import (
	"regexp"

	"clause-scan/internal/numbering"
	"clause-scan/internal/segment"
)

// NumberedDetector finds numbered section headings in three sub-patterns:
// decimal ("1.", "2.1"), roman ("I." through "XX.") and alphabetic ("a)").
// All three are anchored at line start and expect a heading of at most 120
// chars after the label.
type NumberedDetector struct {
	decimal *regexp.Regexp
	roman   *regexp.Regexp
	alpha   *regexp.Regexp
}

// NewNumberedDetector compiles the three sub-patterns once.
func NewNumberedDetector() *NumberedDetector {
	return &NumberedDetector{
		decimal: regexp.MustCompile(`^(\d+(?:\.\d+)*\.?)\s+(\S.{0,119})$`),
		roman:   regexp.MustCompile(`^([IVXivx]+\.)\s+(\S.{0,119})$`),
		alpha:   regexp.MustCompile(`^([a-z]\))\s+(\S.{0,119})$`),
	}
}

func (d *NumberedDetector) Name() string {
	return "numbered_heading"
}

func (d *NumberedDetector) Detect(text string) []segment.Candidate {
	var out []segment.Candidate
	for _, ln := range scanLines(text) {
		style, base := segment.Style(""), 0.0
		var m []string

		switch {
		case d.decimal.MatchString(ln.text):
			m = d.decimal.FindStringSubmatch(ln.text)
			style, base = segment.StyleNumberedDecimal, 0.8
		case d.roman.MatchString(ln.text):
			m = d.roman.FindStringSubmatch(ln.text)
			if !numbering.IsRoman(m[1]) {
				continue
			}
			style, base = segment.StyleNumberedRoman, 0.7
		case d.alpha.MatchString(ln.text):
			m = d.alpha.FindStringSubmatch(ln.text)
			style, base = segment.StyleNumberedAlpha, 0.6
		default:
			continue
		}

		label, heading := m[1], m[2]
		score := base
		if startsUpper(heading) {
			score += 0.1
		}
		score += lengthPenalty(heading)

		out = append(out, segment.Candidate{
			CharOffset:  ln.offset,
			LineIndex:   ln.index,
			Style:       style,
			Detector:    d.Name(),
			Score:       segment.Clamp01(score),
			NumberLabel: label,
			HeadingText: heading,
		})
	}
	return out
}
