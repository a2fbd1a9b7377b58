// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detectors

import (
	"regexp"
	"strings"

	"clause-scan/internal/segment"
)

// TitleCaseDetector finds standalone lines shaped like "Word Word ..."
// section titles. Connective words (of, and, the, ...) may stay lowercase;
// a strictly capitalized title scores higher.
type TitleCaseDetector struct {
	pattern *regexp.Regexp
	word    *regexp.Regexp
}

func NewTitleCaseDetector() *TitleCaseDetector {
	return &TitleCaseDetector{
		// 2-8 words, first word capitalized, no terminal punctuation. Longer
		// runs are prose sentences, not headings.
		pattern: regexp.MustCompile(`^[A-Z][a-z]+(?: [A-Za-z][a-z]*){1,7}$`),
		word:    regexp.MustCompile(`^[A-Z][a-z]*$`),
	}
}

func (d *TitleCaseDetector) Name() string {
	return "title_case_heading"
}

func (d *TitleCaseDetector) Detect(text string) []segment.Candidate {
	var out []segment.Candidate
	for _, ln := range scanLines(text) {
		if !d.pattern.MatchString(ln.text) {
			continue
		}

		score := 0.6
		if d.isStrictTitleCase(ln.text) {
			score += 0.1
		}
		score += lengthPenalty(ln.text)

		out = append(out, segment.Candidate{
			CharOffset:  ln.offset,
			LineIndex:   ln.index,
			Style:       segment.StyleTitleCase,
			Detector:    d.Name(),
			Score:       segment.Clamp01(score),
			HeadingText: ln.text,
		})
	}
	return out
}

// isStrictTitleCase reports whether every word starts with a capital.
func (d *TitleCaseDetector) isStrictTitleCase(heading string) bool {
	for _, w := range strings.Fields(heading) {
		if !d.word.MatchString(w) {
			return false
		}
	}
	return true
}
