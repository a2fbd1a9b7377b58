// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detectors

import (
	"regexp"

	"clause-scan/internal/segment"
)

// ExhibitDetector finds attachment markers: EXHIBIT, SCHEDULE or APPENDIX
// followed by an alphanumeric identifier. These are the strongest boundary
// signal a contract gives.
type ExhibitDetector struct {
	pattern *regexp.Regexp
	exactID *regexp.Regexp
}

func NewExhibitDetector() *ExhibitDetector {
	return &ExhibitDetector{
		pattern: regexp.MustCompile(`^(EXHIBIT|SCHEDULE|APPENDIX)\s+([A-Z0-9]+)`),
		exactID: regexp.MustCompile(`^(?:[A-Z]|\d{1,2})$`),
	}
}

func (d *ExhibitDetector) Name() string {
	return "exhibit_marker"
}

func (d *ExhibitDetector) Detect(text string) []segment.Candidate {
	var out []segment.Candidate
	for _, ln := range scanLines(text) {
		m := d.pattern.FindStringSubmatch(ln.text)
		if m == nil {
			continue
		}

		score := 0.9
		// "EXHIBIT A" or "SCHEDULE 2" with a plain single identifier.
		if d.exactID.MatchString(m[2]) {
			score += 0.1
		}

		out = append(out, segment.Candidate{
			CharOffset:  ln.offset,
			LineIndex:   ln.index,
			Style:       segment.StyleExhibit,
			Detector:    d.Name(),
			Score:       segment.Clamp01(score),
			NumberLabel: m[2],
			HeadingText: m[0],
		})
	}
	return out
}
