// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detectors

import (
	"regexp"
	"strings"

	"clause-scan/internal/segment"
)

// SignatureDetector finds the execution block that closes a contract:
// "IN WITNESS WHEREOF", "SIGNATURES", "EXECUTED" or "DATED" at line start.
type SignatureDetector struct {
	pattern *regexp.Regexp
}

func NewSignatureDetector() *SignatureDetector {
	return &SignatureDetector{
		pattern: regexp.MustCompile(`^(IN WITNESS WHEREOF|SIGNATURES?|EXECUTED|DATED)\b`),
	}
}

func (d *SignatureDetector) Name() string {
	return "signature_anchor"
}

func (d *SignatureDetector) Detect(text string) []segment.Candidate {
	var out []segment.Candidate
	for _, ln := range scanLines(text) {
		m := d.pattern.FindStringSubmatch(ln.text)
		if m == nil {
			continue
		}

		score := 0.8
		if strings.Contains(m[1], "WITNESS") {
			score += 0.1
		}

		out = append(out, segment.Candidate{
			CharOffset:  ln.offset,
			LineIndex:   ln.index,
			Style:       segment.StyleSignature,
			Detector:    d.Name(),
			Score:       segment.Clamp01(score),
			HeadingText: m[1],
		})
	}
	return out
}
