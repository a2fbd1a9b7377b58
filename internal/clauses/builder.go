// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package clauses turns accepted boundary candidates into finalized clause
// records with spans, page ranges, confidences and snippets.
package clauses

import (
	"regexp"
	"strings"

	"clause-scan/internal/numbering"
	"clause-scan/internal/pageindex"
	"clause-scan/internal/segment"
)

// snippetLimit caps the stored clause preview.
const snippetLimit = 200

// headingShaped is the rescan pattern used to close each clause: the next
// heading-looking line anywhere in the remaining text ends the span, whether
// or not that line survived reconciliation. Closing on the next *accepted*
// candidate instead would be simpler, but downstream consumers have come to
// rely on the rescan behavior, so it stays.
var headingShaped = regexp.MustCompile(`(?m)^(?:\d+(?:\.\d+)*\.?\s+\S|[IVX]+\.\s+\S|[a-z]\)\s+\S|[A-Z][A-Z /&\-]{2,99}$|(?:EXHIBIT|SCHEDULE|APPENDIX)\s+[A-Z0-9]|IN WITNESS WHEREOF|SIGNATURES?\b|EXECUTED\b|DATED\b)`)

// Builder finalizes clause records for one run. It owns the page index for
// the duration of the run.
type Builder struct {
	pages *pageindex.Index
}

func NewBuilder(pages *pageindex.Index) *Builder {
	return &Builder{pages: pages}
}

// Build produces the ordered clause list for the accepted candidates, in
// offset order, plus unheaded filler blocks for any preamble before the
// first boundary and for the document tail. Char spans are inclusive on
// both ends; the first clause starts at 0 and the final clause reaches
// len(text)-1 so clauses cover the whole document.
func (b *Builder) Build(accepted []segment.Candidate, text string) []segment.Clause {
	var out []segment.Clause

	// Preamble text before the first boundary gets its own unheaded clause
	// so clause spans cover the document from offset 0.
	if len(accepted) > 0 && accepted[0].CharOffset > 0 {
		out = append(out, b.unheadedBlock(1, 0, accepted[0].CharOffset-1, text))
	}

	for _, c := range accepted {
		start := c.CharOffset
		end := b.clauseEnd(text, start)
		clause := segment.Clause{
			Ordinal:            len(out) + 1,
			NumberLabel:        c.NumberLabel,
			HeadingText:        c.HeadingText,
			StartChar:          start,
			EndChar:            end,
			DetectedStyle:      c.Style,
			ConfidenceBoundary: boundaryConfidence(c, text),
			ConfidenceHeading:  headingConfidence(c),
			TextSnippet:        snippet(text, start, end),
		}
		if c.NumberLabel != "" {
			clause.NormalizedLabel = numbering.Normalize(c.NumberLabel)
		}
		clause.StartPage, clause.EndPage = b.pages.RangeToPages(start, end)
		out = append(out, clause)
	}

	return append(out, b.trailingBlock(out, text))
}

// clauseEnd finds the char immediately before the next heading-shaped line
// after the candidate's own line, or end-of-document.
func (b *Builder) clauseEnd(text string, start int) int {
	searchFrom := len(text)
	if nl := strings.IndexByte(text[start:], '\n'); nl >= 0 {
		searchFrom = start + nl + 1
	}
	if searchFrom < len(text) {
		if loc := headingShaped.FindStringIndex(text[searchFrom:]); loc != nil {
			return searchFrom + loc[0] - 1
		}
	}
	return lastChar(text)
}

// trailingBlock appends the final unheaded clause spanning from the last
// clause's end to end-of-document. When nothing remains it degenerates to a
// zero-length span on the last char.
func (b *Builder) trailingBlock(built []segment.Clause, text string) segment.Clause {
	start := 0
	if n := len(built); n > 0 {
		start = built[n-1].EndChar + 1
	}
	end := lastChar(text)
	if start > end {
		start = end
	}
	return b.unheadedBlock(len(built)+1, start, end, text)
}

// unheadedBlock builds a heading-less filler clause covering [start, end].
func (b *Builder) unheadedBlock(ordinal, start, end int, text string) segment.Clause {
	clause := segment.Clause{
		Ordinal:            ordinal,
		StartChar:          start,
		EndChar:            end,
		DetectedStyle:      segment.StyleUnheadedBlock,
		ConfidenceBoundary: 0.5,
		ConfidenceHeading:  0.0,
		TextSnippet:        snippet(text, start, end),
	}
	clause.StartPage, clause.EndPage = b.pages.RangeToPages(start, end)
	return clause
}

// boundaryConfidence re-adjusts the candidate's final score with local
// heading-shape context before it becomes the clause confidence.
func boundaryConfidence(c segment.Candidate, text string) float64 {
	score := c.Score

	if c.HeadingText != "" {
		if first := c.HeadingText[0]; first >= 'A' && first <= 'Z' {
			score += 0.1
		} else if first >= 'a' && first <= 'z' {
			score -= 0.1
		}
	}

	before := blankBefore(text, c.CharOffset)
	after := blankAfter(text, c.CharOffset)
	switch {
	case before && after:
		score += 0.1
	case before || after:
		score += 0.05
	}

	return segment.Clamp01(score)
}

// headingConfidence grades how trustworthy the extracted heading text is,
// per detected style.
func headingConfidence(c segment.Candidate) float64 {
	if c.HeadingText == "" {
		return 0.0
	}

	var base float64
	switch c.Style {
	case segment.StyleNumberedDecimal:
		base = 0.9
	case segment.StyleNumberedRoman, segment.StyleAllCapsHeading:
		base = 0.8
	case segment.StyleTitleCase:
		base = 0.7
	default:
		base = 0.6
	}
	if n := len(c.HeadingText); n < 10 || n > 100 {
		base -= 0.1
	}
	return segment.Clamp01(base)
}

func snippet(text string, start, end int) string {
	if text == "" || start >= len(text) {
		return ""
	}
	limit := end + 1
	if limit > len(text) {
		limit = len(text)
	}
	if limit > start+snippetLimit {
		limit = start + snippetLimit
	}
	s := strings.ReplaceAll(text[start:limit], "\n", " ")
	return strings.TrimSpace(s)
}

func lastChar(text string) int {
	if len(text) == 0 {
		return 0
	}
	return len(text) - 1
}

func blankBefore(text string, offset int) bool {
	if offset > len(text) {
		offset = len(text)
	}
	start := offset - snippetLimit
	if start < 0 {
		start = 0
	}
	return strings.Contains(text[start:offset], "\n\n")
}

func blankAfter(text string, offset int) bool {
	end := offset + snippetLimit
	if end > len(text) {
		end = len(text)
	}
	if offset > len(text) {
		offset = len(text)
	}
	return strings.Contains(text[offset:end], "\n\n")
}
