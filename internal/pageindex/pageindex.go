// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pageindex maps char offsets in the normalized document text back
// to 1-based page numbers, using the caller-supplied per-page char counts.
package pageindex

import "clause-scan/internal/segment"

// Index is an ephemeral offset-to-page lookup table built once per run.
type Index struct {
	spans []span
}

type span struct {
	page      int
	startChar int
	endChar   int
	charCount int
}

// Build derives the lookup table by cumulative summation of the page char
// counts, starting at offset 0. Page numbers are 1-based.
func Build(pages []segment.Page) *Index {
	idx := &Index{spans: make([]span, 0, len(pages))}
	cursor := 0
	for i, p := range pages {
		count := p.CharCount
		if count < 0 {
			count = 0
		}
		end := cursor + count - 1
		if count == 0 {
			end = cursor
		}
		idx.spans = append(idx.spans, span{
			page:      i + 1,
			startChar: cursor,
			endChar:   end,
			charCount: count,
		})
		cursor += count
	}
	return idx
}

// PageCount returns the number of pages in the index.
func (idx *Index) PageCount() int {
	return len(idx.spans)
}

// PageFor returns the 1-based page whose span contains offset. Offsets past
// the last page's end fall back to page 1, matching the behavior callers
// already depend on when the page list undercounts the document text.
func (idx *Index) PageFor(offset int) int {
	for _, s := range idx.spans {
		if offset >= s.startChar && offset <= s.endChar {
			return s.page
		}
	}
	return 1
}

// RangeToPages maps an inclusive char range to its (startPage, endPage)
// pair.
func (idx *Index) RangeToPages(startChar, endChar int) (int, int) {
	return idx.PageFor(startChar), idx.PageFor(endChar)
}
