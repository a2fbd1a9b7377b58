// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/csv"
	"strings"
	"testing"

	"clause-scan/internal/formatters"
	"clause-scan/internal/segment"
)

func TestCSVFormatterOutput(t *testing.T) {
	result := &segment.SegmentationResult{
		Clauses: []segment.Clause{
			{
				Ordinal:            1,
				NormalizedLabel:    "1",
				HeadingText:        "DEFINITIONS",
				EndChar:            99,
				StartPage:          1,
				EndPage:            1,
				DetectedStyle:      segment.StyleNumberedDecimal,
				ConfidenceBoundary: 0.95,
				ConfidenceHeading:  0.9,
			},
			{
				Ordinal:            2,
				StartChar:          100,
				EndChar:            160,
				StartPage:          1,
				EndPage:            1,
				DetectedStyle:      segment.StyleUnheadedBlock,
				ConfidenceBoundary: 0.5,
				AnomalyFlags: []segment.AnomalyType{
					segment.AnomalyUnheadedBlock,
					segment.AnomalyExcessiveShortClause,
				},
			},
		},
	}

	formatter := NewFormatter()
	output, err := formatter.Format(result, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(output)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d records", len(records))
	}
	if records[0][0] != "ordinal" {
		t.Errorf("expected first header column ordinal, got %q", records[0][0])
	}
	if records[1][2] != "DEFINITIONS" {
		t.Errorf("expected heading DEFINITIONS, got %q", records[1][2])
	}
	if records[2][10] != "unheaded_block;excessive_short_clause" {
		t.Errorf("unexpected anomaly flags column: %q", records[2][10])
	}
}
