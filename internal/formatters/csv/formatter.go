// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"clause-scan/internal/formatters"
	"clause-scan/internal/segment"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated clause table for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(result *segment.SegmentationResult, options formatters.FormatterOptions) (string, error) {
	var builder strings.Builder
	writer := csv.NewWriter(&builder)

	header := []string{
		"ordinal", "normalized_label", "heading", "style",
		"start_char", "end_char", "start_page", "end_page",
		"conf_boundary", "conf_heading", "anomaly_flags",
	}
	if err := writer.Write(header); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, c := range result.Clauses {
		flags := make([]string, len(c.AnomalyFlags))
		for i, flag := range c.AnomalyFlags {
			flags[i] = string(flag)
		}
		row := []string{
			strconv.Itoa(c.Ordinal),
			c.NormalizedLabel,
			c.HeadingText,
			string(c.DetectedStyle),
			strconv.Itoa(c.StartChar),
			strconv.Itoa(c.EndChar),
			strconv.Itoa(c.StartPage),
			strconv.Itoa(c.EndPage),
			strconv.FormatFloat(c.ConfidenceBoundary, 'f', 2, 64),
			strconv.FormatFloat(c.ConfidenceHeading, 'f', 2, 64),
			strings.Join(flags, ";"),
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV output: %w", err)
	}
	return builder.String(), nil
}
