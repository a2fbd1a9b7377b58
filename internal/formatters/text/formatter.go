// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"clause-scan/internal/formatters"
	"clause-scan/internal/segment"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(result *segment.SegmentationResult, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var builder strings.Builder

	builder.WriteString(f.colors["white"].Sprintf("Clauses: %d", len(result.Clauses)))
	builder.WriteString("\n\n")

	for _, c := range result.Clauses {
		heading := c.HeadingText
		if heading == "" {
			heading = "(unheaded)"
		}
		label := c.NormalizedLabel
		if label == "" {
			label = "-"
		}

		builder.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			f.colors["cyan"].Sprintf("#%d", c.Ordinal),
			f.colors["white"].Sprint(heading),
			f.confidenceColor(c.ConfidenceBoundary).Sprintf("%.2f", c.ConfidenceBoundary)))
		builder.WriteString(fmt.Sprintf("      label: %s  style: %s  chars: %d-%d  pages: %d-%d\n",
			label, c.DetectedStyle, c.StartChar, c.EndChar, c.StartPage, c.EndPage))

		if options.Verbose {
			builder.WriteString(fmt.Sprintf("      heading confidence: %.2f\n", c.ConfidenceHeading))
			if c.TextSnippet != "" {
				builder.WriteString(fmt.Sprintf("      snippet: %s\n", c.TextSnippet))
			}
			for _, flagged := range c.AnomalyFlags {
				builder.WriteString(fmt.Sprintf("      flag: %s\n", flagged))
			}
		}
	}

	if len(result.Anomalies) > 0 {
		builder.WriteString("\n")
		builder.WriteString(f.colors["white"].Sprintf("Anomalies: %d", len(result.Anomalies)))
		builder.WriteString("\n")
		for _, a := range result.Anomalies {
			builder.WriteString(fmt.Sprintf("  %s %s at char %d: %s\n",
				f.severityColor(a.Severity).Sprintf("[%s]", strings.ToUpper(string(a.Severity))),
				a.Type, a.At, a.Description))
		}
	}

	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf("Candidates: %d  Accepted: %d  Suppressed: %d  Mean confidence: %.2f\n",
		result.Metrics.CandidateCount, result.Metrics.AcceptedCount,
		result.Metrics.SuppressedCount, result.Metrics.MeanConfBoundary))

	if result.NeedsReview {
		builder.WriteString(f.colors["red"].Sprint("Result requires human review"))
		builder.WriteString("\n")
	} else {
		builder.WriteString(f.colors["green"].Sprint("No review required"))
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

func (f *Formatter) confidenceColor(confidence float64) *color.Color {
	switch {
	case confidence >= 0.75:
		return f.colors["green"]
	case confidence >= 0.4:
		return f.colors["yellow"]
	default:
		return f.colors["red"]
	}
}

func (f *Formatter) severityColor(severity segment.Severity) *color.Color {
	switch severity {
	case segment.SeverityHigh:
		return f.colors["red"]
	case segment.SeverityMedium:
		return f.colors["yellow"]
	default:
		return f.colors["cyan"]
	}
}
