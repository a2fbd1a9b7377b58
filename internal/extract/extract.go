// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extract turns input files into the text and per-page char counts
// the segmentation pipeline consumes. The engine itself never reads files;
// extraction is the only stage that touches the filesystem.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"clause-scan/internal/segment"
)

// Document is the extraction output handed to the segmenter.
type Document struct {
	Filename string
	Text     string
	Pages    []segment.Page
}

// Extractor turns one file format into a Document.
type Extractor interface {
	// CanProcess reports whether this extractor handles the file.
	CanProcess(filePath string) bool

	// Extract reads the file and produces text plus page char counts.
	Extract(filePath string) (*Document, error)
}

// defaultExtractors lists the adapters in dispatch order.
var defaultExtractors = []Extractor{
	NewPDFExtractor(),
	NewTextExtractor(),
}

// FromFile dispatches to the first extractor that handles the file.
func FromFile(filePath string) (*Document, error) {
	for _, e := range defaultExtractors {
		if e.CanProcess(filePath) {
			return e.Extract(filePath)
		}
	}
	return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(filePath))
}

// hasExtension reports whether the path carries one of the extensions,
// case-insensitively.
func hasExtension(filePath string, extensions ...string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, want := range extensions {
		if ext == want {
			return true
		}
	}
	return false
}
