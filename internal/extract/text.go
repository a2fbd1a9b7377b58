// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"fmt"
	"os"
	"path/filepath"

	"clause-scan/internal/segment"
)

// TextExtractor handles plain-text input. The whole file becomes a single
// synthetic page, so page mapping degrades to page 1 everywhere.
type TextExtractor struct{}

// NewTextExtractor creates a plain-text extractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

func (e *TextExtractor) CanProcess(filePath string) bool {
	return hasExtension(filePath, ".txt", ".text", ".md")
}

func (e *TextExtractor) Extract(filePath string) (*Document, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading text file: %w", err)
	}

	text := string(data)
	return &Document{
		Filename: filepath.Base(filePath),
		Text:     text,
		Pages:    []segment.Page{{CharCount: len(text)}},
	}, nil
}
