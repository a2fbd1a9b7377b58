// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTextExtractor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contract.txt")
	body := "1. DEFINITIONS\n\nIn this Agreement the following terms apply.\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	doc, err := NewTextExtractor().Extract(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text != body {
		t.Errorf("extracted text does not match input")
	}
	if doc.Filename != "contract.txt" {
		t.Errorf("expected filename contract.txt, got %s", doc.Filename)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 synthetic page, got %d", len(doc.Pages))
	}
	if doc.Pages[0].CharCount != len(body) {
		t.Errorf("expected page char count %d, got %d", len(body), doc.Pages[0].CharCount)
	}
}

func TestTextExtractorMissingFile(t *testing.T) {
	_, err := NewTextExtractor().Extract(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCanProcess(t *testing.T) {
	tests := []struct {
		name      string
		extractor Extractor
		filePath  string
		want      bool
	}{
		{"text lowercase", NewTextExtractor(), "doc.txt", true},
		{"text uppercase", NewTextExtractor(), "DOC.TXT", true},
		{"markdown", NewTextExtractor(), "notes.md", true},
		{"text rejects pdf", NewTextExtractor(), "doc.pdf", false},
		{"pdf lowercase", NewPDFExtractor(), "doc.pdf", true},
		{"pdf uppercase", NewPDFExtractor(), "DOC.PDF", true},
		{"pdf rejects text", NewPDFExtractor(), "doc.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.extractor.CanProcess(tt.filePath); got != tt.want {
				t.Errorf("CanProcess(%q) = %v, want %v", tt.filePath, got, tt.want)
			}
		})
	}
}

func TestAssemblePagesNormalizedCounts(t *testing.T) {
	pageTexts := []string{
		"1. DEFINITIONS\r\n\r\nTerms are defined here.  \n",
		"2. TERM\n\n\n\nThe term runs one year.",
	}

	text, pages := assemblePages(pageTexts)

	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	sum := 0
	for _, p := range pages {
		sum += p.CharCount
	}
	if sum != len(text) {
		t.Errorf("page char counts sum to %d, want document length %d", sum, len(text))
	}
	if strings.Contains(text, "\r") {
		t.Error("expected CRLF line endings to be collapsed per page")
	}
	if strings.Contains(text, "\n\n\n") {
		t.Error("expected newline runs to be squeezed per page")
	}

	wantFirst := "1. DEFINITIONS\n\nTerms are defined here.\n"
	if pages[0].CharCount != len(wantFirst) {
		t.Errorf("first page char count = %d, want %d", pages[0].CharCount, len(wantFirst))
	}
}

func TestFromFileUnsupported(t *testing.T) {
	_, err := FromFile("image.png")
	if err == nil {
		t.Fatal("expected error for unsupported file type")
	}
}

func TestFromFileDispatchesText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("plain body"), 0o600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	doc, err := FromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text != "plain body" {
		t.Errorf("unexpected text: %q", doc.Text)
	}
}
