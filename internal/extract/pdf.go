// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"clause-scan/internal/segment"
)

// maxPDFPages caps PDF processing to keep extraction time bounded.
const maxPDFPages = 200

// PDFExtractor extracts per-page text from PDF documents. Files are
// validated with pdfcpu before text extraction to reject corrupt input
// early.
type PDFExtractor struct {
	pdfConfig *model.Configuration
}

// NewPDFExtractor creates a PDF extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{
		pdfConfig: model.NewDefaultConfiguration(),
	}
}

func (e *PDFExtractor) CanProcess(filePath string) bool {
	return hasExtension(filePath, ".pdf")
}

func (e *PDFExtractor) Extract(filePath string) (*Document, error) {
	if err := api.ValidateFile(filePath, e.pdfConfig); err != nil {
		return nil, fmt.Errorf("invalid PDF file: %w", err)
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening PDF: %w", err)
	}
	defer f.Close()

	pageCount := r.NumPage()
	if pageCount > maxPDFPages {
		pageCount = maxPDFPages
	}

	pageTexts := make([]string, 0, pageCount)
	for i := 1; i <= pageCount; i++ {
		pageText := ""
		p := r.Page(i)
		if !p.V.IsNull() {
			pageText = extractPageText(p)
		}
		pageTexts = append(pageTexts, pageText)
	}

	doc := &Document{Filename: filepath.Base(filePath)}
	doc.Text, doc.Pages = assemblePages(pageTexts)
	return doc, nil
}

// assemblePages joins per-page text into the document text. Each page is
// normalized before counting so the per-page char counts match what the
// engine sees after its own normalization pass; only squeezes across page
// joins can still shift attribution, and those land on the page-1 fallback.
func assemblePages(pageTexts []string) (string, []segment.Page) {
	var buf bytes.Buffer
	pages := make([]segment.Page, 0, len(pageTexts))

	for i, raw := range pageTexts {
		// Each page contributes its text plus the separating newline, so
		// the page char counts sum to the document length.
		chunk := segment.NormalizeText(raw)
		if i < len(pageTexts)-1 {
			chunk += "\n"
		}
		buf.WriteString(chunk)
		pages = append(pages, segment.Page{CharCount: len(chunk)})
	}
	return buf.String(), pages
}

// extractPageText reads one page's text in reading order. Row-based
// extraction keeps inter-word spacing; plain text is the fallback when the
// page has no row data.
func extractPageText(p pdf.Page) string {
	rows, err := p.GetTextByRow()
	if err != nil || len(rows) == 0 {
		plain, err := p.GetPlainText(nil)
		if err != nil {
			return ""
		}
		return plain
	}

	sorted := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sorted = append(sorted, row)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return averageY(sorted[i].Content) < averageY(sorted[j].Content)
	})

	var buf bytes.Buffer
	for _, row := range sorted {
		line := rowText(row.Content)
		if strings.TrimSpace(line) == "" {
			continue
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	return buf.String()
}

func averageY(elements []pdf.Text) float64 {
	if len(elements) == 0 {
		return 0
	}
	total := 0.0
	for _, el := range elements {
		total += el.Y
	}
	return total / float64(len(elements))
}

// rowText joins a row's elements left to right, inserting a space where the
// horizontal gap exceeds a fifth of the font size.
func rowText(elements []pdf.Text) string {
	sorted := make([]pdf.Text, len(elements))
	copy(sorted, elements)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var buf bytes.Buffer
	for i, el := range sorted {
		buf.WriteString(el.S)
		if i == len(sorted)-1 {
			continue
		}
		fontSize := el.FontSize
		if fontSize <= 0 {
			fontSize = 12
		}
		gap := sorted[i+1].X - (el.X + el.W)
		if gap > fontSize*0.2 {
			buf.WriteString(" ")
		}
	}
	return buf.String()
}
