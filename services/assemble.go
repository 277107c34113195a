package services

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// AssembleDocument concatenates the preserved template pages around the
// generated pages: before ++ generated ++ after. Preserved pages are
// extracted from the template without re-rendering; page numbers outside
// the template's range are skipped silently.
func AssembleDocument(templatePDF []byte, before, after []int, generated []byte) ([]byte, error) {
	conf := model.NewDefaultConfiguration()

	beforePart, err := extractPages(templatePDF, before, conf)
	if err != nil {
		return nil, err
	}
	afterPart, err := extractPages(templatePDF, after, conf)
	if err != nil {
		return nil, err
	}

	if beforePart == nil && afterPart == nil {
		return generated, nil
	}

	parts := make([]io.ReadSeeker, 0, 3)
	if beforePart != nil {
		parts = append(parts, bytes.NewReader(beforePart))
	}
	parts = append(parts, bytes.NewReader(generated))
	if afterPart != nil {
		parts = append(parts, bytes.NewReader(afterPart))
	}

	var buf bytes.Buffer
	if err := api.MergeRaw(parts, &buf, false, conf); err != nil {
		return nil, fmt.Errorf("merge document parts: %w", err)
	}
	return buf.Bytes(), nil
}

// extractPages pulls the given 1-based pages out of the template, keeping
// their original order. Returns nil when no valid page remains.
func extractPages(templatePDF []byte, pages []int, conf *model.Configuration) ([]byte, error) {
	if len(pages) == 0 {
		return nil, nil
	}

	count, err := api.PageCount(bytes.NewReader(templatePDF), conf)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}

	selected := make([]string, 0, len(pages))
	for _, p := range pages {
		if p >= 1 && p <= count {
			selected = append(selected, strconv.Itoa(p))
		}
	}
	if len(selected) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	if err := api.Trim(bytes.NewReader(templatePDF), &buf, selected, conf); err != nil {
		return nil, fmt.Errorf("extract template pages: %w", err)
	}
	return buf.Bytes(), nil
}

// PageCount reports the number of pages in a PDF. Exports and tests use it
// to sanity-check assembled documents.
func PageCount(pdf []byte) (int, error) {
	count, err := api.PageCount(bytes.NewReader(pdf), model.NewDefaultConfiguration())
	if err != nil {
		return 0, fmt.Errorf("read pdf: %w", err)
	}
	return count, nil
}
