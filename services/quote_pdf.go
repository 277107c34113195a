package services

import (
	"fmt"
	"time"
)

// GenerateQuotePDF composes a quote document from a loaded template and one
// request. Preserved template pages are copied around the dynamically
// generated content: blocks render in fixed order onto fresh pages, breaking
// to a new page whenever the next unit of content would not fit.
//
// The call is synchronous and owns every intermediate buffer; nothing is
// shared between concurrent generations.
func GenerateQuotePDF(tpl *QuoteTemplate, req *QuoteRequest, now time.Time) ([]byte, error) {
	w, err := NewPageWriter(tpl.Background)
	if err != nil {
		return nil, fmt.Errorf("prepare quote pages: %w", err)
	}

	drawQuoteHeader(w, req, now)
	drawCustomerBlock(w, req.Job)
	drawInspections(w, req.Inspections)
	drawReplacementSummary(w, NormalizeReplacements(req, now))
	drawItemsTable(w, req.JobItems)

	generated, err := w.Output()
	if err != nil {
		return nil, err
	}

	before, after := SplitPreservedPages(tpl.PreservedPages)
	return AssembleDocument(tpl.PDF, before, after, generated)
}
