package services

import (
	"fmt"
	"strings"
	"time"
)

// Column x-offsets shared by the two-column inspection rows and the items
// table, carried over from the template layout.
const (
	colMidX   = 300.0
	colPriceX = 400.0
	rightEdge = PageWidth - LeftMargin
)

const (
	titleFontSize   = 24.0
	sectionFontSize = 14.0
)

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// drawQuoteHeader renders the title line plus exactly three detail lines:
// quote number, job number, and the generation date.
func drawQuoteHeader(w *PageWriter, req *QuoteRequest, now time.Time) {
	w.TextSize(LeftMargin, titleFontSize, true, strings.ToUpper(req.QuoteType)+" QUOTE")
	w.Advance(40)

	w.Text(LeftMargin, "Quote #: "+req.QuoteNumber)
	w.Advance(LineHeight)
	w.Text(LeftMargin, "Job #: "+req.Job.Number)
	w.Advance(LineHeight)
	w.Text(LeftMargin, "Date: "+FormatDate(now))
	w.Advance(LineHeight * 2)
}

// drawCustomerBlock renders the customer section when location data is
// present. Missing nested fields render as empty lines rather than being
// skipped, so the block height is the same regardless of data completeness.
func drawCustomerBlock(w *PageWriter, job JobSnapshot) {
	loc := job.Location
	if loc == nil {
		return
	}

	w.TextSize(LeftMargin, sectionFontSize, true, "Customer:")
	w.Advance(LineHeight)

	company := ""
	if loc.Company != nil {
		company = loc.Company.Name
	}
	for _, line := range []string{
		company,
		loc.Name,
		loc.Address,
		fmt.Sprintf("%s, %s %s", loc.City, loc.State, loc.Zip),
	} {
		w.Text(LeftMargin, line)
		w.Advance(LineHeight)
	}

	if job.Unit != nil {
		w.Text(LeftMargin, "Unit: "+job.Unit.UnitNumber)
		w.Advance(LineHeight)
	}

	w.Advance(LineHeight * 2)
}

// inspectionHeight returns the vertical space one inspection needs: two
// two-column lines, an optional third line, and trailing spacing.
func inspectionHeight(in Inspection) float64 {
	lines := 2.0
	if in.UnitType != "" || in.SystemType != "" {
		lines = 3
	}
	return lines*LineHeight + LineHeight
}

// drawInspections renders the inspection results section. Each inspection is
// drawn as one atomic unit; when the next unit would overflow, the writer
// breaks the page and the section header is re-drawn with a continuation
// marker.
func drawInspections(w *PageWriter, inspections []Inspection) {
	if len(inspections) == 0 {
		return
	}

	drawHeader := func(continued bool) {
		title := "Inspection Results:"
		if continued {
			title = "Inspection Results (continued):"
		}
		w.TextSize(LeftMargin, sectionFontSize, true, title)
		w.Advance(LineHeight * 1.5)
	}

	w.EnsureSpace(LineHeight*1.5 + inspectionHeight(inspections[0]))
	drawHeader(false)

	for _, in := range inspections {
		if w.EnsureSpace(inspectionHeight(in)) {
			drawHeader(true)
		}

		w.Text(LeftMargin, "Model Number: "+orNA(in.ModelNumber))
		w.Text(colMidX, "Serial Number: "+orNA(in.SerialNumber))
		w.Advance(LineHeight)

		w.Text(LeftMargin, "Age: "+orNA(in.Age)+" years")
		w.Text(colMidX, "Tonnage: "+orNA(in.Tonnage))
		w.Advance(LineHeight)

		if in.UnitType != "" || in.SystemType != "" {
			w.Text(LeftMargin, "Unit Type: "+orNA(in.UnitType))
			w.Text(colMidX, "System Type: "+orNA(in.SystemType))
			w.Advance(LineHeight)
		}

		w.Advance(LineHeight)
	}

	w.Advance(LineHeight)
}

// drawReplacementSummary renders one two-line summary per normalized entry.
// Replacements show the selected pricing tier (plus a crane marker when
// flagged); simplified repairs show a flat service label. With two or more
// entries a separator rule and combined total follow.
func drawReplacementSummary(w *PageWriter, entries []ReplacementEntry) {
	if len(entries) == 0 {
		return
	}

	for _, e := range entries {
		w.EnsureSpace(LineHeight * 2.5)

		label := "Replacement"
		if e.SimplifiedRepair {
			label = "Repair"
		}
		w.TextSize(LeftMargin, BodyFontSize, true, fmt.Sprintf("%s %d", label, e.ReplacementNumber))
		w.Text(colMidX, FormatDate(e.CreatedAt))
		w.TextRight(rightEdge, BodyFontSize, false, FormatUSD(e.TotalCost))
		w.Advance(LineHeight)

		if e.SimplifiedRepair {
			w.Text(LeftMargin, "Repair Service")
		} else {
			detail := PhaseLabel(e.SelectedPhase) + " Option"
			if e.NeedsCrane {
				detail += " - Crane Required"
			}
			w.Text(LeftMargin, detail)
		}
		w.Advance(LineHeight * 1.5)
	}

	if len(entries) > 1 {
		w.EnsureSpace(LineHeight * 2)
		w.Rule()
		w.Advance(LineHeight)
		w.TextSize(LeftMargin, BodyFontSize, true, "Combined Total:")
		w.TextRight(rightEdge, BodyFontSize, true, FormatUSD(CombinedReplacementTotal(entries)))
		w.Advance(LineHeight)
	}

	w.Advance(LineHeight)
}

// drawItemsTable renders the line items table with a running total. The
// column header row is re-drawn after any page break inside the table.
func drawItemsTable(w *PageWriter, items []JobItem) {
	if len(items) == 0 {
		return
	}

	drawColumns := func() {
		w.TextSize(LeftMargin, BodyFontSize, true, "Item")
		w.TextSize(colMidX, BodyFontSize, true, "Quantity")
		w.TextSize(colPriceX, BodyFontSize, true, "Price")
		w.Advance(LineHeight)
	}

	w.EnsureSpace(LineHeight * 4)
	w.TextSize(LeftMargin, sectionFontSize, true, "Items:")
	w.Advance(LineHeight * 1.5)
	drawColumns()

	var total float64
	for _, item := range items {
		if w.EnsureSpace(LineHeight) {
			drawColumns()
		}

		w.Text(LeftMargin, item.DisplayName())
		w.Text(colMidX, fmt.Sprintf("%d", item.DisplayQuantity()))
		w.Text(colPriceX, fmt.Sprintf("$%.2f", item.TotalCost))
		total += item.TotalCost
		w.Advance(LineHeight)
	}

	w.EnsureSpace(LineHeight * 2)
	w.Advance(LineHeight)
	w.TextSize(colMidX, sectionFontSize, true, "Total:")
	w.TextSize(colPriceX, sectionFontSize, true, fmt.Sprintf("$%.2f", total))
	w.Advance(LineHeight)
}
