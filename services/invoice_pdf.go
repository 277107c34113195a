package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateInvoicePDF creates a PDF document for a job invoice using
// maroto/v2. It returns the raw PDF bytes or an error.
func GenerateInvoicePDF(data *InvoiceExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.Letter).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addInvoiceHeader(m, data)
	addInvoiceBillTo(m, data)
	addInvoiceLineItemsTable(m, data)
	addInvoiceTotals(m, data)
	addInvoiceFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invoice PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addInvoiceHeader adds company name, "INVOICE" title, and the invoice
// metadata rows.
func addInvoiceHeader(m core.Maroto, data *InvoiceExportData) {
	// Row 1: Company name (left) + INVOICE title (right)
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.CompanyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("INVOICE", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	// Row 2: Company address + email (left) + invoice number (right)
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("%s | %s", data.CompanyAddress, data.CompanyEmail), props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Invoice #: %s", data.InvoiceNumber), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	// Row 3: Job reference (left) + dates (right)
	rightLabel := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	rightValue := props.Text{
		Size:  8,
		Align: align.Right,
	}
	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Job #%s - %s", data.JobNumber, data.JobName), props.Text{
					Size:  8,
					Align: align.Left,
				}),
			),
			col.New(3).Add(text.New("Issued:", rightLabel)),
			col.New(3).Add(text.New(data.IssuedDate, rightValue)),
		),
	)
	if data.DueDate != "" {
		m.AddRows(
			row.New(7).Add(
				col.New(6).Add(text.New("", rightValue)),
				col.New(3).Add(text.New("Due:", rightLabel)),
				col.New(3).Add(text.New(data.DueDate, rightValue)),
			),
		)
	}

	// Divider spacer
	m.AddRows(row.New(3))
}

// addInvoiceBillTo adds the customer block.
func addInvoiceBillTo(m core.Maroto, data *InvoiceExportData) {
	sectionLabel := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Left,
	}
	boldValue := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
	}

	headerBg := &props.Color{Red: 245, Green: 243, Blue: 239}
	headerCell := &props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New("BILL TO", sectionLabel)).WithStyle(headerCell),
		),
	)

	if data.BillTo == nil {
		m.AddRows(row.New(3))
		return
	}

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New(data.BillTo.CompanyName, boldValue)),
		),
	)
	if data.BillTo.LocationName != "" {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(text.New(data.BillTo.LocationName, valueStyle)),
			),
		)
	}
	if data.BillTo.AddressLines != "" {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(text.New(data.BillTo.AddressLines, valueStyle)),
			),
		)
	}
	if data.BillTo.UnitNumber != "" {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(text.New(fmtField("Unit", data.BillTo.UnitNumber), valueStyle)),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addInvoiceLineItemsTable adds the line items table with header and body rows.
func addInvoiceLineItemsTable(m core.Maroto, data *InvoiceExportData) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	// Table header
	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("SI No", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Description", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Service Line", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Type", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Unit Cost", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Amount", headerText)).WithStyle(&headerCell),
		),
	)

	// Table body with alternating backgrounds
	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}

	for i, item := range data.LineItems {
		bodyText := props.Text{Size: 7, Align: align.Center}
		bodyTextLeft := props.Text{Size: 7, Align: align.Left}
		bodyTextRight := props.Text{Size: 7, Align: align.Right}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		colSINo := col.New(1).Add(text.New(fmt.Sprintf("%d", item.SINo), bodyText))
		colName := col.New(4).Add(text.New(item.Name, bodyTextLeft))
		colService := col.New(2).Add(text.New(item.ServiceLine, bodyText))
		colType := col.New(1).Add(text.New(item.Type, bodyText))
		colQty := col.New(1).Add(text.New(fmt.Sprintf("%d", item.Quantity), bodyTextRight))
		colUnitCost := col.New(1).Add(text.New(FormatUSD(item.UnitCost), bodyTextRight))
		colAmount := col.New(2).Add(text.New(FormatUSD(item.Amount), bodyTextRight))

		if cellStyle != nil {
			colSINo = colSINo.WithStyle(cellStyle)
			colName = colName.WithStyle(cellStyle)
			colService = colService.WithStyle(cellStyle)
			colType = colType.WithStyle(cellStyle)
			colQty = colQty.WithStyle(cellStyle)
			colUnitCost = colUnitCost.WithStyle(cellStyle)
			colAmount = colAmount.WithStyle(cellStyle)
		}

		m.AddRows(
			row.New(7).Add(
				colSINo, colName, colService, colType,
				colQty, colUnitCost, colAmount,
			),
		)
	}

	m.AddRows(row.New(2))
}

// addInvoiceTotals adds right-aligned total rows.
func addInvoiceTotals(m core.Maroto, data *InvoiceExportData) {
	summaryBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}

	m.AddRows(
		row.New(7).Add(
			col.New(9).Add(text.New("Subtotal", labelStyle)).WithStyle(summaryCell),
			col.New(3).Add(text.New(FormatUSD(data.Subtotal), valueStyle)).WithStyle(summaryCell),
		),
	)

	grandBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	grandCell := &props.Cell{BackgroundColor: grandBg}
	white := &props.Color{Red: 255, Green: 255, Blue: 255}
	grandLabelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Color: white}
	grandValueStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Color: white}

	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("Amount Due", grandLabelStyle)).WithStyle(grandCell),
			col.New(3).Add(text.New(FormatUSD(data.AmountDue), grandValueStyle)).WithStyle(grandCell),
		),
	)

	m.AddRows(row.New(3))
}

// addInvoiceFooter adds payment instructions.
func addInvoiceFooter(m core.Maroto, data *InvoiceExportData) {
	m.AddRows(row.New(6))

	footerStyle := props.Text{
		Size:  8,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}

	footer := "Payment is due within 30 days of the issue date."
	if data.DueDate != "" {
		footer = fmt.Sprintf("Payment is due by %s.", data.DueDate)
	}

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New(footer, footerStyle)),
		),
	)
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New(fmt.Sprintf("Questions? Contact %s.", data.CompanyEmail), footerStyle)),
		),
	)
}

// fmtField returns "label: value" if value is non-empty, otherwise empty string.
func fmtField(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("%s: %s", label, value)
}
