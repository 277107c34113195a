package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/pocketbase/pocketbase"
)

// InvoiceExportData holds all data needed to generate an invoice PDF.
type InvoiceExportData struct {
	// Company letterhead
	CompanyName    string
	CompanyAddress string
	CompanyEmail   string

	// Invoice header
	InvoiceNumber string
	IssuedDate    string
	DueDate       string
	Status        string

	// Job reference
	JobNumber string
	JobName   string
	JobType   string

	// Bill To
	BillTo *InvoiceBillTo

	// Line items
	LineItems []InvoiceLineItem

	// Totals
	Subtotal  float64
	AmountDue float64
}

// InvoiceBillTo holds the customer block for invoice export.
type InvoiceBillTo struct {
	CompanyName  string
	LocationName string
	AddressLines string // formatted multi-line
	UnitNumber   string
}

// InvoiceLineItem holds a single line item for invoice export.
type InvoiceLineItem struct {
	SINo        int
	Name        string
	ServiceLine string
	Type        string
	Quantity    int
	UnitCost    float64
	Amount      float64
}

// BuildInvoiceExportData assembles all data needed for invoice PDF
// generation from PocketBase records.
func BuildInvoiceExportData(app *pocketbase.PocketBase, invoiceId string) (*InvoiceExportData, error) {
	inv, err := app.FindRecordById("job_invoices", invoiceId)
	if err != nil {
		return nil, fmt.Errorf("invoice not found: %w", err)
	}

	data := &InvoiceExportData{
		CompanyName:    "Airlast Heating & Air Conditioning",
		CompanyAddress: "Atlanta, Georgia",
		CompanyEmail:   "service@airlast-management.com",

		InvoiceNumber: inv.GetString("invoice_number"),
		IssuedDate:    inv.GetString("issued_date"),
		DueDate:       inv.GetString("due_date"),
		Status:        inv.GetString("status"),
	}

	job, err := app.FindRecordById("jobs", inv.GetString("job"))
	if err != nil {
		return nil, fmt.Errorf("job not found: %w", err)
	}
	data.JobNumber = job.GetString("number")
	data.JobName = job.GetString("name")
	data.JobType = job.GetString("type")

	// Bill To from the job's location chain
	if locID := job.GetString("location"); locID != "" {
		if loc, err := app.FindRecordById("locations", locID); err == nil {
			billTo := &InvoiceBillTo{LocationName: loc.GetString("name")}

			addrParts := []string{}
			if addr := loc.GetString("address"); addr != "" {
				addrParts = append(addrParts, addr)
			}
			cityStateParts := []string{}
			if city := loc.GetString("city"); city != "" {
				cityStateParts = append(cityStateParts, city)
			}
			if state := loc.GetString("state"); state != "" {
				cityStateParts = append(cityStateParts, state)
			}
			if zip := loc.GetString("zip"); zip != "" {
				cityStateParts = append(cityStateParts, zip)
			}
			if len(cityStateParts) > 0 {
				addrParts = append(addrParts, strings.Join(cityStateParts, ", "))
			}
			billTo.AddressLines = strings.Join(addrParts, "\n")

			if companyID := loc.GetString("company"); companyID != "" {
				if company, err := app.FindRecordById("companies", companyID); err == nil {
					billTo.CompanyName = company.GetString("name")
				} else {
					log.Printf("invoice_export: could not find company %s: %v", companyID, err)
				}
			}
			data.BillTo = billTo
		} else {
			log.Printf("invoice_export: could not find location %s: %v", locID, err)
		}
	}
	if unitID := job.GetString("unit"); unitID != "" && data.BillTo != nil {
		if unit, err := app.FindRecordById("units", unitID); err == nil {
			data.BillTo.UnitNumber = unit.GetString("unit_number")
		}
	}

	itemRecords, err := app.FindRecordsByFilter(
		"job_items",
		"job = {:jobId}",
		"created",
		0,
		0,
		map[string]any{"jobId": job.Id},
	)
	if err != nil {
		log.Printf("invoice_export: could not fetch items for job %s: %v", job.Id, err)
		itemRecords = nil
	}

	var amounts []float64
	for i, item := range itemRecords {
		amount := item.GetFloat("total_cost")
		amounts = append(amounts, amount)

		data.LineItems = append(data.LineItems, InvoiceLineItem{
			SINo:        i + 1,
			Name:        item.GetString("name"),
			ServiceLine: item.GetString("service_line"),
			Type:        item.GetString("type"),
			Quantity:    item.GetInt("quantity"),
			UnitCost:    item.GetFloat("unit_cost"),
			Amount:      amount,
		})
	}

	totals := CalcInvoiceTotals(amounts, 0)
	data.Subtotal = totals.Subtotal
	data.AmountDue = totals.Due

	return data, nil
}
