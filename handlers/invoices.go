package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/jackhoang99/airlast-s-management-sub003/services"
)

var InvoiceStatusOptions = []string{"draft", "issued", "paid", "void"}

func HandleInvoicesList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := e.Request.URL.Query()

		filter := "1=1"
		params := map[string]any{}
		if status := q.Get("status"); status != "" {
			filter = "status = {:status}"
			params["status"] = status
		}

		records, err := app.FindRecordsByFilter("job_invoices", filter, "-created", 200, 0, params)
		if err != nil {
			log.Printf("invoices: list: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to list invoices"})
		}
		return e.JSON(http.StatusOK, records)
	}
}

// HandleInvoiceCreate issues an invoice for a job. The amount defaults to
// the sum of the job's item totals when the caller does not supply one.
func HandleInvoiceCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var body struct {
			JobID         string  `json:"jobId"`
			InvoiceNumber string  `json:"invoiceNumber"`
			Amount        float64 `json:"amount"`
			DueDate       string  `json:"dueDate"`
		}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "Invalid request body"})
		}

		body.InvoiceNumber = strings.TrimSpace(body.InvoiceNumber)
		if body.JobID == "" || body.InvoiceNumber == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "Missing required fields"})
		}

		if _, err := app.FindRecordById("jobs", body.JobID); err != nil {
			return e.JSON(http.StatusNotFound, map[string]any{"error": "job not found"})
		}

		existing, _ := app.FindRecordsByFilter(
			"job_invoices",
			"invoice_number = {:number}",
			"", 1, 0,
			map[string]any{"number": body.InvoiceNumber},
		)
		if len(existing) > 0 {
			return e.JSON(http.StatusConflict, map[string]any{"error": "An invoice with this number already exists"})
		}

		amount := body.Amount
		if amount == 0 {
			items, err := app.FindRecordsByFilter("job_items", "job = {:jobId}", "", 0, 0,
				map[string]any{"jobId": body.JobID})
			if err != nil {
				log.Printf("invoices: items for %s: %v", body.JobID, err)
				return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to create invoice"})
			}
			for _, item := range items {
				amount += item.GetFloat("total_cost")
			}
		}

		col, err := app.FindCollectionByNameOrId("job_invoices")
		if err != nil {
			log.Printf("invoices: could not find job_invoices collection: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to create invoice"})
		}

		record := core.NewRecord(col)
		record.Set("job", body.JobID)
		record.Set("invoice_number", body.InvoiceNumber)
		record.Set("amount", amount)
		record.Set("status", "issued")
		record.Set("issued_date", time.Now().Format("2006-01-02"))
		record.Set("due_date", body.DueDate)

		if err := app.Save(record); err != nil {
			log.Printf("invoices: could not save invoice: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to create invoice"})
		}
		return e.JSON(http.StatusOK, record)
	}
}

func HandleInvoiceUpdateStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		invoiceID := e.Request.PathValue("id")

		var body struct {
			Status string `json:"status"`
		}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "Invalid request body"})
		}

		valid := false
		for _, s := range InvoiceStatusOptions {
			if body.Status == s {
				valid = true
				break
			}
		}
		if !valid {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid status"})
		}

		record, err := app.FindRecordById("job_invoices", invoiceID)
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]any{"error": "invoice not found"})
		}

		record.Set("status", body.Status)
		if err := app.Save(record); err != nil {
			log.Printf("invoices: could not update status for %s: %v", invoiceID, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to update invoice"})
		}
		return e.JSON(http.StatusOK, record)
	}
}

// HandleInvoiceExportPDF returns a handler that generates and downloads a
// PDF for an invoice.
func HandleInvoiceExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing invoice ID")
		}

		data, err := services.BuildInvoiceExportData(app, id)
		if err != nil {
			log.Printf("invoice_export: failed to build data: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to build invoice data")
		}

		pdfBytes, err := services.GenerateInvoicePDF(data)
		if err != nil {
			log.Printf("invoice_export: failed to generate PDF: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF")
		}

		filename := fmt.Sprintf("%s.pdf", sanitizeFilename(data.InvoiceNumber))

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
