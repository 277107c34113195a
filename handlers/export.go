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

// buildItemsExportData fetches a job and its line items, returning an
// ItemsExportData struct.
func buildItemsExportData(app *pocketbase.PocketBase, jobID string) (services.ItemsExportData, error) {
	job, err := app.FindRecordById("jobs", jobID)
	if err != nil {
		return services.ItemsExportData{}, fmt.Errorf("job not found: %w", err)
	}

	itemRecords, err := app.FindRecordsByFilter(
		"job_items",
		"job = {:jobId}",
		"created",
		0,
		0,
		map[string]any{"jobId": jobID},
	)
	if err != nil {
		itemRecords = nil
	}

	var items []services.InvoiceLineItem
	var total float64
	for i, item := range itemRecords {
		amount := item.GetFloat("total_cost")
		total += amount
		items = append(items, services.InvoiceLineItem{
			SINo:        i + 1,
			Name:        item.GetString("name"),
			ServiceLine: item.GetString("service_line"),
			Type:        item.GetString("type"),
			Quantity:    item.GetInt("quantity"),
			UnitCost:    item.GetFloat("unit_cost"),
			Amount:      amount,
		})
	}

	createdDate := ""
	if dt := job.GetDateTime("created"); !dt.IsZero() {
		createdDate = dt.Time().Format("02 Jan 2006")
	}

	return services.ItemsExportData{
		JobNumber: job.GetString("number"),
		JobName:   job.GetString("name"),
		Date:      createdDate,
		Items:     items,
		Total:     total,
	}, nil
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// HandleJobItemsExportExcel returns a handler that generates and downloads
// an Excel file of a job's line items.
func HandleJobItemsExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		jobID := e.Request.PathValue("id")
		if jobID == "" {
			return e.String(http.StatusBadRequest, "Missing job ID")
		}

		data, err := buildItemsExportData(app, jobID)
		if err != nil {
			log.Printf("export_excel: %v", err)
			return e.String(http.StatusNotFound, "Job not found")
		}

		xlsxBytes, err := services.GenerateItemsExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Job_%s_%d.xlsx", sanitizeFilename(data.JobNumber), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
