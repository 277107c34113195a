package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Portal routes are the read-only surface exposed to customers. Everything
// is scoped by company.

func HandlePortalLocations(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := e.Request.PathValue("companyId")

		if _, err := app.FindRecordById("companies", companyID); err != nil {
			return e.JSON(http.StatusNotFound, map[string]any{"error": "company not found"})
		}

		records, err := app.FindRecordsByFilter("locations", "company = {:companyId}", "name", 0, 0,
			map[string]any{"companyId": companyID})
		if err != nil {
			log.Printf("portal: locations for %s: %v", companyID, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to list locations"})
		}
		return e.JSON(http.StatusOK, records)
	}
}

func HandlePortalUnits(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := e.Request.PathValue("companyId")

		locations, err := app.FindRecordsByFilter("locations", "company = {:companyId}", "", 0, 0,
			map[string]any{"companyId": companyID})
		if err != nil {
			log.Printf("portal: locations for %s: %v", companyID, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to list units"})
		}

		var units []*core.Record
		for _, loc := range locations {
			locUnits, err := app.FindRecordsByFilter("units", "location = {:locationId}", "unit_number", 0, 0,
				map[string]any{"locationId": loc.Id})
			if err != nil {
				log.Printf("portal: units for location %s: %v", loc.Id, err)
				continue
			}
			units = append(units, locUnits...)
		}
		return e.JSON(http.StatusOK, units)
	}
}

func HandlePortalJobs(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := e.Request.PathValue("companyId")

		locations, err := app.FindRecordsByFilter("locations", "company = {:companyId}", "", 0, 0,
			map[string]any{"companyId": companyID})
		if err != nil {
			log.Printf("portal: locations for %s: %v", companyID, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to list jobs"})
		}

		var jobs []*core.Record
		for _, loc := range locations {
			locJobs, err := app.FindRecordsByFilter("jobs", "location = {:locationId}", "-created", 0, 0,
				map[string]any{"locationId": loc.Id})
			if err != nil {
				log.Printf("portal: jobs for location %s: %v", loc.Id, err)
				continue
			}
			jobs = append(jobs, locJobs...)
		}
		return e.JSON(http.StatusOK, jobs)
	}
}

func HandlePortalInvoices(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := e.Request.PathValue("companyId")

		locations, err := app.FindRecordsByFilter("locations", "company = {:companyId}", "", 0, 0,
			map[string]any{"companyId": companyID})
		if err != nil {
			log.Printf("portal: locations for %s: %v", companyID, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to list invoices"})
		}

		var invoices []*core.Record
		for _, loc := range locations {
			locJobs, err := app.FindRecordsByFilter("jobs", "location = {:locationId}", "", 0, 0,
				map[string]any{"locationId": loc.Id})
			if err != nil {
				continue
			}
			for _, job := range locJobs {
				jobInvoices, err := app.FindRecordsByFilter("job_invoices", "job = {:jobId}", "-created", 0, 0,
					map[string]any{"jobId": job.Id})
				if err != nil {
					log.Printf("portal: invoices for job %s: %v", job.Id, err)
					continue
				}
				invoices = append(invoices, jobInvoices...)
			}
		}
		return e.JSON(http.StatusOK, invoices)
	}
}

func HandlePortalQuotes(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := e.Request.PathValue("companyId")

		locations, err := app.FindRecordsByFilter("locations", "company = {:companyId}", "", 0, 0,
			map[string]any{"companyId": companyID})
		if err != nil {
			log.Printf("portal: locations for %s: %v", companyID, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to list quotes"})
		}

		var quotes []*core.Record
		for _, loc := range locations {
			locJobs, err := app.FindRecordsByFilter("jobs", "location = {:locationId}", "", 0, 0,
				map[string]any{"locationId": loc.Id})
			if err != nil {
				continue
			}
			for _, job := range locJobs {
				jobQuotes, err := app.FindRecordsByFilter("job_quotes", "job = {:jobId}", "-created", 0, 0,
					map[string]any{"jobId": job.Id})
				if err != nil {
					log.Printf("portal: quotes for job %s: %v", job.Id, err)
					continue
				}
				quotes = append(quotes, jobQuotes...)
			}
		}
		return e.JSON(http.StatusOK, quotes)
	}
}
