package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

var JobTypeOptions = []string{"maintenance", "service call", "repair", "inspection repair", "replacement"}

var JobStatusOptions = []string{"unscheduled", "scheduled", "completed", "cancelled"}

func HandleJobsList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := e.Request.URL.Query()

		filters := []string{}
		params := map[string]any{}
		if status := q.Get("status"); status != "" {
			filters = append(filters, "status = {:status}")
			params["status"] = status
		}
		if jobType := q.Get("type"); jobType != "" {
			filters = append(filters, "type = {:type}")
			params["type"] = jobType
		}
		if locationID := q.Get("locationId"); locationID != "" {
			filters = append(filters, "location = {:locationId}")
			params["locationId"] = locationID
		}

		filter := "1=1"
		if len(filters) > 0 {
			filter = strings.Join(filters, " && ")
		}
		records, err := app.FindRecordsByFilter("jobs", filter, "-created", 200, 0, params)
		if err != nil {
			log.Printf("jobs: list: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to list jobs"})
		}
		return e.JSON(http.StatusOK, records)
	}
}

// HandleJobGet returns one job with its location, unit, items and
// inspections resolved, mirroring the nested shape the quote builder
// consumes.
func HandleJobGet(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		jobID := e.Request.PathValue("id")

		job, err := app.FindRecordById("jobs", jobID)
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]any{"error": "job not found"})
		}

		out := map[string]any{"job": job}

		if locationID := job.GetString("location"); locationID != "" {
			if location, err := app.FindRecordById("locations", locationID); err == nil {
				out["location"] = location
				if companyID := location.GetString("company"); companyID != "" {
					if company, err := app.FindRecordById("companies", companyID); err == nil {
						out["company"] = company
					}
				}
			}
		}
		if unitID := job.GetString("unit"); unitID != "" {
			if unit, err := app.FindRecordById("units", unitID); err == nil {
				out["unit"] = unit
			}
		}

		items, err := app.FindRecordsByFilter("job_items", "job = {:jobId}", "created", 0, 0,
			map[string]any{"jobId": jobID})
		if err != nil {
			log.Printf("jobs: items for %s: %v", jobID, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to load job items"})
		}
		out["items"] = items

		inspections, err := app.FindRecordsByFilter("job_inspections", "job = {:jobId}", "created", 0, 0,
			map[string]any{"jobId": jobID})
		if err != nil {
			log.Printf("jobs: inspections for %s: %v", jobID, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to load inspections"})
		}
		out["inspections"] = inspections

		return e.JSON(http.StatusOK, out)
	}
}

func HandleJobCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var body struct {
			Number       string `json:"number"`
			Name         string `json:"name"`
			LocationID   string `json:"locationId"`
			UnitID       string `json:"unitId"`
			Type         string `json:"type"`
			ContactName  string `json:"contactName"`
			ContactEmail string `json:"contactEmail"`
			ContactPhone string `json:"contactPhone"`
			IsContract   bool   `json:"isContract"`
		}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "Invalid request body"})
		}

		body.Number = strings.TrimSpace(body.Number)
		body.Name = strings.TrimSpace(body.Name)
		if body.Number == "" || body.Name == "" || body.LocationID == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "Missing required fields"})
		}

		validType := false
		for _, t := range JobTypeOptions {
			if body.Type == t {
				validType = true
				break
			}
		}
		if !validType {
			body.Type = "maintenance"
		}

		existing, _ := app.FindRecordsByFilter(
			"jobs",
			"number = {:number}",
			"", 1, 0,
			map[string]any{"number": body.Number},
		)
		if len(existing) > 0 {
			return e.JSON(http.StatusConflict, map[string]any{"error": "A job with this number already exists"})
		}

		jobsCol, err := app.FindCollectionByNameOrId("jobs")
		if err != nil {
			log.Printf("jobs: could not find jobs collection: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to create job"})
		}

		record := core.NewRecord(jobsCol)
		record.Set("number", body.Number)
		record.Set("name", body.Name)
		record.Set("location", body.LocationID)
		record.Set("unit", body.UnitID)
		record.Set("type", body.Type)
		record.Set("status", "unscheduled")
		record.Set("contact_name", body.ContactName)
		record.Set("contact_email", body.ContactEmail)
		record.Set("contact_phone", body.ContactPhone)
		record.Set("is_contract", body.IsContract)

		if err := app.Save(record); err != nil {
			log.Printf("jobs: could not save job: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to create job"})
		}
		return e.JSON(http.StatusOK, record)
	}
}

// HandleJobDelete removes a job. Items, inspections, replacements, quotes
// and invoices cascade with it.
func HandleJobDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		jobID := e.Request.PathValue("id")

		job, err := app.FindRecordById("jobs", jobID)
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]any{"error": "job not found"})
		}

		if err := app.Delete(job); err != nil {
			log.Printf("jobs: could not delete %s: %v", jobID, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to delete job"})
		}
		return e.JSON(http.StatusOK, map[string]any{"success": true})
	}
}

func HandleJobUpdateStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		jobID := e.Request.PathValue("id")

		var body struct {
			Status string `json:"status"`
		}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "Invalid request body"})
		}

		valid := false
		for _, s := range JobStatusOptions {
			if body.Status == s {
				valid = true
				break
			}
		}
		if !valid {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid status"})
		}

		job, err := app.FindRecordById("jobs", jobID)
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]any{"error": "job not found"})
		}

		job.Set("status", body.Status)
		if err := app.Save(job); err != nil {
			log.Printf("jobs: could not update status for %s: %v", jobID, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to update job"})
		}
		return e.JSON(http.StatusOK, job)
	}
}
