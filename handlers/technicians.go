package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleTechniciansList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("technicians", "1=1", "name", 0, 0, nil)
		if err != nil {
			log.Printf("technicians: list: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to list technicians"})
		}
		return e.JSON(http.StatusOK, records)
	}
}

// HandleJobTechniciansList returns the assignments for a job with the
// technician record resolved onto each entry.
func HandleJobTechniciansList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		jobID := e.Request.PathValue("id")

		if _, err := app.FindRecordById("jobs", jobID); err != nil {
			return e.JSON(http.StatusNotFound, map[string]any{"error": "job not found"})
		}

		assignments, err := app.FindRecordsByFilter("job_technicians", "job = {:jobId}", "", 0, 0,
			map[string]any{"jobId": jobID})
		if err != nil {
			log.Printf("technicians: assignments for %s: %v", jobID, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to list assignments"})
		}

		out := make([]map[string]any, 0, len(assignments))
		for _, a := range assignments {
			entry := map[string]any{"assignment": a}
			if tech, err := app.FindRecordById("technicians", a.GetString("technician")); err == nil {
				entry["technician"] = tech
			}
			out = append(out, entry)
		}
		return e.JSON(http.StatusOK, out)
	}
}

func HandleJobTechnicianAssign(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		jobID := e.Request.PathValue("id")

		var body struct {
			TechnicianID string `json:"technicianId"`
			ScheduledAt  string `json:"scheduledAt"`
			IsPrimary    bool   `json:"isPrimary"`
		}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "Invalid request body"})
		}
		if body.TechnicianID == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "Missing required fields"})
		}

		if _, err := app.FindRecordById("jobs", jobID); err != nil {
			return e.JSON(http.StatusNotFound, map[string]any{"error": "job not found"})
		}
		if _, err := app.FindRecordById("technicians", body.TechnicianID); err != nil {
			return e.JSON(http.StatusNotFound, map[string]any{"error": "technician not found"})
		}

		existing, _ := app.FindRecordsByFilter(
			"job_technicians",
			"job = {:jobId} && technician = {:technicianId}",
			"", 1, 0,
			map[string]any{"jobId": jobID, "technicianId": body.TechnicianID},
		)
		if len(existing) > 0 {
			return e.JSON(http.StatusConflict, map[string]any{"error": "Technician is already assigned to this job"})
		}

		col, err := app.FindCollectionByNameOrId("job_technicians")
		if err != nil {
			log.Printf("technicians: could not find job_technicians collection: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to assign technician"})
		}

		record := core.NewRecord(col)
		record.Set("job", jobID)
		record.Set("technician", body.TechnicianID)
		record.Set("scheduled_at", body.ScheduledAt)
		record.Set("is_primary", body.IsPrimary)

		if err := app.Save(record); err != nil {
			log.Printf("technicians: could not save assignment: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to assign technician"})
		}
		return e.JSON(http.StatusOK, record)
	}
}

func HandleJobTechnicianUnassign(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		jobID := e.Request.PathValue("id")
		technicianID := e.Request.PathValue("technicianId")

		existing, _ := app.FindRecordsByFilter(
			"job_technicians",
			"job = {:jobId} && technician = {:technicianId}",
			"", 1, 0,
			map[string]any{"jobId": jobID, "technicianId": technicianID},
		)
		if len(existing) == 0 {
			return e.JSON(http.StatusNotFound, map[string]any{"error": "assignment not found"})
		}

		if err := app.Delete(existing[0]); err != nil {
			log.Printf("technicians: could not delete assignment: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to unassign technician"})
		}
		return e.JSON(http.StatusOK, map[string]any{"success": true})
	}
}
