package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

var ReplacementPhaseOptions = []string{"phase1", "phase2", "phase3"}

func HandleJobReplacementsList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		jobID := e.Request.PathValue("id")

		if _, err := app.FindRecordById("jobs", jobID); err != nil {
			return e.JSON(http.StatusNotFound, map[string]any{"error": "job not found"})
		}

		records, err := app.FindRecordsByFilter("job_replacements", "job = {:jobId}", "created", 0, 0,
			map[string]any{"jobId": jobID})
		if err != nil {
			log.Printf("replacements: list for %s: %v", jobID, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to list replacements"})
		}
		return e.JSON(http.StatusOK, records)
	}
}

// HandleJobReplacementSave stores the replacement selection for a job. One
// record is kept per inspection, so saving again for the same inspection
// overwrites the previous selection.
func HandleJobReplacementSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		jobID := e.Request.PathValue("id")

		var body struct {
			InspectionID  string         `json:"inspectionId"`
			SelectedPhase string         `json:"selectedPhase"`
			TotalCost     float64        `json:"totalCost"`
			NeedsCrane    bool           `json:"needsCrane"`
			Phases        map[string]any `json:"phases"`
			Labor         float64        `json:"labor"`
			Accessories   float64        `json:"accessories"`
		}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "Invalid request body"})
		}

		if _, err := app.FindRecordById("jobs", jobID); err != nil {
			return e.JSON(http.StatusNotFound, map[string]any{"error": "job not found"})
		}
		if body.InspectionID != "" {
			if _, err := app.FindRecordById("job_inspections", body.InspectionID); err != nil {
				return e.JSON(http.StatusNotFound, map[string]any{"error": "inspection not found"})
			}
		}

		validPhase := false
		for _, p := range ReplacementPhaseOptions {
			if body.SelectedPhase == p {
				validPhase = true
				break
			}
		}
		if !validPhase {
			body.SelectedPhase = "phase2"
		}

		existing, _ := app.FindRecordsByFilter(
			"job_replacements",
			"job = {:jobId} && inspection = {:inspectionId}",
			"", 1, 0,
			map[string]any{"jobId": jobID, "inspectionId": body.InspectionID},
		)

		var record *core.Record
		if len(existing) > 0 {
			record = existing[0]
		} else {
			col, err := app.FindCollectionByNameOrId("job_replacements")
			if err != nil {
				log.Printf("replacements: could not find job_replacements collection: %v", err)
				return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to save replacement"})
			}
			record = core.NewRecord(col)
			record.Set("job", jobID)
			record.Set("inspection", body.InspectionID)
		}

		record.Set("selected_phase", body.SelectedPhase)
		record.Set("total_cost", body.TotalCost)
		record.Set("needs_crane", body.NeedsCrane)
		record.Set("phases", body.Phases)
		record.Set("labor", body.Labor)
		record.Set("accessories", body.Accessories)

		if err := app.Save(record); err != nil {
			log.Printf("replacements: could not save for %s: %v", jobID, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to save replacement"})
		}
		return e.JSON(http.StatusOK, record)
	}
}

func HandleJobReplacementDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		replacementID := e.Request.PathValue("replacementId")

		record, err := app.FindRecordById("job_replacements", replacementID)
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]any{"error": "replacement not found"})
		}

		if err := app.Delete(record); err != nil {
			log.Printf("replacements: could not delete %s: %v", replacementID, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to delete replacement"})
		}
		return e.JSON(http.StatusOK, map[string]any{"success": true})
	}
}
