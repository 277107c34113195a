package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleInspectionsList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		jobID := e.Request.PathValue("id")

		records, err := app.FindRecordsByFilter("job_inspections", "job = {:jobId}", "created", 0, 0,
			map[string]any{"jobId": jobID})
		if err != nil {
			log.Printf("inspections: list for %s: %v", jobID, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to list inspections"})
		}
		return e.JSON(http.StatusOK, records)
	}
}

func HandleInspectionCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		jobID := e.Request.PathValue("id")

		var body struct {
			ModelNumber  string `json:"modelNumber"`
			SerialNumber string `json:"serialNumber"`
			Age          string `json:"age"`
			Tonnage      string `json:"tonnage"`
			UnitType     string `json:"unitType"`
			SystemType   string `json:"systemType"`
		}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "Invalid request body"})
		}

		if _, err := app.FindRecordById("jobs", jobID); err != nil {
			return e.JSON(http.StatusNotFound, map[string]any{"error": "job not found"})
		}

		col, err := app.FindCollectionByNameOrId("job_inspections")
		if err != nil {
			log.Printf("inspections: could not find job_inspections collection: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to create inspection"})
		}

		record := core.NewRecord(col)
		record.Set("job", jobID)
		record.Set("model_number", body.ModelNumber)
		record.Set("serial_number", body.SerialNumber)
		record.Set("age", body.Age)
		record.Set("tonnage", body.Tonnage)
		record.Set("unit_type", body.UnitType)
		record.Set("system_type", body.SystemType)
		record.Set("completed", false)

		if err := app.Save(record); err != nil {
			log.Printf("inspections: could not save inspection: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to create inspection"})
		}
		return e.JSON(http.StatusOK, record)
	}
}

func HandleInspectionComplete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		inspectionID := e.Request.PathValue("inspectionId")

		record, err := app.FindRecordById("job_inspections", inspectionID)
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]any{"error": "inspection not found"})
		}

		record.Set("completed", true)
		if err := app.Save(record); err != nil {
			log.Printf("inspections: could not complete %s: %v", inspectionID, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to update inspection"})
		}
		return e.JSON(http.StatusOK, record)
	}
}
