package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

var JobItemTypeOptions = []string{"part", "labor", "item"}

func HandleJobItemsList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		jobID := e.Request.PathValue("id")

		items, err := app.FindRecordsByFilter("job_items", "job = {:jobId}", "created", 0, 0,
			map[string]any{"jobId": jobID})
		if err != nil {
			log.Printf("job_items: list for %s: %v", jobID, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to list job items"})
		}
		return e.JSON(http.StatusOK, items)
	}
}

func HandleJobItemCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		jobID := e.Request.PathValue("id")

		var body struct {
			Code        string  `json:"code"`
			Name        string  `json:"name"`
			ServiceLine string  `json:"serviceLine"`
			Quantity    int     `json:"quantity"`
			UnitCost    float64 `json:"unitCost"`
			Type        string  `json:"type"`
		}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "Invalid request body"})
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "Missing required fields"})
		}
		if body.Quantity <= 0 {
			body.Quantity = 1
		}

		validType := false
		for _, t := range JobItemTypeOptions {
			if body.Type == t {
				validType = true
				break
			}
		}
		if !validType {
			body.Type = "item"
		}

		if _, err := app.FindRecordById("jobs", jobID); err != nil {
			return e.JSON(http.StatusNotFound, map[string]any{"error": "job not found"})
		}

		itemsCol, err := app.FindCollectionByNameOrId("job_items")
		if err != nil {
			log.Printf("job_items: could not find job_items collection: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to create item"})
		}

		record := core.NewRecord(itemsCol)
		record.Set("job", jobID)
		record.Set("code", body.Code)
		record.Set("name", body.Name)
		record.Set("service_line", body.ServiceLine)
		record.Set("quantity", body.Quantity)
		record.Set("unit_cost", body.UnitCost)
		record.Set("total_cost", float64(body.Quantity)*body.UnitCost)
		record.Set("type", body.Type)

		if err := app.Save(record); err != nil {
			log.Printf("job_items: could not save item: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to create item"})
		}
		return e.JSON(http.StatusOK, record)
	}
}

func HandleJobItemDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		itemID := e.Request.PathValue("itemId")

		record, err := app.FindRecordById("job_items", itemID)
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]any{"error": "item not found"})
		}

		if err := app.Delete(record); err != nil {
			log.Printf("job_items: could not delete %s: %v", itemID, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to delete item"})
		}
		return e.JSON(http.StatusOK, map[string]any{"success": true})
	}
}
