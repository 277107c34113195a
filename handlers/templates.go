package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/jackhoang99/airlast-s-management-sub003/services"
)

var TemplateTypeOptions = []string{"replacement", "repair"}

func HandleTemplatesList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("quote_templates", "1=1", "name", 0, 0, nil)
		if err != nil {
			log.Printf("templates: list: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to list templates"})
		}
		return e.JSON(http.StatusOK, records)
	}
}

func HandleTemplateCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var body struct {
			Name         string                `json:"name"`
			Type         string                `json:"type"`
			TemplateData services.TemplateMeta `json:"templateData"`
		}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "Invalid request body"})
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "Missing required fields"})
		}

		validType := false
		for _, t := range TemplateTypeOptions {
			if body.Type == t {
				validType = true
				break
			}
		}
		if !validType {
			body.Type = "replacement"
		}

		col, err := app.FindCollectionByNameOrId("quote_templates")
		if err != nil {
			log.Printf("templates: could not find quote_templates collection: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to create template"})
		}

		record := core.NewRecord(col)
		record.Set("name", body.Name)
		record.Set("type", body.Type)
		record.Set("template_data", body.TemplateData)

		if err := app.Save(record); err != nil {
			log.Printf("templates: could not save template: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to create template"})
		}
		return e.JSON(http.StatusOK, record)
	}
}

func HandleTemplateGet(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		templateID := e.Request.PathValue("id")

		record, err := app.FindRecordById("quote_templates", templateID)
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]any{"error": "template not found"})
		}
		return e.JSON(http.StatusOK, record)
	}
}
