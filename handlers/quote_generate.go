package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/jackhoang99/airlast-s-management-sub003/services"
)

// signedURLTTL matches the storage layer's previous 1 hour expiry.
const signedURLTTL = time.Hour

// HandleQuoteGeneratePDF returns the handler for the quote PDF generation
// endpoint. It validates the request, runs the composition engine, uploads
// the result under quotes/{jobId}/{quoteType}_{quoteNumber}.pdf (upsert),
// records the quote if it does not exist yet, and responds with a
// time-limited signed download URL.
func HandleQuoteGeneratePDF(app *pocketbase.PocketBase, urlSecret []byte) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req services.QuoteRequest
		if err := e.BindBody(&req); err != nil {
			log.Printf("quote_generate: invalid body: %v", err)
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "Invalid request body"})
		}
		if err := req.Validate(); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "Missing required fields"})
		}

		meta, err := loadTemplateMeta(app, req.TemplateID)
		if err != nil {
			log.Printf("quote_generate: template %s: %v", req.TemplateID, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
		}

		tpl, err := services.LoadQuoteTemplate(http.DefaultClient, meta)
		if err != nil {
			log.Printf("quote_generate: load template %s: %v", req.TemplateID, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
		}

		pdfBytes, err := services.GenerateQuotePDF(tpl, &req, time.Now())
		if err != nil {
			log.Printf("quote_generate: generate for job %s: %v", req.JobID, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
		}

		fileKey := fmt.Sprintf("quotes/%s/%s_%s.pdf", req.JobID, req.QuoteType, req.QuoteNumber)

		fsys, err := app.NewFilesystem()
		if err != nil {
			log.Printf("quote_generate: filesystem: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "storage unavailable"})
		}
		defer fsys.Close()

		if err := fsys.Upload(pdfBytes, fileKey); err != nil {
			log.Printf("quote_generate: upload %s: %v", fileKey, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to upload generated PDF"})
		}

		token, err := services.SignFilePath(urlSecret, fileKey, signedURLTTL)
		if err != nil {
			log.Printf("quote_generate: sign url for %s: %v", fileKey, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to create signed URL"})
		}
		pdfURL := fmt.Sprintf("/api/files/%s?token=%s", fileKey, token)

		if err := upsertJobQuote(app, &req); err != nil {
			log.Printf("quote_generate: record quote for job %s: %v", req.JobID, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
		}

		return e.JSON(http.StatusOK, map[string]any{
			"success":     true,
			"pdfUrl":      pdfURL,
			"quoteNumber": req.QuoteNumber,
			"quoteType":   req.QuoteType,
		})
	}
}

// loadTemplateMeta fetches the quote_templates record and decodes its
// template_data payload.
func loadTemplateMeta(app *pocketbase.PocketBase, templateID string) (services.TemplateMeta, error) {
	var meta services.TemplateMeta

	record, err := app.FindRecordById("quote_templates", templateID)
	if err != nil {
		return meta, services.ErrTemplateNotFound
	}
	if err := record.UnmarshalJSONField("template_data", &meta); err != nil {
		return meta, services.ErrTemplateNotFound
	}
	if meta.FileURL == "" {
		return meta, services.ErrTemplateNotFound
	}
	return meta, nil
}

// upsertJobQuote records the quote once per (job, type, number). The amount
// prefers the replacement total; item sums are the fallback.
func upsertJobQuote(app *pocketbase.PocketBase, req *services.QuoteRequest) error {
	existing, _ := app.FindRecordsByFilter(
		"job_quotes",
		"job = {:jobId} && quote_type = {:quoteType} && quote_number = {:quoteNumber}",
		"", 1, 0,
		map[string]any{
			"jobId":       req.JobID,
			"quoteType":   req.QuoteType,
			"quoteNumber": req.QuoteNumber,
		},
	)
	if len(existing) > 0 {
		return nil
	}

	col, err := app.FindCollectionByNameOrId("job_quotes")
	if err != nil {
		return fmt.Errorf("job_quotes collection: %w", err)
	}

	entries := services.NormalizeReplacements(req, time.Now())

	record := core.NewRecord(col)
	record.Set("job", req.JobID)
	record.Set("quote_number", req.QuoteNumber)
	record.Set("quote_type", req.QuoteType)
	record.Set("amount", services.QuoteAmount(entries, req.JobItems))
	record.Set("token", uuid.NewString())
	record.Set("confirmed", false)
	record.Set("approved", false)
	record.Set("email", req.Job.ContactEmail)

	if err := app.Save(record); err != nil {
		return fmt.Errorf("save quote record: %w", err)
	}
	return nil
}
