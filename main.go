package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/jackhoang99/airlast-s-management-sub003/collections"
	"github.com/jackhoang99/airlast-s-management-sub003/handlers"
)

func main() {
	app := pocketbase.New()

	urlSecret := []byte(os.Getenv("PDF_URL_SECRET"))
	if len(urlSecret) == 0 {
		log.Printf("Warning: PDF_URL_SECRET not set, using development default")
		urlSecret = []byte("dev-only-secret")
	}

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.BindFunc(handlers.CORSMiddleware())

		// ── Quote PDF generation and delivery ───────────────────
		se.Router.POST("/api/quotes/generate-pdf", handlers.HandleQuoteGeneratePDF(app, urlSecret))
		se.Router.POST("/api/quotes/confirm/{token}", handlers.HandleQuoteConfirm(app))
		se.Router.GET("/api/files/{path...}", handlers.HandleFileDownload(app, urlSecret))

		// ── Jobs ────────────────────────────────────────────────
		se.Router.GET("/api/jobs", handlers.HandleJobsList(app))
		se.Router.POST("/api/jobs", handlers.HandleJobCreate(app))
		se.Router.GET("/api/jobs/{id}", handlers.HandleJobGet(app))
		se.Router.PATCH("/api/jobs/{id}/status", handlers.HandleJobUpdateStatus(app))
		se.Router.DELETE("/api/jobs/{id}", handlers.HandleJobDelete(app))

		// ── Job items ───────────────────────────────────────────
		se.Router.GET("/api/jobs/{id}/items", handlers.HandleJobItemsList(app))
		se.Router.POST("/api/jobs/{id}/items", handlers.HandleJobItemCreate(app))
		se.Router.DELETE("/api/jobs/{id}/items/{itemId}", handlers.HandleJobItemDelete(app))
		se.Router.GET("/api/jobs/{id}/items/export", handlers.HandleJobItemsExportExcel(app))

		// ── Inspections ─────────────────────────────────────────
		se.Router.GET("/api/jobs/{id}/inspections", handlers.HandleInspectionsList(app))
		se.Router.POST("/api/jobs/{id}/inspections", handlers.HandleInspectionCreate(app))
		se.Router.PATCH("/api/jobs/{id}/inspections/{inspectionId}/complete", handlers.HandleInspectionComplete(app))

		// ── Replacements ────────────────────────────────────────
		se.Router.GET("/api/jobs/{id}/replacements", handlers.HandleJobReplacementsList(app))
		se.Router.POST("/api/jobs/{id}/replacements", handlers.HandleJobReplacementSave(app))
		se.Router.DELETE("/api/jobs/{id}/replacements/{replacementId}", handlers.HandleJobReplacementDelete(app))

		// ── Technicians ─────────────────────────────────────────
		se.Router.GET("/api/technicians", handlers.HandleTechniciansList(app))
		se.Router.GET("/api/jobs/{id}/technicians", handlers.HandleJobTechniciansList(app))
		se.Router.POST("/api/jobs/{id}/technicians", handlers.HandleJobTechnicianAssign(app))
		se.Router.DELETE("/api/jobs/{id}/technicians/{technicianId}", handlers.HandleJobTechnicianUnassign(app))

		// ── Quote templates ─────────────────────────────────────
		se.Router.GET("/api/templates", handlers.HandleTemplatesList(app))
		se.Router.POST("/api/templates", handlers.HandleTemplateCreate(app))
		se.Router.GET("/api/templates/{id}", handlers.HandleTemplateGet(app))

		// ── Invoices ────────────────────────────────────────────
		se.Router.GET("/api/invoices", handlers.HandleInvoicesList(app))
		se.Router.POST("/api/invoices", handlers.HandleInvoiceCreate(app))
		se.Router.PATCH("/api/invoices/{id}/status", handlers.HandleInvoiceUpdateStatus(app))
		se.Router.GET("/api/invoices/{id}/export/pdf", handlers.HandleInvoiceExportPDF(app))

		// ── Customer portal (company-scoped, read-only) ─────────
		se.Router.GET("/api/portal/{companyId}/locations", handlers.HandlePortalLocations(app))
		se.Router.GET("/api/portal/{companyId}/units", handlers.HandlePortalUnits(app))
		se.Router.GET("/api/portal/{companyId}/jobs", handlers.HandlePortalJobs(app))
		se.Router.GET("/api/portal/{companyId}/quotes", handlers.HandlePortalQuotes(app))
		se.Router.GET("/api/portal/{companyId}/invoices", handlers.HandlePortalInvoices(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
