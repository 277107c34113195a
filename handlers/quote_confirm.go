package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleQuoteConfirm records a customer's decision on a quote. The token is
// the opaque value embedded in the emailed link, not a record ID.
func HandleQuoteConfirm(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		token := e.Request.PathValue("token")
		if token == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "missing token"})
		}

		var body struct {
			Approved bool `json:"approved"`
		}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "Invalid request body"})
		}

		quotes, err := app.FindRecordsByFilter(
			"job_quotes",
			"token = {:token}",
			"", 1, 0,
			map[string]any{"token": token},
		)
		if err != nil || len(quotes) == 0 {
			return e.JSON(http.StatusNotFound, map[string]any{"error": "quote not found"})
		}

		quote := quotes[0]
		if quote.GetBool("confirmed") {
			return e.JSON(http.StatusOK, map[string]any{
				"success":  true,
				"approved": quote.GetBool("approved"),
			})
		}

		quote.Set("confirmed", true)
		quote.Set("approved", body.Approved)
		if err := app.Save(quote); err != nil {
			log.Printf("quote_confirm: could not save quote %s: %v", quote.Id, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to confirm quote"})
		}

		return e.JSON(http.StatusOK, map[string]any{
			"success":  true,
			"approved": body.Approved,
		})
	}
}
