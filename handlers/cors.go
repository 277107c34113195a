package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"
)

// CORSMiddleware allows the customer portal and back-office SPA, which are
// served from other origins, to call the JSON API. Preflight requests are
// answered immediately with 200 and no body.
func CORSMiddleware() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		h := e.Response.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")

		if e.Request.Method == http.MethodOptions {
			return e.NoContent(http.StatusOK)
		}
		return e.Next()
	}
}
