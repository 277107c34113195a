package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackhoang99/airlast-s-management-sub003/testhelpers"
)

func TestCORSMiddleware_Preflight(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	middleware := CORSMiddleware()
	req := httptest.NewRequest(http.MethodOptions, "/api/quotes/generate-pdf", nil)
	rec := httptest.NewRecorder()

	if err := middleware(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for preflight, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
	if rec.Header().Get("Access-Control-Allow-Headers") == "" {
		t.Error("expected Access-Control-Allow-Headers to be set")
	}
}
