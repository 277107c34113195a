package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackhoang99/airlast-s-management-sub003/testhelpers"
)

func TestHandleJobItemCreate_ComputesTotal(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Test Co")
	location := testhelpers.CreateTestLocation(t, app, company.Id, "Office")
	job := testhelpers.CreateTestJob(t, app, location.Id, "1001", "Item job")

	handler := HandleJobItemCreate(app)
	req := jsonRequest(t, http.MethodPost, "/api/jobs/"+job.Id+"/items", map[string]any{
		"name":     "Belt",
		"quantity": 3,
		"unitCost": 12.5,
		"type":     "part",
	})
	req.SetPathValue("id", job.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp["total_cost"] != 37.5 {
		t.Errorf("total_cost = %v, want 37.5", resp["total_cost"])
	}
}

func TestHandleJobItemCreate_DefaultsQuantity(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Test Co")
	location := testhelpers.CreateTestLocation(t, app, company.Id, "Office")
	job := testhelpers.CreateTestJob(t, app, location.Id, "1002", "Item job")

	handler := HandleJobItemCreate(app)
	req := jsonRequest(t, http.MethodPost, "/api/jobs/"+job.Id+"/items", map[string]any{
		"name":     "Refrigerant",
		"unitCost": 80.0,
	})
	req.SetPathValue("id", job.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp["quantity"] != 1.0 {
		t.Errorf("quantity = %v, want 1", resp["quantity"])
	}
	if resp["type"] != "item" {
		t.Errorf("type = %v, want item", resp["type"])
	}
}

func TestHandleJobItemCreate_MissingName(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Test Co")
	location := testhelpers.CreateTestLocation(t, app, company.Id, "Office")
	job := testhelpers.CreateTestJob(t, app, location.Id, "1003", "Item job")

	handler := HandleJobItemCreate(app)
	req := jsonRequest(t, http.MethodPost, "/api/jobs/"+job.Id+"/items", map[string]any{"unitCost": 10.0})
	req.SetPathValue("id", job.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleJobItemDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Test Co")
	location := testhelpers.CreateTestLocation(t, app, company.Id, "Office")
	job := testhelpers.CreateTestJob(t, app, location.Id, "1004", "Item job")
	item := testhelpers.CreateTestJobItem(t, app, job.Id, "Filter", 1, 20)

	handler := HandleJobItemDelete(app)
	req := httptest.NewRequest(http.MethodDelete, "/api/jobs/"+job.Id+"/items/"+item.Id, nil)
	req.SetPathValue("id", job.Id)
	req.SetPathValue("itemId", item.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if _, err := app.FindRecordById("job_items", item.Id); err == nil {
		t.Error("expected item to be deleted")
	}
}

func TestHandleJobItemsList(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Test Co")
	location := testhelpers.CreateTestLocation(t, app, company.Id, "Office")
	job := testhelpers.CreateTestJob(t, app, location.Id, "1005", "Item job")
	testhelpers.CreateTestJobItem(t, app, job.Id, "Filter", 1, 20)
	testhelpers.CreateTestJobItem(t, app, job.Id, "Labor", 1, 150)

	handler := HandleJobItemsList(app)
	req := httptest.NewRequest(http.MethodGet, "/api/jobs/"+job.Id+"/items", nil)
	req.SetPathValue("id", job.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var records []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 items, got %d", len(records))
	}
}
