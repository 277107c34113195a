package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackhoang99/airlast-s-management-sub003/testhelpers"
)

func TestHandleJobReplacementSave_CreatesRecord(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Test Co")
	location := testhelpers.CreateTestLocation(t, app, company.Id, "Office")
	job := testhelpers.CreateTestJob(t, app, location.Id, "5001", "RTU Replacement")
	inspection := testhelpers.CreateTestInspection(t, app, job.Id, "YORK-ZF", "SN-100")

	handler := HandleJobReplacementSave(app)
	req := jsonRequest(t, http.MethodPost, "/api/jobs/"+job.Id+"/replacements", map[string]any{
		"inspectionId":  inspection.Id,
		"selectedPhase": "phase3",
		"totalCost":     18500.0,
		"needsCrane":    true,
		"labor":         2400.0,
		"accessories":   350.0,
	})
	req.SetPathValue("id", job.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	records, err := app.FindRecordsByFilter("job_replacements", "job = {:jobId}", "", 0, 0,
		map[string]any{"jobId": job.Id})
	if err != nil || len(records) != 1 {
		t.Fatalf("expected 1 replacement, got %d (err %v)", len(records), err)
	}
	r := records[0]
	if r.GetString("selected_phase") != "phase3" {
		t.Errorf("selected_phase = %q, want phase3", r.GetString("selected_phase"))
	}
	if r.GetFloat("total_cost") != 18500 {
		t.Errorf("total_cost = %v, want 18500", r.GetFloat("total_cost"))
	}
	if !r.GetBool("needs_crane") {
		t.Error("expected needs_crane to be true")
	}
	if r.GetFloat("labor") != 2400 {
		t.Errorf("labor = %v, want 2400", r.GetFloat("labor"))
	}
	if r.GetFloat("accessories") != 350 {
		t.Errorf("accessories = %v, want 350", r.GetFloat("accessories"))
	}
}

func TestHandleJobReplacementSave_UpsertsPerInspection(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Test Co")
	location := testhelpers.CreateTestLocation(t, app, company.Id, "Office")
	job := testhelpers.CreateTestJob(t, app, location.Id, "5002", "RTU Replacement")
	inspection := testhelpers.CreateTestInspection(t, app, job.Id, "YORK-ZF", "SN-101")

	handler := HandleJobReplacementSave(app)
	for _, phase := range []string{"phase1", "phase3"} {
		req := jsonRequest(t, http.MethodPost, "/api/jobs/"+job.Id+"/replacements", map[string]any{
			"inspectionId":  inspection.Id,
			"selectedPhase": phase,
			"totalCost":     9000.0,
		})
		req.SetPathValue("id", job.Id)
		rec := httptest.NewRecorder()
		if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
			t.Fatalf("save %s error: %v", phase, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("save %s: expected 200, got %d", phase, rec.Code)
		}
	}

	records, _ := app.FindRecordsByFilter("job_replacements", "job = {:jobId}", "", 0, 0,
		map[string]any{"jobId": job.Id})
	if len(records) != 1 {
		t.Fatalf("expected 1 replacement after resave, got %d", len(records))
	}
	if records[0].GetString("selected_phase") != "phase3" {
		t.Errorf("selected_phase = %q, want phase3", records[0].GetString("selected_phase"))
	}
}

func TestHandleJobReplacementSave_InvalidPhaseDefaults(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Test Co")
	location := testhelpers.CreateTestLocation(t, app, company.Id, "Office")
	job := testhelpers.CreateTestJob(t, app, location.Id, "5003", "RTU Replacement")

	handler := HandleJobReplacementSave(app)
	req := jsonRequest(t, http.MethodPost, "/api/jobs/"+job.Id+"/replacements", map[string]any{
		"selectedPhase": "deluxe",
		"totalCost":     5000.0,
	})
	req.SetPathValue("id", job.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	records, _ := app.FindRecordsByFilter("job_replacements", "job = {:jobId}", "", 0, 0,
		map[string]any{"jobId": job.Id})
	if len(records) != 1 {
		t.Fatalf("expected 1 replacement, got %d", len(records))
	}
	if records[0].GetString("selected_phase") != "phase2" {
		t.Errorf("selected_phase = %q, want phase2 default", records[0].GetString("selected_phase"))
	}
}

func TestHandleJobReplacementSave_UnknownJob(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleJobReplacementSave(app)
	req := jsonRequest(t, http.MethodPost, "/api/jobs/nope/replacements", map[string]any{
		"selectedPhase": "phase1",
	})
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleJobReplacementDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Test Co")
	location := testhelpers.CreateTestLocation(t, app, company.Id, "Office")
	job := testhelpers.CreateTestJob(t, app, location.Id, "5004", "RTU Replacement")

	save := HandleJobReplacementSave(app)
	req := jsonRequest(t, http.MethodPost, "/api/jobs/"+job.Id+"/replacements", map[string]any{
		"selectedPhase": "phase1",
		"totalCost":     3000.0,
	})
	req.SetPathValue("id", job.Id)
	rec := httptest.NewRecorder()
	if err := save(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("save error: %v", err)
	}

	records, _ := app.FindRecordsByFilter("job_replacements", "job = {:jobId}", "", 1, 0,
		map[string]any{"jobId": job.Id})
	if len(records) != 1 {
		t.Fatalf("expected 1 replacement, got %d", len(records))
	}

	del := HandleJobReplacementDelete(app)
	req = httptest.NewRequest(http.MethodDelete, "/api/jobs/"+job.Id+"/replacements/"+records[0].Id, nil)
	req.SetPathValue("id", job.Id)
	req.SetPathValue("replacementId", records[0].Id)
	rec = httptest.NewRecorder()
	if err := del(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	remaining, _ := app.FindRecordsByFilter("job_replacements", "job = {:jobId}", "", 0, 0,
		map[string]any{"jobId": job.Id})
	if len(remaining) != 0 {
		t.Errorf("expected 0 replacements after delete, got %d", len(remaining))
	}
}
