package collections_test

import (
	"testing"

	"github.com/jackhoang99/airlast-s-management-sub003/collections"
	"github.com/jackhoang99/airlast-s-management-sub003/testhelpers"
)

func TestSeed_CreatesData(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	// Verify the company was created
	companiesCol, _ := app.FindCollectionByNameOrId("companies")
	companies, err := app.FindAllRecords(companiesCol)
	if err != nil {
		t.Fatalf("query companies error: %v", err)
	}
	if len(companies) != 1 {
		t.Fatalf("expected 1 company, got %d", len(companies))
	}
	if companies[0].GetString("name") != "Peachtree Commercial Properties" {
		t.Errorf("company name = %q, want %q", companies[0].GetString("name"), "Peachtree Commercial Properties")
	}

	// Verify locations linked to the company
	locationsCol, _ := app.FindCollectionByNameOrId("locations")
	locations, _ := app.FindAllRecords(locationsCol)
	if len(locations) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(locations))
	}
	for _, loc := range locations {
		if loc.GetString("company") != companies[0].Id {
			t.Errorf("location %q company = %q, want %q", loc.GetString("name"), loc.GetString("company"), companies[0].Id)
		}
	}

	// Verify units across both locations
	unitsCol, _ := app.FindCollectionByNameOrId("units")
	units, _ := app.FindAllRecords(unitsCol)
	if len(units) != 5 {
		t.Errorf("expected 5 units, got %d", len(units))
	}

	// Verify technicians
	techsCol, _ := app.FindCollectionByNameOrId("technicians")
	techs, _ := app.FindAllRecords(techsCol)
	if len(techs) != 2 {
		t.Errorf("expected 2 technicians, got %d", len(techs))
	}

	// Verify the quote template
	templatesCol, _ := app.FindCollectionByNameOrId("quote_templates")
	templates, _ := app.FindAllRecords(templatesCol)
	if len(templates) != 1 {
		t.Fatalf("expected 1 quote template, got %d", len(templates))
	}
	if templates[0].GetString("name") != "Standard Repair Quote" {
		t.Errorf("template name = %q, want %q", templates[0].GetString("name"), "Standard Repair Quote")
	}

	// Verify jobs
	jobsCol, _ := app.FindCollectionByNameOrId("jobs")
	jobs, _ := app.FindAllRecords(jobsCol)
	if len(jobs) != 2 {
		t.Errorf("expected 2 jobs, got %d", len(jobs))
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	// Should still have exactly 1 company
	companiesCol, _ := app.FindCollectionByNameOrId("companies")
	companies, _ := app.FindAllRecords(companiesCol)
	if len(companies) != 1 {
		t.Errorf("expected 1 company after idempotent seed, got %d", len(companies))
	}

	// Should still have exactly 2 jobs
	jobsCol, _ := app.FindCollectionByNameOrId("jobs")
	jobs, _ := app.FindAllRecords(jobsCol)
	if len(jobs) != 2 {
		t.Errorf("expected 2 jobs after idempotent seed, got %d", len(jobs))
	}
}

func TestSeed_JobItemDetails(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	itemsCol, _ := app.FindCollectionByNameOrId("job_items")
	items, _ := app.FindRecordsByFilter(
		itemsCol,
		"code = {:c}",
		"", 1, 0,
		map[string]any{"c": "FLT-20"},
	)
	if len(items) == 0 {
		t.Fatal("filter item FLT-20 not found")
	}

	item := items[0]
	if item.GetInt("quantity") != 4 {
		t.Errorf("quantity = %v, want 4", item.GetInt("quantity"))
	}
	if item.GetFloat("unit_cost") != 18.50 {
		t.Errorf("unit_cost = %v, want 18.50", item.GetFloat("unit_cost"))
	}
	if item.GetFloat("total_cost") != 74 {
		t.Errorf("total_cost = %v, want 74", item.GetFloat("total_cost"))
	}
	if item.GetString("type") != "part" {
		t.Errorf("type = %q, want %q", item.GetString("type"), "part")
	}
}

func TestSeed_InspectionOnDiagnosisJob(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	jobsCol, _ := app.FindCollectionByNameOrId("jobs")
	jobs, _ := app.FindRecordsByFilter(
		jobsCol,
		"number = {:n}",
		"", 1, 0,
		map[string]any{"n": "1002"},
	)
	if len(jobs) == 0 {
		t.Fatal("job 1002 not found")
	}

	inspectionsCol, _ := app.FindCollectionByNameOrId("job_inspections")
	inspections, _ := app.FindRecordsByFilter(
		inspectionsCol,
		"job = {:id}",
		"", 0, 0,
		map[string]any{"id": jobs[0].Id},
	)
	if len(inspections) != 1 {
		t.Errorf("expected 1 inspection on job 1002, got %d", len(inspections))
	}
}

func TestSeed_SkipsWhenDataExists(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// Create a company first (not via Seed)
	testhelpers.CreateTestCompany(t, app, "Existing Co")

	// Seed should skip because company data already exists
	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	companiesCol, _ := app.FindCollectionByNameOrId("companies")
	companies, _ := app.FindAllRecords(companiesCol)
	if len(companies) != 1 {
		t.Errorf("expected 1 company (pre-existing only), got %d", len(companies))
	}
	if companies[0].GetString("name") != "Existing Co" {
		t.Errorf("expected pre-existing company, got %q", companies[0].GetString("name"))
	}

	jobsCol, _ := app.FindCollectionByNameOrId("jobs")
	jobs, _ := app.FindAllRecords(jobsCol)
	if len(jobs) != 0 {
		t.Errorf("expected no seeded jobs, got %d", len(jobs))
	}
}
