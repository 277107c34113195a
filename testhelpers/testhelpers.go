// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/jackhoang99/airlast-s-management-sub003/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestCompany creates a company record with the given name and returns it.
func CreateTestCompany(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("companies")
	if err != nil {
		t.Fatalf("failed to find companies collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test company: %v", err)
	}

	return record
}

// CreateTestLocation creates a location record linked to a company.
func CreateTestLocation(t *testing.T, app *pocketbase.PocketBase, companyID, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("locations")
	if err != nil {
		t.Fatalf("failed to find locations collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("company", companyID)
	record.Set("name", name)
	record.Set("address", "1200 Peachtree St NE")
	record.Set("city", "Atlanta")
	record.Set("state", "GA")
	record.Set("zip", "30309")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test location: %v", err)
	}

	return record
}

// CreateTestUnit creates a unit record linked to a location.
func CreateTestUnit(t *testing.T, app *pocketbase.PocketBase, locationID, unitNumber string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("units")
	if err != nil {
		t.Fatalf("failed to find units collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("location", locationID)
	record.Set("unit_number", unitNumber)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test unit: %v", err)
	}

	return record
}

// CreateTestJob creates a job record linked to a location.
func CreateTestJob(t *testing.T, app *pocketbase.PocketBase, locationID, number, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("jobs")
	if err != nil {
		t.Fatalf("failed to find jobs collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("number", number)
	record.Set("name", name)
	record.Set("location", locationID)
	record.Set("type", "maintenance")
	record.Set("status", "unscheduled")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test job: %v", err)
	}

	return record
}

// CreateTestJobItem creates a job item record.
func CreateTestJobItem(t *testing.T, app *pocketbase.PocketBase, jobID, name string, quantity int, unitCost float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("job_items")
	if err != nil {
		t.Fatalf("failed to find job_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("job", jobID)
	record.Set("name", name)
	record.Set("quantity", quantity)
	record.Set("unit_cost", unitCost)
	record.Set("total_cost", float64(quantity)*unitCost)
	record.Set("type", "item")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test job item: %v", err)
	}

	return record
}

// CreateTestInspection creates a job inspection record.
func CreateTestInspection(t *testing.T, app *pocketbase.PocketBase, jobID, modelNumber, serialNumber string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("job_inspections")
	if err != nil {
		t.Fatalf("failed to find job_inspections collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("job", jobID)
	record.Set("model_number", modelNumber)
	record.Set("serial_number", serialNumber)
	record.Set("age", "12")
	record.Set("tonnage", "5")
	record.Set("unit_type", "rooftop")
	record.Set("system_type", "gas")
	record.Set("completed", false)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test inspection: %v", err)
	}

	return record
}

// CreateTestTemplate creates a quote template record with the given
// template_data payload.
func CreateTestTemplate(t *testing.T, app *pocketbase.PocketBase, name string, templateData map[string]any) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quote_templates")
	if err != nil {
		t.Fatalf("failed to find quote_templates collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("type", "replacement")
	record.Set("template_data", templateData)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test template: %v", err)
	}

	return record
}

// CreateTestTechnician creates a technician record.
func CreateTestTechnician(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("technicians")
	if err != nil {
		t.Fatalf("failed to find technicians collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("email", "tech@example.com")
	record.Set("phone", "404-555-0100")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test technician: %v", err)
	}

	return record
}

// CreateTestInvoice creates a job invoice record.
func CreateTestInvoice(t *testing.T, app *pocketbase.PocketBase, jobID, invoiceNumber string, amount float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("job_invoices")
	if err != nil {
		t.Fatalf("failed to find job_invoices collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("job", jobID)
	record.Set("invoice_number", invoiceNumber)
	record.Set("amount", amount)
	record.Set("status", "issued")
	record.Set("issued_date", "2025-06-01")
	record.Set("due_date", "2025-07-01")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test invoice: %v", err)
	}

	return record
}
