package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures every collection the application
// uses: the customer hierarchy (companies, locations, units), jobs and their
// satellite records, quoting, invoicing, and technician scheduling.
func Setup(app *pocketbase.PocketBase) {
	companies := ensureCollection(app, "companies", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "city", Required: false})
		c.Fields.Add(&core.TextField{Name: "state", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	locations := ensureCollection(app, "locations", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "company",
			Required:      true,
			CollectionId:  companies.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "address", Required: false})
		c.Fields.Add(&core.TextField{Name: "city", Required: false})
		c.Fields.Add(&core.TextField{Name: "state", Required: false})
		c.Fields.Add(&core.TextField{Name: "zip", Required: false})
	})

	units := ensureCollection(app, "units", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "location",
			Required:      true,
			CollectionId:  locations.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "unit_number", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  false,
			Values:    []string{"active", "inactive"},
			MaxSelect: 1,
		})
	})

	jobs := ensureCollection(app, "jobs", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "number", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.RelationField{
			Name:         "location",
			Required:     false,
			CollectionId: locations.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "unit",
			Required:     false,
			CollectionId: units.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "type",
			Required:  false,
			Values:    []string{"maintenance", "service call", "repair", "inspection repair", "replacement"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  false,
			Values:    []string{"scheduled", "unscheduled", "completed", "cancelled"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "contact_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "contact_email", Required: false})
		c.Fields.Add(&core.TextField{Name: "contact_phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
		c.Fields.Add(&core.TextField{Name: "schedule_start", Required: false})
		c.Fields.Add(&core.BoolField{Name: "is_contract"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "job_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "job",
			Required:      true,
			CollectionId:  jobs.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "code", Required: false})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "service_line", Required: false})
		c.Fields.Add(&core.NumberField{Name: "quantity", Required: true})
		c.Fields.Add(&core.NumberField{Name: "unit_cost", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_cost", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "type",
			Required:  false,
			Values:    []string{"part", "labor", "item"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	inspections := ensureCollection(app, "job_inspections", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "job",
			Required:      true,
			CollectionId:  jobs.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "model_number", Required: false})
		c.Fields.Add(&core.TextField{Name: "serial_number", Required: false})
		c.Fields.Add(&core.TextField{Name: "age", Required: false})
		c.Fields.Add(&core.TextField{Name: "tonnage", Required: false})
		c.Fields.Add(&core.TextField{Name: "unit_type", Required: false})
		c.Fields.Add(&core.TextField{Name: "system_type", Required: false})
		c.Fields.Add(&core.BoolField{Name: "completed"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "job_replacements", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "job",
			Required:      true,
			CollectionId:  jobs.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "inspection",
			Required:     false,
			CollectionId: inspections.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "selected_phase",
			Required:  false,
			Values:    []string{"phase1", "phase2", "phase3"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "total_cost", Required: false})
		c.Fields.Add(&core.BoolField{Name: "needs_crane"})
		c.Fields.Add(&core.JSONField{Name: "phases", Required: false})
		c.Fields.Add(&core.NumberField{Name: "labor", Required: false})
		c.Fields.Add(&core.NumberField{Name: "accessories", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "quote_templates", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.JSONField{Name: "template_data", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "type",
			Required:  false,
			Values:    []string{"repair", "replacement"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "job_quotes", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "job",
			Required:      true,
			CollectionId:  jobs.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "quote_number", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "quote_type",
			Required:  true,
			Values:    []string{"repair", "replacement"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "amount", Required: false})
		c.Fields.Add(&core.TextField{Name: "token", Required: false})
		c.Fields.Add(&core.BoolField{Name: "confirmed"})
		c.Fields.Add(&core.BoolField{Name: "approved"})
		c.Fields.Add(&core.TextField{Name: "email", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "job_invoices", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "job",
			Required:      true,
			CollectionId:  jobs.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "invoice_number", Required: true})
		c.Fields.Add(&core.NumberField{Name: "amount", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  false,
			Values:    []string{"draft", "issued", "paid", "void"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "issued_date", Required: false})
		c.Fields.Add(&core.TextField{Name: "due_date", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	technicians := ensureCollection(app, "technicians", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
	})

	ensureCollection(app, "job_technicians", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "job",
			Required:      true,
			CollectionId:  jobs.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:          "technician",
			Required:      true,
			CollectionId:  technicians.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "scheduled_at", Required: false})
		c.Fields.Add(&core.BoolField{Name: "is_primary"})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
