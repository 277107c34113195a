package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type unitDef struct {
	unitNumber string
	status     string
}

type locationDef struct {
	name    string
	address string
	city    string
	state   string
	zip     string
	units   []unitDef
}

type itemDef struct {
	code        string
	name        string
	serviceLine string
	itemType    string
	quantity    int
	unitCost    float64
}

type inspectionDef struct {
	modelNumber  string
	serialNumber string
	age          string
	tonnage      string
	unitType     string
	systemType   string
	completed    bool
}

type jobDef struct {
	number        string
	name          string
	jobType       string
	status        string
	contactName   string
	contactEmail  string
	description   string
	scheduleStart string
	locationName  string
	unitNumber    string
	items         []itemDef
	inspections   []inspectionDef
}

type technicianDef struct {
	name  string
	email string
	phone string
}

// Seed populates the collections with a realistic demo customer, jobs, and
// supporting records. It is safe to call on every startup because it
// returns early if any company records already exist.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if companies already exist ─────────────────
	companiesCol, err := app.FindCollectionByNameOrId("companies")
	if err != nil {
		return fmt.Errorf("seed: could not find companies collection: %w", err)
	}
	existing, err := app.FindAllRecords(companiesCol)
	if err != nil {
		return fmt.Errorf("seed: could not query companies: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: companies collection is empty, inserting seed data")

	locationsCol, err := app.FindCollectionByNameOrId("locations")
	if err != nil {
		return fmt.Errorf("seed: could not find locations collection: %w", err)
	}
	unitsCol, err := app.FindCollectionByNameOrId("units")
	if err != nil {
		return fmt.Errorf("seed: could not find units collection: %w", err)
	}
	jobsCol, err := app.FindCollectionByNameOrId("jobs")
	if err != nil {
		return fmt.Errorf("seed: could not find jobs collection: %w", err)
	}
	jobItemsCol, err := app.FindCollectionByNameOrId("job_items")
	if err != nil {
		return fmt.Errorf("seed: could not find job_items collection: %w", err)
	}
	inspectionsCol, err := app.FindCollectionByNameOrId("job_inspections")
	if err != nil {
		return fmt.Errorf("seed: could not find job_inspections collection: %w", err)
	}
	techniciansCol, err := app.FindCollectionByNameOrId("technicians")
	if err != nil {
		return fmt.Errorf("seed: could not find technicians collection: %w", err)
	}
	templatesCol, err := app.FindCollectionByNameOrId("quote_templates")
	if err != nil {
		return fmt.Errorf("seed: could not find quote_templates collection: %w", err)
	}

	// ── company ──────────────────────────────────────────────────────
	company := core.NewRecord(companiesCol)
	company.Set("name", "Peachtree Commercial Properties")
	company.Set("city", "Atlanta")
	company.Set("state", "GA")
	if err := app.Save(company); err != nil {
		return fmt.Errorf("seed: save company: %w", err)
	}

	// ── locations and units ──────────────────────────────────────────
	locations := []locationDef{
		{
			name:    "Midtown Office Tower",
			address: "1180 Peachtree St NE",
			city:    "Atlanta",
			state:   "GA",
			zip:     "30309",
			units: []unitDef{
				{unitNumber: "RTU-1", status: "active"},
				{unitNumber: "RTU-2", status: "active"},
				{unitNumber: "AHU-3", status: "inactive"},
			},
		},
		{
			name:    "Buckhead Retail Plaza",
			address: "3393 Peachtree Rd NE",
			city:    "Atlanta",
			state:   "GA",
			zip:     "30326",
			units: []unitDef{
				{unitNumber: "RTU-A", status: "active"},
				{unitNumber: "RTU-B", status: "active"},
			},
		},
	}

	locationIDs := map[string]string{}
	unitIDs := map[string]string{}
	for _, ld := range locations {
		loc := core.NewRecord(locationsCol)
		loc.Set("company", company.Id)
		loc.Set("name", ld.name)
		loc.Set("address", ld.address)
		loc.Set("city", ld.city)
		loc.Set("state", ld.state)
		loc.Set("zip", ld.zip)
		if err := app.Save(loc); err != nil {
			return fmt.Errorf("seed: save location %q: %w", ld.name, err)
		}
		locationIDs[ld.name] = loc.Id

		for _, ud := range ld.units {
			unit := core.NewRecord(unitsCol)
			unit.Set("location", loc.Id)
			unit.Set("unit_number", ud.unitNumber)
			unit.Set("status", ud.status)
			if err := app.Save(unit); err != nil {
				return fmt.Errorf("seed: save unit %q: %w", ud.unitNumber, err)
			}
			unitIDs[ud.unitNumber] = unit.Id
		}
	}

	// ── technicians ──────────────────────────────────────────────────
	technicians := []technicianDef{
		{name: "Marcus Reed", email: "marcus@airlast-management.com", phone: "404-555-0161"},
		{name: "Dana Whitfield", email: "dana@airlast-management.com", phone: "404-555-0174"},
	}
	for _, td := range technicians {
		r := core.NewRecord(techniciansCol)
		r.Set("name", td.name)
		r.Set("email", td.email)
		r.Set("phone", td.phone)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save technician %q: %w", td.name, err)
		}
	}

	// ── quote template ───────────────────────────────────────────────
	template := core.NewRecord(templatesCol)
	template.Set("name", "Standard Repair Quote")
	template.Set("type", "repair")
	template.Set("template_data", map[string]any{
		"fileUrl":        "",
		"preservedPages": []int{1},
	})
	if err := app.Save(template); err != nil {
		return fmt.Errorf("seed: save quote template: %w", err)
	}

	// ── jobs ─────────────────────────────────────────────────────────
	jobs := []jobDef{
		{
			number:        "1001",
			name:          "Quarterly PM - Midtown",
			jobType:       "maintenance",
			status:        "scheduled",
			contactName:   "Gail Norten",
			contactEmail:  "gnorten@peachtreecp.com",
			description:   "Quarterly preventative maintenance on rooftop units.",
			scheduleStart: "2025-04-14 09:00",
			locationName:  "Midtown Office Tower",
			unitNumber:    "RTU-1",
			items: []itemDef{
				{code: "FLT-20", name: "20x25x2 Pleated Filter", serviceLine: "PM", itemType: "part", quantity: 4, unitCost: 18.50},
				{code: "LAB-STD", name: "Standard Labor", serviceLine: "PM", itemType: "labor", quantity: 2, unitCost: 95},
			},
		},
		{
			number:        "1002",
			name:          "Compressor Diagnosis - Buckhead",
			jobType:       "repair",
			status:        "unscheduled",
			contactName:   "Raj Patel",
			contactEmail:  "rpatel@peachtreecp.com",
			description:   "Unit tripping on high head pressure.",
			locationName:  "Buckhead Retail Plaza",
			unitNumber:    "RTU-A",
			inspections: []inspectionDef{
				{
					modelNumber:  "TRN-XR14-060",
					serialNumber: "21473A88",
					age:          "12",
					tonnage:      "5",
					unitType:     "rooftop",
					systemType:   "split",
					completed:    true,
				},
			},
		},
	}

	for _, jd := range jobs {
		job := core.NewRecord(jobsCol)
		job.Set("number", jd.number)
		job.Set("name", jd.name)
		job.Set("type", jd.jobType)
		job.Set("status", jd.status)
		job.Set("contact_name", jd.contactName)
		job.Set("contact_email", jd.contactEmail)
		job.Set("description", jd.description)
		job.Set("schedule_start", jd.scheduleStart)
		if id, ok := locationIDs[jd.locationName]; ok {
			job.Set("location", id)
		}
		if id, ok := unitIDs[jd.unitNumber]; ok {
			job.Set("unit", id)
		}
		if err := app.Save(job); err != nil {
			return fmt.Errorf("seed: save job %q: %w", jd.number, err)
		}

		for _, id := range jd.items {
			item := core.NewRecord(jobItemsCol)
			item.Set("job", job.Id)
			item.Set("code", id.code)
			item.Set("name", id.name)
			item.Set("service_line", id.serviceLine)
			item.Set("type", id.itemType)
			item.Set("quantity", id.quantity)
			item.Set("unit_cost", id.unitCost)
			item.Set("total_cost", float64(id.quantity)*id.unitCost)
			if err := app.Save(item); err != nil {
				return fmt.Errorf("seed: save job item %q: %w", id.name, err)
			}
		}

		for _, insp := range jd.inspections {
			r := core.NewRecord(inspectionsCol)
			r.Set("job", job.Id)
			r.Set("model_number", insp.modelNumber)
			r.Set("serial_number", insp.serialNumber)
			r.Set("age", insp.age)
			r.Set("tonnage", insp.tonnage)
			r.Set("unit_type", insp.unitType)
			r.Set("system_type", insp.systemType)
			r.Set("completed", insp.completed)
			if err := app.Save(r); err != nil {
				return fmt.Errorf("seed: save inspection for job %q: %w", jd.number, err)
			}
		}
	}

	log.Println("seed: done")
	return nil
}
