package services

import (
	"encoding/json"
	"errors"
	"time"
)

// ErrMissingFields is returned by QuoteRequest.Validate when a required
// field is absent. Handlers translate it to a 400 response.
var ErrMissingFields = errors.New("missing required fields")

// QuoteRequest is the payload for one quote PDF generation call. It is
// constructed fresh per request and never outlives the call.
type QuoteRequest struct {
	JobID       string `json:"jobId"`
	QuoteType   string `json:"quoteType"`
	QuoteNumber string `json:"quoteNumber"`
	TemplateID  string `json:"templateId"`

	Job         JobSnapshot  `json:"jobData"`
	Inspections []Inspection `json:"inspectionData"`
	JobItems    []JobItem    `json:"jobItems"`

	// ReplacementData accepts either a single object or an array; the raw
	// bytes are decoded during normalization.
	ReplacementData json.RawMessage `json:"replacementData"`

	// ReplacementByInspection takes precedence over ReplacementData when
	// non-empty.
	ReplacementByInspection map[string]ReplacementInput `json:"replacementDataByInspection"`
}

// Validate checks the fields the endpoint rejects with a 400.
func (r *QuoteRequest) Validate() error {
	if r.JobID == "" || r.QuoteType == "" || r.TemplateID == "" {
		return ErrMissingFields
	}
	return nil
}

// JobSnapshot carries the job fields the quote renders. Nested location and
// unit data is optional; absent blocks are skipped entirely while absent
// fields inside a present block render as empty strings.
type JobSnapshot struct {
	Number       string            `json:"number"`
	Name         string            `json:"name"`
	ContactEmail string            `json:"contact_email"`
	Location     *LocationSnapshot `json:"locations"`
	Unit         *UnitSnapshot     `json:"units"`
}

type LocationSnapshot struct {
	Name    string           `json:"name"`
	Address string           `json:"address"`
	City    string           `json:"city"`
	State   string           `json:"state"`
	Zip     string           `json:"zip"`
	Company *CompanySnapshot `json:"companies"`
}

type CompanySnapshot struct {
	Name string `json:"name"`
}

type UnitSnapshot struct {
	UnitNumber string `json:"unit_number"`
}

// Inspection is one inspected unit's findings.
type Inspection struct {
	ID           string `json:"id"`
	ModelNumber  string `json:"model_number"`
	SerialNumber string `json:"serial_number"`
	Age          string `json:"age"`
	Tonnage      string `json:"tonnage"`
	UnitType     string `json:"unit_type"`
	SystemType   string `json:"system_type"`
}

// JobItem is one line item on the quote.
type JobItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	TotalCost float64 `json:"total_cost"`
}

// DisplayName returns the item name with the documented fallback.
func (i JobItem) DisplayName() string {
	if i.Name == "" {
		return "Unknown"
	}
	return i.Name
}

// DisplayQuantity returns the quantity with the documented fallback.
func (i JobItem) DisplayQuantity() int {
	if i.Quantity <= 0 {
		return 1
	}
	return i.Quantity
}

// ReplacementInput is one replacement or repair recommendation as supplied
// by the client. Historical payloads used both camelCase and snake_case key
// spellings, so decoding accepts either.
type ReplacementInput struct {
	SelectedPhase string
	TotalCost     float64
	NeedsCrane    bool
	CreatedAt     string
}

func (r *ReplacementInput) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	pickString := func(keys ...string) string {
		for _, k := range keys {
			if v, ok := raw[k]; ok {
				var s string
				if err := json.Unmarshal(v, &s); err == nil && s != "" {
					return s
				}
			}
		}
		return ""
	}
	pickFloat := func(keys ...string) float64 {
		for _, k := range keys {
			if v, ok := raw[k]; ok {
				var f float64
				if err := json.Unmarshal(v, &f); err == nil {
					return f
				}
			}
		}
		return 0
	}
	pickBool := func(keys ...string) bool {
		for _, k := range keys {
			if v, ok := raw[k]; ok {
				var b bool
				if err := json.Unmarshal(v, &b); err == nil {
					return b
				}
			}
		}
		return false
	}

	r.SelectedPhase = pickString("selectedPhase", "selected_phase")
	r.TotalCost = pickFloat("totalCost", "total_cost")
	r.NeedsCrane = pickBool("needsCrane", "needs_crane")
	r.CreatedAt = pickString("created_at", "createdAt")
	return nil
}

// ReplacementEntry is the normalized form rendered on the quote.
type ReplacementEntry struct {
	InspectionID      string
	ReplacementNumber int
	SelectedPhase     string
	TotalCost         float64
	NeedsCrane        bool
	CreatedAt         time.Time
	SimplifiedRepair  bool
}
