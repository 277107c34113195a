package services

import (
	"encoding/json"
	"testing"
	"time"
)

var normalizeNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestNormalizeReplacements_MapTakesPrecedence(t *testing.T) {
	req := &QuoteRequest{
		QuoteType:       "replacement",
		ReplacementData: json.RawMessage(`[{"selectedPhase":"phase1","totalCost":99}]`),
		ReplacementByInspection: map[string]ReplacementInput{
			"insp-b": {SelectedPhase: "phase3", TotalCost: 2000},
			"insp-a": {SelectedPhase: "phase1", TotalCost: 1000},
		},
	}

	entries := NormalizeReplacements(req, normalizeNow)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	// Map keys are ordered ascending, so insp-a comes first.
	if entries[0].InspectionID != "insp-a" || entries[1].InspectionID != "insp-b" {
		t.Errorf("entry order = %q, %q; want insp-a, insp-b",
			entries[0].InspectionID, entries[1].InspectionID)
	}
	if entries[0].ReplacementNumber != 1 || entries[1].ReplacementNumber != 2 {
		t.Errorf("numbering = %d, %d; want 1, 2",
			entries[0].ReplacementNumber, entries[1].ReplacementNumber)
	}
	if entries[0].TotalCost != 1000 || entries[1].TotalCost != 2000 {
		t.Errorf("costs = %v, %v; want 1000, 2000", entries[0].TotalCost, entries[1].TotalCost)
	}
}

func TestNormalizeReplacements_ListSource(t *testing.T) {
	req := &QuoteRequest{
		QuoteType: "replacement",
		ReplacementData: json.RawMessage(
			`[{"selectedPhase":"phase1","totalCost":500},{"selected_phase":"phase3","total_cost":1500,"needs_crane":true}]`),
	}

	entries := NormalizeReplacements(req, normalizeNow)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].SelectedPhase != "phase1" || entries[0].TotalCost != 500 {
		t.Errorf("first entry = %+v", entries[0])
	}
	if entries[1].SelectedPhase != "phase3" || entries[1].TotalCost != 1500 || !entries[1].NeedsCrane {
		t.Errorf("second entry = %+v", entries[1])
	}
}

func TestNormalizeReplacements_SingleObject(t *testing.T) {
	req := &QuoteRequest{
		QuoteType:       "replacement",
		ReplacementData: json.RawMessage(`{"selectedPhase":"phase3","totalCost":7500,"needsCrane":true}`),
	}

	entries := NormalizeReplacements(req, normalizeNow)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.ReplacementNumber != 1 || e.SelectedPhase != "phase3" || e.TotalCost != 7500 || !e.NeedsCrane {
		t.Errorf("entry = %+v", e)
	}
}

func TestNormalizeReplacements_EmptySources(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"absent", ""},
		{"null", "null"},
		{"empty array", "[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &QuoteRequest{QuoteType: "replacement"}
			if tt.raw != "" {
				req.ReplacementData = json.RawMessage(tt.raw)
			}
			if entries := NormalizeReplacements(req, normalizeNow); len(entries) != 0 {
				t.Errorf("got %d entries, want 0", len(entries))
			}
		})
	}
}

func TestNormalizeReplacements_RepairQuotesAreSimplified(t *testing.T) {
	req := &QuoteRequest{
		QuoteType:       "repair",
		ReplacementData: json.RawMessage(`{"totalCost":450}`),
	}

	entries := NormalizeReplacements(req, normalizeNow)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if !entries[0].SimplifiedRepair {
		t.Error("repair quote entry not marked simplified")
	}
}

func TestNormalizeReplacements_CreatedAt(t *testing.T) {
	req := &QuoteRequest{
		QuoteType: "replacement",
		ReplacementData: json.RawMessage(
			`[{"totalCost":1,"created_at":"2025-01-02T15:04:05Z"},{"totalCost":2,"created_at":"not a date"}]`),
	}

	entries := NormalizeReplacements(req, normalizeNow)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	want := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)
	if !entries[0].CreatedAt.Equal(want) {
		t.Errorf("parsed created_at = %v, want %v", entries[0].CreatedAt, want)
	}
	if !entries[1].CreatedAt.Equal(normalizeNow) {
		t.Errorf("unparseable created_at = %v, want fallback %v", entries[1].CreatedAt, normalizeNow)
	}
}

func TestCombinedReplacementTotal(t *testing.T) {
	entries := []ReplacementEntry{{TotalCost: 1000}, {TotalCost: 2000}, {TotalCost: 0}}
	if got := CombinedReplacementTotal(entries); got != 3000 {
		t.Errorf("CombinedReplacementTotal = %v, want 3000", got)
	}
	if got := CombinedReplacementTotal(nil); got != 0 {
		t.Errorf("CombinedReplacementTotal(nil) = %v, want 0", got)
	}
}
