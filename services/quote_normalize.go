package services

import (
	"bytes"
	"encoding/json"
	"sort"
	"time"
)

// NormalizeReplacements flattens the three historical ways a request can
// carry replacement data into one ordered entry list. Exactly one source is
// used, in precedence order:
//
//  1. the map keyed by inspection id, entries ordered by ascending key;
//  2. the flat list, in list order;
//  3. a single bare object, wrapped as a one-element list.
//
// Entries are numbered starting at 1. Repairs render simplified.
func NormalizeReplacements(req *QuoteRequest, now time.Time) []ReplacementEntry {
	simplified := req.QuoteType == "repair"

	if len(req.ReplacementByInspection) > 0 {
		keys := make([]string, 0, len(req.ReplacementByInspection))
		for k := range req.ReplacementByInspection {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		entries := make([]ReplacementEntry, 0, len(keys))
		for i, k := range keys {
			entries = append(entries, newEntry(req.ReplacementByInspection[k], k, i+1, simplified, now))
		}
		return entries
	}

	raw := bytes.TrimSpace(req.ReplacementData)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if raw[0] == '[' {
		var list []ReplacementInput
		if err := json.Unmarshal(raw, &list); err != nil || len(list) == 0 {
			return nil
		}
		entries := make([]ReplacementEntry, 0, len(list))
		for i, in := range list {
			entries = append(entries, newEntry(in, "", i+1, simplified, now))
		}
		return entries
	}

	var single ReplacementInput
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil
	}
	return []ReplacementEntry{newEntry(single, "", 1, simplified, now)}
}

func newEntry(in ReplacementInput, inspectionID string, number int, simplified bool, now time.Time) ReplacementEntry {
	created := now
	if in.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, in.CreatedAt); err == nil {
			created = t
		}
	}
	return ReplacementEntry{
		InspectionID:      inspectionID,
		ReplacementNumber: number,
		SelectedPhase:     in.SelectedPhase,
		TotalCost:         in.TotalCost,
		NeedsCrane:        in.NeedsCrane,
		CreatedAt:         created,
		SimplifiedRepair:  simplified,
	}
}

// CombinedReplacementTotal sums every entry's total cost.
func CombinedReplacementTotal(entries []ReplacementEntry) float64 {
	var sum float64
	for _, e := range entries {
		sum += e.TotalCost
	}
	return sum
}
