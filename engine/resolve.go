package engine

import (
	"sort"

	"fieldtrack/models"
)

// ResolveLatest reduces a filtered stream to the latest-state view: exactly
// one record per distinct unit ID, the one with the maximal timestamp among
// those that passed the predicate. Equal timestamps resolve to the record
// seen later in input order, so re-running over the same snapshot is
// deterministic.
//
// Output preserves first-appearance unit order. Callers needing a display
// order sort explicitly. Empty input, or input the predicate rejects
// entirely, yields an empty slice — that is not an error.
func ResolveLatest(records []models.Record, pred Predicate) []models.Record {
	if pred == nil {
		pred = func(*models.Record) bool { return true }
	}

	latest := make(map[string]int, len(records))
	order := make([]string, 0, len(records))

	for i := range records {
		r := &records[i]
		if !pred(r) {
			continue
		}
		best, seen := latest[r.UnitID]
		if !seen {
			latest[r.UnitID] = i
			order = append(order, r.UnitID)
			continue
		}
		// >= beats >: a tie goes to the later arrival.
		if !r.Timestamp.Before(records[best].Timestamp) {
			latest[r.UnitID] = i
		}
	}

	out := make([]models.Record, 0, len(order))
	for _, unit := range order {
		out = append(out, records[latest[unit]])
	}
	return out
}

// SortNewestFirst returns a filtered copy ordered by timestamp descending.
// This is the sidebar list order; it is distinct from ResolveLatest and
// keeps every passing event, not one per unit.
func SortNewestFirst(records []models.Record, pred Predicate) []models.Record {
	if pred == nil {
		pred = func(*models.Record) bool { return true }
	}
	out := make([]models.Record, 0, len(records))
	for i := range records {
		if pred(&records[i]) {
			out = append(out, records[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}
