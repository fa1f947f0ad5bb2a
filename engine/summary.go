package engine

import (
	"time"

	"fieldtrack/models"
)

// summarySelectors lists the labelled sub-filters a schema exposes as
// filter chips. Rich projects get the full chip row; generic ones only the
// status chips.
func summarySelectors(schema models.Schema) []Selector {
	if schema == models.SchemaRich {
		return []Selector{
			SelectAll, SelectOK, SelectFailed, SelectPending,
			"a", "b", "c", "d", "e", SelectBoxes,
		}
	}
	return []Selector{SelectAll, SelectOK, SelectFailed, SelectPending}
}

// Count computes the distinct-unit count behind every filter-chip label.
// Each entry counts unit IDs, not raw events, satisfying that chip's full
// predicate. The selector of the supplied base filter is ignored — all
// chip counts stay visible at once — while its other dimensions (window,
// exact date, searches) keep applying.
func Count(records []models.Record, base Filter, now time.Time) map[string]int {
	selectors := summarySelectors(base.Schema)

	preds := make(map[string]Predicate, len(selectors))
	units := make(map[string]map[string]struct{}, len(selectors))
	for _, sel := range selectors {
		f := base
		f.Selector = sel
		preds[string(sel)] = Compile(f, now)
		units[string(sel)] = make(map[string]struct{})
	}

	for i := range records {
		r := &records[i]
		for label, pred := range preds {
			if pred(r) {
				units[label][r.UnitID] = struct{}{}
			}
		}
	}

	counts := make(map[string]int, len(units))
	for label, set := range units {
		counts[label] = len(set)
	}
	return counts
}
