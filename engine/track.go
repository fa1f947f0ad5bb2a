package engine

import (
	"errors"
	"sort"
	"strings"

	"fieldtrack/models"
)

// ErrUnitNotFound marks a tracking request for a unit the snapshot has no
// events for. Collaborator UIs show a "not found" notice for this, not an
// error banner — it is distinct from a transport fault.
var ErrUnitNotFound = errors.New("unit has no recorded events")

// TrackedRecord is one step of a unit's reconstructed path. Seq is the
// 1-based rank of the record among the unit's complete history sorted
// ascending by timestamp.
type TrackedRecord struct {
	models.Record
	Seq int `json:"seq"`
}

// TrackUnit reconstructs the chronological path of one unit. Tracking mode
// deliberately suppresses the category/status selector and the free-text
// searches so the operator sees the complete path; only the date predicate
// (pass nil for none) still applies, after sequence ranks are assigned over
// the full history.
//
// Ties on timestamp keep input (ingestion) order via a stable sort.
func TrackUnit(records []models.Record, unitID string, datePred Predicate) ([]TrackedRecord, error) {
	unitID = strings.TrimSpace(unitID)
	if unitID == "" {
		return nil, ErrUnitNotFound
	}

	history := make([]models.Record, 0, 8)
	for i := range records {
		if strings.EqualFold(records[i].UnitID, unitID) {
			history = append(history, records[i])
		}
	}
	if len(history) == 0 {
		return nil, ErrUnitNotFound
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Timestamp.Before(history[j].Timestamp)
	})

	out := make([]TrackedRecord, 0, len(history))
	for i := range history {
		if datePred != nil && !datePred(&history[i]) {
			continue
		}
		out = append(out, TrackedRecord{Record: history[i], Seq: i + 1})
	}
	return out, nil
}
