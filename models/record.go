package models

import (
	"strings"
	"time"
)

// Unit ID prefix conventions. The richer multi-checkpoint schema treats
// box-prefixed units as structurally different from battery units.
const (
	BatteryPrefix = "BAT"
	BoxPrefix     = "BOX"
)

// Status is the outcome of a scan/inspection at a checkpoint.
type Status string

const (
	StatusOK      Status = "ok"
	StatusPending Status = "pending"
	StatusFailed  Status = "failed"
)

// Position is a geotag attached to a scan event. Absence on a record is a
// data-quality fault upstream; the engine carries it through and the export
// layer renders a placeholder instead of failing.
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Leg is one named checkpoint fix inside a rich-schema record. Every field
// except the name is optional: a unit that has not reached a leg yet simply
// has no fix for it.
type Leg struct {
	Name      string     `json:"name"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Lat       *float64   `json:"lat,omitempty"`
	Lng       *float64   `json:"lng,omitempty"`
}

// RichFields carries the extra columns of the multi-checkpoint schema used
// by the flagship project variant. A nil *RichFields on a Record marks a
// generic-schema record.
type RichFields struct {
	SessionID        string `json:"session_id"`
	Category         string `json:"category,omitempty"` // A..E, empty when unset
	CheckpointType   string `json:"checkpoint_type,omitempty"`
	CheckpointNumber int    `json:"checkpoint_number,omitempty"`
	Phase            string `json:"phase,omitempty"`
	Legs             []Leg  `json:"legs,omitempty"`
}

// Record is one observed scan event. Records are immutable once received:
// the engine only derives filtered/reduced views, it never rewrites them.
type Record struct {
	ID         string      `json:"id"`
	ProjectID  string      `json:"project_id"`
	UnitID     string      `json:"unit_id"`
	Status     Status      `json:"status"`
	Position   *Position   `json:"position,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
	Technician string      `json:"technician"`
	Location   string      `json:"location"`
	Rich       *RichFields `json:"rich,omitempty"`
}

// IsBox reports whether the unit ID carries the shipping-box prefix.
func (r *Record) IsBox() bool {
	return strings.HasPrefix(strings.ToUpper(r.UnitID), BoxPrefix)
}

// Category returns the rich-schema category letter, upper-cased, or ""
// for generic records and rich records that never got one.
func (r *Record) Category() string {
	if r.Rich == nil {
		return ""
	}
	return strings.ToUpper(strings.TrimSpace(r.Rich.Category))
}

// Leg returns the named leg fix, or nil when the record has none.
func (r *Record) Leg(name string) *Leg {
	if r.Rich == nil {
		return nil
	}
	for i := range r.Rich.Legs {
		if strings.EqualFold(r.Rich.Legs[i].Name, name) {
			return &r.Rich.Legs[i]
		}
	}
	return nil
}
