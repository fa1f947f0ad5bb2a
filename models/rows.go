package models

// Placeholder tokens used in exported rows.
const (
	// MissingValue stands in for any absent rich-schema field.
	MissingValue = "N/A"
	// NoCoordinates stands in for the derived coordinates column when a
	// generic record arrived without a usable geotag.
	NoCoordinates = "No coordinates"
)

// RichLegNames is the fixed, ordered set of named checkpoints the
// multi-checkpoint schema exports. Each leg contributes a timestamp,
// latitude and longitude column.
var RichLegNames = []string{"arrival", "staging", "inspection", "departure"}

// GenericRow projects a Record into the minimal "scanned code" column set.
type GenericRow struct{ *Record }

func (GenericRow) CSVHeader() []string {
	return []string{
		"id", "code", "status", "latitude", "longitude",
		"timestamp", "project_id", "technician", "coordinates",
	}
}

func (g GenericRow) CSVRow() []string {
	lat, lng := "", ""
	if g.Position != nil {
		lat = ftoa(g.Position.Lat, 6)
		lng = ftoa(g.Position.Lng, 6)
	}
	return []string{
		g.ID,
		g.UnitID,
		string(g.Status),
		lat,
		lng,
		tform(g.Timestamp),
		g.ProjectID,
		g.Technician,
		g.CoordinateLabel(),
	}
}

// RichRow projects a Record into the wide multi-checkpoint column set.
// Generic records still serialize: every rich-only column renders the
// placeholder token.
type RichRow struct{ *Record }

func (RichRow) CSVHeader() []string {
	h := []string{
		"session_id", "code", "checkpoint_type", "checkpoint_number",
		"category", "phase", "status", "technician", "location",
	}
	for _, leg := range RichLegNames {
		h = append(h, leg+"_timestamp", leg+"_latitude", leg+"_longitude")
	}
	return h
}

func (r RichRow) CSVRow() []string {
	session, ctype, cnum, phase := "", "", "", ""
	if r.Rich != nil {
		session = r.Rich.SessionID
		ctype = r.Rich.CheckpointType
		if r.Rich.CheckpointNumber > 0 {
			cnum = itoa(r.Rich.CheckpointNumber)
		}
		phase = r.Rich.Phase
	}

	row := []string{
		orPlaceholder(session),
		r.UnitID,
		orPlaceholder(ctype),
		orPlaceholder(cnum),
		orPlaceholder(r.Category()),
		orPlaceholder(phase),
		string(r.Status),
		orPlaceholder(r.Technician),
		orPlaceholder(r.Location),
	}

	for _, name := range RichLegNames {
		leg := r.Leg(name)
		if leg == nil {
			row = append(row, MissingValue, MissingValue, MissingValue)
			continue
		}
		row = append(row, optTime(leg.Timestamp), optFloat(leg.Lat, 6), optFloat(leg.Lng, 6))
	}
	return row
}

// CoordinateLabel derives the display string for the generic schema's
// coordinates column: "lat, lng" or the no-coordinates placeholder.
func (r *Record) CoordinateLabel() string {
	if r.Position == nil {
		return NoCoordinates
	}
	return ftoa(r.Position.Lat, 6) + ", " + ftoa(r.Position.Lng, 6)
}
