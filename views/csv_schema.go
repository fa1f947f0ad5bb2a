package views

// This file is the single source of truth for export column ordering.
// The actual header/row rendering lives on the model row types
// (models.GenericRow / models.RichRow); the map here is kept as a
// human-readable reference and for validation in tests.

import "fieldtrack/models"

// SchemaColumns is the canonical column list per schema.
var SchemaColumns = map[models.Schema][]string{
	models.SchemaGeneric: {
		"id", "code", "status", "latitude", "longitude",
		"timestamp", "project_id", "technician", "coordinates",
	},
	models.SchemaRich: {
		"session_id", "code", "checkpoint_type", "checkpoint_number",
		"category", "phase", "status", "technician", "location",
		"arrival_timestamp", "arrival_latitude", "arrival_longitude",
		"staging_timestamp", "staging_latitude", "staging_longitude",
		"inspection_timestamp", "inspection_latitude", "inspection_longitude",
		"departure_timestamp", "departure_latitude", "departure_longitude",
	},
}

// header returns the live header row for a schema.
func header(schema models.Schema) []string {
	if schema == models.SchemaRich {
		return models.RichRow{}.CSVHeader()
	}
	return models.GenericRow{}.CSVHeader()
}

// row projects one record into the schema's column set.
func row(schema models.Schema, r *models.Record) []string {
	if schema == models.SchemaRich {
		return models.RichRow{Record: r}.CSVRow()
	}
	return models.GenericRow{Record: r}.CSVRow()
}
