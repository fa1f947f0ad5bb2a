package views

import (
	"fmt"
	"time"

	"fieldtrack/engine"
	"fieldtrack/models"
)

// Format names one of the supported export artifact kinds.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatWorkbook Format = "xlsx"
	FormatArchive  Format = "zip"
)

// ParseFormat validates a format label from the wire.
func ParseFormat(label string) (Format, error) {
	switch Format(label) {
	case FormatCSV, FormatWorkbook, FormatArchive:
		return Format(label), nil
	case "":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", label)
	}
}

// Build serializes the predicate-filtered record set into the requested
// format. The record set must be the same one the predicate governs on
// screen: exports reflect the active filters at the moment of invocation.
func Build(format Format, records []models.Record, pred engine.Predicate, schema models.Schema, projectName string, now time.Time) (*Artifact, error) {
	switch format {
	case FormatCSV:
		return BuildCSV(records, pred, schema, projectName, now)
	case FormatWorkbook:
		return BuildWorkbook(records, pred, schema, projectName, now)
	case FormatArchive:
		return BuildArchive(records, pred, schema, projectName, now, nil)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
