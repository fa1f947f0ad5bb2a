package models

import (
	"strconv"
	"time"
)

// ─── shared formatting helpers (package-private) ────────────────────────

const rowTimeLayout = "2006-01-02 15:04:05"

func itoa(v int) string { return strconv.Itoa(v) }
func ftoa(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
func tform(t time.Time) string { return t.Format(rowTimeLayout) }

// Optional-field renderers for the rich schema: absence becomes the
// explicit placeholder token, never an empty cell.

func optFloat(v *float64, prec int) string {
	if v == nil {
		return MissingValue
	}
	return ftoa(*v, prec)
}

func optTime(t *time.Time) string {
	if t == nil {
		return MissingValue
	}
	return tform(*t)
}

func orPlaceholder(s string) string {
	if s == "" {
		return MissingValue
	}
	return s
}

// CSVRowWriter is the interface both row shapes satisfy for the export layer.
type CSVRowWriter interface {
	CSVHeader() []string
	CSVRow() []string
}
