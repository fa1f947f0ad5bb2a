package views

import (
	"bytes"
	"strings"
	"time"

	"fieldtrack/engine"
	"fieldtrack/models"
	"fieldtrack/utils"
)

// Artifact is a fully built export: bytes plus delivery metadata. Builders
// only return an Artifact after construction succeeded in full, so the
// caller never hands a partially written file to the download/share step.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// csvBuilder writes force-quoted CSV rows into memory.
//
// encoding/csv quotes only when it must; the export contract wants every
// field double-quoted, so rows are encoded by hand. The buffer-and-counter
// shape matches the rest of the export builders.
type csvBuilder struct {
	buf  bytes.Buffer
	rows uint64
}

func newCSVBuilder(header []string) *csvBuilder {
	b := &csvBuilder{}
	b.writeRow(header)
	b.rows = 0 // header is not a data row
	return b
}

// writeRow appends one row, quoting every field and doubling embedded quotes.
func (b *csvBuilder) writeRow(fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.buf.WriteByte(',')
		}
		b.buf.WriteByte('"')
		b.buf.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.buf.WriteByte('"')
	}
	b.buf.WriteString("\r\n")
	b.rows++
}

func (b *csvBuilder) bytes() []byte { return b.buf.Bytes() }

// BuildCSV serializes the predicate-filtered record set as UTF-8 CSV:
// header row first, comma-delimited, all fields double-quoted.
func BuildCSV(records []models.Record, pred engine.Predicate, schema models.Schema, projectName string, now time.Time) (*Artifact, error) {
	b := newCSVBuilder(header(schema))
	for i := range records {
		if pred != nil && !pred(&records[i]) {
			continue
		}
		b.writeRow(row(schema, &records[i]))
	}

	utils.L().Debug("csv export built     (schema=%s, rows=%d)", schema, b.rows)
	return &Artifact{
		Filename:    utils.ExportName(schema.String(), projectName, now, "csv"),
		ContentType: "text/csv; charset=utf-8",
		Data:        b.bytes(),
	}, nil
}
