package views

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"

	"fieldtrack/engine"
	"fieldtrack/models"
	"fieldtrack/utils"
)

// pdfNote stands in for the PDF report the external reporting collaborator
// produces. The archive embeds this note whenever that artifact is not
// available at bundling time.
const pdfNote = "The PDF report is generated by the reporting service and was not available when this archive was built.\r\n"

// BuildArchive bundles the CSV and workbook exports of the same filtered
// set into a single zip. The optional pdf artifact is embedded when
// present; otherwise a placeholder note takes its slot, best-effort.
func BuildArchive(records []models.Record, pred engine.Predicate, schema models.Schema, projectName string, now time.Time, pdf *Artifact) (*Artifact, error) {
	csvArt, err := BuildCSV(records, pred, schema, projectName, now)
	if err != nil {
		return nil, fmt.Errorf("archive csv: %w", err)
	}
	xlsxArt, err := BuildWorkbook(records, pred, schema, projectName, now)
	if err != nil {
		return nil, fmt.Errorf("archive workbook: %w", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	entries := []*Artifact{csvArt, xlsxArt}
	if pdf != nil {
		entries = append(entries, pdf)
	}
	for _, art := range entries {
		w, err := zw.Create(art.Filename)
		if err != nil {
			return nil, fmt.Errorf("archive entry %s: %w", art.Filename, err)
		}
		if _, err := w.Write(art.Data); err != nil {
			return nil, fmt.Errorf("archive entry %s: %w", art.Filename, err)
		}
	}

	if pdf == nil {
		if w, err := zw.Create("README_pdf.txt"); err == nil {
			_, _ = w.Write([]byte(pdfNote))
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("archive close: %w", err)
	}

	utils.L().Debug("archive export built  (schema=%s, entries=%d)", schema, len(entries))
	return &Artifact{
		Filename:    utils.ExportName(schema.String(), projectName, now, "zip"),
		ContentType: "application/zip",
		Data:        buf.Bytes(),
	}, nil
}
