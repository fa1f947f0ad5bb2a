package views

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"fieldtrack/engine"
	"fieldtrack/models"
	"fieldtrack/utils"
)

const (
	sheetName   = "Checkpoints"
	minColWidth = 15
	// Report header block occupies rows 1..4; the column header lands
	// below it with one blank spacer row.
	headerBlockRows = 4
	tableHeaderRow  = headerBlockRows + 2
)

// BuildWorkbook serializes the predicate-filtered record set as a
// single-sheet workbook: a short human-readable report block (project,
// generation time, row count, schema label), then the header row and data.
// Column widths size to the longer of the header and minColWidth.
func BuildWorkbook(records []models.Record, pred engine.Predicate, schema models.Schema, projectName string, now time.Time) (*Artifact, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("workbook sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("workbook sheet: %w", err)
	}

	cols := header(schema)

	// Data rows first so the report block can state the final count.
	rowIdx := tableHeaderRow + 1
	count := 0
	for i := range records {
		if pred != nil && !pred(&records[i]) {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
		if err := setRow(f, cell, row(schema, &records[i])); err != nil {
			return nil, fmt.Errorf("workbook row %d: %w", rowIdx, err)
		}
		rowIdx++
		count++
	}

	report := [][]string{
		{"Project", projectName},
		{"Generated", now.Format("2006-01-02 15:04:05")},
		{"Records", fmt.Sprintf("%d", count)},
		{"Schema", schema.String()},
	}
	for i, pair := range report {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := setRow(f, cell, pair); err != nil {
			return nil, fmt.Errorf("workbook report block: %w", err)
		}
	}

	headCell, _ := excelize.CoordinatesToCellName(1, tableHeaderRow)
	if err := setRow(f, headCell, cols); err != nil {
		return nil, fmt.Errorf("workbook header row: %w", err)
	}

	for i, name := range cols {
		width := float64(minColWidth)
		if w := float64(len(name)); w > width {
			width = w
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return nil, fmt.Errorf("workbook column width: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("workbook encode: %w", err)
	}

	utils.L().Debug("workbook export built (schema=%s, rows=%d)", schema, count)
	return &Artifact{
		Filename:    utils.ExportName(schema.String(), projectName, now, "xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

// setRow writes one string row; excelize wants a pointer to the slice.
func setRow(f *excelize.File, cell string, fields []string) error {
	vals := make([]any, len(fields))
	for i, s := range fields {
		vals[i] = s
	}
	return f.SetSheetRow(sheetName, cell, &vals)
}
