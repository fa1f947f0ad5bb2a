package utils

import (
	"strings"
	"time"
)

// SameCalendarDay reports whether a and b fall on the same wall-clock
// calendar day in b's location. Date filters are calendar comparisons,
// not 24-hour windows.
func SameCalendarDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Yesterday returns now shifted back one calendar day.
func Yesterday(now time.Time) time.Time {
	return now.AddDate(0, 0, -1)
}

// ISODate formats a time as YYYY-MM-DD, the date token used in export
// filenames.
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ExportName builds an artifact filename:
//
//	<SchemaName>_<ProjectName>_<YYYY-MM-DD>.<ext>
//
// Whitespace in the project name is collapsed to underscores so the name
// survives Content-Disposition and every mainstream filesystem.
func ExportName(schemaName, projectName string, now time.Time, ext string) string {
	project := strings.Join(strings.Fields(projectName), "_")
	if project == "" {
		project = "project"
	}
	return schemaName + "_" + project + "_" + ISODate(now) + "." + ext
}
