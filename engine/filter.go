// Package engine implements the checkpoint event engine: filter
// compilation, latest-state resolution, per-unit path reconstruction and
// summary counting. Everything in here is pure computation over an
// in-memory snapshot of one project's records — no ambient state, no I/O.
package engine

import (
	"strings"
	"time"

	"fieldtrack/models"
	"fieldtrack/utils"
)

// Selector is the mutually exclusive category/status filter chip.
type Selector string

const (
	SelectAll     Selector = "all"
	SelectOK      Selector = "ok"
	SelectFailed  Selector = "failed"
	SelectPending Selector = "pending"
	SelectBoxes   Selector = "boxes"
	// Category letters a..e are valid selectors too; see IsCategory.
)

// IsCategory reports whether the selector is a single category letter A..E.
func (s Selector) IsCategory() bool {
	if len(s) != 1 {
		return false
	}
	c := strings.ToUpper(string(s))[0]
	return c >= 'A' && c <= 'E'
}

// letter returns the upper-cased category letter for a category selector.
func (s Selector) letter() string {
	return strings.ToUpper(string(s))
}

// Window is the calendar-day date filter.
type Window string

const (
	WindowAll       Window = "all"
	WindowToday     Window = "today"
	WindowYesterday Window = "yesterday"
)

// Filter is one complete filter configuration. All dimensions are
// independent and simultaneously active. The schema is carried explicitly
// because the selector's meaning depends on it.
type Filter struct {
	Schema    models.Schema
	Selector  Selector
	Window    Window
	ExactDate *time.Time // when set, replaces the window entirely
	UnitQuery string     // case-insensitive substring over unit_id
	TechQuery string     // case-insensitive substring over technician
}

// Predicate is a compiled filter decision over one record. Predicates are
// pure and total: they never panic, and a record missing an optional field
// simply fails any filter that requires it.
type Predicate func(*models.Record) bool

// Compile turns a filter configuration into a single predicate. The clock
// is threaded in explicitly so "today"/"yesterday" are testable.
//
// Rich-schema selector semantics: "all" means not-a-box; status and
// category selectors additionally exclude boxes; "boxes" matches on the
// unit prefix alone and ignores status and category. In the generic schema
// the selector is a plain status match (or a no-op for "all").
func Compile(f Filter, now time.Time) Predicate {
	selector := compileSelector(f)
	date := compileDate(f, now)
	unitQ := strings.ToLower(strings.TrimSpace(f.UnitQuery))
	techQ := strings.ToLower(strings.TrimSpace(f.TechQuery))

	return func(r *models.Record) bool {
		if r == nil {
			return false
		}
		if !selector(r) || !date(r) {
			return false
		}
		if unitQ != "" && !strings.Contains(strings.ToLower(r.UnitID), unitQ) {
			return false
		}
		if techQ != "" && !strings.Contains(strings.ToLower(r.Technician), techQ) {
			return false
		}
		return true
	}
}

// DateOnly compiles just the date dimensions of a filter. Tracking mode
// suppresses the selector and the searches but keeps date filtering.
func DateOnly(f Filter, now time.Time) Predicate {
	return compileDate(f, now)
}

func compileSelector(f Filter) Predicate {
	sel := Selector(strings.ToLower(strings.TrimSpace(string(f.Selector))))
	if sel == "" {
		sel = SelectAll
	}

	if f.Schema == models.SchemaRich {
		switch {
		case sel == SelectBoxes:
			return func(r *models.Record) bool { return r.IsBox() }
		case sel == SelectAll:
			return func(r *models.Record) bool { return !r.IsBox() }
		case sel.IsCategory():
			want := sel.letter()
			return func(r *models.Record) bool {
				return !r.IsBox() && r.Category() == want
			}
		default:
			want := models.Status(sel)
			return func(r *models.Record) bool {
				return !r.IsBox() && r.Status == want
			}
		}
	}

	// Generic schema: "all" is a no-op, anything else is an exact status
	// match. Category letters never match (generic records carry none) and
	// "boxes" still works off the unit prefix.
	switch {
	case sel == SelectAll:
		return func(*models.Record) bool { return true }
	case sel == SelectBoxes:
		return func(r *models.Record) bool { return r.IsBox() }
	case sel.IsCategory():
		want := sel.letter()
		return func(r *models.Record) bool { return r.Category() == want }
	default:
		want := models.Status(sel)
		return func(r *models.Record) bool { return r.Status == want }
	}
}

// compileDate builds the calendar-day test. An exact date, when present,
// overrides the today/yesterday window rather than ANDing with it — the
// two combined would otherwise almost always yield an empty view.
func compileDate(f Filter, now time.Time) Predicate {
	if f.ExactDate != nil {
		day := *f.ExactDate
		return func(r *models.Record) bool {
			return utils.SameCalendarDay(r.Timestamp, day)
		}
	}
	switch f.Window {
	case WindowToday:
		return func(r *models.Record) bool {
			return utils.SameCalendarDay(r.Timestamp, now)
		}
	case WindowYesterday:
		y := utils.Yesterday(now)
		return func(r *models.Record) bool {
			return utils.SameCalendarDay(r.Timestamp, y)
		}
	default:
		return func(*models.Record) bool { return true }
	}
}
