package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fieldtrack/engine"
	"fieldtrack/models"
	"fieldtrack/services/fetch"
	"fieldtrack/services/locate"
	"fieldtrack/utils"
	"fieldtrack/views"
)

// RecordFetcher pulls a project's checkpoint records. Satisfied by
// *fetch.Client; tests substitute stubs.
type RecordFetcher interface {
	FetchRecords(ctx context.Context, projectID string, schema models.Schema) ([]models.Record, error)
}

// Dashboard is the operator-facing HTTP surface. Every endpoint works on a
// fresh per-request snapshot of one project's records: there is no shared
// mutable state between requests, and a request the client abandons is
// cancelled through its own context.
type Dashboard struct {
	fetcher       RecordFetcher
	locator       locate.Provider
	locateTimeout time.Duration
	sharer        Sharer
	now           func() time.Time
}

// NewDashboard wires the dashboard controller. locator and sharer may be
// nil when the host platform offers neither.
func NewDashboard(fetcher RecordFetcher, locator locate.Provider, locateTimeout time.Duration, sharer Sharer) *Dashboard {
	return &Dashboard{
		fetcher:       fetcher,
		locator:       locator,
		locateTimeout: locateTimeout,
		sharer:        sharer,
		now:           time.Now,
	}
}

// Register mounts all dashboard routes.
func (d *Dashboard) Register(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "fieldtrack-dashboard"})
	})

	api := r.Group("/api")
	api.GET("/position", d.handlePosition)

	p := api.Group("/projects/:id")
	p.GET("/state", d.handleState)
	p.GET("/feed", d.handleFeed)
	p.GET("/track/:unit", d.handleTrack)
	p.GET("/summary", d.handleSummary)
	p.GET("/export", d.handleExport)
}

// filterFromQuery assembles the filter configuration from query params.
// Unknown values fall back to their no-op defaults; a predicate is always
// compilable.
func filterFromQuery(c *gin.Context) engine.Filter {
	f := engine.Filter{
		Schema:    models.ParseSchema(c.Query("schema")),
		Selector:  engine.Selector(c.DefaultQuery("selector", string(engine.SelectAll))),
		Window:    engine.Window(c.DefaultQuery("window", string(engine.WindowAll))),
		UnitQuery: c.Query("unit"),
		TechQuery: c.Query("tech"),
	}
	if raw := c.Query("date"); raw != "" {
		if day, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
			f.ExactDate = &day
		}
	}
	return f
}

// snapshot fetches the project's records for this request. On a transport
// fault it writes the notice itself and returns false; the view keeps its
// last-good state client-side.
func (d *Dashboard) snapshot(c *gin.Context, schema models.Schema) ([]models.Record, bool) {
	records, err := d.fetcher.FetchRecords(c.Request.Context(), c.Param("id"), schema)
	if err != nil {
		var te *fetch.TransportError
		if errors.As(err, &te) && te.Status != 0 {
			utils.L().Error("upstream returned %d for project %s", te.Status, c.Param("id"))
		} else {
			utils.L().Error("upstream fetch failed for project %s: %v", c.Param("id"), err)
		}
		c.JSON(http.StatusBadGateway,
			models.TransportNotice("Checkpoint data could not be loaded. Check your connection and retry."))
		return nil, false
	}
	return records, true
}

// handleState serves the latest-state map view: one marker per unit at its
// most recent passing position.
func (d *Dashboard) handleState(c *gin.Context) {
	f := filterFromQuery(c)
	records, ok := d.snapshot(c, f.Schema)
	if !ok {
		return
	}

	pred := engine.Compile(f, d.now())
	units := engine.ResolveLatest(records, pred)

	resp := gin.H{"project_id": c.Param("id"), "units": units, "count": len(units)}
	if len(units) == 0 {
		resp["notice"] = models.EmptyResultNotice("No units match the active filters.")
	}
	c.JSON(http.StatusOK, resp)
}

// handleFeed serves the sidebar event list: every passing event, newest
// first.
func (d *Dashboard) handleFeed(c *gin.Context) {
	f := filterFromQuery(c)
	records, ok := d.snapshot(c, f.Schema)
	if !ok {
		return
	}

	events := engine.SortNewestFirst(records, engine.Compile(f, d.now()))
	c.JSON(http.StatusOK, gin.H{"project_id": c.Param("id"), "events": events, "count": len(events)})
}

// handleTrack serves tracking mode: the selected unit's full chronological
// path. The category/status selector and searches are suppressed; only the
// date dimension of the active filter still applies.
func (d *Dashboard) handleTrack(c *gin.Context) {
	f := filterFromQuery(c)
	records, ok := d.snapshot(c, f.Schema)
	if !ok {
		return
	}

	unit := c.Param("unit")
	path, err := engine.TrackUnit(records, unit, engine.DateOnly(f, d.now()))
	if errors.Is(err, engine.ErrUnitNotFound) {
		c.JSON(http.StatusNotFound,
			models.NotFoundNotice("No scan events recorded for unit "+unit+"."))
		return
	}

	resp := gin.H{"unit_id": unit, "path": path, "count": len(path)}
	if len(path) == 0 {
		resp["notice"] = models.EmptyResultNotice("This unit has no events inside the active date filter.")
	}
	c.JSON(http.StatusOK, resp)
}

// handleSummary serves the live distinct-unit counts for every filter chip.
func (d *Dashboard) handleSummary(c *gin.Context) {
	f := filterFromQuery(c)
	records, ok := d.snapshot(c, f.Schema)
	if !ok {
		return
	}

	counts := engine.Count(records, f, d.now())
	c.JSON(http.StatusOK, gin.H{"project_id": c.Param("id"), "counts": counts})
}

// handleExport re-fetches authoritative rows, applies the same predicate
// the view is using, builds the artifact and hands it to the share hook or
// the direct download path. Artifacts reach the client only after full
// construction succeeds.
func (d *Dashboard) handleExport(c *gin.Context) {
	format, err := views.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Notice{
			Title:    "Unsupported format",
			Message:  err.Error(),
			Severity: models.SeverityWarning,
		})
		return
	}

	f := filterFromQuery(c)
	records, ok := d.snapshot(c, f.Schema)
	if !ok {
		return
	}

	projectName := c.DefaultQuery("project_name", c.Param("id"))
	now := d.now()
	jobID := uuid.NewString()[:8]

	art, err := views.Build(format, records, engine.Compile(f, now), f.Schema, projectName, now)
	if err != nil {
		utils.L().Error("export %s failed (project=%s, format=%s): %v", jobID, c.Param("id"), format, err)
		c.JSON(http.StatusInternalServerError,
			models.TransportNotice("The export could not be generated. Nothing was downloaded."))
		return
	}

	utils.L().Info("export %s ready (project=%s, format=%s, bytes=%d)", jobID, c.Param("id"), format, len(art.Data))
	d.deliver(c, art)
}

// handlePosition resolves the operator's own position with a bounded wait.
func (d *Dashboard) handlePosition(c *gin.Context) {
	if d.locator == nil {
		c.JSON(http.StatusServiceUnavailable, locate.NoticeFor(locate.ErrUnavailable))
		return
	}

	pos, err := locate.Resolve(c.Request.Context(), d.locator, d.locateTimeout)
	if err != nil {
		status := http.StatusServiceUnavailable
		switch {
		case errors.Is(err, locate.ErrPermissionDenied):
			status = http.StatusForbidden
		case errors.Is(err, locate.ErrTimedOut):
			status = http.StatusGatewayTimeout
		}
		c.JSON(status, locate.NoticeFor(err))
		return
	}
	c.JSON(http.StatusOK, pos)
}
