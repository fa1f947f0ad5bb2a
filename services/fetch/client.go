// Package fetch pulls a project's checkpoint records from the upstream
// tracking API. One call, one JSON array, bearer-authenticated; the core
// never manages the credential beyond attaching it.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"fieldtrack/models"
	"fieldtrack/utils"
)

// HTTPClient lets tests inject a mock transport.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TransportError is a failed or non-success upstream exchange. The caller
// surfaces it as a notification and leaves prior view state untouched.
type TransportError struct {
	Status int
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client fetches checkpoint records for one project at a time.
type Client struct {
	baseURL string
	token   string
	http    HTTPClient

	fetched uint64
	failed  uint64
}

// NewClient builds a fetch client. A nil httpClient gets a default with
// the given timeout.
func NewClient(baseURL, token string, timeout time.Duration, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{baseURL: baseURL, token: token, http: httpClient}
}

// ─── wire shapes ────────────────────────────────────────────────────────

type wireLeg struct {
	Name      string     `json:"name"`
	Timestamp *time.Time `json:"timestamp"`
	Latitude  *float64   `json:"latitude"`
	Longitude *float64   `json:"longitude"`
}

type wireRecord struct {
	ID         string     `json:"id"`
	Code       string     `json:"code"`
	Status     string     `json:"status"`
	Latitude   *float64   `json:"latitude"`
	Longitude  *float64   `json:"longitude"`
	Timestamp  time.Time  `json:"timestamp"`
	ProjectID  string     `json:"project_id"`
	Technician string     `json:"technician"`
	Location   string     `json:"location"`

	// multi-checkpoint schema only
	SessionID        string    `json:"session_id"`
	Category         string    `json:"category"`
	CheckpointType   string    `json:"checkpoint_type"`
	CheckpointNumber int       `json:"checkpoint_number"`
	Phase            string    `json:"phase"`
	Checkpoints      []wireLeg `json:"checkpoints"`
}

// FetchRecords GETs all checkpoint records for a project and normalizes
// them into the engine's record shape. The context governs cancellation:
// a view closed before the fetch resolves cancels it, so a stale response
// is never applied.
func (c *Client) FetchRecords(ctx context.Context, projectID string, schema models.Schema) ([]models.Record, error) {
	url := fmt.Sprintf("%s/projects/%s/checkpoints", c.baseURL, projectID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		atomic.AddUint64(&c.failed, 1)
		return nil, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		atomic.AddUint64(&c.failed, 1)
		return nil, &TransportError{URL: url, Status: resp.StatusCode}
	}

	var wire []wireRecord
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		atomic.AddUint64(&c.failed, 1)
		return nil, &TransportError{URL: url, Err: fmt.Errorf("decode body: %w", err)}
	}

	records := make([]models.Record, 0, len(wire))
	for i := range wire {
		records = append(records, normalize(&wire[i], projectID, schema))
	}

	atomic.AddUint64(&c.fetched, 1)
	utils.L().Info("fetched project records (project=%s, schema=%s, count=%d)",
		projectID, schema, len(records))
	return records, nil
}

// normalize maps one wire row to an immutable Record. Rows arriving
// without an id get one assigned so exports always have a stable key.
func normalize(w *wireRecord, projectID string, schema models.Schema) models.Record {
	id := w.ID
	if id == "" {
		id = uuid.NewString()
	}
	project := w.ProjectID
	if project == "" {
		project = projectID
	}

	rec := models.Record{
		ID:         id,
		ProjectID:  project,
		UnitID:     w.Code,
		Status:     models.Status(w.Status),
		Timestamp:  w.Timestamp,
		Technician: w.Technician,
		Location:   w.Location,
	}
	if w.Latitude != nil && w.Longitude != nil {
		rec.Position = &models.Position{Lat: *w.Latitude, Lng: *w.Longitude}
	}

	if schema == models.SchemaRich {
		rich := &models.RichFields{
			SessionID:        w.SessionID,
			Category:         w.Category,
			CheckpointType:   w.CheckpointType,
			CheckpointNumber: w.CheckpointNumber,
			Phase:            w.Phase,
		}
		for _, leg := range w.Checkpoints {
			rich.Legs = append(rich.Legs, models.Leg{
				Name:      leg.Name,
				Timestamp: leg.Timestamp,
				Lat:       leg.Latitude,
				Lng:       leg.Longitude,
			})
		}
		rec.Rich = rich
	}
	return rec
}

// Stats returns (successful fetches, failed fetches).
func (c *Client) Stats() (uint64, uint64) {
	return atomic.LoadUint64(&c.fetched), atomic.LoadUint64(&c.failed)
}
