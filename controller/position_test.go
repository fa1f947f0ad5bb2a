package controller

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldtrack/models"
	"fieldtrack/services/locate"
)

type stubLocator struct {
	pos models.Position
	err error
}

func (s *stubLocator) CurrentPosition(ctx context.Context) (models.Position, error) {
	return s.pos, s.err
}

func TestPositionReturnsFix(t *testing.T) {
	d := NewDashboard(&stubFetcher{}, &stubLocator{pos: models.Position{Lat: 48.2, Lng: 16.3}}, time.Second, nil)

	w := get(t, newRouter(d), "/api/position")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "48.2")
}

func TestPositionFaultStatusPerCause(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{locate.ErrPermissionDenied, http.StatusForbidden},
		{locate.ErrUnavailable, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		d := NewDashboard(&stubFetcher{}, &stubLocator{err: tc.err}, time.Second, nil)
		w := get(t, newRouter(d), "/api/position")
		assert.Equal(t, tc.status, w.Code)
	}
}

func TestPositionWithoutProviderIsUnavailable(t *testing.T) {
	d := NewDashboard(&stubFetcher{}, nil, time.Second, nil)

	w := get(t, newRouter(d), "/api/position")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
