package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldtrack/models"
)

func TestTrackUnitReturnsFullOrderedHistory(t *testing.T) {
	t1 := testNow.Add(-3 * time.Hour)
	t2 := testNow.Add(-2 * time.Hour)
	t3 := testNow.Add(-1 * time.Hour)

	// Shuffled input, with another unit's noise in between.
	records := []models.Record{
		rec("BAT001", models.StatusFailed, t2),
		rec("BAT002", models.StatusOK, t1),
		rec("BAT001", models.StatusOK, t3),
		rec("BAT001", models.StatusPending, t1),
	}

	path, err := TrackUnit(records, "BAT001", nil)
	require.NoError(t, err)
	require.Len(t, path, 3)

	assert.Equal(t, models.StatusPending, path[0].Status)
	assert.Equal(t, models.StatusFailed, path[1].Status)
	assert.Equal(t, models.StatusOK, path[2].Status)
	for i, step := range path {
		assert.Equal(t, i+1, step.Seq, "sequence indices run 1..n with no gaps")
	}
}

func TestTrackUnitUnknownUnitIsNotFound(t *testing.T) {
	records := []models.Record{rec("BAT001", models.StatusOK, testNow)}

	_, err := TrackUnit(records, "BAT999", nil)
	assert.ErrorIs(t, err, ErrUnitNotFound)

	_, err = TrackUnit(records, "  ", nil)
	assert.ErrorIs(t, err, ErrUnitNotFound)
}

func TestTrackUnitIgnoresSelectorButKeepsDates(t *testing.T) {
	today := rec("BAT001", models.StatusFailed, testNow.Add(-time.Hour))
	lastWeek := rec("BAT001", models.StatusOK, testNow.AddDate(0, 0, -7))
	records := []models.Record{lastWeek, today}

	// A status chip would hide the failed event; tracking must not.
	path, err := TrackUnit(records, "BAT001", nil)
	require.NoError(t, err)
	assert.Len(t, path, 2)

	// The date dimension still applies, and surviving steps keep the
	// sequence rank they hold in the complete history.
	datePred := DateOnly(Filter{Window: WindowToday}, testNow)
	path, err = TrackUnit(records, "BAT001", datePred)
	require.NoError(t, err)
	require.Len(t, path, 1)
	assert.Equal(t, models.StatusFailed, path[0].Status)
	assert.Equal(t, 2, path[0].Seq)
}

func TestTrackUnitDateFilteredToEmptyIsNotNotFound(t *testing.T) {
	records := []models.Record{rec("BAT001", models.StatusOK, testNow.AddDate(0, 0, -7))}

	path, err := TrackUnit(records, "BAT001", DateOnly(Filter{Window: WindowToday}, testNow))
	require.NoError(t, err, "an existing unit outside the date filter is an empty result, not a missing unit")
	assert.Empty(t, path)
}

func TestTrackUnitTieKeepsInputOrder(t *testing.T) {
	ts := testNow.Add(-time.Hour)
	a := rec("BAT001", models.StatusPending, ts)
	a.ID = "first"
	b := rec("BAT001", models.StatusOK, ts)
	b.ID = "second"

	path, err := TrackUnit([]models.Record{a, b}, "BAT001", nil)
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, "first", path[0].ID)
	assert.Equal(t, "second", path[1].ID)
}

func TestTrackUnitMatchIsExactNotSubstring(t *testing.T) {
	records := []models.Record{
		rec("BAT001", models.StatusOK, testNow),
		rec("BAT0011", models.StatusOK, testNow),
	}

	path, err := TrackUnit(records, "bat001", nil)
	require.NoError(t, err)
	require.Len(t, path, 1, "tracking selects one specific unit, case-insensitively")
	assert.Equal(t, "BAT001", path[0].UnitID)
}
