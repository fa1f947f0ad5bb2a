package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldtrack/models"
)

func TestResolveLatestKeepsNewestPerUnit(t *testing.T) {
	t1 := testNow.Add(-3 * time.Hour)
	t2 := testNow.Add(-2 * time.Hour)
	t3 := testNow.Add(-1 * time.Hour)

	records := []models.Record{
		rec("BAT001", models.StatusPending, t1),
		rec("BAT001", models.StatusFailed, t2),
		rec("BAT001", models.StatusOK, t3),
		rec("BAT002", models.StatusOK, t1),
	}

	out := ResolveLatest(records, nil)
	require.Len(t, out, 2)

	byUnit := map[string]models.Record{}
	for _, r := range out {
		byUnit[r.UnitID] = r
	}
	assert.Equal(t, models.StatusOK, byUnit["BAT001"].Status)
	assert.True(t, byUnit["BAT001"].Timestamp.Equal(t3))
	assert.True(t, byUnit["BAT002"].Timestamp.Equal(t1))
}

func TestResolveLatestHonoursPredicate(t *testing.T) {
	records := []models.Record{
		rec("BAT001", models.StatusFailed, testNow.Add(-2*time.Hour)),
		rec("BAT001", models.StatusOK, testNow.Add(-1*time.Hour)),
	}
	onlyFailed := Compile(Filter{Selector: SelectFailed}, testNow)

	out := ResolveLatest(records, onlyFailed)
	require.Len(t, out, 1)
	// The newer OK record did not pass, so the failed one is the latest
	// passing state.
	assert.Equal(t, models.StatusFailed, out[0].Status)
}

func TestResolveLatestTieGoesToLaterArrival(t *testing.T) {
	ts := testNow.Add(-time.Hour)
	first := rec("BAT001", models.StatusPending, ts)
	second := rec("BAT001", models.StatusOK, ts)
	second.ID = "arrived-later"

	out := ResolveLatest([]models.Record{first, second}, nil)
	require.Len(t, out, 1)
	assert.Equal(t, "arrived-later", out[0].ID)
}

func TestResolveLatestEmptyInputIsNotAnError(t *testing.T) {
	assert.Empty(t, ResolveLatest(nil, nil))

	records := []models.Record{rec("BAT001", models.StatusOK, testNow)}
	nothing := func(*models.Record) bool { return false }
	assert.Empty(t, ResolveLatest(records, nothing))
}

func TestResolveLatestOneRowPerUnit(t *testing.T) {
	var records []models.Record
	for i := 0; i < 5; i++ {
		records = append(records,
			rec("BAT001", models.StatusOK, testNow.Add(time.Duration(i)*time.Minute)),
			rec("BAT002", models.StatusOK, testNow.Add(time.Duration(i)*time.Minute)),
			rec("BOX001", models.StatusOK, testNow.Add(time.Duration(i)*time.Minute)),
		)
	}

	out := ResolveLatest(records, nil)
	seen := map[string]bool{}
	for _, r := range out {
		assert.False(t, seen[r.UnitID], "unit %s appears twice", r.UnitID)
		seen[r.UnitID] = true
	}
	assert.Len(t, out, 3)
}

func TestSortNewestFirst(t *testing.T) {
	records := []models.Record{
		rec("BAT001", models.StatusOK, testNow.Add(-3*time.Hour)),
		rec("BAT002", models.StatusOK, testNow.Add(-1*time.Hour)),
		rec("BAT003", models.StatusOK, testNow.Add(-2*time.Hour)),
	}

	out := SortNewestFirst(records, nil)
	require.Len(t, out, 3)
	assert.Equal(t, "BAT002", out[0].UnitID)
	assert.Equal(t, "BAT003", out[1].UnitID)
	assert.Equal(t, "BAT001", out[2].UnitID)

	// source order untouched
	assert.Equal(t, "BAT001", records[0].UnitID)
}
