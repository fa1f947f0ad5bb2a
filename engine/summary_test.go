package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldtrack/models"
)

func TestCountDistinctUnitsNotEvents(t *testing.T) {
	records := []models.Record{
		richRec("BAT001", models.StatusOK, "A", testNow),
		richRec("BAT001", models.StatusOK, "A", testNow.Add(time.Hour)), // same unit, second scan
		richRec("BAT002", models.StatusOK, "A", testNow),
		richRec("BOX001", models.StatusOK, "", testNow),
	}

	counts := Count(records, Filter{Schema: models.SchemaRich}, testNow)
	assert.Equal(t, 2, counts["a"], "two distinct category-A units despite three events")
	assert.Equal(t, 1, counts["boxes"])
	assert.Equal(t, 2, counts["all"], "boxes are not part of the rich 'all' chip")
}

func TestCountIgnoresActiveSelectorButKeepsOtherDimensions(t *testing.T) {
	records := []models.Record{
		richRec("BAT001", models.StatusOK, "A", testNow),
		richRec("BAT002", models.StatusFailed, "B", testNow),
		richRec("BAT003", models.StatusOK, "A", testNow.AddDate(0, 0, -7)),
	}

	// Active chip is "failed"; the "a" chip count must still be visible —
	// but the window trims the week-old record for every chip.
	base := Filter{Schema: models.SchemaRich, Selector: SelectFailed, Window: WindowToday}
	counts := Count(records, base, testNow)

	assert.Equal(t, 1, counts["a"])
	assert.Equal(t, 1, counts["failed"])
	assert.Equal(t, 2, counts["all"])
}

func TestCountChipSetPerSchema(t *testing.T) {
	richCounts := Count(nil, Filter{Schema: models.SchemaRich}, testNow)
	for _, label := range []string{"all", "ok", "failed", "pending", "a", "b", "c", "d", "e", "boxes"} {
		_, ok := richCounts[label]
		assert.True(t, ok, "rich chip %q missing", label)
	}

	genCounts := Count(nil, Filter{Schema: models.SchemaGeneric}, testNow)
	require.Len(t, genCounts, 4)
	_, hasBoxes := genCounts["boxes"]
	assert.False(t, hasBoxes, "generic projects have no boxes chip")
}

func TestCountEmptyInput(t *testing.T) {
	counts := Count(nil, Filter{Schema: models.SchemaGeneric}, testNow)
	assert.Equal(t, 0, counts["all"])
	assert.Equal(t, 0, counts["ok"])
}
