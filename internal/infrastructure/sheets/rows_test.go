package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCellString_ToleratesShortAndNonStringRows(t *testing.T) {
	row := []interface{}{"a", 42, "c"}

	assert.Equal(t, "a", cellString(row, 0))
	assert.Equal(t, "", cellString(row, 1))
	assert.Equal(t, "c", cellString(row, 2))
	assert.Equal(t, "", cellString(row, 5))
	assert.Equal(t, "", cellString(nil, 0))
}

func TestParseTime_UnparsableIsZero(t *testing.T) {
	assert.True(t, parseTime("not-a-time").IsZero())
	assert.True(t, parseTime("").IsZero())

	got := parseTime("2026-09-01T10:00:00Z")
	assert.Equal(t, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), got)
}

func TestBoolCell(t *testing.T) {
	assert.Equal(t, "true", boolCell(true))
	assert.Equal(t, "false", boolCell(false))
}
