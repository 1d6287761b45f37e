package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	d, err := NewDateStringFromString("2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, DateString("2025-06-10"), d)

	for _, bad := range []string{"", "10/06/2025", "2025-6-1", "2025-13-01", "not a date"} {
		_, err := NewDateStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidDateString, "input %q", bad)
	}
}

func TestDateStringOrdering(t *testing.T) {
	// лексикографическое сравнение совпадает с хронологическим
	assert.True(t, DateString("2025-06-09").Before("2025-06-10"))
	assert.True(t, DateString("2025-12-31").Before("2026-01-01"))
	assert.True(t, DateString("2025-06-10").After("2025-06-09"))
	assert.False(t, DateString("2025-06-10").Before("2025-06-10"))
}

func TestDateStringWeekday(t *testing.T) {
	assert.Equal(t, time.Sunday, DateString("2025-06-08").Weekday())
	assert.Equal(t, time.Monday, DateString("2025-06-09").Weekday())
}

func TestNewDateStringDropsTime(t *testing.T) {
	ts := time.Date(2025, time.June, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, DateString("2025-06-10"), NewDateString(ts))
}
