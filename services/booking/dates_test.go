package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	t.Run("Uses the calendar date of the time's own zone", func(t *testing.T) {
		// 00:30 local on March 1st is still February 28th in UTC for a
		// negative offset; the local date must win.
		west := time.FixedZone("UTC-7", -7*3600)
		assert.Equal(t, "2026-03-01", FormatDate(time.Date(2026, 3, 1, 0, 30, 0, 0, west)))

		east := time.FixedZone("UTC+13", 13*3600)
		assert.Equal(t, "2026-12-31", FormatDate(time.Date(2026, 12, 31, 23, 30, 0, 0, east)))
	})

	t.Run("Zero-pads month and day", func(t *testing.T) {
		assert.Equal(t, "2026-01-05", FormatDate(time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)))
	})
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2026-08-29"))
	assert.True(t, ValidDate("2028-02-29")) // leap day

	assert.False(t, ValidDate("2026-8-29"))
	assert.False(t, ValidDate("2026-13-01"))
	assert.False(t, ValidDate("2026-02-30"))
	assert.False(t, ValidDate("29-08-2026"))
	assert.False(t, ValidDate(""))
	assert.False(t, ValidDate("2026-08-29T00:00:00Z"))
}

func TestIsPastDate(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)

	assert.True(t, IsPastDate("2026-08-28", now))
	assert.False(t, IsPastDate("2026-08-29", now), "today is not past")
	assert.False(t, IsPastDate("2026-08-30", now))
}
