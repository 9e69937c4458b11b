package impl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddMonthsClamped(t *testing.T) {
	utc := time.UTC
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, utc) }

	tests := []struct {
		name   string
		from   time.Time
		months int
		want   time.Time
	}{
		{"plain", day(2024, time.May, 10), 1, day(2024, time.June, 10)},
		{"leap february", day(2024, time.January, 31), 1, day(2024, time.February, 29)},
		{"common february", day(2023, time.January, 31), 1, day(2023, time.February, 28)},
		{"thirty day month", day(2024, time.March, 31), 1, day(2024, time.April, 30)},
		{"year rollover", day(2024, time.December, 15), 1, day(2025, time.January, 15)},
		{"several months", day(2024, time.August, 31), 6, day(2025, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, addMonthsClamped(tt.from, tt.months))
		})
	}
}

func TestWithinBookingWindow(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)
	now := time.Date(2024, time.January, 31, 22, 0, 0, 0, seoul)

	assert.True(t, withinBookingWindow(time.Date(2024, time.February, 28, 23, 59, 0, 0, seoul), now, 1, seoul))
	assert.False(t, withinBookingWindow(time.Date(2024, time.February, 29, 0, 0, 0, 0, seoul), now, 1, seoul))

	// The visit day is taken in the business zone, not the caller's.
	visit := time.Date(2024, time.February, 28, 16, 0, 0, 0, time.UTC) // Feb 29 01:00 KST
	assert.False(t, withinBookingWindow(visit, now, 1, seoul))

	assert.True(t, withinBookingWindow(now.Add(-48*time.Hour), now, 1, seoul))
}

func TestStartAndEndOfDay(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)
	instant := time.Date(2024, time.May, 9, 20, 0, 0, 0, time.UTC) // May 10 05:00 KST

	assert.Equal(t, time.Date(2024, time.May, 10, 0, 0, 0, 0, seoul), startOfDay(instant, seoul))
	assert.Equal(t, time.Date(2024, time.May, 10, 23, 59, 59, int(time.Second-time.Nanosecond), seoul), endOfDay(instant, seoul))
}
