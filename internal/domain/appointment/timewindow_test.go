//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"bookline/internal/domain/appointment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWindow(t *testing.T) {
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("start after end is rejected", func(t *testing.T) {
		_, err := appointment.NewWindow(start, start.Add(-time.Second))
		assert.ErrorIs(t, err, appointment.ErrInvalidWindow)
	})

	t.Run("single instant window contains only its endpoint", func(t *testing.T) {
		w, err := appointment.NewWindow(start, start)
		require.NoError(t, err)

		assert.True(t, w.Contains(start))
		assert.False(t, w.Contains(start.Add(time.Nanosecond)))
		assert.False(t, w.Contains(start.Add(-time.Nanosecond)))
	})

	t.Run("both endpoints are inclusive", func(t *testing.T) {
		end := start.Add(time.Hour)
		w, err := appointment.NewWindow(start, end)
		require.NoError(t, err)

		assert.True(t, w.Contains(start))
		assert.True(t, w.Contains(end))
		assert.False(t, w.Contains(end.Add(time.Millisecond)))
	})
}

func TestCalendarWindows(t *testing.T) {
	loc := time.UTC
	// Tuesday mid-morning.
	now := time.Date(2025, 6, 10, 9, 30, 0, 0, loc)

	t.Run("day window spans the local calendar day", func(t *testing.T) {
		w := appointment.DayWindow(now, loc)

		assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, loc), w.Start())
		assert.Equal(t, time.Date(2025, 6, 10, 23, 59, 59, 999000000, loc), w.End())

		assert.True(t, w.Contains(now))
		assert.True(t, w.Contains(w.End()))
		assert.False(t, w.Contains(time.Date(2025, 6, 11, 0, 0, 0, 0, loc)))
	})

	t.Run("week window starts on Sunday", func(t *testing.T) {
		w := appointment.WeekWindow(now, loc)

		assert.Equal(t, time.Date(2025, 6, 8, 0, 0, 0, 0, loc), w.Start())
		assert.Equal(t, time.Weekday(time.Sunday), w.Start().Weekday())
		assert.Equal(t, time.Date(2025, 6, 14, 23, 59, 59, 999000000, loc), w.End())
	})

	t.Run("week window on a Sunday starts that same day", func(t *testing.T) {
		sunday := time.Date(2025, 6, 8, 15, 0, 0, 0, loc)
		w := appointment.WeekWindow(sunday, loc)

		assert.Equal(t, time.Date(2025, 6, 8, 0, 0, 0, 0, loc), w.Start())
	})

	t.Run("month window spans the local calendar month", func(t *testing.T) {
		w := appointment.MonthWindow(now, loc)

		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, loc), w.Start())
		assert.Equal(t, time.Date(2025, 6, 30, 23, 59, 59, 999000000, loc), w.End())
	})

	t.Run("month window handles December rollover", func(t *testing.T) {
		december := time.Date(2025, 12, 15, 12, 0, 0, 0, loc)
		w := appointment.MonthWindow(december, loc)

		assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, loc), w.Start())
		assert.Equal(t, time.Date(2025, 12, 31, 23, 59, 59, 999000000, loc), w.End())
	})

	t.Run("windows are cut in the supplied location", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*3600)
		// 23:30 UTC on June 10 is already June 11 in Tokyo.
		late := time.Date(2025, 6, 10, 23, 30, 0, 0, time.UTC)
		w := appointment.DayWindow(late, tokyo)

		assert.Equal(t, 11, w.Start().Day())
		assert.True(t, w.Contains(late))
	})
}
