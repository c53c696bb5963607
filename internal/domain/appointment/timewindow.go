package appointment

import (
	"errors"
	"time"
)

var ErrInvalidWindow = errors.New("window start must not be after end")

// Window is a closed time range; both endpoints are included.
// Calendar windows are cut at local day boundaries of the supplied location,
// the end falling one millisecond before the next boundary.
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if start.After(end) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

func (w Window) Start() time.Time { return w.start }
func (w Window) End() time.Time   { return w.end }

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.start) && !t.After(w.end)
}

// DayWindow covers the local calendar day containing now.
func DayWindow(now time.Time, loc *time.Location) Window {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return Window{start: start, end: endBefore(start.AddDate(0, 0, 1))}
}

// WeekWindow covers the Sunday-to-Saturday week containing now.
func WeekWindow(now time.Time, loc *time.Location) Window {
	local := now.In(loc)
	sunday := local.AddDate(0, 0, -int(local.Weekday()))
	start := time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 0, 0, 0, 0, loc)
	return Window{start: start, end: endBefore(start.AddDate(0, 0, 7))}
}

// MonthWindow covers the local calendar month containing now.
func MonthWindow(now time.Time, loc *time.Location) Window {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	return Window{start: start, end: endBefore(start.AddDate(0, 1, 0))}
}

func endBefore(nextBoundary time.Time) time.Time {
	return nextBoundary.Add(-time.Millisecond)
}
