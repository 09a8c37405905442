package model

import "time"

// WindowMonths is the length of the eligibility window in calendar months.
const WindowMonths = 3

// Window is the closed interval [Start, End] during which successful
// payments count toward the withdrawable balance.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow anchors a window at the given time. Month arithmetic is done by
// time.AddDate in loc, so a day-of-month that does not exist in the target
// month rolls forward: Jan 31 becomes May 1, Nov 30 becomes Mar 2 (Mar 1 in
// leap years). A nil loc means UTC.
func NewWindow(anchor time.Time, loc *time.Location) Window {
	if loc == nil {
		loc = time.UTC
	}
	start := anchor.In(loc)

	return Window{
		Start: start,
		End:   start.AddDate(0, WindowMonths, 0),
	}
}

// WindowFor returns nil when there is no successful payment to anchor to.
func WindowFor(first *Payment, loc *time.Location) *Window {
	if first == nil {
		return nil
	}
	w := NewWindow(first.CreatedAt, loc)
	return &w
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
