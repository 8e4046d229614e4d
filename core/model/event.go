package model

import "time"

// CalendarEvent is one entry from the calendar snapshot handed to a planning
// pass. Events are never mutated by the engine.
type CalendarEvent struct {
	ID      string
	Summary string
	Start   time.Time
	End     time.Time

	// SystemOwned marks blocks the engine itself placed on a previous pass.
	// They count as protected time and are not buffered again.
	SystemOwned bool

	// DedupeKey lets the upstream sync collapse duplicate mirrors of the
	// same meeting. Opaque to the engine.
	DedupeKey string
}

// Duration returns the event length. Events with End before Start are
// treated as zero-length.
func (e CalendarEvent) Duration() time.Duration {
	if e.End.Before(e.Start) {
		return 0
	}
	return e.End.Sub(e.Start)
}

// StartsOn reports whether the event begins on the given civil date in loc.
func (e CalendarEvent) StartsOn(date time.Time, loc *time.Location) bool {
	y1, m1, d1 := e.Start.In(loc).Date()
	y2, m2, d2 := date.In(loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
