package capacity

import (
	"sort"
	"time"

	"github.com/avelys/blockplan/core/model"
)

// TimeSlot is a contiguous free gap inside a day's schedulable window. Slots
// are owned by a single planning pass and shrink as blocks are carved out of
// them.
type TimeSlot struct {
	Start time.Time
	End   time.Time
}

// Duration returns the remaining slot length.
func (s TimeSlot) Duration() time.Duration {
	if s.End.Before(s.Start) {
		return 0
	}
	return s.End.Sub(s.Start)
}

// Minutes returns the remaining slot length in whole minutes.
func (s TimeSlot) Minutes() int {
	return int(s.Duration().Minutes())
}

// FindAvailableSlots returns the ordered free gaps of at least minMinutes on
// the given civil date. Meetings are padded with the configured buffers;
// overlapping or adjacent events are clipped rather than double-subtracted,
// and events reaching outside the window are clipped to it.
func (c Calculator) FindAvailableSlots(date time.Time, events []model.CalendarEvent, minMinutes int) []TimeSlot {
	sewStart, sewEnd := c.DayBounds(date)
	if !sewEnd.After(sewStart) {
		return nil
	}

	var day []model.CalendarEvent
	for _, ev := range events {
		if ev.StartsOn(date, c.Location) {
			day = append(day, ev)
		}
	}
	sort.Slice(day, func(i, j int) bool { return day[i].Start.Before(day[j].Start) })

	minDur := time.Duration(minMinutes) * time.Minute
	var slots []TimeSlot
	cursor := sewStart

	for _, ev := range day {
		busyStart, busyEnd := ev.Start, ev.End
		if !ev.SystemOwned {
			busyStart = busyStart.Add(-c.BeforeBuffer)
			busyEnd = busyEnd.Add(c.AfterBuffer)
		}
		if busyStart.Before(sewStart) {
			busyStart = sewStart
		}
		if busyStart.After(sewEnd) {
			busyStart = sewEnd
		}
		if busyEnd.After(sewEnd) {
			busyEnd = sewEnd
		}
		if !busyEnd.After(cursor) {
			continue
		}
		if busyStart.After(cursor) && busyStart.Sub(cursor) >= minDur {
			slots = append(slots, TimeSlot{Start: cursor, End: busyStart})
		}
		if busyEnd.After(cursor) {
			cursor = busyEnd
		}
	}

	if sewEnd.After(cursor) && sewEnd.Sub(cursor) >= minDur {
		slots = append(slots, TimeSlot{Start: cursor, End: sewEnd})
	}
	return slots
}
