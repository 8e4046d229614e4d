// Package capacity computes how much schedulable time a day has left.
//
// The calculator subtracts meetings (with transition buffers) and blocks the
// engine placed on earlier passes from the day's schedulable execution
// window, and the slot finder locates the contiguous free gaps the planner
// can fill. All date bucketing uses civil dates in the configured location,
// never UTC.
package capacity

import (
	"time"

	"github.com/avelys/blockplan/core/model"
)

// AECReport describes a single day's available execution capacity.
type AECReport struct {
	Date             time.Time
	SEWMinutes       int
	MeetingMinutes   int
	ProtectedMinutes int
	AECMinutes       int
	EventCount       int
	Weekend          bool
}

// Calculator derives per-day capacity from a calendar snapshot.
type Calculator struct {
	Windows  WindowSet
	Location *time.Location

	// BeforeBuffer and AfterBuffer pad each external meeting with
	// transition time. Blocks the engine itself placed are not padded.
	BeforeBuffer time.Duration
	AfterBuffer  time.Duration
}

// DefaultBuffer is the stock transition buffer applied on each side of a
// meeting.
const DefaultBuffer = 10 * time.Minute

// NewCalculator returns a calculator with the default window set and
// buffers. A nil location falls back to time.Local.
func NewCalculator(loc *time.Location) Calculator {
	if loc == nil {
		loc = time.Local
	}
	return Calculator{
		Windows:      DefaultWindowSet(),
		Location:     loc,
		BeforeBuffer: DefaultBuffer,
		AfterBuffer:  DefaultBuffer,
	}
}

// DayBounds returns the concrete start and end of the schedulable window on
// the given civil date.
func (c Calculator) DayBounds(date time.Time) (time.Time, time.Time) {
	local := date.In(c.Location)
	y, m, d := local.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, c.Location)
	win := c.Windows.For(local.Weekday())
	start := midnight.Add(time.Duration(win.StartMinute) * time.Minute)
	end := midnight.Add(time.Duration(win.EndMinute) * time.Minute)
	return start, end
}

// ComputeAEC reports the available execution capacity for one day. Adding a
// meeting can only shrink the result, and the result never goes negative.
func (c Calculator) ComputeAEC(date time.Time, events []model.CalendarEvent) AECReport {
	local := date.In(c.Location)
	win := c.Windows.For(local.Weekday())

	rep := AECReport{
		Date:       local,
		SEWMinutes: win.Minutes(),
		Weekend:    local.Weekday() == time.Saturday || local.Weekday() == time.Sunday,
	}

	for _, ev := range events {
		if !ev.StartsOn(date, c.Location) {
			continue
		}
		rep.EventCount++
		dur := int(ev.Duration().Minutes())
		if ev.SystemOwned {
			rep.ProtectedMinutes += dur
		} else {
			rep.MeetingMinutes += dur + int(c.BeforeBuffer.Minutes()) + int(c.AfterBuffer.Minutes())
		}
	}

	rep.AECMinutes = rep.SEWMinutes - rep.MeetingMinutes - rep.ProtectedMinutes
	if rep.AECMinutes < 0 {
		rep.AECMinutes = 0
	}
	return rep
}
