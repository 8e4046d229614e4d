package capacity

import "time"

// ClockRange is a daily wall-clock window expressed in minutes since
// midnight. It is produced by the configuration layer, which parses and
// validates the HH:MM forms.
type ClockRange struct {
	StartMinute int
	EndMinute   int
}

// Minutes returns the window length.
func (r ClockRange) Minutes() int {
	if r.EndMinute <= r.StartMinute {
		return 0
	}
	return r.EndMinute - r.StartMinute
}

// WindowSet resolves the schedulable execution window for each weekday.
type WindowSet struct {
	Default   ClockRange
	ByWeekday map[time.Weekday]ClockRange
}

// DefaultWindowSet returns the stock 10:00-20:30 window for every day.
func DefaultWindowSet() WindowSet {
	return WindowSet{Default: ClockRange{StartMinute: 10 * 60, EndMinute: 20*60 + 30}}
}

// For returns the window for the given weekday.
func (ws WindowSet) For(d time.Weekday) ClockRange {
	if r, ok := ws.ByWeekday[d]; ok {
		return r
	}
	return ws.Default
}
