package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/avelys/blockplan/core/capacity"
)

// ClockSpan is a wall-clock window in HH:MM form.
type ClockSpan struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WindowConfig defines the schedulable execution window.
type WindowConfig struct {
	Timezone string    `json:"timezone"`
	Default  ClockSpan `json:"default"`
	// Weekdays overrides the default window per weekday, keyed by the
	// lowercase English day name.
	Weekdays map[string]ClockSpan `json:"weekdays"`
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// SetDefaults applies the stock 10:00-20:30 local window.
func (c *WindowConfig) SetDefaults() {
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if c.Default.Start == "" {
		c.Default.Start = "10:00"
	}
	if c.Default.End == "" {
		c.Default.End = "20:30"
	}
}

// Validate checks the timezone and every configured span.
func (c WindowConfig) Validate() error {
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("window timezone: %w", err)
	}
	if err := validateSpan(c.Default); err != nil {
		return fmt.Errorf("window default: %w", err)
	}
	for name, span := range c.Weekdays {
		if _, ok := weekdayNames[strings.ToLower(name)]; !ok {
			return fmt.Errorf("window: unknown weekday %q", name)
		}
		if err := validateSpan(span); err != nil {
			return fmt.Errorf("window %s: %w", name, err)
		}
	}
	return nil
}

// Location returns the configured time.Location. Validate must have passed.
func (c WindowConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// WindowSet converts the configuration into the capacity package's resolved
// form. Validate must have passed.
func (c WindowConfig) WindowSet() capacity.WindowSet {
	ws := capacity.WindowSet{Default: mustRange(c.Default)}
	if len(c.Weekdays) > 0 {
		ws.ByWeekday = make(map[time.Weekday]capacity.ClockRange, len(c.Weekdays))
		for name, span := range c.Weekdays {
			ws.ByWeekday[weekdayNames[strings.ToLower(name)]] = mustRange(span)
		}
	}
	return ws
}

func validateSpan(s ClockSpan) error {
	start, err := parseClock(s.Start)
	if err != nil {
		return err
	}
	end, err := parseClock(s.End)
	if err != nil {
		return err
	}
	if end <= start {
		return fmt.Errorf("end %s must be after start %s", s.End, s.Start)
	}
	return nil
}

func mustRange(s ClockSpan) capacity.ClockRange {
	start, _ := parseClock(s.Start)
	end, _ := parseClock(s.End)
	return capacity.ClockRange{StartMinute: start, EndMinute: end}
}

// parseClock converts "HH:MM" into minutes since midnight.
func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}
