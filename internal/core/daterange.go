package core

import (
	"fmt"
	"time"
)

// DefaultTimezone is the civil timezone all day boundaries are computed in.
const DefaultTimezone = "Europe/Kyiv"

// DayRange returns the [start of day, start of next day) window of the
// requested civil day in loc. Boundaries are computed on the zone's wall
// clock, so DST transitions and month/year rollovers stay correct.
func DayRange(now time.Time, loc *time.Location, day Day) TimeRange {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	if day == Yesterday {
		start = start.AddDate(0, 0, -1)
	}
	end := start.AddDate(0, 0, 1)
	return TimeRange{From: start.Unix(), To: end.Unix()}
}

// FormatDate renders an epoch-second timestamp as DD.MM.YYYY in loc.
func FormatDate(ts int64, loc *time.Location) string {
	t := time.Unix(ts, 0).In(loc)
	return fmt.Sprintf("%02d.%02d.%04d", t.Day(), int(t.Month()), t.Year())
}
