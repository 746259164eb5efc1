package reports

import "time"

// TimeWindow is the inclusive [Start, End] span of one report period,
// resolved in the venue's timezone. Windows are produced per request and
// never stored.
type TimeWindow struct {
	Start time.Time
	End   time.Time
	Loc   *time.Location
}

// Days returns the number of calendar days in the window's month.
func (w TimeWindow) Days() int {
	return w.End.In(w.Loc).Day()
}

// endOfDay is 23:59:59.999 local; the source query is inclusive on both ends.
func endOfDay(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, 23, 59, 59, int(999*time.Millisecond), loc)
}

// ResolveDay returns the window spanning the calendar day that contains now
// in loc, from 00:00:00.000 to 23:59:59.999.
func ResolveDay(now time.Time, loc *time.Location) TimeWindow {
	year, month, day := now.In(loc).Date()
	return TimeWindow{
		Start: time.Date(year, month, day, 0, 0, 0, 0, loc),
		End:   endOfDay(year, month, day, loc),
		Loc:   loc,
	}
}

// ResolveWeek returns the Monday-through-Sunday week that contains now in
// loc. A Sunday belongs to the week it closes: it is shifted back six days
// to find its Monday, never forward.
func ResolveWeek(now time.Time, loc *time.Location) TimeWindow {
	local := now.In(loc)
	weekday := int(local.Weekday())
	if weekday == 0 { // Sunday counts as day 7 of its week
		weekday = 7
	}
	monday := local.AddDate(0, 0, -(weekday - 1))
	year, month, day := monday.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, loc)
	sunday := start.AddDate(0, 0, 6)
	return TimeWindow{
		Start: start,
		End:   endOfDay(sunday.Year(), sunday.Month(), sunday.Day(), loc),
		Loc:   loc,
	}
}

// ResolveMonth returns the window of the calendar month that contains now in
// loc. The last day is computed as day 0 of the following month, so leap
// years and variable month lengths need no lookup table.
func ResolveMonth(now time.Time, loc *time.Location) TimeWindow {
	year, month, _ := now.In(loc).Date()
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
	return TimeWindow{
		Start: time.Date(year, month, 1, 0, 0, 0, 0, loc),
		End:   endOfDay(last.Year(), last.Month(), last.Day(), loc),
		Loc:   loc,
	}
}
