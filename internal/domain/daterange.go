package domain

import "time"

const secondsPerDay = 24 * 60 * 60

// DateRange is a read-only (start, end) pair of calendar dates.
// No ordering is enforced on construction; callers check it where it matters.
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange creates a range from two dates, dropping their time of day
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{start: DateOf(start), end: DateOf(end)}
}

// Start returns the first date of the range
func (r DateRange) Start() time.Time {
	return r.start
}

// End returns the last date of the range
func (r DateRange) End() time.Time {
	return r.end
}

// Contains returns true if d lies within [start, end]
func (r DateRange) Contains(d time.Time) bool {
	d = DateOf(d)
	return !d.Before(r.start) && !d.After(r.end)
}

// Days returns every date of the range in ascending order, both ends included.
// An inverted range yields no dates.
func (r DateRange) Days() []time.Time {
	if r.start.After(r.end) {
		return []time.Time{}
	}
	days := make([]time.Time, 0, DaysBetween(r.start, r.end)+1)
	for d := r.start; !d.After(r.end); d = AddDays(d, 1) {
		days = append(days, d)
	}
	return days
}

// String formats the range as "YYYY-MM-DD..YYYY-MM-DD"
func (r DateRange) String() string {
	return r.start.Format(DateFormat) + ".." + r.end.Format(DateFormat)
}

// DateOf drops the time of day of t, keeping the calendar date as seen in t's location.
// The result is midnight UTC, so dates compare and subtract without DST effects.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays shifts a date by n calendar days
func AddDays(t time.Time, n int) time.Time {
	return DateOf(t).AddDate(0, 0, n)
}

// DaysBetween returns the number of calendar days from a to b (negative when b is before a)
func DaysBetween(a, b time.Time) int {
	// time.Duration saturates at ~292 years; both sides are UTC midnights
	return int((DateOf(b).Unix() - DateOf(a).Unix()) / secondsPerDay)
}

// ParseDate parses a "YYYY-MM-DD" date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}
