package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestDateOf_DropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	ts := time.Date(2022, 8, 1, 23, 30, 0, 0, loc)

	got := DateOf(ts)

	assert.Equal(t, time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"same day", "2022-08-10", "2022-08-10", 0},
		{"forward", "2022-08-10", "2022-08-20", 10},
		{"backward", "2022-08-20", "2022-08-10", -10},
		{"month boundary", "2022-08-31", "2022-09-03", 3},
		{"leap day", "2024-02-28", "2024-03-01", 2},
		{"whole calendar", "0001-01-01", "9999-12-31", 3652058},
		{"whole calendar backward", "9999-12-31", "0001-01-01", -3652058},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(date(t, tt.a), date(t, tt.b)))
		})
	}
}

func TestDateRange_Days(t *testing.T) {
	r := NewDateRange(date(t, "2022-08-30"), date(t, "2022-09-02"))

	days := r.Days()

	require.Len(t, days, 4)
	assert.Equal(t, "2022-08-30", days[0].Format(DateFormat))
	assert.Equal(t, "2022-09-02", days[3].Format(DateFormat))
	for i := 1; i < len(days); i++ {
		assert.Equal(t, 1, DaysBetween(days[i-1], days[i]))
	}
}

func TestDateRange_Days_Inverted(t *testing.T) {
	r := NewDateRange(date(t, "2022-09-02"), date(t, "2022-08-30"))

	assert.Empty(t, r.Days())
}

func TestDateRange_Contains(t *testing.T) {
	r := NewDateRange(date(t, "2022-08-02"), date(t, "2022-09-03"))

	assert.True(t, r.Contains(date(t, "2022-08-02")))
	assert.True(t, r.Contains(date(t, "2022-09-03")))
	assert.False(t, r.Contains(date(t, "2022-08-01")))
	assert.False(t, r.Contains(date(t, "2022-09-04")))
	assert.Equal(t, "2022-08-02..2022-09-03", r.String())
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("2022-13-01")
	assert.Error(t, err)
}

func TestReservation_State(t *testing.T) {
	r := &Reservation{Arrival: date(t, "2022-08-10"), Departure: date(t, "2022-08-12")}

	assert.True(t, r.IsNew())
	assert.False(t, r.IsCancelled())
	assert.Equal(t, 2, r.Nights())

	now := time.Date(2022, 8, 5, 10, 0, 0, 0, time.UTC)
	r.ID = 7
	r.DeletedAt = &now

	assert.False(t, r.IsNew())
	assert.True(t, r.IsCancelled())
}

func TestReservationParams_HorizonDays(t *testing.T) {
	p := DefaultReservationParams()

	assert.Equal(t, 32, p.HorizonDays())
}
