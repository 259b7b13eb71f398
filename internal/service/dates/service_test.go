package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
)

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

func defaultParams() domain.ReservationParams {
	return domain.ReservationParams{
		MinStayDays:            1,
		MaxStayDays:            3,
		MaxDefaultDaysToSearch: 31,
		MinLeadDays:            1,
		MaxLeadDays:            31,
		MaxNameLength:          255,
		MaxEmailLength:         255,
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newTestService(t *testing.T, params domain.ReservationParams, now string) *Service {
	t.Helper()
	return NewService(params, fixedTimeProvider{now: mustDate(t, now).Add(15 * time.Hour)}, nil)
}

func TestService_DefaultSearchRange(t *testing.T) {
	s := newTestService(t, defaultParams(), "2022-08-01")

	r := s.DefaultSearchRange()

	assert.Equal(t, "2022-08-02", r.Start().Format(domain.DateFormat))
	assert.Equal(t, "2022-09-01", r.End().Format(domain.DateFormat))
}

func TestService_ValidReservationWindow(t *testing.T) {
	s := newTestService(t, defaultParams(), "2022-08-01")

	w := s.ValidReservationWindow()

	assert.Equal(t, "2022-08-02", w.Start().Format(domain.DateFormat))
	assert.Equal(t, "2022-09-03", w.End().Format(domain.DateFormat))
}

func TestService_ValidReservationWindow_LengthProperty(t *testing.T) {
	now := []string{"2022-08-01", "2024-02-27", "2023-12-31"}

	for minStay := 1; minStay <= 3; minStay++ {
		for maxStay := minStay; maxStay <= 7; maxStay++ {
			for minLead := 0; minLead <= 3; minLead++ {
				for _, maxLead := range []int{minLead, minLead + 1, 31, 365} {
					for _, n := range now {
						params := defaultParams()
						params.MinStayDays = minStay
						params.MaxStayDays = maxStay
						params.MinLeadDays = minLead
						params.MaxLeadDays = maxLead

						w := newTestService(t, params, n).ValidReservationWindow()

						assert.Equal(t, maxLead-minLead+maxStay-1, domain.DaysBetween(w.Start(), w.End()))
						assert.Equal(t, params.HorizonDays(), domain.DaysBetween(w.Start(), w.End()))
					}
				}
			}
		}
	}
}

func TestService_Today_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	now := time.Date(2022, 8, 1, 20, 0, 0, 0, time.UTC) // уже 2 августа в UTC+10

	s := NewService(defaultParams(), fixedTimeProvider{now: now}, loc)

	assert.Equal(t, "2022-08-02", s.Today().Format(domain.DateFormat))
}

func TestService_CheckStayRange(t *testing.T) {
	window := domain.NewDateRange(mustDate(t, "2022-08-01"), mustDate(t, "2022-08-31"))

	tests := []struct {
		name       string
		arrival    string
		departure  string
		wantErr    error
		actualStay int
	}{
		{name: "within window", arrival: "2022-08-10", departure: "2022-08-12"},
		{name: "max stay", arrival: "2022-08-10", departure: "2022-08-13"},
		{name: "arrival on first day", arrival: "2022-08-01", departure: "2022-08-02"},
		{name: "arrival on last day", arrival: "2022-08-31", departure: "2022-09-03"},
		{name: "zero length", arrival: "2022-08-10", departure: "2022-08-10", wantErr: domain.ErrStayTooShort, actualStay: 0},
		{name: "too long", arrival: "2022-08-10", departure: "2022-08-20", wantErr: domain.ErrStayTooLong, actualStay: 10},
		{name: "inverted", arrival: "2022-08-12", departure: "2022-08-10", wantErr: domain.ErrInvalidRange},
		{name: "arrival too early", arrival: "2022-07-31", departure: "2022-08-01", wantErr: domain.ErrArrivalTooEarly},
		{name: "beyond horizon", arrival: "2022-09-01", departure: "2022-09-02", wantErr: domain.ErrNoAvailability},
	}

	s := newTestService(t, defaultParams(), "2022-07-31")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stay := domain.NewDateRange(mustDate(t, tt.arrival), mustDate(t, tt.departure))

			err := s.CheckStayRange(stay, window)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr == domain.ErrStayTooShort || tt.wantErr == domain.ErrStayTooLong {
				e, _ := domain.AsError(err)
				assert.Equal(t, tt.actualStay, e.Meta[domain.MetaActualStay])
				assert.Equal(t, 1, e.Meta[domain.MetaMinStay])
				assert.Equal(t, 3, e.Meta[domain.MetaMaxStay])
			}
		})
	}
}

func TestService_CheckStayRange_DurationBeforeLeadTime(t *testing.T) {
	s := newTestService(t, defaultParams(), "2022-08-01")
	window := domain.NewDateRange(mustDate(t, "2022-08-01"), mustDate(t, "2022-08-31"))

	tooLongAndEarly := domain.NewDateRange(mustDate(t, "2022-07-01"), mustDate(t, "2022-07-20"))
	tooShortAndLate := domain.NewDateRange(mustDate(t, "2022-10-01"), mustDate(t, "2022-10-01"))

	assert.ErrorIs(t, s.CheckStayRange(tooLongAndEarly, window), domain.ErrStayTooLong)
	assert.ErrorIs(t, s.CheckStayRange(tooShortAndLate, window), domain.ErrStayTooShort)
}

func TestService_CheckStayRange_ArrivalTooEarlyMeta(t *testing.T) {
	s := newTestService(t, defaultParams(), "2022-08-01")
	window := domain.NewDateRange(mustDate(t, "2022-08-02"), mustDate(t, "2022-09-03"))

	err := s.CheckStayRange(domain.NewDateRange(mustDate(t, "2022-08-01"), mustDate(t, "2022-08-02")), window)

	require.ErrorIs(t, err, domain.ErrArrivalTooEarly)
	e, _ := domain.AsError(err)
	assert.Equal(t, "2022-08-01", e.Meta[domain.MetaArrival])
	assert.Equal(t, "2022-08-02", e.Meta[domain.MetaMinArrival])
}

func TestService_CheckStayRange_HugeStayReportsExactLength(t *testing.T) {
	s := newTestService(t, defaultParams(), "2022-08-01")
	window := domain.NewDateRange(mustDate(t, "2022-08-02"), mustDate(t, "2022-09-03"))

	err := s.CheckStayRange(domain.NewDateRange(mustDate(t, "0001-01-01"), mustDate(t, "9999-12-31")), window)

	require.ErrorIs(t, err, domain.ErrStayTooLong)
	e, _ := domain.AsError(err)
	assert.Equal(t, 3652058, e.Meta[domain.MetaActualStay])
}
