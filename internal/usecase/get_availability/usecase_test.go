package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
)

type MockAvailabilityService struct {
	mock.Mock
}

func (m *MockAvailabilityService) Availability(from, to *time.Time) ([]domain.DayAvailability, error) {
	args := m.Called(from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DayAvailability), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Key(from, to *time.Time, today time.Time) string {
	return m.Called(from, to, today).String(0)
}

func (m *MockCache) Get(ctx context.Context, key string) ([]domain.DayAvailability, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]domain.DayAvailability), args.Bool(1), args.Error(2)
}

func (m *MockCache) Set(ctx context.Context, key string, days []domain.DayAvailability) error {
	return m.Called(ctx, key, days).Error(0)
}

type fixedCalendar struct {
	today time.Time
}

func (c fixedCalendar) Today() time.Time {
	return c.today
}

type recordingMetrics struct {
	cache      []string
	operations []string
}

func (m *recordingMetrics) RecordCacheResult(result string) {
	m.cache = append(m.cache, result)
}

func (m *recordingMetrics) RecordReservationOperation(operation, result string) {
	m.operations = append(m.operations, operation+":"+result)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var today = time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC)

func sampleDays() []domain.DayAvailability {
	return []domain.DayAvailability{
		{Date: today.AddDate(0, 0, 1), ValidForArrival: true},
		{Date: today.AddDate(0, 0, 2), ValidForArrival: true, ValidForDeparture: true},
	}
}

func TestUseCase_CacheHit(t *testing.T) {
	svc := new(MockAvailabilityService)
	cache := new(MockCache)
	m := &recordingMetrics{}

	cache.On("Key", (*time.Time)(nil), (*time.Time)(nil), today).Return("k")
	cache.On("Get", mock.Anything, "k").Return(sampleDays(), true, nil)

	resp, err := NewUseCase(svc, fixedCalendar{today}, cache, m, nopLogger{}).Execute(context.Background(), &Request{})

	require.NoError(t, err)
	assert.Equal(t, sampleDays(), resp.Days)
	assert.Equal(t, []string{"hit"}, m.cache)
	svc.AssertNotCalled(t, "Availability", mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_CacheMiss(t *testing.T) {
	svc := new(MockAvailabilityService)
	cache := new(MockCache)
	m := &recordingMetrics{}
	from := today.AddDate(0, 0, 1)
	to := today.AddDate(0, 0, 2)

	cache.On("Key", &from, &to, today).Return("k")
	cache.On("Get", mock.Anything, "k").Return(nil, false, nil)
	svc.On("Availability", &from, &to).Return(sampleDays(), nil)
	cache.On("Set", mock.Anything, "k", sampleDays()).Return(nil)

	resp, err := NewUseCase(svc, fixedCalendar{today}, cache, m, nopLogger{}).
		Execute(context.Background(), &Request{From: &from, To: &to})

	require.NoError(t, err)
	assert.Equal(t, sampleDays(), resp.Days)
	assert.Equal(t, []string{"miss"}, m.cache)
	assert.Equal(t, []string{"availability:success"}, m.operations)
	cache.AssertExpectations(t)
}

func TestUseCase_CacheErrorsIgnored(t *testing.T) {
	svc := new(MockAvailabilityService)
	cache := new(MockCache)
	m := &recordingMetrics{}

	cache.On("Key", mock.Anything, mock.Anything, mock.Anything).Return("k")
	cache.On("Get", mock.Anything, "k").Return(nil, false, errors.New("redis down"))
	svc.On("Availability", mock.Anything, mock.Anything).Return(sampleDays(), nil)
	cache.On("Set", mock.Anything, "k", mock.Anything).Return(errors.New("redis down"))

	resp, err := NewUseCase(svc, fixedCalendar{today}, cache, m, nopLogger{}).Execute(context.Background(), nil)

	require.NoError(t, err)
	assert.Len(t, resp.Days, 2)
	assert.Equal(t, []string{"error"}, m.cache)
}

func TestUseCase_InvalidRangeNotCached(t *testing.T) {
	svc := new(MockAvailabilityService)
	cache := new(MockCache)
	m := &recordingMetrics{}
	from := today.AddDate(0, 0, 5)
	to := today.AddDate(0, 0, 1)

	cache.On("Key", mock.Anything, mock.Anything, mock.Anything).Return("k")
	cache.On("Get", mock.Anything, "k").Return(nil, false, nil)
	svc.On("Availability", &from, &to).Return(nil, domain.NewInvalidRange(domain.ParamFrom, from, domain.ParamTo, to))

	_, err := NewUseCase(svc, fixedCalendar{today}, cache, m, nopLogger{}).
		Execute(context.Background(), &Request{From: &from, To: &to})

	assert.ErrorIs(t, err, domain.ErrInvalidRange)
	assert.Equal(t, []string{"availability:rejected"}, m.operations)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}
