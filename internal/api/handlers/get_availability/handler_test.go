package get_availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
	getAvailability "github.com/m04kA/SMC-CampsiteService/internal/usecase/get_availability"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getAvailability.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(day int) time.Time {
	return time.Date(2022, 8, day, 0, 0, 0, 0, time.UTC)
}

func TestHandler_Success(t *testing.T) {
	uc := new(MockUseCase)
	from, to := date(5), date(6)
	uc.On("Execute", mock.Anything, &getAvailability.Request{From: &from, To: &to}).
		Return(&getAvailability.Response{Days: []domain.DayAvailability{
			{Date: date(5), ValidForArrival: true, ValidForDeparture: true},
			{Date: date(6), ValidForArrival: true, ValidForDeparture: true},
		}}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reservations/availability?from=2022-08-05&to=2022-08-06", nil)
	NewHandler(uc, nopLogger{}).Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"2022-08-05": {"validForArrival": true, "validForDeparture": true},
		"2022-08-06": {"validForArrival": true, "validForDeparture": true}
	}`, rec.Body.String())
	uc.AssertExpectations(t)
}

func TestHandler_NoBounds(t *testing.T) {
	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, &getAvailability.Request{}).
		Return(&getAvailability.Response{}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/reservations/availability", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestHandler_MalformedDate(t *testing.T) {
	uc := new(MockUseCase)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reservations/availability?from=tomorrow", nil)
	NewHandler(uc, nopLogger{}).Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "BR_MALFORMED_PARAM", body["code"])
	meta := body["meta"].(map[string]any)
	assert.Equal(t, "from", meta["param"])
	assert.Equal(t, "tomorrow", meta["value"])
	assert.Equal(t, "LocalDate", meta["requiredType"])
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "inverted range",
			err:        domain.NewInvalidRange(domain.ParamFrom, date(9), domain.ParamTo, date(5)),
			wantStatus: http.StatusBadRequest,
			wantCode:   "BR_INVALID_RANGE",
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "ISE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/reservations/availability?from=2022-08-09&to=2022-08-05", nil)
			NewHandler(uc, nopLogger{}).Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body["code"])
		})
	}
}
