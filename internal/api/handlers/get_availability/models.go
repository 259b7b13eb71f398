package get_availability

import (
	"github.com/m04kA/SMC-CampsiteService/internal/domain"
	getAvailability "github.com/m04kA/SMC-CampsiteService/internal/usecase/get_availability"
)

// DayResponse доступность одного дня
type DayResponse struct {
	ValidForArrival   bool `json:"validForArrival"`
	ValidForDeparture bool `json:"validForDeparture"`
}

// AvailabilityResponse дни по ключу YYYY-MM-DD
type AvailabilityResponse map[string]DayResponse

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *getAvailability.Response) AvailabilityResponse {
	result := make(AvailabilityResponse, len(resp.Days))
	for _, d := range resp.Days {
		result[d.Date.Format(domain.DateFormat)] = DayResponse{
			ValidForArrival:   d.ValidForArrival,
			ValidForDeparture: d.ValidForDeparture,
		}
	}
	return result
}
