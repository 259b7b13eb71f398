package get_availability

import (
	"time"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
)

// Request запрос доступности. Если не заданы обе границы, используется диапазон по умолчанию.
type Request struct {
	From *time.Time
	To   *time.Time
}

// Response доступность по дням в порядке возрастания даты
type Response struct {
	Days []domain.DayAvailability
}
