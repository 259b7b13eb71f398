package get_availability

import (
	"context"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
)

const operation = "availability"

// UseCase use case получения доступности дат с кэшированием
type UseCase struct {
	service  AvailabilityService
	calendar Calendar
	cache    Cache
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	service AvailabilityService,
	calendar Calendar,
	cache Cache,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		service:  service,
		calendar: calendar,
		cache:    cache,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute возвращает доступность из кэша или рассчитывает ее.
// Ошибки кэша не влияют на результат: при них расчет выполняется заново.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		req = &Request{}
	}

	key := uc.cache.Key(req.From, req.To, uc.calendar.Today())

	days, hit, err := uc.cache.Get(ctx, key)
	switch {
	case err != nil:
		uc.metrics.RecordCacheResult("error")
		uc.logger.Warn("GetAvailability: cache read failed for key=%s: %v", key, err)
	case hit:
		uc.metrics.RecordCacheResult("hit")
		uc.metrics.RecordReservationOperation(operation, domain.Outcome(nil))
		return &Response{Days: days}, nil
	default:
		uc.metrics.RecordCacheResult("miss")
	}

	days, err = uc.service.Availability(req.From, req.To)
	uc.metrics.RecordReservationOperation(operation, domain.Outcome(err))
	if err != nil {
		uc.logger.Warn("GetAvailability: rejected: %v", err)
		return nil, err
	}

	if err := uc.cache.Set(ctx, key, days); err != nil {
		uc.logger.Warn("GetAvailability: cache write failed for key=%s: %v", key, err)
	}

	uc.logger.Info("GetAvailability: computed %d days", len(days))
	return &Response{Days: days}, nil
}
