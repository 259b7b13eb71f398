package create_reservation

import (
	"context"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
	"github.com/m04kA/SMC-CampsiteService/internal/integrations/events"
	"github.com/m04kA/SMC-CampsiteService/internal/service/reservations"
)

const operation = "create"

// UseCase use case для создания бронирования
type UseCase struct {
	service      ReservationService
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	service ReservationService,
	publisher EventPublisher,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		service:      service,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute создает бронирование и публикует событие reservation.created.
// Ошибка публикации только логируется: запись уже сохранена.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Reservation, error) {
	var input *reservations.CreateInput
	if req != nil {
		input = &reservations.CreateInput{
			Name:      req.Name,
			Email:     req.Email,
			Arrival:   req.Arrival,
			Departure: req.Departure,
		}
	}

	created, err := uc.service.Create(ctx, input)
	uc.metrics.RecordReservationOperation(operation, domain.Outcome(err))
	if err != nil {
		uc.logger.Warn("CreateReservation: failed: %v", err)
		return nil, err
	}

	event := events.NewEvent(events.TypeCreated, created, uc.timeProvider.Now())
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Error("CreateReservation: failed to publish event for reservation id=%d: %v", created.ID, err)
	}

	uc.logger.Info("CreateReservation: reservation id=%d created", created.ID)
	return created, nil
}
