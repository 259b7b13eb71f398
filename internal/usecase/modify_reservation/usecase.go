package modify_reservation

import (
	"context"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
	"github.com/m04kA/SMC-CampsiteService/internal/integrations/events"
	"github.com/m04kA/SMC-CampsiteService/internal/service/reservations"
)

const operation = "modify"

// UseCase use case для переноса дат бронирования
type UseCase struct {
	service      ReservationService
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	service ReservationService,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		service:      service,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute читает бронирование и переносит его даты в одной сериализуемой транзакции,
// затем публикует событие reservation.modified
func (uc *UseCase) Execute(ctx context.Context, id int64, req *Request) (*domain.Reservation, error) {
	var changes *reservations.StayChanges
	if req != nil {
		changes = &reservations.StayChanges{Arrival: req.Arrival, Departure: req.Departure}
	}

	var result *domain.Reservation
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.service.Get(txCtx, id)
		if err != nil {
			return err
		}

		result, err = uc.service.Modify(txCtx, existing, changes)
		return err
	})

	uc.metrics.RecordReservationOperation(operation, domain.Outcome(err))
	if err != nil {
		uc.logger.Warn("ModifyReservation: reservation id=%d: %v", id, err)
		return nil, err
	}

	event := events.NewEvent(events.TypeModified, result, uc.timeProvider.Now())
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Error("ModifyReservation: failed to publish event for reservation id=%d: %v", id, err)
	}

	uc.logger.Info("ModifyReservation: reservation id=%d modified", id)
	return result, nil
}
