package cancel_reservation

import (
	"context"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
	"github.com/m04kA/SMC-CampsiteService/internal/integrations/events"
)

const operation = "cancel"

// UseCase use case для отмены бронирования
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

// Execute читает и отменяет бронирование в одной сериализуемой транзакции,
// затем публикует событие reservation.cancelled
func (uc *UseCase) Execute(ctx context.Context, id int64) error {
	var cancelled *domain.Reservation
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.service.Get(txCtx, id)
		if err != nil {
			return err
		}

		if err := uc.service.Cancel(txCtx, existing); err != nil {
			return err
		}
		cancelled = existing
		return nil
	})

	uc.metrics.RecordReservationOperation(operation, domain.Outcome(err))
	if err != nil {
		uc.logger.Warn("CancelReservation: reservation id=%d: %v", id, err)
		return err
	}

	event := events.NewEvent(events.TypeCancelled, cancelled, uc.timeProvider.Now())
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Error("CancelReservation: failed to publish event for reservation id=%d: %v", id, err)
	}

	uc.logger.Info("CancelReservation: reservation id=%d cancelled", id)
	return nil
}
