package reservations

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CampsiteService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CampsiteService/internal/service/validate"
)

// Service движок бронирований: проверяет поля и даты и делегирует чтение/запись хранилищу.
// Собственного состояния между вызовами нет.
//
// Пересечения с уже существующими бронированиями не проверяются: доступность
// и создание опираются только на окна политики. Двойное бронирование этим кодом не предотвращается.
type Service struct {
	repo         ReservationRepository
	dates        DatePolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр движка бронирований
func NewService(
	repo ReservationRepository,
	dates DatePolicy,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		dates:        dates,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Availability возвращает для каждой даты диапазона поиска (по возрастанию),
// можно ли в нее заехать и можно ли в нее выехать.
// Если не заданы обе границы, используется диапазон поиска по умолчанию.
func (s *Service) Availability(from, to *time.Time) ([]domain.DayAvailability, error) {
	searchRange := s.dates.DefaultSearchRange()
	if from != nil && to != nil {
		if err := validate.Ordered(domain.ParamFrom, *from, domain.ParamTo, *to); err != nil {
			return nil, err
		}
		searchRange = domain.NewDateRange(*from, *to)
	}

	window := s.dates.ValidReservationWindow()
	maxStay := s.dates.Params().MaxStayDays

	days := searchRange.Days()
	result := make([]domain.DayAvailability, 0, len(days))
	for _, d := range days {
		validForArrival := window.Contains(d)
		validForDeparture := !d.Equal(window.Start()) &&
			(validForArrival || (d.After(window.End()) && domain.DaysBetween(window.End(), d) < maxStay))

		result = append(result, domain.DayAvailability{
			Date:              d,
			ValidForArrival:   validForArrival,
			ValidForDeparture: validForDeparture,
		})
	}

	return result, nil
}

// Get возвращает бронирование по ID
func (s *Service) Get(ctx context.Context, id int64) (*domain.Reservation, error) {
	if err := validate.ID(id); err != nil {
		return nil, err
	}

	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Get: reservation id=%d not found", id)
			return nil, domain.NewNotFound(domain.EntityReservation, id)
		}
		s.logger.Error("Get: repository error for reservation id=%d: %v", id, err)
		return nil, domain.Internal(err)
	}

	return reservation, nil
}

// Create проверяет входные данные и сохраняет новое бронирование
func (s *Service) Create(ctx context.Context, input *CreateInput) (*domain.Reservation, error) {
	if err := validate.NotNil(domain.ParamBody, input); err != nil {
		return nil, err
	}

	params := s.dates.Params()
	if err := validate.WithinLength(domain.ParamName, params.MaxNameLength, input.Name); err != nil {
		return nil, err
	}
	if err := validate.WithinLength(domain.ParamEmail, params.MaxEmailLength, input.Email); err != nil {
		return nil, err
	}

	stay, err := s.checkStay(input.Arrival, input.Departure)
	if err != nil {
		return nil, err
	}

	reservation := &domain.Reservation{
		CreatedAt:  s.timeProvider.Now(),
		GuestName:  input.Name,
		GuestEmail: input.Email,
		Arrival:    stay.Start(),
		Departure:  stay.End(),
	}

	saved, err := s.repo.Save(ctx, reservation)
	if err != nil {
		s.logger.Error("Create: failed to save reservation %s: %v", stay, err)
		return nil, domain.Internal(err)
	}

	s.logger.Info("Create: reservation id=%d created for %s", saved.ID, stay)
	return saved, nil
}

// Modify переносит даты проживания активного бронирования.
// Проверка отмены выполняется по переданной копии, повторного чтения нет.
func (s *Service) Modify(ctx context.Context, existing *domain.Reservation, changes *StayChanges) (*domain.Reservation, error) {
	if existing.IsCancelled() {
		s.logger.Warn("Modify: reservation id=%d is cancelled", existing.ID)
		return nil, domain.NewAlreadyCancelled(*existing.DeletedAt)
	}
	if err := validate.NotNil(domain.ParamBody, changes); err != nil {
		return nil, err
	}

	stay, err := s.checkStay(changes.Arrival, changes.Departure)
	if err != nil {
		return nil, err
	}

	prevUpdatedAt, prevArrival, prevDeparture := existing.UpdatedAt, existing.Arrival, existing.Departure

	now := s.timeProvider.Now()
	existing.UpdatedAt = &now
	existing.Arrival = stay.Start()
	existing.Departure = stay.End()

	saved, err := s.repo.Save(ctx, existing)
	if err != nil {
		existing.UpdatedAt, existing.Arrival, existing.Departure = prevUpdatedAt, prevArrival, prevDeparture
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, domain.NewNotFound(domain.EntityReservation, existing.ID)
		}
		s.logger.Error("Modify: failed to save reservation id=%d: %v", existing.ID, err)
		return nil, domain.Internal(err)
	}

	s.logger.Info("Modify: reservation id=%d moved to %s", saved.ID, stay)
	return saved, nil
}

// Cancel отменяет бронирование. Отмененное бронирование повторно не меняется.
func (s *Service) Cancel(ctx context.Context, existing *domain.Reservation) error {
	if existing.IsCancelled() {
		s.logger.Warn("Cancel: reservation id=%d is already cancelled", existing.ID)
		return domain.NewAlreadyCancelled(*existing.DeletedAt)
	}

	now := s.timeProvider.Now()
	existing.DeletedAt = &now

	if _, err := s.repo.Save(ctx, existing); err != nil {
		existing.DeletedAt = nil
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return domain.NewNotFound(domain.EntityReservation, existing.ID)
		}
		s.logger.Error("Cancel: failed to save reservation id=%d: %v", existing.ID, err)
		return domain.Internal(err)
	}

	s.logger.Info("Cancel: reservation id=%d cancelled", existing.ID)
	return nil
}

func (s *Service) checkStay(arrival, departure *time.Time) (domain.DateRange, error) {
	if err := validate.NotNil(domain.ParamArrival, arrival); err != nil {
		return domain.DateRange{}, err
	}
	if err := validate.NotNil(domain.ParamDeparture, departure); err != nil {
		return domain.DateRange{}, err
	}
	if err := validate.Ordered(domain.ParamArrival, *arrival, domain.ParamDeparture, *departure); err != nil {
		return domain.DateRange{}, err
	}

	stay := domain.NewDateRange(*arrival, *departure)
	if err := s.dates.CheckStayRange(stay, s.dates.ValidReservationWindow()); err != nil {
		return domain.DateRange{}, err
	}
	return stay, nil
}
