package dates

import (
	"time"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
	"github.com/m04kA/SMC-CampsiteService/internal/service/validate"
)

// Service вычисляет окна дат по бизнес-политике кемпинга.
// Хранит только параметры политики и источник времени, поэтому безопасен для конкурентного использования.
type Service struct {
	params       domain.ReservationParams
	timeProvider TimeProvider
	location     *time.Location
}

// NewService создает новый экземпляр сервиса дат.
// location задает часовой пояс, в котором определяется «сегодня»; nil означает UTC.
func NewService(params domain.ReservationParams, timeProvider TimeProvider, location *time.Location) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		params:       params,
		timeProvider: timeProvider,
		location:     location,
	}
}

// Params возвращает параметры политики
func (s *Service) Params() domain.ReservationParams {
	return s.params
}

// Today возвращает текущую дату
func (s *Service) Today() time.Time {
	return domain.DateOf(s.timeProvider.Now().In(s.location))
}

// DefaultSearchRange возвращает диапазон поиска по умолчанию: [сегодня + 1, сегодня + maxDefaultDaysToSearch]
func (s *Service) DefaultSearchRange() domain.DateRange {
	today := s.Today()
	return domain.NewDateRange(
		domain.AddDays(today, 1),
		domain.AddDays(today, s.params.MaxDefaultDaysToSearch),
	)
}

// ValidReservationWindow возвращает окно допустимых дат:
// [сегодня + minLeadDays, сегодня + maxLeadDays + (maxStayDays - 1)].
// Верхняя граница сдвинута на maxStayDays - 1, чтобы последний допустимый день заезда
// мог поддержать проживание максимальной длины.
func (s *Service) ValidReservationWindow() domain.DateRange {
	today := s.Today()
	return domain.NewDateRange(
		domain.AddDays(today, s.params.MinLeadDays),
		domain.AddDays(today, s.params.MaxLeadDays+s.params.MaxStayDays-1),
	)
}

// CheckStayRange проверяет проживание против окна и ограничений длительности.
// Порядок проверок важен: сначала длительность («как долго»), потом срок заезда («как скоро»).
func (s *Service) CheckStayRange(stay, window domain.DateRange) error {
	if err := validate.Ordered(domain.ParamArrival, stay.Start(), domain.ParamDeparture, stay.End()); err != nil {
		return err
	}

	stayLength := domain.DaysBetween(stay.Start(), stay.End())

	switch {
	case stayLength > s.params.MaxStayDays:
		return domain.NewStayTooLong(stay.Start(), stay.End(), s.params.MinStayDays, s.params.MaxStayDays, stayLength)
	case stayLength < s.params.MinStayDays:
		return domain.NewStayTooShort(stay.Start(), stay.End(), s.params.MinStayDays, s.params.MaxStayDays, stayLength)
	case stay.Start().Before(window.Start()):
		return domain.NewArrivalTooEarly(stay.Start(), window.Start())
	case stay.Start().After(window.End()):
		return domain.NewNoAvailability(stay.Start(), stay.End())
	}

	return nil
}
