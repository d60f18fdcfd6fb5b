package get_available_slots

import (
	"context"
	"fmt"

	"github.com/salonmobile/booking-engine/internal/domain"
)

// UseCase use case для получения доступных слотов для бронирования.
// Слоты пересчитываются заново на каждый запрос и нигде не кэшируются.
type UseCase struct {
	reservationRepo ReservationRepository
	hours           domain.BusinessHours
	catalog         domain.ServiceCatalog
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	hours domain.BusinessHours,
	catalog domain.ServiceCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		hours:           hours,
		catalog:         catalog,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%s, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу из каталога
	service, ok := uc.catalog.ByID(req.ServiceID)
	if !ok {
		uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 3. На прошедшие даты слотов нет
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:      req.Date,
			ServiceID: req.ServiceID,
			Slots:     []Slot{},
		}, nil
	}

	// 4. Генерируем кандидатов с учетом рабочих часов и перерыва
	candidates, err := generateTimeSlots(uc.hours, service.DurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 5. Получаем ожидающие подтверждения бронирования на эту дату
	pending, err := uc.reservationRepo.ListByDate(ctx, req.Date, []domain.ReservationStatus{domain.StatusPending})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 6. Помечаем занятые слоты и отдаем только доступные
	slots := filterAvailable(markAvailability(candidates, pending))

	response := &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Slots:     make([]Slot, len(slots)),
	}
	for i, slot := range slots {
		response.Slots[i] = Slot{Start: slot.Start, End: slot.End}
	}

	uc.logger.Info("GetAvailableSlots: %d available slots for service=%s, date=%s",
		len(response.Slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return response, nil
}
