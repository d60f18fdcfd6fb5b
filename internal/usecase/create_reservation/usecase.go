package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/salonmobile/booking-engine/internal/dispatch"
	"github.com/salonmobile/booking-engine/internal/domain"
	geocoderClient "github.com/salonmobile/booking-engine/internal/integrations/geocoder"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	geocoder        Geocoder
	dispatcher      Dispatcher
	txManager       TransactionManager
	hours           domain.BusinessHours
	catalog         domain.ServiceCatalog
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	geocoder Geocoder,
	dispatcher Dispatcher,
	txManager TransactionManager,
	hours domain.BusinessHours,
	catalog domain.ServiceCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		geocoder:        geocoder,
		dispatcher:      dispatcher,
		txManager:       txManager,
		hours:           hours,
		catalog:         catalog,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Геокодирование выполняется до критической секции: сетевые вызовы не должны
// блокировать хранилище. Проверка конфликтов, расчет дистанции и запись
// выполняются в сериализуемой транзакции — из двух конкурирующих заявок
// на один слот зафиксируется ровно одна.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: service=%s, date=%s, time=%s, client=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.ClientName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу из каталога
	service, ok := uc.catalog.ByID(req.ServiceID)
	if !ok {
		uc.logger.Warn("CreateReservation: service id=%s not found", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 3. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateReservation: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 4. Слот должен лежать в рабочих часах и не пересекать перерыв
	if err := validateSlotTime(uc.hours, req.StartTime, service.DurationMinutes); err != nil {
		uc.logger.Warn("CreateReservation: slot validation failed: %v", err)
		return nil, err
	}

	// 5. Геокодируем адрес клиента (единственная сетевая операция)
	fullAddress := fmt.Sprintf("%s, %s %s", req.Street, req.PostalCode, req.City)
	clientPoint, err := uc.geocoder.Resolve(ctx, fullAddress)
	if err != nil {
		switch {
		case errors.Is(err, geocoderClient.ErrAddressNotFound):
			uc.logger.Warn("CreateReservation: address not found: %q", fullAddress)
			return nil, ErrAddressNotFound
		case errors.Is(err, geocoderClient.ErrUnavailable):
			uc.logger.Error("CreateReservation: geocoder unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrGeocoderUnavailable, err)
		default:
			uc.logger.Error("CreateReservation: geocoding failed: %v", err)
			return nil, fmt.Errorf("%w: geocoding failed: %v", ErrInternal, err)
		}
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 6. Критическая секция: проверка конфликтов, диспетчеризация и запись
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем все активные бронирования на эту дату с блокировкой
		dayReservations, err := uc.reservationRepo.ListByDate(txCtx, req.Date, domain.ActiveStatuses)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 6.2. Повторная проверка конфликтов: слот могли занять после того,
		// как его показали пользователю
		overlapping := countOverlappingReservations(req.StartTime, service.DurationMinutes, dayReservations)
		if overlapping > 0 {
			uc.logger.Warn("CreateReservation: slot %s on %s taken by %d reservation(s)",
				req.StartTime, req.Date.Format(domain.DateFormat), overlapping)
			return ErrSlotNotAvailable
		}

		// 6.3. Проверка зоны обслуживания и расчет дистанции от последней
		// точки маршрута дня
		travelKm, err := uc.dispatcher.Evaluate(*clientPoint, dayReservations)
		if err != nil {
			if errors.Is(err, dispatch.ErrOutOfServiceArea) {
				uc.logger.Warn("CreateReservation: client at (%.4f, %.4f) is out of service area",
					clientPoint.Lat, clientPoint.Lng)
				return fmt.Errorf("%w: %v", ErrOutOfServiceArea, err)
			}
			uc.logger.Error("CreateReservation: dispatch failed: %v", err)
			return fmt.Errorf("%w: dispatch failed: %v", ErrInternal, err)
		}

		// 6.4. Создаем бронирование с денормализацией данных услуги.
		// ID выводится из времени создания (миллисекунды Unix-эпохи).
		reservation := &domain.Reservation{
			ID:              strconv.FormatInt(now.UnixMilli(), 10),
			ServiceID:       service.ID,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusPending,
			ClientName:      req.ClientName,
			Email:           req.Email,
			Phone:           req.Phone,
			Street:          req.Street,
			PostalCode:      req.PostalCode,
			City:            req.City,
			Location:        clientPoint,
			TravelKm:        travelKm,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: created reservation id=%s, travel=%.1f km",
		result.ID, result.TravelKm)

	return &Response{
		ID:              result.ID,
		ServiceID:       result.ServiceID,
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ClientName:      result.ClientName,
		Email:           result.Email,
		Phone:           result.Phone,
		Location:        result.Location,
		TravelKm:        result.TravelKm,
		CreatedAt:       result.CreatedAt,
	}, nil
}
