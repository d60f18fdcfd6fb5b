package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salonmobile/booking-engine/internal/domain"
	"github.com/salonmobile/booking-engine/internal/infra/storage/localstore"
	reservationRepo "github.com/salonmobile/booking-engine/internal/infra/storage/reservation"
	"github.com/salonmobile/booking-engine/internal/service/reservations/models"
)

// Service сервис для работы с жизненным циклом бронирований
type Service struct {
	reservationRepo ReservationRepository
	sweepCounter    SweepCounter
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	sweepCounter SweepCounter,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		sweepCounter:    sweepCounter,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// List получает список бронирований с фильтрацией по дню и статусу
func (s *Service) List(ctx context.Context, req *models.GetReservationsRequest) (*models.ReservationListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// Confirm переводит бронирование из pending в confirmed
// Подтверждение из любого другого статуса недопустимо
func (s *Service) Confirm(ctx context.Context, id string) (*models.ReservationResponse, error) {
	s.logger.Info("Confirm: confirming reservation id=%s", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			s.logger.Warn("Confirm: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Confirm: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	if res.Status != domain.StatusPending {
		s.logger.Warn("Confirm: reservation id=%s has status=%s, cannot confirm", id, res.Status)
		return nil, fmt.Errorf("%w: only pending reservations can be confirmed", ErrInvalidStatus)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, domain.StatusConfirmed); err != nil {
		if isNotFound(err) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Confirm: failed to update status for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	res.Status = domain.StatusConfirmed
	s.logger.Info("Confirm: reservation id=%s confirmed", id)
	return models.FromDomainReservation(res), nil
}

// Cancel отменяет бронирование: запись физически удаляется,
// и её слот немедленно освобождается
func (s *Service) Cancel(ctx context.Context, id string) error {
	s.logger.Info("Cancel: cancelling reservation id=%s", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			s.logger.Warn("Cancel: reservation id=%s not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !res.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%s has status=%s, cannot cancel", id, res.Status)
		return fmt.Errorf("%w: status=%s", ErrCannotCancel, res.Status)
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			// Запись уже удалена параллельной отменой — считаем успехом
			return nil
		}
		s.logger.Error("Cancel: failed to delete reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: reservation id=%s cancelled and removed", id)
	return nil
}

// Sweep удаляет просроченные и отменённые бронирования.
// Операция идемпотентна: повторный запуск без новых кандидатов ничего не удаляет
func (s *Service) Sweep(ctx context.Context, now time.Time) (int64, error) {
	expired, err := s.reservationRepo.DeleteExpired(ctx, now)
	if err != nil {
		s.logger.Error("Sweep: failed to delete expired reservations: %v", err)
		return 0, fmt.Errorf("%w: Sweep - repository error: %v", ErrInternal, err)
	}

	cancelled, err := s.reservationRepo.DeleteByStatus(ctx, domain.StatusCancelled)
	if err != nil {
		s.logger.Error("Sweep: failed to delete cancelled reservations: %v", err)
		return expired, fmt.Errorf("%w: Sweep - repository error: %v", ErrInternal, err)
	}

	total := expired + cancelled
	if total > 0 {
		s.logger.Info("Sweep: removed %d reservations (expired=%d, cancelled=%d)", total, expired, cancelled)
	}
	if s.sweepCounter != nil {
		s.sweepCounter.Add(float64(total))
	}

	return total, nil
}

// isNotFound сглаживает различие sentinel-ошибок двух реализаций хранилища
func isNotFound(err error) bool {
	return errors.Is(err, reservationRepo.ErrReservationNotFound) ||
		errors.Is(err, localstore.ErrReservationNotFound)
}
