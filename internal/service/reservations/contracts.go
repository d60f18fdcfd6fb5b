package reservations

import (
	"context"
	"time"

	"github.com/salonmobile/booking-engine/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	DeleteByStatus(ctx context.Context, status domain.ReservationStatus) (int64, error)
}

// SweepCounter счётчик записей, удалённых фоновой очисткой
type SweepCounter interface {
	Add(delta float64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
