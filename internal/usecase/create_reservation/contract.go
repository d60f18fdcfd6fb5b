package create_reservation

import (
	"context"
	"time"

	"github.com/salonmobile/booking-engine/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	ListByDate(ctx context.Context, date time.Time, statuses []domain.ReservationStatus) ([]*domain.Reservation, error)
}

// Geocoder интерфейс клиента геокодирования адресов
type Geocoder interface {
	Resolve(ctx context.Context, address string) (*domain.GeoPoint, error)
}

// Dispatcher интерфейс геодиспетчера: проверка зоны обслуживания
// и расчет дистанции от предыдущей точки маршрута дня
type Dispatcher interface {
	Evaluate(client domain.GeoPoint, dayReservations []*domain.Reservation) (float64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
