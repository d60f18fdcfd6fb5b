package get_reservations

import (
	"context"

	"github.com/salonmobile/booking-engine/internal/service/reservations/models"
)

type ReservationService interface {
	List(ctx context.Context, req *models.GetReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
