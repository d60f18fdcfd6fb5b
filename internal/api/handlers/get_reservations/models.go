package get_reservations

import (
	"github.com/salonmobile/booking-engine/internal/service/reservations/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(dateStr, statusStr string) *models.GetReservationsRequest {
	req := &models.GetReservationsRequest{}

	if dateStr != "" {
		req.Date = &dateStr
	}
	if statusStr != "" {
		req.Status = &statusStr
	}

	return req
}
