package get_available_slots

import (
	"time"

	"github.com/salonmobile/booking-engine/internal/domain"
	getAvailableSlots "github.com/salonmobile/booking-engine/internal/usecase/get_available_slots"
)

// SlotResponse свободный временной слот
type SlotResponse struct {
	Start string `json:"start"` // "10:00"
	End   string `json:"end"`   // "12:00"
}

// GetAvailableSlotsResponse HTTP response model
type GetAvailableSlotsResponse struct {
	Date      string         `json:"date"`
	ServiceID string         `json:"serviceId"`
	Slots     []SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(serviceID, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ServiceID: serviceID,
		Date:      date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *GetAvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			Start: slot.Start.String(),
			End:   slot.End.String(),
		})
	}

	return &GetAvailableSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		ServiceID: resp.ServiceID,
		Slots:     slots,
	}
}
