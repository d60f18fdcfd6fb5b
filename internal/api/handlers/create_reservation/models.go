package create_reservation

import (
	"time"

	"github.com/salonmobile/booking-engine/internal/domain"
	createReservation "github.com/salonmobile/booking-engine/internal/usecase/create_reservation"
	"github.com/salonmobile/booking-engine/pkg/types"
)

// AddressRequest адрес клиента, куда выезжает мастер
type AddressRequest struct {
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
}

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ServiceID  string         `json:"serviceId"`
	Date       string         `json:"date"`      // "2026-09-15"
	StartTime  string         `json:"startTime"` // "10:00"
	ClientName string         `json:"clientName"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	Address    AddressRequest `json:"address"`
}

// LocationResponse геокоординаты адреса клиента
type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              string            `json:"id"`
	ServiceID       string            `json:"serviceId"`
	ServiceName     string            `json:"serviceName"`
	ServicePrice    float64           `json:"servicePrice"`
	Date            string            `json:"date"`
	StartTime       string            `json:"startTime"`
	DurationMinutes int               `json:"durationMinutes"`
	Status          string            `json:"status"`
	ClientName      string            `json:"clientName"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	Location        *LocationResponse `json:"location,omitempty"`
	TravelKm        float64           `json:"travelKm"`
	CreatedAt       string            `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		ServiceID:  r.ServiceID,
		Date:       date,
		StartTime:  startTime,
		ClientName: r.ClientName,
		Email:      r.Email,
		Phone:      r.Phone,
		Street:     r.Address.Street,
		PostalCode: r.Address.PostalCode,
		City:       r.Address.City,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	result := &ReservationResponse{
		ID:              resp.ID,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ClientName:      resp.ClientName,
		Email:           resp.Email,
		Phone:           resp.Phone,
		TravelKm:        resp.TravelKm,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}

	if resp.Location != nil {
		result.Location = &LocationResponse{
			Lat: resp.Location.Lat,
			Lng: resp.Location.Lng,
		}
	}

	return result
}
