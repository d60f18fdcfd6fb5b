package models

import (
	"errors"
	"time"

	"github.com/salonmobile/booking-engine/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")
)

// Request модели

// GetReservationsRequest запрос на получение списка бронирований
type GetReservationsRequest struct {
	Date   *string `json:"date,omitempty"`   // Фильтр по дню (опционально)
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.Date = &date
	}

	if r.Status != nil {
		status, err := domain.ParseReservationStatus(*r.Status)
		if err != nil {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AddressResponse адрес клиента
type AddressResponse struct {
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
}

// LocationResponse геокоординаты адреса клиента
type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ReservationResponse бронирование в ответе API
type ReservationResponse struct {
	ID              string            `json:"id"`
	ServiceID       string            `json:"serviceId"`
	ServiceName     string            `json:"serviceName"`
	ServicePrice    float64           `json:"servicePrice"`
	Date            string            `json:"date"`
	StartTime       string            `json:"startTime"`
	EndTime         string            `json:"endTime,omitempty"`
	DurationMinutes int               `json:"durationMinutes"`
	Status          string            `json:"status"`
	ClientName      string            `json:"clientName"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	Address         AddressResponse   `json:"address"`
	Location        *LocationResponse `json:"location,omitempty"`
	TravelKm        float64           `json:"travelKm"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain модель в response
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	resp := &ReservationResponse{
		ID:              res.ID,
		ServiceID:       res.ServiceID,
		ServiceName:     res.ServiceName,
		ServicePrice:    res.ServicePrice,
		Date:            res.Date.Format(domain.DateFormat),
		StartTime:       res.StartTime.String(),
		DurationMinutes: res.DurationMinutes,
		Status:          string(res.Status),
		ClientName:      res.ClientName,
		Email:           res.Email,
		Phone:           res.Phone,
		Address: AddressResponse{
			Street:     res.Street,
			PostalCode: res.PostalCode,
			City:       res.City,
		},
		TravelKm:  res.TravelKm,
		CreatedAt: res.CreatedAt,
	}

	// Время окончания вычисляемое, пропускаем при некорректном StartTime
	if end, err := res.EndTime(); err == nil {
		resp.EndTime = end.String()
	}

	if res.Location != nil {
		resp.Location = &LocationResponse{
			Lat: res.Location.Lat,
			Lng: res.Location.Lng,
		}
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в response
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	items := make([]*ReservationResponse, 0, len(reservations))
	for _, res := range reservations {
		items = append(items, FromDomainReservation(res))
	}
	return &ReservationListResponse{Reservations: items}
}
