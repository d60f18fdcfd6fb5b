package domain

import (
	"fmt"
	"time"

	"github.com/salonmobile/booking-engine/pkg/types"
)

// ReservationStatus represents the lifecycle status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// ParseReservationStatus validates a status string
func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch ReservationStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return ReservationStatus(s), nil
	default:
		return "", fmt.Errorf("unknown reservation status %q", s)
	}
}

// Reservation represents a single appointment of the traveling provider.
// Reservations are write-once: after creation only the status changes,
// and cancelled records are physically removed from the store.
type Reservation struct {
	ID              string
	ServiceID       string
	Date            time.Time // calendar day, time part zeroed
	StartTime       types.TimeString
	DurationMinutes int
	Status          ReservationStatus

	ClientName string
	Email      string
	Phone      string

	Street     string
	PostalCode string
	City       string

	// Location is nil until the address has been geocoded
	Location *GeoPoint

	// TravelKm is the distance from the provider's preceding stop of the
	// day, fixed at creation time and never recomputed afterwards
	TravelKm float64

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64

	CreatedAt time.Time
}

// IsActive returns true if the reservation still occupies its time slot
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// EndTime returns the time of day at which the appointment ends
func (r *Reservation) EndTime() (types.TimeString, error) {
	return r.StartTime.AddMinutes(r.DurationMinutes)
}

// End returns the absolute point in time at which the appointment ends
func (r *Reservation) End() (time.Time, error) {
	startMinutes, err := r.StartTime.Minutes()
	if err != nil {
		return time.Time{}, err
	}

	day := time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), 0, 0, 0, 0, r.Date.Location())
	return day.Add(time.Duration(startMinutes+r.DurationMinutes) * time.Minute), nil
}

// FullAddress returns the address text sent to the geocoding service
func (r *Reservation) FullAddress() string {
	return fmt.Sprintf("%s, %s %s", r.Street, r.PostalCode, r.City)
}

// ReservationsFilter filters reservation listings
type ReservationsFilter struct {
	Date   *time.Time         // exact calendar day (optional)
	Status *ReservationStatus // exact status (optional)
}

// ActiveStatuses are the statuses that occupy time slots and participate
// in conflict detection
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}
