package create_reservation

import (
	"errors"
	"net/http"

	"github.com/salonmobile/booking-engine/internal/api/handlers"
	createReservation "github.com/salonmobile/booking-engine/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody    = "corps de la requête invalide"
	msgInvalidDate           = "format de date invalide, AAAA-MM-JJ attendu"
	msgInvalidTime           = "format d'heure invalide, HH:MM attendu"
	msgServiceNotFound       = "service introuvable"
	msgSlotNotAvailable      = "ce créneau n'est plus disponible"
	msgInvalidTimeSlot       = "créneau en dehors des horaires d'ouverture"
	msgInvalidBookingDate    = "la date demandée est déjà passée"
	msgAddressNotFound       = "adresse introuvable, merci de vérifier votre saisie"
	msgOutOfServiceArea      = "cette adresse est en dehors de notre zone d'intervention"
	msgGeocoderUnavailable   = "le service de géolocalisation est momentanément indisponible"
	msgInvalidReservationReq = "données de réservation invalides"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		if req.StartTime != "" && len(req.StartTime) != 5 {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: service_id=%s, date=%s, start=%s",
				req.ServiceID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrServiceNotFound):
			h.logger.Warn("POST /reservations - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Date in the past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createReservation.ErrInvalidTimeSlot):
			h.logger.Warn("POST /reservations - Invalid time slot: start=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createReservation.ErrAddressNotFound):
			h.logger.Warn("POST /reservations - Address not found: %s, %s %s",
				req.Address.Street, req.Address.PostalCode, req.Address.City)
			handlers.RespondUnprocessable(w, msgAddressNotFound)

		case errors.Is(err, createReservation.ErrOutOfServiceArea):
			h.logger.Warn("POST /reservations - Out of service area: %s, %s %s",
				req.Address.Street, req.Address.PostalCode, req.Address.City)
			handlers.RespondUnprocessable(w, msgOutOfServiceArea)

		case errors.Is(err, createReservation.ErrGeocoderUnavailable):
			h.logger.Error("POST /reservations - Geocoder unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgGeocoderUnavailable)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReservationReq)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: service_id=%s, error=%v",
				req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%s, service_id=%s, travel_km=%.2f",
		result.ID, req.ServiceID, result.TravelKm)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
