package create_reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonmobile/booking-engine/internal/domain"
	createReservation "github.com/salonmobile/booking-engine/internal/usecase/create_reservation"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp *createReservation.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *createReservation.Request) (*createReservation.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func validBody() []byte {
	body, _ := json.Marshal(CreateReservationRequest{
		ServiceID:  "soin-visage",
		Date:       "2026-09-15",
		StartTime:  "10:00",
		ClientName: "Marie Dupont",
		Email:      "marie@example.fr",
		Phone:      "+33612345678",
		Address: AddressRequest{
			Street:     "12 rue des Lilas",
			PostalCode: "59670",
			City:       "Cassel",
		},
	})
	return body
}

func doRequest(h *Handler, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createReservation.Response{
		ID:              "1757000000000",
		ServiceID:       "soin-visage",
		ServiceName:     "Soin du visage",
		ServicePrice:    45,
		Date:            time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 120,
		Status:          string(domain.StatusPending),
		ClientName:      "Marie Dupont",
		Location:        &domain.GeoPoint{Lat: 50.8, Lng: 2.6},
		TravelKm:        7.5,
		CreatedAt:       time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, validBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1757000000000", resp.ID)
	assert.Equal(t, "2026-09-15", resp.Date)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 7.5, resp.TravelKm)
	require.NotNil(t, resp.Location)
	assert.Equal(t, 50.8, resp.Location.Lat)
}

func TestHandle_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "slot conflict", err: createReservation.ErrSlotNotAvailable, want: http.StatusConflict},
		{name: "service not found", err: createReservation.ErrServiceNotFound, want: http.StatusNotFound},
		{name: "past date", err: createReservation.ErrInvalidDate, want: http.StatusBadRequest},
		{name: "invalid slot", err: createReservation.ErrInvalidTimeSlot, want: http.StatusBadRequest},
		{name: "address not found", err: createReservation.ErrAddressNotFound, want: http.StatusUnprocessableEntity},
		{name: "out of area", err: createReservation.ErrOutOfServiceArea, want: http.StatusUnprocessableEntity},
		{name: "geocoder down", err: createReservation.ErrGeocoderUnavailable, want: http.StatusBadGateway},
		{name: "invalid input", err: createReservation.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "internal", err: createReservation.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})
			rec := doRequest(h, validBody())
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandle_MalformedBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(h, []byte(`{not json`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Неизвестные поля отклоняются
	rec = doRequest(h, []byte(`{"serviceId": "soin-visage", "bogus": 1}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadDateAndTime(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	body, _ := json.Marshal(CreateReservationRequest{ServiceID: "soin-visage", Date: "15/09/2026", StartTime: "10:00"})
	rec := doRequest(h, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body, _ = json.Marshal(CreateReservationRequest{ServiceID: "soin-visage", Date: "2026-09-15", StartTime: "10h00m"})
	rec = doRequest(h, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
