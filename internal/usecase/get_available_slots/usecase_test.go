package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonmobile/booking-engine/internal/domain"
	"github.com/salonmobile/booking-engine/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type fakeRepo struct {
	reservations []*domain.Reservation
	gotStatuses  []domain.ReservationStatus
	err          error
}

func (f *fakeRepo) ListByDate(_ context.Context, _ time.Time, statuses []domain.ReservationStatus) ([]*domain.Reservation, error) {
	f.gotStatuses = statuses
	if f.err != nil {
		return nil, f.err
	}
	return f.reservations, nil
}

var testHours = domain.BusinessHours{
	Open:       "09:00",
	Close:      "19:00",
	BreakStart: "12:00",
	BreakEnd:   "13:00",
}

var testCatalog = domain.ServiceCatalog{
	{ID: "soin-visage", Name: "Soin du visage", Category: domain.CategoryFace, DurationMinutes: 120, Price: 45},
	{ID: "epilation", Name: "Épilation", Category: domain.CategoryHairRemoval, DurationMinutes: 60, Price: 25},
}

func newTestUseCase(repo *fakeRepo) *UseCase {
	uc := NewUseCase(repo, testHours, testCatalog, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

func starts(slots []Slot) []types.TimeString {
	out := make([]types.TimeString, len(slots))
	for i, s := range slots {
		out[i] = s.Start
	}
	return out
}

func TestExecute_EmptyDayTwoHourService(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: "soin-visage",
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	got := starts(resp.Slots)

	// Слот, заканчивающийся ровно в начале перерыва, предлагается
	assert.Contains(t, got, types.TimeString("10:00"))
	// Слоты, залезающие в перерыв, отброшены
	assert.NotContains(t, got, types.TimeString("10:30"))
	assert.NotContains(t, got, types.TimeString("11:00"))
	// Сразу после перерыва снова можно
	assert.Contains(t, got, types.TimeString("13:00"))
	// Последний слот заканчивается ровно в закрытие
	assert.Contains(t, got, types.TimeString("17:00"))
	assert.NotContains(t, got, types.TimeString("17:30"))

	// 09:00, 09:30, 10:00 до перерыва и 13:00..17:00 после
	assert.Len(t, resp.Slots, 12)

	// Конец слота выводится из длительности услуги
	assert.Equal(t, types.TimeString("11:00"), resp.Slots[0].End)
}

func TestExecute_PendingReservationBlocksOverlappingSlots(t *testing.T) {
	repo := &fakeRepo{
		reservations: []*domain.Reservation{
			{StartTime: "13:00", DurationMinutes: 120, Status: domain.StatusPending},
		},
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: "soin-visage",
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	got := starts(resp.Slots)
	assert.NotContains(t, got, types.TimeString("13:00"))
	assert.NotContains(t, got, types.TimeString("14:30"))
	// Слот, начинающийся ровно в конце брони, доступен
	assert.Contains(t, got, types.TimeString("15:00"))

	// Доступность считается только по pending броням
	assert.Equal(t, []domain.ReservationStatus{domain.StatusPending}, repo.gotStatuses)
}

func TestExecute_ShortServiceFitsTighterGrid(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: "epilation",
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	got := starts(resp.Slots)
	// Часовая услуга помещается до перерыва вплоть до 11:00
	assert.Contains(t, got, types.TimeString("11:00"))
	assert.NotContains(t, got, types.TimeString("11:30"))
	assert.Contains(t, got, types.TimeString("18:00"))
	// 09:00..11:00 (5) + 13:00..18:00 (11)
	assert.Len(t, resp.Slots, 16)
}

func TestExecute_PastDateReturnsNoSlots(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: "soin-visage",
		Date:      time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_TodayIsNotPast(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: "soin-visage",
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Slots)
}

func TestExecute_UnknownService(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: "massage",
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{})

	_, err := uc.Execute(context.Background(), &Request{ServiceID: "", Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: "soin-visage"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{err: assert.AnError})

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: "soin-visage",
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInternal)
}
