package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonmobile/booking-engine/internal/domain"
	reservationRepo "github.com/salonmobile/booking-engine/internal/infra/storage/reservation"
	"github.com/salonmobile/booking-engine/internal/service/reservations/models"
	"github.com/salonmobile/booking-engine/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeCounter struct {
	total float64
}

func (f *fakeCounter) Add(delta float64) {
	f.total += delta
}

type fakeRepo struct {
	byID         map[string]*domain.Reservation
	listed       []*domain.Reservation
	gotFilter    domain.ReservationsFilter
	updatedID    string
	updatedTo    domain.ReservationStatus
	deletedID    string
	expiredCount int64
	statusCount  int64
	err          error
}

func newFakeRepo(items ...*domain.Reservation) *fakeRepo {
	byID := make(map[string]*domain.Reservation)
	for _, r := range items {
		byID[r.ID] = r
	}
	return &fakeRepo{byID: byID, listed: items}
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	res, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return res, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.gotFilter = filter
	return f.listed, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id string, status domain.ReservationStatus) error {
	if f.err != nil {
		return f.err
	}
	f.updatedID = id
	f.updatedTo = status
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(f.byID, id)
	f.deletedID = id
	return nil
}

func (f *fakeRepo) DeleteExpired(_ context.Context, _ time.Time) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.expiredCount, nil
}

func (f *fakeRepo) DeleteByStatus(_ context.Context, _ domain.ReservationStatus) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.statusCount, nil
}

func pendingReservation(id string) *domain.Reservation {
	return &domain.Reservation{
		ID:              id,
		ServiceID:       "soin-visage",
		ServiceName:     "Soin du visage",
		ServicePrice:    45,
		Date:            time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 120,
		Status:          domain.StatusPending,
		ClientName:      "Marie Dupont",
		Street:          "12 rue des Lilas",
		PostalCode:      "59670",
		City:            "Cassel",
		TravelKm:        7.5,
		CreatedAt:       time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestGetByID(t *testing.T) {
	repo := newFakeRepo(pendingReservation("1001"))
	svc := NewService(repo, nil, nopLogger{})

	got, err := svc.GetByID(context.Background(), "1001")
	require.NoError(t, err)
	assert.Equal(t, "1001", got.ID)
	assert.Equal(t, "12:00", got.EndTime)
	assert.Equal(t, "Cassel", got.Address.City)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestList_FilterConversion(t *testing.T) {
	repo := newFakeRepo(pendingReservation("1001"))
	svc := NewService(repo, nil, nopLogger{})

	resp, err := svc.List(context.Background(), &models.GetReservationsRequest{
		Date:   ptr.Ptr("2026-09-15"),
		Status: ptr.Ptr("pending"),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 1)

	require.NotNil(t, repo.gotFilter.Date)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), *repo.gotFilter.Date)
	require.NotNil(t, repo.gotFilter.Status)
	assert.Equal(t, domain.StatusPending, *repo.gotFilter.Status)
}

func TestList_InvalidFilter(t *testing.T) {
	svc := NewService(newFakeRepo(), nil, nopLogger{})

	_, err := svc.List(context.Background(), &models.GetReservationsRequest{Date: ptr.Ptr("15/09/2026")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), &models.GetReservationsRequest{Status: ptr.Ptr("archived")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConfirm(t *testing.T) {
	repo := newFakeRepo(pendingReservation("1001"))
	svc := NewService(repo, nil, nopLogger{})

	got, err := svc.Confirm(context.Background(), "1001")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), got.Status)
	assert.Equal(t, "1001", repo.updatedID)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedTo)
}

func TestConfirm_OnlyPending(t *testing.T) {
	confirmed := pendingReservation("1001")
	confirmed.Status = domain.StatusConfirmed
	svc := NewService(newFakeRepo(confirmed), nil, nopLogger{})

	_, err := svc.Confirm(context.Background(), "1001")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestConfirm_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nil, nopLogger{})

	_, err := svc.Confirm(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_RemovesRecord(t *testing.T) {
	repo := newFakeRepo(pendingReservation("1001"))
	svc := NewService(repo, nil, nopLogger{})

	require.NoError(t, svc.Cancel(context.Background(), "1001"))
	assert.Equal(t, "1001", repo.deletedID)

	// Запись удалена физически
	err := svc.Cancel(context.Background(), "1001")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestSweep(t *testing.T) {
	repo := newFakeRepo()
	repo.expiredCount = 3
	repo.statusCount = 2
	counter := &fakeCounter{}
	svc := NewService(repo, counter, nopLogger{})

	total, err := svc.Sweep(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Equal(t, 5.0, counter.total)
}

func TestSweep_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	counter := &fakeCounter{}
	svc := NewService(repo, counter, nopLogger{})

	total, err := svc.Sweep(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Zero(t, counter.total)
}

func TestSweep_RepositoryError(t *testing.T) {
	repo := newFakeRepo()
	repo.err = assert.AnError
	svc := NewService(repo, nil, nopLogger{})

	_, err := svc.Sweep(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrInternal)
}
