package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonmobile/booking-engine/internal/domain"
	"github.com/salonmobile/booking-engine/pkg/haversine"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{}) {}
func (nopLogger) Warn(format string, v ...interface{}) {}

var testConfig = Config{
	ZoneCenter:  domain.GeoPoint{Lat: 50.7897, Lng: 2.5947},
	MaxRadiusKm: 20,
	Base:        domain.GeoPoint{Lat: 50.7859, Lng: 2.6743},
}

func TestEvaluate_OutOfServiceArea(t *testing.T) {
	d := New(testConfig, nopLogger{})

	// Paris, намного дальше 20 км от центра зоны
	_, err := d.Evaluate(domain.GeoPoint{Lat: 48.8566, Lng: 2.3522}, nil)
	assert.ErrorIs(t, err, ErrOutOfServiceArea)
}

func TestEvaluate_FirstTripOfDayStartsFromBase(t *testing.T) {
	d := New(testConfig, nopLogger{})

	client := domain.GeoPoint{Lat: 50.7897, Lng: 2.5947}
	got, err := d.Evaluate(client, nil)
	require.NoError(t, err)

	want := haversine.Distance(testConfig.Base.Lat, testConfig.Base.Lng, client.Lat, client.Lng)
	assert.InDelta(t, want, got, 1e-9)
}

func TestEvaluate_ChainsFromLatestStopOfDay(t *testing.T) {
	d := New(testConfig, nopLogger{})

	first := domain.GeoPoint{Lat: 50.8000, Lng: 2.6000}
	second := domain.GeoPoint{Lat: 50.7500, Lng: 2.6500}
	day := []*domain.Reservation{
		{StartTime: "10:00", Status: domain.StatusConfirmed, Location: &first},
		{StartTime: "14:00", Status: domain.StatusPending, Location: &second},
	}

	client := domain.GeoPoint{Lat: 50.7897, Lng: 2.5947}
	got, err := d.Evaluate(client, day)
	require.NoError(t, err)

	// Предыдущая точка - бронирование с самым поздним началом
	want := haversine.Distance(second.Lat, second.Lng, client.Lat, client.Lng)
	assert.InDelta(t, want, got, 1e-9)
}

func TestEvaluate_IgnoresCancelledStops(t *testing.T) {
	d := New(testConfig, nopLogger{})

	cancelled := domain.GeoPoint{Lat: 50.7000, Lng: 2.7000}
	day := []*domain.Reservation{
		{StartTime: "16:00", Status: domain.StatusCancelled, Location: &cancelled},
	}

	client := domain.GeoPoint{Lat: 50.7897, Lng: 2.5947}
	got, err := d.Evaluate(client, day)
	require.NoError(t, err)

	want := haversine.Distance(testConfig.Base.Lat, testConfig.Base.Lng, client.Lat, client.Lng)
	assert.InDelta(t, want, got, 1e-9)
}

func TestEvaluate_PredecessorWithoutLocationFallsBackToBase(t *testing.T) {
	d := New(testConfig, nopLogger{})

	day := []*domain.Reservation{
		{StartTime: "10:00", Status: domain.StatusPending, Location: nil},
	}

	client := domain.GeoPoint{Lat: 50.7897, Lng: 2.5947}
	got, err := d.Evaluate(client, day)
	require.NoError(t, err)

	want := haversine.Distance(testConfig.Base.Lat, testConfig.Base.Lng, client.Lat, client.Lng)
	assert.InDelta(t, want, got, 1e-9)
}

func TestEvaluate_BoundaryOfRadiusIsAccepted(t *testing.T) {
	// Клиент в зоне, но близко к границе: придирка к строгому сравнению
	d := New(Config{
		ZoneCenter:  testConfig.ZoneCenter,
		MaxRadiusKm: haversine.Distance(testConfig.ZoneCenter.Lat, testConfig.ZoneCenter.Lng, 50.9000, 2.7500) + 0.01,
		Base:        testConfig.Base,
	}, nopLogger{})

	_, err := d.Evaluate(domain.GeoPoint{Lat: 50.9000, Lng: 2.7500}, nil)
	assert.NoError(t, err)
}
