// Package dispatch enforces the geographic constraints of the traveling
// provider: the service-radius gate and the travel-distance chaining
// between consecutive stops of a day.
package dispatch

import (
	"fmt"

	"github.com/salonmobile/booking-engine/internal/domain"
	"github.com/salonmobile/booking-engine/pkg/haversine"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Config geographic configuration of the dispatcher
type Config struct {
	// ZoneCenter is the center of the serviceable disc
	ZoneCenter domain.GeoPoint
	// MaxRadiusKm is the radius of the serviceable disc
	MaxRadiusKm float64
	// Base is the provider's home base, the origin of the first trip of a day
	Base domain.GeoPoint
}

// Dispatcher computes travel distances and enforces the service radius
type Dispatcher struct {
	cfg Config
	log Logger
}

// New creates a dispatcher
func New(cfg Config, log Logger) *Dispatcher {
	return &Dispatcher{cfg: cfg, log: log}
}

// Evaluate gates the client location against the service radius and, when
// accepted, returns the travel distance chained from the provider's last
// stop of the day.
//
// dayReservations are the non-cancelled reservations already committed for
// the requested date. The predecessor is the reservation with the latest
// start time of the day, regardless of whether it starts before or after
// the candidate; bookings made out of time order keep the travel distance
// they were created with. Distances are never recomputed retroactively.
func (d *Dispatcher) Evaluate(client domain.GeoPoint, dayReservations []*domain.Reservation) (float64, error) {
	distanceToCenter := haversine.Distance(d.cfg.ZoneCenter.Lat, d.cfg.ZoneCenter.Lng, client.Lat, client.Lng)
	if distanceToCenter > d.cfg.MaxRadiusKm {
		d.log.Warn("Dispatch: client at (%.4f, %.4f) is %.1f km from zone center, limit %.1f km",
			client.Lat, client.Lng, distanceToCenter, d.cfg.MaxRadiusKm)
		return 0, fmt.Errorf("%w: %.1f km from center, maximum %.1f km",
			ErrOutOfServiceArea, distanceToCenter, d.cfg.MaxRadiusKm)
	}

	origin := d.cfg.Base
	if last := lastStopOfDay(dayReservations); last != nil && last.Location != nil {
		origin = *last.Location
	}

	travelKm := haversine.Distance(origin.Lat, origin.Lng, client.Lat, client.Lng)

	d.log.Info("Dispatch: travel distance %.1f km from (%.4f, %.4f) to (%.4f, %.4f)",
		travelKm, origin.Lat, origin.Lng, client.Lat, client.Lng)

	return travelKm, nil
}

// lastStopOfDay returns the non-cancelled reservation with the latest
// start time, or nil when the day is empty
func lastStopOfDay(reservations []*domain.Reservation) *domain.Reservation {
	var last *domain.Reservation
	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		if last == nil || r.StartTime.IsAfter(last.StartTime) {
			last = r
		}
	}
	return last
}
