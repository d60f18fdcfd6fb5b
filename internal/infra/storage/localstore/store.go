// Package localstore is a single-process reservation store for deployments
// without a database server. All records are held in memory; a sqlite file
// keeps a durable snapshot that is loaded at session start and rewritten in
// full on every mutation. One mutex serializes writers, so a booking commit
// (conflict re-check plus append) runs as a single critical section.
package localstore

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/salonmobile/booking-engine/internal/domain"
	"github.com/salonmobile/booking-engine/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// lockKey помечает контекст, удерживающий мьютекс хранилища,
// чтобы вложенные вызовы методов не взяли его повторно
type lockKey struct{}

// Store in-memory хранилище бронирований со снапшотом в sqlite
type Store struct {
	mu      sync.Mutex
	db      *sql.DB
	records []*domain.Reservation
	log     Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS reservations (
	id               TEXT PRIMARY KEY,
	service_id       TEXT NOT NULL,
	service_name     TEXT NOT NULL,
	service_price    REAL NOT NULL,
	reservation_date TEXT NOT NULL,
	start_time       TEXT NOT NULL,
	duration_minutes INTEGER NOT NULL,
	status           TEXT NOT NULL,
	client_name      TEXT NOT NULL,
	email            TEXT NOT NULL,
	phone            TEXT NOT NULL,
	street           TEXT NOT NULL,
	postal_code      TEXT NOT NULL,
	city             TEXT NOT NULL,
	lat              REAL,
	lng              REAL,
	travel_km        REAL NOT NULL,
	created_at       TEXT NOT NULL
);`

// Open opens or creates the store file and loads every record into memory
func Open(path string, log Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: create schema: %v", ErrOpen, err)
	}

	s := &Store{db: db, log: log}
	if err := s.load(); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info("Local store opened at %s with %d reservations", path, len(s.records))
	return s, nil
}

// Close releases the snapshot file
func (s *Store) Close() error {
	return s.db.Close()
}

// DoSerializable runs fn while holding the store mutex. Reservation commits
// use it so that the conflict re-check and the append cannot interleave with
// a concurrent submission.
func (s *Store) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(lockKey{}) != nil {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(context.WithValue(ctx, lockKey{}, struct{}{}))
}

// lock takes the store mutex unless ctx already holds it
func (s *Store) lock(ctx context.Context) func() {
	if ctx.Value(lockKey{}) != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// Create appends a new reservation and rewrites the snapshot
func (s *Store) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	defer s.lock(ctx)()

	stored := cloneReservation(res)
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	s.records = append(s.records, stored)
	if err := s.persist(); err != nil {
		s.records = s.records[:len(s.records)-1]
		return nil, err
	}

	return cloneReservation(stored), nil
}

// GetByID returns the reservation with the given id
func (s *Store) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	defer s.lock(ctx)()

	for _, r := range s.records {
		if r.ID == id {
			return cloneReservation(r), nil
		}
	}
	return nil, ErrReservationNotFound
}

// ListByDate returns the reservations of a calendar day with the given
// statuses, sorted by start time
func (s *Store) ListByDate(ctx context.Context, date time.Time, statuses []domain.ReservationStatus) ([]*domain.Reservation, error) {
	defer s.lock(ctx)()

	wanted := make(map[domain.ReservationStatus]struct{}, len(statuses))
	for _, st := range statuses {
		wanted[st] = struct{}{}
	}

	result := make([]*domain.Reservation, 0)
	for _, r := range s.records {
		if !sameDay(r.Date, date) {
			continue
		}
		if _, ok := wanted[r.Status]; !ok {
			continue
		}
		result = append(result, cloneReservation(r))
	}

	sortByStartTime(result)
	return result, nil
}

// List returns reservations matching the filter, sorted chronologically
func (s *Store) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	defer s.lock(ctx)()

	result := make([]*domain.Reservation, 0)
	for _, r := range s.records {
		if filter.Date != nil && !sameDay(r.Date, *filter.Date) {
			continue
		}
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		result = append(result, cloneReservation(r))
	}

	sortChronologically(result)
	return result, nil
}

// UpdateStatus flips the status of a reservation in place
func (s *Store) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	defer s.lock(ctx)()

	for _, r := range s.records {
		if r.ID == id {
			previous := r.Status
			r.Status = status
			if err := s.persist(); err != nil {
				r.Status = previous
				return err
			}
			return nil
		}
	}
	return ErrReservationNotFound
}

// Delete physically removes a reservation
func (s *Store) Delete(ctx context.Context, id string) error {
	defer s.lock(ctx)()

	for i, r := range s.records {
		if r.ID == id {
			removed := s.records[i]
			s.records = append(s.records[:i], s.records[i+1:]...)
			if err := s.persist(); err != nil {
				s.records = append(s.records[:i], append([]*domain.Reservation{removed}, s.records[i:]...)...)
				return err
			}
			return nil
		}
	}
	return ErrReservationNotFound
}

// DeleteExpired removes confirmed reservations whose end is strictly
// before now. Returns the number of removed records.
func (s *Store) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	defer s.lock(ctx)()

	return s.deleteWhere(func(r *domain.Reservation) bool {
		if r.Status != domain.StatusConfirmed {
			return false
		}
		end, err := r.End()
		if err != nil {
			return false
		}
		return end.Before(now)
	})
}

// DeleteByStatus removes every reservation with the given status
func (s *Store) DeleteByStatus(ctx context.Context, status domain.ReservationStatus) (int64, error) {
	defer s.lock(ctx)()

	return s.deleteWhere(func(r *domain.Reservation) bool {
		return r.Status == status
	})
}

// deleteWhere keeps the records failing the predicate.
// Вызывается только под мьютексом.
func (s *Store) deleteWhere(match func(*domain.Reservation) bool) (int64, error) {
	kept := make([]*domain.Reservation, 0, len(s.records))
	for _, r := range s.records {
		if !match(r) {
			kept = append(kept, r)
		}
	}

	removed := int64(len(s.records) - len(kept))
	if removed == 0 {
		return 0, nil
	}

	previous := s.records
	s.records = kept
	if err := s.persist(); err != nil {
		s.records = previous
		return 0, err
	}

	return removed, nil
}

// persist rewrites the entire snapshot, mirroring the write-the-full-list
// behavior of a browser localStorage record. Вызывается только под мьютексом.
func (s *Store) persist() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrPersist, err)
	}

	if _, err := tx.Exec("DELETE FROM reservations"); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%w: clear: %v", ErrPersist, err)
	}

	const insert = `INSERT INTO reservations (
		id, service_id, service_name, service_price,
		reservation_date, start_time, duration_minutes, status,
		client_name, email, phone, street, postal_code, city,
		lat, lng, travel_km, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for _, r := range s.records {
		var lat, lng interface{}
		if r.Location != nil {
			lat = r.Location.Lat
			lng = r.Location.Lng
		}

		_, err := tx.Exec(insert,
			r.ID,
			r.ServiceID,
			r.ServiceName,
			r.ServicePrice,
			r.Date.Format(domain.DateFormat),
			string(r.StartTime),
			r.DurationMinutes,
			string(r.Status),
			r.ClientName,
			r.Email,
			r.Phone,
			r.Street,
			r.PostalCode,
			r.City,
			lat,
			lng,
			r.TravelKm,
			r.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("%w: insert %s: %v", ErrPersist, r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrPersist, err)
	}

	return nil
}

// load reads the snapshot into memory at session start
func (s *Store) load() error {
	rows, err := s.db.Query(`SELECT
		id, service_id, service_name, service_price,
		reservation_date, start_time, duration_minutes, status,
		client_name, email, phone, street, postal_code, city,
		lat, lng, travel_km, created_at
	FROM reservations`)
	if err != nil {
		return fmt.Errorf("%w: query: %v", ErrLoad, err)
	}
	defer rows.Close()

	records := make([]*domain.Reservation, 0)
	for rows.Next() {
		var r domain.Reservation
		var dateStr, startTime, status, createdAt string
		var lat, lng sql.NullFloat64

		err := rows.Scan(
			&r.ID,
			&r.ServiceID,
			&r.ServiceName,
			&r.ServicePrice,
			&dateStr,
			&startTime,
			&r.DurationMinutes,
			&status,
			&r.ClientName,
			&r.Email,
			&r.Phone,
			&r.Street,
			&r.PostalCode,
			&r.City,
			&lat,
			&lng,
			&r.TravelKm,
			&createdAt,
		)
		if err != nil {
			return fmt.Errorf("%w: scan: %v", ErrLoad, err)
		}

		r.Date, err = time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return fmt.Errorf("%w: malformed date %q: %v", ErrLoad, dateStr, err)
		}
		r.StartTime = types.TimeString(startTime)
		r.Status = domain.ReservationStatus(status)
		if lat.Valid && lng.Valid {
			r.Location = &domain.GeoPoint{Lat: lat.Float64, Lng: lng.Float64}
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return fmt.Errorf("%w: malformed created_at %q: %v", ErrLoad, createdAt, err)
		}

		records = append(records, &r)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: rows: %v", ErrLoad, err)
	}

	s.records = records
	return nil
}

// cloneReservation copies a record so callers never share memory with
// the store's own slice
func cloneReservation(r *domain.Reservation) *domain.Reservation {
	copied := *r
	if r.Location != nil {
		loc := *r.Location
		copied.Location = &loc
	}
	return &copied
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func sortByStartTime(reservations []*domain.Reservation) {
	sort.Slice(reservations, func(i, j int) bool {
		return reservations[i].StartTime.IsBefore(reservations[j].StartTime)
	})
}

func sortChronologically(reservations []*domain.Reservation) {
	sort.Slice(reservations, func(i, j int) bool {
		if !sameDay(reservations[i].Date, reservations[j].Date) {
			return reservations[i].Date.Before(reservations[j].Date)
		}
		return reservations[i].StartTime.IsBefore(reservations[j].StartTime)
	})
}
