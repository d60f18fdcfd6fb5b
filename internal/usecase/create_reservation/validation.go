package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/salonmobile/booking-engine/internal/domain"
	"github.com/salonmobile/booking-engine/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: email is malformed", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Street) == "" {
		return fmt.Errorf("%w: street is required", ErrInvalidInput)
	}
	if err := validatePostalCode(req.PostalCode); err != nil {
		return err
	}
	if strings.TrimSpace(req.City) == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidInput)
	}

	return nil
}

// validatePostalCode проверяет пятизначный почтовый индекс
func validatePostalCode(code string) error {
	if len(code) != domain.PostalCodeLength {
		return fmt.Errorf("%w: postalCode must be %d digits", ErrInvalidInput, domain.PostalCodeLength)
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: postalCode must be numeric", ErrInvalidInput)
		}
	}
	return nil
}

// validateSlotTime проверяет, что слот лежит в рабочих часах
// и не пересекает обеденный перерыв
func validateSlotTime(hours domain.BusinessHours, start types.TimeString, durationMinutes int) error {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if start.IsBefore(hours.Open) {
		return fmt.Errorf("%w: starts before opening at %s", ErrInvalidTimeSlot, hours.Open)
	}
	// Сравнение end с start ловит заворот через полночь
	if end.IsAfter(hours.Close) || end.IsBefore(start) {
		return fmt.Errorf("%w: ends after closing at %s", ErrInvalidTimeSlot, hours.Close)
	}
	if intervalsOverlap(start, end, hours.BreakStart, hours.BreakEnd) {
		return fmt.Errorf("%w: overlaps the break %s-%s", ErrInvalidTimeSlot, hours.BreakStart, hours.BreakEnd)
	}

	return nil
}

// countOverlappingReservations подсчитывает активные бронирования,
// пересекающиеся с указанным слотом
func countOverlappingReservations(
	start types.TimeString,
	durationMinutes int,
	reservations []*domain.Reservation,
) int {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return 0
	}

	count := 0
	for _, res := range reservations {
		// Пропускаем неактивные бронирования
		if !res.IsActive() {
			continue
		}

		resEnd, err := res.StartTime.AddMinutes(res.DurationMinutes)
		if err != nil {
			// Если не можем вычислить конец бронирования, пропускаем
			continue
		}

		if intervalsOverlap(start, end, res.StartTime, resEnd) {
			count++
		}
	}

	return count
}

// intervalsOverlap проверяет пересечение двух полуоткрытых интервалов
// [s1, e1) и [s2, e2): строгие неравенства, граничные случаи
// пересечением не считаются
func intervalsOverlap(s1, e1, s2, e2 types.TimeString) bool {
	return s1.IsBefore(e2) && s2.IsBefore(e1)
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
