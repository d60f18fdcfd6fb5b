package get_available_slots

import (
	"time"

	"github.com/salonmobile/booking-engine/internal/domain"
	"github.com/salonmobile/booking-engine/pkg/types"
)

// generateTimeSlots генерирует кандидатов слотов на день.
// Кандидаты идут от времени открытия с фиксированным шагом SlotStepMinutes;
// конец слота определяется длительностью услуги. Кандидат отбрасывается, если
// его интервал пересекает обеденный перерыв или выходит за время закрытия.
func generateTimeSlots(
	hours domain.BusinessHours,
	serviceDuration int,
) ([]domain.TimeSlot, error) {
	slots := make([]domain.TimeSlot, 0)
	current := hours.Open

	for current.IsBefore(hours.Close) {
		slotEnd, err := current.AddMinutes(serviceDuration)
		if err != nil {
			return nil, err
		}

		// Слот не должен выходить за время закрытия
		// (AddMinutes заворачивается через полночь — ловим это сравнением с началом)
		if slotEnd.IsAfter(hours.Close) || slotEnd.IsBefore(current) {
			current, err = current.AddMinutes(domain.SlotStepMinutes)
			if err != nil {
				return nil, err
			}
			continue
		}

		// Слот не должен пересекать обеденный перерыв.
		// Интервалы полуоткрытые: конец слота ровно в начале перерыва
		// (и начало слота ровно в конце перерыва) пересечением не считается.
		if !intervalsOverlap(current, slotEnd, hours.BreakStart, hours.BreakEnd) {
			slots = append(slots, domain.TimeSlot{
				Start:     current,
				End:       slotEnd,
				Available: true,
			})
		}

		current, err = current.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			return nil, err
		}
	}

	return slots, nil
}

// markAvailability помечает слоты, пересекающиеся с ожидающими подтверждения
// бронированиями, как недоступные.
//
// Политика: в расчет доступности идут только бронирования со статусом pending;
// подтвержденные исключены намеренно - это наблюдаемое поведение продукта.
// Финальная проверка при создании бронирования учитывает оба статуса,
// поэтому инвариант отсутствия пересечений сохраняется.
func markAvailability(slots []domain.TimeSlot, pending []*domain.Reservation) []domain.TimeSlot {
	marked := make([]domain.TimeSlot, len(slots))

	for i, slot := range slots {
		available := true
		for _, res := range pending {
			resEnd, err := res.StartTime.AddMinutes(res.DurationMinutes)
			if err != nil {
				// Если не можем вычислить конец бронирования, пропускаем
				continue
			}
			if intervalsOverlap(slot.Start, slot.End, res.StartTime, resEnd) {
				available = false
				break
			}
		}

		marked[i] = slot
		marked[i].Available = available
	}

	return marked
}

// filterAvailable оставляет только доступные слоты; сам флаг наружу не отдается
func filterAvailable(slots []domain.TimeSlot) []domain.TimeSlot {
	available := make([]domain.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.Available {
			available = append(available, slot)
		}
	}
	return available
}

// intervalsOverlap проверяет пересечение двух полуоткрытых интервалов
// [s1, e1) и [s2, e2): пересечение есть, только если s1 < e2 И s2 < e1.
// Граничные случаи (конец одного ровно в начале другого) пересечением
// не считаются.
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
