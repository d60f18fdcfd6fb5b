package get_available_slots

import (
	"time"

	"github.com/salonmobile/booking-engine/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID string    // ID услуги из каталога
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date      time.Time // Дата, на которую запрашивались слоты
	ServiceID string    // ID услуги
	Slots     []Slot    // Список доступных слотов
}

// Slot модель временного слота
type Slot struct {
	Start types.TimeString // Время начала слота (например, "10:00")
	End   types.TimeString // Время окончания (начало + длительность услуги)
}
