package create_reservation

import (
	"time"

	"github.com/salonmobile/booking-engine/internal/domain"
	"github.com/salonmobile/booking-engine/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ServiceID string           // ID услуги из каталога
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")

	ClientName string // Имя клиента
	Email      string // Email клиента
	Phone      string // Телефон клиента

	Street     string // Улица и номер дома
	PostalCode string // Почтовый индекс
	City       string // Город
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              string           // ID созданного бронирования
	ServiceID       string           // ID услуги
	ServiceName     string           // Название услуги
	ServicePrice    float64          // Цена услуги
	Date            time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования

	ClientName string // Имя клиента
	Email      string // Email клиента
	Phone      string // Телефон клиента

	Location *domain.GeoPoint // Геокодированные координаты клиента
	TravelKm float64          // Дистанция от предыдущей точки маршрута

	CreatedAt time.Time // Время создания
}
