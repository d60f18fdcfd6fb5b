package create_reservation

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_reservation: service not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrInvalidTimeSlot возвращается, когда время слота вне рабочих часов
	// или пересекает обеденный перерыв
	ErrInvalidTimeSlot = errors.New("create_reservation: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда слот уже занят: конкурирующее
	// бронирование было создано после того, как слот показали пользователю
	ErrSlotNotAvailable = errors.New("create_reservation: slot is no longer available")

	// ErrAddressNotFound возвращается, когда адрес не удалось геокодировать
	ErrAddressNotFound = errors.New("create_reservation: address not found")

	// ErrGeocoderUnavailable возвращается при недоступности сервиса геокодирования
	ErrGeocoderUnavailable = errors.New("create_reservation: geocoding service unavailable")

	// ErrOutOfServiceArea возвращается, когда адрес вне зоны обслуживания
	ErrOutOfServiceArea = errors.New("create_reservation: address is outside the service area")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
