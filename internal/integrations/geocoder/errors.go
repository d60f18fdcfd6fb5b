package geocoder

import "errors"

var (
	// ErrAddressNotFound возвращается, когда поиск не дал ни одного кандидата
	ErrAddressNotFound = errors.New("geocoder client: address not found")

	// ErrUnavailable возвращается при сетевой ошибке или неуспешном статусе ответа
	ErrUnavailable = errors.New("geocoder client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("geocoder client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("geocoder client: internal error")
)
