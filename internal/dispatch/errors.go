package dispatch

import "errors"

var (
	// ErrOutOfServiceArea возвращается, когда адрес клиента лежит вне
	// обслуживаемого радиуса вокруг центра рабочей зоны
	ErrOutOfServiceArea = errors.New("dispatch: address is outside the service area")
)
