package localstore

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("localstore: reservation not found")

	// ErrOpen возвращается при ошибке открытия файла хранилища
	ErrOpen = errors.New("localstore: failed to open store file")

	// ErrPersist возвращается при ошибке записи снапшота на диск
	ErrPersist = errors.New("localstore: failed to persist snapshot")

	// ErrLoad возвращается при ошибке чтения записей при старте
	ErrLoad = errors.New("localstore: failed to load records")
)
