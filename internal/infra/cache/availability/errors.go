package availability

import "errors"

var (
	// ErrRead возвращается при ошибке чтения из кэша
	ErrRead = errors.New("availability.cache: failed to read")

	// ErrWrite возвращается при ошибке записи в кэш
	ErrWrite = errors.New("availability.cache: failed to write")

	// ErrDecode возвращается, когда значение в кэше не удалось разобрать
	ErrDecode = errors.New("availability.cache: failed to decode value")
)
