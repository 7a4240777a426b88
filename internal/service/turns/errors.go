package turns

import "errors"

var (
	// ErrStoreConflict хранилище отказалось менять состояние (оно уже изменилось)
	ErrStoreConflict = errors.New("turns: state changed concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("turns: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("turns service: internal error")
)
