package appointmentstore

import "errors"

var (
	// ErrConflict хранилище отклонило изменение из-за конфликта (слот занят, состояние уже изменилось)
	ErrConflict = errors.New("appointmentstore: conflict")

	// ErrRejected хранилище отклонило данные запроса
	ErrRejected = errors.New("appointmentstore: request rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("appointmentstore client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("appointmentstore client: invalid response")
)
