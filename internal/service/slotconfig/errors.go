package slotconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация не найдена
	ErrConfigNotFound = errors.New("slot config not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid slot config")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slotconfig service: internal error")
)
