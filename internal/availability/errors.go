package availability

import "errors"

var (
	// ErrResolverClosed резолвер уже закрыт (сессия завершена)
	ErrResolverClosed = errors.New("availability: resolver is closed")

	// ErrInvalidSpecialty пустой идентификатор специальности
	ErrInvalidSpecialty = errors.New("availability: specialty id is required")
)
