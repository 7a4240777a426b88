package reschedule_turn

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_turn: invalid input data")

	// ErrRejected хранилище отклонило перенос
	ErrRejected = errors.New("reschedule_turn: reschedule rejected by store")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_turn: internal error")
)
