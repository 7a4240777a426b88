package create_turn

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_turn: invalid input data")

	// ErrRejected хранилище отклонило талон
	ErrRejected = errors.New("create_turn: turn rejected by store")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_turn: internal error")
)
