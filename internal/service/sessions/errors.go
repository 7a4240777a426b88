package sessions

import "errors"

var (
	// ErrSessionNotFound сессия не существует или истекла
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidSessionID идентификатор сессии не является UUID
	ErrInvalidSessionID = errors.New("invalid session id")
)
