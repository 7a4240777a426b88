package open_session

import (
	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/availability"
)

type SessionRegistry interface {
	Create() (uuid.UUID, *availability.Resolver)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
