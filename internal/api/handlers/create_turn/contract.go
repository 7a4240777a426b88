package create_turn

import (
	"context"

	createTurn "github.com/hospital/turns-service/internal/usecase/create_turn"
)

type CreateTurnUseCase interface {
	Execute(ctx context.Context, resolver createTurn.Resolver, req *createTurn.Request) (*createTurn.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
