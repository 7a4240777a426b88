package turns

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/domain"
	storeClient "github.com/hospital/turns-service/internal/integrations/appointmentstore"
)

// Service операции над существующими талонами.
// Каждое изменение состояния сначала проверяется по графу переходов и только потом уходит в хранилище.
type Service struct {
	store   AppointmentStore
	metrics Metrics
	logger  Logger
}

// NewService создает новый экземпляр сервиса талонов
func NewService(store AppointmentStore, metrics Metrics, logger Logger) *Service {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Service{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// GetByID получает талон из хранилища
func (s *Service) GetByID(ctx context.Context, turnID uuid.UUID) (*domain.Turn, error) {
	if turnID == uuid.Nil {
		return nil, fmt.Errorf("%w: turn id is required", ErrInvalidInput)
	}

	turn, err := s.store.GetTurnByID(ctx, turnID)
	if err != nil {
		if errors.Is(err, domain.ErrTurnNotFound) {
			s.logger.Warn("GetByID: turn id=%s not found", turnID)
			return nil, domain.ErrTurnNotFound
		}
		s.logger.Error("GetByID: failed to get turn id=%s: %v", turnID, err)
		return nil, fmt.Errorf("%w: GetByID - store error: %v", ErrInternal, err)
	}

	return turn, nil
}

// TransitionState переводит талон в новое состояние.
// Недопустимая пара (from, to) отклоняется локально, запрос в хранилище не отправляется.
func (s *Service) TransitionState(ctx context.Context, turnID uuid.UUID, to domain.TurnState) (*domain.Turn, error) {
	s.logger.Info("TransitionState: turn id=%s -> %s", turnID, to)

	turn, err := s.GetByID(ctx, turnID)
	if err != nil {
		return nil, err
	}

	change, err := domain.TransitionState(turn, to)
	if err != nil {
		var illegal *domain.IllegalTransitionError
		if errors.As(err, &illegal) {
			s.metrics.IncIllegalTransition(string(illegal.From), string(illegal.To))
		}
		s.logger.Warn("TransitionState: turn id=%s: %v", turnID, err)
		return nil, err
	}

	return s.apply(ctx, turn, change)
}

// Cancel отменяет талон (допустимо из waiting и accepted)
func (s *Service) Cancel(ctx context.Context, turnID uuid.UUID) (*domain.Turn, error) {
	s.logger.Info("Cancel: turn id=%s", turnID)

	turn, err := s.GetByID(ctx, turnID)
	if err != nil {
		return nil, err
	}

	change, err := domain.Cancel(turn)
	if err != nil {
		s.metrics.IncIllegalTransition(string(turn.State), string(domain.StateCancelled))
		s.logger.Warn("Cancel: turn id=%s: %v", turnID, err)
		return nil, err
	}

	return s.apply(ctx, turn, change)
}

func (s *Service) apply(ctx context.Context, turn *domain.Turn, change *domain.StateChange) (*domain.Turn, error) {
	if err := s.store.UpdateTurnState(ctx, change.TurnID, change.To); err != nil {
		switch {
		case errors.Is(err, domain.ErrTurnNotFound):
			s.logger.Warn("UpdateTurnState: turn id=%s disappeared from store", change.TurnID)
			return nil, domain.ErrTurnNotFound
		case errors.Is(err, storeClient.ErrConflict):
			s.logger.Warn("UpdateTurnState: store refused %s -> %s for turn id=%s: %v",
				change.From, change.To, change.TurnID, err)
			return nil, fmt.Errorf("%w: %v", ErrStoreConflict, err)
		}
		s.logger.Error("UpdateTurnState: failed for turn id=%s: %v", change.TurnID, err)
		return nil, fmt.Errorf("%w: UpdateTurnState - store error: %v", ErrInternal, err)
	}

	updated := *turn
	updated.State = change.To

	s.logger.Info("UpdateTurnState: turn id=%s moved %s -> %s", change.TurnID, change.From, change.To)
	return &updated, nil
}

// Delete удаляет талон в хранилище
func (s *Service) Delete(ctx context.Context, turnID uuid.UUID) error {
	s.logger.Info("Delete: turn id=%s", turnID)

	if turnID == uuid.Nil {
		return fmt.Errorf("%w: turn id is required", ErrInvalidInput)
	}

	if err := s.store.DeleteTurn(ctx, turnID); err != nil {
		if errors.Is(err, domain.ErrTurnNotFound) {
			s.logger.Warn("Delete: turn id=%s not found", turnID)
			return domain.ErrTurnNotFound
		}
		s.logger.Error("Delete: failed to delete turn id=%s: %v", turnID, err)
		return fmt.Errorf("%w: Delete - store error: %v", ErrInternal, err)
	}

	return nil
}
