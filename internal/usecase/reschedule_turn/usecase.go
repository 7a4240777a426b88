package reschedule_turn

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hospital/turns-service/internal/domain"
	storeClient "github.com/hospital/turns-service/internal/integrations/appointmentstore"
	"github.com/hospital/turns-service/pkg/types"
)

// UseCase координатор переноса талона.
// Использует тот же резолвер и ту же проверку слота, что и создание талона.
type UseCase struct {
	store   AppointmentStore
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store AppointmentStore, metrics Metrics, logger Logger) *UseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &UseCase{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// Prepare загружает талон и заново разрешает доступность его специальности.
// Прежнее время талона не имеет приоритета: если расписание изменилось, его может не быть в слотах.
func (uc *UseCase) Prepare(ctx context.Context, resolver Resolver, req *PrepareRequest) (*Session, error) {
	uc.logger.Info("PrepareReschedule: turn=%s", req.TurnID)

	// 1. Валидация входных данных
	if err := validatePrepareRequest(req); err != nil {
		uc.logger.Warn("PrepareReschedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем талон
	turn, err := uc.store.GetTurnByID(ctx, req.TurnID)
	if err != nil {
		if errors.Is(err, domain.ErrTurnNotFound) {
			uc.logger.Warn("PrepareReschedule: turn id=%s not found", req.TurnID)
			return nil, domain.ErrTurnNotFound
		}
		uc.logger.Error("PrepareReschedule: failed to get turn id=%s: %v", req.TurnID, err)
		return nil, fmt.Errorf("%w: failed to get turn: %v", ErrInternal, err)
	}

	if !turn.CanBeRescheduled() {
		uc.logger.Warn("PrepareReschedule: turn id=%s is %s", turn.ID, turn.State)
		return nil, fmt.Errorf("%w: state %s", domain.ErrTurnNotReschedulable, turn.State)
	}

	// 3. Специальность обязательна: без нее доступность была бы пустой и вводила бы в заблуждение
	specialtyID, err := resolveSpecialty(req.SpecialtyID, turn)
	if err != nil {
		uc.logger.Error("PrepareReschedule: %v", err)
		return nil, err
	}

	// 4. Свежие окна, а не кеш сессии
	snapshot, err := resolver.Refresh(ctx, specialtyID)
	if err != nil {
		uc.logger.Warn("PrepareReschedule: availability for specialty=%s: %v", specialtyID, err)
		return nil, err
	}

	session := &Session{
		Turn:            turn,
		SpecialtyID:     specialtyID,
		IntervalMinutes: snapshot.IntervalMinutes(),
	}

	// 5. Прежняя дата - стартовая, если ее все еще можно выбрать
	if resolver.SelectableDatePredicate(specialtyID)(turn.Date) {
		slots, err := resolver.SelectDate(ctx, specialtyID, turn.Date)
		if err != nil {
			uc.logger.Warn("PrepareReschedule: slots for %s: %v", turn.Date.Format(domain.DateFormat), err)
			return nil, err
		}
		date := turn.Date
		session.Date = &date
		session.Slots = slots
		session.CurrentSlotOffered = containsTime(slots, turn)
	}

	uc.logger.Info("PrepareReschedule: turn=%s, specialty=%s, seeded=%t, slots=%d",
		turn.ID, specialtyID, session.Date != nil, len(session.Slots))
	return session, nil
}

// Submit проверяет новую дату и время и формирует запрос на перенос.
// Время на проводе дополняется секундами ("09:30" -> "09:30:00") клиентом хранилища.
func (uc *UseCase) Submit(ctx context.Context, resolver Resolver, session *Session, date time.Time, t types.TimeString, reason *string) (*domain.RescheduleRequest, error) {
	req, err := domain.RequestReschedule(session.Turn, date, t, reason)
	if err != nil {
		uc.logger.Warn("SubmitReschedule: turn=%s: %v", session.Turn.ID, err)
		return nil, err
	}

	if err := resolver.Revalidate(ctx, session.SpecialtyID, req.Date, req.Time); err != nil {
		var stale *domain.StaleSlotError
		if errors.As(err, &stale) {
			uc.metrics.IncStaleSlot()
			uc.logger.Warn("SubmitReschedule: turn=%s: %v", session.Turn.ID, err)
		}
		return nil, err
	}

	return req, nil
}

// Execute подготовка, проверка и отправка переноса в хранилище
func (uc *UseCase) Execute(ctx context.Context, resolver Resolver, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleTurn: turn=%s, date=%s, time=%s",
		req.TurnID, req.Date.Format(domain.DateFormat), req.Time)

	session, err := uc.Prepare(ctx, resolver, &PrepareRequest{TurnID: req.TurnID, SpecialtyID: req.SpecialtyID})
	if err != nil {
		return nil, err
	}

	mutation, err := uc.Submit(ctx, resolver, session, req.Date, req.Time, req.Reason)
	if err != nil {
		return nil, err
	}

	moved, err := uc.store.RescheduleTurn(ctx, mutation)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTurnNotFound):
			uc.logger.Warn("RescheduleTurn: turn id=%s disappeared from store", req.TurnID)
			return nil, domain.ErrTurnNotFound
		case errors.Is(err, storeClient.ErrConflict):
			stale := resolver.Invalidate(ctx, session.SpecialtyID, mutation.Date, mutation.Time)
			uc.metrics.IncStaleSlot()
			uc.logger.Warn("RescheduleTurn: store conflict: %v", stale)
			return nil, stale
		case errors.Is(err, storeClient.ErrRejected):
			uc.logger.Warn("RescheduleTurn: store rejected reschedule: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrRejected, err)
		}
		uc.logger.Error("RescheduleTurn: failed to reschedule turn id=%s: %v", req.TurnID, err)
		return nil, fmt.Errorf("%w: failed to reschedule turn: %v", ErrInternal, err)
	}

	uc.logger.Info("RescheduleTurn: turn=%s moved to %s %s",
		req.TurnID, mutation.Date.Format(domain.DateFormat), mutation.Time.WireString())

	return &Response{
		Message: moved.Message,
		Turn:    moved.Turn,
	}, nil
}

func containsTime(slots []types.TimeString, turn *domain.Turn) bool {
	for _, slot := range slots {
		if slot.Equal(turn.Time) {
			return true
		}
	}
	return false
}
