package create_turn

import (
	"context"
	"errors"
	"fmt"

	"github.com/hospital/turns-service/internal/domain"
	storeClient "github.com/hospital/turns-service/internal/integrations/appointmentstore"
)

// UseCase use case для создания талона
type UseCase struct {
	store                AppointmentStore
	metrics              Metrics
	logger               Logger
	allowServiceBundling bool
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store AppointmentStore, metrics Metrics, logger Logger, allowServiceBundling bool) *UseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &UseCase{
		store:                store,
		metrics:              metrics,
		logger:               logger,
		allowServiceBundling: allowServiceBundling,
	}
}

// Execute выполняет use case создания талона.
// Слот перепроверяется на момент отправки: с выбора могло пройти время или поменяться расписание.
func (uc *UseCase) Execute(ctx context.Context, resolver Resolver, req *Request) (*Response, error) {
	uc.logger.Info("CreateTurn: user=%s, specialty=%s, date=%s, time=%s",
		req.UserID, req.SpecialtyID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateTurn: validation failed: %v", err)
		return nil, err
	}

	// 2. Формируем талон в состоянии waiting
	payload, err := domain.NewTurn(domain.NewTurnParams{
		Reason:            req.Reason,
		ServiceIDs:        req.ServiceIDs,
		UserID:            req.UserID,
		Date:              req.Date,
		Time:              req.Time,
		HealthInsuranceID: req.HealthInsuranceID,
		DoctorID:          req.DoctorID,
		SpecialtyID:       &req.SpecialtyID,
	}, uc.allowServiceBundling)
	if err != nil {
		uc.logger.Warn("CreateTurn: %v", err)
		return nil, err
	}

	// 3. Слот все еще предлагается?
	if err := resolver.Revalidate(ctx, req.SpecialtyID, payload.Date, payload.Time); err != nil {
		var stale *domain.StaleSlotError
		if errors.As(err, &stale) {
			uc.metrics.IncStaleSlot()
			uc.logger.Warn("CreateTurn: %v", err)
		}
		return nil, err
	}

	// 4. Отправляем в хранилище
	created, err := uc.store.CreateTurn(ctx, payload)
	if err != nil {
		switch {
		case errors.Is(err, storeClient.ErrConflict):
			// Хранилище считает слот занятым: перечитываем окна и просим выбрать заново
			stale := resolver.Invalidate(ctx, req.SpecialtyID, payload.Date, payload.Time)
			uc.metrics.IncStaleSlot()
			uc.logger.Warn("CreateTurn: store conflict: %v", stale)
			return nil, stale
		case errors.Is(err, storeClient.ErrRejected):
			uc.logger.Warn("CreateTurn: store rejected turn: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrRejected, err)
		}
		uc.logger.Error("CreateTurn: failed to create turn: %v", err)
		return nil, fmt.Errorf("%w: failed to create turn: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateTurn: successfully created turn id=%s (payment: %t)",
		created.Turn.ID, created.PaymentURL != nil)

	return &Response{
		Turn:       created.Turn,
		PaymentURL: created.PaymentURL,
	}, nil
}
