package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/hospital/turns-service/internal/availability"
	"github.com/hospital/turns-service/internal/domain"
)

// UseCase use case календаря и слотов специальности.
// Резолвер принадлежит сессии вызывающего и передается в каждый вызов.
type UseCase struct {
	dayNames DayNames
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(dayNames DayNames, logger Logger) *UseCase {
	return &UseCase{
		dayNames: dayNames,
		logger:   logger,
	}
}

// SelectableDates применяет предикат выбираемых дат к диапазону дат
func (uc *UseCase) SelectableDates(ctx context.Context, resolver Resolver, req *DatesRequest) (*DatesResponse, error) {
	uc.logger.Info("SelectableDates: specialty=%s, from=%s, days=%d",
		req.SpecialtyID, req.From.Format(domain.DateFormat), req.Days)

	// 1. Валидация входных данных
	if err := validateDatesRequest(req); err != nil {
		uc.logger.Warn("SelectableDates: validation failed: %v", err)
		return nil, err
	}

	days := req.Days
	if days == 0 {
		days = DefaultDaysRange
	}
	from := req.From
	if from.IsZero() {
		from = resolver.Now()
	}
	from = resolver.Date(from)

	// 2. Загружаем окна специальности (один раз на сессию)
	if _, err := resolver.Load(ctx, req.SpecialtyID); err != nil {
		return nil, uc.resolverError("SelectableDates", err)
	}

	// 3. Применяем предикат к каждой дате диапазона
	isSelectable := resolver.SelectableDatePredicate(req.SpecialtyID)
	dates := make([]CalendarDate, 0, days)
	selectable := 0
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i)
		ok := isSelectable(date)
		if ok {
			selectable++
		}
		dates = append(dates, CalendarDate{
			Date:       date,
			DayName:    uc.dayNames.DayName(date),
			Selectable: ok,
		})
	}

	uc.logger.Info("SelectableDates: specialty=%s has %d/%d selectable dates", req.SpecialtyID, selectable, days)

	return &DatesResponse{
		SpecialtyID: req.SpecialtyID,
		From:        from,
		Dates:       dates,
	}, nil
}

// Execute возвращает слоты на дату и запоминает ее как выбранную в сессии
func (uc *UseCase) Execute(ctx context.Context, resolver Resolver, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: specialty=%s, date=%s",
		req.SpecialtyID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := resolver.Date(req.Date)

	// 2. Получаем окна и генерируем слоты
	snapshot, err := resolver.Load(ctx, req.SpecialtyID)
	if err != nil {
		return nil, uc.resolverError("GetAvailableSlots", err)
	}

	slots, err := resolver.SelectDate(ctx, req.SpecialtyID, date)
	if err != nil {
		return nil, uc.resolverError("GetAvailableSlots", err)
	}

	// Пустой список - нормальный результат, не ошибка
	uc.logger.Info("GetAvailableSlots: %d slots for specialty=%s on %s",
		len(slots), req.SpecialtyID, date.Format(domain.DateFormat))

	return &Response{
		SpecialtyID:     req.SpecialtyID,
		Date:            date,
		DayName:         uc.dayNames.DayName(date),
		Selectable:      resolver.SelectableDatePredicate(req.SpecialtyID)(date),
		IntervalMinutes: snapshot.IntervalMinutes(),
		Slots:           slots,
	}, nil
}

// resolverError ошибки каталога и резолвера передаются вызывающему без изменений
func (uc *UseCase) resolverError(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrCatalogUnavailable),
		errors.Is(err, domain.ErrSpecialtyNotFound),
		errors.Is(err, availability.ErrResolverClosed),
		errors.Is(err, availability.ErrInvalidSpecialty):
		uc.logger.Warn("%s: %v", op, err)
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	}
	uc.logger.Error("%s: resolver error: %v", op, err)
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
