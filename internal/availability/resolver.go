package availability

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/hospital/turns-service/internal/domain"
	"github.com/hospital/turns-service/pkg/types"
)

// Options параметры резолвера
type Options struct {
	// DefaultIntervalMinutes шаг сетки, если источник настроек не задан или недоступен
	DefaultIntervalMinutes int
	// Location часовой пояс, в котором считаются "сегодня" и "сейчас"
	Location *time.Location
}

// Resolver отвечает на вопросы "какие даты можно выбрать" и "какие слоты есть на дату".
// Окна каталога загружаются один раз на специальность и кешируются на время жизни резолвера.
// Один экземпляр на пользовательскую сессию: кеш не разделяется между сессиями.
type Resolver struct {
	catalog  Catalog
	configs  SlotConfigSource
	clock    TimeProvider
	metrics  Metrics
	logger   Logger
	location *time.Location
	interval int

	group singleflight.Group

	mu           sync.RWMutex
	cache        map[uuid.UUID]*Snapshot
	current      uuid.UUID
	selectedDate *time.Time
	closed       bool
}

// NewResolver создает резолвер. configs и metrics могут быть nil.
func NewResolver(
	catalog Catalog,
	configs SlotConfigSource,
	metrics Metrics,
	logger Logger,
	opts Options,
) *Resolver {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if opts.DefaultIntervalMinutes <= 0 {
		opts.DefaultIntervalMinutes = domain.DefaultIntervalMinutes
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}

	return &Resolver{
		catalog:  catalog,
		configs:  configs,
		clock:    &RealTimeProvider{},
		metrics:  metrics,
		logger:   logger,
		location: opts.Location,
		interval: opts.DefaultIntervalMinutes,
		cache:    make(map[uuid.UUID]*Snapshot),
	}
}

// WithTimeProvider подменяет часы (для тестов)
func (r *Resolver) WithTimeProvider(clock TimeProvider) *Resolver {
	r.clock = clock
	return r
}

// Now текущее время в часовом поясе резолвера
func (r *Resolver) Now() time.Time {
	return r.clock.Now().In(r.location)
}

// Date приводит календарную дату к полуночи в часовом поясе резолвера
func (r *Resolver) Date(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, r.location)
}

// Select делает специальность текущей. Смена специальности сбрасывает выбранную дату.
func (r *Resolver) Select(specialtyID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.selectLocked(specialtyID)
}

func (r *Resolver) selectLocked(specialtyID uuid.UUID) {
	if r.current != specialtyID {
		r.current = specialtyID
		r.selectedDate = nil
	}
}

// Current текущая специальность (uuid.Nil, если не выбрана)
func (r *Resolver) Current() uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Load выбирает специальность и возвращает ее окна, загружая их при первом обращении.
// Параллельные загрузки одной специальности объединяются в один запрос к каталогу.
// Ошибка каталога не кешируется и возвращается как domain.ErrCatalogUnavailable.
func (r *Resolver) Load(ctx context.Context, specialtyID uuid.UUID) (*Snapshot, error) {
	if specialtyID == uuid.Nil {
		return nil, ErrInvalidSpecialty
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrResolverClosed
	}
	r.selectLocked(specialtyID)
	if snapshot, ok := r.cache[specialtyID]; ok {
		r.mu.Unlock()
		return snapshot, nil
	}
	r.mu.Unlock()

	return r.fetch(ctx, specialtyID)
}

// Refresh выбирает специальность и принудительно перечитывает ее окна.
// Старые окна остаются видимыми до успешного завершения загрузки; при ошибке кеш не меняется.
func (r *Resolver) Refresh(ctx context.Context, specialtyID uuid.UUID) (*Snapshot, error) {
	if specialtyID == uuid.Nil {
		return nil, ErrInvalidSpecialty
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrResolverClosed
	}
	r.selectLocked(specialtyID)
	r.mu.Unlock()

	return r.fetch(ctx, specialtyID)
}

func (r *Resolver) fetch(ctx context.Context, specialtyID uuid.UUID) (*Snapshot, error) {
	ch := r.group.DoChan(specialtyID.String(), func() (interface{}, error) {
		// Загрузка общая для всех ожидающих, поэтому отмена одного вызывающего ее не прерывает
		return r.load(context.WithoutCancel(ctx), specialtyID)
	})

	var result singleflight.Result
	select {
	case result = <-ch:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if result.Shared {
		r.metrics.IncCatalogFetchCoalesced()
	}
	if result.Err != nil {
		return nil, result.Err
	}

	snapshot := result.Val.(*Snapshot)
	r.apply(snapshot)
	return snapshot, nil
}

func (r *Resolver) load(ctx context.Context, specialtyID uuid.UUID) (*Snapshot, error) {
	windows, err := r.catalog.GetAvailableWindows(ctx, specialtyID, nil)
	if errors.Is(err, domain.ErrSpecialtyNotFound) {
		r.metrics.ObserveCatalogFetch(true)
		return nil, err
	}
	if err != nil {
		r.metrics.ObserveCatalogFetch(false)
		r.logger.Error("Resolver: failed to fetch windows for specialty=%s: %v", specialtyID, err)
		return nil, fmt.Errorf("%w: specialty %s: %v", domain.ErrCatalogUnavailable, specialtyID, err)
	}
	r.metrics.ObserveCatalogFetch(true)

	valid := make([]domain.ScheduleWindow, 0, len(windows))
	for _, window := range windows {
		if err := window.Validate(); err != nil {
			r.logger.Warn("Resolver: skipping window of specialty=%s: %v", specialtyID, err)
			continue
		}
		valid = append(valid, window)
	}

	config := r.slotConfig(ctx, specialtyID)

	return newSnapshot(specialtyID, valid, config, r.Now()), nil
}

func (r *Resolver) slotConfig(ctx context.Context, specialtyID uuid.UUID) domain.SpecialtySlotsConfig {
	fallback := domain.SpecialtySlotsConfig{
		IntervalMinutes:    r.interval,
		AdvanceBookingDays: domain.DefaultAdvanceBookingDays,
	}
	if r.configs == nil {
		return fallback
	}

	config, err := r.configs.GetEffective(ctx, specialtyID)
	if err != nil || config == nil {
		r.logger.Warn("Resolver: slot config for specialty=%s unavailable, using interval=%d: %v",
			specialtyID, r.interval, err)
		return fallback
	}
	if config.IsDefault() {
		config.IntervalMinutes = r.interval
	}
	return *config
}

// apply заменяет кеш специальности целиком, только если она все еще выбрана
func (r *Resolver) apply(snapshot *Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	if r.current != snapshot.SpecialtyID {
		r.logger.Info("Resolver: discarding windows of specialty=%s, current selection is %s",
			snapshot.SpecialtyID, r.current)
		return
	}

	if existing, ok := r.cache[snapshot.SpecialtyID]; ok && existing.FetchedAt.After(snapshot.FetchedAt) {
		return
	}
	r.cache[snapshot.SpecialtyID] = snapshot
}

func (r *Resolver) cached(specialtyID uuid.UUID) *Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil
	}
	return r.cache[specialtyID]
}

// SelectableDatePredicate предикат для календаря. Пока окна не загружены
// (или загрузка не удалась) отклоняет все даты.
func (r *Resolver) SelectableDatePredicate(specialtyID uuid.UUID) func(date time.Time) bool {
	return func(date time.Time) bool {
		return r.cached(specialtyID).IsSelectable(r.Date(date), r.Now())
	}
}

// TimeSlots отсортированное объединение слотов всех окон на день недели даты.
// Пустой список - нормальный результат "нет приема".
func (r *Resolver) TimeSlots(ctx context.Context, specialtyID uuid.UUID, date time.Time) ([]types.TimeString, error) {
	snapshot, err := r.Load(ctx, specialtyID)
	if err != nil {
		return nil, err
	}
	return snapshot.TimeSlots(r.Date(date), r.Now()), nil
}

// SelectDate запоминает выбранную дату текущей специальности и возвращает ее слоты.
// Если за время загрузки специальность сменилась, дата не запоминается.
func (r *Resolver) SelectDate(ctx context.Context, specialtyID uuid.UUID, date time.Time) ([]types.TimeString, error) {
	snapshot, err := r.Load(ctx, specialtyID)
	if err != nil {
		return nil, err
	}

	day := r.Date(date)
	slots := snapshot.TimeSlots(day, r.Now())

	r.mu.Lock()
	if r.current == specialtyID {
		r.selectedDate = &day
	}
	r.mu.Unlock()

	return slots, nil
}

// SelectedDate выбранная дата текущей специальности
func (r *Resolver) SelectedDate() *time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.selectedDate == nil {
		return nil
	}
	date := *r.selectedDate
	return &date
}

// Close освобождает кеш. Загрузки в полете завершатся, но их результат не применится.
func (r *Resolver) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	r.cache = make(map[uuid.UUID]*Snapshot)
	r.current = uuid.Nil
	r.selectedDate = nil
}
