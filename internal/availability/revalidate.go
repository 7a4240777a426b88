package availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/domain"
	"github.com/hospital/turns-service/pkg/types"
)

// Revalidate проверяет на момент отправки, что время все еще предлагается на дату.
// Выбор мог быть сделан по устаревшему кешу, поэтому при промахе окна перечитываются.
// Если слота нет и после перечитывания, возвращается *domain.StaleSlotError со свежими слотами.
func (r *Resolver) Revalidate(ctx context.Context, specialtyID uuid.UUID, date time.Time, t types.TimeString) error {
	snapshot, err := r.Load(ctx, specialtyID)
	if err != nil {
		return err
	}

	day := r.Date(date)
	if snapshot.Offers(day, r.Now(), t) {
		return nil
	}

	return r.staleSlot(ctx, snapshot, day, t)
}

// Invalidate вызывается, когда хранилище отклонило слот, который резолвер считал свободным.
// Окна перечитываются, результат - *domain.StaleSlotError со свежими слотами на дату.
func (r *Resolver) Invalidate(ctx context.Context, specialtyID uuid.UUID, date time.Time, t types.TimeString) *domain.StaleSlotError {
	day := r.Date(date)

	fresh, err := r.Refresh(ctx, specialtyID)
	if err != nil {
		r.logger.Warn("Resolver: refresh after rejected slot failed for specialty=%s: %v", specialtyID, err)
		fresh = r.cached(specialtyID)
	}

	available := fresh.TimeSlots(day, r.Now())
	return &domain.StaleSlotError{Date: day, Time: t, Available: withoutSlot(available, t)}
}

func (r *Resolver) staleSlot(ctx context.Context, cached *Snapshot, day time.Time, t types.TimeString) error {
	fresh, err := r.Refresh(ctx, cached.SpecialtyID)
	if err != nil {
		// Старые окна остаются в силе до успешной загрузки
		r.logger.Warn("Resolver: refresh for stale slot failed for specialty=%s: %v", cached.SpecialtyID, err)
		fresh = cached
	}

	available := fresh.TimeSlots(day, r.Now())
	if containsSlot(available, t) {
		return nil
	}
	return &domain.StaleSlotError{Date: day, Time: t, Available: available}
}

func withoutSlot(slots []types.TimeString, t types.TimeString) []types.TimeString {
	result := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if slot.Minutes() != t.Minutes() {
			result = append(result, slot)
		}
	}
	return result
}
