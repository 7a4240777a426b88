package availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/domain"
	"github.com/hospital/turns-service/pkg/types"
)

// Snapshot неизменяемый результат загрузки окон специальности.
// Заменяется целиком при повторной загрузке, на месте не меняется.
type Snapshot struct {
	SpecialtyID uuid.UUID
	Windows     []domain.ScheduleWindow
	Config      domain.SpecialtySlotsConfig
	FetchedAt   time.Time

	days map[domain.CanonicalDay]bool
}

func newSnapshot(specialtyID uuid.UUID, windows []domain.ScheduleWindow, config domain.SpecialtySlotsConfig, fetchedAt time.Time) *Snapshot {
	return &Snapshot{
		SpecialtyID: specialtyID,
		Windows:     windows,
		Config:      config,
		FetchedAt:   fetchedAt,
		days:        domain.CoveredDays(windows),
	}
}

// IsSelectable дата не раньше сегодняшней, в пределах горизонта записи
// и на ее день недели есть хотя бы одно окно
func (s *Snapshot) IsSelectable(date, now time.Time) bool {
	if s == nil {
		return false
	}
	if types.IsDateInPast(date, now) {
		return false
	}
	if horizon := s.Config.Horizon(types.StartOfDay(now)); !horizon.IsZero() && types.StartOfDay(date).After(horizon) {
		return false
	}
	return s.days[domain.CanonicalDayOf(date)]
}

// TimeSlots слоты на дату; даты за горизонтом записи пустые
func (s *Snapshot) TimeSlots(date, now time.Time) []types.TimeString {
	if s == nil {
		return []types.TimeString{}
	}
	if horizon := s.Config.Horizon(types.StartOfDay(now)); !horizon.IsZero() && types.StartOfDay(date).After(horizon) {
		return []types.TimeString{}
	}
	return UnionSlots(s.Windows, date, now, s.Config.IntervalMinutes)
}

// Offers проверяет, что время все еще предлагается на дату
func (s *Snapshot) Offers(date, now time.Time, t types.TimeString) bool {
	return containsSlot(s.TimeSlots(date, now), t)
}

// IntervalMinutes шаг сетки слотов
func (s *Snapshot) IntervalMinutes() int {
	return s.Config.IntervalMinutes
}
