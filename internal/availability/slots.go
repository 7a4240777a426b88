package availability

import (
	"sort"
	"time"

	"github.com/hospital/turns-service/internal/domain"
	"github.com/hospital/turns-service/pkg/types"
)

// GenerateSlots генерирует слоты окна на дату с шагом intervalMinutes.
// Интервал полуоткрытый [start, end): слот, равный end, не выдается.
// Для сегодняшней даты начало сдвигается на ближайшую границу сетки окна строго после now
// (слот, равный текущей минуте, не выдается). Для прошедших дат слотов нет.
// Вся арифметика в минутах от начала суток; date и now должны быть в одном часовом поясе.
func GenerateSlots(window domain.ScheduleWindow, date, now time.Time, intervalMinutes int) []types.TimeString {
	if intervalMinutes <= 0 {
		intervalMinutes = domain.DefaultIntervalMinutes
	}

	if types.IsDateInPast(date, now) {
		return []types.TimeString{}
	}

	// Шаг 1: границы окна в минутах
	start := window.StartTime.Minutes()
	end := window.EndTime.Minutes()
	if start < 0 || end < 0 || start >= end {
		return []types.TimeString{}
	}

	// Шаг 2: для сегодняшней даты - потолок до следующей границы строго после now
	effective := start
	if types.IsSameDay(date, now) {
		nowMinutes := now.Hour()*60 + now.Minute()
		if nowMinutes >= start {
			steps := (nowMinutes-start)/intervalMinutes + 1
			effective = start + steps*intervalMinutes
		}
	}

	// Шаг 3: шагаем, пока строго меньше end
	if effective >= end {
		return []types.TimeString{}
	}
	slots := make([]types.TimeString, 0, (end-effective)/intervalMinutes+1)
	for minute := effective; minute < end; minute += intervalMinutes {
		slot, err := types.TimeStringFromMinutes(minute)
		if err != nil {
			break
		}
		slots = append(slots, slot)
	}

	return slots
}

// UnionSlots объединяет слоты всех окон, совпадающих с днем недели даты.
// Результат отсортирован и без дубликатов; пустой список - это "нет приема", а не ошибка.
func UnionSlots(windows []domain.ScheduleWindow, date, now time.Time, intervalMinutes int) []types.TimeString {
	seen := make(map[int]types.TimeString)
	for _, window := range windows {
		if !window.Matches(date) {
			continue
		}
		for _, slot := range GenerateSlots(window, date, now, intervalMinutes) {
			seen[slot.Minutes()] = slot
		}
	}

	minutes := make([]int, 0, len(seen))
	for m := range seen {
		minutes = append(minutes, m)
	}
	sort.Ints(minutes)

	result := make([]types.TimeString, 0, len(minutes))
	for _, m := range minutes {
		result = append(result, seen[m])
	}
	return result
}

// containsSlot проверяет, что время присутствует в списке слотов
func containsSlot(slots []types.TimeString, t types.TimeString) bool {
	for _, slot := range slots {
		if slot.Equal(t) {
			return true
		}
	}
	return false
}
