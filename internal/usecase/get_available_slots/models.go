package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/pkg/types"
)

// DefaultDaysRange количество дней, если диапазон не указан
const DefaultDaysRange = 31

// DatesRequest запрос выбираемых дат
type DatesRequest struct {
	SpecialtyID uuid.UUID
	From        time.Time // пусто - сегодня
	Days        int       // 0 - DefaultDaysRange
}

// DatesResponse календарь специальности на диапазон дат
type DatesResponse struct {
	SpecialtyID uuid.UUID
	From        time.Time
	Dates       []CalendarDate
}

// CalendarDate дата календаря с названием дня в локали сервиса
type CalendarDate struct {
	Date       time.Time
	DayName    string
	Selectable bool
}

// Request запрос слотов на дату
type Request struct {
	SpecialtyID uuid.UUID
	Date        time.Time
}

// Response слоты на дату. Пустой Slots - нормальный ответ "нет приема".
type Response struct {
	SpecialtyID     uuid.UUID
	Date            time.Time
	DayName         string
	Selectable      bool
	IntervalMinutes int
	Slots           []types.TimeString
}
