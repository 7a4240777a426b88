package reschedule_turn

import (
	"time"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/domain"
	"github.com/hospital/turns-service/pkg/types"
)

// PrepareRequest запрос на подготовку переноса
type PrepareRequest struct {
	TurnID      uuid.UUID
	SpecialtyID *uuid.UUID // nil - берется из талона
}

// Session состояние диалога переноса после повторного разрешения доступности.
// Date заполнена, только если прежняя дата талона все еще выбираема.
type Session struct {
	Turn            *domain.Turn
	SpecialtyID     uuid.UUID
	Date            *time.Time
	Slots           []types.TimeString
	IntervalMinutes int
	// CurrentSlotOffered прежнее время талона все еще предлагается на прежнюю дату
	CurrentSlotOffered bool
}

// Request запрос на перенос: подготовка, проверка и отправка в хранилище
type Request struct {
	TurnID      uuid.UUID
	SpecialtyID *uuid.UUID
	Date        time.Time
	Time        types.TimeString
	Reason      *string
}

// Response результат переноса от хранилища
type Response struct {
	Message string
	Turn    *domain.Turn
}
