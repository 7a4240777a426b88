package create_turn

import (
	"time"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/domain"
	"github.com/hospital/turns-service/pkg/types"
)

// Request модель запроса на создание талона
type Request struct {
	UserID            uuid.UUID        // пользователь из сессии
	SpecialtyID       uuid.UUID        // специальность, по которой выбирался слот
	Reason            string           // причина обращения
	ServiceIDs        []uuid.UUID      // ровно одна услуга, если не разрешено объединение
	Date              time.Time        // дата без времени
	Time              types.TimeString // время слота (HH:MM)
	HealthInsuranceID *uuid.UUID       // страховка (опционально)
	DoctorID          *uuid.UUID       // врач (опционально)
}

// Response созданный талон и ссылка на оплату, если хранилище ее вернуло
type Response struct {
	Turn       *domain.Turn
	PaymentURL *string
}
