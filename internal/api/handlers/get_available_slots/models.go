package get_available_slots

import (
	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/domain"
	getAvailableSlots "github.com/hospital/turns-service/internal/usecase/get_available_slots"
	"github.com/hospital/turns-service/pkg/types"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	SpecialtyID     uuid.UUID `json:"specialtyId"`
	Date            string    `json:"date"`
	DayName         string    `json:"dayName"`
	Selectable      bool      `json:"selectable"`
	IntervalMinutes int       `json:"intervalMinutes"`
	Slots           []string  `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		SpecialtyID:     resp.SpecialtyID,
		Date:            resp.Date.Format(domain.DateFormat),
		DayName:         resp.DayName,
		Selectable:      resp.Selectable,
		IntervalMinutes: resp.IntervalMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(specialtyID uuid.UUID, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := types.ParseDate(dateStr, nil)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		SpecialtyID: specialtyID,
		Date:        date.Time,
	}, nil
}
