package get_selectable_dates

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/domain"
	getAvailableSlots "github.com/hospital/turns-service/internal/usecase/get_available_slots"
	"github.com/hospital/turns-service/pkg/types"
)

// SelectableDatesResponse HTTP response model
type SelectableDatesResponse struct {
	SpecialtyID uuid.UUID      `json:"specialtyId"`
	From        string         `json:"from"`
	Dates       []CalendarDate `json:"dates"`
}

// CalendarDate дата календаря
type CalendarDate struct {
	Date       string `json:"date"`
	DayName    string `json:"dayName"`
	Selectable bool   `json:"selectable"`
}

// ToUseCaseRequest создает запрос use case из query параметров; оба параметра необязательны
func ToUseCaseRequest(specialtyID uuid.UUID, fromStr, daysStr string) (*getAvailableSlots.DatesRequest, error) {
	req := &getAvailableSlots.DatesRequest{SpecialtyID: specialtyID}

	if fromStr != "" {
		from, err := types.ParseDate(fromStr, nil)
		if err != nil {
			return nil, err
		}
		req.From = from.Time
	}

	if daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return nil, fmt.Errorf("invalid days %q: %w", daysStr, err)
		}
		req.Days = days
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.DatesResponse) *SelectableDatesResponse {
	dates := make([]CalendarDate, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = CalendarDate{
			Date:       d.Date.Format(domain.DateFormat),
			DayName:    d.DayName,
			Selectable: d.Selectable,
		}
	}

	return &SelectableDatesResponse{
		SpecialtyID: resp.SpecialtyID,
		From:        resp.From.Format(domain.DateFormat),
		Dates:       dates,
	}
}
