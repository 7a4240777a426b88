package schedulecatalog

import "github.com/hospital/turns-service/pkg/types"

// Window окно расписания в формате каталога
type Window struct {
	DayOfWeek string         `json:"dayOfWeek"` // "Monday" ... "Sunday"
	StartTime types.WireTime `json:"startTime"` // "HH:MM:SS"
	EndTime   types.WireTime `json:"endTime"`
}

// ErrorResponse модель ошибки от каталога
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
