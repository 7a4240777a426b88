package get_selectable_dates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospital/turns-service/internal/api/middleware"
	"github.com/hospital/turns-service/internal/availability"
	"github.com/hospital/turns-service/internal/daynames"
	"github.com/hospital/turns-service/internal/domain"
	getAvailableSlots "github.com/hospital/turns-service/internal/usecase/get_available_slots"
	"github.com/hospital/turns-service/pkg/logger"
)

type stubCatalog struct {
	windows []domain.ScheduleWindow
	err     error
}

func (c *stubCatalog) GetAvailableWindows(ctx context.Context, specialtyID uuid.UUID, date *time.Time) ([]domain.ScheduleWindow, error) {
	return c.windows, c.err
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func serve(t *testing.T, catalog *stubCatalog, target string) *httptest.ResponseRecorder {
	t.Helper()

	translator, err := daynames.New("es")
	require.NoError(t, err)

	// Понедельник 2026-03-02, 08:00
	resolver := availability.NewResolver(catalog, nil, nil, logger.NewNop(), availability.Options{Location: time.UTC}).
		WithTimeProvider(fixedClock{now: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)})
	t.Cleanup(resolver.Close)

	r := mux.NewRouter()
	r.HandleFunc("/specialties/{specialtyId}/selectable-dates",
		NewHandler(getAvailableSlots.NewUseCase(translator, logger.NewNop()), logger.NewNop()).Handle)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = req.WithContext(middleware.WithResolver(req.Context(), uuid.Nil, resolver))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_AppliesPredicateOverRange(t *testing.T) {
	catalog := &stubCatalog{windows: []domain.ScheduleWindow{
		{DayOfWeek: domain.Monday, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: domain.Wednesday, StartTime: "14:00", EndTime: "16:00"},
	}}

	rec := serve(t, catalog, fmt.Sprintf("/specialties/%s/selectable-dates?from=2026-03-02&days=7", uuid.New()))

	require.Equal(t, http.StatusOK, rec.Code)
	var body SelectableDatesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Dates, 7)

	assert.Equal(t, "2026-03-02", body.From)
	assert.Equal(t, CalendarDate{Date: "2026-03-02", DayName: "Lunes", Selectable: true}, body.Dates[0])
	assert.Equal(t, CalendarDate{Date: "2026-03-03", DayName: "Martes", Selectable: false}, body.Dates[1])
	assert.Equal(t, CalendarDate{Date: "2026-03-04", DayName: "Miércoles", Selectable: true}, body.Dates[2])
	for _, d := range body.Dates[3:] {
		assert.False(t, d.Selectable, d.Date)
	}
}

func TestHandler_PastDatesNotSelectable(t *testing.T) {
	catalog := &stubCatalog{windows: []domain.ScheduleWindow{
		{DayOfWeek: domain.Sunday, StartTime: "09:00", EndTime: "12:00"},
	}}

	rec := serve(t, catalog, fmt.Sprintf("/specialties/%s/selectable-dates?from=2026-03-01&days=1", uuid.New()))

	require.Equal(t, http.StatusOK, rec.Code)
	var body SelectableDatesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Dates, 1)
	assert.False(t, body.Dates[0].Selectable)
}

func TestHandler_CatalogUnavailable(t *testing.T) {
	catalog := &stubCatalog{err: fmt.Errorf("%w: connection refused", domain.ErrCatalogUnavailable)}

	rec := serve(t, catalog, fmt.Sprintf("/specialties/%s/selectable-dates", uuid.New()))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandler_InvalidQuery(t *testing.T) {
	for _, query := range []string{"days=abc", "days=500", "from=yesterday"} {
		t.Run(query, func(t *testing.T) {
			rec := serve(t, &stubCatalog{}, fmt.Sprintf("/specialties/%s/selectable-dates?%s", uuid.New(), query))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
