package reschedule_turn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hospital/turns-service/internal/api/handlers"
	"github.com/hospital/turns-service/internal/api/middleware"
	"github.com/hospital/turns-service/internal/availability"
	"github.com/hospital/turns-service/internal/domain"
	rescheduleTurn "github.com/hospital/turns-service/internal/usecase/reschedule_turn"
	"github.com/hospital/turns-service/pkg/logger"
	"github.com/hospital/turns-service/pkg/types"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, resolver rescheduleTurn.Resolver, req *rescheduleTurn.Request) (*rescheduleTurn.Response, error) {
	args := m.Called(ctx, resolver, req)
	resp, _ := args.Get(0).(*rescheduleTurn.Response)
	return resp, args.Error(1)
}

var wednesday = time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

func serve(t *testing.T, uc *MockUseCase, turnID, body string) *httptest.ResponseRecorder {
	t.Helper()

	resolver := availability.NewResolver(nil, nil, nil, logger.NewNop(), availability.Options{})
	t.Cleanup(resolver.Close)

	r := mux.NewRouter()
	r.HandleFunc("/turns/{turnId}/reschedule", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/turns/"+turnID+"/reschedule", strings.NewReader(body))
	req = req.WithContext(middleware.WithResolver(req.Context(), uuid.Nil, resolver))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Rescheduled(t *testing.T) {
	uc := &MockUseCase{}
	turnID := uuid.New()

	uc.On("Execute", mock.Anything, mock.Anything, mock.MatchedBy(func(req *rescheduleTurn.Request) bool {
		return req.TurnID == turnID && req.Date.Equal(wednesday) && req.Time == "14:30" &&
			req.Reason != nil && *req.Reason == "viaje"
	})).Return(&rescheduleTurn.Response{
		Message: "turn rescheduled",
		Turn:    &domain.Turn{ID: turnID, State: domain.StateWaiting, Date: wednesday, Time: "14:30"},
	}, nil)

	rec := serve(t, uc, turnID.String(), `{"date":"2026-03-04","time":"14:30","reason":"viaje"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body RescheduleTurnResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "turn rescheduled", body.Message)
	assert.Equal(t, "2026-03-04", body.Turn.Date)
	assert.Equal(t, "14:30", body.Turn.Time)
	uc.AssertExpectations(t)
}

func TestHandler_StaleSlotReturnsFreshSlots(t *testing.T) {
	uc := &MockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything, mock.Anything).Return(nil, &domain.StaleSlotError{
		Date:      wednesday,
		Time:      "09:00",
		Available: []types.TimeString{"14:00", "14:30"},
	})

	rec := serve(t, uc, uuid.NewString(), `{"date":"2026-03-04","time":"09:00"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	var body handlers.StaleSlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"14:00", "14:30"}, body.Available)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: domain.ErrTurnNotFound, want: http.StatusNotFound},
		{name: "terminal", err: fmt.Errorf("%w: state cancelled", domain.ErrTurnNotReschedulable), want: http.StatusConflict},
		{name: "no specialty", err: domain.ErrMissingSpecialtyContext, want: http.StatusUnprocessableEntity},
		{name: "specialty unknown", err: domain.ErrSpecialtyNotFound, want: http.StatusNotFound},
		{name: "catalog down", err: domain.ErrCatalogUnavailable, want: http.StatusServiceUnavailable},
		{name: "invalid turn", err: fmt.Errorf("%w: date in the past", domain.ErrInvalidTurn), want: http.StatusBadRequest},
		{name: "rejected", err: rescheduleTurn.ErrRejected, want: http.StatusUnprocessableEntity},
		{name: "internal", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &MockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(t, uc, uuid.NewString(), `{"date":"2026-03-04","time":"14:00"}`)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandler_RequestRejectedBeforeUseCase(t *testing.T) {
	tests := []struct {
		name   string
		turnID string
		body   string
	}{
		{name: "bad id", turnID: "x", body: `{"date":"2026-03-04","time":"14:00"}`},
		{name: "malformed json", turnID: uuid.NewString(), body: `{"date":`},
		{name: "bad date", turnID: uuid.NewString(), body: `{"date":"04/03/2026","time":"14:00"}`},
		{name: "bad time", turnID: uuid.NewString(), body: `{"date":"2026-03-04","time":"2pm"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &MockUseCase{}

			rec := serve(t, uc, tt.turnID, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
