package prepare_reschedule

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

func (m *MockUseCase) Prepare(ctx context.Context, resolver rescheduleTurn.Resolver, req *rescheduleTurn.PrepareRequest) (*rescheduleTurn.Session, error) {
	args := m.Called(ctx, resolver, req)
	session, _ := args.Get(0).(*rescheduleTurn.Session)
	return session, args.Error(1)
}

func serve(t *testing.T, uc *MockUseCase, turnID, body string) *httptest.ResponseRecorder {
	t.Helper()

	resolver := availability.NewResolver(nil, nil, nil, logger.NewNop(), availability.Options{})
	t.Cleanup(resolver.Close)

	r := mux.NewRouter()
	r.HandleFunc("/turns/{turnId}/reschedule/prepare", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/turns/"+turnID+"/reschedule/prepare", strings.NewReader(body))
	req = req.WithContext(middleware.WithResolver(req.Context(), uuid.Nil, resolver))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_SeededWithCurrentDate(t *testing.T) {
	uc := &MockUseCase{}
	turnID := uuid.New()
	specialtyID := uuid.New()
	wednesday := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	uc.On("Prepare", mock.Anything, mock.Anything, mock.MatchedBy(func(req *rescheduleTurn.PrepareRequest) bool {
		return req.TurnID == turnID && req.SpecialtyID == nil
	})).Return(&rescheduleTurn.Session{
		Turn:               &domain.Turn{ID: turnID, State: domain.StateWaiting, Date: wednesday, Time: "14:00"},
		SpecialtyID:        specialtyID,
		Date:               &wednesday,
		Slots:              []types.TimeString{"14:00", "14:30"},
		IntervalMinutes:    30,
		CurrentSlotOffered: true,
	}, nil)

	rec := serve(t, uc, turnID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body PrepareRescheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, specialtyID, body.SpecialtyID)
	require.NotNil(t, body.Date)
	assert.Equal(t, "2026-03-04", *body.Date)
	assert.Equal(t, []string{"14:00", "14:30"}, body.Slots)
	assert.True(t, body.CurrentSlotOffered)
	assert.Equal(t, turnID, body.Turn.ID)
	uc.AssertExpectations(t)
}

func TestHandler_DateNoLongerOffered(t *testing.T) {
	uc := &MockUseCase{}
	turnID := uuid.New()
	specialtyID := uuid.New()

	uc.On("Prepare", mock.Anything, mock.Anything, mock.MatchedBy(func(req *rescheduleTurn.PrepareRequest) bool {
		return req.SpecialtyID != nil && *req.SpecialtyID == specialtyID
	})).Return(&rescheduleTurn.Session{
		Turn:            &domain.Turn{ID: turnID, State: domain.StateAccepted},
		SpecialtyID:     specialtyID,
		IntervalMinutes: 30,
	}, nil)

	rec := serve(t, uc, turnID.String(), fmt.Sprintf(`{"specialtyId":%q}`, specialtyID))

	require.Equal(t, http.StatusOK, rec.Code)
	var body PrepareRescheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Nil(t, body.Date)
	assert.Empty(t, body.Slots)
	assert.False(t, body.CurrentSlotOffered)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: domain.ErrTurnNotFound, want: http.StatusNotFound},
		{name: "terminal", err: fmt.Errorf("%w: state finished", domain.ErrTurnNotReschedulable), want: http.StatusConflict},
		{name: "no specialty", err: domain.ErrMissingSpecialtyContext, want: http.StatusUnprocessableEntity},
		{name: "specialty unknown", err: domain.ErrSpecialtyNotFound, want: http.StatusNotFound},
		{name: "catalog down", err: domain.ErrCatalogUnavailable, want: http.StatusServiceUnavailable},
		{name: "invalid", err: rescheduleTurn.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "internal", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &MockUseCase{}
			uc.On("Prepare", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(t, uc, uuid.NewString(), "")

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		turnID string
		body   string
	}{
		{name: "bad id", turnID: "42", body: ""},
		{name: "malformed body", turnID: uuid.NewString(), body: `{"specialtyId":`},
		{name: "bad specialty", turnID: uuid.NewString(), body: `{"specialtyId":"cardio"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &MockUseCase{}

			rec := serve(t, uc, tt.turnID, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Prepare", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
