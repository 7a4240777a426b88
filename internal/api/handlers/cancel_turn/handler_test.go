package cancel_turn

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hospital/turns-service/internal/domain"
	"github.com/hospital/turns-service/internal/service/turns"
	"github.com/hospital/turns-service/pkg/logger"
)

type MockTurnService struct {
	mock.Mock
}

func (m *MockTurnService) Cancel(ctx context.Context, turnID uuid.UUID) (*domain.Turn, error) {
	args := m.Called(ctx, turnID)
	turn, _ := args.Get(0).(*domain.Turn)
	return turn, args.Error(1)
}

func serve(svc *MockTurnService, turnID string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/turns/{turnId}/cancel", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/turns/"+turnID+"/cancel", nil))
	return rec
}

func TestHandler_Cancelled(t *testing.T) {
	svc := &MockTurnService{}
	turnID := uuid.New()
	svc.On("Cancel", mock.Anything, turnID).Return(&domain.Turn{ID: turnID, State: domain.StateCancelled}, nil)

	rec := serve(svc, turnID.String())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"cancelled"`)
	svc.AssertExpectations(t)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: domain.ErrTurnNotFound, want: http.StatusNotFound},
		{name: "terminal", err: fmt.Errorf("%w: finished -> cancelled", domain.ErrIllegalTransition), want: http.StatusConflict},
		{name: "store conflict", err: turns.ErrStoreConflict, want: http.StatusConflict},
		{name: "other", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockTurnService{}
			svc.On("Cancel", mock.Anything, mock.Anything).Return(nil, tt.err)

			assert.Equal(t, tt.want, serve(svc, uuid.NewString()).Code)
		})
	}
}
