package get_turn

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hospital/turns-service/internal/domain"
	"github.com/hospital/turns-service/pkg/logger"
)

type MockTurnService struct {
	mock.Mock
}

func (m *MockTurnService) GetByID(ctx context.Context, turnID uuid.UUID) (*domain.Turn, error) {
	args := m.Called(ctx, turnID)
	turn, _ := args.Get(0).(*domain.Turn)
	return turn, args.Error(1)
}

func serve(svc *MockTurnService, turnID string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/turns/{turnId}", NewHandler(svc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/turns/"+turnID, nil))
	return rec
}

func TestHandler_ReturnsNextStates(t *testing.T) {
	tests := []struct {
		state domain.TurnState
		want  []string
	}{
		{state: domain.StateWaiting, want: []string{"accepted", "cancelled", "rejected"}},
		{state: domain.StateAccepted, want: []string{"finished", "cancelled"}},
		{state: domain.StateFinished, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			svc := &MockTurnService{}
			turn := &domain.Turn{
				ID:    uuid.New(),
				State: tt.state,
				Date:  time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
				Time:  "09:30",
			}
			svc.On("GetByID", mock.Anything, turn.ID).Return(turn, nil)

			rec := serve(svc, turn.ID.String())

			require.Equal(t, http.StatusOK, rec.Code)
			var body struct {
				ID         uuid.UUID `json:"id"`
				State      string    `json:"state"`
				Date       string    `json:"date"`
				NextStates []string  `json:"nextStates"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, turn.ID, body.ID)
			assert.Equal(t, "2026-03-02", body.Date)
			assert.Equal(t, tt.want, body.NextStates)
		})
	}
}

func TestHandler_Errors(t *testing.T) {
	t.Run("bad id", func(t *testing.T) {
		svc := &MockTurnService{}
		assert.Equal(t, http.StatusBadRequest, serve(svc, "abc").Code)
		svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &MockTurnService{}
		svc.On("GetByID", mock.Anything, mock.Anything).Return(nil, domain.ErrTurnNotFound)
		assert.Equal(t, http.StatusNotFound, serve(svc, uuid.NewString()).Code)
	})

	t.Run("store failure", func(t *testing.T) {
		svc := &MockTurnService{}
		svc.On("GetByID", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))
		assert.Equal(t, http.StatusInternalServerError, serve(svc, uuid.NewString()).Code)
	})
}
