package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospital/turns-service/internal/domain"
	"github.com/hospital/turns-service/pkg/types"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondNotFound(rec, "нет")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":404,"message":"нет"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "x", dst.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x","extra":1}`))
	assert.Error(t, DecodeJSON(req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.Error(t, DecodeJSON(req, &dst))
}

func TestPathUUID(t *testing.T) {
	id := uuid.New()

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"turnId": id.String()})
	got, err := PathUUID(req, "turnId")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	req = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"turnId": "42"})
	_, err = PathUUID(req, "turnId")
	assert.Error(t, err)
}

func TestRespondStaleSlot(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondStaleSlot(rec, &domain.StaleSlotError{
		Date:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Time:      "09:00",
		Available: []types.TimeString{"09:30", "10:00"},
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	var body StaleSlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-03-02", body.Date)
	assert.Equal(t, "09:00", body.Time)
	assert.Equal(t, []string{"09:30", "10:00"}, body.Available)
}

func TestFromDomainTurn(t *testing.T) {
	created := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)
	turn := &domain.Turn{
		ID:          uuid.New(),
		State:       domain.StateWaiting,
		Date:        time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Time:        "09:30",
		DateCreated: created,
	}

	resp := FromDomainTurn(turn)

	assert.Equal(t, "waiting", resp.State)
	assert.Equal(t, "2026-03-02", resp.Date)
	assert.Equal(t, "09:30", resp.Time)
	assert.Equal(t, []uuid.UUID{}, resp.ServiceIDs)
	require.NotNil(t, resp.DateCreated)
	assert.Equal(t, "2026-02-20T12:00:00Z", *resp.DateCreated)
	assert.Nil(t, FromDomainTurn(nil))
}
