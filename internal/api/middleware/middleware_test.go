package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospital/turns-service/internal/availability"
	"github.com/hospital/turns-service/internal/domain"
	"github.com/hospital/turns-service/internal/service/sessions"
	"github.com/hospital/turns-service/pkg/logger"
)

type emptyCatalog struct{}

func (emptyCatalog) GetAvailableWindows(ctx context.Context, specialtyID uuid.UUID, date *time.Time) ([]domain.ScheduleWindow, error) {
	return nil, nil
}

func newRegistry(t *testing.T) *sessions.Service {
	t.Helper()
	factory := func() *availability.Resolver {
		return availability.NewResolver(emptyCatalog{}, nil, nil, logger.NewNop(), availability.Options{Location: time.UTC})
	}
	registry := sessions.NewService(8, time.Minute, factory, nil, logger.NewNop())
	t.Cleanup(registry.Close)
	return registry
}

func TestAuth(t *testing.T) {
	var got uuid.UUID
	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = GetUserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderUserID, "12")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid", func(t *testing.T) {
		userID := uuid.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderUserID, userID.String())
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, userID, got)
	})
}

func TestSession_RegisteredResolver(t *testing.T) {
	registry := newRegistry(t)
	sessionID, resolver := registry.Create()

	var seen *availability.Resolver
	var seenID uuid.UUID
	handler := Session(registry)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetResolver(r.Context())
		seenID = GetSessionID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderSessionID, sessionID.String())
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Same(t, resolver, seen)
	assert.Equal(t, sessionID, seenID)
}

func TestSession_EphemeralResolverIsClosed(t *testing.T) {
	registry := newRegistry(t)

	var seen *availability.Resolver
	handler := Session(registry)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetResolver(r.Context())
		assert.Equal(t, uuid.Nil, GetSessionID(r.Context()))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotNil(t, seen)
	_, err := seen.Load(context.Background(), uuid.New())
	assert.ErrorIs(t, err, availability.ErrResolverClosed)
	assert.Equal(t, 0, registry.Len())
}

func TestSession_Errors(t *testing.T) {
	registry := newRegistry(t)
	handler := Session(registry)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not be reached")
	}))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "malformed", header: "abc", want: http.StatusBadRequest},
		{name: "unknown", header: uuid.NewString(), want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(HeaderSessionID, tt.header)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

type httpObservation struct {
	method, route string
	status        int
}

type recordingMetrics struct {
	mu  sync.Mutex
	obs []httpObservation
}

func (m *recordingMetrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.obs = append(m.obs, httpObservation{method: method, route: route, status: status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	metrics := &recordingMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(metrics))
	r.HandleFunc("/api/v1/turns/{turnId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}).Methods(http.MethodGet)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/turns/"+uuid.NewString(), nil))

	require.Len(t, metrics.obs, 1)
	assert.Equal(t, httpObservation{method: http.MethodGet, route: "/api/v1/turns/{turnId}", status: http.StatusTeapot}, metrics.obs[0])
}
