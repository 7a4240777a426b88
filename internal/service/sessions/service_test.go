package sessions

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospital/turns-service/internal/availability"
	"github.com/hospital/turns-service/internal/domain"
	"github.com/hospital/turns-service/pkg/logger"
)

type emptyCatalog struct{}

func (emptyCatalog) GetAvailableWindows(ctx context.Context, specialtyID uuid.UUID, date *time.Time) ([]domain.ScheduleWindow, error) {
	return nil, nil
}

type gaugeMetrics struct {
	mu   sync.Mutex
	last int
}

func (m *gaugeMetrics) SetResolverSessions(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = n
}

func (m *gaugeMetrics) value() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

func newTestService(size int, ttl time.Duration, metrics Metrics) *Service {
	factory := func() *availability.Resolver {
		return availability.NewResolver(emptyCatalog{}, nil, nil, logger.NewNop(), availability.Options{Location: time.UTC})
	}
	return NewService(size, ttl, factory, metrics, logger.NewNop())
}

func TestService_CreateGetDelete(t *testing.T) {
	metrics := &gaugeMetrics{}
	svc := newTestService(10, time.Hour, metrics)

	id, resolver := svc.Create()
	require.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, 1, metrics.value())

	got, err := svc.Get(id)
	require.NoError(t, err)
	assert.Same(t, resolver, got)

	_, parsed, err := svc.Parse(id.String())
	require.NoError(t, err)
	assert.Same(t, resolver, parsed)

	require.NoError(t, svc.Delete(id))
	assert.Equal(t, 0, metrics.value())

	_, err = svc.Get(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, svc.Delete(id), ErrSessionNotFound)

	_, err = resolver.Load(context.Background(), uuid.New())
	assert.ErrorIs(t, err, availability.ErrResolverClosed, "deleting a session closes its resolver")
}

func TestService_SessionsAreIsolated(t *testing.T) {
	svc := newTestService(10, time.Hour, nil)

	_, first := svc.Create()
	_, second := svc.Create()

	assert.NotSame(t, first, second)
	assert.Equal(t, 2, svc.Len())
}

func TestService_EvictsOldestWhenFull(t *testing.T) {
	metrics := &gaugeMetrics{}
	svc := newTestService(2, time.Hour, metrics)

	oldest, oldestResolver := svc.Create()
	svc.Create()
	svc.Create()

	assert.Equal(t, 2, svc.Len())
	assert.Equal(t, 2, metrics.value())
	_, err := svc.Get(oldest)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = oldestResolver.Load(context.Background(), uuid.New())
	assert.ErrorIs(t, err, availability.ErrResolverClosed)
}

func TestService_Expires(t *testing.T) {
	svc := newTestService(10, 20*time.Millisecond, nil)

	id, _ := svc.Create()

	assert.Eventually(t, func() bool {
		_, err := svc.Get(id)
		return err != nil
	}, time.Second, 10*time.Millisecond)
}

func TestService_Parse(t *testing.T) {
	svc := newTestService(10, time.Hour, nil)

	_, _, err := svc.Parse("not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidSessionID)

	_, _, err = svc.Parse(uuid.NewString())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_Close(t *testing.T) {
	metrics := &gaugeMetrics{}
	svc := newTestService(10, time.Hour, metrics)
	svc.Create()
	svc.Create()

	svc.Close()

	assert.Equal(t, 0, svc.Len())
	assert.Equal(t, 0, metrics.value())
}

func TestService_Ephemeral(t *testing.T) {
	svc := newTestService(10, time.Hour, nil)

	resolver := svc.Ephemeral()
	defer resolver.Close()

	assert.NotNil(t, resolver)
	assert.Equal(t, 0, svc.Len())
}
