package sessions

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/hospital/turns-service/internal/availability"
)

// Service реестр резолверов по сессиям.
// Каждая сессия владеет своим резолвером; при удалении, вытеснении или истечении TTL резолвер закрывается.
type Service struct {
	lru     *expirable.LRU[uuid.UUID, *availability.Resolver]
	factory ResolverFactory
	metrics Metrics
	logger  Logger
	live    atomic.Int64
}

// NewService создает реестр на size сессий; ttl отсчитывается от создания сессии
func NewService(size int, ttl time.Duration, factory ResolverFactory, metrics Metrics, logger Logger) *Service {
	if metrics == nil {
		metrics = noopMetrics{}
	}

	s := &Service{
		factory: factory,
		metrics: metrics,
		logger:  logger,
	}
	s.lru = expirable.NewLRU[uuid.UUID, *availability.Resolver](size, s.onEvict, ttl)
	return s
}

// onEvict вызывается под блокировкой LRU: обращаться к s.lru здесь нельзя
func (s *Service) onEvict(id uuid.UUID, resolver *availability.Resolver) {
	resolver.Close()
	s.metrics.SetResolverSessions(int(s.live.Add(-1)))
	s.logger.Info("Sessions: session=%s closed", id)
}

// Create открывает новую сессию
func (s *Service) Create() (uuid.UUID, *availability.Resolver) {
	id := uuid.New()
	resolver := s.factory()

	s.live.Add(1)
	s.lru.Add(id, resolver)
	s.metrics.SetResolverSessions(int(s.live.Load()))

	s.logger.Info("Sessions: session=%s opened", id)
	return id, resolver
}

// Get возвращает резолвер сессии
func (s *Service) Get(id uuid.UUID) (*availability.Resolver, error) {
	resolver, ok := s.lru.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return resolver, nil
}

// Parse разбирает идентификатор сессии из строки и возвращает ее резолвер
func (s *Service) Parse(raw string) (uuid.UUID, *availability.Resolver, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("%w: %q", ErrInvalidSessionID, raw)
	}
	resolver, err := s.Get(id)
	if err != nil {
		return uuid.Nil, nil, err
	}
	return id, resolver, nil
}

// Delete закрывает сессию
func (s *Service) Delete(id uuid.UUID) error {
	if !s.lru.Remove(id) {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return nil
}

// Ephemeral резолвер на один запрос, вне реестра. Вызывающий обязан закрыть его.
func (s *Service) Ephemeral() *availability.Resolver {
	return s.factory()
}

// Len количество живых сессий
func (s *Service) Len() int {
	return s.lru.Len()
}

// Close закрывает все сессии
func (s *Service) Close() {
	s.lru.Purge()
}
