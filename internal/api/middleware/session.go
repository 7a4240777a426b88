package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/api/handlers"
	"github.com/hospital/turns-service/internal/availability"
	"github.com/hospital/turns-service/internal/service/sessions"
)

// HeaderSessionID заголовок с идентификатором сессии резолвера
const HeaderSessionID = "X-Session-ID"

const (
	msgInvalidSession = "некорректный ID сессии"
	msgSessionExpired = "сессия не найдена или истекла"
)

// SessionRegistry реестр резолверов по сессиям
type SessionRegistry interface {
	Parse(raw string) (uuid.UUID, *availability.Resolver, error)
	Ephemeral() *availability.Resolver
}

// Session кладет в контекст резолвер сессии из X-Session-ID.
// Без заголовка запрос обслуживает одноразовый резолвер, закрываемый по завершении запроса.
func Session(registry SessionRegistry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(HeaderSessionID)
			if raw == "" {
				resolver := registry.Ephemeral()
				defer resolver.Close()
				next.ServeHTTP(w, r.WithContext(WithResolver(r.Context(), uuid.Nil, resolver)))
				return
			}

			sessionID, resolver, err := registry.Parse(raw)
			if err != nil {
				switch {
				case errors.Is(err, sessions.ErrInvalidSessionID):
					handlers.RespondBadRequest(w, msgInvalidSession)
				default:
					handlers.RespondNotFound(w, msgSessionExpired)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithResolver(r.Context(), sessionID, resolver)))
		})
	}
}

// WithResolver кладет резолвер в контекст
func WithResolver(ctx context.Context, sessionID uuid.UUID, resolver *availability.Resolver) context.Context {
	ctx = context.WithValue(ctx, sessionKey, sessionID)
	return context.WithValue(ctx, resolverKey, resolver)
}

// GetResolver резолвер запроса
func GetResolver(ctx context.Context) (*availability.Resolver, bool) {
	resolver, ok := ctx.Value(resolverKey).(*availability.Resolver)
	return resolver, ok && resolver != nil
}

// GetSessionID сессия запроса; uuid.Nil для одноразового резолвера
func GetSessionID(ctx context.Context) uuid.UUID {
	sessionID, _ := ctx.Value(sessionKey).(uuid.UUID)
	return sessionID
}
