package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/MediCare-Gateway/internal/api/handlers"
	"github.com/m04kA/MediCare-Gateway/internal/domain"
	"github.com/m04kA/MediCare-Gateway/internal/service/auth"
)

const (
	bearerPrefix = "Bearer "

	msgForbiddenRole = "this action is not available for your role"
)

// Auth кладёт сессию из "Authorization: Bearer <sessionId>" в контекст запроса
func Auth(sessions SessionResolver, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := bearerToken(r)
			if !ok {
				handlers.RespondUnauthorized(w)
				return
			}

			sess, err := sessions.Current(r.Context(), id)
			if err != nil {
				if errors.Is(err, auth.ErrUnauthenticated) {
					handlers.RespondUnauthorized(w)
					return
				}
				logger.Error("%s %s - Failed to resolve session: %v", r.Method, r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(domain.ContextWithSession(r.Context(), sess)))
		})
	}
}

// RequireRole пропускает только сессии с одной из ролей; ставится после Auth
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := domain.SessionFromContext(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w)
				return
			}
			if !sess.HasRole(roles...) {
				handlers.RespondForbidden(w, msgForbiddenRole)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
