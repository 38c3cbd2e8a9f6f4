package middleware

import (
	"context"
	"net/http"

	"github.com/mmeshcher/workshop-system/internal/model"
)

type contextKey string

const userKey contextKey = "user"

// SessionSource resolves the current session identity. Implemented by the
// auth store, which keeps the session in durable storage.
type SessionSource interface {
	CurrentUser(ctx context.Context) *model.User
}

// AuthMiddleware gates routes on the active session and its permission set.
type AuthMiddleware struct {
	sessions SessionSource
}

// NewAuthMiddleware creates middleware backed by the given session source.
func NewAuthMiddleware(sessions SessionSource) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// RequireAuth rejects requests without an active session and puts the
// session user into the request context.
func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := a.sessions.CurrentUser(r.Context())
		if user == nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePermission rejects requests whose session user does not hold the
// permission string. It implies RequireAuth.
func (a *AuthMiddleware) RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUserFromContext(r.Context())
			if !ok {
				user = a.sessions.CurrentUser(r.Context())
			}
			if user == nil {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			if !user.HasPermission(permission) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext extracts the session user from the request context.
func GetUserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok
}
