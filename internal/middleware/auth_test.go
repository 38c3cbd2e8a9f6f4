package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mmeshcher/workshop-system/internal/model"
)

type stubSessions struct {
	user *model.User
}

func (s *stubSessions) CurrentUser(_ context.Context) *model.User {
	return s.user
}

func okHandler(t *testing.T, wantUser string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUserFromContext(r.Context())
		if !ok {
			t.Errorf("no user in request context")
		} else if user.Username != wantUser {
			t.Errorf("context user = %q, want %q", user.Username, wantUser)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth(t *testing.T) {
	sessions := &stubSessions{}
	mw := NewAuthMiddleware(sessions)

	handler := mw.RequireAuth(okHandler(t, "admin"))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 without session", w.Code)
	}

	sessions.user = &model.User{ID: "1", Username: "admin"}

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with session", w.Code)
	}
}

func TestRequirePermission(t *testing.T) {
	orderRead := model.Permission(model.ResourceOrder, model.ActionRead)

	tests := []struct {
		name string
		user *model.User
		want int
	}{
		{name: "no session", user: nil, want: http.StatusUnauthorized},
		{
			name: "missing permission",
			user: &model.User{ID: "2", Username: "operator", Permissions: []string{"product:read"}},
			want: http.StatusForbidden,
		},
		{
			name: "granted",
			user: &model.User{ID: "2", Username: "operator", Permissions: []string{orderRead}},
			want: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := NewAuthMiddleware(&stubSessions{user: tt.user})
			handler := mw.RequirePermission(orderRead)(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
				}))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestRequirePermission_ExactStringMatch(t *testing.T) {
	// Holding order:read must not grant order:readall or order:r.
	mw := NewAuthMiddleware(&stubSessions{user: &model.User{
		ID:          "2",
		Username:    "operator",
		Permissions: []string{"order:read"},
	}})

	handler := mw.RequirePermission("order:readall")(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403 for near-match permission", w.Code)
	}
}
