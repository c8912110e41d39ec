package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/parkmate/parkmate-client/internal/core/domain"
	"github.com/parkmate/parkmate-client/internal/core/ports"
)

func authedSession(t *testing.T, admin bool) *Session {
	t.Helper()
	ctx := context.Background()
	s := newTestSession(t)

	token := signedToken(t, jwt.MapClaims{"sub": "1", "exp": time.Now().Add(time.Hour).Unix()})
	if err := s.SetTokens(ctx, token, "refresh"); err != nil {
		t.Fatalf("SetTokens: %v", err)
	}
	if err := s.SetUser(ctx, &domain.UserProfile{ID: 1, Username: "alice", IsAdmin: admin}); err != nil {
		t.Fatalf("SetUser: %v", err)
	}
	return s
}

func TestGuards(t *testing.T) {
	ctx := context.Background()

	anon := newTestSession(t)
	admin := authedSession(t, true)
	user := authedSession(t, false)

	cases := []struct {
		name    string
		guard   func(context.Context, ports.SessionStore) domain.Decision
		session ports.SessionStore
		want    domain.Decision
	}{
		{"requireAuth anon", RequireAuth, anon, domain.RedirectTo(domain.RouteLogin)},
		{"requireAuth user", RequireAuth, user, domain.Allow()},
		{"requireAuth admin", RequireAuth, admin, domain.Allow()},

		{"requireAdmin anon", RequireAdmin, anon, domain.RedirectTo(domain.RouteLogin)},
		{"requireAdmin admin", RequireAdmin, admin, domain.Allow()},
		// An authenticated non-admin belongs on their own dashboard, not login.
		{"requireAdmin user", RequireAdmin, user, domain.RedirectTo(domain.RouteUserDashboard)},

		{"requireUser anon", RequireUser, anon, domain.RedirectTo(domain.RouteLogin)},
		{"requireUser user", RequireUser, user, domain.Allow()},
		{"requireUser admin", RequireUser, admin, domain.RedirectTo(domain.RouteAdminDashboard)},

		{"redirectIfAuthenticated anon", RedirectIfAuthenticated, anon, domain.Allow()},
		{"redirectIfAuthenticated user", RedirectIfAuthenticated, user, domain.RedirectTo(domain.RouteUserDashboard)},
		{"redirectIfAuthenticated admin", RedirectIfAuthenticated, admin, domain.RedirectTo(domain.RouteAdminDashboard)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.guard(ctx, tc.session); got != tc.want {
				t.Fatalf("decision = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestGuards_Stateless(t *testing.T) {
	// Same store contents must yield the same decision on every call.
	ctx := context.Background()
	s := authedSession(t, false)

	first := RequireAdmin(ctx, s)
	for i := 0; i < 3; i++ {
		if got := RequireAdmin(ctx, s); got != first {
			t.Fatalf("decision changed between calls: %+v vs %+v", got, first)
		}
	}
}
