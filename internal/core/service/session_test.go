package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/parkmate/parkmate-client/internal/core/domain"
	"github.com/parkmate/parkmate-client/internal/infrastructure/storage"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(storage.NewMemoryStore(), zerolog.Nop())
}

// signedToken builds a real HS256 token; the session only inspects claims,
// so the signing key is irrelevant.
func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestSession_IsAuthenticated(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name  string
		token string
		want  bool
	}{
		{"no token", "", false},
		{"future exp", "", true},
		{"past exp", "", false},
		{"no exp claim", "", false},
		{"malformed token", "not-a-jwt", false},
		{"garbage segments", "a.b.c", false},
	}
	cases[1].token = signedToken(t, jwt.MapClaims{"sub": "1", "exp": time.Now().Add(time.Hour).Unix()})
	cases[2].token = signedToken(t, jwt.MapClaims{"sub": "1", "exp": time.Now().Add(-time.Hour).Unix()})
	cases[3].token = signedToken(t, jwt.MapClaims{"sub": "1"})

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t)
			if tc.token != "" {
				if err := s.SetTokens(ctx, tc.token, ""); err != nil {
					t.Fatalf("SetTokens: %v", err)
				}
			}
			if got := s.IsAuthenticated(ctx); got != tc.want {
				t.Fatalf("IsAuthenticated = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSession_IsAdmin_RequiresBooleanTrue(t *testing.T) {
	ctx := context.Background()

	t.Run("no cached user", func(t *testing.T) {
		s := newTestSession(t)
		if s.IsAdmin(ctx) {
			t.Fatalf("IsAdmin true with no cached user")
		}
	})

	t.Run("admin user", func(t *testing.T) {
		s := newTestSession(t)
		if err := s.SetUser(ctx, &domain.UserProfile{ID: 1, Username: "root", IsAdmin: true}); err != nil {
			t.Fatalf("SetUser: %v", err)
		}
		if !s.IsAdmin(ctx) {
			t.Fatalf("IsAdmin false for admin user")
		}
	})

	t.Run("string true must not count", func(t *testing.T) {
		store := storage.NewMemoryStore()
		s := NewSession(store, zerolog.Nop())
		// Write the raw JSON an untrusted source might have produced.
		if err := store.Set(ctx, domain.KeyUser, `{"id":1,"username":"x","is_admin":"true"}`); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if s.IsAdmin(ctx) {
			t.Fatalf(`IsAdmin true for is_admin:"true" string`)
		}
	})
}

func TestSession_GetUser_MalformedReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	s := NewSession(store, zerolog.Nop())

	if err := store.Set(ctx, domain.KeyUser, "{not json"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if user := s.GetUser(ctx); user != nil {
		t.Fatalf("expected nil user, got %+v", user)
	}
}

func TestSession_SetTokens_PreservesRefreshToken(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t)

	if err := s.SetTokens(ctx, "access1", "refresh1"); err != nil {
		t.Fatalf("SetTokens: %v", err)
	}
	// Refresh-only responses carry no refresh token.
	if err := s.SetTokens(ctx, "access2", ""); err != nil {
		t.Fatalf("SetTokens: %v", err)
	}

	if got := s.GetAccessToken(ctx); got != "access2" {
		t.Fatalf("access token = %q, want access2", got)
	}
	if got := s.GetRefreshToken(ctx); got != "refresh1" {
		t.Fatalf("refresh token = %q, want refresh1", got)
	}
}

func TestSession_ClearTokens_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t)

	if err := s.SetTokens(ctx, "a", "r"); err != nil {
		t.Fatalf("SetTokens: %v", err)
	}
	if err := s.SetUser(ctx, &domain.UserProfile{ID: 1, Username: "alice"}); err != nil {
		t.Fatalf("SetUser: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := s.ClearTokens(ctx); err != nil {
			t.Fatalf("ClearTokens #%d: %v", i+1, err)
		}
	}

	if s.GetAccessToken(ctx) != "" || s.GetRefreshToken(ctx) != "" || s.GetUser(ctx) != nil {
		t.Fatalf("session not empty after ClearTokens")
	}
}
