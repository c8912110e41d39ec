package ports

import (
	"context"

	"github.com/parkmate/parkmate-client/internal/core/domain"
)

// SessionStore is the token-manager contract: persisted access and refresh
// tokens plus the cached user profile.
//
// Lookup methods never fail loudly: a missing, malformed, or unreadable value
// reads as absent so that auth checks degrade to "unauthenticated" instead of
// erroring.
type SessionStore interface {
	GetAccessToken(ctx context.Context) string
	GetRefreshToken(ctx context.Context) string
	// SetTokens overwrites the access token; the refresh token is updated
	// only when non-empty, so refresh responses that omit it leave the
	// stored one in place.
	SetTokens(ctx context.Context, accessToken, refreshToken string) error
	ClearTokens(ctx context.Context) error

	IsAuthenticated(ctx context.Context) bool
	IsAdmin(ctx context.Context) bool

	GetUser(ctx context.Context) *domain.UserProfile
	SetUser(ctx context.Context, user *domain.UserProfile) error
}
