package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/parkmate/parkmate-client/internal/core/domain"
	"github.com/parkmate/parkmate-client/internal/core/ports"
)

// Session manages the persisted tokens and cached profile on top of an
// injected key-value store. Lookups treat any storage failure or malformed
// value as "absent" so auth checks can never error, only answer no.
type Session struct {
	store  ports.KeyValueStore
	parser *jwt.Parser
	logger zerolog.Logger
}

func NewSession(store ports.KeyValueStore, logger zerolog.Logger) *Session {
	return &Session{
		store:  store,
		parser: jwt.NewParser(),
		logger: logger,
	}
}

func (s *Session) GetAccessToken(ctx context.Context) string {
	return s.get(ctx, domain.KeyAccessToken)
}

func (s *Session) GetRefreshToken(ctx context.Context) string {
	return s.get(ctx, domain.KeyRefreshToken)
}

// SetTokens overwrites the access token. The refresh token is only touched
// when non-empty: refresh responses carry a new access token alone, and the
// stored refresh token must survive them.
func (s *Session) SetTokens(ctx context.Context, accessToken, refreshToken string) error {
	if err := s.store.Set(ctx, domain.KeyAccessToken, accessToken); err != nil {
		return err
	}
	if refreshToken != "" {
		return s.store.Set(ctx, domain.KeyRefreshToken, refreshToken)
	}
	return nil
}

// ClearTokens removes both tokens and the cached user. Deletes are
// independent and idempotent; a failure on one does not stop the others.
func (s *Session) ClearTokens(ctx context.Context) error {
	var firstErr error
	for _, key := range []string{domain.KeyAccessToken, domain.KeyRefreshToken, domain.KeyUser} {
		if err := s.store.Delete(ctx, key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// IsAuthenticated reports whether a stored access token exists and its exp
// claim lies in the future. The token is decoded without signature
// verification — validation is the server's job; the client only needs the
// expiry. Malformed tokens read as unauthenticated.
func (s *Session) IsAuthenticated(ctx context.Context) bool {
	token := s.GetAccessToken(ctx)
	if token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := s.parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.After(time.Now())
}

// IsAdmin is true iff a cached profile exists and its admin flag is boolean
// true. A profile whose is_admin field is not a JSON boolean fails to decode
// and therefore reads as non-admin.
func (s *Session) IsAdmin(ctx context.Context) bool {
	user := s.GetUser(ctx)
	return user != nil && user.IsAdmin
}

func (s *Session) GetUser(ctx context.Context) *domain.UserProfile {
	raw := s.get(ctx, domain.KeyUser)
	if raw == "" {
		return nil
	}

	var user domain.UserProfile
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Debug().Err(err).Msg("cached user profile is malformed")
		return nil
	}
	return &user
}

func (s *Session) SetUser(ctx context.Context, user *domain.UserProfile) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, domain.KeyUser, string(data))
}

func (s *Session) get(ctx context.Context, key string) string {
	v, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("session store read failed")
		return ""
	}
	if !ok {
		return ""
	}
	return v
}
