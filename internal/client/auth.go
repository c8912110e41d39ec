package client

import (
	"context"
	"net/http"

	"github.com/parkmate/parkmate-client/internal/client/metrics"
	"github.com/parkmate/parkmate-client/internal/core/domain"
	"github.com/parkmate/parkmate-client/internal/core/ports"
)

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken  string              `json:"access_token"`
	RefreshToken string              `json:"refresh_token"`
	User         *domain.UserProfile `json:"user"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
}

type verifyRequest struct {
	AccessToken string `json:"access_token"`
}

type verifyResponse struct {
	Valid bool `json:"valid"`
}

// Login authenticates against the API and stores both tokens plus the
// returned profile. The profile is cached wholesale; nothing is merged.
func (c *Client) Login(ctx context.Context, username, password string) (*domain.UserProfile, error) {
	req := credentialsRequest{Username: username, Password: password}
	if err := c.validate.Validate(req); err != nil {
		return nil, err
	}

	var res loginResponse
	if err := c.bare(ctx, http.MethodPost, "/login", req, &res, "Login failed"); err != nil {
		return nil, err
	}

	if err := c.session.SetTokens(ctx, res.AccessToken, res.RefreshToken); err != nil {
		return nil, err
	}
	if err := c.session.SetUser(ctx, res.User); err != nil {
		return nil, err
	}

	c.logger.Info().Str("username", username).Msg("logged in")
	return res.User, nil
}

// Register creates an account. No local state changes: the caller still has
// to log in afterwards.
func (c *Client) Register(ctx context.Context, input ports.RegisterInput) (*ports.RegisterResult, error) {
	if err := c.validate.Validate(input); err != nil {
		return nil, err
	}

	var res ports.RegisterResult
	if err := c.bare(ctx, http.MethodPost, "/register", input, &res, "Registration failed"); err != nil {
		return nil, err
	}
	return &res, nil
}

// Logout fires a best-effort logout call at the server and then clears the
// local session unconditionally. Network failures are logged and swallowed:
// logging out must work offline.
func (c *Client) Logout(ctx context.Context) {
	token := c.session.GetAccessToken(ctx)
	if token != "" {
		resp, err := c.send(ctx, http.MethodPost, "/logout", nil, token)
		if err != nil {
			c.logger.Warn().Err(err).Msg("server-side logout failed")
		} else {
			drain(resp)
		}
	}

	if err := c.session.ClearTokens(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("clearing local session failed")
	}
}

// RefreshAccessToken exchanges the stored refresh token for a new access
// token. It returns false, never an error: a failed refresh simply means the
// session cannot be extended. The refresh token itself is left untouched;
// refresh responses do not rotate it.
func (c *Client) RefreshAccessToken(ctx context.Context) bool {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()
	return c.refreshLocked(ctx)
}

func (c *Client) refreshLocked(ctx context.Context) bool {
	refreshToken := c.session.GetRefreshToken(ctx)
	if refreshToken == "" {
		return false
	}

	var res refreshResponse
	err := c.bare(ctx, http.MethodPost, "/refresh-token", refreshRequest{RefreshToken: refreshToken}, &res, "")
	if err != nil {
		metrics.TokenRefreshTotal.WithLabelValues("failure").Inc()
		c.logger.Debug().Err(err).Msg("token refresh failed")
		return false
	}

	if err := c.session.SetTokens(ctx, res.AccessToken, ""); err != nil {
		metrics.TokenRefreshTotal.WithLabelValues("failure").Inc()
		c.logger.Warn().Err(err).Msg("storing refreshed token failed")
		return false
	}

	metrics.TokenRefreshTotal.WithLabelValues("success").Inc()
	return true
}

// VerifyToken asks the server whether the stored access token is valid.
// Returns false when no token is stored or the call fails.
func (c *Client) VerifyToken(ctx context.Context) bool {
	token := c.session.GetAccessToken(ctx)
	if token == "" {
		return false
	}

	var res verifyResponse
	if err := c.bare(ctx, http.MethodPost, "/verify-token", verifyRequest{AccessToken: token}, &res, ""); err != nil {
		return false
	}
	return res.Valid
}
