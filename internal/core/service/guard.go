package service

import (
	"context"

	"github.com/parkmate/parkmate-client/internal/core/domain"
	"github.com/parkmate/parkmate-client/internal/core/ports"
)

// Route guards. Each is a pure function of the current session contents and
// returns a navigation decision; the caller (router, shell middleware, CLI)
// applies it. Guards hold no state of their own.

// RequireAuth lets authenticated sessions through and sends everyone else to
// the login view.
func RequireAuth(ctx context.Context, session ports.SessionStore) domain.Decision {
	if session.IsAuthenticated(ctx) {
		return domain.Allow()
	}
	return domain.RedirectTo(domain.RouteLogin)
}

// RequireAdmin lets authenticated admins through. Authenticated non-admins
// land on their own dashboard, not the login page.
func RequireAdmin(ctx context.Context, session ports.SessionStore) domain.Decision {
	switch {
	case session.IsAuthenticated(ctx) && session.IsAdmin(ctx):
		return domain.Allow()
	case session.IsAuthenticated(ctx):
		return domain.RedirectTo(domain.RouteUserDashboard)
	default:
		return domain.RedirectTo(domain.RouteLogin)
	}
}

// RequireUser is the non-admin mirror of RequireAdmin.
func RequireUser(ctx context.Context, session ports.SessionStore) domain.Decision {
	switch {
	case session.IsAuthenticated(ctx) && !session.IsAdmin(ctx):
		return domain.Allow()
	case session.IsAuthenticated(ctx):
		return domain.RedirectTo(domain.RouteAdminDashboard)
	default:
		return domain.RedirectTo(domain.RouteLogin)
	}
}

// RedirectIfAuthenticated keeps signed-in users off the login and register
// views by sending them to the dashboard matching their cached role.
func RedirectIfAuthenticated(ctx context.Context, session ports.SessionStore) domain.Decision {
	if !session.IsAuthenticated(ctx) {
		return domain.Allow()
	}
	if session.IsAdmin(ctx) {
		return domain.RedirectTo(domain.RouteAdminDashboard)
	}
	return domain.RedirectTo(domain.RouteUserDashboard)
}
