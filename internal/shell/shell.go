// Package shell is the local web shell around the ParkMate client: it maps
// the classic routes (/, /login, /register, /admin, /dashboard) to minimal
// HTML views, applies the route guards as HTTP redirects, and exposes health
// and metrics endpoints.
package shell

import (
	"context"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/parkmate/parkmate-client/internal/core/domain"
	"github.com/parkmate/parkmate-client/internal/core/ports"
	"github.com/parkmate/parkmate-client/internal/core/service"
)

// Shell wires the API façades and the session into an Echo application.
type Shell struct {
	auth    ports.AuthAPI
	admin   ports.AdminAPI
	user    ports.UserAPI
	session ports.SessionStore
	logger  zerolog.Logger
}

func New(auth ports.AuthAPI, admin ports.AdminAPI, user ports.UserAPI, session ports.SessionStore, logger zerolog.Logger) *Shell {
	return &Shell{
		auth:    auth,
		admin:   admin,
		user:    user,
		session: session,
		logger:  logger,
	}
}

// Router builds the Echo instance with all routes registered.
func (s *Shell) Router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = newRenderer()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	// Shell metrics live in their own registry so building several routers
	// (tests) cannot collide; /metrics still gathers the client's default
	// registry alongside.
	promReg := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "parkmate_shell",
		Registerer: promReg,
	}))

	// --- Guards as middleware ---
	anonOnly := s.guard(service.RedirectIfAuthenticated)
	adminOnly := s.guard(service.RequireAdmin)
	userOnly := s.guard(service.RequireUser)

	// --- Views ---
	e.GET(domain.RouteHome, s.home)
	e.GET(domain.RouteLogin, s.loginPage, anonOnly)
	e.POST(domain.RouteLogin, s.login, anonOnly)
	e.GET(domain.RouteRegister, s.registerPage, anonOnly)
	e.POST(domain.RouteRegister, s.register, anonOnly)
	e.POST("/logout", s.logout)
	e.GET(domain.RouteAdminDashboard, s.adminDashboard, adminOnly)
	e.GET(domain.RouteUserDashboard, s.userDashboard, userOnly)
	e.POST("/reserve", s.reserveSpot, userOnly)

	// --- Operational endpoints ---
	e.GET("/healthz", s.healthz)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{promReg, prometheus.DefaultGatherer},
	}))

	return e
}

// guard adapts a pure navigation guard into Echo middleware: a redirect
// decision short-circuits the handler chain with a 302.
func (s *Shell) guard(g func(ctx context.Context, store ports.SessionStore) domain.Decision) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision := g(c.Request().Context(), s.session)
			if !decision.Proceed() {
				return c.Redirect(http.StatusFound, decision.Redirect)
			}
			return next(c)
		}
	}
}

func (s *Shell) healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
