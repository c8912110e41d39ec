package shell

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/parkmate/parkmate-client/internal/core/domain"
	"github.com/parkmate/parkmate-client/internal/core/ports"
)

type pageData struct {
	Error        string
	Lots         []domain.ParkingLot
	Reservations []domain.Reservation
	Dashboard    *domain.DashboardData
}

// home sends visitors to the view matching their session: login when signed
// out, otherwise the role-appropriate dashboard.
func (s *Shell) home(c echo.Context) error {
	ctx := c.Request().Context()
	if !s.session.IsAuthenticated(ctx) {
		return c.Redirect(http.StatusFound, domain.RouteLogin)
	}
	if s.session.IsAdmin(ctx) {
		return c.Redirect(http.StatusFound, domain.RouteAdminDashboard)
	}
	return c.Redirect(http.StatusFound, domain.RouteUserDashboard)
}

func (s *Shell) loginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login", pageData{Error: c.QueryParam("error")})
}

func (s *Shell) login(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := s.auth.Login(ctx, c.FormValue("username"), c.FormValue("password"))
	if err != nil {
		return c.Render(http.StatusUnauthorized, "login", pageData{Error: domain.PresentError(err)})
	}

	if user != nil && user.IsAdmin {
		return c.Redirect(http.StatusFound, domain.RouteAdminDashboard)
	}
	return c.Redirect(http.StatusFound, domain.RouteUserDashboard)
}

func (s *Shell) registerPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register", pageData{})
}

func (s *Shell) register(c echo.Context) error {
	input := ports.RegisterInput{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
		Email:    c.FormValue("email"),
		Phone:    c.FormValue("phone"),
	}

	if _, err := s.auth.Register(c.Request().Context(), input); err != nil {
		return c.Render(http.StatusBadRequest, "register", pageData{Error: domain.PresentError(err)})
	}

	// Registration does not sign the user in; send them to the login view.
	return c.Redirect(http.StatusFound, domain.RouteLogin)
}

func (s *Shell) logout(c echo.Context) error {
	s.auth.Logout(c.Request().Context())
	return c.Redirect(http.StatusFound, domain.RouteLogin)
}

func (s *Shell) adminDashboard(c echo.Context) error {
	ctx := c.Request().Context()
	data := pageData{}

	lots, err := s.admin.ParkingLots(ctx)
	if err != nil {
		return s.renderError(c, "admin", err)
	}
	data.Lots = lots

	dashboard, err := s.admin.DashboardData(ctx)
	if err != nil {
		// Analytics being down should not blank the whole dashboard.
		s.logger.Warn().Err(err).Msg("dashboard data unavailable")
	} else {
		data.Dashboard = dashboard
	}

	return c.Render(http.StatusOK, "admin", data)
}

func (s *Shell) userDashboard(c echo.Context) error {
	ctx := c.Request().Context()
	data := pageData{Error: c.QueryParam("error")}

	lots, err := s.user.ParkingLots(ctx)
	if err != nil {
		return s.renderError(c, "dashboard", err)
	}
	data.Lots = lots

	reservations, err := s.user.Reservations(ctx)
	if err != nil {
		return s.renderError(c, "dashboard", err)
	}
	data.Reservations = reservations

	return c.Render(http.StatusOK, "dashboard", data)
}

func (s *Shell) reserveSpot(c echo.Context) error {
	lotID, err := strconv.Atoi(c.FormValue("lot_id"))
	if err != nil {
		return c.Redirect(http.StatusFound, domain.RouteUserDashboard+"?error=invalid+lot")
	}

	if _, err := s.user.ReserveSpot(c.Request().Context(), lotID); err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return c.Redirect(http.StatusFound, domain.RouteLogin)
		}
		return c.Redirect(http.StatusFound, domain.RouteUserDashboard+"?error="+presentQuery(err))
	}
	return c.Redirect(http.StatusFound, domain.RouteUserDashboard)
}

func presentQuery(err error) string {
	return url.QueryEscape(domain.PresentError(err))
}

// renderError maps an API failure onto the page being rendered. An expired
// session redirects to login (the client already cleared local state); other
// failures surface as a translated message.
func (s *Shell) renderError(c echo.Context, page string, err error) error {
	if errors.Is(err, domain.ErrSessionExpired) {
		return c.Redirect(http.StatusFound, domain.RouteLogin)
	}

	var apiErr *domain.APIError
	status := http.StatusBadGateway
	if errors.As(err, &apiErr) {
		status = apiErr.StatusCode
	}
	return c.Render(status, page, pageData{Error: domain.PresentError(err)})
}
