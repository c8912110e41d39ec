package shell

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/parkmate/parkmate-client/internal/core/domain"
	"github.com/parkmate/parkmate-client/internal/core/ports"
	"github.com/parkmate/parkmate-client/internal/core/service"
	"github.com/parkmate/parkmate-client/internal/infrastructure/storage"
)

// stubAPI satisfies the auth, admin, and user façade ports with canned data.
type stubAPI struct {
	loginUser *domain.UserProfile
	loginErr  error
}

func (s *stubAPI) Login(context.Context, string, string) (*domain.UserProfile, error) {
	return s.loginUser, s.loginErr
}
func (s *stubAPI) Register(context.Context, ports.RegisterInput) (*ports.RegisterResult, error) {
	return &ports.RegisterResult{Message: "ok", UserID: 1}, nil
}
func (s *stubAPI) Logout(context.Context)                  {}
func (s *stubAPI) RefreshAccessToken(context.Context) bool { return false }
func (s *stubAPI) VerifyToken(context.Context) bool        { return false }

func (s *stubAPI) ParkingLots(context.Context) ([]domain.ParkingLot, error) { return nil, nil }
func (s *stubAPI) CreateParkingLot(context.Context, ports.LotInput) error   { return nil }
func (s *stubAPI) UpdateParkingLot(context.Context, int, ports.LotInput) error {
	return nil
}
func (s *stubAPI) DeleteParkingLot(context.Context, int) error { return nil }
func (s *stubAPI) ParkingSpots(context.Context, int) ([]domain.ParkingSpot, error) {
	return nil, nil
}
func (s *stubAPI) FreeParkingSpot(context.Context, int) error { return nil }
func (s *stubAPI) Users(context.Context) ([]domain.UserProfile, error) {
	return nil, nil
}
func (s *stubAPI) DeleteUser(context.Context, int) error { return nil }
func (s *stubAPI) Analytics(context.Context) (map[string]any, error) {
	return map[string]any{}, nil
}
func (s *stubAPI) DashboardData(context.Context) (*domain.DashboardData, error) {
	return &domain.DashboardData{}, nil
}

func (s *stubAPI) ParkingLotSpots(context.Context, int) ([]domain.ParkingSpot, error) {
	return nil, nil
}
func (s *stubAPI) ReserveSpot(context.Context, int) (*domain.Reservation, error) {
	return &domain.Reservation{ID: 1}, nil
}
func (s *stubAPI) Reservations(context.Context) ([]domain.Reservation, error) { return nil, nil }
func (s *stubAPI) History(context.Context) ([]domain.Reservation, error)      { return nil, nil }
func (s *stubAPI) Profile(context.Context) (*domain.UserProfile, error)       { return nil, nil }
func (s *stubAPI) UpdateProfile(context.Context, ports.ProfileInput) (*domain.UserProfile, error) {
	return nil, nil
}
func (s *stubAPI) ExportCSV(context.Context) (string, error) { return "started", nil }

func newTestShell(t *testing.T, session *service.Session) *Shell {
	t.Helper()
	api := &stubAPI{}
	return New(api, api, api, session, zerolog.Nop())
}

func seedSession(t *testing.T, session *service.Session, admin bool) {
	t.Helper()
	ctx := context.Background()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if err := session.SetTokens(ctx, token, "refresh"); err != nil {
		t.Fatalf("SetTokens: %v", err)
	}
	if err := session.SetUser(ctx, &domain.UserProfile{ID: 1, Username: "alice", IsAdmin: admin}); err != nil {
		t.Fatalf("SetUser: %v", err)
	}
}

func TestShell_GuardRedirects(t *testing.T) {
	cases := []struct {
		name         string
		seed         func(*testing.T, *service.Session)
		path         string
		wantCode     int
		wantLocation string
	}{
		{"anon admin page", func(*testing.T, *service.Session) {}, domain.RouteAdminDashboard, http.StatusFound, domain.RouteLogin},
		{"anon user page", func(*testing.T, *service.Session) {}, domain.RouteUserDashboard, http.StatusFound, domain.RouteLogin},
		{"non-admin on admin page", func(t *testing.T, s *service.Session) { seedSession(t, s, false) }, domain.RouteAdminDashboard, http.StatusFound, domain.RouteUserDashboard},
		{"admin on user page", func(t *testing.T, s *service.Session) { seedSession(t, s, true) }, domain.RouteUserDashboard, http.StatusFound, domain.RouteAdminDashboard},
		{"authed user on login page", func(t *testing.T, s *service.Session) { seedSession(t, s, false) }, domain.RouteLogin, http.StatusFound, domain.RouteUserDashboard},
		{"anon login page renders", func(*testing.T, *service.Session) {}, domain.RouteLogin, http.StatusOK, ""},
		{"admin dashboard renders", func(t *testing.T, s *service.Session) { seedSession(t, s, true) }, domain.RouteAdminDashboard, http.StatusOK, ""},
		{"user dashboard renders", func(t *testing.T, s *service.Session) { seedSession(t, s, false) }, domain.RouteUserDashboard, http.StatusOK, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			session := service.NewSession(storage.NewMemoryStore(), zerolog.Nop())
			tc.seed(t, session)

			e := newTestShell(t, session).Router()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if tc.wantLocation != "" {
				if got := rec.Header().Get("Location"); got != tc.wantLocation {
					t.Fatalf("redirect to %q, want %q", got, tc.wantLocation)
				}
			}
		})
	}
}

func TestShell_HomeRoutesByRole(t *testing.T) {
	cases := []struct {
		name string
		seed func(*testing.T, *service.Session)
		want string
	}{
		{"anon", func(*testing.T, *service.Session) {}, domain.RouteLogin},
		{"user", func(t *testing.T, s *service.Session) { seedSession(t, s, false) }, domain.RouteUserDashboard},
		{"admin", func(t *testing.T, s *service.Session) { seedSession(t, s, true) }, domain.RouteAdminDashboard},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			session := service.NewSession(storage.NewMemoryStore(), zerolog.Nop())
			tc.seed(t, session)

			e := newTestShell(t, session).Router()
			req := httptest.NewRequest(http.MethodGet, domain.RouteHome, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != http.StatusFound {
				t.Fatalf("status = %d, want 302", rec.Code)
			}
			if got := rec.Header().Get("Location"); got != tc.want {
				t.Fatalf("redirect to %q, want %q", got, tc.want)
			}
		})
	}
}
