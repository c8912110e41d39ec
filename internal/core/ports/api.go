package ports

import (
	"context"

	"github.com/parkmate/parkmate-client/internal/core/domain"
)

// RegisterInput is the payload for account creation.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
}

// RegisterResult is the parsed register response. Registration does not log
// the user in; a separate Login call is required.
type RegisterResult struct {
	Message string `json:"message"`
	UserID  int    `json:"user_id"`
}

// LotInput carries the fields for creating or updating a parking lot.
type LotInput struct {
	PrimeLocationName string  `json:"prime_location_name"     validate:"required"`
	Price             float64 `json:"price"                   validate:"required,gt=0"`
	Address           string  `json:"address"                 validate:"required"`
	PinCode           string  `json:"pin_code"                validate:"required"`
	MaximumSpots      int     `json:"maximum_number_of_spots" validate:"required,gt=0"`
}

// ProfileInput carries the editable profile fields.
type ProfileInput struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone,omitempty"`
}

// AuthAPI covers the session lifecycle against the remote API.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*domain.UserProfile, error)
	Register(ctx context.Context, input RegisterInput) (*RegisterResult, error)
	Logout(ctx context.Context)
	RefreshAccessToken(ctx context.Context) bool
	VerifyToken(ctx context.Context) bool
}

// AdminAPI covers the admin-only endpoints.
type AdminAPI interface {
	ParkingLots(ctx context.Context) ([]domain.ParkingLot, error)
	CreateParkingLot(ctx context.Context, input LotInput) error
	UpdateParkingLot(ctx context.Context, lotID int, input LotInput) error
	DeleteParkingLot(ctx context.Context, lotID int) error
	// ParkingSpots lists spots across all lots; lotID > 0 narrows to one lot.
	ParkingSpots(ctx context.Context, lotID int) ([]domain.ParkingSpot, error)
	FreeParkingSpot(ctx context.Context, spotID int) error
	Users(ctx context.Context) ([]domain.UserProfile, error)
	DeleteUser(ctx context.Context, userID int) error
	Analytics(ctx context.Context) (map[string]any, error)
	DashboardData(ctx context.Context) (*domain.DashboardData, error)
}

// UserAPI covers the end-user endpoints.
type UserAPI interface {
	ParkingLots(ctx context.Context) ([]domain.ParkingLot, error)
	ParkingLotSpots(ctx context.Context, lotID int) ([]domain.ParkingSpot, error)
	ReserveSpot(ctx context.Context, lotID int) (*domain.Reservation, error)
	Reservations(ctx context.Context) ([]domain.Reservation, error)
	History(ctx context.Context) ([]domain.Reservation, error)
	Profile(ctx context.Context) (*domain.UserProfile, error)
	UpdateProfile(ctx context.Context, input ProfileInput) (*domain.UserProfile, error)
	ExportCSV(ctx context.Context) (string, error)
}
