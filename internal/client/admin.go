package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/parkmate/parkmate-client/internal/core/domain"
	"github.com/parkmate/parkmate-client/internal/core/ports"
)

// AdminClient exposes the admin-only endpoints. All calls require an admin
// session; the server enforces that and the wrapper surfaces its 403s.
type AdminClient struct {
	c *Client
}

// Admin returns the admin façade over this client's session.
func (c *Client) Admin() *AdminClient { return &AdminClient{c: c} }

type parkingLotsResponse struct {
	ParkingLots []domain.ParkingLot `json:"parking_lots"`
}

type parkingSpotsResponse struct {
	ParkingSpots []domain.ParkingSpot `json:"parking_spots"`
}

type usersResponse struct {
	Users []domain.UserProfile `json:"users"`
}

func (a *AdminClient) ParkingLots(ctx context.Context) ([]domain.ParkingLot, error) {
	var res parkingLotsResponse
	if err := a.c.do(ctx, http.MethodGet, "/admin/parking-lots", nil, &res); err != nil {
		return nil, err
	}
	return res.ParkingLots, nil
}

func (a *AdminClient) CreateParkingLot(ctx context.Context, input ports.LotInput) error {
	if err := a.c.validate.Validate(input); err != nil {
		return err
	}
	return a.c.do(ctx, http.MethodPost, "/admin/parking-lots", input, nil)
}

func (a *AdminClient) UpdateParkingLot(ctx context.Context, lotID int, input ports.LotInput) error {
	if err := a.c.validate.Validate(input); err != nil {
		return err
	}
	return a.c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/parking-lots/%d", lotID), input, nil)
}

func (a *AdminClient) DeleteParkingLot(ctx context.Context, lotID int) error {
	return a.c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/parking-lots/%d", lotID), nil, nil)
}

// ParkingSpots lists spots across every lot; pass lotID > 0 to narrow the
// listing to a single lot.
func (a *AdminClient) ParkingSpots(ctx context.Context, lotID int) ([]domain.ParkingSpot, error) {
	path := "/admin/parking-spots"
	if lotID > 0 {
		path = fmt.Sprintf("%s?lot_id=%d", path, lotID)
	}

	var res parkingSpotsResponse
	if err := a.c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return res.ParkingSpots, nil
}

// FreeParkingSpot force-releases an occupied spot.
func (a *AdminClient) FreeParkingSpot(ctx context.Context, spotID int) error {
	return a.c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/parking-spots/%d/free", spotID), nil, nil)
}

func (a *AdminClient) Users(ctx context.Context) ([]domain.UserProfile, error) {
	var res usersResponse
	if err := a.c.do(ctx, http.MethodGet, "/admin/users", nil, &res); err != nil {
		return nil, err
	}
	return res.Users, nil
}

func (a *AdminClient) DeleteUser(ctx context.Context, userID int) error {
	return a.c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%d", userID), nil, nil)
}

// Analytics returns the raw analytics payload. The server owns the shape;
// the client passes it through untyped.
func (a *AdminClient) Analytics(ctx context.Context) (map[string]any, error) {
	var res map[string]any
	if err := a.c.do(ctx, http.MethodGet, "/admin/analytics", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (a *AdminClient) DashboardData(ctx context.Context) (*domain.DashboardData, error) {
	var res domain.DashboardData
	if err := a.c.do(ctx, http.MethodGet, "/admin/analytics/dashboard-data", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
