package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/parkmate/parkmate-client/internal/core/domain"
	"github.com/parkmate/parkmate-client/internal/core/ports"
)

// UserClient exposes the end-user endpoints.
type UserClient struct {
	c *Client
}

// User returns the end-user façade over this client's session.
func (c *Client) User() *UserClient { return &UserClient{c: c} }

type reserveSpotRequest struct {
	LotID int `json:"lot_id" validate:"required,gt=0"`
}

type reserveSpotResponse struct {
	Message     string              `json:"message"`
	Reservation *domain.Reservation `json:"reservation"`
}

type reservationsResponse struct {
	Reservations []domain.Reservation `json:"reservations"`
}

type historyResponse struct {
	History []domain.Reservation `json:"history"`
}

type profileResponse struct {
	User *domain.UserProfile `json:"user"`
}

type exportResponse struct {
	Message     string `json:"message"`
	ExportJobID int    `json:"export_job_id"`
	TaskID      string `json:"task_id"`
}

// ParkingLots lists lots that still have available spots.
func (u *UserClient) ParkingLots(ctx context.Context) ([]domain.ParkingLot, error) {
	var res parkingLotsResponse
	if err := u.c.do(ctx, http.MethodGet, "/parking-lots", nil, &res); err != nil {
		return nil, err
	}
	return res.ParkingLots, nil
}

func (u *UserClient) ParkingLotSpots(ctx context.Context, lotID int) ([]domain.ParkingSpot, error) {
	var res parkingSpotsResponse
	if err := u.c.do(ctx, http.MethodGet, fmt.Sprintf("/parking-lots/%d/spots", lotID), nil, &res); err != nil {
		return nil, err
	}
	return res.ParkingSpots, nil
}

// ReserveSpot books the first available spot in the given lot. The server
// resolves which spot and rejects a second active reservation.
func (u *UserClient) ReserveSpot(ctx context.Context, lotID int) (*domain.Reservation, error) {
	req := reserveSpotRequest{LotID: lotID}
	if err := u.c.validate.Validate(req); err != nil {
		return nil, err
	}

	var res reserveSpotResponse
	if err := u.c.do(ctx, http.MethodPost, "/reserve-spot", req, &res); err != nil {
		return nil, err
	}
	return res.Reservation, nil
}

func (u *UserClient) Reservations(ctx context.Context) ([]domain.Reservation, error) {
	var res reservationsResponse
	if err := u.c.do(ctx, http.MethodGet, "/user/reservations", nil, &res); err != nil {
		return nil, err
	}
	return res.Reservations, nil
}

func (u *UserClient) History(ctx context.Context) ([]domain.Reservation, error) {
	var res historyResponse
	if err := u.c.do(ctx, http.MethodGet, "/user/history", nil, &res); err != nil {
		return nil, err
	}
	return res.History, nil
}

func (u *UserClient) Profile(ctx context.Context) (*domain.UserProfile, error) {
	var res profileResponse
	if err := u.c.do(ctx, http.MethodGet, "/user/profile", nil, &res); err != nil {
		return nil, err
	}
	return res.User, nil
}

// UpdateProfile replaces the editable profile fields and refreshes the cached
// profile with whatever the server echoes back.
func (u *UserClient) UpdateProfile(ctx context.Context, input ports.ProfileInput) (*domain.UserProfile, error) {
	if err := u.c.validate.Validate(input); err != nil {
		return nil, err
	}

	var res profileResponse
	if err := u.c.do(ctx, http.MethodPut, "/user/profile", input, &res); err != nil {
		return nil, err
	}

	if res.User != nil {
		if err := u.c.session.SetUser(ctx, res.User); err != nil {
			u.c.logger.Warn().Err(err).Msg("caching updated profile failed")
		}
	}
	return res.User, nil
}

// ExportCSV kicks off a server-side CSV export job and returns the server's
// status message. The export is delivered out of band (email).
func (u *UserClient) ExportCSV(ctx context.Context) (string, error) {
	var res exportResponse
	if err := u.c.do(ctx, http.MethodPost, "/export-csv", nil, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}
