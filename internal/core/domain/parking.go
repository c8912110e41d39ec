package domain

// SpotStatus is the single-letter state the API uses for a parking spot.
type SpotStatus string

const (
	SpotAvailable SpotStatus = "A"
	SpotOccupied  SpotStatus = "O"
)

// ParkingLot describes a lot together with the spot aggregates the API
// computes server-side.
type ParkingLot struct {
	ID                int     `json:"id"`
	PrimeLocationName string  `json:"prime_location_name"`
	Price             float64 `json:"price"`
	Address           string  `json:"address"`
	PinCode           string  `json:"pin_code"`
	MaximumSpots      int     `json:"maximum_number_of_spots"`
	TotalSpots        int     `json:"total_spots"`
	OccupiedSpots     int     `json:"occupied_spots"`
	AvailableSpots    int     `json:"available_spots"`
	CreatedAt         string  `json:"created_at,omitempty"`
}

// ParkingSpot is a single numbered spot inside a lot.
type ParkingSpot struct {
	ID         int        `json:"id"`
	LotID      int        `json:"lot_id"`
	SpotNumber int        `json:"spot_number"`
	Status     SpotStatus `json:"status"`
}

// Reservation is a spot reservation, including the joined lot details the API
// returns for display.
type Reservation struct {
	ID                int     `json:"id"`
	SpotID            int     `json:"spot_id"`
	UserID            int     `json:"user_id"`
	Status            string  `json:"status"`
	SpotNumber        int     `json:"spot_number,omitempty"`
	PrimeLocationName string  `json:"prime_location_name,omitempty"`
	Address           string  `json:"address,omitempty"`
	Price             float64 `json:"price,omitempty"`
	ParkingTimestamp  string  `json:"parking_timestamp,omitempty"`
	LeavingTimestamp  string  `json:"leaving_timestamp,omitempty"`
	TotalCost         float64 `json:"total_cost,omitempty"`
}

// DashboardData is the admin analytics payload. The server owns the
// aggregation; the client treats the chart blobs as opaque.
type DashboardData struct {
	TotalLots          int            `json:"total_lots"`
	TotalSpots         int            `json:"total_spots"`
	OccupiedSpots      int            `json:"occupied_spots"`
	TotalUsers         int            `json:"total_users"`
	ActiveReservations int            `json:"active_reservations"`
	Revenue            float64        `json:"revenue"`
	Charts             map[string]any `json:"charts,omitempty"`
}
